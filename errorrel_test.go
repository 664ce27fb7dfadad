package rel

import (
	"errors"
	"iter"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/DimkaBraginskiy/apbd15-tut05/att"
)

var errTesting = errors.New("testing error")

// errorRel is a relation for error testing only.  It has tuples, but also
// reports an error, so expressions built on it must not read them.
type errorRel[T any] struct {
	tups []T
	err  error
}

func (r *errorRel[T]) Tuples() iter.Seq[T] {
	return New(r.tups).Tuples()
}

func (r *errorRel[T]) Err() error {
	return r.err
}

func (r *errorRel[T]) String() string {
	return "error{" + HeadingString[T](r) + "}"
}

func TestErrorPropagation(t *testing.T) {
	type weightTup struct {
		PNO    int
		Weight float64
	}
	bad := &errorRel[partTup]{parts().(*sliceLiteral[partTup]).body, errTesting}
	pno := func(p partTup) int { return p.PNO }
	opno := func(o orderTup) int { return o.PNO }
	weight := func(p partTup) decimal.Decimal { return decimal.NewFromFloat(p.Weight) }

	fix := []struct {
		name string
		err  error
		card int
	}{
		{"Restrict", Restrict(bad, att.Attribute("PNO").GT(1)).Err(), Card(Restrict(bad, att.Attribute("PNO").GT(1)))},
		{"Map", Map(bad, pno).Err(), Card(Map(bad, pno))},
		{"Project", Project[weightTup](bad).Err(), Card(Project[weightTup](bad))},
		{"OrderBy", OrderBy(bad, "Weight", false).Err(), Card(OrderBy(bad, "Weight", false))},
		{"OrderByFunc", OrderByFunc(bad, func(a, b partTup) int { return a.PNO - b.PNO }, false).Err(), 0},
		{"Join left", Join(bad, orders(), pno, opno, func(p partTup, o orderTup) int { return o.Qty }).Err(), 0},
		{"Join right", Join(orders(), bad, opno, pno, func(o orderTup, p partTup) int { return o.Qty }).Err(), 0},
		{"NaturalJoin", NaturalJoin[orderTup](orders(), bad).Err(), Card(NaturalJoin[orderTup](orders(), bad))},
		{"CrossJoin", CrossJoin(bad, suppliers(), func(p partTup, s supplierTup) int { return p.PNO }).Err(), 0},
		{"SemiJoin", SemiJoin(orders(), bad, opno, pno).Err(), Card(SemiJoin(orders(), bad, opno, pno))},
		{"GroupBy", GroupBy(bad, pno).Err(), Card(GroupBy(bad, pno))},
		{"Flatten", Flatten(bad, func(p partTup) iter.Seq[int] { return New([]int{p.PNO}).Tuples() }).Err(), 0},
		{"RestrictCorrelated", RestrictCorrelated(parts(), bad,
			func(p1, p2 partTup) bool { return p1.City == p2.City },
			func(r Relation[partTup]) (decimal.Decimal, error) { return Average(r, weight) },
			func(p partTup, avg decimal.Decimal) bool { return true },
		).Err(), 0},
	}
	for i, tt := range fix {
		if !errors.Is(tt.err, errTesting) {
			t.Errorf("%d. %s has Err() => %v, want %v", i, tt.name, tt.err, errTesting)
		}
		if tt.card != 0 {
			t.Errorf("%d. %s has Card() => %d, want 0", i, tt.name, tt.card)
		}
	}
}

// an error in a source is reported before a domain error of the expression
func TestErrorFirst(t *testing.T) {
	bad := &errorRel[partTup]{nil, errTesting}
	r := Restrict(bad, att.Attribute("Missing").EQ(1))
	if !errors.Is(r.Err(), errTesting) {
		t.Errorf("Restrict has Err() => %v, want %v", r.Err(), errTesting)
	}
	if got := PrettyPrint[partTup](r); got != errTesting.Error() {
		t.Errorf("PrettyPrint => %q, want %q", got, errTesting.Error())
	}
}
