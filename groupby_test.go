package rel

import (
	"errors"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func qty(o orderTup) decimal.Decimal { return decimal.NewFromInt(int64(o.Qty)) }

// tests for group by
func TestGroupBy(t *testing.T) {
	type pnoQty struct {
		PNO int
		Qty decimal.Decimal
	}

	groups := GroupBy(orders(), orderPNO)
	if s := groups.String(); s != "Relation(PNO, SNO, Qty).GroupBy({int})" {
		t.Errorf("orders.GroupBy(PNO).String() => %q", s)
	}

	sums := Slice(Map(groups, func(g Group[int, orderTup]) pnoQty {
		return pnoQty{g.Key, g.Sum(qty)}
	}))
	want := []pnoQty{
		{1, decimal.NewFromInt(1300)},
		{2, decimal.NewFromInt(700)},
		{3, decimal.NewFromInt(200)},
		{4, decimal.NewFromInt(900)},
	}
	if len(sums) != len(want) {
		t.Fatalf("orders.GroupBy(PNO) sums => %v, want %v", sums, want)
	}
	for i := range want {
		if sums[i].PNO != want[i].PNO || !sums[i].Qty.Equal(want[i].Qty) {
			t.Errorf("%d. orders.GroupBy(PNO) sum => %v, want %v", i, sums[i], want[i])
		}
	}
}

func TestGroupByMembers(t *testing.T) {
	// groups are ordered by the first occurrence of their key
	groups := Slice(GroupBy(orders(), orderSNO))
	var keys []int
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	if !slices.Equal(keys, []int{1, 2, 3, 4, 5, 6}) {
		t.Errorf("orders.GroupBy(SNO) keys => %v, want [1 2 3 4 5 6]", keys)
	}

	// and members keep the order of the source
	sno2 := groups[1]
	if sno2.Count() != 4 {
		t.Errorf("group SNO 2 has Count() => %d, want 4", sno2.Count())
	}
	var members []int
	for o := range sno2.Members().Tuples() {
		members = append(members, o.PNO)
	}
	if !slices.Equal(members, []int{1, 2, 3, 4}) {
		t.Errorf("group SNO 2 has PNOs => %v, want [1 2 3 4]", members)
	}

	avg, err := sno2.Average(qty)
	if err != nil || !avg.Equal(decimal.NewFromInt(250)) {
		t.Errorf("group SNO 2 has Average() => %v, %v, want 250, nil", avg, err)
	}

	// every tuple is in exactly one group
	total := 0
	for _, g := range groups {
		total += g.Count()
	}
	if total != Card(orders()) {
		t.Errorf("orders.GroupBy(SNO) has %d members, want %d", total, Card(orders()))
	}

	if c := Card(GroupBy(New([]orderTup{}), orderSNO)); c != 0 {
		t.Errorf("GroupBy of an empty relation has Card %d, want 0", c)
	}
}

func TestAggregates(t *testing.T) {
	if c := Count(orders()); c != 12 {
		t.Errorf("Count(orders) => %d, want 12", c)
	}
	if s := Sum(orders(), qty); !s.Equal(decimal.NewFromInt(3100)) {
		t.Errorf("Sum(orders, Qty) => %v, want 3100", s)
	}
	if s := Sum(New([]orderTup{}), qty); !s.IsZero() {
		t.Errorf("Sum(empty, Qty) => %v, want 0", s)
	}

	pno4 := New([]orderTup{{4, 2, 200}, {4, 4, 300}, {4, 5, 400}})
	fix := []struct {
		name string
		agg  func(Relation[orderTup], func(orderTup) decimal.Decimal) (decimal.Decimal, error)
		want int64
	}{
		{"Average", Average[orderTup], 300},
		{"Min", Min[orderTup], 200},
		{"Max", Max[orderTup], 400},
	}
	for i, tt := range fix {
		v, err := tt.agg(pno4, qty)
		if err != nil || !v.Equal(decimal.NewFromInt(tt.want)) {
			t.Errorf("%d. %s(pno4, Qty) => %v, %v, want %d, nil", i, tt.name, v, err, tt.want)
		}
		if _, err := tt.agg(New([]orderTup{}), qty); !errors.Is(err, ErrEmptyGroup) {
			t.Errorf("%d. %s(empty, Qty) has error %v, want %v", i, tt.name, err, ErrEmptyGroup)
		}
	}

	if v, _ := Max(orders(), qty); !v.Equal(decimal.NewFromInt(400)) {
		t.Errorf("Max(orders, Qty) => %v, want 400", v)
	}
	if v, _ := Min(orders(), qty); !v.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Min(orders, Qty) => %v, want 100", v)
	}
}
