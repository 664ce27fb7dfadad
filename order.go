// order implements an ordering expression.  Ordering is not a part of the
// relational algebra, but the relations in this package are sequences, and
// some queries are only meaningful in order.

package rel

import (
	"iter"
	"reflect"
	"slices"

	"github.com/DimkaBraginskiy/apbd15-tut05/att"
)

type orderExpr[T any] struct {
	source1 Relation[T]

	// cmp orders two tuples in ascending order
	cmp func(a, b T) int

	// desc reverses the ordering
	desc bool

	// name is used in String
	name string

	err error
}

// OrderBy sorts the relation by an attribute, ascending unless desc is true.
// The sort is stable, so tuples with equal attributes keep their order.
// Attribute values are compared with att.Compare.  Absent optional values
// sort after every present value, so they come last in ascending order and
// first in descending order.  Other values which cannot be compared are
// treated as equal.
func OrderBy[T any](r Relation[T], a att.Attribute, desc bool) Relation[T] {
	e := reflect.TypeFor[T]()
	r2 := &orderExpr[T]{source1: r, desc: desc, name: string(a)}
	if err := r.Err(); err != nil {
		r2.err = err
		return r2
	}
	if missing := att.Missing([]att.Attribute{a}, att.FieldNames(e)); len(missing) > 0 {
		r2.err = &att.DomainError{Tuple: e, Missing: missing}
		return r2
	}
	name := string(a)
	r2.cmp = func(tup1, tup2 T) int {
		v1 := reflect.ValueOf(tup1).FieldByName(name).Interface()
		v2 := reflect.ValueOf(tup2).FieldByName(name).Interface()
		return compareNullsLast(v1, v2)
	}
	return r2
}

// compareNullsLast orders absent values after present ones.
func compareNullsLast(v1, v2 any) int {
	null1, null2 := att.Absent(v1), att.Absent(v2)
	switch {
	case null1 && null2:
		return 0
	case null1:
		return 1
	case null2:
		return -1
	}
	c, err := att.Compare(v1, v2)
	if err != nil {
		return 0
	}
	return c
}

// OrderByFunc sorts the relation with a comparison function which returns a
// negative number when a < b, zero when they are equal and a positive number
// when a > b.  The sort is stable, ascending unless desc is true.
func OrderByFunc[T any](r Relation[T], cmp func(a, b T) int, desc bool) Relation[T] {
	return &orderExpr[T]{source1: r, cmp: cmp, desc: desc, name: "func", err: r.Err()}
}

// Tuples sorts the tuples of the source on every pass
func (r *orderExpr[T]) Tuples() iter.Seq[T] {
	if r.err != nil {
		return empty[T]
	}
	return func(yield func(T) bool) {
		tups := Slice(r.source1)
		cmp := r.cmp
		if r.desc {
			cmp = func(a, b T) int { return r.cmp(b, a) }
		}
		slices.SortStableFunc(tups, cmp)
		for _, tup := range tups {
			if !yield(tup) {
				return
			}
		}
	}
}

// Err returns an error encountered during construction
func (r *orderExpr[T]) Err() error {
	return r.err
}

// String returns a text representation of the Relation
func (r *orderExpr[T]) String() string {
	dir := "ASC"
	if r.desc {
		dir = "DESC"
	}
	return "τ{" + r.name + " " + dir + "}(" + r.source1.String() + ")"
}
