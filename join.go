// join implements join expressions in relational algebra

package rel

import (
	"iter"
	"reflect"

	"github.com/DimkaBraginskiy/apbd15-tut05/att"
)

// joinExpr is an equi-join on keys derived from each side.
type joinExpr[T1, T2 any, K comparable, T3 any] struct {
	source1 Relation[T1]
	source2 Relation[T2]

	key1 func(T1) K
	key2 func(T2) K

	combine func(T1, T2) T3

	err error
}

// Join creates a new relation with one tuple for every pair of tuples from r1
// and r2 with equal keys.  Tuples without a match on the other side are
// dropped.  The result is ordered by r1 and then by r2.
func Join[T1, T2 any, K comparable, T3 any](r1 Relation[T1], r2 Relation[T2], key1 func(T1) K, key2 func(T2) K, combine func(T1, T2) T3) Relation[T3] {
	return &joinExpr[T1, T2, K, T3]{r1, r2, key1, key2, combine, firstErr(r1.Err(), r2.Err())}
}

// This implementation of join builds an index over the right relation on each
// pass, and then probes it with every tuple of the left relation, which
// keeps the left-major ordering.

// Tuples returns the joined tuples
func (r *joinExpr[T1, T2, K, T3]) Tuples() iter.Seq[T3] {
	if r.err != nil {
		return empty[T3]
	}
	return func(yield func(T3) bool) {
		index := make(map[K][]T2)
		for tup2 := range r.source2.Tuples() {
			k := r.key2(tup2)
			index[k] = append(index[k], tup2)
		}
		for tup1 := range r.source1.Tuples() {
			for _, tup2 := range index[r.key1(tup1)] {
				if !yield(r.combine(tup1, tup2)) {
					return
				}
			}
		}
	}
}

// Err returns an error encountered during construction
func (r *joinExpr[T1, T2, K, T3]) Err() error {
	return r.err
}

// String returns a text representation of the Relation
func (r *joinExpr[T1, T2, K, T3]) String() string {
	return r.source1.String() + " ⋈ " + r.source2.String()
}

// naturalJoinExpr joins on every attribute the two tuple types share.
type naturalJoinExpr[T1, T2, T3 any] struct {
	source1 Relation[T1]
	source2 Relation[T2]

	err error
}

// NaturalJoin creates a new relation by performing a natural join on the
// inputs: tuples are paired when all attributes with the same names in T1
// and T2 are equal.  T3 has to be a struct whose attributes come from T1 or
// T2; where both have an attribute, the values are equal anyway.
func NaturalJoin[T3, T1, T2 any](r1 Relation[T1], r2 Relation[T2]) Relation[T3] {
	r3 := &naturalJoinExpr[T1, T2, T3]{source1: r1, source2: r2}
	if err := firstErr(r1.Err(), r2.Err()); err != nil {
		r3.err = err
		return r3
	}
	e1 := reflect.TypeFor[T1]()
	e2 := reflect.TypeFor[T2]()
	e3 := reflect.TypeFor[T3]()
	if e1.Kind() != reflect.Struct || e2.Kind() != reflect.Struct || e3.Kind() != reflect.Struct {
		r3.err = &ProjectError{From: e1, To: e3}
		return r3
	}
	h12 := append(att.FieldNames(e1), att.FieldNames(e2)...)
	if missing := att.Missing(att.FieldNames(e3), h12); len(missing) > 0 {
		r3.err = &ProjectError{From: e1, To: e3, Missing: missing}
		return r3
	}
	for _, e := range []reflect.Type{e1, e2} {
		for name, fm := range att.FieldMap(e3, e) {
			if !e.Field(fm.J).Type.AssignableTo(e3.Field(fm.I).Type) {
				r3.err = &ProjectError{From: e, To: e3, Mismatch: name}
				return r3
			}
		}
	}
	return r3
}

// Tuples returns the joined tuples, ordered by r1 and then by r2
func (r *naturalJoinExpr[T1, T2, T3]) Tuples() iter.Seq[T3] {
	if r.err != nil {
		return empty[T3]
	}
	return func(yield func(T3) bool) {
		e1 := reflect.TypeFor[T1]()
		e2 := reflect.TypeFor[T2]()
		e3 := reflect.TypeFor[T3]()

		// create indexes between the three headings
		map12 := att.FieldMap(e1, e2) // used to determine equality
		map31 := att.FieldMap(e3, e1) // used to construct returned values
		map32 := att.FieldMap(e3, e2) // used to construct returned values

		mem2 := Slice(r.source2)
		for tup1 := range r.source1.Tuples() {
			rtup1 := reflect.ValueOf(tup1)
			for _, tup2 := range mem2 {
				rtup2 := reflect.ValueOf(tup2)
				if !att.PartialEquals(rtup1, rtup2, map12) {
					continue
				}
				var tup3 T3
				rtup3 := reflect.ValueOf(&tup3).Elem()
				att.CombineTuples(rtup3, rtup1, map31)
				att.CombineTuples(rtup3, rtup2, map32)
				if !yield(tup3) {
					return
				}
			}
		}
	}
}

// Err returns an error encountered during construction
func (r *naturalJoinExpr[T1, T2, T3]) Err() error {
	return r.err
}

// String returns a text representation of the Relation
func (r *naturalJoinExpr[T1, T2, T3]) String() string {
	return r.source1.String() + " ⋈ " + r.source2.String()
}
