// flatten implements an expression which expands each tuple into zero or
// more tuples

package rel

import (
	"iter"
	"reflect"
)

type flattenExpr[T, U any] struct {
	source1 Relation[T]

	expand func(T) iter.Seq[U]

	err error
}

// Flatten creates a new relation by concatenating expand(tup) for each tuple
// of r, in order.  Expanding an optional value with opt.Option.All keeps only
// the tuples where it is present.
func Flatten[T, U any](r Relation[T], expand func(T) iter.Seq[U]) Relation[U] {
	return &flattenExpr[T, U]{r, expand, r.Err()}
}

// Tuples returns the expanded tuples
func (r *flattenExpr[T, U]) Tuples() iter.Seq[U] {
	if r.err != nil {
		return empty[U]
	}
	return func(yield func(U) bool) {
		for tup1 := range r.source1.Tuples() {
			for tup2 := range r.expand(tup1) {
				if !yield(tup2) {
					return
				}
			}
		}
	}
}

// Err returns an error encountered during construction
func (r *flattenExpr[T, U]) Err() error {
	return r.err
}

// String returns a text representation of the Relation
func (r *flattenExpr[T, U]) String() string {
	return r.source1.String() + ".Flatten({" + HeadingString(r.source1) + "}->{" + typeHeading(reflect.TypeFor[U]()) + "})"
}
