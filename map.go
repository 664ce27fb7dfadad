// map implements a tuple mapping expression in relational algebra

package rel

import (
	"iter"
	"reflect"
)

// mapExpr is a type that represents a map operation
type mapExpr[T, U any] struct {
	// the input relation
	source1 Relation[T]

	// the function that maps from source tuple type to result tuple type
	fcn func(T) U

	err error
}

// Map creates a new relation by applying a function to tuples in the source.
// The result has one tuple per source tuple, in the same order.
func Map[T, U any](r Relation[T], fcn func(T) U) Relation[U] {
	return &mapExpr[T, U]{r, fcn, r.Err()}
}

// Tuples returns the mapped tuples
func (r *mapExpr[T, U]) Tuples() iter.Seq[U] {
	if r.err != nil {
		return empty[U]
	}
	return func(yield func(U) bool) {
		for tup := range r.source1.Tuples() {
			if !yield(r.fcn(tup)) {
				return
			}
		}
	}
}

// Err returns an error encountered during construction
func (r *mapExpr[T, U]) Err() error {
	return r.err
}

// String returns a text representation of the Relation
func (r *mapExpr[T, U]) String() string {
	return r.source1.String() + ".Map({" + HeadingString(r.source1) + "}->{" + typeHeading(reflect.TypeFor[U]()) + "})"
}
