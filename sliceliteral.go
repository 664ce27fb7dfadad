// sliceLiteral implements one of the possible ways of creating a new relation
// from scratch, specifically, with a slice of tuples

package rel

import (
	"iter"
	"slices"
)

// sliceLiteral represents a relation that came from a slice
type sliceLiteral[T any] struct {
	// the tuples in the relation, owned by the relation
	body []T
}

// New creates a new Relation from a slice of tuples.  The slice is copied, so
// later changes to it are not visible through the relation.
func New[T any](tups []T) Relation[T] {
	return &sliceLiteral[T]{slices.Clone(tups)}
}

// Tuples returns the tuples of the slice in order
func (r *sliceLiteral[T]) Tuples() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, tup := range r.body {
			if !yield(tup) {
				return
			}
		}
	}
}

// Err returns an error encountered during construction
func (r *sliceLiteral[T]) Err() error {
	return nil
}

// String returns a text representation of the Relation
func (r *sliceLiteral[T]) String() string {
	return "Relation(" + HeadingString[T](r) + ")"
}
