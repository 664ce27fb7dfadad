// restrict implements a restrict expression in relational algebra

package rel

import (
	"iter"
	"reflect"

	"github.com/DimkaBraginskiy/apbd15-tut05/att"
)

// restrictExpr applies a predicate to a relation
type restrictExpr[T any] struct {
	// the input relation
	source1 Relation[T]

	// the restriction predicate
	p att.Predicate

	err error
}

// Restrict creates a new relation with less than or equal cardinality.
// The predicate's domain has to be a subdomain of the tuples of r, otherwise
// the relation has an *att.DomainError.  An ad hoc predicate whose input
// attributes cannot be assigned from the tuple's gives an *att.TypeError.
func Restrict[T any](r Relation[T], p att.Predicate) Relation[T] {
	r2 := &restrictExpr[T]{source1: r, p: p}
	if err := r.Err(); err != nil {
		r2.err = err
		return r2
	}
	r2.err = att.Validate(p, reflect.TypeFor[T]())
	return r2
}

// Tuples returns the tuples of the source which satisfy the predicate
func (r *restrictExpr[T]) Tuples() iter.Seq[T] {
	if r.err != nil {
		return empty[T]
	}
	return func(yield func(T) bool) {
		pred := r.p.EvalFunc(reflect.TypeFor[T]())
		for tup := range r.source1.Tuples() {
			if pred(tup) && !yield(tup) {
				return
			}
		}
	}
}

// Err returns an error encountered during construction
func (r *restrictExpr[T]) Err() error {
	return r.err
}

// String returns a text representation of the Relation
func (r *restrictExpr[T]) String() string {
	return "σ{" + r.p.String() + "}(" + r.source1.String() + ")"
}
