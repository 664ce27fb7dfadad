// correlate implements a restrict whose predicate depends on a subquery
// parameterized by the tuple being tested, like a correlated subquery in sql

package rel

import (
	"iter"

	"github.com/DimkaBraginskiy/apbd15-tut05/att"
	"github.com/DimkaBraginskiy/apbd15-tut05/internal/logging"
)

type correlatedExpr[T, U, V any] struct {
	source1 Relation[T]
	source2 Relation[U]

	// correlate selects the tuples of source2 that belong to a tuple of
	// source1
	correlate func(T, U) bool

	// agg computes the subquery value from the selected tuples
	agg func(Relation[U]) (V, error)

	// test decides whether the outer tuple is kept
	test func(T, V) bool

	err error
}

// RestrictCorrelated keeps the tuples of r1 for which test(tup, v) holds,
// where v = agg(Restrict(r2, correlate(tup, ·))).  The subquery is evaluated
// again for every tuple of r1.  When agg returns an error, such as
// ErrEmptyGroup, the subquery has no value and the tuple is not kept, the
// same way a comparison against null is never true.
func RestrictCorrelated[T, U, V any](r1 Relation[T], r2 Relation[U], correlate func(T, U) bool, agg func(Relation[U]) (V, error), test func(T, V) bool) Relation[T] {
	return &correlatedExpr[T, U, V]{r1, r2, correlate, agg, test, firstErr(r1.Err(), r2.Err())}
}

// Tuples returns the outer tuples which pass the test
func (r *correlatedExpr[T, U, V]) Tuples() iter.Seq[T] {
	if r.err != nil {
		return empty[T]
	}
	return func(yield func(T) bool) {
		for tup1 := range r.source1.Tuples() {
			inner := Restrict(r.source2, att.Func(func(tup2 U) bool {
				return r.correlate(tup1, tup2)
			}))
			v, err := r.agg(inner)
			if err != nil {
				logging.Debug().Err(err).Str("subquery", inner.String()).Msg("correlated subquery has no value")
				continue
			}
			if r.test(tup1, v) && !yield(tup1) {
				return
			}
		}
	}
}

// Err returns an error encountered during construction
func (r *correlatedExpr[T, U, V]) Err() error {
	return r.err
}

// String returns a text representation of the Relation
func (r *correlatedExpr[T, U, V]) String() string {
	return "σ{func(" + HeadingString(r.source1) + ", agg(" + r.source2.String() + "))}(" + r.source1.String() + ")"
}
