// semijoin implements a semijoin expression, which is the same as an IN
// subquery in sql

package rel

import "iter"

type semiJoinExpr[T1, T2 any, K comparable] struct {
	source1 Relation[T1]
	source2 Relation[T2]

	key1 func(T1) K
	key2 func(T2) K

	err error
}

// SemiJoin creates a new relation with the tuples of r1 whose key is among
// the keys of r2.  None of r2's attributes are in the result, and the order
// of r1 is kept.
func SemiJoin[T1, T2 any, K comparable](r1 Relation[T1], r2 Relation[T2], key1 func(T1) K, key2 func(T2) K) Relation[T1] {
	return &semiJoinExpr[T1, T2, K]{r1, r2, key1, key2, firstErr(r1.Err(), r2.Err())}
}

// Tuples returns the matching tuples of the left relation
func (r *semiJoinExpr[T1, T2, K]) Tuples() iter.Seq[T1] {
	if r.err != nil {
		return empty[T1]
	}
	return func(yield func(T1) bool) {
		keys := make(map[K]struct{})
		for tup2 := range r.source2.Tuples() {
			keys[r.key2(tup2)] = struct{}{}
		}
		for tup1 := range r.source1.Tuples() {
			if _, ok := keys[r.key1(tup1)]; ok && !yield(tup1) {
				return
			}
		}
	}
}

// Err returns an error encountered during construction
func (r *semiJoinExpr[T1, T2, K]) Err() error {
	return r.err
}

// String returns a text representation of the Relation
func (r *semiJoinExpr[T1, T2, K]) String() string {
	return r.source1.String() + " ⋉ " + r.source2.String()
}
