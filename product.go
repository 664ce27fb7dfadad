// product implements the cartesian product of two relations

package rel

import "iter"

type productExpr[T1, T2, T3 any] struct {
	source1 Relation[T1]
	source2 Relation[T2]

	combine func(T1, T2) T3

	err error
}

// CrossJoin creates a new relation with one tuple for every pair of tuples
// from r1 and r2, ordered by r1 and then by r2.  Joins on conditions other
// than equality, such as a range, are a CrossJoin followed by a Restrict.
func CrossJoin[T1, T2, T3 any](r1 Relation[T1], r2 Relation[T2], combine func(T1, T2) T3) Relation[T3] {
	return &productExpr[T1, T2, T3]{r1, r2, combine, firstErr(r1.Err(), r2.Err())}
}

// Tuples returns the combined pairs
func (r *productExpr[T1, T2, T3]) Tuples() iter.Seq[T3] {
	if r.err != nil {
		return empty[T3]
	}
	return func(yield func(T3) bool) {
		for tup1 := range r.source1.Tuples() {
			for tup2 := range r.source2.Tuples() {
				if !yield(r.combine(tup1, tup2)) {
					return
				}
			}
		}
	}
}

// Err returns an error encountered during construction
func (r *productExpr[T1, T2, T3]) Err() error {
	return r.err
}

// String returns a text representation of the Relation
func (r *productExpr[T1, T2, T3]) String() string {
	return r.source1.String() + " × " + r.source2.String()
}
