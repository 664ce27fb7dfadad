// groupby implements a group by expression in relational algebra

package rel

import (
	"iter"
	"reflect"

	"github.com/shopspring/decimal"
)

// Group is one group of a GroupBy: the key and the tuples which share it.
type Group[K comparable, T any] struct {
	Key K

	// members in the order of the source relation
	members []T
}

// Members returns the tuples of the group as a relation
func (g Group[K, T]) Members() Relation[T] {
	return New(g.members)
}

// Count returns the number of tuples in the group
func (g Group[K, T]) Count() int {
	return len(g.members)
}

// Sum returns the sum of val over the group
func (g Group[K, T]) Sum(val func(T) decimal.Decimal) decimal.Decimal {
	return Sum(g.Members(), val)
}

// Average returns the mean of val over the group, or ErrEmptyGroup
func (g Group[K, T]) Average(val func(T) decimal.Decimal) (decimal.Decimal, error) {
	return Average(g.Members(), val)
}

type groupByExpr[T any, K comparable] struct {
	source1 Relation[T]

	key func(T) K

	err error
}

// GroupBy creates a new relation with one Group per distinct key.  Groups are
// ordered by the first occurrence of their key in r, and the tuples of a
// group keep the order of r.
func GroupBy[T any, K comparable](r Relation[T], key func(T) K) Relation[Group[K, T]] {
	return &groupByExpr[T, K]{r, key, r.Err()}
}

// Tuples returns the groups
func (r *groupByExpr[T, K]) Tuples() iter.Seq[Group[K, T]] {
	if r.err != nil {
		return empty[Group[K, T]]
	}
	return func(yield func(Group[K, T]) bool) {
		// the map holds the position of each group in groups, which
		// preserves the order in which keys were found
		pos := make(map[K]int)
		var groups []Group[K, T]
		for tup := range r.source1.Tuples() {
			k := r.key(tup)
			i, ok := pos[k]
			if !ok {
				i = len(groups)
				pos[k] = i
				groups = append(groups, Group[K, T]{Key: k})
			}
			groups[i].members = append(groups[i].members, tup)
		}
		for _, g := range groups {
			if !yield(g) {
				return
			}
		}
	}
}

// Err returns an error encountered during construction
func (r *groupByExpr[T, K]) Err() error {
	return r.err
}

// String returns a text representation of the Relation
func (r *groupByExpr[T, K]) String() string {
	return r.source1.String() + ".GroupBy({" + typeHeading(reflect.TypeFor[K]()) + "})"
}
