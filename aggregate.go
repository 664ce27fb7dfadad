// aggregate implements the aggregate functions used with groups and
// subqueries.  Values are aggregated as decimals.

package rel

import (
	"github.com/shopspring/decimal"
)

// Count returns the number of tuples in the relation
func Count[T any](r Relation[T]) int {
	return Card(r)
}

// Sum returns the sum of val over the relation, which is zero for an empty
// relation.
func Sum[T any](r Relation[T], val func(T) decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for tup := range r.Tuples() {
		sum = sum.Add(val(tup))
	}
	return sum
}

// Average returns the mean of val over the relation.  An empty relation has
// no average and returns ErrEmptyGroup.
func Average[T any](r Relation[T], val func(T) decimal.Decimal) (decimal.Decimal, error) {
	sum := decimal.Zero
	n := int64(0)
	for tup := range r.Tuples() {
		sum = sum.Add(val(tup))
		n++
	}
	if n == 0 {
		return decimal.Decimal{}, ErrEmptyGroup
	}
	return sum.Div(decimal.NewFromInt(n)), nil
}

// Min returns the smallest val over the relation, or ErrEmptyGroup
func Min[T any](r Relation[T], val func(T) decimal.Decimal) (decimal.Decimal, error) {
	return extreme(r, val, -1)
}

// Max returns the largest val over the relation, or ErrEmptyGroup
func Max[T any](r Relation[T], val func(T) decimal.Decimal) (decimal.Decimal, error) {
	return extreme(r, val, 1)
}

// extreme returns the value v for which v.Cmp(any other) is never -sign.
func extreme[T any](r Relation[T], val func(T) decimal.Decimal, sign int) (decimal.Decimal, error) {
	var res decimal.Decimal
	found := false
	for tup := range r.Tuples() {
		v := val(tup)
		if !found || v.Cmp(res) == sign {
			res = v
			found = true
		}
	}
	if !found {
		return decimal.Decimal{}, ErrEmptyGroup
	}
	return res, nil
}
