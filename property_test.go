package rel

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/DimkaBraginskiy/apbd15-tut05/att"
)

var rapidOrder = rapid.Custom(func(t *rapid.T) orderTup {
	return orderTup{
		PNO: rapid.IntRange(1, 6).Draw(t, "PNO"),
		SNO: rapid.IntRange(1, 5).Draw(t, "SNO"),
		Qty: rapid.IntRange(0, 500).Draw(t, "Qty"),
	}
})

func drawOrders(t *rapid.T, name string) Relation[orderTup] {
	return New(rapid.SliceOfN(rapidOrder, 0, 30).Draw(t, name))
}

func TestOrderByProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tups := rapid.SliceOfN(rapidOrder, 0, 30).Draw(t, "orders")
		desc := rapid.Bool().Draw(t, "desc")
		sorted := Slice(OrderBy(New(tups), "Qty", desc))

		// a permutation of the input
		require.Len(t, sorted, len(tups))
		require.ElementsMatch(t, tups, sorted)

		for i := 1; i < len(sorted); i++ {
			a, b := sorted[i-1], sorted[i]
			if desc {
				require.GreaterOrEqual(t, a.Qty, b.Qty)
			} else {
				require.LessOrEqual(t, a.Qty, b.Qty)
			}
		}
	})
}

func TestOrderByStable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		// the position of each tuple is kept in SNO, so every tuple is distinct
		qtys := rapid.SliceOfN(rapid.IntRange(0, 3), 0, 30).Draw(t, "qtys")
		tups := make([]orderTup, len(qtys))
		for i, q := range qtys {
			tups[i] = orderTup{PNO: 1, SNO: i, Qty: q}
		}
		sorted := Slice(OrderBy(New(tups), "Qty", rapid.Bool().Draw(t, "desc")))
		for i := 1; i < len(sorted); i++ {
			if sorted[i-1].Qty == sorted[i].Qty {
				require.Less(t, sorted[i-1].SNO, sorted[i].SNO)
			}
		}
	})
}

func TestJoinProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r1 := drawOrders(t, "left")
		r2 := drawOrders(t, "right")
		pair := func(a, b orderTup) [2]orderTup { return [2]orderTup{a, b} }

		// the product has every pair
		require.Equal(t, Card(r1)*Card(r2), Card(CrossJoin(r1, r2, pair)))

		// the join is the product restricted to equal keys, in the same order
		joined := Slice(Join(r1, r2, orderPNO, orderPNO, pair))
		var want [][2]orderTup
		for p := range CrossJoin(r1, r2, pair).Tuples() {
			if p[0].PNO == p[1].PNO {
				want = append(want, p)
			}
		}
		require.Equal(t, len(want), len(joined))
		for i := range want {
			require.Equal(t, want[i], joined[i])
		}

		// the semijoin keeps the left tuples with at least one match
		semi := Slice(SemiJoin(r1, r2, orderPNO, orderPNO))
		var wantSemi []orderTup
		for a := range r1.Tuples() {
			if slices.ContainsFunc(Slice(r2), func(b orderTup) bool { return a.PNO == b.PNO }) {
				wantSemi = append(wantSemi, a)
			}
		}
		require.Equal(t, len(wantSemi), len(semi))
		for i := range wantSemi {
			require.Equal(t, wantSemi[i], semi[i])
		}
	})
}

func TestGroupByProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := drawOrders(t, "orders")
		groups := Slice(GroupBy(r, orderSNO))

		seen := make(map[int]bool)
		total := 0
		for _, g := range groups {
			// keys are distinct and every member has the key
			require.False(t, seen[g.Key])
			seen[g.Key] = true
			require.Positive(t, g.Count())
			for m := range g.Members().Tuples() {
				require.Equal(t, g.Key, m.SNO)
			}
			total += g.Count()

			// the sum of a group is the sum of its members
			require.True(t, g.Sum(qty).Equal(Sum(Restrict(r, att.Attribute("SNO").EQ(g.Key)), qty)))
		}
		require.Equal(t, Card(r), total)
	})
}

// reading an expression twice gives the same tuples
func TestIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := drawOrders(t, "orders")
		lo := rapid.IntRange(0, 500).Draw(t, "lo")
		exprs := []Relation[orderTup]{
			Restrict(r, att.Attribute("Qty").GE(lo)),
			OrderBy(r, "PNO", true),
			SemiJoin(r, r, orderSNO, orderSNO),
			Map(r, func(o orderTup) orderTup { o.Qty++; return o }),
		}
		for _, e := range exprs {
			require.Equal(t, Slice(e), Slice(e))
		}
		require.Equal(t, Card(r), Card(Project[orderTup](r)))
	})
}
