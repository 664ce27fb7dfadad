package rel

import (
	"testing"
)

// tests for map op
func TestMap(t *testing.T) {
	doubleQty := func(tup orderTup) orderTup {
		return orderTup{tup.PNO, tup.SNO, tup.Qty * 2}
	}

	r := Map(orders(), doubleQty)
	if s := r.String(); s != "Relation(PNO, SNO, Qty).Map({PNO, SNO, Qty}->{PNO, SNO, Qty})" {
		t.Errorf("orders.Map(doubleQty).String() => %q", s)
	}
	if Deg(r) != 3 || Card(r) != 12 {
		t.Errorf("orders.Map(doubleQty) has Deg %d, Card %d, want Deg %d, Card %d", Deg(r), Card(r), 3, 12)
	}
	src := Slice(orders())
	for i, tup := range Slice(r) {
		if tup.Qty != 2*src[i].Qty || tup.PNO != src[i].PNO {
			t.Errorf("%d. orders.Map(doubleQty) => %v, want %v", i, tup, doubleQty(src[i]))
		}
	}

	// mapping to a different type
	names := Map(suppliers(), func(s supplierTup) string { return s.SName })
	want := []string{"Smith", "Jones", "Blake", "Clark", "Adams"}
	got := Slice(names)
	if len(got) != len(want) {
		t.Fatalf("suppliers.Map(SName) => %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%d. suppliers.Map(SName) => %q, want %q", i, got[i], want[i])
		}
	}
	if s := names.String(); s != "Relation(SNO, SName, Status, City).Map({SNO, SName, Status, City}->{string})" {
		t.Errorf("suppliers.Map(SName).String() => %q", s)
	}
}

// the mapping func is called again on every pass
func TestMapLazy(t *testing.T) {
	calls := 0
	r := Map(orders(), func(tup orderTup) int { calls++; return tup.Qty })
	if calls != 0 {
		t.Errorf("Map called the func %d times before it was read, want 0", calls)
	}
	Card(r)
	Card(r)
	if calls != 24 {
		t.Errorf("Map called the func %d times in two passes, want 24", calls)
	}
}
