package rel

import (
	"reflect"
	"testing"

	"github.com/DimkaBraginskiy/apbd15-tut05/att"
)

func TestDeg(t *testing.T) {
	fix := []struct {
		name string
		in   int
		out  int
	}{
		{"suppliers", Deg(suppliers()), 4},
		{"parts", Deg(parts()), 5},
		{"orders", Deg(orders()), 3},
		{"ints", Deg(New([]int{1, 2})), 0},
	}
	for i, dt := range fix {
		if dt.in != dt.out {
			t.Errorf("%d. %s.Deg() => %d, want %d", i, dt.name, dt.in, dt.out)
		}
	}
}

func TestCard(t *testing.T) {
	fix := []struct {
		name string
		in   int
		out  int
	}{
		{"suppliers", Card(suppliers()), 5},
		{"parts", Card(parts()), 6},
		{"orders", Card(orders()), 12},
		{"empty", Card(New([]orderTup{})), 0},
		{"nil", Card(New[orderTup](nil)), 0},
	}
	for i, dt := range fix {
		if dt.in != dt.out {
			t.Errorf("%d. %s.Card() => %d, want %d", i, dt.name, dt.in, dt.out)
		}
	}
}

func TestHeading(t *testing.T) {
	want := []att.Attribute{"PNO", "SNO", "Qty"}
	if h := Heading(orders()); !reflect.DeepEqual(h, want) {
		t.Errorf("Heading(orders) => %v, want %v", h, want)
	}
	if h := HeadingString(suppliers()); h != "SNO, SName, Status, City" {
		t.Errorf("HeadingString(suppliers) => %q, want %q", h, "SNO, SName, Status, City")
	}
	if h := HeadingString(New([]string{"a"})); h != "string" {
		t.Errorf("HeadingString(strings) => %q, want %q", h, "string")
	}
}

func TestSlice(t *testing.T) {
	s := Slice(New([]orderTup{}))
	if s == nil || len(s) != 0 {
		t.Errorf("Slice(empty) => %#v, want an empty slice", s)
	}
	s = Slice(orders())
	if len(s) != 12 || s[0] != (orderTup{1, 1, 300}) || s[11] != (orderTup{4, 5, 400}) {
		t.Errorf("Slice(orders) => %v, want the orders in order", s)
	}
}
