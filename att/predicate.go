// predicate defines logical predicates used in relation's restrict

package att

import (
	"fmt"
	"reflect"
	"strings"
)

// Predicate is evaluated against tuples of a relation in restrict.  Its
// domain has to be a subdomain of the attributes of the relation's tuples.
type Predicate interface {
	// EvalFunc returns a function which evaluates the predicate on tuples of
	// type e.
	EvalFunc(e reflect.Type) func(tup any) bool

	// Domain is the set of attributes required to evaluate the predicate.
	Domain() []Attribute

	String() string

	// infix boolean expressions
	And(p2 Predicate) AndPred
	Or(p2 Predicate) OrPred
	Xor(p2 Predicate) XorPred
}

// Not predicate
func Not(p Predicate) NotPred {
	// Prefix not is a lot more comprehensible than postfix!  To that end, it
	// is not a part of the interface because that would require postfix.
	return NotPred{p}
}

// NotPred represents a logical not of a predicate.  Predicates are two
// valued, so Not of a comparison with an absent value is true: use NE for a
// comparison that is false on absent values, or IsNull and NotNull to test
// for them.
type NotPred struct {
	P Predicate
}

// String representation of Not
func (p NotPred) String() string {
	return fmt.Sprintf("!(%v)", p.P)
}

// Domain is the set of attributes required to evaluate the predicate
func (p NotPred) Domain() []Attribute {
	return p.P.Domain()
}

// EvalFunc returns a function which evaluates the predicate
func (p NotPred) EvalFunc(e reflect.Type) func(tup any) bool {
	f := p.P.EvalFunc(e)
	return func(tup any) bool { return !f(tup) }
}

// And predicate
func (p1 NotPred) And(p2 Predicate) AndPred { return AndPred{p1, p2} }

// Or predicate
func (p1 NotPred) Or(p2 Predicate) OrPred { return OrPred{p1, p2} }

// Xor predicate
func (p1 NotPred) Xor(p2 Predicate) XorPred { return XorPred{p1, p2} }

// AndPred represents a logical and predicate
type AndPred struct {
	P1 Predicate
	P2 Predicate
}

// String representation of And
func (p AndPred) String() string {
	return fmt.Sprintf("(%v) && (%v)", p.P1, p.P2)
}

// Domain is the set of attributes required to evaluate the predicate
func (p AndPred) Domain() []Attribute {
	return unionAttributes(p.P1.Domain(), p.P2.Domain())
}

// EvalFunc returns a function which evaluates the predicate
func (p AndPred) EvalFunc(e reflect.Type) func(tup any) bool {
	f1 := p.P1.EvalFunc(e)
	f2 := p.P2.EvalFunc(e)
	return func(tup any) bool { return f1(tup) && f2(tup) }
}

// And predicate
func (p1 AndPred) And(p2 Predicate) AndPred { return AndPred{p1, p2} }

// Or predicate
func (p1 AndPred) Or(p2 Predicate) OrPred { return OrPred{p1, p2} }

// Xor predicate
func (p1 AndPred) Xor(p2 Predicate) XorPred { return XorPred{p1, p2} }

// OrPred represents a logical or predicate
type OrPred struct {
	P1 Predicate
	P2 Predicate
}

// String representation of Or
func (p OrPred) String() string {
	return fmt.Sprintf("(%v) || (%v)", p.P1, p.P2)
}

// Domain is the set of attributes required to evaluate the predicate
func (p OrPred) Domain() []Attribute {
	return unionAttributes(p.P1.Domain(), p.P2.Domain())
}

// EvalFunc returns a function which evaluates the predicate
func (p OrPred) EvalFunc(e reflect.Type) func(tup any) bool {
	f1 := p.P1.EvalFunc(e)
	f2 := p.P2.EvalFunc(e)
	return func(tup any) bool { return f1(tup) || f2(tup) }
}

// And predicate
func (p1 OrPred) And(p2 Predicate) AndPred { return AndPred{p1, p2} }

// Or predicate
func (p1 OrPred) Or(p2 Predicate) OrPred { return OrPred{p1, p2} }

// Xor predicate
func (p1 OrPred) Xor(p2 Predicate) XorPred { return XorPred{p1, p2} }

// XorPred represents a logical xor predicate
type XorPred struct {
	P1 Predicate
	P2 Predicate
}

// String representation of Xor
func (p XorPred) String() string {
	return fmt.Sprintf("(%v) != (%v)", p.P1, p.P2)
}

// Domain is the set of attributes required to evaluate the predicate
func (p XorPred) Domain() []Attribute {
	return unionAttributes(p.P1.Domain(), p.P2.Domain())
}

// EvalFunc returns a function which evaluates the predicate
func (p XorPred) EvalFunc(e reflect.Type) func(tup any) bool {
	f1 := p.P1.EvalFunc(e)
	f2 := p.P2.EvalFunc(e)
	return func(tup any) bool { return f1(tup) != f2(tup) }
}

// And predicate
func (p1 XorPred) And(p2 Predicate) AndPred { return AndPred{p1, p2} }

// Or predicate
func (p1 XorPred) Or(p2 Predicate) OrPred { return OrPred{p1, p2} }

// Xor predicate
func (p1 XorPred) Xor(p2 Predicate) XorPred { return XorPred{p1, p2} }

// AdHoc is a Predicate that can implement any function on a tuple.  Its
// domain is the set of fields of the function's input type.  When it is
// evaluated against a different tuple type, the tuple is first projected
// onto the input type by attribute name.
// I expect that this will typically be constructed with anonymous functions.
type AdHoc[T any] struct {
	// f is the function which takes a tuple and returns a boolean indicating
	// that the tuple passes the predicate
	f func(T) bool
}

// Func returns an AdHoc predicate around f.
func Func[T any](f func(T) bool) AdHoc[T] {
	return AdHoc[T]{f}
}

// String representation of AdHoc
func (p AdHoc[T]) String() string {
	dom := p.Domain()
	s := make([]string, len(dom))
	for i, v := range dom {
		s[i] = string(v)
	}
	return fmt.Sprintf("func({%s})", strings.Join(s, ", "))
}

// Domain is the set of attributes required to evaluate the predicate
func (p AdHoc[T]) Domain() []Attribute {
	return FieldNames(reflect.TypeFor[T]())
}

func (p AdHoc[T]) inputType() reflect.Type {
	return reflect.TypeFor[T]()
}

// EvalFunc returns a function which evaluates the predicate
func (p AdHoc[T]) EvalFunc(e1 reflect.Type) func(tup any) bool {
	e2 := reflect.TypeFor[T]()
	if e1 == e2 || e2.Kind() != reflect.Struct {
		return func(tup any) bool {
			t, ok := tup.(T)
			return ok && p.f(t)
		}
	}

	// figure out which fields stay, and where they are in each of the tuple
	// types.
	fMap := FieldMap(e2, e1)
	return func(tup1 any) bool {
		tup2 := reflect.New(e2).Elem()
		CombineTuples(tup2, reflect.ValueOf(tup1), fMap)
		return p.f(tup2.Interface().(T))
	}
}

// And predicate
func (p1 AdHoc[T]) And(p2 Predicate) AndPred { return AndPred{p1, p2} }

// Or predicate
func (p1 AdHoc[T]) Or(p2 Predicate) OrPred { return OrPred{p1, p2} }

// Xor predicate
func (p1 AdHoc[T]) Xor(p2 Predicate) XorPred { return XorPred{p1, p2} }
