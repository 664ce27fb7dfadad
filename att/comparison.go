package att

import (
	"fmt"
	"reflect"
)

// Normal go style does not include abbreviations or all caps.  However, in
// this case the shortness of the method name is paramount, so the
// comparisons follow the MIPS assembly condition names: EQ, NE, LT, LE, GT,
// and GE.
//
// The v param of each comparison is an interface because it might be a
// literal, or another attribute.

// Op is a comparison operator.
type Op int

// comparison operators
const (
	OpEQ Op = iota
	OpNE
	OpLT
	OpLE
	OpGT
	OpGE
)

var opSymbols = [...]string{"==", "!=", "<", "<=", ">", ">="}

func (op Op) String() string {
	return opSymbols[op]
}

// holds reports whether a comparison result c satisfies the operator.
func (op Op) holds(c int) bool {
	switch op {
	case OpEQ:
		return c == 0
	case OpNE:
		return c != 0
	case OpLT:
		return c < 0
	case OpLE:
		return c <= 0
	case OpGT:
		return c > 0
	case OpGE:
		return c >= 0
	}
	return false
}

// CmpPred compares an attribute to a literal or to another attribute of the
// same tuple.  Absent optional values never satisfy the predicate, and
// neither do values without an ordering for LT, LE, GT and GE.
type CmpPred struct {
	Op  Op
	att []Attribute
	lit any
}

func newCmp(op Op, att1 Attribute, v any) CmpPred {
	if att2, ok := v.(Attribute); ok {
		return CmpPred{op, []Attribute{att1, att2}, nil}
	}
	// v is a literal, we'll need runtime reflection
	return CmpPred{op, []Attribute{att1}, v}
}

// EQ is equal to (==)
func (att1 Attribute) EQ(v any) CmpPred { return newCmp(OpEQ, att1, v) }

// NE is not equal to (!=)
func (att1 Attribute) NE(v any) CmpPred { return newCmp(OpNE, att1, v) }

// LT is less than (<)
func (att1 Attribute) LT(v any) CmpPred { return newCmp(OpLT, att1, v) }

// LE is less than or equal to (<=)
func (att1 Attribute) LE(v any) CmpPred { return newCmp(OpLE, att1, v) }

// GT is greater than (>)
func (att1 Attribute) GT(v any) CmpPred { return newCmp(OpGT, att1, v) }

// GE is greater than or equal to (>=)
func (att1 Attribute) GE(v any) CmpPred { return newCmp(OpGE, att1, v) }

// String representation of the comparison
func (p CmpPred) String() string {
	if len(p.att) == 2 {
		return fmt.Sprintf("%v %v %v", p.att[0], p.Op, p.att[1])
	}
	return fmt.Sprintf("%v %v %v", p.att[0], p.Op, p.lit)
}

// Domain is the set of attributes required to evaluate the predicate
func (p CmpPred) Domain() []Attribute {
	return p.att
}

// EvalFunc returns a function which evaluates the predicate
func (p CmpPred) EvalFunc(e reflect.Type) func(tup any) bool {
	att1 := string(p.att[0])
	operand := func(rtup reflect.Value) any { return p.lit }
	if len(p.att) == 2 {
		att2 := string(p.att[1])
		operand = func(rtup reflect.Value) any { return rtup.FieldByName(att2).Interface() }
	}
	return func(tup any) bool {
		rtup := reflect.ValueOf(tup)
		v1 := rtup.FieldByName(att1).Interface()
		v2 := operand(rtup)
		if _, ok := unwrap(v1); !ok {
			return false
		}
		if _, ok := unwrap(v2); !ok {
			return false
		}
		if p.Op == OpEQ {
			return Equal(v1, v2)
		}
		if p.Op == OpNE {
			return !Equal(v1, v2)
		}
		c, err := Compare(v1, v2)
		if err != nil {
			return false
		}
		return p.Op.holds(c)
	}
}

// And predicate
func (p1 CmpPred) And(p2 Predicate) AndPred { return AndPred{p1, p2} }

// Or predicate
func (p1 CmpPred) Or(p2 Predicate) OrPred { return OrPred{p1, p2} }

// Xor predicate
func (p1 CmpPred) Xor(p2 Predicate) XorPred { return XorPred{p1, p2} }

// BetweenPred is the inclusive range test lo <= att <= hi.  lo and hi are
// literals or attributes.
type BetweenPred struct {
	att Attribute
	lo  CmpPred
	hi  CmpPred
}

// Between is an inclusive range test, lo <= att1 <= hi
func (att1 Attribute) Between(lo, hi any) BetweenPred {
	return BetweenPred{att1, att1.GE(lo), att1.LE(hi)}
}

// String representation of Between
func (p BetweenPred) String() string {
	return fmt.Sprintf("%v BETWEEN %v AND %v", p.att, operandString(p.lo), operandString(p.hi))
}

func operandString(p CmpPred) any {
	if len(p.att) == 2 {
		return p.att[1]
	}
	return p.lit
}

// Domain is the set of attributes required to evaluate the predicate
func (p BetweenPred) Domain() []Attribute {
	return unionAttributes(p.lo.Domain(), p.hi.Domain())
}

// EvalFunc returns a function which evaluates the predicate
func (p BetweenPred) EvalFunc(e reflect.Type) func(tup any) bool {
	f1 := p.lo.EvalFunc(e)
	f2 := p.hi.EvalFunc(e)
	return func(tup any) bool { return f1(tup) && f2(tup) }
}

// And predicate
func (p1 BetweenPred) And(p2 Predicate) AndPred { return AndPred{p1, p2} }

// Or predicate
func (p1 BetweenPred) Or(p2 Predicate) OrPred { return OrPred{p1, p2} }

// Xor predicate
func (p1 BetweenPred) Xor(p2 Predicate) XorPred { return XorPred{p1, p2} }

// NullPred tests whether an optional attribute is absent (IS NULL) or present
// (IS NOT NULL).  Attributes that are not optional are always present.
type NullPred struct {
	att    Attribute
	isNull bool
}

// IsNull is true when the attribute is absent
func (att1 Attribute) IsNull() NullPred { return NullPred{att1, true} }

// NotNull is true when the attribute is present
func (att1 Attribute) NotNull() NullPred { return NullPred{att1, false} }

// String representation of the null test
func (p NullPred) String() string {
	if p.isNull {
		return fmt.Sprintf("%v IS NULL", p.att)
	}
	return fmt.Sprintf("%v IS NOT NULL", p.att)
}

// Domain is the set of attributes required to evaluate the predicate
func (p NullPred) Domain() []Attribute {
	return []Attribute{p.att}
}

// EvalFunc returns a function which evaluates the predicate
func (p NullPred) EvalFunc(e reflect.Type) func(tup any) bool {
	name := string(p.att)
	return func(tup any) bool {
		_, present := unwrap(reflect.ValueOf(tup).FieldByName(name).Interface())
		return present != p.isNull
	}
}

// And predicate
func (p1 NullPred) And(p2 Predicate) AndPred { return AndPred{p1, p2} }

// Or predicate
func (p1 NullPred) Or(p2 Predicate) OrPred { return OrPred{p1, p2} }

// Xor predicate
func (p1 NullPred) Xor(p2 Predicate) XorPred { return XorPred{p1, p2} }
