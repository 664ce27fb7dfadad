// errors are a set of types useful for type checks, given the absence
// of static type checking due to reflection.

package att

import (
	"fmt"
	"reflect"
	"strings"
)

// DomainError represents an error that occurs when a predicate or ordering
// refers to attributes that the tuples of a relation do not have.
type DomainError struct {
	Tuple   reflect.Type
	Missing []Attribute
}

func (e *DomainError) Error() string {
	names := make([]string, len(e.Missing))
	for i, a := range e.Missing {
		names[i] = string(a)
	}
	return fmt.Sprintf("rel: tuple '%v' has no attribute(s) {%s}", e.Tuple, strings.Join(names, ", "))
}

// CompareError represents two values that have no ordering between them,
// including absent optional values.
type CompareError struct {
	A any
	B any
}

func (e *CompareError) Error() string {
	return fmt.Sprintf("rel: cannot compare '%v' (%T) with '%v' (%T)", e.A, e.A, e.B, e.B)
}

// TypeError represents an ad hoc predicate whose input type has an attribute
// that cannot be assigned from the attribute of the same name in the tuple.
type TypeError struct {
	Tuple    reflect.Type
	Input    reflect.Type
	Mismatch Attribute
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("rel: predicate on '%v' cannot read attribute %s of tuple '%v'", e.Input, e.Mismatch, e.Tuple)
}

// Validate returns an error if the predicate's domain is not a subdomain of
// the attributes of the tuple type e, or if an ad hoc predicate in it takes
// an attribute with a type the tuple's attribute is not assignable to.
func Validate(p Predicate, e reflect.Type) error {
	if missing := Missing(p.Domain(), FieldNames(e)); len(missing) > 0 {
		return &DomainError{e, missing}
	}
	return checkInputs(p, e)
}

// projector is implemented by predicates which project tuples onto their
// own input type before evaluating them.
type projector interface {
	inputType() reflect.Type
}

func checkInputs(p Predicate, e reflect.Type) error {
	switch p := p.(type) {
	case NotPred:
		return checkInputs(p.P, e)
	case AndPred:
		return checkBoth(p.P1, p.P2, e)
	case OrPred:
		return checkBoth(p.P1, p.P2, e)
	case XorPred:
		return checkBoth(p.P1, p.P2, e)
	case projector:
		e2 := p.inputType()
		if e == e2 || e.Kind() != reflect.Struct || e2.Kind() != reflect.Struct {
			return nil
		}
		fMap := FieldMap(e2, e)
		for _, name := range FieldNames(e2) {
			fm := fMap[name]
			if !e.Field(fm.J).Type.AssignableTo(e2.Field(fm.I).Type) {
				return &TypeError{e, e2, name}
			}
		}
	}
	return nil
}

func checkBoth(p1, p2 Predicate, e reflect.Type) error {
	if err := checkInputs(p1, e); err != nil {
		return err
	}
	return checkInputs(p2, e)
}
