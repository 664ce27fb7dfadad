package rel

// variable naming conventions
//
// r, r1, r2, r3, ... all represent relations.  If there is an operation which
// has an output relation, the output relation will have the highest number
// after the r.
//
// e, e1, e2, ... all represent the reflect.Type of a relation's tuples.
//
// tup, tup1, tup2, ... all represent actual tuples going through some
// relational transformation.
//
// rtup, rtup1, rtup2, ... all represent the reflect.ValueOf(tup) with the
// appropriate identification.

import (
	"iter"
	"reflect"

	"github.com/DimkaBraginskiy/apbd15-tut05/att"
)

// Relation is an ordered, finite body of tuples of type T, either a literal
// or an expression of other relations.
type Relation[T any] interface {
	// Tuples returns the body of the relation.  Each call to the returned
	// sequence starts a new pass over the sources, so a relation can be
	// read any number of times.
	Tuples() iter.Seq[T]

	// Err returns an error encountered during construction.  A relation
	// with an error has no tuples.
	Err() error

	// String returns the relational algebra expression of the relation.
	String() string
}

// Heading is the set of attributes of the relation's tuples.  Relations of
// non-struct values have no attributes.
func Heading[T any](r Relation[T]) []att.Attribute {
	return att.FieldNames(reflect.TypeFor[T]())
}

// Deg returns the degree of the relation
func Deg[T any](r Relation[T]) int {
	return len(Heading(r))
}

// Card returns the cardinality of the relation
// note: this evaluates the whole expression.
func Card[T any](r Relation[T]) (i int) {
	for range r.Tuples() {
		i++
	}
	return
}

// Slice collects the tuples of the relation into a new slice.
func Slice[T any](r Relation[T]) []T {
	tups := make([]T, 0)
	for tup := range r.Tuples() {
		tups = append(tups, tup)
	}
	return tups
}

// firstErr returns the first non nil error, used to short circuit
// expressions built on relations that already have errors.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// empty is the body of a relation with an error.
func empty[T any](yield func(T) bool) {}
