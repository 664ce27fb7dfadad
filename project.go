// project implements a project expression in relational algebra

package rel

import (
	"iter"
	"reflect"

	"github.com/DimkaBraginskiy/apbd15-tut05/att"
)

// projectExpr is a type that represents a project operation
type projectExpr[T, U any] struct {
	// the input relation
	source1 Relation[T]

	// fMap maps the fields of the result type to the fields of the source
	fMap map[att.Attribute]att.FieldIndex

	err error
}

// Project creates a new relation with less than or equal degree.  U has to be
// a struct type whose attributes are a subdomain of T's, with each attribute
// of the same type as in T.  Unlike a relational project, duplicates are
// kept: there is one result tuple per source tuple.
func Project[U, T any](r Relation[T]) Relation[U] {
	r2 := &projectExpr[T, U]{source1: r}
	if err := r.Err(); err != nil {
		r2.err = err
		return r2
	}
	e1 := reflect.TypeFor[T]()
	e2 := reflect.TypeFor[U]()
	if e1.Kind() != reflect.Struct || e2.Kind() != reflect.Struct {
		r2.err = &ProjectError{From: e1, To: e2}
		return r2
	}
	r2.fMap = att.FieldMap(e2, e1)
	if missing := att.Missing(att.FieldNames(e2), att.FieldNames(e1)); len(missing) > 0 {
		r2.err = &ProjectError{From: e1, To: e2, Missing: missing}
		return r2
	}
	for name, fm := range r2.fMap {
		if !e1.Field(fm.J).Type.AssignableTo(e2.Field(fm.I).Type) {
			r2.err = &ProjectError{From: e1, To: e2, Mismatch: name}
			return r2
		}
	}
	return r2
}

// Tuples returns the projected tuples
func (r *projectExpr[T, U]) Tuples() iter.Seq[U] {
	if r.err != nil {
		return empty[U]
	}
	return func(yield func(U) bool) {
		for tup1 := range r.source1.Tuples() {
			var tup2 U
			att.CombineTuples(reflect.ValueOf(&tup2).Elem(), reflect.ValueOf(tup1), r.fMap)
			if !yield(tup2) {
				return
			}
		}
	}
}

// Err returns an error encountered during construction
func (r *projectExpr[T, U]) Err() error {
	return r.err
}

// String returns a text representation of the Relation
func (r *projectExpr[T, U]) String() string {
	return "π{" + typeHeading(reflect.TypeFor[U]()) + "}(" + r.source1.String() + ")"
}
