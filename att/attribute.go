// Package att represents attributes, and the predicates constructed from
// attributes.  Tuples are structs with exported fields, and the fields of the
// struct are the attributes of the tuple it represents.
package att

import (
	"reflect"
)

// Attribute represents a particular attribute's name in a relation
type Attribute string

// FieldIndex is used to map between attributes in different tuple types
// that have the same name.  I and J are struct field indexes.
type FieldIndex struct {
	I int
	J int
}

// Fields returns the exported, non-embedded fields of a struct type in
// declaration order.  Any other kind of type has no fields.
func Fields(e reflect.Type) []reflect.StructField {
	if e == nil || e.Kind() != reflect.Struct {
		return nil
	}
	n := e.NumField()
	fields := make([]reflect.StructField, 0, n)
	for i := 0; i < n; i++ {
		f := e.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}

// FieldNames takes a reflect.Type of a struct and returns field names in order
func FieldNames(e reflect.Type) []Attribute {
	fields := Fields(e)
	names := make([]Attribute, len(fields))
	for i, f := range fields {
		names[i] = Attribute(f.Name)
	}
	return names
}

// FieldTypes takes a reflect.Type of a struct and returns field types in order
func FieldTypes(e reflect.Type) []reflect.Type {
	fields := Fields(e)
	types := make([]reflect.Type, len(fields))
	for i, f := range fields {
		types[i] = f.Type
	}
	return types
}

// FieldMap creates a map from fields of one struct type to the fields of
// another.  The returned map's values have two fields I, J, which indicate
// the location of the field in the input types.  If the field is absent from
// either of the inputs, it is not returned.
func FieldMap(e1, e2 reflect.Type) map[Attribute]FieldIndex {
	m := make(map[Attribute]FieldIndex)
	fields2 := Fields(e2)
	for _, f1 := range Fields(e1) {
		for _, f2 := range fields2 {
			if f1.Name == f2.Name {
				m[Attribute(f1.Name)] = FieldIndex{f1.Index[0], f2.Index[0]}
				break
			}
		}
	}
	return m
}

// IsSubDomain returns true if the attributes in sub are all members of dom,
// otherwise false
func IsSubDomain(sub, dom []Attribute) bool {
SubLoop:
	for _, n1 := range sub {
		for _, n2 := range dom {
			if n1 == n2 {
				continue SubLoop
			}
		}
		return false
	}
	return true
}

// Missing returns the attributes of sub that are not in dom.
func Missing(sub, dom []Attribute) []Attribute {
	var missing []Attribute
SubLoop:
	for _, n1 := range sub {
		for _, n2 := range dom {
			if n1 == n2 {
				continue SubLoop
			}
		}
		missing = append(missing, n1)
	}
	return missing
}

// CombineTuples assigns the fields in from to the fields of to with the same
// names.  to has to be addressable.
func CombineTuples(to, from reflect.Value, fMap map[Attribute]FieldIndex) {
	for _, fm := range fMap {
		to.Field(fm.I).Set(from.Field(fm.J))
	}
}

// PartialEquals returns true when two tuples have equal values in the
// attributes with the same names.
func PartialEquals(tup1, tup2 reflect.Value, fMap map[Attribute]FieldIndex) bool {
	for _, fm := range fMap {
		if !Equal(tup1.Field(fm.I).Interface(), tup2.Field(fm.J).Interface()) {
			return false
		}
	}
	return true
}

// unionAttributes produces a union of two sets of attributes, without dups
// assuming that the input attributes are already unique. This returns a copy
// and does not modify the inputs.
func unionAttributes(att1 []Attribute, att2 []Attribute) []Attribute {
	// For small sets of attributes (which should be typical!) this should be
	// faster than a map.
	att := make([]Attribute, len(att1))
	copy(att, att1)
Found:
	for _, v2 := range att2 {
		for _, v1 := range att1 {
			if v1 == v2 {
				continue Found
			}
		}
		att = append(att, v2)
	}
	return att
}
