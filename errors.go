// errors are a set of types useful for type checks, given the absence
// of static type checking due to reflection.

package rel

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/DimkaBraginskiy/apbd15-tut05/att"
)

// ErrEmptyGroup is returned by aggregates that have no value for an empty
// input, such as Average.
var ErrEmptyGroup = errors.New("rel: aggregate of an empty group")

// ProjectError represents an error that occurs when a relation is projected
// onto a type that is not a subdomain of its tuples.
type ProjectError struct {
	From reflect.Type
	To   reflect.Type

	// Missing are the attributes of To that From does not have
	Missing []att.Attribute

	// Mismatch is an attribute whose type differs between From and To
	Mismatch att.Attribute
}

func (e *ProjectError) Error() string {
	switch {
	case len(e.Missing) > 0:
		names := make([]string, len(e.Missing))
		for i, a := range e.Missing {
			names[i] = string(a)
		}
		return fmt.Sprintf("rel: cannot project '%v' onto '%v': missing attribute(s) {%s}", e.From, e.To, strings.Join(names, ", "))
	case e.Mismatch != "":
		return fmt.Sprintf("rel: cannot project '%v' onto '%v': attribute %s has a different type", e.From, e.To, e.Mismatch)
	}
	return fmt.Sprintf("rel: cannot project '%v' onto '%v': tuples must be structs", e.From, e.To)
}
