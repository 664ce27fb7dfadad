// strings deals with string representation of relations

package rel

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"text/tabwriter"

	"github.com/DimkaBraginskiy/apbd15-tut05/att"
)

// HeadingString is a comma separated list of the attributes of a relation.
func HeadingString[T any](r Relation[T]) string {
	return typeHeading(reflect.TypeFor[T]())
}

// typeHeading lists the attributes of a tuple type, or names the type if it
// is not a struct.
func typeHeading(e reflect.Type) string {
	if e.Kind() != reflect.Struct {
		return e.String()
	}
	names := att.FieldNames(e)
	s := make([]string, len(names))
	for i, n := range names {
		s[i] = string(n)
	}
	return strings.Join(s, ", ")
}

// PrettyPrint renders the relation as a table.  Relations of non-struct
// values have a single column named by the type.
func PrettyPrint[T any](r Relation[T]) string {
	if err := r.Err(); err != nil {
		return err.Error()
	}
	e := reflect.TypeFor[T]()

	var cn []string
	var fields []int
	if e.Kind() == reflect.Struct {
		for _, f := range att.Fields(e) {
			cn = append(cn, f.Name)
			fields = append(fields, f.Index[0])
		}
	} else {
		cn = []string{e.String()}
	}

	// use a buffer to write to and later turn into a string
	s := new(bytes.Buffer)

	w := new(tabwriter.Writer)
	// \xff is used as an escape delim; see the tabwriter docs
	// align elements to the right as well
	w.Init(s, 1, 1, 1, ' ', tabwriter.StripEscape|tabwriter.AlignRight)

	// make a spacer, to be replaced later
	for range cn {
		fmt.Fprintf(w, "+\t ")
	}
	fmt.Fprintf(w, "\t+\n")

	// heading
	for _, name := range cn {
		fmt.Fprintf(w, "|\t \xff%s\xff ", name)
	}
	fmt.Fprintf(w, "\t|\n")

	// write the body
	for tup := range r.Tuples() {
		rtup := reflect.ValueOf(tup)
		if fields == nil {
			fmt.Fprintf(w, "|\t \xff%s\xff ", formatValue(rtup))
		}
		for _, j := range fields {
			fmt.Fprintf(w, "|\t \xff%s\xff ", formatValue(rtup.Field(j)))
		}
		fmt.Fprintf(w, "\t|\n")
	}

	w.Flush()
	str := s.String()

	// replace the blanks in the spacers with "-"
	lineWidth := strings.Index(str, "\n")
	sep := " " + strings.Replace(str[1:lineWidth], " ", "-", -1)
	return sep + str[lineWidth:lineWidth*2+2] + sep + str[lineWidth*2+1:] + sep
}

func formatValue(f reflect.Value) string {
	if s, ok := f.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%g", f.Float())
	}
	return fmt.Sprintf("%v", f.Interface())
}
