package att

import (
	"math"
	"math/big"
	"reflect"

	"github.com/shopspring/decimal"
)

// optional is implemented by values that may be absent, such as
// opt.Option.  An absent value compares to nothing, the way a null does.
type optional interface {
	AnyValue() (any, bool)
}

// Compare returns -1, 0 or 1 depending on whether a is less than, equal to or
// greater than b.  All integer, unsigned, float and decimal.Decimal values
// are compared as decimals, so an int attribute can be compared to a decimal
// literal.  Strings (and types based on string) compare lexically.  Present
// optional values are unwrapped before comparison.
func Compare(a, b any) (int, error) {
	a1, ok1 := unwrap(a)
	b1, ok2 := unwrap(b)
	if !ok1 || !ok2 {
		return 0, &CompareError{a, b}
	}
	if x, ok := toDecimal(a1); ok {
		if y, ok := toDecimal(b1); ok {
			return x.Cmp(y), nil
		}
		return 0, &CompareError{a, b}
	}
	ra := reflect.ValueOf(a1)
	rb := reflect.ValueOf(b1)
	if ra.Kind() == reflect.String && rb.Kind() == reflect.String {
		x, y := ra.String(), rb.String()
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		}
		return 0, nil
	}
	return 0, &CompareError{a, b}
}

// Equal reports whether a and b hold the same value.  Values Compare can
// order are equal when they compare to 0, otherwise comparable values are
// compared with ==.  Absent optional values are never equal to anything.
func Equal(a, b any) bool {
	if c, err := Compare(a, b); err == nil {
		return c == 0
	}
	a1, ok1 := unwrap(a)
	b1, ok2 := unwrap(b)
	if !ok1 || !ok2 || a1 == nil || b1 == nil {
		return false
	}
	if !reflect.TypeOf(a1).Comparable() || reflect.TypeOf(a1) != reflect.TypeOf(b1) {
		return false
	}
	return a1 == b1
}

// Absent reports whether v is an optional value with nothing in it.
func Absent(v any) bool {
	_, ok := unwrap(v)
	return !ok
}

func unwrap(v any) (any, bool) {
	if o, ok := v.(optional); ok {
		return o.AnyValue()
	}
	return v, true
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, true
	case *decimal.Decimal:
		if x == nil {
			return decimal.Decimal{}, false
		}
		return *x, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(f), true
	}
	return decimal.Decimal{}, false
}
