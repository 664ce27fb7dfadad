// Package opt provides an explicit optional value.  An absent value is a
// state of its own, never a sentinel such as zero.
package opt

import (
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"
)

// Option holds a value of type T or nothing.  The zero Option is absent.
type Option[T any] struct {
	v  T
	ok bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{v, true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.v, o.ok
}

// IsPresent reports whether the Option holds a value.
func (o Option[T]) IsPresent() bool {
	return o.ok
}

// OrElse returns the value if present, otherwise v.
func (o Option[T]) OrElse(v T) T {
	if o.ok {
		return o.v
	}
	return v
}

// AnyValue returns the value as an interface, used by attribute predicates
// to treat an absent value like a null.
func (o Option[T]) AnyValue() (any, bool) {
	if !o.ok {
		return nil, false
	}
	return o.v, true
}

// All returns a sequence of zero or one element.
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.ok {
			yield(o.v)
		}
	}
}

// Equal reports whether both options are absent, or both are present with
// equal values.  Values with an Equal method, like decimal.Decimal, are
// compared with it.
func (o Option[T]) Equal(o2 Option[T]) bool {
	if o.ok != o2.ok {
		return false
	}
	if !o.ok {
		return true
	}
	if eq, ok := any(o.v).(interface{ Equal(T) bool }); ok {
		return eq.Equal(o2.v)
	}
	return any(o.v) == any(o2.v)
}

// String returns the value formatted with %v, or null.
func (o Option[T]) String() string {
	if !o.ok {
		return "null"
	}
	return fmt.Sprintf("%v", o.v)
}

// MarshalYAML encodes an absent value as null.
func (o Option[T]) MarshalYAML() (any, error) {
	if !o.ok {
		return nil, nil
	}
	return o.v, nil
}

// UnmarshalYAML decodes null (or ~) as absent and anything else as a
// present value.
func (o *Option[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.ShortTag() == "!!null" {
		*o = None[T]()
		return nil
	}
	var v T
	if err := value.Decode(&v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// Map applies f to the value of o when it is present.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[U]()
}
