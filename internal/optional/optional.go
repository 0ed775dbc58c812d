// Package optional models a value that is either present or absent.
//
// Used for probability-gated room fields where "not rolled" must stay distinct
// from "rolled, but empty".
package optional

// Value holds a T that may be absent
type Value[T any] struct {
	value   T
	present bool
}

// Some wraps a present value
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

// None returns an absent value
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the value and whether it is present
func (v Value[T]) Get() (T, bool) {
	return v.value, v.present
}

// IsPresent reports whether a value was set
func (v Value[T]) IsPresent() bool {
	return v.present
}

// OrElse returns the value, or fallback when absent
func (v Value[T]) OrElse(fallback T) T {
	if !v.present {
		return fallback
	}
	return v.value
}

// IsZero lets yaml omitempty drop absent values
func (v Value[T]) IsZero() bool {
	return !v.present
}

// MarshalYAML encodes the wrapped value, or null when absent
func (v Value[T]) MarshalYAML() (interface{}, error) {
	if !v.present {
		return nil, nil
	}
	return v.value, nil
}
