package try

import (
	"cmp"
	"fmt"
	"reflect"
)

// Option represents an optional value: either Some wrapping a value of type
// T, or None. The zero value is None, so None is a structural marker rather
// than a shared sentinel object.
type Option[T any] struct {
	value   T
	defined bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, defined: true}
}

// None returns the empty Option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromValue wraps v in an Option, returning None when v is empty. Empty
// means: nil pointers, interfaces, functions, channels, maps and slices;
// zero-length strings, slices, maps and arrays; numeric zero; false; and
// zero structs. This conversion inspects v at runtime and is a convenience,
// not a primary construction path — prefer Some and None.
func FromValue[T any](v T) Option[T] {
	if isEmpty(v) {
		return None[T]()
	}
	return Some(v)
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return rv.IsZero()
	}
}

// IsDefined reports whether o holds a value.
func (o Option[T]) IsDefined() bool {
	return o.defined
}

// IsEmpty reports whether o is None.
func (o Option[T]) IsEmpty() bool {
	return !o.defined
}

// Map applies f to the wrapped value if o is a Some and returns the
// transformed Some. None is returned unchanged and f is never invoked.
func (o Option[T]) Map(f func(T) T) Option[T] {
	if !o.defined {
		return o
	}
	return Some(f(o.value))
}

// Get returns the wrapped value. Calling Get on None returns an error
// wrapping ErrNoSuchElement.
func (o Option[T]) Get() (T, error) {
	if o.defined {
		return o.value, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: Get on None", ErrNoSuchElement)
}

// GetOrElse returns the wrapped value if o is a Some, else def.
func (o Option[T]) GetOrElse(def T) T {
	if o.defined {
		return o.value
	}
	return def
}

// Filter returns o when it is a Some whose value satisfies the predicate,
// and None otherwise. On None the predicate is not invoked.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if !o.defined || pred(o.value) {
		return o
	}
	return None[T]()
}

// String renders o as Some(v) or None.
func (o Option[T]) String() string {
	if o.defined {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// CompareOptions orders two Options: None is strictly less than any Some,
// None equals None, and two Somes compare by wrapped value.
func CompareOptions[T cmp.Ordered](a, b Option[T]) int {
	switch {
	case a.defined && b.defined:
		return cmp.Compare(a.value, b.value)
	case a.defined:
		return 1
	case b.defined:
		return -1
	default:
		return 0
	}
}

// EqualOptions reports whether two Options have the same variant and equal
// wrapped values.
func EqualOptions[T comparable](a, b Option[T]) bool {
	if a.defined != b.defined {
		return false
	}
	return !a.defined || a.value == b.value
}
