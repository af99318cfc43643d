package maybe

import (
	"fmt"

	"github.com/theandrebass/Sum-Types/pkg/sum"
)

// Kinds of the canonical Maybe schema
const (
	KindJust    = sum.Kind("Just")
	KindNothing = sum.Kind("Nothing")
)

var typ = sum.MustDefine("Maybe",
	sum.Variant{Name: KindJust, Arity: 1},
	sum.Variant{Name: KindNothing},
)

// Type returns the canonical engine schema for Maybe: Just carrying one
// value, Nothing carrying none.
func Type() *sum.Type {
	return typ
}

// Maybe is an optional value: Just a value of type T, or Nothing.
type Maybe[T any] struct {
	just  bool
	value T
}

// Just creates a Maybe holding v
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{just: true, value: v}
}

// Nothing creates an empty Maybe
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust returns true if a value is present
func (m Maybe[T]) IsJust() bool {
	return m.just
}

// IsNothing returns true if no value is present
func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// Get returns the value and true, or zero and false
func (m Maybe[T]) Get() (T, bool) {
	if m.just {
		return m.value, true
	}
	var zero T
	return zero, false
}

// OrElse returns the value, or def when the Maybe is Nothing
func (m Maybe[T]) OrElse(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// Kind implements sum.Tagged
func (m Maybe[T]) Kind() sum.Kind {
	if m.just {
		return KindJust
	}
	return KindNothing
}

// Values implements sum.Valued: one value for Just, none for Nothing
func (m Maybe[T]) Values() []any {
	if m.just {
		return []any{m.value}
	}
	return nil
}

// TypeName names the canonical schema in dispatch errors
func (Maybe[T]) TypeName() string {
	return typ.Name()
}

// Match pattern matches on the Maybe, calling onJust or onNothing.
// Both branches are required, so the call site is exhaustive by
// construction.
func Match[T, R any](m Maybe[T], onJust func(T) R, onNothing func() R) R {
	if m.just {
		return onJust(m.value)
	}
	return onNothing()
}

// Map applies a function to the value inside Just
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if m.just {
		return Just(f(m.value))
	}
	return Nothing[U]()
}

// FlatMap sequences two Maybe computations
func FlatMap[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if m.just {
		return f(m.value)
	}
	return Nothing[U]()
}

// From converts a dynamic sum value with the Maybe kinds back into a
// typed Maybe. The kind must be Just or Nothing and a Just value must
// assert to T.
func From[T any](v sum.Valued) (Maybe[T], error) {
	switch v.Kind() {
	case KindJust:
		values := v.Values()
		if len(values) != 1 {
			return Nothing[T](), &sum.ArityError{TypeName: typ.Name(), Kind: KindJust, Want: 1, Got: len(values)}
		}
		value, ok := values[0].(T)
		if !ok {
			var want T
			return Nothing[T](), fmt.Errorf("sum/maybe: Just carries %T, want %T", values[0], want)
		}
		return Just(value), nil
	case KindNothing:
		return Nothing[T](), nil
	default:
		return Nothing[T](), &sum.UnknownKindError{TypeName: typ.Name(), Kind: v.Kind(), Declared: typ.Kinds()}
	}
}
