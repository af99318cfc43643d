package either

import (
	"fmt"

	"github.com/theandrebass/Sum-Types/pkg/sum"
)

// Kinds of the canonical Either schema
const (
	KindLeft  = sum.Kind("Left")
	KindRight = sum.Kind("Right")
)

var typ = sum.MustDefine("Either",
	sum.Variant{Name: KindLeft, Arity: 1},
	sum.Variant{Name: KindRight, Arity: 1},
)

// Type returns the canonical engine schema for Either: Left and Right,
// one value each.
func Type() *sum.Type {
	return typ
}

// Either holds exactly one of two alternatives: Left of type L, by
// convention the error or secondary case, or Right of type R.
type Either[L, R any] struct {
	isRight bool
	left    L
	right   R
}

// Left creates an Either holding the left alternative
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{isRight: false, left: l}
}

// Right creates an Either holding the right alternative
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{isRight: true, right: r}
}

// IsLeft returns true if this is a Left value
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if this is a Right value
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// GetLeft returns the Left value and true, or zero and false
func (e Either[L, R]) GetLeft() (L, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero L
	return zero, false
}

// GetRight returns the Right value and true, or zero and false
func (e Either[L, R]) GetRight() (R, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero R
	return zero, false
}

// Kind implements sum.Tagged
func (e Either[L, R]) Kind() sum.Kind {
	if e.isRight {
		return KindRight
	}
	return KindLeft
}

// Values implements sum.Valued: the single carried alternative
func (e Either[L, R]) Values() []any {
	if e.isRight {
		return []any{e.right}
	}
	return []any{e.left}
}

// TypeName names the canonical schema in dispatch errors
func (Either[L, R]) TypeName() string {
	return typ.Name()
}

// Match pattern matches on the Either, calling onLeft or onRight
func Match[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Map applies a function to the Right value
func Map[L, R, U any](e Either[L, R], f func(R) U) Either[L, U] {
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Left[L, U](e.left)
}

// MapLeft applies a function to the Left value
func MapLeft[L, M, R any](e Either[L, R], f func(L) M) Either[M, R] {
	if e.isRight {
		return Right[M](e.right)
	}
	return Left[M, R](f(e.left))
}

// FlatMap sequences two Either computations
func FlatMap[L, R, U any](e Either[L, R], f func(R) Either[L, U]) Either[L, U] {
	if e.isRight {
		return f(e.right)
	}
	return Left[L, U](e.left)
}

// From converts a dynamic sum value with the Either kinds back into a
// typed Either. The kind must be Left or Right and the carried value
// must assert to L or R respectively.
func From[L, R any](v sum.Valued) (Either[L, R], error) {
	kind := v.Kind()
	if kind != KindLeft && kind != KindRight {
		return Either[L, R]{}, &sum.UnknownKindError{TypeName: typ.Name(), Kind: kind, Declared: typ.Kinds()}
	}

	values := v.Values()
	if len(values) != 1 {
		return Either[L, R]{}, &sum.ArityError{TypeName: typ.Name(), Kind: kind, Want: 1, Got: len(values)}
	}

	if kind == KindLeft {
		l, ok := values[0].(L)
		if !ok {
			var want L
			return Either[L, R]{}, fmt.Errorf("sum/either: Left carries %T, want %T", values[0], want)
		}
		return Left[L, R](l), nil
	}

	r, ok := values[0].(R)
	if !ok {
		var want R
		return Either[L, R]{}, fmt.Errorf("sum/either: Right carries %T, want %T", values[0], want)
	}
	return Right[L, R](r), nil
}
