package match

import (
	"errors"
	"fmt"
	"slices"

	"github.com/theandrebass/Sum-Types/pkg/sum"
)

// Handler consumes the associated values of one kind and produces R.
// The values arrive positionally, in construction order.
type Handler[R any] func(values ...any) R

// Effect consumes the associated values of one kind for side effects only
type Effect func(values ...any)

// Cases maps kinds to handlers for one match call. Default is the
// wildcard: a distinct, optional slot rather than a reserved kind name,
// so a real variant can never collide with it. It takes no arguments
// regardless of the arity of the kind it stands in for.
type Cases[R any] struct {
	When    map[sum.Kind]Handler[R]
	Default func() R
}

// EffectCases is Cases for side-effect dispatch via Do
type EffectCases struct {
	When    map[sum.Kind]Effect
	Default func()
}

// On returns a copy of the cases with a handler registered for kind.
// The receiver is left untouched, so partial case sets can be shared
// and extended per call site.
func (c Cases[R]) On(kind sum.Kind, handler Handler[R]) Cases[R] {
	when := make(map[sum.Kind]Handler[R], len(c.When)+1)
	for k, h := range c.When {
		when[k] = h
	}
	when[kind] = handler
	return Cases[R]{When: when, Default: c.Default}
}

// Otherwise returns a copy of the cases with the default slot set
func (c Cases[R]) Otherwise(def func() R) Cases[R] {
	return Cases[R]{When: c.When, Default: def}
}

// On returns a copy of the effect cases with an effect registered for kind
func (c EffectCases) On(kind sum.Kind, effect Effect) EffectCases {
	when := make(map[sum.Kind]Effect, len(c.When)+1)
	for k, e := range c.When {
		when[k] = e
	}
	when[kind] = effect
	return EffectCases{When: when, Default: c.Default}
}

// Otherwise returns a copy of the effect cases with the default slot set
func (c EffectCases) Otherwise(def func()) EffectCases {
	return EffectCases{When: c.When, Default: def}
}

// Match dispatches v to the case matching its kind. Exactly one handler
// runs per call: the kind's own handler with the associated values
// spread as arguments, or Default with no arguments when the kind has
// no handler. A nil map entry counts as no handler. When neither is
// available Match fails with *sum.UnhandledKindError naming the missed
// kind and the kinds the cases did cover.
func Match[R any](v sum.Valued, cases Cases[R]) (R, error) {
	kind := v.Kind()

	if h, ok := cases.When[kind]; ok && h != nil {
		return h(v.Values()...), nil
	}
	if cases.Default != nil {
		return cases.Default(), nil
	}

	var zero R
	handled := make([]sum.Kind, 0, len(cases.When))
	for k, h := range cases.When {
		if h != nil {
			handled = append(handled, k)
		}
	}
	slices.Sort(handled)
	return zero, &sum.UnhandledKindError{TypeName: typeName(v), Kind: kind, Handled: handled}
}

// MustMatch is Match that panics on an unhandled kind
func MustMatch[R any](v sum.Valued, cases Cases[R]) R {
	r, err := Match(v, cases)
	if err != nil {
		panic(err)
	}
	return r
}

// Do dispatches v for side effects only, with the same case selection
// rules as Match.
func Do(v sum.Valued, cases EffectCases) error {
	kind := v.Kind()

	if e, ok := cases.When[kind]; ok && e != nil {
		e(v.Values()...)
		return nil
	}
	if cases.Default != nil {
		cases.Default()
		return nil
	}

	handled := make([]sum.Kind, 0, len(cases.When))
	for k, e := range cases.When {
		if e != nil {
			handled = append(handled, k)
		}
	}
	slices.Sort(handled)
	return &sum.UnhandledKindError{TypeName: typeName(v), Kind: kind, Handled: handled}
}

// Exhaustive verifies that cases carry a handler for every kind t
// declares, ignoring Default. It reports all missing kinds at once as
// joined *sum.UnhandledKindError values, or nil when every kind is
// covered. Useful in tests to keep case sets in step with a schema.
func Exhaustive[R any](t *sum.Type, cases Cases[R]) error {
	handled := make([]sum.Kind, 0, len(cases.When))
	for k, h := range cases.When {
		if h != nil {
			handled = append(handled, k)
		}
	}
	slices.Sort(handled)

	var errs []error
	for _, kind := range t.Kinds() {
		if h, ok := cases.When[kind]; !ok || h == nil {
			errs = append(errs, &sum.UnhandledKindError{TypeName: t.Name(), Kind: kind, Handled: handled})
		}
	}
	return errors.Join(errs...)
}

// typeName recovers the defining type's name when the value carries one
func typeName(v sum.Valued) string {
	if named, ok := v.(interface{ TypeName() string }); ok {
		return named.TypeName()
	}
	return ""
}

// Nullary adapts a zero-argument function to a Handler
func Nullary[R any](fn func() R) Handler[R] {
	return func(values ...any) R {
		return fn()
	}
}

// Unary adapts a typed one-argument function to a Handler. The adapters
// assume the declared arity of the kind they are registered for; a
// missing or differently typed value is a programmer error and panics.
func Unary[A, R any](fn func(A) R) Handler[R] {
	return func(values ...any) R {
		return fn(arg[A](values, 0))
	}
}

// Binary adapts a typed two-argument function to a Handler
func Binary[A, B, R any](fn func(A, B) R) Handler[R] {
	return func(values ...any) R {
		return fn(arg[A](values, 0), arg[B](values, 1))
	}
}

// Ternary adapts a typed three-argument function to a Handler
func Ternary[A, B, C, R any](fn func(A, B, C) R) Handler[R] {
	return func(values ...any) R {
		return fn(arg[A](values, 0), arg[B](values, 1), arg[C](values, 2))
	}
}

func arg[A any](values []any, idx int) A {
	if idx >= len(values) {
		panic(fmt.Sprintf("sum/match: case reads value %d, instance carries %d", idx, len(values)))
	}
	a, ok := values[idx].(A)
	if !ok {
		var want A
		panic(fmt.Sprintf("sum/match: value %d is %T, case wants %T", idx, values[idx], want))
	}
	return a
}
