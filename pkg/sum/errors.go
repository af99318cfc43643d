package sum

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel classes for the error taxonomy. The detail types below wrap
// them, so callers can branch with errors.Is and still read the fields
// through errors.As.
var (
	ErrUnknownKind   = errors.New("sum: unknown kind")
	ErrArityMismatch = errors.New("sum: arity mismatch")
	ErrUnhandledKind = errors.New("sum: unhandled kind")
)

// UnknownKindError reports construction (or conversion) with a kind the
// type never declared.
type UnknownKindError struct {
	TypeName string
	Kind     Kind
	Declared []Kind
}

func (e *UnknownKindError) Error() string {
	if len(e.Declared) == 0 {
		return fmt.Sprintf("sum: type %s declares no kind %q", e.TypeName, e.Kind)
	}
	return fmt.Sprintf("sum: type %s declares no kind %q (declared: %s)",
		e.TypeName, e.Kind, joinKinds(e.Declared))
}

func (e *UnknownKindError) Unwrap() error { return ErrUnknownKind }

// ArityError reports a value count that does not match the declared
// arity of the kind.
type ArityError struct {
	TypeName string
	Kind     Kind
	Want     int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("sum: %s.%s takes %d value(s), got %d", e.TypeName, e.Kind, e.Want, e.Got)
}

func (e *ArityError) Unwrap() error { return ErrArityMismatch }

// UnhandledKindError reports a match call whose cases cover neither the
// value's kind nor a default. Handled lists the kinds the cases did
// cover, sorted, so the forgotten variant is obvious at the call site.
type UnhandledKindError struct {
	TypeName string
	Kind     Kind
	Handled  []Kind
}

func (e *UnhandledKindError) Error() string {
	name := string(e.Kind)
	if e.TypeName != "" {
		name = e.TypeName + "." + name
	}
	if len(e.Handled) == 0 {
		return fmt.Sprintf("sum: no case handles %s", name)
	}
	return fmt.Sprintf("sum: no case handles %s (cases cover %s)", name, joinKinds(e.Handled))
}

func (e *UnhandledKindError) Unwrap() error { return ErrUnhandledKind }

func joinKinds(kinds []Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
