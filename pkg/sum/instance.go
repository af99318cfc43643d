package sum

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Instance is one value of a sum type: exactly one kind out of the
// type's declared set, plus the associated values for that kind. It is
// immutable after construction and safe to share read-only.
type Instance struct {
	id        uuid.UUID
	createdAt time.Time
	typ       *Type
	kind      Kind
	values    []any
}

// New constructs an instance of kind with the given associated values.
// Construction is validated eagerly: an undeclared kind fails with
// *UnknownKindError, a value count different from the declared arity
// fails with *ArityError. The values slice is copied, so the caller may
// reuse its argument slice afterwards.
func (t *Type) New(kind Kind, values ...any) (Instance, error) {
	want, ok := t.arity[kind]
	if !ok {
		return Instance{}, &UnknownKindError{TypeName: t.name, Kind: kind, Declared: t.Kinds()}
	}
	if len(values) != want {
		return Instance{}, &ArityError{TypeName: t.name, Kind: kind, Want: want, Got: len(values)}
	}

	vals := make([]any, len(values))
	copy(vals, values)

	return Instance{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		typ:       t,
		kind:      kind,
		values:    vals,
	}, nil
}

// MustNew is New that panics on error
func (t *Type) MustNew(kind Kind, values ...any) Instance {
	inst, err := t.New(kind, values...)
	if err != nil {
		panic(err)
	}
	return inst
}

func (i Instance) Kind() Kind {
	return i.kind
}

// Values returns a copy of the associated values; the values themselves
// are shared, not cloned.
func (i Instance) Values() []any {
	vals := make([]any, len(i.values))
	copy(vals, i.values)
	return vals
}

// Value returns the associated value at position idx
func (i Instance) Value(idx int) (any, bool) {
	if idx < 0 || idx >= len(i.values) {
		return nil, false
	}
	return i.values[idx], true
}

// Len returns the number of associated values
func (i Instance) Len() int {
	return len(i.values)
}

func (i Instance) Type() *Type {
	return i.typ
}

func (i Instance) TypeName() string {
	if i.typ == nil {
		return ""
	}
	return i.typ.name
}

// Is reports whether the instance currently holds kind
func (i Instance) Is(kind Kind) bool {
	return i.kind == kind
}

// IsZero reports whether the instance is the zero Instance, i.e. was
// never constructed through a Type.
func (i Instance) IsZero() bool {
	return i.typ == nil
}

func (i Instance) Id() uuid.UUID {
	return i.id
}

func (i Instance) CreatedAt() time.Time {
	return i.createdAt
}

func (i Instance) String() string {
	if i.typ == nil {
		return "<invalid Instance>"
	}
	var sb strings.Builder
	sb.WriteString(i.typ.name)
	sb.WriteByte('.')
	sb.WriteString(string(i.kind))
	sb.WriteByte('(')
	for n, v := range i.values {
		if n > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte(')')
	return sb.String()
}
