package sum

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind names one variant of a sum type
type Kind string

// Variant declares one alternative of a sum type: its name and how many
// associated values it carries.
type Variant struct {
	Name  Kind
	Arity int
}

// Type is the variant schema of one sum type. It is defined once and
// never changes afterwards; there is deliberately no way to add or
// remove variants from an existing Type.
type Type struct {
	name  string
	arity map[Kind]int
	order []Kind
}

// Define declares a sum type from its variant set. Variant names must be
// unique and non-empty, arity must not be negative. An empty variant set
// is legal and yields an uninhabited type that no New call can satisfy.
func Define(name string, variants ...Variant) (*Type, error) {
	if name == "" {
		return nil, fmt.Errorf("sum: type name is empty")
	}

	t := &Type{
		name:  name,
		arity: make(map[Kind]int, len(variants)),
		order: make([]Kind, 0, len(variants)),
	}

	for _, v := range variants {
		if v.Name == "" {
			return nil, fmt.Errorf("sum: type %s declares a variant with an empty name", name)
		}
		if v.Arity < 0 {
			return nil, fmt.Errorf("sum: variant %s.%s has negative arity %d", name, v.Name, v.Arity)
		}
		if _, dup := t.arity[v.Name]; dup {
			return nil, fmt.Errorf("sum: variant %s.%s declared twice", name, v.Name)
		}
		t.arity[v.Name] = v.Arity
		t.order = append(t.order, v.Name)
	}

	return t, nil
}

// MustDefine is Define that panics on error, for package-level schemas
func MustDefine(name string, variants ...Variant) *Type {
	t, err := Define(name, variants...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the declared type name
func (t *Type) Name() string {
	return t.name
}

// Kinds returns the variant names in declaration order
func (t *Type) Kinds() []Kind {
	kinds := make([]Kind, len(t.order))
	copy(kinds, t.order)
	return kinds
}

// Has reports whether kind is declared on this type
func (t *Type) Has(kind Kind) bool {
	_, ok := t.arity[kind]
	return ok
}

// Arity returns the declared value count for kind and whether the kind
// is declared at all.
func (t *Type) Arity(kind Kind) (int, bool) {
	n, ok := t.arity[kind]
	return n, ok
}

func (t *Type) String() string {
	var sb strings.Builder
	sb.WriteString(t.name)
	sb.WriteByte('(')
	for i, k := range t.order {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(k))
		sb.WriteByte('/')
		sb.WriteString(strconv.Itoa(t.arity[k]))
	}
	sb.WriteByte(')')
	return sb.String()
}
