package sum

// Tagged is the minimal view of a sum value: something that knows
// which variant it currently is.
type Tagged interface {
	// Kind returns the active variant name
	Kind() Kind
}

// Valued extends Tagged with access to the associated values, which is
// all the dispatch in package match needs. Instance implements it, and
// so do the typed companions in the maybe and either packages.
type Valued interface {
	Tagged
	// Values returns the associated values in positional order
	Values() []any
}

//type Named interface {
//	Valued
//	TypeName() string
//}
