package primitive

// Asymmetric is the union of the three asymmetric key families. It is
// a sealed interface: exactly Ecc, Ffc and Ifc implement it, so a type
// switch over the three variants is exhaustive. Wrapping a family
// value and switching back yields the identical value; the union
// carries no state of its own.
type Asymmetric interface {
	isAsymmetric()
}

var (
	_ Asymmetric = Ecc{}
	_ Asymmetric = Ffc{}
	_ Asymmetric = Ifc{}
)
