package primitive

// Ifc represents integer factorisation cryptography parameters such as
// those used by RSA: K is the bit length of the modulus. Any positive
// modulus size is structurally legal; standards classify K alone.
type Ifc struct {
	K uint16
}

func (Ifc) isAsymmetric() {}

// Common modulus sizes. The 2048/3072/7680/15360 instances are the
// canonical tier representatives used by SP 800-57 aligned standards.
var (
	IFC1024  = Ifc{K: 1024}
	IFC2048  = Ifc{K: 2048}
	IFC3072  = Ifc{K: 3072}
	IFC4096  = Ifc{K: 4096}
	IFC7680  = Ifc{K: 7680}
	IFC8192  = Ifc{K: 8192}
	IFC15360 = Ifc{K: 15360}
)

// IfcNotSupported is the sentinel for unrecognised moduli.
var IfcNotSupported = Ifc{}
