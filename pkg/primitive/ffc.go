package primitive

// Ffc represents finite field cryptography parameters such as those
// used by DSA and Diffie-Hellman: L is the bit length of the field and
// N the bit length of the subgroup order. Standards classify the pair
// directly rather than a derived scalar, so any L >= N pair is
// structurally legal.
type Ffc struct {
	L uint16
	N uint16
}

func (Ffc) isAsymmetric() {}

// Parameter sizes from FIPS 186-4 and SP 800-57.
var (
	FFC1024_160  = Ffc{L: 1024, N: 160}
	FFC2048_224  = Ffc{L: 2048, N: 224}
	FFC2048_256  = Ffc{L: 2048, N: 256}
	FFC3072_256  = Ffc{L: 3072, N: 256}
	FFC7680_384  = Ffc{L: 7680, N: 384}
	FFC15360_512 = Ffc{L: 15360, N: 512}
)

// FfcNotSupported is the sentinel for unrecognised group parameters.
var FfcNotSupported = Ffc{}
