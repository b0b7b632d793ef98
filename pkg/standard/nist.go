package standard

import "github.com/keywarden/keywarden/pkg/primitive"

// NIST SP 800-57 Part 1 Revision 5.
//
// Security strengths and transition years follow pages 54-56 of the
// standard. The 112-bit tiers are scheduled for retirement after 2031,
// except three-key triple DES which SP 800-131A Revision 2 deprecates
// through 2023.

type nistStandard struct{}

func (nistStandard) Name() string { return "nist" }

const (
	nistCutoff      uint16 = 2031
	nistCutoff3TDEA uint16 = 2023
)

var nistHashes = map[uint16]bool{
	primitive.SHA1.ID:       true,
	primitive.SHA224.ID:     true,
	primitive.SHA256.ID:     true,
	primitive.SHA384.ID:     true,
	primitive.SHA512.ID:     true,
	primitive.SHA512_224.ID: true,
	primitive.SHA512_256.ID: true,
	primitive.SHA3_224.ID:   true,
	primitive.SHA3_256.ID:   true,
	primitive.SHA3_384.ID:   true,
	primitive.SHA3_512.ID:   true,
}

var nistCiphers = map[uint16]bool{
	primitive.TDEA2.ID:  true,
	primitive.TDEA3.ID:  true,
	primitive.AES128.ID: true,
	primitive.AES192.ID: true,
	primitive.AES256.ID: true,
}

// Curves recommended by SP 800-186 and FIPS 186-5.
var nistCurves = map[uint16]bool{
	primitive.PRIME192V1.ID: true,
	primitive.SECP224R1.ID:  true,
	primitive.PRIME256V1.ID: true,
	primitive.SECP384R1.ID:  true,
	primitive.SECP521R1.ID:  true,
	primitive.SECT163K1.ID:  true,
	primitive.SECT163R2.ID:  true,
	primitive.SECT233K1.ID:  true,
	primitive.SECT233R1.ID:  true,
	primitive.SECT283K1.ID:  true,
	primitive.SECT283R1.ID:  true,
	primitive.SECT409K1.ID:  true,
	primitive.SECT409R1.ID:  true,
	primitive.SECT571K1.ID:  true,
	primitive.SECT571R1.ID:  true,
	primitive.ED25519.ID:    true,
	primitive.ED448.ID:      true,
}

var nistSymmetricLevels = []level[primitive.Symmetric]{
	reject(0, 111, primitive.AES128),
	sunset(112, 112, primitive.AES128, nistCutoff, primitive.AES128),
	accept(113, 128, primitive.AES128),
	accept(129, 192, primitive.AES192),
	accept(193, top, primitive.AES256),
}

// Identical bands with the earlier three-key triple DES cutover.
var nist3TDEALevels = []level[primitive.Symmetric]{
	reject(0, 111, primitive.AES128),
	sunset(112, 112, primitive.AES128, nistCutoff3TDEA, primitive.AES128),
	accept(113, 128, primitive.AES128),
	accept(129, 192, primitive.AES192),
	accept(193, top, primitive.AES256),
}

// Collision resistance bands. The below-minimum band's recommendation
// itself moves past the cutover: SHA-224 remains the floor through
// 2031 and SHA-256 beyond it.
var nistHashLevels = []level[primitive.Hash]{
	{min: 0, max: 111, ok: false, rec: primitive.SHA224, cutover: nistCutoff, okAfter: false, recAfter: primitive.SHA256},
	sunset(112, 112, primitive.SHA224, nistCutoff, primitive.SHA256),
	accept(113, 128, primitive.SHA256),
	accept(129, 192, primitive.SHA384),
	accept(193, top, primitive.SHA512),
}

// Pre-image resistance bands.
var nistHashBasedLevels = []level[primitive.Hash]{
	reject(0, 111, primitive.SHA224),
	sunset(112, 127, primitive.SHA224, nistCutoff, primitive.SHA224),
	accept(128, 224, primitive.SHA224),
	accept(225, 256, primitive.SHA256),
	accept(257, 394, primitive.SHA384),
	accept(395, top, primitive.SHA512),
}

var nistEccLevels = []level[primitive.Ecc]{
	{min: 0, max: 111, ok: false, rec: primitive.P224, cutover: nistCutoff, okAfter: false, recAfter: primitive.P256},
	sunset(112, 112, primitive.P224, nistCutoff, primitive.P256),
	accept(113, 128, primitive.P256),
	accept(129, 192, primitive.P384),
	accept(193, top, primitive.P521),
}

var nistFfcLevels = []ffcLevel{
	rejectFfc(0, 2047, 0, top, primitive.FFC2048_224),
	rejectFfc(0, top, 0, 223, primitive.FFC2048_224),
	sunsetFfc(2048, 2048, 224, 224, primitive.FFC2048_224, nistCutoff, primitive.FFC3072_256),
	acceptFfc(2049, 3072, 225, 256, primitive.FFC3072_256),
	acceptFfc(3073, 7680, 257, 384, primitive.FFC7680_384),
	acceptFfc(7681, top, 385, top, primitive.FFC15360_512),
	rejectFfc(0, top, 0, top, primitive.FFC2048_224),
}

var nistIfcLevels = []level[primitive.Ifc]{
	reject(0, 2047, primitive.IFC2048),
	sunset(2048, 2048, primitive.IFC2048, nistCutoff, primitive.IFC3072),
	accept(2049, 3072, primitive.IFC3072),
	accept(3073, 7680, primitive.IFC7680),
	accept(7681, top, primitive.IFC15360),
}

func (nistStandard) ValidateEcc(ctx Context, key primitive.Ecc) (primitive.Ecc, bool) {
	if !nistCurves[key.ID] {
		return primitive.P256, false
	}
	return classify(ctx, key.Security, nistEccLevels)
}

func (nistStandard) ValidateFfc(ctx Context, key primitive.Ffc) (primitive.Ffc, bool) {
	return classifyFfc(ctx, key, nistFfcLevels)
}

func (nistStandard) ValidateIfc(ctx Context, key primitive.Ifc) (primitive.Ifc, bool) {
	return classifyRaw(ctx, key.K, nistIfcLevels)
}

func (nistStandard) ValidateHash(ctx Context, hash primitive.Hash) (primitive.Hash, bool) {
	if !nistHashes[hash.ID] {
		return primitive.SHA256, false
	}
	return classify(ctx, hash.Collision, nistHashLevels)
}

func (nistStandard) ValidateHashBased(ctx Context, hash primitive.Hash) (primitive.Hash, bool) {
	if !nistHashes[hash.ID] {
		return primitive.SHA224, false
	}
	return classify(ctx, hash.PreImage, nistHashBasedLevels)
}

func (nistStandard) ValidateSymmetric(ctx Context, key primitive.Symmetric) (primitive.Symmetric, bool) {
	if !nistCiphers[key.ID] {
		return primitive.AES128, false
	}
	levels := nistSymmetricLevels
	if key.ID == primitive.TDEA3.ID {
		levels = nist3TDEALevels
	}
	return classify(ctx, key.Security, levels)
}
