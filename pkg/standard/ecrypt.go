package standard

import "github.com/keywarden/keywarden/pkg/primitive"

// ECRYPT-CSA "Algorithms, Key Size and Protocols" report.
//
// The report grades strengths into legacy (80 bits, attackable with
// serious effort), near term (112 bits, acceptable for roughly a
// decade) and long term (128 bits and up). The near-term horizon is
// encoded as a 2028 cutover on the sub-128-bit bands.

type ecryptStandard struct{}

func (ecryptStandard) Name() string { return "ecrypt" }

const ecryptNearTerm uint16 = 2028

// The report discusses the bulk of deployed ciphers and hash
// functions, so membership is broad; grading happens in the bands.
var ecryptCiphers = map[uint16]bool{
	primitive.AES128.ID:      true,
	primitive.AES192.ID:      true,
	primitive.AES256.ID:      true,
	primitive.CAMELLIA128.ID: true,
	primitive.CAMELLIA192.ID: true,
	primitive.CAMELLIA256.ID: true,
	primitive.SERPENT128.ID:  true,
	primitive.SERPENT192.ID:  true,
	primitive.SERPENT256.ID:  true,
	primitive.DES.ID:         true,
	primitive.DESX.ID:        true,
	primitive.IDEA.ID:        true,
	primitive.TDEA2.ID:       true,
	primitive.TDEA3.ID:       true,
}

var ecryptHashes = map[uint16]bool{
	primitive.SHA1.ID:        true,
	primitive.SHA224.ID:      true,
	primitive.SHA256.ID:      true,
	primitive.SHA384.ID:      true,
	primitive.SHA512.ID:      true,
	primitive.SHA512_224.ID:  true,
	primitive.SHA512_256.ID:  true,
	primitive.SHA3_224.ID:    true,
	primitive.SHA3_256.ID:    true,
	primitive.SHA3_384.ID:    true,
	primitive.SHA3_512.ID:    true,
	primitive.RIPEMD160.ID:   true,
	primitive.WHIRLPOOL.ID:   true,
	primitive.BLAKE2B_256.ID: true,
	primitive.BLAKE2B_384.ID: true,
	primitive.BLAKE2B_512.ID: true,
	primitive.BLAKE2S_256.ID: true,
}

var ecryptCurves = map[uint16]bool{
	primitive.SECP224R1.ID:       true,
	primitive.PRIME256V1.ID:      true,
	primitive.SECP384R1.ID:       true,
	primitive.SECP521R1.ID:       true,
	primitive.SECP256K1.ID:       true,
	primitive.BRAINPOOLP256R1.ID: true,
	primitive.BRAINPOOLP384R1.ID: true,
	primitive.BRAINPOOLP512R1.ID: true,
	primitive.ED25519.ID:         true,
	primitive.ED448.ID:           true,
	primitive.X25519.ID:          true,
	primitive.X448.ID:            true,
}

var ecryptSymmetricLevels = []level[primitive.Symmetric]{
	reject(0, 79, primitive.AES128),
	sunset(80, 112, primitive.AES128, ecryptNearTerm, primitive.AES128),
	accept(113, 128, primitive.AES128),
	accept(129, 192, primitive.AES192),
	accept(193, top, primitive.AES256),
}

var ecryptEccLevels = []level[primitive.Ecc]{
	reject(0, 79, primitive.P256),
	sunset(80, 112, primitive.P224, ecryptNearTerm, primitive.P256),
	accept(113, 128, primitive.P256),
	accept(129, 192, primitive.P384),
	accept(193, top, primitive.P521),
}

var ecryptHashLevels = []level[primitive.Hash]{
	reject(0, 79, primitive.SHA256),
	sunset(80, 112, primitive.SHA224, ecryptNearTerm, primitive.SHA256),
	accept(113, 128, primitive.SHA256),
	accept(129, 192, primitive.SHA384),
	accept(193, top, primitive.SHA512),
}

var ecryptHashBasedLevels = []level[primitive.Hash]{
	reject(0, 111, primitive.SHA256),
	sunset(112, 224, primitive.SHA224, ecryptNearTerm, primitive.SHA256),
	accept(225, 256, primitive.SHA256),
	accept(257, 384, primitive.SHA384),
	accept(385, top, primitive.SHA512),
}

var ecryptFfcLevels = []ffcLevel{
	rejectFfc(0, 1023, 0, top, primitive.FFC3072_256),
	rejectFfc(0, top, 0, 159, primitive.FFC3072_256),
	sunsetFfc(1024, 2047, 160, top, primitive.FFC2048_224, ecryptNearTerm, primitive.FFC3072_256),
	sunsetFfc(2048, 3071, 224, top, primitive.FFC2048_256, ecryptNearTerm, primitive.FFC3072_256),
	acceptFfc(3072, 7679, 256, top, primitive.FFC3072_256),
	acceptFfc(7680, 15359, 384, top, primitive.FFC7680_384),
	acceptFfc(15360, top, 512, top, primitive.FFC15360_512),
	rejectFfc(0, top, 0, top, primitive.FFC3072_256),
}

var ecryptIfcLevels = []level[primitive.Ifc]{
	reject(0, 1023, primitive.IFC3072),
	sunset(1024, 2047, primitive.IFC2048, ecryptNearTerm, primitive.IFC3072),
	sunset(2048, 3071, primitive.IFC2048, ecryptNearTerm, primitive.IFC3072),
	accept(3072, 7679, primitive.IFC3072),
	accept(7680, 15359, primitive.IFC7680),
	accept(15360, top, primitive.IFC15360),
}

func (ecryptStandard) ValidateEcc(ctx Context, key primitive.Ecc) (primitive.Ecc, bool) {
	if !ecryptCurves[key.ID] {
		return primitive.P256, false
	}
	return classify(ctx, key.Security, ecryptEccLevels)
}

func (ecryptStandard) ValidateFfc(ctx Context, key primitive.Ffc) (primitive.Ffc, bool) {
	return classifyFfc(ctx, key, ecryptFfcLevels)
}

func (ecryptStandard) ValidateIfc(ctx Context, key primitive.Ifc) (primitive.Ifc, bool) {
	return classifyRaw(ctx, key.K, ecryptIfcLevels)
}

func (ecryptStandard) ValidateHash(ctx Context, hash primitive.Hash) (primitive.Hash, bool) {
	if !ecryptHashes[hash.ID] {
		return primitive.SHA256, false
	}
	return classify(ctx, hash.Collision, ecryptHashLevels)
}

func (ecryptStandard) ValidateHashBased(ctx Context, hash primitive.Hash) (primitive.Hash, bool) {
	if !ecryptHashes[hash.ID] {
		return primitive.SHA224, false
	}
	return classify(ctx, hash.PreImage, ecryptHashBasedLevels)
}

func (ecryptStandard) ValidateSymmetric(ctx Context, key primitive.Symmetric) (primitive.Symmetric, bool) {
	if !ecryptCiphers[key.ID] {
		return primitive.AES128, false
	}
	return classify(ctx, key.Security, ecryptSymmetricLevels)
}
