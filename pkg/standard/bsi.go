package standard

import "github.com/keywarden/keywarden/pkg/primitive"

// BSI TR-02102-1.
//
// The guideline demands 120 bits of security for new deployments,
// with a transition period through 2022/2023 for 2000-bit moduli and
// 224-bit parameters. SHA-1 is not specified at all, so it rejects
// unconditionally rather than through a grace band.

type bsiStandard struct{}

func (bsiStandard) Name() string { return "bsi" }

const (
	bsiCutoffParams  uint16 = 2022 // 224-bit curves and 2000-bit DL groups
	bsiCutoffModulus uint16 = 2023 // 2000-bit RSA moduli
)

var bsiHashes = map[uint16]bool{
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

var bsiCiphers = map[uint16]bool{
	primitive.AES128.ID: true,
	primitive.AES192.ID: true,
	primitive.AES256.ID: true,
}

// Brainpool curves are the recommendation; the NIST prime curves are
// also specified.
var bsiCurves = map[uint16]bool{
	primitive.BRAINPOOLP224R1.ID: true,
	primitive.BRAINPOOLP224T1.ID: true,
	primitive.BRAINPOOLP256R1.ID: true,
	primitive.BRAINPOOLP256T1.ID: true,
	primitive.BRAINPOOLP320R1.ID: true,
	primitive.BRAINPOOLP320T1.ID: true,
	primitive.BRAINPOOLP384R1.ID: true,
	primitive.BRAINPOOLP384T1.ID: true,
	primitive.BRAINPOOLP512R1.ID: true,
	primitive.BRAINPOOLP512T1.ID: true,
	primitive.SECP224R1.ID:       true,
	primitive.PRIME256V1.ID:      true,
	primitive.SECP384R1.ID:       true,
	primitive.SECP521R1.ID:       true,
}

var bsiSymmetricLevels = []level[primitive.Symmetric]{
	reject(0, 119, primitive.AES128),
	accept(120, 128, primitive.AES128),
	accept(129, 192, primitive.AES192),
	accept(193, top, primitive.AES256),
}

var bsiEccLevels = []level[primitive.Ecc]{
	reject(0, 111, primitive.BRAINPOOLP256R1),
	sunset(112, 124, primitive.BRAINPOOLP224R1, bsiCutoffParams, primitive.BRAINPOOLP256R1),
	accept(125, 128, primitive.BRAINPOOLP256R1),
	accept(129, 192, primitive.BRAINPOOLP384R1),
	accept(193, top, primitive.BRAINPOOLP512R1),
}

var bsiHashLevels = []level[primitive.Hash]{
	reject(0, 111, primitive.SHA256),
	sunset(112, 119, primitive.SHA224, bsiCutoffParams, primitive.SHA256),
	accept(120, 128, primitive.SHA256),
	accept(129, 192, primitive.SHA384),
	accept(193, top, primitive.SHA512),
}

var bsiHashBasedLevels = []level[primitive.Hash]{
	reject(0, 119, primitive.SHA256),
	sunset(120, 239, primitive.SHA224, bsiCutoffParams, primitive.SHA256),
	accept(240, 256, primitive.SHA256),
	accept(257, 384, primitive.SHA384),
	accept(385, top, primitive.SHA512),
}

var bsiFfcLevels = []ffcLevel{
	rejectFfc(0, 1999, 0, top, primitive.FFC3072_256),
	rejectFfc(0, top, 0, 223, primitive.FFC3072_256),
	sunsetFfc(2000, 2999, 224, top, primitive.FFC2048_256, bsiCutoffParams, primitive.FFC3072_256),
	acceptFfc(3000, 7679, 250, top, primitive.FFC3072_256),
	acceptFfc(7680, 15359, 384, top, primitive.FFC7680_384),
	acceptFfc(15360, top, 512, top, primitive.FFC15360_512),
	rejectFfc(0, top, 0, top, primitive.FFC3072_256),
}

var bsiIfcLevels = []level[primitive.Ifc]{
	reject(0, 1999, primitive.IFC3072),
	sunset(2000, 2999, primitive.IFC2048, bsiCutoffModulus, primitive.IFC3072),
	accept(3000, 7679, primitive.IFC3072),
	accept(7680, 15359, primitive.IFC7680),
	accept(15360, top, primitive.IFC15360),
}

func (bsiStandard) ValidateEcc(ctx Context, key primitive.Ecc) (primitive.Ecc, bool) {
	if !bsiCurves[key.ID] {
		return primitive.BRAINPOOLP256R1, false
	}
	return classify(ctx, key.Security, bsiEccLevels)
}

func (bsiStandard) ValidateFfc(ctx Context, key primitive.Ffc) (primitive.Ffc, bool) {
	return classifyFfc(ctx, key, bsiFfcLevels)
}

func (bsiStandard) ValidateIfc(ctx Context, key primitive.Ifc) (primitive.Ifc, bool) {
	return classifyRaw(ctx, key.K, bsiIfcLevels)
}

func (bsiStandard) ValidateHash(ctx Context, hash primitive.Hash) (primitive.Hash, bool) {
	if !bsiHashes[hash.ID] {
		return primitive.SHA256, false
	}
	return classify(ctx, hash.Collision, bsiHashLevels)
}

func (bsiStandard) ValidateHashBased(ctx Context, hash primitive.Hash) (primitive.Hash, bool) {
	if !bsiHashes[hash.ID] {
		return primitive.SHA256, false
	}
	return classify(ctx, hash.PreImage, bsiHashBasedLevels)
}

func (bsiStandard) ValidateSymmetric(ctx Context, key primitive.Symmetric) (primitive.Symmetric, bool) {
	if !bsiCiphers[key.ID] {
		return primitive.AES128, false
	}
	return classify(ctx, key.Security, bsiSymmetricLevels)
}
