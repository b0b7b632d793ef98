package standard

import "github.com/keywarden/keywarden/pkg/primitive"

// NSA Commercial National Security Algorithm Suite (classical
// baseline).
//
// The suite is a closed list rather than a sliding scale: AES-256,
// SHA-384 (SHA-512 additionally for software and firmware signing),
// P-384, and 3072-bit minimum moduli and DL groups. There are no
// transition cutovers; anything outside the suite rejects outright.

type cnsaStandard struct{}

func (cnsaStandard) Name() string { return "cnsa" }

var cnsaHashes = map[uint16]bool{
	primitive.SHA384.ID: true,
	primitive.SHA512.ID: true,
}

var cnsaCiphers = map[uint16]bool{
	primitive.AES128.ID: true,
	primitive.AES192.ID: true,
	primitive.AES256.ID: true,
}

var cnsaCurves = map[uint16]bool{
	primitive.SECP384R1.ID: true,
}

var cnsaSymmetricLevels = []level[primitive.Symmetric]{
	reject(0, 255, primitive.AES256),
	accept(256, top, primitive.AES256),
}

var cnsaEccLevels = []level[primitive.Ecc]{
	reject(0, 191, primitive.P384),
	accept(192, top, primitive.P384),
}

var cnsaHashLevels = []level[primitive.Hash]{
	reject(0, 191, primitive.SHA384),
	accept(192, 255, primitive.SHA384),
	accept(256, top, primitive.SHA512),
}

var cnsaHashBasedLevels = []level[primitive.Hash]{
	reject(0, 383, primitive.SHA384),
	accept(384, 511, primitive.SHA384),
	accept(512, top, primitive.SHA512),
}

var cnsaFfcLevels = []ffcLevel{
	rejectFfc(0, 3071, 0, top, primitive.FFC3072_256),
	rejectFfc(0, top, 0, 255, primitive.FFC3072_256),
	acceptFfc(3072, top, 256, top, primitive.FFC3072_256),
}

var cnsaIfcLevels = []level[primitive.Ifc]{
	reject(0, 3071, primitive.IFC3072),
	accept(3072, top, primitive.IFC3072),
}

func (cnsaStandard) ValidateEcc(ctx Context, key primitive.Ecc) (primitive.Ecc, bool) {
	if !cnsaCurves[key.ID] {
		return primitive.P384, false
	}
	return classify(ctx, key.Security, cnsaEccLevels)
}

func (cnsaStandard) ValidateFfc(ctx Context, key primitive.Ffc) (primitive.Ffc, bool) {
	return classifyFfc(ctx, key, cnsaFfcLevels)
}

func (cnsaStandard) ValidateIfc(ctx Context, key primitive.Ifc) (primitive.Ifc, bool) {
	return classifyRaw(ctx, key.K, cnsaIfcLevels)
}

func (cnsaStandard) ValidateHash(ctx Context, hash primitive.Hash) (primitive.Hash, bool) {
	if !cnsaHashes[hash.ID] {
		return primitive.SHA384, false
	}
	return classify(ctx, hash.Collision, cnsaHashLevels)
}

func (cnsaStandard) ValidateHashBased(ctx Context, hash primitive.Hash) (primitive.Hash, bool) {
	if !cnsaHashes[hash.ID] {
		return primitive.SHA384, false
	}
	return classify(ctx, hash.PreImage, cnsaHashBasedLevels)
}

func (cnsaStandard) ValidateSymmetric(ctx Context, key primitive.Symmetric) (primitive.Symmetric, bool) {
	if !cnsaCiphers[key.ID] {
		return primitive.AES256, false
	}
	return classify(ctx, key.Security, cnsaSymmetricLevels)
}
