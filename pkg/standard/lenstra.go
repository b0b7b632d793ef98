package standard

import "github.com/keywarden/keywarden/pkg/primitive"

// Lenstra and Verheul's key length estimates, per the updated
// equations in "Key Lengths" (The Handbook of Information Security).
//
// Unlike the table-driven standards, the requirement here is a
// function of the reference year: an adequate symmetric key had 56
// bits in 1982 and the estimate grows by two thirds of a bit per
// year. The derived requirement is then pushed through the same band
// representatives the other standards use. The estimates apply to
// primitives generically, so there are no membership sets beyond the
// catalog itself.

type lenstraStandard struct{}

func (lenstraStandard) Name() string { return "lenstra" }

// lenstraRequired returns the symmetric-equivalent strength in bits
// the estimates call for in the given year.
func lenstraRequired(year uint16) uint16 {
	if year <= 1982 {
		return 56
	}
	return 56 + uint16((2*(uint32(year)-1982)+2)/3)
}

// effectiveRequirement combines the year-derived estimate with the
// caller's explicit floor.
func (lenstraStandard) requirement(ctx Context) uint16 {
	req := lenstraRequired(ctx.year)
	if ctx.security > req {
		req = ctx.security
	}
	return req
}

func lenstraSymmetricFor(bits uint16) primitive.Symmetric {
	switch {
	case bits <= 128:
		return primitive.AES128
	case bits <= 192:
		return primitive.AES192
	default:
		return primitive.AES256
	}
}

func lenstraEccFor(bits uint16) primitive.Ecc {
	switch {
	case bits <= 128:
		return primitive.P256
	case bits <= 192:
		return primitive.P384
	default:
		return primitive.P521
	}
}

func lenstraHashFor(bits uint16) primitive.Hash {
	switch {
	case bits <= 128:
		return primitive.SHA256
	case bits <= 192:
		return primitive.SHA384
	default:
		return primitive.SHA512
	}
}

func lenstraHashBasedFor(bits uint16) primitive.Hash {
	switch {
	case bits <= 224:
		return primitive.SHA224
	case bits <= 256:
		return primitive.SHA256
	case bits <= 384:
		return primitive.SHA384
	default:
		return primitive.SHA512
	}
}

func lenstraIfcFor(bits uint16) primitive.Ifc {
	switch {
	case bits <= 112:
		return primitive.IFC2048
	case bits <= 128:
		return primitive.IFC3072
	case bits <= 192:
		return primitive.IFC7680
	default:
		return primitive.IFC15360
	}
}

func lenstraFfcFor(bits uint16) primitive.Ffc {
	switch {
	case bits <= 112:
		return primitive.FFC2048_224
	case bits <= 128:
		return primitive.FFC3072_256
	case bits <= 192:
		return primitive.FFC7680_384
	default:
		return primitive.FFC15360_512
	}
}

// modulusStrength buckets a modulus or field bit length into its
// symmetric-equivalent strength, following the SP 800-57 equivalences
// the estimates track closely.
func modulusStrength(k uint16) uint16 {
	switch {
	case k >= 15360:
		return 256
	case k >= 7680:
		return 192
	case k >= 3072:
		return 128
	case k >= 2048:
		return 112
	case k >= 1024:
		return 80
	case k >= 512:
		return 56
	default:
		return 0
	}
}

func (s lenstraStandard) ValidateEcc(ctx Context, key primitive.Ecc) (primitive.Ecc, bool) {
	req := s.requirement(ctx)
	if key.ID == primitive.NotSupportedID || key.Security < req {
		return lenstraEccFor(req), false
	}
	return lenstraEccFor(key.Security), true
}

func (s lenstraStandard) ValidateFfc(ctx Context, key primitive.Ffc) (primitive.Ffc, bool) {
	req := s.requirement(ctx)
	strength := modulusStrength(key.L)
	if sub := key.N / 2; sub < strength {
		strength = sub
	}
	if strength < req {
		return lenstraFfcFor(req), false
	}
	return lenstraFfcFor(strength), true
}

func (s lenstraStandard) ValidateIfc(ctx Context, key primitive.Ifc) (primitive.Ifc, bool) {
	req := s.requirement(ctx)
	strength := modulusStrength(key.K)
	if strength < req {
		return lenstraIfcFor(req), false
	}
	return lenstraIfcFor(strength), true
}

func (s lenstraStandard) ValidateHash(ctx Context, hash primitive.Hash) (primitive.Hash, bool) {
	req := s.requirement(ctx)
	if hash.ID == primitive.NotSupportedID || hash.Collision < req {
		return lenstraHashFor(req), false
	}
	return lenstraHashFor(hash.Collision), true
}

func (s lenstraStandard) ValidateHashBased(ctx Context, hash primitive.Hash) (primitive.Hash, bool) {
	req := s.requirement(ctx)
	if hash.ID == primitive.NotSupportedID || hash.PreImage < req {
		return lenstraHashBasedFor(req), false
	}
	return lenstraHashBasedFor(hash.PreImage), true
}

func (s lenstraStandard) ValidateSymmetric(ctx Context, key primitive.Symmetric) (primitive.Symmetric, bool) {
	req := s.requirement(ctx)
	if key.ID == primitive.NotSupportedID || key.Security < req {
		return lenstraSymmetricFor(req), false
	}
	return lenstraSymmetricFor(key.Security), true
}
