// Package standard assesses the security of cryptographic primitives
// against published standards and research publications.
//
// Every assessment is a pure function of (Context, primitive): the
// policy tables are initialised once and never mutated, standards hold
// no instance state, and concurrent callers need no coordination. A
// verdict is always produced; non-compliance is reported through the
// boolean result together with the canonical primitive the caller
// should migrate to, never through an error.
package standard

import (
	"sort"

	"github.com/keywarden/keywarden/pkg/primitive"
)

// Standard is a cryptographic standard or research publication. Each
// operation classifies one primitive family and returns the canonical
// recommended instance for the tier the effective requirement lands
// in, plus whether the input is compliant. The recommendation is the
// tier's representative, which may differ from a compliant input:
// assessing SHA3-256 against NIST yields (SHA256, true).
type Standard interface {
	// Name returns the short lower-case identifier of the standard.
	Name() string

	// ValidateEcc assesses an elliptic curve key.
	ValidateEcc(ctx Context, key primitive.Ecc) (primitive.Ecc, bool)

	// ValidateFfc assesses finite field parameters such as those used
	// by DSA and Diffie-Hellman.
	ValidateFfc(ctx Context, key primitive.Ffc) (primitive.Ffc, bool)

	// ValidateIfc assesses an integer factorisation modulus such as an
	// RSA key size.
	ValidateIfc(ctx Context, key primitive.Ifc) (primitive.Ifc, bool)

	// ValidateHash assesses a hash function for applications that
	// require collision resistance, such as digital signatures.
	ValidateHash(ctx Context, hash primitive.Hash) (primitive.Hash, bool)

	// ValidateHashBased assesses a hash function for applications that
	// primarily require pre-image resistance, such as MACs, KDFs and
	// random bit generation.
	ValidateHashBased(ctx Context, hash primitive.Hash) (primitive.Hash, bool)

	// ValidateSymmetric assesses a symmetric cipher.
	ValidateSymmetric(ctx Context, key primitive.Symmetric) (primitive.Symmetric, bool)
}

// ValidateAsymmetric dispatches an asymmetric key to the matching
// family operation of s and re-wraps the result.
func ValidateAsymmetric(s Standard, ctx Context, key primitive.Asymmetric) (primitive.Asymmetric, bool) {
	switch k := key.(type) {
	case primitive.Ecc:
		return wrap(s.ValidateEcc(ctx, k))
	case primitive.Ifc:
		return wrap(s.ValidateIfc(ctx, k))
	case primitive.Ffc:
		return wrap(s.ValidateFfc(ctx, k))
	}
	// The union is sealed; no other variant exists.
	return key, false
}

func wrap[T primitive.Asymmetric](rec T, ok bool) (primitive.Asymmetric, bool) {
	return rec, ok
}

// The concrete standards. All are stateless.
var (
	BSI     Standard = bsiStandard{}
	CNSA    Standard = cnsaStandard{}
	ECRYPT  Standard = ecryptStandard{}
	Lenstra Standard = lenstraStandard{}
	NIST    Standard = nistStandard{}
	Testing Standard = testingStandard{}
)

var registry = map[string]Standard{
	BSI.Name():     BSI,
	CNSA.Name():    CNSA,
	ECRYPT.Name():  ECRYPT,
	Lenstra.Name(): Lenstra,
	NIST.Name():    NIST,
}

// ByName looks up a concrete standard by its short name. The Testing
// baseline is intentionally not registered.
func ByName(name string) (Standard, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names returns the registered standard names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
