package standard

import "github.com/keywarden/keywarden/pkg/primitive"

// Testing baseline. It implements the contract permissively, echoing
// the input back as its own recommendation and treating everything in
// the catalog as compliant. It exists to decouple the tests of higher
// layers (certificate assessment, API, CLI) from the real policy
// tables, and is deliberately absent from the name registry.

type testingStandard struct{}

func (testingStandard) Name() string { return "testing" }

func (testingStandard) ValidateEcc(_ Context, key primitive.Ecc) (primitive.Ecc, bool) {
	return key, key.ID != primitive.NotSupportedID
}

func (testingStandard) ValidateFfc(_ Context, key primitive.Ffc) (primitive.Ffc, bool) {
	return key, key.N > 0 && key.L >= key.N
}

func (testingStandard) ValidateIfc(_ Context, key primitive.Ifc) (primitive.Ifc, bool) {
	return key, key.K > 0
}

func (testingStandard) ValidateHash(_ Context, hash primitive.Hash) (primitive.Hash, bool) {
	return hash, hash.ID != primitive.NotSupportedID
}

func (testingStandard) ValidateHashBased(_ Context, hash primitive.Hash) (primitive.Hash, bool) {
	return hash, hash.ID != primitive.NotSupportedID
}

func (testingStandard) ValidateSymmetric(_ Context, key primitive.Symmetric) (primitive.Symmetric, bool) {
	return key, key.ID != primitive.NotSupportedID
}
