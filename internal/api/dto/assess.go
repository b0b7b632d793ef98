package dto

import (
	"github.com/keywarden/keywarden/internal/report"
	"github.com/keywarden/keywarden/internal/store"
)

// AssessOptions carries the assessment context shared by every assess
// request. Empty fields fall back to the server defaults.
type AssessOptions struct {
	// Standard is the policy to assess against (e.g. "nist", "bsi").
	Standard string `json:"standard,omitempty"`

	// Security is the minimum acceptable strength in bits. Zero defers
	// to the primitive's own strength.
	Security uint16 `json:"security,omitempty"`

	// Year is the reference year for deprecation cutovers.
	Year uint16 `json:"year,omitempty"`
}

// AssessNamedRequest assesses a primitive identified by name. Used for
// the hash, symmetric and ecc endpoints.
type AssessNamedRequest struct {
	AssessOptions

	// Name is the primitive name (e.g. "sha256", "aes-128", "secp384r1").
	Name string `json:"name"`

	// HashBased restricts a hash assessment to second pre-image
	// resistance, for constructions that do not rely on collision
	// resistance. Ignored outside the hash endpoint.
	HashBased bool `json:"hash_based,omitempty"`
}

// AssessFfcRequest assesses finite field parameters (DSA, DH).
type AssessFfcRequest struct {
	AssessOptions

	// L is the bit length of the field.
	L uint16 `json:"l"`

	// N is the bit length of the subgroup order.
	N uint16 `json:"n"`
}

// AssessIfcRequest assesses an integer factorisation modulus (RSA).
type AssessIfcRequest struct {
	AssessOptions

	// Modulus is the modulus bit length.
	Modulus uint16 `json:"modulus"`
}

// AssessCertificateRequest assesses an X.509 certificate's public key
// and signature hash.
type AssessCertificateRequest struct {
	AssessOptions

	// Certificate is the certificate to assess (PEM or base64 DER).
	Certificate BinaryData `json:"certificate"`
}

// AssessResponse wraps an assessment report with its stored record ID.
type AssessResponse struct {
	// ID identifies the persisted assessment record, when persistence
	// is enabled.
	ID string `json:"id,omitempty"`

	// Report is the full assessment report.
	Report *report.Report `json:"report"`
}

// StandardsResponse lists the registered standards.
type StandardsResponse struct {
	Standards []string `json:"standards"`
}

// AssessmentsResponse lists persisted assessment records, newest first.
type AssessmentsResponse struct {
	Assessments []*store.AssessmentRecord `json:"assessments"`
	Count       int                       `json:"count"`
}
