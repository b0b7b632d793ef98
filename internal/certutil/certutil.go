// Package certutil maps X.509 certificates onto the primitive catalog
// so their key material and signature hash can be assessed against a
// standard. It loads PEM or DER input, resolves the subject public key
// to an Ecc, Ifc or Ffc instance, and resolves the signature algorithm
// to the hash function it commits to.
package certutil

import (
	"errors"
	"fmt"
)

// AssessError represents a certificate assessment error with
// structured context. It supports errors.Is() and errors.As().
type AssessError struct {
	Op  string // Operation: "load", "parse", "key", "signature"
	Err error
}

func (e *AssessError) Error() string {
	return fmt.Sprintf("certutil %s: %v", e.Op, e.Err)
}

func (e *AssessError) Unwrap() error { return e.Err }

// NewAssessError creates a new AssessError with the given operation
// and error.
func NewAssessError(op string, err error) *AssessError {
	return &AssessError{Op: op, Err: err}
}

// Sentinel errors for certificate assessment.
// Use errors.Is() to check for these through the error chain.
var (
	// ErrNotCertificate indicates the input is neither a PEM nor a
	// DER encoded certificate.
	ErrNotCertificate = errors.New("not a certificate")

	// ErrUnsupportedKey indicates the subject public key algorithm
	// has no counterpart in the primitive catalog.
	ErrUnsupportedKey = errors.New("unsupported public key algorithm")

	// ErrUnsupportedSignature indicates the signature algorithm has
	// no known hash function.
	ErrUnsupportedSignature = errors.New("unsupported signature algorithm")
)
