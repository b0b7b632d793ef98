// Package main builds the keywarden C shared library:
//
//	go build -buildmode=c-shared -o libkeywarden.so ./capi
//
// The exported surface lives in capi.go behind the cgo build tag;
// this file holds the assessment core so it stays testable without a
// C toolchain.
package main

import (
	"github.com/keywarden/keywarden/pkg/primitive"
	"github.com/keywarden/keywarden/pkg/standard"
)

func main() {}

// Return codes of every exported function.
const (
	codeError        = -1
	codeNonCompliant = 0
	codeCompliant    = 1
)

// contextParams mirrors the kw_context C struct.
type contextParams struct {
	security uint16
	year     uint16
}

// assessmentContext builds a Context from caller parameters. Zero
// fields mean the defaults; callers wanting an explicit copy of those
// call kw_context_default first.
func assessmentContext(p *contextParams) standard.Context {
	var opts []standard.Option
	if p.security != 0 {
		opts = append(opts, standard.WithSecurity(p.security))
	}
	if p.year != 0 {
		opts = append(opts, standard.WithYear(p.year))
	}
	return standard.NewContext(opts...)
}

func verdict(ok bool) int {
	if ok {
		return codeCompliant
	}
	return codeNonCompliant
}

// The validate functions implement the shared contract: a nil context
// or key is an error and the alternative stays untouched, otherwise
// the alternative is written when its pointer is non-nil and the
// return code carries the verdict.

func validateEcc(std standard.Standard, p *contextParams, key, alt *primitive.Ecc) int {
	if p == nil || key == nil {
		return codeError
	}
	rec, ok := std.ValidateEcc(assessmentContext(p), *key)
	if alt != nil {
		*alt = rec
	}
	return verdict(ok)
}

func validateFfc(std standard.Standard, p *contextParams, key, alt *primitive.Ffc) int {
	if p == nil || key == nil {
		return codeError
	}
	rec, ok := std.ValidateFfc(assessmentContext(p), *key)
	if alt != nil {
		*alt = rec
	}
	return verdict(ok)
}

func validateIfc(std standard.Standard, p *contextParams, key, alt *primitive.Ifc) int {
	if p == nil || key == nil {
		return codeError
	}
	rec, ok := std.ValidateIfc(assessmentContext(p), *key)
	if alt != nil {
		*alt = rec
	}
	return verdict(ok)
}

func validateHash(std standard.Standard, p *contextParams, key, alt *primitive.Hash) int {
	if p == nil || key == nil {
		return codeError
	}
	rec, ok := std.ValidateHash(assessmentContext(p), *key)
	if alt != nil {
		*alt = rec
	}
	return verdict(ok)
}

func validateHashBased(std standard.Standard, p *contextParams, key, alt *primitive.Hash) int {
	if p == nil || key == nil {
		return codeError
	}
	rec, ok := std.ValidateHashBased(assessmentContext(p), *key)
	if alt != nil {
		*alt = rec
	}
	return verdict(ok)
}

func validateSymmetric(std standard.Standard, p *contextParams, key, alt *primitive.Symmetric) int {
	if p == nil || key == nil {
		return codeError
	}
	rec, ok := std.ValidateSymmetric(assessmentContext(p), *key)
	if alt != nil {
		*alt = rec
	}
	return verdict(ok)
}
