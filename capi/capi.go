//go:build cgo

package main

/*
#include <stdint.h>

typedef struct {
	uint16_t security;
	uint16_t year;
} kw_context;

typedef struct {
	uint16_t id;
	uint16_t security;
} kw_ecc;

typedef struct {
	uint16_t l;
	uint16_t n;
} kw_ffc;

typedef struct {
	uint16_t k;
} kw_ifc;

typedef struct {
	uint16_t id;
	uint16_t collision;
	uint16_t preimage;
} kw_hash;

typedef struct {
	uint16_t id;
	uint16_t security;
} kw_symmetric;
*/
import "C"

import (
	"github.com/keywarden/keywarden/pkg/primitive"
	"github.com/keywarden/keywarden/pkg/standard"
)

// kw_context_default fills ctx with the default assessment context.
// Returns 0 on success, -1 on a null pointer.
//
//export kw_context_default
func kw_context_default(ctx *C.kw_context) C.int {
	if ctx == nil {
		return codeError
	}
	ctx.security = C.uint16_t(standard.DefaultSecurity)
	ctx.year = C.uint16_t(standard.DefaultYear)
	return 0
}

func goParams(ctx *C.kw_context) *contextParams {
	return &contextParams{security: uint16(ctx.security), year: uint16(ctx.year)}
}

func cValidateEcc(std standard.Standard, ctx *C.kw_context, key, alt *C.kw_ecc) C.int {
	if ctx == nil || key == nil {
		return codeError
	}
	k := primitive.Ecc{ID: uint16(key.id), Security: uint16(key.security)}
	var rec primitive.Ecc
	code := validateEcc(std, goParams(ctx), &k, &rec)
	if alt != nil {
		alt.id = C.uint16_t(rec.ID)
		alt.security = C.uint16_t(rec.Security)
	}
	return C.int(code)
}

func cValidateFfc(std standard.Standard, ctx *C.kw_context, key, alt *C.kw_ffc) C.int {
	if ctx == nil || key == nil {
		return codeError
	}
	k := primitive.Ffc{L: uint16(key.l), N: uint16(key.n)}
	var rec primitive.Ffc
	code := validateFfc(std, goParams(ctx), &k, &rec)
	if alt != nil {
		alt.l = C.uint16_t(rec.L)
		alt.n = C.uint16_t(rec.N)
	}
	return C.int(code)
}

func cValidateIfc(std standard.Standard, ctx *C.kw_context, key, alt *C.kw_ifc) C.int {
	if ctx == nil || key == nil {
		return codeError
	}
	k := primitive.Ifc{K: uint16(key.k)}
	var rec primitive.Ifc
	code := validateIfc(std, goParams(ctx), &k, &rec)
	if alt != nil {
		alt.k = C.uint16_t(rec.K)
	}
	return C.int(code)
}

func cValidateHash(std standard.Standard, ctx *C.kw_context, key, alt *C.kw_hash, hashBased bool) C.int {
	if ctx == nil || key == nil {
		return codeError
	}
	k := primitive.Hash{
		ID:        uint16(key.id),
		Collision: uint16(key.collision),
		PreImage:  uint16(key.preimage),
	}
	var rec primitive.Hash
	var code int
	if hashBased {
		code = validateHashBased(std, goParams(ctx), &k, &rec)
	} else {
		code = validateHash(std, goParams(ctx), &k, &rec)
	}
	if alt != nil {
		alt.id = C.uint16_t(rec.ID)
		alt.collision = C.uint16_t(rec.Collision)
		alt.preimage = C.uint16_t(rec.PreImage)
	}
	return C.int(code)
}

func cValidateSymmetric(std standard.Standard, ctx *C.kw_context, key, alt *C.kw_symmetric) C.int {
	if ctx == nil || key == nil {
		return codeError
	}
	k := primitive.Symmetric{ID: uint16(key.id), Security: uint16(key.security)}
	var rec primitive.Symmetric
	code := validateSymmetric(std, goParams(ctx), &k, &rec)
	if alt != nil {
		alt.id = C.uint16_t(rec.ID)
		alt.security = C.uint16_t(rec.Security)
	}
	return C.int(code)
}

// BSI TR-02102-1

//export kw_bsi_validate_ecc
func kw_bsi_validate_ecc(ctx *C.kw_context, key, alt *C.kw_ecc) C.int {
	return cValidateEcc(standard.BSI, ctx, key, alt)
}

//export kw_bsi_validate_ffc
func kw_bsi_validate_ffc(ctx *C.kw_context, key, alt *C.kw_ffc) C.int {
	return cValidateFfc(standard.BSI, ctx, key, alt)
}

//export kw_bsi_validate_ifc
func kw_bsi_validate_ifc(ctx *C.kw_context, key, alt *C.kw_ifc) C.int {
	return cValidateIfc(standard.BSI, ctx, key, alt)
}

//export kw_bsi_validate_hash
func kw_bsi_validate_hash(ctx *C.kw_context, key, alt *C.kw_hash) C.int {
	return cValidateHash(standard.BSI, ctx, key, alt, false)
}

//export kw_bsi_validate_hash_based
func kw_bsi_validate_hash_based(ctx *C.kw_context, key, alt *C.kw_hash) C.int {
	return cValidateHash(standard.BSI, ctx, key, alt, true)
}

//export kw_bsi_validate_symmetric
func kw_bsi_validate_symmetric(ctx *C.kw_context, key, alt *C.kw_symmetric) C.int {
	return cValidateSymmetric(standard.BSI, ctx, key, alt)
}

// NSA CNSA Suite

//export kw_cnsa_validate_ecc
func kw_cnsa_validate_ecc(ctx *C.kw_context, key, alt *C.kw_ecc) C.int {
	return cValidateEcc(standard.CNSA, ctx, key, alt)
}

//export kw_cnsa_validate_ffc
func kw_cnsa_validate_ffc(ctx *C.kw_context, key, alt *C.kw_ffc) C.int {
	return cValidateFfc(standard.CNSA, ctx, key, alt)
}

//export kw_cnsa_validate_ifc
func kw_cnsa_validate_ifc(ctx *C.kw_context, key, alt *C.kw_ifc) C.int {
	return cValidateIfc(standard.CNSA, ctx, key, alt)
}

//export kw_cnsa_validate_hash
func kw_cnsa_validate_hash(ctx *C.kw_context, key, alt *C.kw_hash) C.int {
	return cValidateHash(standard.CNSA, ctx, key, alt, false)
}

//export kw_cnsa_validate_hash_based
func kw_cnsa_validate_hash_based(ctx *C.kw_context, key, alt *C.kw_hash) C.int {
	return cValidateHash(standard.CNSA, ctx, key, alt, true)
}

//export kw_cnsa_validate_symmetric
func kw_cnsa_validate_symmetric(ctx *C.kw_context, key, alt *C.kw_symmetric) C.int {
	return cValidateSymmetric(standard.CNSA, ctx, key, alt)
}

// ECRYPT-CSA

//export kw_ecrypt_validate_ecc
func kw_ecrypt_validate_ecc(ctx *C.kw_context, key, alt *C.kw_ecc) C.int {
	return cValidateEcc(standard.ECRYPT, ctx, key, alt)
}

//export kw_ecrypt_validate_ffc
func kw_ecrypt_validate_ffc(ctx *C.kw_context, key, alt *C.kw_ffc) C.int {
	return cValidateFfc(standard.ECRYPT, ctx, key, alt)
}

//export kw_ecrypt_validate_ifc
func kw_ecrypt_validate_ifc(ctx *C.kw_context, key, alt *C.kw_ifc) C.int {
	return cValidateIfc(standard.ECRYPT, ctx, key, alt)
}

//export kw_ecrypt_validate_hash
func kw_ecrypt_validate_hash(ctx *C.kw_context, key, alt *C.kw_hash) C.int {
	return cValidateHash(standard.ECRYPT, ctx, key, alt, false)
}

//export kw_ecrypt_validate_hash_based
func kw_ecrypt_validate_hash_based(ctx *C.kw_context, key, alt *C.kw_hash) C.int {
	return cValidateHash(standard.ECRYPT, ctx, key, alt, true)
}

//export kw_ecrypt_validate_symmetric
func kw_ecrypt_validate_symmetric(ctx *C.kw_context, key, alt *C.kw_symmetric) C.int {
	return cValidateSymmetric(standard.ECRYPT, ctx, key, alt)
}

// Lenstra and Verheul equations

//export kw_lenstra_validate_ecc
func kw_lenstra_validate_ecc(ctx *C.kw_context, key, alt *C.kw_ecc) C.int {
	return cValidateEcc(standard.Lenstra, ctx, key, alt)
}

//export kw_lenstra_validate_ffc
func kw_lenstra_validate_ffc(ctx *C.kw_context, key, alt *C.kw_ffc) C.int {
	return cValidateFfc(standard.Lenstra, ctx, key, alt)
}

//export kw_lenstra_validate_ifc
func kw_lenstra_validate_ifc(ctx *C.kw_context, key, alt *C.kw_ifc) C.int {
	return cValidateIfc(standard.Lenstra, ctx, key, alt)
}

//export kw_lenstra_validate_hash
func kw_lenstra_validate_hash(ctx *C.kw_context, key, alt *C.kw_hash) C.int {
	return cValidateHash(standard.Lenstra, ctx, key, alt, false)
}

//export kw_lenstra_validate_hash_based
func kw_lenstra_validate_hash_based(ctx *C.kw_context, key, alt *C.kw_hash) C.int {
	return cValidateHash(standard.Lenstra, ctx, key, alt, true)
}

//export kw_lenstra_validate_symmetric
func kw_lenstra_validate_symmetric(ctx *C.kw_context, key, alt *C.kw_symmetric) C.int {
	return cValidateSymmetric(standard.Lenstra, ctx, key, alt)
}

// NIST SP 800-57

//export kw_nist_validate_ecc
func kw_nist_validate_ecc(ctx *C.kw_context, key, alt *C.kw_ecc) C.int {
	return cValidateEcc(standard.NIST, ctx, key, alt)
}

//export kw_nist_validate_ffc
func kw_nist_validate_ffc(ctx *C.kw_context, key, alt *C.kw_ffc) C.int {
	return cValidateFfc(standard.NIST, ctx, key, alt)
}

//export kw_nist_validate_ifc
func kw_nist_validate_ifc(ctx *C.kw_context, key, alt *C.kw_ifc) C.int {
	return cValidateIfc(standard.NIST, ctx, key, alt)
}

//export kw_nist_validate_hash
func kw_nist_validate_hash(ctx *C.kw_context, key, alt *C.kw_hash) C.int {
	return cValidateHash(standard.NIST, ctx, key, alt, false)
}

//export kw_nist_validate_hash_based
func kw_nist_validate_hash_based(ctx *C.kw_context, key, alt *C.kw_hash) C.int {
	return cValidateHash(standard.NIST, ctx, key, alt, true)
}

//export kw_nist_validate_symmetric
func kw_nist_validate_symmetric(ctx *C.kw_context, key, alt *C.kw_symmetric) C.int {
	return cValidateSymmetric(standard.NIST, ctx, key, alt)
}

// Permissive testing baseline

//export kw_testing_validate_ecc
func kw_testing_validate_ecc(ctx *C.kw_context, key, alt *C.kw_ecc) C.int {
	return cValidateEcc(standard.Testing, ctx, key, alt)
}

//export kw_testing_validate_ffc
func kw_testing_validate_ffc(ctx *C.kw_context, key, alt *C.kw_ffc) C.int {
	return cValidateFfc(standard.Testing, ctx, key, alt)
}

//export kw_testing_validate_ifc
func kw_testing_validate_ifc(ctx *C.kw_context, key, alt *C.kw_ifc) C.int {
	return cValidateIfc(standard.Testing, ctx, key, alt)
}

//export kw_testing_validate_hash
func kw_testing_validate_hash(ctx *C.kw_context, key, alt *C.kw_hash) C.int {
	return cValidateHash(standard.Testing, ctx, key, alt, false)
}

//export kw_testing_validate_hash_based
func kw_testing_validate_hash_based(ctx *C.kw_context, key, alt *C.kw_hash) C.int {
	return cValidateHash(standard.Testing, ctx, key, alt, true)
}

//export kw_testing_validate_symmetric
func kw_testing_validate_symmetric(ctx *C.kw_context, key, alt *C.kw_symmetric) C.int {
	return cValidateSymmetric(standard.Testing, ctx, key, alt)
}
