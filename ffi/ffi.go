// Package main exposes the guideline validators to C callers.
//
// Build with:
//
//	go build -buildmode=c-shared -o libcipherward.so ./ffi
//
// Each export takes C mirrors of the hash and symmetric key types and
// returns 1 if the primitive is compliant, 0 if it is not, and -1 if a
// required pointer is null. When a primitive is noncompliant and the
// alternative pointer is non-null, the recommended replacement is
// written through it.
package main

/*
#include <stdint.h>

typedef struct ws_hash {
  uint16_t digest_length;
} ws_hash;

typedef struct ws_symmetric {
  uint16_t security;
} ws_symmetric;
*/
import "C"

import (
	"time"

	"github.com/georgepadayatti/cipherward/primitive"
	"github.com/georgepadayatti/cipherward/standard"
	"github.com/georgepadayatti/cipherward/standard/bsi"
	"github.com/georgepadayatti/cipherward/standard/cnsa"
	"github.com/georgepadayatti/cipherward/standard/nist"
)

type hashValidator func(standard.Context, primitive.Hash) (primitive.Hash, error)

type symmetricValidator func(standard.Context, primitive.Symmetric) (primitive.Symmetric, error)

func validateHash(fn hashValidator, ctx standard.Context, hash, alt *C.ws_hash) C.int {
	if hash == nil {
		return -1
	}
	rec, err := fn(ctx, primitive.Hash{N: uint16(hash.digest_length)})
	if err == nil {
		return 1
	}
	if alt != nil {
		alt.digest_length = C.uint16_t(rec.N)
	}
	return 0
}

func validateSymmetric(fn symmetricValidator, ctx standard.Context, key, alt *C.ws_symmetric) C.int {
	if key == nil {
		return -1
	}
	rec, err := fn(ctx, primitive.Symmetric{Strength: uint16(key.security)})
	if err == nil {
		return 1
	}
	if alt != nil {
		alt.security = C.uint16_t(rec.Strength)
	}
	return 0
}

// currentContext is used by the year-independent guidelines.
func currentContext() standard.Context {
	return standard.NewContext(uint16(time.Now().Year()))
}

//export ws_nist_validate_hash
func ws_nist_validate_hash(hash, alt *C.ws_hash) C.int {
	return validateHash(nist.ValidateHash, currentContext(), hash, alt)
}

//export ws_nist_validate_symmetric
func ws_nist_validate_symmetric(key *C.ws_symmetric, expiry C.uint16_t, alt *C.ws_symmetric) C.int {
	return validateSymmetric(nist.ValidateSymmetric, standard.NewContext(uint16(expiry)), key, alt)
}

//export ws_bsi_validate_hash
func ws_bsi_validate_hash(hash *C.ws_hash, expiry C.uint16_t, alt *C.ws_hash) C.int {
	return validateHash(bsi.ValidateHash, standard.NewContext(uint16(expiry)), hash, alt)
}

//export ws_bsi_validate_symmetric
func ws_bsi_validate_symmetric(key *C.ws_symmetric, expiry C.uint16_t, alt *C.ws_symmetric) C.int {
	return validateSymmetric(bsi.ValidateSymmetric, standard.NewContext(uint16(expiry)), key, alt)
}

//export ws_cnsa_validate_hash
func ws_cnsa_validate_hash(hash, alt *C.ws_hash) C.int {
	return validateHash(cnsa.ValidateHash, currentContext(), hash, alt)
}

//export ws_cnsa_validate_symmetric
func ws_cnsa_validate_symmetric(key, alt *C.ws_symmetric) C.int {
	return validateSymmetric(cnsa.ValidateSymmetric, currentContext(), key, alt)
}

func main() {}
