// Package cnsa validates cryptographic primitives against the NSA
// Commercial National Security Algorithm Suite.
//
// CNSA is a flat profile with no transitional tiers: SHA-384 or
// better for hashing, AES-256 for symmetric encryption, P-384 class
// curves, and RSA moduli of at least 3072 bits. The tables are
// independent of every other guideline package.
package cnsa

import (
	"github.com/georgepadayatti/cipherward/primitive"
	"github.com/georgepadayatti/cipherward/standard"
)

// ValidateHash validates a hash function against the suite, which
// admits SHA-384 and stronger.
func ValidateHash(ctx standard.Context, h primitive.Hash) (primitive.Hash, error) {
	floor := uint16(192)
	if ctx.SecurityLevel() > floor {
		floor = ctx.SecurityLevel()
	}
	if h.Security() >= floor {
		return h, nil
	}
	if floor <= 192 {
		return primitive.SHA384, standard.ErrNoncompliant
	}
	return primitive.SHA512, standard.ErrNoncompliant
}

// ValidateSymmetric validates a symmetric key primitive against the
// suite, which admits AES-256 only.
func ValidateSymmetric(ctx standard.Context, key primitive.Symmetric) (primitive.Symmetric, error) {
	floor := uint16(256)
	if ctx.SecurityLevel() > floor {
		floor = ctx.SecurityLevel()
	}
	if key.Security() >= floor {
		return key, nil
	}
	return primitive.AES256, standard.ErrNoncompliant
}

// ValidateEcc validates an elliptic curve primitive against the suite,
// which requires base fields of at least 384 bits.
func ValidateEcc(ctx standard.Context, e primitive.Ecc) (primitive.Ecc, error) {
	minField := uint16(384)
	if f := 2 * ctx.SecurityLevel(); f > minField {
		minField = f
	}
	if e.F >= minField {
		return e, nil
	}
	if minField <= 384 {
		return primitive.P384, standard.ErrNoncompliant
	}
	return primitive.P521, standard.ErrNoncompliant
}

// ValidateIfc validates an integer factorization primitive against the
// suite, which requires moduli of at least 3072 bits.
func ValidateIfc(ctx standard.Context, i primitive.Ifc) (primitive.Ifc, error) {
	minModulus := uint16(3072)
	switch level := ctx.SecurityLevel(); {
	case level > 192:
		minModulus = 15360
	case level > 128:
		minModulus = 7680
	}
	if i.K >= minModulus {
		return i, nil
	}
	switch minModulus {
	case 15360:
		return primitive.IFC15360, standard.ErrNoncompliant
	case 7680:
		return primitive.IFC7680, standard.ErrNoncompliant
	default:
		return primitive.IFC3072, standard.ErrNoncompliant
	}
}
