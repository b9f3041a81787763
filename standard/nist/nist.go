// Package nist validates cryptographic primitives against NIST Special
// Publication 800-57 Part 1 Revision 5.
//
// The tables here are the recommendation's security-strength floors:
// 112 bits for collision-resistant hashing, 128 bits for everything
// else, with 112-bit asymmetric parameters and three-key Triple DES on
// time-limited deprecation tracks. Validation is a pure function of
// the context and the primitive.
package nist

import (
	"github.com/georgepadayatti/cipherward/primitive"
	"github.com/georgepadayatti/cipherward/standard"
)

const (
	// tdeaCutoffYear is the last year three-key Triple DES (112-bit
	// strength) is acceptable for applying protection (SP 800-57
	// pages 54-55).
	tdeaCutoffYear = 2023

	// strength112CutoffYear is the last year 112-bit asymmetric
	// parameters are acceptable (SP 800-57 table 4).
	strength112CutoffYear = 2030
)

// ValidateHash validates a hash function for digital signatures and
// other applications that require collision resistance (SP 800-57
// page 56).
//
// The default recommendation on failure is SHA-256. It is safe for
// most use cases but, lacking resistance against length extension
// attacks, is generally not recommended for hashing secrets.
func ValidateHash(ctx standard.Context, h primitive.Hash) (primitive.Hash, error) {
	floor := uint16(112)
	if ctx.SecurityLevel() > floor {
		floor = ctx.SecurityLevel()
	}
	if h.Security() >= floor {
		return h, nil
	}
	return recommendedHash(floor), standard.ErrNoncompliant
}

// ValidateSymmetric validates a symmetric key primitive (SP 800-57
// pages 54-55). A strength of exactly 112 bits, i.e. three-key Triple
// DES, remains acceptable through 2023.
func ValidateSymmetric(ctx standard.Context, key primitive.Symmetric) (primitive.Symmetric, error) {
	floor := uint16(128)
	if ctx.SecurityLevel() > floor {
		floor = ctx.SecurityLevel()
	}
	s := key.Security()
	if s >= floor {
		return key, nil
	}
	if s == 112 && ctx.Year() <= tdeaCutoffYear && ctx.SecurityLevel() <= 112 {
		return key, nil
	}
	return recommendedSymmetric(floor), standard.ErrNoncompliant
}

// ValidateEcc validates an elliptic curve primitive. The acceptance
// table is keyed off the declared field size; 224-bit fields (112-bit
// strength) remain acceptable through 2030.
func ValidateEcc(ctx standard.Context, e primitive.Ecc) (primitive.Ecc, error) {
	floor := uint16(128)
	if ctx.SecurityLevel() > floor {
		floor = ctx.SecurityLevel()
	}
	s := eccStrength(e.F)
	if s >= floor {
		return e, nil
	}
	if s == 112 && ctx.Year() <= strength112CutoffYear && ctx.SecurityLevel() <= 112 {
		return e, nil
	}
	return recommendedEcc(floor), standard.ErrNoncompliant
}

// ValidateIfc validates an integer factorization primitive. Strength
// is derived from the modulus size via the SP 800-57 table 2 ranges;
// 2048-bit moduli (112-bit strength) remain acceptable through 2030.
func ValidateIfc(ctx standard.Context, i primitive.Ifc) (primitive.Ifc, error) {
	floor := uint16(128)
	if ctx.SecurityLevel() > floor {
		floor = ctx.SecurityLevel()
	}
	s := ifcStrength(i.K)
	if s >= floor {
		return i, nil
	}
	if s == 112 && ctx.Year() <= strength112CutoffYear && ctx.SecurityLevel() <= 112 {
		return i, nil
	}
	return recommendedIfc(floor), standard.ErrNoncompliant
}

// eccStrength maps a field size onto the SP 800-57 table 2 strength
// estimate.
func eccStrength(f uint16) uint16 {
	switch {
	case f >= 512:
		return 256
	case f >= 384:
		return 192
	case f >= 256:
		return 128
	case f >= 224:
		return 112
	case f >= 160:
		return 80
	default:
		return 0
	}
}

// ifcStrength maps a modulus size onto the SP 800-57 table 2 strength
// estimate.
func ifcStrength(k uint16) uint16 {
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
	default:
		return 0
	}
}

func recommendedHash(strength uint16) primitive.Hash {
	switch {
	case strength <= 128:
		return primitive.SHA256
	case strength <= 192:
		return primitive.SHA384
	default:
		return primitive.SHA512
	}
}

func recommendedSymmetric(strength uint16) primitive.Symmetric {
	switch {
	case strength <= 128:
		return primitive.AES128
	case strength <= 192:
		return primitive.AES192
	default:
		return primitive.AES256
	}
}

func recommendedEcc(strength uint16) primitive.Ecc {
	switch {
	case strength <= 128:
		return primitive.P256
	case strength <= 192:
		return primitive.P384
	default:
		return primitive.P521
	}
}

func recommendedIfc(strength uint16) primitive.Ifc {
	switch {
	case strength <= 128:
		return primitive.IFC3072
	case strength <= 192:
		return primitive.IFC7680
	default:
		return primitive.IFC15360
	}
}
