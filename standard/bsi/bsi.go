// Package bsi validates cryptographic primitives against the BSI
// TR-02102 series of technical guidelines.
//
// TR-02102-1 sets a general floor of 120 bits of security, with a
// transitional 100-bit tier that expired at the end of 2022 and a
// 2000-bit RSA concession that runs through 2023. Recommended
// replacements favor the brainpool curves the guideline itself
// endorses. The tables are independent of every other guideline
// package.
package bsi

import (
	"github.com/georgepadayatti/cipherward/primitive"
	"github.com/georgepadayatti/cipherward/standard"
)

const (
	// legacyCutoffYear is the last year the transitional 100-bit
	// security tier is acceptable (TR-02102-1 section 1.4).
	legacyCutoffYear = 2022

	// ifc2000CutoffYear is the last year 2000-bit moduli are
	// acceptable (TR-02102-1 section 3.5).
	ifc2000CutoffYear = 2023
)

// ValidateHash validates a hash function for applications requiring
// collision resistance (TR-02102-1 section 4).
func ValidateHash(ctx standard.Context, h primitive.Hash) (primitive.Hash, error) {
	floor := uint16(120)
	if ctx.SecurityLevel() > floor {
		floor = ctx.SecurityLevel()
	}
	s := h.Security()
	if s >= floor {
		return h, nil
	}
	if s >= 100 && ctx.Year() <= legacyCutoffYear && ctx.SecurityLevel() <= 100 {
		return h, nil
	}
	return recommendedHash(floor), standard.ErrNoncompliant
}

// ValidateSymmetric validates a symmetric key primitive (TR-02102-1
// section 2.1). The guideline recommends AES exclusively; anything
// below the 120-bit floor is rejected outright.
func ValidateSymmetric(ctx standard.Context, key primitive.Symmetric) (primitive.Symmetric, error) {
	floor := uint16(120)
	if ctx.SecurityLevel() > floor {
		floor = ctx.SecurityLevel()
	}
	if key.Security() >= floor {
		return key, nil
	}
	return recommendedSymmetric(floor), standard.ErrNoncompliant
}

// ValidateEcc validates an elliptic curve primitive (TR-02102-1
// section 3.6). The guideline requires base fields of at least 250
// bits; 224-bit fields were acceptable through 2022.
func ValidateEcc(ctx standard.Context, e primitive.Ecc) (primitive.Ecc, error) {
	minField := uint16(250)
	if f := 2 * ctx.SecurityLevel(); f > minField {
		minField = f
	}
	if e.F >= minField {
		return e, nil
	}
	if e.F >= 224 && ctx.Year() <= legacyCutoffYear && ctx.SecurityLevel() <= 112 {
		return e, nil
	}
	return recommendedEcc(ctx.SecurityLevel()), standard.ErrNoncompliant
}

// ValidateIfc validates an integer factorization primitive (TR-02102-1
// section 3.5). Moduli of at least 3000 bits are required; 2000-bit
// moduli remain acceptable through 2023.
func ValidateIfc(ctx standard.Context, i primitive.Ifc) (primitive.Ifc, error) {
	floor := uint16(120)
	if ctx.SecurityLevel() > floor {
		floor = ctx.SecurityLevel()
	}
	s := ifcStrength(i.K)
	if s >= floor {
		return i, nil
	}
	if s >= 100 && ctx.Year() <= ifc2000CutoffYear && ctx.SecurityLevel() <= 100 {
		return i, nil
	}
	return recommendedIfc(floor), standard.ErrNoncompliant
}

// ifcStrength maps a modulus size onto the TR-02102-1 strength
// estimate: roughly 100 bits at 2000-bit moduli and 120 bits at 3000.
func ifcStrength(k uint16) uint16 {
	switch {
	case k >= 15360:
		return 256
	case k >= 7680:
		return 192
	case k >= 3000:
		return 120
	case k >= 2000:
		return 100
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
		return primitive.BrainpoolP256r1
	case strength <= 192:
		return primitive.BrainpoolP384r1
	default:
		return primitive.BrainpoolP512r1
	}
}

func recommendedIfc(strength uint16) primitive.Ifc {
	switch {
	case strength <= 120:
		return primitive.IFC3072
	case strength <= 192:
		return primitive.IFC7680
	default:
		return primitive.IFC15360
	}
}
