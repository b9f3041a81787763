package primitive

import "fmt"

// Ecc represents an elliptic curve cryptography primitive where F is
// the size of the base field in bits. Guidelines key their acceptance
// tables off the declared field size directly.
type Ecc struct {
	Name string
	F    uint16
}

// String returns the catalog name of the curve, or a generic
// description for instances outside the catalog.
func (e Ecc) String() string {
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("ecc-%d", e.F)
}

func (Ecc) isAsymmetric() {}

// The catalog of named elliptic curve instances.
var (
	// P224 is the Weierstrass curve P-224 over a prime field, also
	// known as secp224r1 (FIPS 186-4).
	P224 = Ecc{Name: "P-224", F: 224}

	// P256 is the Weierstrass curve P-256 over a prime field, also
	// known as secp256r1 (FIPS 186-4).
	P256 = Ecc{Name: "P-256", F: 256}

	// P384 is the Weierstrass curve P-384 over a prime field, also
	// known as secp384r1 (FIPS 186-4).
	P384 = Ecc{Name: "P-384", F: 384}

	// P521 is the Weierstrass curve P-521 over a prime field, also
	// known as secp521r1 (FIPS 186-4).
	P521 = Ecc{Name: "P-521", F: 521}

	// W25519 is the Weierstrass form of Curve25519 (SP 800-186).
	W25519 = Ecc{Name: "W-25519", F: 255}

	// W448 is the Weierstrass form of Curve448 (SP 800-186).
	W448 = Ecc{Name: "W-448", F: 448}

	// Curve25519 is the Montgomery curve from RFC 7748.
	Curve25519 = Ecc{Name: "Curve25519", F: 255}

	// Curve448 is the Montgomery curve from RFC 7748.
	Curve448 = Ecc{Name: "Curve448", F: 448}

	// Edwards25519 is the twisted Edwards curve used by Ed25519
	// (RFC 8032).
	Edwards25519 = Ecc{Name: "Edwards25519", F: 255}

	// Edwards448 is the Edwards curve used by Ed448 (RFC 8032).
	Edwards448 = Ecc{Name: "Edwards448", F: 448}

	// E448 is the Edwards curve E448 over a prime field.
	E448 = Ecc{Name: "E448", F: 448}

	// BrainpoolP224r1 as specified in RFC 5639.
	BrainpoolP224r1 = Ecc{Name: "brainpoolP224r1", F: 224}

	// BrainpoolP256r1 as specified in RFC 5639.
	BrainpoolP256r1 = Ecc{Name: "brainpoolP256r1", F: 256}

	// BrainpoolP320r1 as specified in RFC 5639.
	BrainpoolP320r1 = Ecc{Name: "brainpoolP320r1", F: 320}

	// BrainpoolP384r1 as specified in RFC 5639.
	BrainpoolP384r1 = Ecc{Name: "brainpoolP384r1", F: 384}

	// BrainpoolP512r1 as specified in RFC 5639.
	BrainpoolP512r1 = Ecc{Name: "brainpoolP512r1", F: 512}

	// Secp256k1 as specified in SEC 2.
	Secp256k1 = Ecc{Name: "secp256k1", F: 256}
)
