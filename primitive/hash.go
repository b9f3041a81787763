package primitive

import "fmt"

// Hash represents a hash function primitive where N is the digest
// length in bits.
type Hash struct {
	Name string
	N    uint16
}

// Security returns the collision resistance strength of the hash
// function in bits, i.e. half the digest length per the birthday
// bound.
func (h Hash) Security() uint16 {
	return h.N >> 1
}

// String returns the catalog name of the hash function, or a generic
// family-and-size description for instances outside the catalog.
func (h Hash) String() string {
	if h.Name != "" {
		return h.Name
	}
	return fmt.Sprintf("hash-%d", h.N)
}

// The catalog of named hash function instances.
var (
	// MD4 as specified in RFC 1320.
	MD4 = Hash{Name: "MD4", N: 128}

	// MD5 as specified in RFC 1321.
	MD5 = Hash{Name: "MD5", N: 128}

	// RIPEMD160 as specified in ISO/IEC 10118-3.
	RIPEMD160 = Hash{Name: "RIPEMD-160", N: 160}

	// SHA1 as specified in FIPS 180-4.
	SHA1 = Hash{Name: "SHA-1", N: 160}

	// SHA224 as specified in FIPS 180-4.
	SHA224 = Hash{Name: "SHA-224", N: 224}

	// SHA256 as specified in FIPS 180-4.
	SHA256 = Hash{Name: "SHA-256", N: 256}

	// SHA384 as specified in FIPS 180-4.
	SHA384 = Hash{Name: "SHA-384", N: 384}

	// SHA512 as specified in FIPS 180-4.
	SHA512 = Hash{Name: "SHA-512", N: 512}

	// SHA512_224 is the SHA-512/224 truncated variant from FIPS 180-4.
	SHA512_224 = Hash{Name: "SHA-512/224", N: 224}

	// SHA512_256 is the SHA-512/256 truncated variant from FIPS 180-4.
	SHA512_256 = Hash{Name: "SHA-512/256", N: 256}

	// SHA3_224 as specified in FIPS 202.
	SHA3_224 = Hash{Name: "SHA3-224", N: 224}

	// SHA3_256 as specified in FIPS 202.
	SHA3_256 = Hash{Name: "SHA3-256", N: 256}

	// SHA3_384 as specified in FIPS 202.
	SHA3_384 = Hash{Name: "SHA3-384", N: 384}

	// SHA3_512 as specified in FIPS 202.
	SHA3_512 = Hash{Name: "SHA3-512", N: 512}

	// BLAKE2s_256 is BLAKE2s with a 256-bit digest (RFC 7693).
	BLAKE2s_256 = Hash{Name: "BLAKE2s-256", N: 256}

	// BLAKE2b_256 is BLAKE2b with a 256-bit digest (RFC 7693).
	BLAKE2b_256 = Hash{Name: "BLAKE2b-256", N: 256}

	// BLAKE2b_384 is BLAKE2b with a 384-bit digest (RFC 7693).
	BLAKE2b_384 = Hash{Name: "BLAKE2b-384", N: 384}

	// BLAKE2b_512 is BLAKE2b with a 512-bit digest (RFC 7693).
	BLAKE2b_512 = Hash{Name: "BLAKE2b-512", N: 512}
)
