package primitive

import "fmt"

// Symmetric represents a symmetric key primitive where Strength is the
// security strength in bits. Unlike the other families the strength is
// declared directly rather than derived: meet-in-the-middle attacks
// mean a key's length and its strength can differ (three-key Triple
// DES carries 168 key bits but only 112 bits of strength).
type Symmetric struct {
	Name     string
	Strength uint16
}

// Security returns the declared security strength in bits.
func (s Symmetric) Security() uint16 {
	return s.Strength
}

// String returns the catalog name of the symmetric primitive, or a
// generic description for instances outside the catalog.
func (s Symmetric) String() string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("symmetric-%d", s.Strength)
}

// The catalog of named symmetric key instances.
var (
	// DES is the single Data Encryption Standard (FIPS 46-3).
	DES = Symmetric{Name: "DES", Strength: 56}

	// TDEA2 is two-key Triple DES (SP 800-67).
	TDEA2 = Symmetric{Name: "2TDEA", Strength: 80}

	// TDEA3 is three-key Triple DES (SP 800-67).
	TDEA3 = Symmetric{Name: "3TDEA", Strength: 112}

	// AES128 as specified in FIPS 197.
	AES128 = Symmetric{Name: "AES-128", Strength: 128}

	// AES192 as specified in FIPS 197.
	AES192 = Symmetric{Name: "AES-192", Strength: 192}

	// AES256 as specified in FIPS 197.
	AES256 = Symmetric{Name: "AES-256", Strength: 256}
)
