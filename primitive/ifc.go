package primitive

import "fmt"

// Ifc represents an integer factorization cryptography primitive such
// as RSA, or a finite-field primitive with equivalent hardness such as
// DSA or Diffie-Hellman, where K is the modulus size in bits. Security
// strength is not a simple function of K; each guideline derives it
// from its own modulus-to-strength table.
type Ifc struct {
	Name string
	K    uint16
}

// String returns the catalog name of the instance, or a generic
// description for modulus sizes outside the catalog (real-world keys
// occasionally carry off-size moduli).
func (i Ifc) String() string {
	if i.Name != "" {
		return i.Name
	}
	return fmt.Sprintf("ifc-%d", i.K)
}

func (Ifc) isAsymmetric() {}

// The catalog of named integer factorization instances, keyed by the
// modulus sizes the SP 800-57 strength table is defined over.
var (
	// IFC1024 is a 1024-bit modulus instance.
	IFC1024 = Ifc{Name: "IFC-1024", K: 1024}

	// IFC2048 is a 2048-bit modulus instance.
	IFC2048 = Ifc{Name: "IFC-2048", K: 2048}

	// IFC3072 is a 3072-bit modulus instance.
	IFC3072 = Ifc{Name: "IFC-3072", K: 3072}

	// IFC7680 is a 7680-bit modulus instance.
	IFC7680 = Ifc{Name: "IFC-7680", K: 7680}

	// IFC15360 is a 15360-bit modulus instance.
	IFC15360 = Ifc{Name: "IFC-15360", K: 15360}
)
