// Package primitive defines the catalog of named cryptographic
// primitives and their security-strength attributes.
//
// A primitive here is a description of parameter choices (digest
// length, key size, field size, modulus size), not a working
// implementation of the algorithm. The catalog is fixed: every named
// instance is a package-level value created at program start and never
// mutated, so values may be shared freely across goroutines.
package primitive

import "fmt"

// Asymmetric is a signature or key-establishment algorithm primitive:
// either an elliptic curve (Ecc) or an integer factorization (Ifc)
// instance. The set of implementations is closed; validation dispatches
// on the concrete type and re-wraps its result as the same type.
type Asymmetric interface {
	fmt.Stringer

	isAsymmetric()
}
