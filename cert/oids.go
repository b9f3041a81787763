package cert

import (
	"encoding/asn1"

	"github.com/georgepadayatti/cipherward/primitive"
)

// Signature algorithm OIDs (PKCS#1, ANSI X9.62, FIPS 186, RFC 8410).
var (
	oidSignatureMD5WithRSA      = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 4}
	oidSignatureSHA1WithRSA     = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 5}
	oidSignatureSHA224WithRSA   = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 14}
	oidSignatureSHA256WithRSA   = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 11}
	oidSignatureSHA384WithRSA   = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 12}
	oidSignatureSHA512WithRSA   = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 13}
	oidSignatureRSAPSS          = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 10}
	oidSignatureDSAWithSHA1     = asn1.ObjectIdentifier{1, 2, 840, 10040, 4, 3}
	oidSignatureDSAWithSHA256   = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3, 2}
	oidSignatureECDSAWithSHA1   = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 1}
	oidSignatureECDSAWithSHA224 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 1}
	oidSignatureECDSAWithSHA256 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 2}
	oidSignatureECDSAWithSHA384 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 3}
	oidSignatureECDSAWithSHA512 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 4}
	oidSignatureEd25519         = asn1.ObjectIdentifier{1, 3, 101, 112}
)

// Digest algorithm OIDs, used by RSASSA-PSS parameters.
var (
	oidDigestSHA1   = asn1.ObjectIdentifier{1, 3, 14, 3, 2, 26}
	oidDigestSHA224 = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 4}
	oidDigestSHA256 = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 1}
	oidDigestSHA384 = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 2}
	oidDigestSHA512 = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 3}
)

// Public key algorithm OIDs.
var (
	oidPublicKeyRSA     = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
	oidPublicKeyDSA     = asn1.ObjectIdentifier{1, 2, 840, 10040, 4, 1}
	oidPublicKeyECDSA   = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidPublicKeyX25519  = asn1.ObjectIdentifier{1, 3, 101, 110}
	oidPublicKeyX448    = asn1.ObjectIdentifier{1, 3, 101, 111}
	oidPublicKeyEd25519 = asn1.ObjectIdentifier{1, 3, 101, 112}
	oidPublicKeyEd448   = asn1.ObjectIdentifier{1, 3, 101, 113}
)

// Named curve OIDs (SEC 2, FIPS 186-4, RFC 5639).
var (
	oidCurveP224            = asn1.ObjectIdentifier{1, 3, 132, 0, 33}
	oidCurveP256            = asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
	oidCurveP384            = asn1.ObjectIdentifier{1, 3, 132, 0, 34}
	oidCurveP521            = asn1.ObjectIdentifier{1, 3, 132, 0, 35}
	oidCurveSecp256k1       = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
	oidCurveBrainpoolP224r1 = asn1.ObjectIdentifier{1, 3, 36, 3, 3, 2, 8, 1, 1, 5}
	oidCurveBrainpoolP256r1 = asn1.ObjectIdentifier{1, 3, 36, 3, 3, 2, 8, 1, 1, 7}
	oidCurveBrainpoolP320r1 = asn1.ObjectIdentifier{1, 3, 36, 3, 3, 2, 8, 1, 1, 9}
	oidCurveBrainpoolP384r1 = asn1.ObjectIdentifier{1, 3, 36, 3, 3, 2, 8, 1, 1, 11}
	oidCurveBrainpoolP512r1 = asn1.ObjectIdentifier{1, 3, 36, 3, 3, 2, 8, 1, 1, 13}
)

// hashForSignatureOID maps a signature algorithm identifier onto the
// digest primitive it uses. Ed25519 prehashes with SHA-512 internally.
func hashForSignatureOID(oid asn1.ObjectIdentifier) (primitive.Hash, bool) {
	switch {
	case oid.Equal(oidSignatureMD5WithRSA):
		return primitive.MD5, true
	case oid.Equal(oidSignatureSHA1WithRSA), oid.Equal(oidSignatureDSAWithSHA1), oid.Equal(oidSignatureECDSAWithSHA1):
		return primitive.SHA1, true
	case oid.Equal(oidSignatureSHA224WithRSA), oid.Equal(oidSignatureECDSAWithSHA224):
		return primitive.SHA224, true
	case oid.Equal(oidSignatureSHA256WithRSA), oid.Equal(oidSignatureDSAWithSHA256), oid.Equal(oidSignatureECDSAWithSHA256):
		return primitive.SHA256, true
	case oid.Equal(oidSignatureSHA384WithRSA), oid.Equal(oidSignatureECDSAWithSHA384):
		return primitive.SHA384, true
	case oid.Equal(oidSignatureSHA512WithRSA), oid.Equal(oidSignatureECDSAWithSHA512), oid.Equal(oidSignatureEd25519):
		return primitive.SHA512, true
	default:
		return primitive.Hash{}, false
	}
}

// hashForDigestOID maps a bare digest algorithm identifier onto its
// primitive, as referenced from RSASSA-PSS parameters.
func hashForDigestOID(oid asn1.ObjectIdentifier) (primitive.Hash, bool) {
	switch {
	case oid.Equal(oidDigestSHA1):
		return primitive.SHA1, true
	case oid.Equal(oidDigestSHA224):
		return primitive.SHA224, true
	case oid.Equal(oidDigestSHA256):
		return primitive.SHA256, true
	case oid.Equal(oidDigestSHA384):
		return primitive.SHA384, true
	case oid.Equal(oidDigestSHA512):
		return primitive.SHA512, true
	default:
		return primitive.Hash{}, false
	}
}

// curveForOID maps a named curve identifier onto its catalog instance.
func curveForOID(oid asn1.ObjectIdentifier) (primitive.Ecc, bool) {
	switch {
	case oid.Equal(oidCurveP224):
		return primitive.P224, true
	case oid.Equal(oidCurveP256):
		return primitive.P256, true
	case oid.Equal(oidCurveP384):
		return primitive.P384, true
	case oid.Equal(oidCurveP521):
		return primitive.P521, true
	case oid.Equal(oidCurveSecp256k1):
		return primitive.Secp256k1, true
	case oid.Equal(oidCurveBrainpoolP224r1):
		return primitive.BrainpoolP224r1, true
	case oid.Equal(oidCurveBrainpoolP256r1):
		return primitive.BrainpoolP256r1, true
	case oid.Equal(oidCurveBrainpoolP320r1):
		return primitive.BrainpoolP320r1, true
	case oid.Equal(oidCurveBrainpoolP384r1):
		return primitive.BrainpoolP384r1, true
	case oid.Equal(oidCurveBrainpoolP512r1):
		return primitive.BrainpoolP512r1, true
	default:
		return primitive.Ecc{}, false
	}
}

// ifcForModulus returns the catalog instance for a modulus size, or a
// bare Ifc value for the off-catalog sizes real keys sometimes carry.
func ifcForModulus(bits int) primitive.Ifc {
	switch bits {
	case 1024:
		return primitive.IFC1024
	case 2048:
		return primitive.IFC2048
	case 3072:
		return primitive.IFC3072
	case 7680:
		return primitive.IFC7680
	case 15360:
		return primitive.IFC15360
	default:
		return primitive.Ifc{K: uint16(bits)}
	}
}
