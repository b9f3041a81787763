// Package cert loads X.509 certificates and maps their declared
// algorithm identifiers onto the primitive catalog.
//
// Parsing is deliberately shallow: only the signature algorithm and
// the subject public key info are decoded, directly from the ASN.1
// structure. This keeps extraction best-effort for material the
// standard library refuses to touch, such as brainpool curves and DSA
// keys: an unrecognized identifier yields no primitive, never an error.
// Signatures are not verified and trust chains are not resolved.
package cert

import (
	"encoding/asn1"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/georgepadayatti/cipherward/primitive"
)

// Common errors
var (
	ErrNoCertFound     = errors.New("no certificate found in data")
	ErrInvalidPEMBlock = errors.New("invalid PEM block")
)

// algorithmIdentifier is the ASN.1 AlgorithmIdentifier from RFC 5280.
type algorithmIdentifier struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.RawValue `asn1:"optional"`
}

// publicKeyInfo is the ASN.1 SubjectPublicKeyInfo from RFC 5280.
type publicKeyInfo struct {
	Algorithm algorithmIdentifier
	PublicKey asn1.BitString
}

type validity struct {
	NotBefore, NotAfter time.Time
}

// tbsCertificate mirrors the RFC 5280 TBSCertificate structure up to
// the fields this package needs; the rest is captured raw.
type tbsCertificate struct {
	Raw                asn1.RawContent
	Version            int `asn1:"optional,explicit,default:0,tag:0"`
	SerialNumber       *big.Int
	SignatureAlgorithm algorithmIdentifier
	Issuer             asn1.RawValue
	Validity           validity
	Subject            asn1.RawValue
	PublicKey          publicKeyInfo
	IssuerUniqueID     asn1.BitString `asn1:"optional,tag:1"`
	SubjectUniqueID    asn1.BitString `asn1:"optional,tag:2"`
	Extensions         asn1.RawValue  `asn1:"optional,explicit,tag:3"`
}

// certificate is the outer RFC 5280 Certificate structure.
type certificate struct {
	TBSCertificate     tbsCertificate
	SignatureAlgorithm algorithmIdentifier
	SignatureValue     asn1.BitString
}

// Certificate holds the declared algorithm identifiers of a parsed
// X.509 certificate.
type Certificate struct {
	signatureAlgorithm algorithmIdentifier
	publicKey          publicKeyInfo

	// NotAfter is the certificate's expiry, usable as the default
	// evaluation horizon.
	NotAfter time.Time
}

// FromPEMFile loads a certificate from a PEM or DER encoded file. The
// first CERTIFICATE block of a PEM file is used. Unreadable or
// malformed input is a hard error.
func FromPEMFile(path string) (*Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	cert, err := FromData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate %s: %w", path, err)
	}
	return cert, nil
}

// FromData parses a certificate from PEM or DER encoded data.
func FromData(data []byte) (*Certificate, error) {
	if isPEM(data) {
		rest := data
		for len(rest) > 0 {
			var block *pem.Block
			block, rest = pem.Decode(rest)
			if block == nil {
				break
			}
			if block.Type == "CERTIFICATE" {
				return FromDER(block.Bytes)
			}
		}
		return nil, ErrNoCertFound
	}
	return FromDER(data)
}

// FromDER parses a certificate from raw DER bytes.
func FromDER(der []byte) (*Certificate, error) {
	var parsed certificate
	rest, err := asn1.Unmarshal(der, &parsed)
	if err != nil {
		return nil, fmt.Errorf("malformed certificate: %w", err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("malformed certificate: %d trailing bytes", len(rest))
	}
	return &Certificate{
		signatureAlgorithm: parsed.SignatureAlgorithm,
		publicKey:          parsed.TBSCertificate.PublicKey,
		NotAfter:           parsed.TBSCertificate.Validity.NotAfter,
	}, nil
}

func isPEM(data []byte) bool {
	return len(data) > 10 && string(data[:5]) == "-----"
}

// ExtractHashFunction maps the certificate's signature algorithm onto
// the hash function it declares. The second return value is false when
// the algorithm is unrecognized or declares no fixed digest.
func (c *Certificate) ExtractHashFunction() (primitive.Hash, bool) {
	if c.signatureAlgorithm.Algorithm.Equal(oidSignatureRSAPSS) {
		return pssHash(c.signatureAlgorithm.Parameters)
	}
	return hashForSignatureOID(c.signatureAlgorithm.Algorithm)
}

// ExtractSignatureAlgorithm maps the certificate's subject public key
// onto an asymmetric primitive. The second return value is false when
// the key algorithm is unrecognized.
func (c *Certificate) ExtractSignatureAlgorithm() (primitive.Asymmetric, bool) {
	alg := c.publicKey.Algorithm.Algorithm
	switch {
	case alg.Equal(oidPublicKeyRSA), alg.Equal(oidSignatureRSAPSS):
		return rsaInstance(c.publicKey.PublicKey)
	case alg.Equal(oidPublicKeyDSA):
		return dsaInstance(c.publicKey.Algorithm.Parameters)
	case alg.Equal(oidPublicKeyECDSA):
		return curveInstance(c.publicKey.Algorithm.Parameters)
	case alg.Equal(oidPublicKeyX25519):
		return primitive.Curve25519, true
	case alg.Equal(oidPublicKeyX448):
		return primitive.Curve448, true
	case alg.Equal(oidPublicKeyEd25519):
		return primitive.Edwards25519, true
	case alg.Equal(oidPublicKeyEd448):
		return primitive.Edwards448, true
	default:
		return nil, false
	}
}

// pssParameters mirrors RSASSA-PSS-params from RFC 4055. Only the hash
// algorithm is of interest; it defaults to SHA-1 when absent.
type pssParameters struct {
	Hash algorithmIdentifier `asn1:"optional,explicit,tag:0"`
}

func pssHash(params asn1.RawValue) (primitive.Hash, bool) {
	if len(params.FullBytes) == 0 {
		return primitive.SHA1, true
	}
	var pss pssParameters
	if _, err := asn1.Unmarshal(params.FullBytes, &pss); err != nil {
		return primitive.Hash{}, false
	}
	if len(pss.Hash.Algorithm) == 0 {
		return primitive.SHA1, true
	}
	return hashForDigestOID(pss.Hash.Algorithm)
}

// rsaPublicKey is the PKCS#1 RSAPublicKey structure.
type rsaPublicKey struct {
	N *big.Int
	E int
}

func rsaInstance(key asn1.BitString) (primitive.Asymmetric, bool) {
	var pub rsaPublicKey
	if _, err := asn1.Unmarshal(key.RightAlign(), &pub); err != nil {
		return nil, false
	}
	if pub.N == nil || pub.N.Sign() <= 0 || pub.N.BitLen() > 1<<16-1 {
		return nil, false
	}
	return ifcForModulus(pub.N.BitLen()), true
}

// dsaParameters is the Dss-Parms structure from RFC 3279.
type dsaParameters struct {
	P, Q, G *big.Int
}

func dsaInstance(params asn1.RawValue) (primitive.Asymmetric, bool) {
	if len(params.FullBytes) == 0 {
		return nil, false
	}
	var parms dsaParameters
	if _, err := asn1.Unmarshal(params.FullBytes, &parms); err != nil {
		return nil, false
	}
	if parms.P == nil || parms.P.Sign() <= 0 || parms.P.BitLen() > 1<<16-1 {
		return nil, false
	}
	return ifcForModulus(parms.P.BitLen()), true
}

func curveInstance(params asn1.RawValue) (primitive.Asymmetric, bool) {
	var oid asn1.ObjectIdentifier
	if _, err := asn1.Unmarshal(params.FullBytes, &oid); err != nil {
		return nil, false
	}
	curve, ok := curveForOID(oid)
	if !ok {
		return nil, false
	}
	return curve, true
}
