// Package sshkey loads OpenSSH public keys and maps them onto the
// primitive catalog so key parameters can be assessed like certificate
// signature algorithms.
package sshkey

import (
	"bufio"
	"bytes"
	"crypto/dsa" //nolint:staticcheck // classifying legacy keys is the point
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/ssh"

	"github.com/georgepadayatti/cipherward/primitive"
)

// ErrNoKeyFound reports that the file contained no public key line.
var ErrNoKeyFound = errors.New("no public key found in data")

// PublicKey holds a parsed SSH public key.
type PublicKey struct {
	key ssh.PublicKey
}

// FromFile loads the first public key from an OpenSSH public key or
// authorized_keys file. Unreadable or malformed input is a hard error.
func FromFile(path string) (*PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	key, err := FromData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key %s: %w", path, err)
	}
	return key, nil
}

// FromData parses the first public key line from OpenSSH formatted
// data, skipping blanks and comments.
func FromData(data []byte) (*PublicKey, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		key, _, _, _, err := ssh.ParseAuthorizedKey(line)
		if err != nil {
			return nil, fmt.Errorf("malformed public key: %w", err)
		}
		return &PublicKey{key: key}, nil
	}
	return nil, ErrNoKeyFound
}

// Type returns the SSH wire algorithm name, e.g. "ssh-ed25519".
func (p *PublicKey) Type() string {
	return p.key.Type()
}

// ExtractSignatureAlgorithm maps the key onto an asymmetric primitive.
// The second return value is false for key types outside the catalog
// (e.g. FIDO security key variants).
func (p *PublicKey) ExtractSignatureAlgorithm() (primitive.Asymmetric, bool) {
	crypto, ok := p.key.(ssh.CryptoPublicKey)
	if !ok {
		return nil, false
	}

	switch key := crypto.CryptoPublicKey().(type) {
	case *rsa.PublicKey:
		bits := key.N.BitLen()
		if bits <= 0 || bits > 1<<16-1 {
			return nil, false
		}
		return ifcForModulus(bits), true
	case *dsa.PublicKey:
		// RFC 4253 fixes ssh-dss at a 1024-bit modulus, but read the
		// actual parameter in case of nonstandard material.
		bits := key.P.BitLen()
		if bits <= 0 || bits > 1<<16-1 {
			return nil, false
		}
		return ifcForModulus(bits), true
	case *ecdsa.PublicKey:
		switch key.Curve.Params().BitSize {
		case 256:
			return primitive.P256, true
		case 384:
			return primitive.P384, true
		case 521:
			return primitive.P521, true
		default:
			return nil, false
		}
	case ed25519.PublicKey:
		return primitive.Edwards25519, true
	default:
		return nil, false
	}
}

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
