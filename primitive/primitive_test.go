package primitive

import "testing"

func TestHashSecurity(t *testing.T) {
	tests := []struct {
		hash Hash
		want uint16
	}{
		{MD5, 64},
		{SHA1, 80},
		{SHA256, 128},
		{SHA384, 192},
		{SHA512, 256},
		{SHA512_224, 112},
		{SHA3_256, 128},
		{BLAKE2b_512, 256},
	}

	for _, tt := range tests {
		if got := tt.hash.Security(); got != tt.want {
			t.Errorf("%s.Security() = %d, want %d", tt.hash, got, tt.want)
		}
	}
}

func TestSymmetricSecurity(t *testing.T) {
	tests := []struct {
		key  Symmetric
		want uint16
	}{
		{DES, 56},
		{TDEA2, 80},
		{TDEA3, 112},
		{AES128, 128},
		{AES256, 256},
	}

	for _, tt := range tests {
		if got := tt.key.Security(); got != tt.want {
			t.Errorf("%s.Security() = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestStringNamed(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{SHA256.String(), "SHA-256"},
		{AES128.String(), "AES-128"},
		{P256.String(), "P-256"},
		{BrainpoolP384r1.String(), "brainpoolP384r1"},
		{IFC2048.String(), "IFC-2048"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestStringUnnamed(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{Hash{N: 192}.String(), "hash-192"},
		{Symmetric{Strength: 96}.String(), "symmetric-96"},
		{Ecc{F: 239}.String(), "ecc-239"},
		{Ifc{K: 2047}.String(), "ifc-2047"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestAsymmetricUnion(t *testing.T) {
	// Both families must satisfy the union so that validation can
	// round-trip the variant tag.
	var alg Asymmetric = P256
	if _, ok := alg.(Ecc); !ok {
		t.Errorf("P256 tagged as %T, want Ecc", alg)
	}

	alg = IFC2048
	if _, ok := alg.(Ifc); !ok {
		t.Errorf("IFC2048 tagged as %T, want Ifc", alg)
	}
}
