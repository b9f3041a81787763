package assess

import (
	"errors"
	"testing"

	"github.com/georgepadayatti/cipherward/primitive"
	"github.com/georgepadayatti/cipherward/standard"
)

func TestParseGuide(t *testing.T) {
	tests := []struct {
		name string
		want Guide
	}{
		{"bsi", GuideBsi},
		{"BSI", GuideBsi},
		{"cnsa", GuideCnsa},
		{"Cnsa", GuideCnsa},
		{"nist", GuideNist},
		{"NIST", GuideNist},
	}

	for _, tt := range tests {
		got, err := ParseGuide(tt.name)
		if err != nil {
			t.Errorf("ParseGuide(%q) error = %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGuide(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	if _, err := ParseGuide("pci"); err == nil {
		t.Error("ParseGuide(\"pci\") = nil error, want error")
	}
}

func TestGuideString(t *testing.T) {
	tests := []struct {
		guide Guide
		want  string
	}{
		{GuideBsi, "bsi"},
		{GuideCnsa, "cnsa"},
		{GuideNist, "nist"},
		{Guide(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.guide.String(); got != tt.want {
			t.Errorf("Guide(%d).String() = %q, want %q", tt.guide, got, tt.want)
		}
	}
}

// Validation must return a result of the same family it was given.
func TestValidateSignatureAlgorithmPreservesFamily(t *testing.T) {
	ctx := standard.NewContext(2024)

	want, err := GuideCnsa.ValidateSignatureAlgorithm(ctx, primitive.P256)
	if !errors.Is(err, standard.ErrNoncompliant) {
		t.Fatalf("ValidateSignatureAlgorithm(P-256) error = %v, want ErrNoncompliant", err)
	}
	if _, ok := want.(primitive.Ecc); !ok {
		t.Errorf("recommendation for Ecc input tagged as %T, want Ecc", want)
	}

	want, err = GuideCnsa.ValidateSignatureAlgorithm(ctx, primitive.IFC2048)
	if !errors.Is(err, standard.ErrNoncompliant) {
		t.Fatalf("ValidateSignatureAlgorithm(IFC-2048) error = %v, want ErrNoncompliant", err)
	}
	if _, ok := want.(primitive.Ifc); !ok {
		t.Errorf("recommendation for Ifc input tagged as %T, want Ifc", want)
	}
}

func TestValidateHashFunctionDispatch(t *testing.T) {
	ctx := standard.NewContext(2024)

	// SHA-256 passes BSI and NIST but not CNSA; the guides must not
	// share tables.
	if _, err := GuideBsi.ValidateHashFunction(ctx, primitive.SHA256); err != nil {
		t.Errorf("bsi: ValidateHashFunction(SHA-256) = %v, want compliant", err)
	}
	if _, err := GuideNist.ValidateHashFunction(ctx, primitive.SHA256); err != nil {
		t.Errorf("nist: ValidateHashFunction(SHA-256) = %v, want compliant", err)
	}
	if _, err := GuideCnsa.ValidateHashFunction(ctx, primitive.SHA256); err == nil {
		t.Error("cnsa: ValidateHashFunction(SHA-256) = compliant, want noncompliant")
	}
}
