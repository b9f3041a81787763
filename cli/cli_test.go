package cli

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeCert writes a self-signed ECDSA certificate into dir and
// returns its path.
func writeCert(t *testing.T, dir, name string, curve elliptic.Curve, sigAlg x509.SignatureAlgorithm) string {
	t.Helper()

	key, err := ecdsa.GenerateKey(curve, rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	template := &x509.Certificate{
		SerialNumber:       big.NewInt(time.Now().UnixNano()),
		Subject:            pkix.Name{CommonName: "cli test"},
		NotBefore:          time.Now().Add(-time.Hour),
		NotAfter:           time.Now().Add(24 * time.Hour),
		SignatureAlgorithm: sigAlg,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("failed to create certificate: %v", err)
	}

	path := filepath.Join(dir, name)
	data := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write certificate: %v", err)
	}
	return path
}

// execute runs the CLI with args and returns stdout, stderr and the
// command error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := rootCmd()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestX509CommandPass(t *testing.T) {
	path := writeCert(t, t.TempDir(), "ok.pem", elliptic.P256(), x509.ECDSAWithSHA256)

	stdout, _, err := execute(t, "x509", "--config", filepath.Join(t.TempDir(), "none.yaml"), path)
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(stdout, "ok: "+path) {
		t.Errorf("stdout missing status line:\n%s", stdout)
	}
}

func TestX509CommandFailSetsError(t *testing.T) {
	path := writeCert(t, t.TempDir(), "weak.pem", elliptic.P256(), x509.ECDSAWithSHA256)

	_, stderr, err := execute(t, "x509", "--guide", "cnsa",
		"--config", filepath.Join(t.TempDir(), "none.yaml"), path)
	if !errors.Is(err, errAssessmentFailed) {
		t.Fatalf("execute() error = %v, want errAssessmentFailed", err)
	}
	if !strings.Contains(stderr, "fail: "+path) {
		t.Errorf("stderr missing status line:\n%s", stderr)
	}
	if !strings.Contains(stderr, "want: P-384") {
		t.Errorf("stderr missing recommendation:\n%s", stderr)
	}
}

func TestX509CommandAggregatesFailures(t *testing.T) {
	dir := t.TempDir()
	ok := writeCert(t, dir, "ok.pem", elliptic.P384(), x509.ECDSAWithSHA384)
	bad := filepath.Join(dir, "bad.pem")
	if err := os.WriteFile(bad, []byte("garbage"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	stdout, stderr, err := execute(t, "x509",
		"--config", filepath.Join(t.TempDir(), "none.yaml"), ok, bad)
	if !errors.Is(err, errAssessmentFailed) {
		t.Fatalf("execute() error = %v, want errAssessmentFailed", err)
	}
	// The passing file is still reported.
	if !strings.Contains(stdout, "ok: "+ok) {
		t.Errorf("stdout missing passing file:\n%s", stdout)
	}
	if !strings.Contains(stderr, "fail: "+bad) {
		t.Errorf("stderr missing failing file:\n%s", stderr)
	}
}

func TestX509CommandGlob(t *testing.T) {
	dir := t.TempDir()
	writeCert(t, dir, "a.pem", elliptic.P256(), x509.ECDSAWithSHA256)
	writeCert(t, dir, "b.pem", elliptic.P384(), x509.ECDSAWithSHA384)

	stdout, _, err := execute(t, "x509",
		"--config", filepath.Join(t.TempDir(), "none.yaml"),
		filepath.Join(dir, "*.pem"))
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if got := strings.Count(stdout, "ok: "); got != 2 {
		t.Errorf("assessed %d files, want 2:\n%s", got, stdout)
	}
}

func TestX509CommandNoMatches(t *testing.T) {
	_, _, err := execute(t, "x509",
		"--config", filepath.Join(t.TempDir(), "none.yaml"),
		filepath.Join(t.TempDir(), "*.pem"))
	if err == nil || errors.Is(err, errAssessmentFailed) {
		t.Errorf("execute() error = %v, want pattern error", err)
	}
}

func TestConfigFileProvidesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeCert(t, dir, "cert.pem", elliptic.P256(), x509.ECDSAWithSHA256)

	cfgPath := filepath.Join(dir, "cipherward.yaml")
	if err := os.WriteFile(cfgPath, []byte("guide: cnsa\n"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	// The config file selects CNSA, under which the P-256 cert fails.
	_, _, err := execute(t, "x509", "--config", cfgPath, path)
	if !errors.Is(err, errAssessmentFailed) {
		t.Fatalf("execute() error = %v, want errAssessmentFailed", err)
	}

	// An explicit flag overrides the file.
	_, _, err = execute(t, "x509", "--config", cfgPath, "--guide", "bsi", path)
	if err != nil {
		t.Errorf("execute() with flag override error = %v", err)
	}
}

func TestUnknownGuide(t *testing.T) {
	path := writeCert(t, t.TempDir(), "cert.pem", elliptic.P256(), x509.ECDSAWithSHA256)

	_, _, err := execute(t, "x509", "--guide", "pci",
		"--config", filepath.Join(t.TempDir(), "none.yaml"), path)
	if err == nil || errors.Is(err, errAssessmentFailed) {
		t.Errorf("execute() error = %v, want config error", err)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(stdout, "cipherward version") {
		t.Errorf("unexpected version output: %q", stdout)
	}
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	writeCert(t, dir, "a.pem", elliptic.P256(), x509.ECDSAWithSHA256)

	paths, err := expandPaths([]string{filepath.Join(dir, "a.pem"), filepath.Join(dir, "missing.pem")})
	if err != nil {
		t.Fatalf("expandPaths() error = %v", err)
	}
	// Literal arguments pass through even when missing.
	if len(paths) != 2 {
		t.Errorf("expandPaths() returned %d paths, want 2", len(paths))
	}

	if _, err := expandPaths([]string{filepath.Join(dir, "[")}); err == nil {
		t.Error("expandPaths(bad pattern) = nil error, want error")
	}
}
