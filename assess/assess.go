// Package assess orchestrates primitive extraction and guideline
// validation over certificate and key files.
package assess

import (
	"fmt"
	"io"
	"os"

	"github.com/georgepadayatti/cipherward/cert"
	"github.com/georgepadayatti/cipherward/sshkey"
	"github.com/georgepadayatti/cipherward/standard"
)

// Assessor applies one guideline, under one context, to any number of
// files. Check diagnostics are written to Out (compliant, verbose
// only) or ErrOut (noncompliant, always); the caller reports the
// returned Status itself.
type Assessor struct {
	Ctx     standard.Context
	Guide   Guide
	Verbose bool
	Out     io.Writer
	ErrOut  io.Writer
}

// New creates an assessor writing diagnostics to stdout and stderr.
func New(ctx standard.Context, guide Guide) *Assessor {
	return &Assessor{
		Ctx:    ctx,
		Guide:  guide,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}
}

// X509 assesses the certificate at path: the declared hash function
// first, then the signature algorithm. Both checks always run when
// extractable so a failing hash does not suppress the signature
// diagnostic; the verdict only ever demotes from pass to fail. A file
// that cannot be parsed fails immediately with no checks attempted.
func (a *Assessor) X509(path string) Status {
	certificate, err := cert.FromPEMFile(path)
	if err != nil {
		fmt.Fprintln(a.ErrOut, err)
		return Fail(path)
	}

	pass := Ok(path)

	if got, ok := certificate.ExtractHashFunction(); ok {
		want, err := a.Guide.ValidateHashFunction(a.Ctx, got)
		if err != nil {
			pass = Fail(path)
			fmt.Fprintf(a.ErrOut, "hash function: got: %s, want: %s\n", got, want)
		} else if a.Verbose {
			fmt.Fprintf(a.Out, "hash function: got: %s, want: %s\n", got, want)
		}
	}

	if got, ok := certificate.ExtractSignatureAlgorithm(); ok {
		want, err := a.Guide.ValidateSignatureAlgorithm(a.Ctx, got)
		if err != nil {
			pass = Fail(path)
			fmt.Fprintf(a.ErrOut, "signature algorithm: got: %s, want: %s\n", got, want)
		} else if a.Verbose {
			fmt.Fprintf(a.Out, "signature algorithm: got: %s, want: %s\n", got, want)
		}
	}

	return pass
}

// SSH assesses the public key at path. Only the key algorithm applies;
// SSH public keys declare no hash function of their own.
func (a *Assessor) SSH(path string) Status {
	key, err := sshkey.FromFile(path)
	if err != nil {
		fmt.Fprintln(a.ErrOut, err)
		return Fail(path)
	}

	pass := Ok(path)

	if got, ok := key.ExtractSignatureAlgorithm(); ok {
		want, err := a.Guide.ValidateSignatureAlgorithm(a.Ctx, got)
		if err != nil {
			pass = Fail(path)
			fmt.Fprintf(a.ErrOut, "signature algorithm: got: %s, want: %s\n", got, want)
		} else if a.Verbose {
			fmt.Fprintf(a.Out, "signature algorithm: got: %s, want: %s\n", got, want)
		}
	}

	return pass
}
