// Command cipherward audits cryptographic keys and certificates
// against published key management guidelines.
//
// Usage:
//
//	cipherward <command> [options] <args>
//
// Commands:
//
//	x509     Assess X.509 certificates
//	ssh      Assess SSH public keys
//	version  Show version information
//
// Examples:
//
//	# Assess a certificate against the BSI TR-02102 guideline
//	cipherward x509 server.pem
//
//	# Assess a directory of certificates against CNSA
//	cipherward x509 --guide cnsa 'certs/**/*.pem'
//
//	# Assess an SSH public key
//	cipherward ssh ~/.ssh/id_ed25519.pub
package main

import (
	"os"

	"github.com/georgepadayatti/cipherward/cli"
)

// These variables are set at build time using ldflags:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/cipherward
var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	cli.Version = version
	cli.BuildTime = buildTime

	os.Exit(cli.Run())
}
