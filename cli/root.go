// Package cli provides the command-line interface for assessing
// certificate and key files against security guidelines.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/georgepadayatti/cipherward/assess"
)

// Version information, set at build time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// errAssessmentFailed marks runs where at least one file failed; the
// per-file diagnostics have already been printed when it is returned.
var errAssessmentFailed = errors.New("assessment failed")

// Run executes the CLI and returns the process exit code.
func Run() int {
	cmd := rootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errAssessmentFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cipherward",
		Short: "Assess cryptographic primitives against security guidelines",
		Long: `Cipherward checks the cryptographic parameter choices declared by
X.509 certificates and SSH public keys against named security
guidelines (` + strings.Join(assess.GuideNames, ", ") + `) and, for anything
noncompliant, reports a compliant replacement of the same family.

It inspects declared parameters only: no signatures are verified and
no trust chains are resolved.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newX509Cmd())
	cmd.AddCommand(newSSHCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cipherward version %s (build: %s)\n", Version, BuildTime)
		},
	})

	return cmd
}
