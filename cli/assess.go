package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/georgepadayatti/cipherward/assess"
	"github.com/georgepadayatti/cipherward/config"
	"github.com/georgepadayatti/cipherward/standard"
)

// defaultConfigPath is consulted when --config is not given.
const defaultConfigPath = ".cipherward.yaml"

// assessOptions carries the flags shared by the assessment commands.
type assessOptions struct {
	guide      string
	expiry     uint16
	level      uint16
	verbose    bool
	configPath string
}

func (o *assessOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.guide, "guide", "g", "bsi",
		"guideline to assess against ("+strings.Join(assess.GuideNames, ", ")+")")
	cmd.Flags().Uint16Var(&o.expiry, "expiry", 0,
		"evaluation year, e.g. the year the material is expected to expire (default: current year)")
	cmd.Flags().Uint16Var(&o.level, "level", 0,
		"minimum security strength in bits on top of the guideline's floor")
	cmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false,
		"also report compliant checks")
	cmd.Flags().StringVarP(&o.configPath, "config", "c", defaultConfigPath,
		"config file path (YAML)")
}

// resolve merges the config file with any explicitly set flags, flags
// winning.
func (o *assessOptions) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("guide") {
		cfg.Guide = o.guide
	}
	if flags.Changed("expiry") {
		cfg.Expiry = o.expiry
	}
	if flags.Changed("level") {
		cfg.SecurityLevel = o.level
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run assesses every path produced by the arguments with fn and
// reports the per-file status lines. All files are always assessed;
// the returned error only reflects the aggregate verdict.
func (o *assessOptions) run(cmd *cobra.Command, args []string, fn func(*assess.Assessor, string) assess.Status) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}

	guide, err := assess.ParseGuide(cfg.Guide)
	if err != nil {
		return err
	}

	year := cfg.Expiry
	if year == 0 {
		year = uint16(time.Now().Year())
	}
	ctx := standard.NewContext(year)
	if cfg.SecurityLevel > 0 {
		ctx = ctx.WithSecurityLevel(cfg.SecurityLevel)
	}

	assessor := &assess.Assessor{
		Ctx:     ctx,
		Guide:   guide,
		Verbose: cfg.Verbose,
		Out:     cmd.OutOrStdout(),
		ErrOut:  cmd.ErrOrStderr(),
	}

	paths, err := expandPaths(args)
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range paths {
		status := fn(assessor, path)
		if status.Pass {
			fmt.Fprintln(cmd.OutOrStdout(), status)
		} else {
			failed++
			fmt.Fprintln(cmd.ErrOrStderr(), status)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", errAssessmentFailed, failed, len(paths))
	}
	return nil
}

// expandPaths resolves glob patterns among the arguments. Arguments
// without metacharacters pass through verbatim so that a missing file
// is reported as that file's failure rather than silently dropped.
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			paths = append(paths, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

func newX509Cmd() *cobra.Command {
	opts := &assessOptions{}

	cmd := &cobra.Command{
		Use:   "x509 [flags] PATH...",
		Short: "Assess X.509 certificates",
		Long: `Assess the hash function and signature algorithm declared by each
PEM or DER encoded certificate. PATH arguments may be glob patterns
(including **).`,
		Example: `  cipherward x509 server.pem
  cipherward x509 --guide cnsa --expiry 2030 -v 'certs/**/*.pem'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, (*assess.Assessor).X509)
		},
	}

	opts.addFlags(cmd)
	return cmd
}

func newSSHCmd() *cobra.Command {
	opts := &assessOptions{}

	cmd := &cobra.Command{
		Use:   "ssh [flags] PATH...",
		Short: "Assess SSH public keys",
		Long: `Assess the key algorithm of each OpenSSH public key or
authorized_keys file. PATH arguments may be glob patterns.`,
		Example: `  cipherward ssh ~/.ssh/id_ed25519.pub
  cipherward ssh --guide nist 'keys/*.pub'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, (*assess.Assessor).SSH)
		},
	}

	opts.addFlags(cmd)
	return cmd
}
