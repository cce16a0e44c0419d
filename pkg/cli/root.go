// Package cli provides the seqdoc command line.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/norio-nomura/lazyseq/pkg/options"
	"github.com/norio-nomura/lazyseq/pkg/shellwords"
	"github.com/norio-nomura/lazyseq/pkg/sigdoc"
)

// NewRootCommand creates the seqdoc command. Settings come from SEQDOC_* environment variables,
// then the --config JSON file, then flags.
func NewRootCommand() *cobra.Command {
	var (
		configPath string
		verbose    bool
		flags      = options.Default()
	)

	cmd := &cobra.Command{
		Use:   "seqdoc [package-dir...]",
		Short: "List the exported signatures of Go packages",
		Long: "seqdoc parses the Go source of each package directory and prints the signatures of its\n" +
			"exported functions and methods. Without arguments it documents the lazyseq packages.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opt, err := load(cmd, configPath, flags, args)
			if err != nil {
				return err
			}
			slog.Debug("seqdoc", slog.String("root", opt.Root), slog.String("packages", shellwords.Join(opt.Packages)), slog.String("format", opt.Format))
			sigs, err := sigdoc.LoadAll(opt.Root, opt.Packages, opt.WithMethods)
			if err != nil {
				return err
			}
			format, _ := sigdoc.ParseFormat(opt.Format)
			return sigdoc.Render(cmd.OutOrStdout(), format, sigs, opt.WithDoc)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().StringVar(&configPath, "config", "", "JSON file with settings")
	cmd.Flags().StringVar(&flags.Root, "root", flags.Root, "directory the package directories are relative to")
	cmd.Flags().StringVar(&flags.Format, "format", flags.Format, fmt.Sprintf("output format %v", sigdoc.Formats))
	cmd.Flags().BoolVar(&flags.WithDoc, "doc", flags.WithDoc, "print the first line of each doc comment")
	cmd.Flags().BoolVar(&flags.WithMethods, "methods", flags.WithMethods, "include methods of exported types")

	return cmd
}

// load merges environment, config file, flags and arguments, in increasing order of precedence.
func load(cmd *cobra.Command, configPath string, flags *options.Options, args []string) (*options.Options, error) {
	opt, err := options.FromEnv()
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		f, err := os.Open(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open config: %w", err)
		}
		defer f.Close()
		if err := opt.DecodeJSON(f); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}
	}
	changed := cmd.Flags().Changed
	if changed("root") {
		opt.Root = flags.Root
	}
	if changed("format") {
		opt.Format = flags.Format
	}
	if changed("doc") {
		opt.WithDoc = flags.WithDoc
	}
	if changed("methods") {
		opt.WithMethods = flags.WithMethods
	}
	if len(args) > 0 {
		opt.Packages = args
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return opt, nil
}
