package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rnrdev/rnr/config"
	"github.com/rnrdev/rnr/logger"
	"github.com/rnrdev/rnr/printer"
)

// Version information set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rnr EXPRESSION REPLACEMENT PATH...",
		Short:         "Batch-rename files and directories",
		Long:          "rnr renames files and directories in batch applying a regular expression or an ASCII transliteration to their names.",
		Args:          cobra.MinimumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "", args)
		},
	}
	root.Version = version
	root.SetVersionTemplate("rnr {{.Version}} (" + commit + ", " + date + ")\n")

	root.Flags().IntP("replace-limit", "l", 1, "limit of replacements, all matches if set to 0")
	addCommonFlags(root)
	addPathFlags(root)

	root.AddCommand(newFromFileCmd())
	root.AddCommand(newToASCIICmd())
	return root
}

func Execute(ctx context.Context) {
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		// Resolution errors were already reported through the styled
		// printer; everything else (flag parsing, arity, value domains)
		// is printed plainly here.
		var patternErr *config.InvalidPatternError
		var commandErr *config.UnknownCommandError
		if !errors.As(err, &patternErr) && !errors.As(err, &commandErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// run collects the flat argument table, assembles the configuration and hands
// it to the installed runner.
func run(cmd *cobra.Command, command string, positional []string) error {
	a, err := collectArgs(cmd, command, positional)
	if err != nil {
		return err
	}

	if !a.Silent {
		logger.SetLogger(logger.New(os.Getenv("RNR_DEBUG") != ""))
	}

	cfg, err := config.Assemble(a, printer.Stdout)
	if err != nil {
		printer.Resolve(a.Silent, a.Color, printer.Stdout).ErrorMsg("Invalid configuration", err)
		return err
	}

	logger.Debug("configuration assembled",
		"command", a.Command,
		"force", cfg.Force,
		"backup", cfg.Backup,
		"dump", cfg.Dump,
		"include_dirs", cfg.IncludeDirs,
	)

	return runner(cmd.Context(), cfg)
}
