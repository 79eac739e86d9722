package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rnrdev/rnr/config"
)

// Every entry point takes the common behavior flags; path-taking entry points
// add the traversal flags on top.

func addCommonFlags(c *cobra.Command) {
	c.Flags().BoolP("dry-run", "n", false, "only show what would be done (default mode)")
	c.Flags().BoolP("force", "f", false, "make actual changes to files")
	c.Flags().BoolP("backup", "b", false, "generate file backups before renaming")
	c.Flags().BoolP("silent", "s", false, "do not print any information")
	c.Flags().String("color", "auto", "set color output mode (always, auto, never)")
	c.Flags().Bool("dump", false, "force dumping operations into a file even in dry-run mode")
	c.Flags().Bool("no-dump", false, "do not dump operations into a file")
	c.MarkFlagsMutuallyExclusive("dry-run", "force")
	c.MarkFlagsMutuallyExclusive("dump", "no-dump")
}

func addPathFlags(c *cobra.Command) {
	c.Flags().BoolP("include-dirs", "D", false, "rename matching directories")
	c.Flags().BoolP("recursive", "r", false, "recursive mode")
	c.Flags().IntP("max-depth", "d", 0, "set max depth in recursive mode")
	c.Flags().BoolP("hidden", "x", false, "include hidden files and directories")
}

// collectArgs flattens the parsed flags into the resolver input table,
// enforcing the dependency and value-domain rules the flag parser cannot
// express on its own.
func collectArgs(c *cobra.Command, command string, positional []string) (config.Args, error) {
	flags := c.Flags()

	a := config.Args{Command: command}
	a.Force, _ = flags.GetBool("force")
	a.Backup, _ = flags.GetBool("backup")
	a.Silent, _ = flags.GetBool("silent")
	a.Dump, _ = flags.GetBool("dump")
	a.NoDump, _ = flags.GetBool("no-dump")
	a.Color, _ = flags.GetString("color")

	switch a.Color {
	case "always", "auto", "never":
	default:
		return config.Args{}, fmt.Errorf("invalid --color value %q (expected always, auto or never)", a.Color)
	}

	if command == config.FromFileSubcommand {
		a.DumpFile = positional[0]
		a.Undo, _ = flags.GetBool("undo")
		return a, nil
	}

	a.IncludeDirs, _ = flags.GetBool("include-dirs")
	a.Recursive, _ = flags.GetBool("recursive")
	a.Hidden, _ = flags.GetBool("hidden")
	if a.Hidden && !a.Recursive {
		return config.Args{}, fmt.Errorf("--hidden requires --recursive")
	}
	if flags.Changed("max-depth") {
		if !a.Recursive {
			return config.Args{}, fmt.Errorf("--max-depth requires --recursive")
		}
		depth, _ := flags.GetInt("max-depth")
		if depth < 0 {
			return config.Args{}, fmt.Errorf("--max-depth must be a non-negative integer")
		}
		a.MaxDepth = depth
		a.MaxDepthSet = true
	}

	if command == config.ToASCIISubcommand {
		a.Paths = positional
		return a, nil
	}

	a.Expression = positional[0]
	a.Replacement = positional[1]
	a.Paths = positional[2:]
	a.ReplaceLimit, _ = flags.GetInt("replace-limit")
	if a.ReplaceLimit < 0 {
		return config.Args{}, fmt.Errorf("--replace-limit must be a non-negative integer")
	}
	return a, nil
}
