package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rnrdev/rnr/config"
)

func newToASCIICmd() *cobra.Command {
	c := &cobra.Command{
		Use:   config.ToASCIISubcommand + " PATH...",
		Short: "Replace file name UTF-8 chars with ASCII chars representation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, config.ToASCIISubcommand, args)
		},
	}
	addCommonFlags(c)
	addPathFlags(c)
	return c
}
