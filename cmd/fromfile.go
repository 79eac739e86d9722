package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rnrdev/rnr/config"
)

func newFromFileCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   config.FromFileSubcommand + " DUMPFILE",
		Short: "Read operations from a dump file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, config.FromFileSubcommand, args)
		},
	}
	addCommonFlags(c)
	c.Flags().BoolP("undo", "u", false, "undo the operations from the dump file")
	return c
}
