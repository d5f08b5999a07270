package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newReleaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "release",
		Short: "Run clean, register, upload and tag in order, aborting on the first failure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Release(cmd.Context())
		},
	}
}
