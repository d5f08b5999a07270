// Package commands implements the CLI commands for the shipit release tool.
package commands

import (
	"context"

	"github.com/pkgship/shipit/internal/adapters/config"
	"github.com/pkgship/shipit/internal/app"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for shipit.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "shipit",
		Short:         "Release pipeline runner for Python library packages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFilename, "Path to configuration file")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		a.SetConfigPath(path)
		return nil
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	for _, step := range c.newStepCmds() {
		rootCmd.AddCommand(step)
	}
	rootCmd.AddCommand(c.newReleaseCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
