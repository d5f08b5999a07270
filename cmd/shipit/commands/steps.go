package commands

import (
	"github.com/pkgship/shipit/internal/core/domain"
	"github.com/spf13/cobra"
)

var stepShorts = map[domain.StepName]string{
	domain.StepFormat:   "Rewrite source files to the canonical style",
	domain.StepInstall:  "Build and install the package into the current environment",
	domain.StepClean:    "Remove build output directories",
	domain.StepRegister: "Publish package metadata to the distribution index",
	domain.StepUpload:   "Build and upload a source distribution to the index",
	domain.StepTag:      "Create a version control tag equal to the declared version",
}

// newStepCmds builds one subcommand per release step. Every step is
// independently invokable; only the release command composes them.
func (c *CLI) newStepCmds() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(domain.Steps()))
	for _, name := range domain.Steps() {
		cmds = append(cmds, &cobra.Command{
			Use:   name.String(),
			Short: stepShorts[name],
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.app.Run(cmd.Context(), []string{cmd.Use})
			},
		})
	}
	return cmds
}
