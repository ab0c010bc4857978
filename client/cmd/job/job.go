package job

import (
	"github.com/spf13/cobra"
)

// NewJobCommand initializes command for job
func NewJobCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Define and manage data sync jobs",
		Annotations: map[string]string{
			"group:core": "true",
		},
	}

	cmd.AddCommand(
		NewDefineCommand(),
		NewDeleteCommand(),
	)
	return cmd
}
