package connection

import (
	"github.com/spf13/cobra"
)

// NewConnectionCommand initializes command for connection
func NewConnectionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connection",
		Short: "Create, test and delete database connections",
		Annotations: map[string]string{
			"group:core": "true",
		},
	}

	cmd.AddCommand(
		NewCreateCommand(),
		NewTestCommand(),
		NewDeleteCommand(),
	)
	return cmd
}
