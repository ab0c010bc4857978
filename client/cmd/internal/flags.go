package internal

import (
	"github.com/spf13/cobra"

	"github.com/odpf/console/config"
)

// InjectConfigFlag adds the client configuration file flag to cmd
func InjectConfigFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "config", "c", config.EmptyPath, "File path for client configuration")
}
