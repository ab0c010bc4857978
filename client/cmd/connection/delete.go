package connection

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odpf/console/client/cmd/internal"
	"github.com/odpf/console/client/cmd/internal/logger"
	"github.com/odpf/console/client/cmd/internal/survey"
	"github.com/odpf/console/client/form/confirm"
)

type deleteCommand struct {
	session        *internal.Session
	configFilePath string
	skipConfirm    bool
}

// NewDeleteCommand initializes command to delete connections
func NewDeleteCommand() *cobra.Command {
	del := &deleteCommand{}

	cmd := &cobra.Command{
		Use:     "delete <connection-id>...",
		Short:   "Delete one or more connections",
		Example: "console connection delete 5d3a0c2e-7a4f-4a5e-8b1c-2f6e9d0a1b3c",
		Args:    cobra.MinimumNArgs(1),
		RunE:    del.RunE,
		PreRunE: del.PreRunE,
	}

	internal.InjectConfigFlag(cmd, &del.configFilePath)
	cmd.Flags().BoolVarP(&del.skipConfirm, "yes", "y", false, "Delete without asking for confirmation")
	return cmd
}

func (d *deleteCommand) PreRunE(cmd *cobra.Command, _ []string) error {
	var err error
	d.session, err = internal.NewSession(cmd.Context(), d.configFilePath)
	return err
}

func (d *deleteCommand) RunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	pending := args
	dialog := confirm.New(
		fmt.Sprintf("Delete %s?", strings.Join(args, ", ")),
		"Jobs using a deleted connection can no longer run. This cannot be undone.",
		func(ctx context.Context) error {
			var err error
			pending, err = internal.DeleteAll(ctx, "connection", pending, d.session.Client.DeleteConnection)
			return err
		},
	)
	if d.skipConfirm {
		if err := dialog.Confirm(ctx); err != nil {
			return err
		}
	} else if err := survey.RunConfirmDialog(ctx, d.session.Logger, dialog); err != nil {
		return err
	}
	d.session.Logger.Info(logger.ColoredSuccess("Deleted %d connection(s)", len(args)))
	return nil
}
