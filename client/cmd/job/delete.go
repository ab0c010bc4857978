package job

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

// NewDeleteCommand initializes command to delete jobs
func NewDeleteCommand() *cobra.Command {
	del := &deleteCommand{}

	cmd := &cobra.Command{
		Use:     "delete <job-id>...",
		Short:   "Delete one or more jobs",
		Example: "console job delete 3b6a1d5e-0d2c-4c1b-9d77-0a9e3b0f1c2d",
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
	onConfirm := func(ctx context.Context) error {
		var err error
		pending, err = internal.DeleteAll(ctx, "job", pending, d.session.Client.DeleteJob)
		return err
	}
	dialog := confirm.New(
		fmt.Sprintf("Delete %s?", strings.Join(args, ", ")),
		"Deleting a job removes its schedule and run history. This cannot be undone.",
		onConfirm,
	)
	if d.skipConfirm {
		if err := dialog.Confirm(ctx); err != nil {
			return err
		}
	} else if err := survey.RunConfirmDialog(ctx, d.session.Logger, dialog); err != nil {
		return err
	}
	d.session.Logger.Info(logger.ColoredSuccess("Deleted %d job(s)", len(args)))
	return nil
}
