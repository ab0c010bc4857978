package survey

import (
	"context"

	"github.com/AlecAivazis/survey/v2"
	"github.com/odpf/salt/log"

	"github.com/odpf/console/client/cmd/internal/progressbar"
	"github.com/odpf/console/client/form/confirm"
)

// RunConfirmDialog prompts until the dialog action succeeds or the user
// cancels. A failed action is reported and prompted again.
func RunConfirmDialog(ctx context.Context, l log.Logger, d *confirm.Dialog) error {
	d.Open()
	for d.IsOpen() {
		var answer string
		err := survey.AskOne(&survey.Select{
			Message: d.Header(),
			Help:    d.Description(),
			Options: []string{d.DeleteButtonText(), answerCancel},
			Default: answerCancel,
		}, &answer)
		if err != nil || answer == answerCancel {
			d.Close()
			if err != nil {
				return translateErr(err)
			}
			return ErrCanceled
		}

		spinner := progressbar.NewProgressBar()
		spinner.Start("please wait...")
		err = d.Confirm(ctx)
		spinner.Stop()
		if err != nil {
			l.Error(err.Error())
		}
	}
	return nil
}
