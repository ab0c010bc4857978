package connection

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/odpf/console/client/cmd/internal"
	"github.com/odpf/console/client/cmd/internal/logger"
	"github.com/odpf/console/client/cmd/internal/progressbar"
	"github.com/odpf/console/client/cmd/internal/survey"
	connform "github.com/odpf/console/client/form/connection"
)

// NewCreateCommand groups create commands per connection kind
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new connection",
	}
	cmd.AddCommand(NewCreatePostgresCommand())
	return cmd
}

type createPostgresCommand struct {
	session        *internal.Session
	configFilePath string
	fileFS         afero.Fs

	sourceID string
	returnTo string
}

// NewCreatePostgresCommand initializes command to create a postgres connection
func NewCreatePostgresCommand() *cobra.Command {
	create := &createPostgresCommand{
		fileFS: afero.NewOsFs(),
	}

	cmd := &cobra.Command{
		Use:   "postgres",
		Short: "Create a postgres connection",
		Long: heredoc.Doc(`
			Asks for the connection details, optionally tests them against the
			database and creates the connection in the configured account.
			With --source-id the answers start from a copy of an existing connection.`),
		Example: heredoc.Doc(`
			$ console connection create postgres
			$ console connection create postgres --source-id 5d3a0c2e-7a4f-4a5e-8b1c-2f6e9d0a1b3c`),
		RunE:    create.RunE,
		PreRunE: create.PreRunE,
	}

	internal.InjectConfigFlag(cmd, &create.configFilePath)
	cmd.Flags().StringVar(&create.sourceID, "source-id", "", "Connection to clone the values from")
	cmd.Flags().StringVar(&create.returnTo, "return-to", "", "Page to return to once the connection is created")
	return cmd
}

func (c *createPostgresCommand) PreRunE(cmd *cobra.Command, _ []string) error {
	var err error
	c.session, err = internal.NewSession(cmd.Context(), c.configFilePath)
	return err
}

func (c *createPostgresCommand) RunE(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	l := c.session.Logger
	account := c.session.Config.GetAccount()
	if account == nil {
		return connform.ErrNoAccount
	}
	form := connform.NewPostgresForm(l, account, c.session.Client, c.session.Client)

	if c.sourceID != "" {
		if err := form.LoadClone(ctx, c.sourceID); err != nil {
			return err
		}
	}

	s := survey.NewPostgresSurvey(c.fileFS)
	if err := s.AskPostgresForm(ctx, form); err != nil {
		return err
	}

	test, err := survey.AskToConfirm("Test the connection before creating it?", true)
	if err != nil {
		return err
	}
	if test {
		spinner := progressbar.NewProgressBar()
		spinner.Start("testing connection...")
		result := form.TestConnection(ctx)
		spinner.Stop()
		logger.PrintTestResult(l, result)

		proceed, err := confirmAfterTest(result, survey.AskToConfirm)
		if err != nil {
			return err
		}
		if !proceed {
			return survey.ErrCanceled
		}
	}

	spinner := progressbar.NewProgressBar()
	spinner.Start("creating connection...")
	result, err := form.Submit(ctx, connform.SubmitOptions{ReturnTo: c.returnTo})
	spinner.Stop()
	if err != nil {
		return err
	}
	l.Info(logger.ColoredNotice("Open %s", result.RedirectTo))
	return nil
}

// confirmAfterTest asks before creating a connection whose test failed
func confirmAfterTest(result *connform.TestResult, confirm func(message string, defaultYes bool) (bool, error)) (bool, error) {
	if result == nil || result.OpenPermissionDialog {
		return true, nil
	}
	return confirm("Create it anyway?", false)
}
