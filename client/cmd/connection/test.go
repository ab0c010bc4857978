package connection

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/odpf/console/client/cmd/internal"
	"github.com/odpf/console/client/cmd/internal/logger"
	"github.com/odpf/console/client/cmd/internal/progressbar"
	"github.com/odpf/console/client/cmd/internal/survey"
	connform "github.com/odpf/console/client/form/connection"
)

// NewTestCommand groups test commands per connection kind
func NewTestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Check a connection without creating it",
	}
	cmd.AddCommand(NewTestPostgresCommand())
	return cmd
}

type testPostgresCommand struct {
	session        *internal.Session
	configFilePath string
	fileFS         afero.Fs
}

// NewTestPostgresCommand initializes command to test postgres connection details
func NewTestPostgresCommand() *cobra.Command {
	test := &testPostgresCommand{
		fileFS: afero.NewOsFs(),
	}

	cmd := &cobra.Command{
		Use:     "postgres",
		Short:   "Test postgres connection details and list the role privileges",
		Example: "console connection test postgres",
		RunE:    test.RunE,
		PreRunE: test.PreRunE,
	}

	internal.InjectConfigFlag(cmd, &test.configFilePath)
	return cmd
}

func (t *testPostgresCommand) PreRunE(cmd *cobra.Command, _ []string) error {
	var err error
	t.session, err = internal.NewSession(cmd.Context(), t.configFilePath)
	return err
}

func (t *testPostgresCommand) RunE(cmd *cobra.Command, _ []string) error {
	form := connform.NewPostgresForm(t.session.Logger, t.session.Config.GetAccount(), t.session.Client, t.session.Client)

	s := survey.NewPostgresSurvey(t.fileFS)
	steps := []func(*connform.PostgresForm) error{
		s.AskConnection,
		s.AskOptions,
		s.AskClientTLS,
		s.AskTunnel,
	}
	for _, step := range steps {
		if err := step(form); err != nil {
			return err
		}
	}

	spinner := progressbar.NewProgressBar()
	spinner.Start("testing connection...")
	result := form.TestConnection(cmd.Context())
	spinner.Stop()

	logger.PrintTestResult(t.session.Logger, result)
	return nil
}
