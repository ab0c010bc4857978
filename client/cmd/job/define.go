package job

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/odpf/console/client/cmd/internal"
	"github.com/odpf/console/client/cmd/internal/logger"
	"github.com/odpf/console/client/cmd/internal/survey"
	jobform "github.com/odpf/console/client/form/job"
	"github.com/odpf/console/client/local"
)

const defaultDraftDir = "jobs"

type defineCommand struct {
	session        *internal.Session
	configFilePath string
	draftFS        afero.Fs

	name         string
	cronSchedule string
	dir          string
	interactive  bool
}

// NewDefineCommand initializes command for the define step of a new job
func NewDefineCommand() *cobra.Command {
	define := &defineCommand{
		draftFS:     afero.NewOsFs(),
		interactive: true,
	}

	cmd := &cobra.Command{
		Use:   "define",
		Short: "Define the name and schedule of a new job",
		Long: heredoc.Doc(`
			Validates the job name and cron schedule and saves them as a draft.
			Missing values are asked interactively, the name is checked against
			the jobs of the configured account.`),
		Example: heredoc.Doc(`
			$ console job define
			$ console job define --name nightly-sync --cron "0 0 * * *"`),
		RunE:    define.RunE,
		PreRunE: define.PreRunE,
	}

	internal.InjectConfigFlag(cmd, &define.configFilePath)
	cmd.Flags().StringVar(&define.name, "name", "", "Job name, unique across the account")
	cmd.Flags().StringVar(&define.cronSchedule, "cron", "", "Cron schedule, empty to run manually")
	cmd.Flags().StringVar(&define.dir, "dir", defaultDraftDir, "Directory where job drafts are saved")
	cmd.Flags().BoolVar(&define.interactive, "interactive", define.interactive, "Ask for missing values")
	return cmd
}

func (d *defineCommand) PreRunE(cmd *cobra.Command, _ []string) error {
	var err error
	d.session, err = internal.NewSession(cmd.Context(), d.configFilePath)
	return err
}

func (d *defineCommand) RunE(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	schema := jobform.NewDefineFormSchema(d.session.Config.GetAccount(), d.session.Client)
	values := &jobform.DefineFormValues{
		JobName:      d.name,
		CronSchedule: d.cronSchedule,
	}
	if d.interactive {
		if err := survey.NewJobDefineSurvey(schema).AskToDefineJob(ctx, values); err != nil {
			return err
		}
	}
	if err := schema.Validate(ctx, values); err != nil {
		return err
	}

	readWriter, err := local.NewDraftReadWriter(d.draftFS)
	if err != nil {
		return err
	}
	dirPath, err := draftDir(d.dir, values.JobName)
	if err != nil {
		return err
	}
	exists, err := readWriter.Exists(dirPath)
	if err != nil {
		return err
	}
	if exists && d.interactive {
		overwrite, err := survey.AskToConfirm(fmt.Sprintf("A draft already exists in [%s], overwrite it?", dirPath), false)
		if err != nil {
			return err
		}
		if !overwrite {
			return survey.ErrCanceled
		}
	}

	draft := &local.JobDraft{
		Name:     values.JobName,
		Schedule: local.DraftSchedule{Interval: values.CronSchedule},
	}
	if err := readWriter.Write(dirPath, draft); err != nil {
		return err
	}
	d.session.Logger.Info(logger.ColoredSuccess("Job draft saved at %s", dirPath))
	return nil
}

// draftDir is the directory of the draft for name under dir, names that
// would leave dir are rejected
func draftDir(dir, name string) (string, error) {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("job name [%s] cannot be used as a directory name", name)
	}
	return filepath.Join(dir, name), nil
}
