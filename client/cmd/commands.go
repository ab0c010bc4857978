package cmd

import (
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/odpf/salt/cmdx"
	cli "github.com/spf13/cobra"

	"github.com/odpf/console/client/cmd/connection"
	"github.com/odpf/console/client/cmd/internal/logger"
	"github.com/odpf/console/client/cmd/job"
	"github.com/odpf/console/client/cmd/version"
	"github.com/odpf/console/internal/utils"
)

// New constructs the 'root' command. It houses all other sub commands
// default output of logging should go to stdout
// interactive output like progress bars should go to stderr
// unless the stdout/err is a tty, colors/progressbar should be disabled
func New() *cli.Command {
	cmd := &cli.Command{
		Use: "console <command> <subcommand> [flags]",
		Long: heredoc.Doc(`
			Console manages the connections and jobs of a data sync account.

			The api host, account and token are read from console.yaml in the
			current directory or the file passed with --config. Every value can be
			overridden with a CONSOLE_ prefixed environment variable, for example
			CONSOLE_AUTH_TOKEN.`),
		SilenceUsage: true,
		Example: heredoc.Doc(`
				$ console connection create postgres
				$ console connection test postgres
				$ console job define --name nightly-sync
			`),
		Annotations: map[string]string{
			"group:core": "true",
			"help:learn": heredoc.Doc(`
				Use 'console <command> <subcommand> --help' for more information about a command.
			`),
			"help:feedback": heredoc.Doc(`
				Open an issue here https://github.com/odpf/console/issues
			`),
		},
		PersistentPreRun: func(*cli.Command, []string) {
			if utils.IsTerminal(os.Stdout) {
				logger.InitializeColor()
			}
		},
	}

	cmdx.SetHelp(cmd)

	cmd.AddCommand(
		connection.NewConnectionCommand(),
		job.NewJobCommand(),
		version.NewVersionCommand(),
	)
	return cmd
}
