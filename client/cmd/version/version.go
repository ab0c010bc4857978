package version

import (
	"github.com/odpf/salt/log"
	"github.com/odpf/salt/version"
	"github.com/spf13/cobra"

	"github.com/odpf/console/client/cmd/internal/logger"
	"github.com/odpf/console/config"
)

const githubRepo = "odpf/console"

type versionCommand struct {
	logger      log.Logger
	checkUpdate bool
}

// NewVersionCommand initializes command to get version
func NewVersionCommand() *cobra.Command {
	v := &versionCommand{
		logger:      logger.NewDefaultLogger(),
		checkUpdate: true,
	}

	cmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the client version information",
		Example: "console version [--check-update=false]",
		RunE:    v.RunE,
	}
	cmd.Flags().BoolVar(&v.checkUpdate, "check-update", v.checkUpdate, "Look for a newer release on github")
	return cmd
}

func (v *versionCommand) RunE(_ *cobra.Command, _ []string) error {
	v.logger.Info("Client: " + config.BuildVersion + "-" + config.BuildCommit)
	if config.BuildDate != "" {
		v.logger.Info("Built: " + config.BuildDate)
	}

	if !v.checkUpdate {
		return nil
	}
	if updateNotice := version.UpdateNotice(config.BuildVersion, githubRepo); updateNotice != "" {
		v.logger.Info(updateNotice)
	}
	return nil
}
