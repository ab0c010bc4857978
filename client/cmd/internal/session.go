package internal

import (
	"context"
	"fmt"

	"github.com/odpf/salt/log"

	"github.com/odpf/console/client/api"
	"github.com/odpf/console/client/cmd/internal/logger"
	"github.com/odpf/console/config"
)

// Session carries what every api backed command needs
type Session struct {
	Config *config.ClientConfig
	Logger log.Logger
	Client *api.Client
}

// NewSession loads the client config and builds the logger and api client from it
func NewSession(ctx context.Context, configFilePath string) (*Session, error) {
	conf, err := config.LoadClientConfig(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("error loading client config: %w", err)
	}
	client, err := api.NewClientFromConfig(ctx, conf)
	if err != nil {
		return nil, err
	}
	return &Session{
		Config: conf,
		Logger: logger.NewClientLogger(conf.Log),
		Client: client,
	}, nil
}
