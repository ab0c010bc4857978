package config

import (
	"time"

	"github.com/odpf/console/internal/models"
)

const DefaultRequestTimeout = 2 * time.Minute

type ClientConfig struct {
	Version        Version       `mapstructure:"version"`
	Log            LogConfig     `mapstructure:"log"`
	Host           string        `mapstructure:"host"` // console api base url
	Account        Account       `mapstructure:"account"`
	Auth           Auth          `mapstructure:"auth"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type Account struct {
	ID   string `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

type Auth struct {
	Token string `mapstructure:"token"` // bearer token sent on every api call
}

// GetAccount returns the configured account, nil when none is set
func (c *ClientConfig) GetAccount() *models.Account {
	if c.Account.ID == "" {
		return nil
	}
	return &models.Account{
		ID:   c.Account.ID,
		Name: c.Account.Name,
	}
}

func (c *ClientConfig) GetRequestTimeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return DefaultRequestTimeout
	}
	return c.RequestTimeout
}
