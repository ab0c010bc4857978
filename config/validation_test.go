package config_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/odpf/console/config"
)

type ValidationTestSuite struct {
	suite.Suite
	defaultClientConfig *config.ClientConfig
}

func (s *ValidationTestSuite) SetupTest() {
	s.defaultClientConfig = &config.ClientConfig{
		Version: config.Version(1),
		Log:     config.LogConfig{Level: config.LogLevelInfo},
		Host:    "https://console.example.io",
		Account: config.Account{ID: "acc-1", Name: "acme"},
	}
}

func TestValidation(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidate() {
	s.Run("WhenConfigIsValid", func() {
		err := config.Validate(s.defaultClientConfig)
		s.Assert().NoError(err)
	})

	s.Run("WhenHostHasNoScheme", func() {
		c := *s.defaultClientConfig
		c.Host = "localhost:8080"

		s.Assert().Error(config.Validate(&c))
	})

	s.Run("WhenHostIsEmpty", func() {
		c := *s.defaultClientConfig
		c.Host = ""

		s.Assert().Error(config.Validate(&c))
	})

	s.Run("WhenAccountIsMissing", func() {
		c := *s.defaultClientConfig
		c.Account = config.Account{}

		s.Assert().Error(config.Validate(&c))
	})

	s.Run("WhenLogLevelIsUnknown", func() {
		c := *s.defaultClientConfig
		c.Log.Level = "verbose"

		s.Assert().Error(config.Validate(&c))
	})

	s.Run("WhenValidateTypeIsInvalid", func() {
		err := config.Validate("invalid-type")
		s.Assert().Error(err)
	})
}
