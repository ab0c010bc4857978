package config

import (
	"errors"
	"net/url"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate validate the config as an input. If not valid, it returns error
func Validate(conf interface{}) error {
	switch c := conf.(type) {
	case *ClientConfig:
		return validateClientConfig(c)
	}
	return errors.New("config type is not valid, use ClientConfig instead")
}

func validateClientConfig(conf *ClientConfig) error {
	return validation.ValidateStruct(conf,
		validation.Field(&conf.Version, validation.Required),
		validation.Field(&conf.Host, validation.Required, validation.By(validateHost)),
		nestedFields(&conf.Log,
			validation.Field(&conf.Log.Level, validation.In(
				LogLevelDebug,
				LogLevelInfo,
				LogLevelWarning,
				LogLevelError,
				LogLevelFatal,
			)),
		),
		nestedFields(&conf.Account,
			validation.Field(&conf.Account.ID, validation.Required),
		),
		validation.Field(&conf.RequestTimeout, validation.Min(0)),
	)
}

func validateHost(value interface{}) error {
	host, _ := value.(string)
	u, err := url.Parse(host)
	if err != nil {
		return errors.New("must be a valid url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must use http or https scheme")
	}
	if u.Host == "" {
		return errors.New("must include a host")
	}
	return nil
}

// ozzo-validation helper for nested validation struct
// https://github.com/go-ozzo/ozzo-validation/issues/136
func nestedFields(target interface{}, fieldRules ...*validation.FieldRules) *validation.FieldRules {
	return validation.Field(target, validation.By(func(value interface{}) error {
		valueV := reflect.Indirect(reflect.ValueOf(value))
		if valueV.CanAddr() {
			addr := valueV.Addr().Interface()
			return validation.ValidateStruct(addr, fieldRules...)
		}
		return validation.ValidateStruct(target, fieldRules...)
	}))
}
