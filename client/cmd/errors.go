package cmd

import (
	xerrors "github.com/odpf/console/internal/errors"
)

// ErrorHint suggests what to do about a failed api call, empty when the
// error has no specific remedy
func ErrorHint(err error) string {
	switch {
	case xerrors.IsType(err, xerrors.ErrUnauthenticated):
		return "check auth.token in the config or set CONSOLE_AUTH_TOKEN"
	case xerrors.IsType(err, xerrors.ErrPermission):
		return "the auth token has no access to the configured account"
	case xerrors.IsType(err, xerrors.ErrAlreadyExists):
		return "the name is already in use, pick another one"
	case xerrors.IsType(err, xerrors.ErrNotFound):
		return "nothing was found for the given id, check it belongs to the configured account"
	}
	return ""
}
