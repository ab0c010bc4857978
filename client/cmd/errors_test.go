package cmd_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odpf/console/client/cmd"
	xerrors "github.com/odpf/console/internal/errors"
)

func TestErrorHint(t *testing.T) {
	t.Run("suggests a remedy for known api failures", func(t *testing.T) {
		cases := []struct {
			errType  xerrors.ErrorType
			contains string
		}{
			{errType: xerrors.ErrUnauthenticated, contains: "auth.token"},
			{errType: xerrors.ErrPermission, contains: "no access"},
			{errType: xerrors.ErrAlreadyExists, contains: "already in use"},
			{errType: xerrors.ErrNotFound, contains: "nothing was found"},
		}
		for _, c := range cases {
			err := fmt.Errorf("error deleting connection [c-1]: %w", xerrors.NewError(c.errType, "connection", "boom"))
			assert.Contains(t, cmd.ErrorHint(err), c.contains, c.errType)
		}
	})
	t.Run("returns nothing for other errors", func(t *testing.T) {
		assert.Empty(t, cmd.ErrorHint(errors.New("canceled")))
		assert.Empty(t, cmd.ErrorHint(xerrors.NewInternalError("connection", "request failed", errors.New("eof"))))
	})
}
