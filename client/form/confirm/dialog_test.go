package confirm_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odpf/console/client/form/confirm"
)

func TestDialog(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults the delete button text", func(t *testing.T) {
		d := confirm.New("Delete job", "This cannot be undone.", func(context.Context) error { return nil })
		assert.Equal(t, "Delete", d.DeleteButtonText())
		assert.Equal(t, "Delete job", d.Header())
		assert.Equal(t, "This cannot be undone.", d.Description())

		d = confirm.New("Remove", "", nil, confirm.WithDeleteButtonText("Remove"))
		assert.Equal(t, "Remove", d.DeleteButtonText())
	})
	t.Run("closes after a successful confirm", func(t *testing.T) {
		calls := 0
		d := confirm.New("Delete", "", func(context.Context) error {
			calls++
			return nil
		})
		d.Open()
		assert.True(t, d.IsOpen())

		assert.NoError(t, d.Confirm(ctx))
		assert.False(t, d.IsOpen())
		assert.False(t, d.IsBusy())
		assert.Equal(t, 1, calls)
	})
	t.Run("stays open when the callback fails", func(t *testing.T) {
		failure := errors.New("delete failed")
		d := confirm.New("Delete", "", func(context.Context) error { return failure })
		d.Open()

		assert.ErrorIs(t, d.Confirm(ctx), failure)
		assert.True(t, d.IsOpen())
		assert.False(t, d.IsBusy())
	})
	t.Run("ignores confirm and close while busy", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		calls := 0
		d := confirm.New("Delete", "", func(context.Context) error {
			calls++
			close(started)
			<-release
			return nil
		})
		d.Open()

		done := make(chan error, 1)
		go func() { done <- d.Confirm(ctx) }()
		<-started

		assert.True(t, d.IsBusy())
		assert.ErrorIs(t, d.Confirm(ctx), confirm.ErrBusy)
		d.Close()
		assert.True(t, d.IsOpen())

		close(release)
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("confirm did not return")
		}
		assert.Equal(t, 1, calls)
		assert.False(t, d.IsOpen())
	})
}
