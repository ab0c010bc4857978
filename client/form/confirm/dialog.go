// Package confirm is a destructive action confirmation dialog. It stays open
// until its callback succeeds and refuses to run the callback twice at once.
package confirm

import (
	"context"
	"errors"
	"sync"
)

const DefaultDeleteButtonText = "Delete"

// ErrBusy is returned by Confirm while a previous confirmation is running
var ErrBusy = errors.New("confirmation already in progress")

type Option func(*Dialog)

func WithDeleteButtonText(text string) Option {
	return func(d *Dialog) {
		if text != "" {
			d.deleteButtonText = text
		}
	}
}

type Dialog struct {
	header           string
	description      string
	deleteButtonText string
	onConfirm        func(ctx context.Context) error

	mu     sync.Mutex
	open   bool
	isBusy bool
}

func New(header, description string, onConfirm func(ctx context.Context) error, opts ...Option) *Dialog {
	d := &Dialog{
		header:           header,
		description:      description,
		deleteButtonText: DefaultDeleteButtonText,
		onConfirm:        onConfirm,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dialog) Header() string           { return d.header }
func (d *Dialog) Description() string      { return d.description }
func (d *Dialog) DeleteButtonText() string { return d.deleteButtonText }

func (d *Dialog) Open() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = true
}

// Close dismisses the dialog, it has no effect while the callback runs
func (d *Dialog) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.isBusy {
		return
	}
	d.open = false
}

func (d *Dialog) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

func (d *Dialog) IsBusy() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.isBusy
}

// Confirm runs the callback once. The dialog closes when it succeeds and
// stays open with the error returned otherwise.
func (d *Dialog) Confirm(ctx context.Context) error {
	d.mu.Lock()
	if d.isBusy {
		d.mu.Unlock()
		return ErrBusy
	}
	d.isBusy = true
	d.mu.Unlock()

	err := d.onConfirm(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.isBusy = false
	if err == nil {
		d.open = false
	}
	return err
}
