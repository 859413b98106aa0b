//go:build !cgo

package display

import (
	"context"
	"errors"
	"time"

	"github.com/matt-g-everett/reeftx/stream"
)

// ErrNoWindow is returned by Window.Run in builds without cgo.
var ErrNoWindow = errors.New("window mode requires cgo (build with CGO_ENABLED=1)")

// Window is unavailable without cgo.
type Window struct{}

// NewWindow returns a window that cannot be opened.
func NewWindow(title string, width, height int) *Window {
	return &Window{}
}

// Present discards f.
func (*Window) Present(*stream.Frame) error { return nil }

// Run always fails.
func (*Window) Run(context.Context, *stream.Driver, time.Duration) error {
	return ErrNoWindow
}
