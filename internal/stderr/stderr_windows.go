//go:build windows

// Package stderr provides a no-op implementation for Windows, where the
// audio backend does not write to the console.
package stderr

import (
	"os"

	"github.com/rs/zerolog"
)

// Capture is a no-op on Windows.
type Capture struct {
	lines chan string
}

// Start is a no-op on Windows.
func Start() (*Capture, error) {
	c := &Capture{lines: make(chan string)}
	close(c.lines)
	return c, nil
}

// Lines returns a closed channel.
func (c *Capture) Lines() <-chan string { return c.lines }

// Forward is a no-op on Windows.
func (c *Capture) Forward(zerolog.Logger) {}

// WriteOriginal writes to stderr.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op on Windows.
func (c *Capture) Stop() {}
