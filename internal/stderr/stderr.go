//go:build !windows

// Package stderr captures output that audio backends (ALSA, PulseAudio via
// oto) write straight to file descriptor 2, bypassing os.Stderr. Captured
// lines are forwarded to the log instead of corrupting the TUI.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
)

// Capture redirects fd 2 into a pipe until Stop.
type Capture struct {
	origFd int
	r, w   *os.File
	lines  chan string
	once   sync.Once
}

// Start begins capturing stderr. Call it before the speaker is initialized.
// On error the program can continue; output then goes to the terminal.
func Start() (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{origFd: orig, r: r, w: w, lines: make(chan string, 100)}
	go c.read()
	return c, nil
}

func (c *Capture) read() {
	defer close(c.lines)
	scanner := bufio.NewScanner(c.r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case c.lines <- line:
		default:
			// Channel full, drop to avoid blocking the writer
		}
	}
}

// Lines returns captured lines. The channel closes after Stop.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// Forward logs every captured line at warn level until Stop.
func (c *Capture) Forward(log zerolog.Logger) {
	go func() {
		for line := range c.lines {
			log.Warn().Str("source", "stderr").Msg(line)
		}
	}()
}

// WriteOriginal writes to the terminal's stderr, bypassing capture.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = syscall.Write(c.origFd, []byte(msg))
}

// Stop restores the original stderr.
func (c *Capture) Stop() {
	c.once.Do(func() {
		_ = syscall.Dup2(c.origFd, int(os.Stderr.Fd()))
		_ = syscall.Close(c.origFd)
		c.w.Close()
		c.r.Close()
	})
}
