// Package console is a line-mode surface over the playback coordinator,
// for terminals where the full-screen page is unwanted.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"github.com/brazdilr/bardio/internal/catalog"
	"github.com/brazdilr/bardio/internal/errmsg"
	"github.com/brazdilr/bardio/internal/icons"
	"github.com/brazdilr/bardio/internal/playback"
	"github.com/brazdilr/bardio/internal/ui/surface"
)

// Prompt is the readline prompt.
const Prompt = "bardio> "

// Console executes commands against the coordinator and prints a status
// line whenever the summary of the state changes.
type Console struct {
	svc     playback.Service
	tracker surface.Tracker

	mu   sync.Mutex
	out  io.Writer
	last string
}

// New creates a console writing to out.
func New(svc playback.Service, tracker surface.Tracker, out io.Writer) *Console {
	return &Console{svc: svc, tracker: surface.OrNop(tracker), out: out}
}

// Render implements playback.Adapter. Progress ticks alone do not print.
func (c *Console) Render(s playback.State) {
	line := Summary(s)
	c.mu.Lock()
	defer c.mu.Unlock()
	if line == c.last {
		return
	}
	c.last = line
	fmt.Fprintln(c.out, line)
}

func (c *Console) println(a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, a...)
}

func (c *Console) setOutput(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out = w
}

// Execute runs one command. It reports true when the console should exit.
func (c *Console) Execute(cmd Command) (bool, error) {
	switch cmd.Name {
	case "":
		return false, nil
	case CmdQuit:
		return true, nil
	case CmdHelp:
		c.println(strings.TrimRight(Help(), "\n"))
		return false, nil
	case CmdStatus:
		c.println(Status(c.svc.State()))
		return false, nil
	}

	c.tracker.Control("console:" + cmd.Name)
	switch cmd.Name {
	case CmdPlay:
		return false, wrap(errmsg.OpPlaybackStart, c.svc.Play())
	case CmdPause:
		return false, wrap(errmsg.OpPlaybackPause, c.svc.Pause())
	case CmdToggle:
		return false, wrap(errmsg.OpPlaybackStart, c.svc.TogglePlayPause())
	case CmdNext:
		return false, wrap(errmsg.OpPlaybackSkip, c.svc.Next())
	case CmdPrev:
		return false, wrap(errmsg.OpPlaybackSkip, c.svc.Previous())
	case CmdMute:
		return false, wrap(errmsg.OpPlaybackMute, c.svc.ToggleMute())
	case CmdCat:
		return false, wrap(errmsg.OpCategorySelect, c.svc.SelectCategory(cmd.Category))
	case CmdTrack:
		return false, wrap(errmsg.OpTrackSelect, c.svc.SelectTrack(cmd.Track))
	case CmdSeek:
		return false, wrap(errmsg.OpPlaybackSeek, c.svc.SeekToFraction(cmd.Fraction))
	}
	return false, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Name)
}

// Line parses and executes one input line, printing any error.
func (c *Console) Line(line string) bool {
	cmd, err := Parse(line)
	if err != nil {
		c.println(err)
		return false
	}
	quit, err := c.Execute(cmd)
	if err != nil {
		c.println(err)
	}
	return quit
}

// Run reads commands until quit, EOF, interrupt on an empty line, or ctx
// cancellation.
func (c *Console) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          Prompt,
		AutoComplete:    c.completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       CmdQuit,
	})
	if err != nil {
		return fmt.Errorf("open console: %w", err)
	}
	closeRL := sync.OnceFunc(func() { _ = rl.Close() })
	defer closeRL()

	// Status lines go through readline so the prompt is redrawn after them.
	c.setOutput(rl.Stdout())
	c.println("Type 'help' for commands.")

	sub := c.svc.Subscribe()
	defer c.svc.Unsubscribe(sub)
	detach := c.svc.Attach(c)
	defer detach()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go c.reportErrors(ctx, sub)
	go func() {
		<-ctx.Done()
		closeRL()
	}()

	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if line == "" {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if c.Line(line) {
			return nil
		}
	}
}

func (c *Console) reportErrors(ctx context.Context, sub *playback.Subscription) {
	for {
		select {
		case e := <-sub.Errors:
			c.println(ErrorLine(e))
		case <-sub.Done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (c *Console) completer() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(Commands))
	for _, name := range Commands {
		if name == CmdCat {
			items = append(items, readline.PcItem(name, readline.PcItemDynamic(func(string) []string {
				return c.svc.State().Categories
			})))
			continue
		}
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}

func wrap(op errmsg.Op, err error) error {
	if err == nil {
		return nil
	}
	return errors.New(errmsg.Format(op, err))
}

// Summary is the status line printed on state changes.
func Summary(s playback.State) string {
	if s.Empty() {
		return fmt.Sprintf("%s No samples in %s", icons.Play(), catalog.Label(s.Category))
	}
	line := fmt.Sprintf("%s %s · %s (%d/%d)",
		icons.PlayPause(s.Active()), catalog.Label(s.Category), s.Track.Title, s.Index+1, len(s.Tracks))
	if s.Pending {
		line += " …"
	}
	if s.IsMuted {
		line += " [muted]"
	}
	return line
}

// Status is Summary with the position.
func Status(s playback.State) string {
	if s.Empty() {
		return Summary(s)
	}
	return fmt.Sprintf("%s  %s / %s", Summary(s), surface.Clock(s.Position), surface.Clock(s.DisplayDuration()))
}

// ErrorLine describes a failed sample.
func ErrorLine(e playback.ErrorEvent) string {
	return "! " + errmsg.Event(e)
}
