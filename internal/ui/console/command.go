package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Command names.
const (
	CmdPlay   = "play"
	CmdPause  = "pause"
	CmdToggle = "toggle"
	CmdNext   = "next"
	CmdPrev   = "prev"
	CmdMute   = "mute"
	CmdCat    = "cat"
	CmdTrack  = "track"
	CmdSeek   = "seek"
	CmdStatus = "status"
	CmdHelp   = "help"
	CmdQuit   = "quit"
)

var aliases = map[string]string{
	"p":        CmdToggle,
	"n":        CmdNext,
	"previous": CmdPrev,
	"category": CmdCat,
	"t":        CmdTrack,
	"s":        CmdStatus,
	"?":        CmdHelp,
	"q":        CmdQuit,
	"exit":     CmdQuit,
}

// Commands lists the command names in help order.
var Commands = []string{
	CmdPlay, CmdPause, CmdToggle, CmdNext, CmdPrev, CmdMute,
	CmdCat, CmdTrack, CmdSeek, CmdStatus, CmdHelp, CmdQuit,
}

var usage = map[string]string{
	CmdPlay:   "start playback",
	CmdPause:  "pause playback",
	CmdToggle: "play or pause",
	CmdNext:   "next sample",
	CmdPrev:   "previous sample",
	CmdMute:   "toggle mute",
	CmdCat:    "cat <key>    switch category",
	CmdTrack:  "track <n>    play sample n (from 1)",
	CmdSeek:   "seek <pct>   jump to pct% (0-100)",
	CmdStatus: "show the current state",
	CmdHelp:   "list commands",
	CmdQuit:   "leave",
}

var (
	// ErrUnknownCommand is returned for unrecognized command names.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingArgument is returned when a command needs an argument.
	ErrMissingArgument = errors.New("missing argument")
	// ErrInvalidArgument is returned for malformed arguments.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Command is one parsed console line. Track is zero-based.
type Command struct {
	Name     string
	Category string
	Track    int
	Fraction float64
}

// Parse parses a console line. An empty line yields a zero Command.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, nil
	}
	name := strings.ToLower(fields[0])
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	cmd := Command{Name: name}
	args := fields[1:]

	switch name {
	case CmdPlay, CmdPause, CmdToggle, CmdNext, CmdPrev, CmdMute, CmdStatus, CmdHelp, CmdQuit:
		return cmd, nil

	case CmdCat:
		if len(args) == 0 {
			return Command{}, fmt.Errorf("%s: %w: category key", name, ErrMissingArgument)
		}
		cmd.Category = strings.ToLower(args[0])
		return cmd, nil

	case CmdTrack:
		if len(args) == 0 {
			return Command{}, fmt.Errorf("%s: %w: track number", name, ErrMissingArgument)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return Command{}, fmt.Errorf("%s: %w: %q is not a track number", name, ErrInvalidArgument, args[0])
		}
		cmd.Track = n - 1
		return cmd, nil

	case CmdSeek:
		if len(args) == 0 {
			return Command{}, fmt.Errorf("%s: %w: percentage", name, ErrMissingArgument)
		}
		pct, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "%"), 64)
		if err != nil || pct < 0 || pct > 100 {
			return Command{}, fmt.Errorf("%s: %w: %q is not a percentage", name, ErrInvalidArgument, args[0])
		}
		cmd.Fraction = pct / 100
		return cmd, nil
	}

	return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
}

// Help returns the command list, one per line.
func Help() string {
	var sb strings.Builder
	for _, name := range Commands {
		fmt.Fprintf(&sb, "  %-7s %s\n", name, usage[name])
	}
	return sb.String()
}
