package analytics

import (
	"github.com/rs/zerolog"
)

// LogSink writes events to a zerolog logger.
type LogSink struct {
	log zerolog.Logger
}

// NewLogSink returns a sink logging at info level.
func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log.With().Str("component", "analytics").Logger()}
}

func (s *LogSink) Record(e Event) error {
	ev := s.log.Info().
		Str("event", e.Name).
		Str("session", e.Session).
		Time("at", e.At)
	if len(e.Props) > 0 {
		d := zerolog.Dict()
		for k, v := range e.Props {
			d.Str(k, v)
		}
		ev = ev.Dict("props", d)
	}
	ev.Msg("event tracked")
	return nil
}

func (s *LogSink) Close() error {
	return nil
}
