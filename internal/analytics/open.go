package analytics

import (
	"github.com/rs/zerolog"

	"github.com/brazdilr/bardio/internal/config"
)

// Open builds a tracker from the analytics configuration. Events always go to
// the log; the sqlite store is added on request.
func Open(cfg config.AnalyticsConfig, log zerolog.Logger) (*Tracker, error) {
	sinks := []Sink{NewLogSink(log)}

	if cfg.Store == "sqlite" {
		store, err := OpenSQLite(cfg.Path)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, store)
	}

	return New(log, sinks...), nil
}
