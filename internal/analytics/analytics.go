// Package analytics records site interaction events.
package analytics

import (
	"errors"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Event names.
const (
	ButtonClick      = "button_click"
	AudioInteraction = "audio_interaction"
	TrackStarted     = "track_started"
	PlaybackError    = "playback_error"
	ContactSubmit    = "contact_submit"
)

// Event is one tracked interaction.
type Event struct {
	Name    string
	Props   map[string]string
	Session string
	At      time.Time
}

// Sink receives tracked events.
type Sink interface {
	Record(e Event) error
	Close() error
}

// Tracker stamps events with the session id and fans them out to its sinks.
// A failing sink is logged and does not stop the others.
type Tracker struct {
	mu      sync.Mutex
	session string
	sinks   []Sink
	now     func() time.Time
	log     zerolog.Logger
	closed  bool
}

// New creates a tracker with a fresh session id.
func New(log zerolog.Logger, sinks ...Sink) *Tracker {
	return &Tracker{
		session: uuid.NewString(),
		sinks:   sinks,
		now:     time.Now,
		log:     log,
	}
}

// Session returns the session id attached to every event.
func (t *Tracker) Session() string {
	return t.session
}

// Track records an event. Calls after Close are dropped.
func (t *Tracker) Track(name string, props map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || name == "" {
		return
	}

	e := Event{
		Name:    name,
		Props:   maps.Clone(props),
		Session: t.session,
		At:      t.now(),
	}
	for _, s := range t.sinks {
		if err := s.Record(e); err != nil {
			t.log.Warn().Err(err).Str("event", name).Msg("analytics sink failed")
		}
	}
}

// Click records a button_click for a navigation, hero or call-to-action button.
func (t *Tracker) Click(text, href string) {
	props := map[string]string{"button_text": text}
	if href != "" {
		props["button_href"] = href
	}
	t.Track(ButtonClick, props)
}

// Control records an audio_interaction for a player control.
func (t *Tracker) Control(button string) {
	t.Track(AudioInteraction, map[string]string{"button": button})
}

// Close closes every sink.
func (t *Tracker) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true

	var errs []error
	for _, s := range t.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
