package notify

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/brazdilr/bardio/internal/catalog"
	"github.com/brazdilr/bardio/internal/mpris"
	"github.com/brazdilr/bardio/internal/playback"
)

// DefaultTimeout is how long a now-playing notification stays up, in ms.
const DefaultTimeout int32 = 5000

// TrackNotifier announces the sample that starts playing. Each notification
// replaces the previous one so the desktop shows a single entry.
type TrackNotifier struct {
	notifier Notifier
	timeout  int32
	log      zerolog.Logger

	mu     sync.Mutex
	lastID uint32
}

// NewTrackNotifier wraps n. A nil notifier disables notifications.
func NewTrackNotifier(n Notifier, log zerolog.Logger) *TrackNotifier {
	return &TrackNotifier{
		notifier: n,
		timeout:  DefaultTimeout,
		log:      log.With().Str("component", "notify").Logger(),
	}
}

// Handle sends a notification when a track change happens with playback
// running or requested.
func (t *TrackNotifier) Handle(e playback.TrackChange) {
	if t.notifier == nil || !e.Playing || e.Current == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	id, err := t.notifier.Notify(Notification{
		Title:      e.Current.Title,
		Body:       catalog.Label(e.Category) + " sample",
		Icon:       mpris.FindCoverArt(e.Current.Locator),
		Timeout:    t.timeout,
		ReplacesID: t.lastID,
		Urgency:    UrgencyLow,
	})
	if err != nil {
		t.log.Debug().Err(err).Msg("notification failed")
		return
	}
	t.lastID = id
}

// Run handles track changes from sub until it closes or ctx is done.
func (t *TrackNotifier) Run(ctx context.Context, sub *playback.Subscription) {
	for {
		select {
		case e := <-sub.TrackChanged:
			t.Handle(e)
		case <-sub.Done:
			return
		case <-ctx.Done():
			return
		}
	}
}
