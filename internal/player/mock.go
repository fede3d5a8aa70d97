package player

import (
	"context"
	"sync"
	"time"
)

// Mock is a test double for Player. It is safe for concurrent use.
type Mock struct {
	mu       sync.Mutex
	state    State
	muted    bool
	loaded   string
	position time.Duration
	duration time.Duration
	info     *TrackInfo
	playErr  error
	hold     chan error

	loadCalls  []string
	playCalls  int
	pauseCalls int
	stopCalls  int
	seekCalls  []float64
	muteCalls  []bool

	events chan Event
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:  Stopped,
		events: make(chan Event, 32),
	}
}

func (m *Mock) Load(locator string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadCalls = append(m.loadCalls, locator)
	m.loaded = locator
	m.state = Stopped
	m.position = 0
	m.duration = 0
	m.info = nil
	for {
		select {
		case <-m.events:
		default:
			return
		}
	}
}

// Play records the call, then blocks while HoldPlay is active.
func (m *Mock) Play(ctx context.Context) error {
	m.mu.Lock()
	m.playCalls++
	hold := m.hold
	err := m.playErr
	loaded := m.loaded
	m.mu.Unlock()

	if hold != nil {
		select {
		case err = <-hold:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loaded != loaded {
		return ErrUnloaded
	}
	m.state = Playing
	return nil
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseCalls++
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopCalls++
	m.state = Stopped
	m.loaded = ""
}

func (m *Mock) Seek(fraction float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, fraction)
	if m.duration > 0 {
		fraction = max(0, min(1, fraction))
		m.position = time.Duration(fraction * float64(m.duration))
	}
}

func (m *Mock) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muteCalls = append(m.muteCalls, muted)
	m.muted = muted
}

func (m *Mock) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) Info() *TrackInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.info
}

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() {}

// Test helpers

// SetPlayError makes subsequent Play calls fail with err (nil to succeed).
func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

// HoldPlay makes subsequent Play calls block until ReleasePlay.
func (m *Mock) HoldPlay() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hold = make(chan error, 1)
}

// ReleasePlay completes one held Play call with err and stops holding.
func (m *Mock) ReleasePlay(err error) {
	m.mu.Lock()
	hold := m.hold
	m.hold = nil
	m.mu.Unlock()
	if hold != nil {
		hold <- err
	}
}

// SetDuration simulates the loaded source's duration becoming known.
func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

// SetPosition sets the position reported by Position.
func (m *Mock) SetPosition(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = d
}

// SetInfo sets the metadata reported by Info.
func (m *Mock) SetInfo(info *TrackInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.info = info
}

// Emit queues an engine event as if the loaded source produced it.
// Metadata and progress events also update Duration and Position.
func (m *Mock) Emit(ev Event) {
	m.mu.Lock()
	switch ev.Kind {
	case EventMetadata:
		m.duration = ev.Duration
	case EventProgress:
		m.position = ev.Position
	case EventEnded:
		m.state = Stopped
	}
	m.mu.Unlock()
	m.events <- ev
}

func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loadCalls...)
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}

func (m *Mock) StopCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopCalls
}

func (m *Mock) SeekCalls() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.seekCalls...)
}

func (m *Mock) MuteCalls() []bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]bool(nil), m.muteCalls...)
}

// TotalCalls counts every recorded engine call.
func (m *Mock) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.loadCalls) + m.playCalls + m.pauseCalls + m.stopCalls + len(m.seekCalls) + len(m.muteCalls)
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
