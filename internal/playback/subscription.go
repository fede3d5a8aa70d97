package playback

import "sync"

// queueDepth bounds the track-change and error channels of a subscription.
const queueDepth = 16

// Subscription is one observer's view of the coordinator.
//
// States always holds the newest snapshot only, so a slow reader skips
// intermediate states. TrackChanged and Errors queue up to queueDepth
// events and drop the rest. Done closes when the subscription ends.
type Subscription struct {
	States       <-chan State
	TrackChanged <-chan TrackChange
	Errors       <-chan ErrorEvent
	Done         <-chan struct{}

	latest  chan State
	tracks  chan TrackChange
	errs    chan ErrorEvent
	done    chan struct{}
	swap    sync.Mutex
	stopped sync.Once
}

func newSubscription() *Subscription {
	s := &Subscription{
		latest: make(chan State, 1),
		tracks: make(chan TrackChange, queueDepth),
		errs:   make(chan ErrorEvent, queueDepth),
		done:   make(chan struct{}),
	}
	s.States, s.TrackChanged, s.Errors, s.Done = s.latest, s.tracks, s.errs, s.done
	return s
}

func (s *Subscription) close() {
	s.stopped.Do(func() { close(s.done) })
}

func (s *Subscription) sendState(st State) {
	s.swap.Lock()
	defer s.swap.Unlock()
	select {
	case <-s.latest:
	default:
	}
	s.latest <- st
}

func (s *Subscription) sendTrack(e TrackChange) { offer(s.tracks, e) }

func (s *Subscription) sendError(e ErrorEvent) { offer(s.errs, e) }

// offer sends v unless ch is full.
func offer[T any](ch chan T, v T) {
	select {
	case ch <- v:
	default:
	}
}
