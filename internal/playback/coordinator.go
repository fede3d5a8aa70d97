package playback

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/brazdilr/bardio/internal/catalog"
	"github.com/brazdilr/bardio/internal/player"
	"github.com/brazdilr/bardio/internal/playlist"
)

// Verify Coordinator implements Service at compile time.
var _ Service = (*Coordinator)(nil)

type command struct {
	fn    func() error
	reply chan error
}

type playResult struct {
	gen uint64
	err error
}

// Coordinator owns the selection state and the engine. A single loop
// goroutine applies commands, engine events and play results in order;
// everything below the loop-owned marker is touched only by that goroutine.
type Coordinator struct {
	engine  player.Interface
	catalog *catalog.Catalog
	log     zerolog.Logger

	cmds     chan command
	results  chan playResult
	done     chan struct{}
	loopDone chan struct{}
	once     sync.Once
	wg       sync.WaitGroup

	snapMu sync.RWMutex
	snap   State

	subsMu sync.Mutex
	subs   []*Subscription
	closed bool

	// loop-owned
	category   string
	queue      *playlist.Queue
	isPlaying  bool
	pending    bool
	muted      bool
	position   time.Duration
	duration   time.Duration
	info       *player.TrackInfo
	failures   int
	gen        uint64
	cancelPlay context.CancelFunc
	version    uint64
	published  bool
}

// New creates a coordinator over engine and cat. The default category (or
// the first one) is selected with track 0 loaded but not playing.
func New(engine player.Interface, cat *catalog.Catalog, defaultCategory string, log zerolog.Logger) *Coordinator {
	c := &Coordinator{
		engine:   engine,
		catalog:  cat,
		log:      log.With().Str("component", "playback").Logger(),
		cmds:     make(chan command),
		results:  make(chan playResult),
		done:     make(chan struct{}),
		loopDone: make(chan struct{}),
		queue:    playlist.New(),
	}

	c.category = cat.First()
	if defaultCategory != "" && cat.Has(defaultCategory) {
		c.category = defaultCategory
	}
	c.queue.Replace(cat.Get(c.category)...)
	c.load()
	c.publish()

	go c.loop()
	return c
}

func (c *Coordinator) loop() {
	defer close(c.loopDone)

	events := c.engine.Events()
	for {
		select {
		case cmd := <-c.cmds:
			err := cmd.fn()
			c.publish()
			cmd.reply <- err
		case ev := <-events:
			c.handleEvent(ev)
			c.publish()
		case r := <-c.results:
			c.handlePlayResult(r)
			c.publish()
		case <-c.done:
			c.cancelPending()
			return
		}
	}
}

// do runs fn on the loop and returns its outcome.
func (c *Coordinator) do(fn func() error) error {
	reply := make(chan error, 1)
	select {
	case c.cmds <- command{fn: fn, reply: reply}:
	case <-c.done:
		return ErrClosed
	}
	return <-reply
}

// Commands

// SelectCategory switches to category key with track 0 loaded. Playback
// resumes on the new track when it was running or requested before.
func (c *Coordinator) SelectCategory(key string) error {
	return c.do(func() error {
		c.failures = 0
		if !c.catalog.Has(key) {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, key)
		}
		resume := c.isPlaying || c.pending

		c.category = key
		c.queue.Replace(c.catalog.Get(key)...)
		c.load()
		c.isPlaying = false
		if resume && !c.queue.Empty() {
			c.startPlay()
		}
		c.log.Debug().Str("category", key).Bool("resume", resume).Msg("select category")
		return nil
	})
}

// SelectTrack toggles playback when index is the current track; otherwise
// it loads index and resumes if playback was running or requested.
func (c *Coordinator) SelectTrack(index int) error {
	return c.do(func() error {
		c.failures = 0
		if c.queue.Empty() {
			return ErrEmptyQueue
		}
		if index < 0 || index >= c.queue.Len() {
			return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
		}
		if index == c.queue.Index() {
			c.toggle()
			return nil
		}
		c.move(func() { c.queue.JumpTo(index) })
		return nil
	})
}

// TogglePlayPause pauses when playing or pending, plays otherwise.
func (c *Coordinator) TogglePlayPause() error {
	return c.do(func() error {
		c.failures = 0
		if c.queue.Empty() {
			return ErrEmptyQueue
		}
		c.toggle()
		return nil
	})
}

// Play requests playback of the current track.
func (c *Coordinator) Play() error {
	return c.do(func() error {
		c.failures = 0
		if c.queue.Empty() {
			return ErrEmptyQueue
		}
		if !c.isPlaying && !c.pending {
			c.startPlay()
		}
		return nil
	})
}

// Pause stops playback, superseding any pending play request.
func (c *Coordinator) Pause() error {
	return c.do(func() error {
		c.failures = 0
		if c.queue.Empty() {
			return ErrEmptyQueue
		}
		c.pause()
		return nil
	})
}

// Next moves to the following track, wrapping around.
func (c *Coordinator) Next() error {
	return c.do(func() error {
		c.failures = 0
		if c.queue.Empty() {
			return ErrEmptyQueue
		}
		c.move(func() { c.queue.Next() })
		return nil
	})
}

// Previous moves to the preceding track, wrapping around.
func (c *Coordinator) Previous() error {
	return c.do(func() error {
		c.failures = 0
		if c.queue.Empty() {
			return ErrEmptyQueue
		}
		c.move(func() { c.queue.Previous() })
		return nil
	})
}

// ToggleMute flips the mute flag and applies it to the engine at once.
func (c *Coordinator) ToggleMute() error {
	return c.do(func() error {
		c.failures = 0
		c.muted = !c.muted
		c.engine.SetMuted(c.muted)
		return nil
	})
}

// SeekToFraction jumps to fraction of the current track, clamped to [0, 1].
func (c *Coordinator) SeekToFraction(fraction float64) error {
	return c.do(func() error {
		c.failures = 0
		if c.queue.Empty() {
			return ErrEmptyQueue
		}
		if c.duration <= 0 {
			return ErrDurationUnknown
		}
		if math.IsNaN(fraction) {
			fraction = 0
		}
		fraction = max(0, min(1, fraction))
		c.engine.Seek(fraction)
		c.position = time.Duration(fraction * float64(c.duration))
		return nil
	})
}

// Observation

// State returns the latest published snapshot.
func (c *Coordinator) State() State {
	c.snapMu.RLock()
	defer c.snapMu.RUnlock()
	return c.snap
}

// Subscribe creates a new event subscription. The current snapshot is
// delivered immediately.
func (c *Coordinator) Subscribe() *Subscription {
	sub := newSubscription()

	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	if c.closed {
		sub.close()
		return sub
	}
	c.subs = append(c.subs, sub)
	sub.sendState(c.State())
	return sub
}

// Unsubscribe stops delivery to sub and closes its Done channel.
func (c *Coordinator) Unsubscribe(sub *Subscription) {
	c.subsMu.Lock()
	c.subs = slices.DeleteFunc(c.subs, func(s *Subscription) bool { return s == sub })
	c.subsMu.Unlock()
	sub.close()
}

// Attach renders every snapshot into a on its own goroutine, starting with
// the current one. The returned func detaches it.
func (c *Coordinator) Attach(a Adapter) (detach func()) {
	sub := c.Subscribe()
	go func() {
		for {
			select {
			case s := <-sub.States:
				a.Render(s)
			case <-sub.Done:
				return
			}
		}
	}()
	return func() { c.Unsubscribe(sub) }
}

// Close stops the loop, closes every subscription and the engine.
func (c *Coordinator) Close() error {
	c.once.Do(func() {
		close(c.done)
		<-c.loopDone
		c.wg.Wait()

		c.subsMu.Lock()
		for _, sub := range c.subs {
			sub.close()
		}
		c.subs = nil
		c.closed = true
		c.subsMu.Unlock()

		c.engine.Close()
	})
	return nil
}

// Loop-side transitions

func (c *Coordinator) toggle() {
	if c.isPlaying || c.pending {
		c.pause()
		return
	}
	c.startPlay()
}

func (c *Coordinator) pause() {
	c.cancelPending()
	c.engine.Pause()
	c.isPlaying = false
	c.position = c.engine.Position()
}

// move changes the index via step, reloads and resumes if playback was
// running or requested.
func (c *Coordinator) move(step func()) {
	resume := c.isPlaying || c.pending
	step()
	c.load()
	c.isPlaying = false
	if resume {
		c.startPlay()
	}
}

// load binds the current track to the engine. Tracks without a locator are
// never handed to it; the previous handle is stopped instead.
func (c *Coordinator) load() {
	c.cancelPending()
	c.position = 0
	c.duration = 0
	c.info = nil

	t := c.queue.Current()
	if t == nil || !t.HasLocator() {
		c.engine.Stop()
		return
	}
	c.engine.Load(t.Locator)
}

// startPlay asks the engine to play the current track. The result comes
// back through c.results tagged with the current generation.
func (c *Coordinator) startPlay() {
	c.cancelPending()

	t := c.queue.Current()
	if t == nil {
		c.isPlaying = false
		return
	}
	if !t.HasLocator() {
		c.fail(MediaLoadFailed, fmt.Errorf("%w: %q", ErrNoLocator, t.Title))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancelPlay = cancel
	c.pending = true
	gen := c.gen

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		err := c.engine.Play(ctx)
		select {
		case c.results <- playResult{gen: gen, err: err}:
		case <-c.loopDone:
		}
	}()
}

// cancelPending supersedes the in-flight play request, if any.
func (c *Coordinator) cancelPending() {
	if c.cancelPlay != nil {
		c.cancelPlay()
		c.cancelPlay = nil
	}
	c.gen++
	c.pending = false
}

func (c *Coordinator) handlePlayResult(r playResult) {
	if r.gen != c.gen {
		// A superseded request that still started playback must not win
		// over the later pause.
		if r.err == nil && !c.isPlaying && !c.pending {
			c.engine.Pause()
		}
		return
	}

	c.pending = false
	c.cancelPlay = nil
	switch {
	case r.err == nil:
		c.isPlaying = true
		c.failures = 0
	case errors.Is(r.err, context.Canceled), errors.Is(r.err, player.ErrUnloaded):
		c.isPlaying = false
	default:
		c.fail(classify(r.err), r.err)
	}
}

func (c *Coordinator) handleEvent(ev player.Event) {
	switch ev.Kind {
	case player.EventMetadata:
		c.duration = ev.Duration
		c.info = c.engine.Info()
	case player.EventProgress:
		c.position = ev.Position
	case player.EventEnded:
		c.position = c.duration
		c.queue.Next()
		c.load()
		c.startPlay()
	case player.EventError:
		switch {
		case c.pending:
			// The pending play request reports the same failure.
		case c.isPlaying:
			c.fail(MediaLoadFailed, ev.Err)
		default:
			c.broadcastError(ErrorEvent{
				Kind:     MediaLoadFailed,
				Category: c.category,
				Index:    c.queue.Index(),
				Track:    c.queue.Current(),
				Err:      ev.Err,
			})
		}
	}
}

// fail records a failure of the current track and skips forward with
// playback forced on, until one full pass of the queue has failed.
func (c *Coordinator) fail(kind ErrorKind, err error) {
	c.isPlaying = false
	c.pending = false
	c.failures++

	skip := c.failures < c.queue.Len()
	c.broadcastError(ErrorEvent{
		Kind:     kind,
		Category: c.category,
		Index:    c.queue.Index(),
		Track:    c.queue.Current(),
		Skipped:  skip,
		Err:      err,
	})

	if !skip {
		c.log.Warn().Int("failures", c.failures).Str("category", c.category).Msg("every track failed, halting playback")
		c.failures = 0
		return
	}
	c.queue.Next()
	c.load()
	c.startPlay()
}

func (c *Coordinator) broadcastError(e ErrorEvent) {
	ev := c.log.Warn().Err(e.Err).Str("kind", e.Kind.String()).Int("index", e.Index)
	if e.Track != nil {
		ev = ev.Str("track", e.Track.Title)
	}
	ev.Msg("track failed")

	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for _, sub := range c.subs {
		sub.sendError(e)
	}
}

// snapshot builds the state as of now, without a version.
func (c *Coordinator) snapshot() State {
	s := State{
		Category:   c.category,
		Categories: c.catalog.Keys(),
		Tracks:     c.queue.Tracks(),
		Index:      c.queue.Index(),
		Track:      c.queue.Current(),
		IsPlaying:  c.isPlaying,
		Pending:    c.pending,
		IsMuted:    c.muted,
		Position:   c.position,
		Duration:   c.duration,
		Info:       c.info,
	}
	if s.Tracks == nil {
		s.Tracks = []Track{}
	}
	return s
}

// publish stores and broadcasts the snapshot if anything changed.
func (c *Coordinator) publish() {
	next := c.snapshot()

	c.snapMu.RLock()
	prev := c.snap
	c.snapMu.RUnlock()

	if c.published && next.sameAs(prev) {
		return
	}
	c.version++
	next.Version = c.version

	c.snapMu.Lock()
	c.snap = next
	c.snapMu.Unlock()

	trackChanged := c.published &&
		(prev.Category != next.Category || prev.Index != next.Index || !sameTrack(prev.Track, next.Track))
	c.published = true

	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for _, sub := range c.subs {
		sub.sendState(next)
		if trackChanged {
			sub.sendTrack(TrackChange{
				Previous:      prev.Track,
				Current:       next.Track,
				PreviousIndex: prev.Index,
				Index:         next.Index,
				Category:      next.Category,
				Playing:       next.Active(),
			})
		}
	}
}

func sameTrack(a, b *Track) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
