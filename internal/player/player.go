package player

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/rs/zerolog"

	"github.com/brazdilr/bardio/internal/config"
)

// handle is one loaded source. Everything behind ready is written once by
// the load goroutine before ready is closed.
type handle struct {
	locator string
	ctx     context.Context
	cancel  context.CancelFunc

	ready    chan struct{}
	err      error
	streamer beep.StreamSeekCloser
	format   beep.Format
	info     *TrackInfo

	// Guarded by Player.mu (and the output lock once started).
	started bool
	ctrl    *beep.Ctrl
	volume  *effects.Volume

	ended     chan struct{}
	endedOnce sync.Once
}

func (h *handle) markEnded() {
	h.endedOnce.Do(func() { close(h.ended) })
}

func (h *handle) isEnded() bool {
	select {
	case <-h.ended:
		return true
	default:
		return false
	}
}

// decoded reports whether loading finished without error.
func (h *handle) decoded() bool {
	select {
	case <-h.ready:
		return h.err == nil
	default:
		return false
	}
}

// Player plays one source at a time through an Output.
type Player struct {
	mu     sync.Mutex
	cur    *handle
	state  State
	muted  bool
	wg     sync.WaitGroup
	events chan Event

	out              Output
	client           *http.Client
	fetchTimeout     time.Duration
	progressInterval time.Duration
	log              zerolog.Logger
}

// New creates a player on the system speaker.
func New(cfg config.PlayerConfig, log zerolog.Logger) *Player {
	return newPlayer(cfg, &speakerOutput{}, http.DefaultClient, log)
}

func newPlayer(cfg config.PlayerConfig, out Output, client *http.Client, log zerolog.Logger) *Player {
	return &Player{
		state:            Stopped,
		events:           make(chan Event, 32),
		out:              out,
		client:           client,
		fetchTimeout:     cfg.FetchTimeoutDuration(),
		progressInterval: cfg.ProgressIntervalDuration(),
		log:              log.With().Str("component", "player").Logger(),
	}
}

// Events returns the notification channel. It is never closed.
func (p *Player) Events() <-chan Event { return p.events }

// Load replaces the current source and starts fetching the new one.
func (p *Player) Load(locator string) {
	p.teardown()

	ctx, cancel := context.WithCancel(context.Background())
	h := &handle{
		locator: locator,
		ctx:     ctx,
		cancel:  cancel,
		ready:   make(chan struct{}),
		ended:   make(chan struct{}),
	}

	p.mu.Lock()
	p.cur = h
	p.state = Stopped
	p.mu.Unlock()

	p.log.Debug().Str("locator", locator).Msg("load")

	p.wg.Add(1)
	go p.run(h)
}

// Play starts the loaded source, or resumes it when paused.
func (p *Player) Play(ctx context.Context) error {
	p.mu.Lock()
	h := p.cur
	p.mu.Unlock()
	if h == nil {
		return fmt.Errorf("%w: nothing loaded", ErrMediaLoad)
	}

	select {
	case <-h.ready:
	case <-ctx.Done():
		return ctx.Err()
	case <-h.ctx.Done():
		return ErrUnloaded
	}
	if h.err != nil {
		return h.err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cur != h {
		return ErrUnloaded
	}
	if h.isEnded() {
		return fmt.Errorf("%w: %s already ended", ErrPlaybackRejected, h.locator)
	}
	if p.state == Playing {
		return nil
	}

	if err := p.out.Init(SampleRate); err != nil {
		return fmt.Errorf("%w: %v", ErrPlaybackRejected, err)
	}

	if h.started {
		p.out.Lock()
		h.ctrl.Paused = false
		p.out.Unlock()
	} else {
		var s beep.Streamer = h.streamer
		if h.format.SampleRate != SampleRate {
			s = beep.Resample(4, h.format.SampleRate, SampleRate, s)
		}
		h.ctrl = &beep.Ctrl{Streamer: s}
		h.volume = &effects.Volume{Streamer: h.ctrl, Base: 2, Silent: p.muted}
		h.started = true
		p.out.Play(beep.Seq(h.volume, beep.Callback(h.markEnded)))
	}

	p.state = Playing
	return nil
}

// Pause pauses playback. No-op unless playing.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	h := p.cur
	if h == nil || !h.started || p.state != Playing {
		return
	}
	p.out.Lock()
	h.ctrl.Paused = true
	p.out.Unlock()
	p.state = Paused
}

// Stop unloads the current source.
func (p *Player) Stop() {
	p.teardown()
}

// Close stops playback. The player may be loaded again afterwards.
func (p *Player) Close() {
	p.teardown()
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// teardown cancels the current handle, waits for its goroutine and discards
// any events it queued.
func (p *Player) teardown() {
	p.mu.Lock()
	h := p.cur
	p.cur = nil
	p.state = Stopped
	started := h != nil && h.started
	p.mu.Unlock()

	if h == nil {
		return
	}

	h.cancel()
	if started {
		p.out.Clear()
	}
	p.wg.Wait()

	if h.streamer != nil {
		if err := h.streamer.Close(); err != nil {
			p.log.Debug().Err(err).Str("locator", h.locator).Msg("close streamer")
		}
	}

	for {
		select {
		case <-p.events:
		default:
			return
		}
	}
}

// run fetches and decodes h, then reports progress until it ends or is unloaded.
func (p *Player) run(h *handle) {
	defer p.wg.Done()

	p.open(h)
	close(h.ready)

	if h.err != nil {
		p.log.Warn().Err(h.err).Str("locator", h.locator).Msg("load failed")
		p.emit(h, Event{Kind: EventError, Err: h.err})
		return
	}
	p.emit(h, Event{Kind: EventMetadata, Duration: h.info.Duration})

	ticker := time.NewTicker(p.progressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			return
		case <-h.ended:
			p.mu.Lock()
			if p.cur == h {
				p.state = Stopped
			}
			p.mu.Unlock()
			p.emit(h, Event{Kind: EventEnded})
			return
		case <-ticker.C:
			if p.State() != Playing {
				continue
			}
			select {
			case p.events <- Event{Kind: EventProgress, Position: p.Position()}:
			default:
			}
		}
	}
}

func (p *Player) open(h *handle) {
	ctx, cancel := context.WithTimeout(h.ctx, p.fetchTimeout)
	defer cancel()

	src, err := fetch(ctx, p.client, h.locator)
	if err != nil {
		h.err = err
		return
	}

	format := formatOf(h.locator, src.contentType)
	streamer, f, err := decode(src, format)
	if err != nil {
		h.err = err
		return
	}

	info := readInfo(h.locator, src.data)
	info.Format = format
	info.SampleRate = int(f.SampleRate)
	info.Duration = f.SampleRate.D(streamer.Len())

	h.streamer = streamer
	h.format = f
	h.info = info
}

// emit delivers ev unless h is unloaded first.
func (p *Player) emit(h *handle, ev Event) {
	select {
	case p.events <- ev:
	case <-h.ctx.Done():
	}
}
