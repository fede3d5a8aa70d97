package player

import "time"

// Seek jumps to fraction of the loaded source's duration.
func (p *Player) Seek(fraction float64) {
	fraction = max(0, min(1, fraction))

	p.mu.Lock()
	defer p.mu.Unlock()

	h := p.cur
	if h == nil || !h.decoded() {
		return
	}
	n := h.streamer.Len()
	if n <= 0 {
		return
	}
	pos := min(int(fraction*float64(n)), n-1)

	p.out.Lock()
	err := h.streamer.Seek(pos)
	p.out.Unlock()
	if err != nil {
		p.log.Debug().Err(err).Int("sample", pos).Msg("seek")
	}
}

// Position returns the playback position of the loaded source.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	h := p.cur
	if h == nil || !h.decoded() {
		return 0
	}
	p.out.Lock()
	pos := h.format.SampleRate.D(h.streamer.Position())
	p.out.Unlock()
	return pos
}

// Duration returns the length of the loaded source, or 0 while unknown.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	h := p.cur
	if h == nil || !h.decoded() {
		return 0
	}
	return h.info.Duration
}

// Info returns metadata of the loaded source, or nil while unknown.
func (p *Player) Info() *TrackInfo {
	p.mu.Lock()
	defer p.mu.Unlock()

	h := p.cur
	if h == nil || !h.decoded() {
		return nil
	}
	info := *h.info
	return &info
}
