package player

// SetMuted silences output without pausing. The setting survives Load.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
	if h := p.cur; h != nil && h.volume != nil {
		p.out.Lock()
		h.volume.Silent = muted
		p.out.Unlock()
	}
}

// Muted returns true if audio is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}
