// Package app is the bubbletea root model: the site page with its header,
// the floating player and the popups, wired to the playback coordinator.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brazdilr/bardio/internal/keymap"
	"github.com/brazdilr/bardio/internal/playback"
	"github.com/brazdilr/bardio/internal/ui/contactform"
	"github.com/brazdilr/bardio/internal/ui/faq"
	"github.com/brazdilr/bardio/internal/ui/floatingplayer"
	"github.com/brazdilr/bardio/internal/ui/helpbindings"
	"github.com/brazdilr/bardio/internal/ui/herobutton"
	"github.com/brazdilr/bardio/internal/ui/navmenu"
	"github.com/brazdilr/bardio/internal/ui/page"
	"github.com/brazdilr/bardio/internal/ui/popup"
	"github.com/brazdilr/bardio/internal/ui/surface"
	"github.com/brazdilr/bardio/internal/ui/topbar"
	"github.com/brazdilr/bardio/internal/ui/tracklist"
)

// Tracker receives the site's interaction events.
type Tracker interface {
	surface.Tracker
	Track(name string, props map[string]string)
}

type nopTracker struct{ surface.NopTracker }

func (nopTracker) Track(string, map[string]string) {}

// Options configures the root model.
type Options struct {
	Service  playback.Service
	Tracker  Tracker // nil disables analytics
	SeekStep int     // floating player seek step, percent
}

// section is a focus ring entry. Sections outside the scrolling page have
// no anchor.
type section struct {
	anchor string
	surface.Section
}

// Model is the root application model.
type Model struct {
	svc      playback.Service
	tracker  Tracker
	resolver *keymap.Resolver

	top    *topbar.Model
	menu   *navmenu.Model
	hero   *herobutton.Model
	list   *tracklist.Model
	faq    *faq.Model
	form   *contactform.Model
	player *floatingplayer.Model
	page   *page.Model
	help   *helpbindings.Model

	sections []section
	focus    int
	showHelp bool
	alert    *popup.Dialog

	Toasts    []Toast
	lastToast int64

	detach []func()
	width  int
	height int
}

// New creates the root model and attaches its playback surfaces.
func New(opts Options) Model {
	tracker := opts.Tracker
	if tracker == nil {
		tracker = nopTracker{}
	}
	svc := opts.Service
	help := helpbindings.New()

	m := Model{
		svc:      svc,
		tracker:  tracker,
		resolver: keymap.NewResolver(keymap.All),
		top:      topbar.New(svc, tracker),
		menu:     navmenu.New(navLinks, tracker),
		hero:     herobutton.New(svc, tracker, headline, tagline),
		list:     tracklist.New(svc, tracker),
		faq:      faq.New(faqItems),
		form:     contactform.New(),
		player:   floatingplayer.New(svc, tracker, opts.SeekStep),
		page:     page.New(),
		help:     &help,
	}
	m.sections = []section{
		{"", m.top},
		{AnchorHome, m.hero},
		{AnchorSamples, m.list},
		{AnchorFAQ, m.faq},
		{AnchorContact, m.form},
		{"", m.player},
	}
	for _, a := range m.adapters() {
		m.detach = append(m.detach, svc.Attach(a))
	}

	m.focus = 1
	m.hero.SetFocused(true)
	m.refresh()
	return m
}

func (m *Model) adapters() []playback.Adapter {
	return []playback.Adapter{m.top, m.hero, m.list, m.player}
}

// OnRender sets the hook the playback surfaces call after each new
// snapshot. main points it at Program.Send(RedrawMsg{}).
func (m *Model) OnRender(fn func()) {
	m.top.OnRender(fn)
	m.hero.OnRender(fn)
	m.list.OnRender(fn)
	m.player.OnRender(fn)
}

// Close detaches the playback surfaces.
func (m *Model) Close() {
	for _, detach := range m.detach {
		detach()
	}
	m.detach = nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Focused returns the anchor or context of the focused section.
func (m Model) Focused() string {
	s := m.sections[m.focus]
	if s.anchor != "" {
		return s.anchor
	}
	return s.Context()
}

func (m *Model) active() section {
	return m.sections[m.focus]
}
