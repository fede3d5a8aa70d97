package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/brazdilr/bardio/internal/analytics"
	"github.com/brazdilr/bardio/internal/app"
	"github.com/brazdilr/bardio/internal/catalog"
	"github.com/brazdilr/bardio/internal/config"
	"github.com/brazdilr/bardio/internal/errmsg"
	"github.com/brazdilr/bardio/internal/icons"
	"github.com/brazdilr/bardio/internal/logging"
	"github.com/brazdilr/bardio/internal/mpris"
	"github.com/brazdilr/bardio/internal/notify"
	"github.com/brazdilr/bardio/internal/playback"
	"github.com/brazdilr/bardio/internal/player"
	"github.com/brazdilr/bardio/internal/stderr"
	"github.com/brazdilr/bardio/internal/ui/console"
)

// coordinator is the process-wide playback coordinator.
var coordinator playback.Instance

func main() {
	consoleMode := flag.Bool("console", false, "line-mode console instead of the full-screen page")
	flag.Parse()

	if err := run(*consoleMode); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(consoleMode bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpConfigLoad, err)
	}
	icons.Init(cfg.Icons)

	log, logFile, err := logging.Open(cfg.GetLogFile(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	// Audio backends write to fd 2 directly; keep it off the terminal.
	if capture, err := stderr.Start(); err != nil {
		log.Warn().Err(err).Msg("stderr capture unavailable")
	} else {
		capture.Forward(log)
		defer capture.Stop()
	}

	svc, err := coordinator.Get(func() (playback.Service, error) {
		engine := player.New(cfg.GetPlayerConfig(), log)
		return playback.New(engine, catalog.Load(cfg), cfg.DefaultCategory, log), nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}
	defer svc.Close()

	tracker, err := analytics.Open(cfg.GetAnalyticsConfig(), log)
	if err != nil {
		log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpAnalyticsOpen, err))
		tracker = analytics.New(log, analytics.NewLogSink(log))
	}
	defer tracker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go tracker.Watch(ctx, svc.Subscribe())

	stopDesktop := startDesktop(ctx, cfg, svc, log)
	defer stopDesktop()

	if consoleMode {
		return console.New(svc, tracker, os.Stdout).Run(ctx)
	}

	m := app.New(app.Options{
		Service:  svc,
		Tracker:  tracker,
		SeekStep: cfg.GetPlayerConfig().SeekStep,
	})
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	m.OnRender(func() { p.Send(app.RedrawMsg{}) })

	log.Info().Str("session", tracker.Session()).Msg("started")
	_, err = p.Run()
	return err
}

// startDesktop starts the MPRIS and notification surfaces when enabled.
// The notifier stops with ctx; the returned func stops MPRIS.
func startDesktop(ctx context.Context, cfg *config.Config, svc playback.Service, log zerolog.Logger) func() {
	stop := func() {}
	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(svc, log)
		if err != nil {
			log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpMPRISStart, err))
		} else {
			stop = func() { _ = adapter.Close() }
		}
	}

	if cfg.NotificationsEnabled() {
		n, err := notify.New()
		if err != nil {
			log.Warn().Err(err).Msg("desktop notifications unavailable")
			return stop
		}
		go notify.NewTrackNotifier(n, log).Run(ctx, svc.Subscribe())
	}
	return stop
}
