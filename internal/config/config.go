package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "bardio"

// Environment variables read on top of the config files.
const (
	EnvConfig   = "BARDIO_CONFIG"    // extra config file, loaded after the user config
	EnvLogLevel = "BARDIO_LOG_LEVEL" // overrides log_level
	EnvIcons    = "BARDIO_ICONS"     // overrides icons
)

type Config struct {
	Icons           string   `koanf:"icons"`     // "nerd", "unicode", or "none"
	LogLevel        string   `koanf:"log_level"` // zerolog level name (default: "info")
	LogFile         string   `koanf:"log_file"`  // default: $XDG_STATE_HOME/bardio/bardio.log
	DefaultCategory string   `koanf:"default_category"`
	CategoryOrder   []string `koanf:"category_order"`

	// Sample reel override. Empty means the embedded catalog.
	Catalog map[string][]TrackEntry `koanf:"catalog"`

	Player    PlayerConfig    `koanf:"player"`
	Analytics AnalyticsConfig `koanf:"analytics"`

	// Desktop integration (Linux only). Both default to true.
	MPRIS         *bool `koanf:"mpris"`
	Notifications *bool `koanf:"notifications"`
}

// TrackEntry is one [[catalog.<category>]] table.
type TrackEntry struct {
	Title    string `koanf:"title"`
	File     string `koanf:"file"`     // URL or path; may be empty
	Duration string `koanf:"duration"` // optional hint, e.g. "3m12s"
}

// DurationHint parses the optional duration, returning 0 when absent or invalid.
func (e TrackEntry) DurationHint() time.Duration {
	if e.Duration == "" {
		return 0
	}
	d, err := time.ParseDuration(e.Duration)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// PlayerConfig holds playback engine settings.
type PlayerConfig struct {
	FetchTimeout     int `koanf:"fetch_timeout"`     // seconds (default: 20)
	ProgressInterval int `koanf:"progress_interval"` // milliseconds (default: 500)
	SeekStep         int `koanf:"seek_step"`         // percent of the track per seek key (default: 5)
}

// AnalyticsConfig holds event tracking settings.
type AnalyticsConfig struct {
	Store string `koanf:"store"` // "log" (default) or "sqlite"
	Path  string `koanf:"path"`  // sqlite file, default: $XDG_DATA_HOME/bardio/analytics.db
}

func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvIcons); v != "" {
		cfg.Icons = v
	}

	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.Analytics.Path = expandPath(cfg.Analytics.Path)
	cfg.Analytics.Store = strings.ToLower(strings.TrimSpace(cfg.Analytics.Store))

	for key, entries := range cfg.Catalog {
		for i := range entries {
			if !isURL(entries[i].File) {
				entries[i].File = expandPath(entries[i].File)
			}
		}
		cfg.Catalog[key] = entries
	}

	return cfg, nil
}

// loadDotEnv loads a .env file into the process environment.
// A missing file is not an error; existing variables are not overwritten.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func getConfigPaths() []string {
	paths := []string{
		// 1. $XDG_CONFIG_HOME/bardio/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
	}

	// 2. $BARDIO_CONFIG
	if extra := os.Getenv(EnvConfig); extra != "" {
		paths = append(paths, expandPath(extra))
	}

	// 3. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func isURL(s string) bool {
	return strings.Contains(s, "://")
}

// HasCatalog returns true if the config overrides the embedded sample reel.
func (c *Config) HasCatalog() bool {
	return len(c.Catalog) > 0
}

// MPRISEnabled reports whether the MPRIS surface should be started.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// NotificationsEnabled reports whether track-change notifications are sent.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications == nil || *c.Notifications
}

// GetLogFile returns the log file path with the default applied.
func (c *Config) GetLogFile() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

// GetPlayerConfig returns the player configuration with defaults applied.
func (c *Config) GetPlayerConfig() PlayerConfig {
	cfg := c.Player

	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 20
	}
	if cfg.ProgressInterval < 50 {
		cfg.ProgressInterval = 500
	}
	if cfg.SeekStep <= 0 || cfg.SeekStep > 50 {
		cfg.SeekStep = 5
	}

	return cfg
}

// FetchTimeoutDuration returns the fetch timeout as a duration.
func (p PlayerConfig) FetchTimeoutDuration() time.Duration {
	return time.Duration(p.FetchTimeout) * time.Second
}

// ProgressIntervalDuration returns the progress tick as a duration.
func (p PlayerConfig) ProgressIntervalDuration() time.Duration {
	return time.Duration(p.ProgressInterval) * time.Millisecond
}

// GetAnalyticsConfig returns the analytics configuration with defaults applied.
func (c *Config) GetAnalyticsConfig() AnalyticsConfig {
	cfg := c.Analytics

	if cfg.Store != "sqlite" {
		cfg.Store = "log"
	}
	if cfg.Path == "" {
		cfg.Path = filepath.Join(xdg.DataHome, appName, "analytics.db")
	}

	return cfg
}
