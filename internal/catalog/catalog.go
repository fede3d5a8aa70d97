// Package catalog holds the static sample reel: category name to ordered tracks.
package catalog

import (
	"slices"
	"sort"
	"time"

	"github.com/brazdilr/bardio/internal/config"
)

// Track describes one sample in the reel.
type Track struct {
	Title        string
	Locator      string        // URL or file path; empty when the sample is missing
	DurationHint time.Duration // 0 if unknown
}

// HasLocator reports whether the track can be handed to the engine.
func (t Track) HasLocator() bool {
	return t.Locator != ""
}

// Catalog maps category keys to ordered track lists.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	keys   []string
	tracks map[string][]Track
}

// Category is one named group of tracks, used to build a Catalog.
type Category struct {
	Key    string
	Tracks []Track
}

// New builds a catalog from categories in the given order.
// A later category with a duplicate key replaces the earlier one in place.
func New(categories ...Category) *Catalog {
	c := &Catalog{tracks: make(map[string][]Track, len(categories))}
	for _, cat := range categories {
		if _, ok := c.tracks[cat.Key]; !ok {
			c.keys = append(c.keys, cat.Key)
		}
		c.tracks[cat.Key] = slices.Clone(cat.Tracks)
	}
	return c
}

// Get returns a copy of the tracks of a category, or an empty slice for an
// unknown key.
func (c *Catalog) Get(key string) []Track {
	tracks, ok := c.tracks[key]
	if !ok {
		return []Track{}
	}
	result := make([]Track, len(tracks))
	copy(result, tracks)
	return result
}

// Has reports whether the category exists (it may still be empty).
func (c *Catalog) Has(key string) bool {
	_, ok := c.tracks[key]
	return ok
}

// Keys returns the category keys in display order.
func (c *Catalog) Keys() []string {
	return slices.Clone(c.keys)
}

// First returns the first category key, or "" for an empty catalog.
func (c *Catalog) First() string {
	if len(c.keys) == 0 {
		return ""
	}
	return c.keys[0]
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// FromConfig builds a catalog from [[catalog.<key>]] tables. Keys listed in
// order come first; the remaining keys follow alphabetically. Keys in order
// that have no tables become empty categories.
func FromConfig(order []string, entries map[string][]config.TrackEntry) *Catalog {
	seen := make(map[string]bool, len(entries))
	var keys []string
	for _, key := range order {
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	var rest []string
	for key := range entries {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	keys = append(keys, rest...)

	categories := make([]Category, 0, len(keys))
	for _, key := range keys {
		var tracks []Track
		for _, e := range entries[key] {
			tracks = append(tracks, Track{
				Title:        e.Title,
				Locator:      e.File,
				DurationHint: e.DurationHint(),
			})
		}
		categories = append(categories, Category{Key: key, Tracks: tracks})
	}
	return New(categories...)
}

// Load returns the catalog configured in cfg, or the embedded reel.
func Load(cfg *config.Config) *Catalog {
	if cfg != nil && cfg.HasCatalog() {
		return FromConfig(cfg.CategoryOrder, cfg.Catalog)
	}
	return Default()
}
