package playback

import "github.com/brazdilr/bardio/internal/playlist"

// Track is a catalog entry as seen by playback.
type Track = playlist.Track
