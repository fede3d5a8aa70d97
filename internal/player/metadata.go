package player

import (
	"bytes"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/dhowden/tag"
)

// TrackInfo describes the loaded source once it has been decoded.
type TrackInfo struct {
	Locator    string
	Title      string
	Artist     string
	Album      string
	Format     string
	SampleRate int
	Size       int64
	Duration   time.Duration
}

// readInfo reads embedded tags from the in-memory sample. Sources without
// tags still get a title derived from the locator.
func readInfo(locator string, data []byte) *TrackInfo {
	info := &TrackInfo{
		Locator: locator,
		Size:    int64(len(data)),
	}

	if m, err := tag.ReadFrom(bytes.NewReader(data)); err == nil {
		info.Title = strings.TrimSpace(m.Title())
		info.Artist = strings.TrimSpace(m.Artist())
		info.Album = strings.TrimSpace(m.Album())
	}
	if info.Title == "" {
		info.Title = baseName(locator)
	}
	return info
}

func baseName(locator string) string {
	p := locator
	if u, err := url.Parse(locator); err == nil && u.Path != "" {
		p = u.Path
	}
	name := path.Base(strings.ReplaceAll(p, "\\", "/"))
	if name == "." || name == "/" {
		return locator
	}
	return name
}
