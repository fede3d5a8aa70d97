package player

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/wav"
)

// Supported container formats.
const (
	FormatMP3  = "MP3"
	FormatFLAC = "FLAC"
	FormatWAV  = "WAV"
)

// maxSourceBytes caps a fetched sample. Samples are short previews.
const maxSourceBytes = 64 << 20

// source is a fetched sample held in memory so it can be sought freely.
type source struct {
	data        []byte
	contentType string
}

func isRemote(locator string) bool {
	return strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://")
}

// fetch reads the locator into memory. Remote locators honour ctx.
func fetch(ctx context.Context, client *http.Client, locator string) (*source, error) {
	if isRemote(locator) {
		return fetchHTTP(ctx, client, locator)
	}

	p := locator
	if strings.HasPrefix(locator, "file://") {
		u, err := url.Parse(locator)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMediaLoad, locator, err)
		}
		p = u.Path
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMediaLoad, err)
	}
	return &source{data: data}, nil
}

func fetchHTTP(ctx context.Context, client *http.Client, locator string) (*source, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMediaLoad, locator, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMediaLoad, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s: HTTP %d", ErrMediaLoad, locator, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrMediaLoad, locator, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s: empty body", ErrMediaLoad, locator)
	}
	return &source{data: data, contentType: resp.Header.Get("Content-Type")}, nil
}

// formatOf picks a decoder from the locator extension, falling back to the
// response content type, then to MP3.
func formatOf(locator, contentType string) string {
	p := locator
	if u, err := url.Parse(locator); err == nil && u.Path != "" {
		p = u.Path
	}
	switch strings.ToLower(path.Ext(filepath.ToSlash(p))) {
	case ".mp3":
		return FormatMP3
	case ".flac":
		return FormatFLAC
	case ".wav", ".wave":
		return FormatWAV
	}

	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mt {
		case "audio/flac", "audio/x-flac":
			return FormatFLAC
		case "audio/wav", "audio/x-wav", "audio/wave", "audio/vnd.wave":
			return FormatWAV
		}
	}
	return FormatMP3
}

// readSeekNopCloser keeps the Seeker of a bytes.Reader visible to decoders
// that take an io.ReadCloser.
type readSeekNopCloser struct {
	*bytes.Reader
}

func (readSeekNopCloser) Close() error { return nil }

// decode opens a streamer over the in-memory sample.
func decode(src *source, format string) (beep.StreamSeekCloser, beep.Format, error) {
	r := bytes.NewReader(src.data)

	var (
		streamer beep.StreamSeekCloser
		f        beep.Format
		err      error
	)
	switch format {
	case FormatFLAC:
		if err = skipID3v2(r); err != nil {
			return nil, beep.Format{}, fmt.Errorf("%w: %v", ErrMediaLoad, err)
		}
		streamer, f, err = flac.Decode(r)
	case FormatWAV:
		streamer, f, err = wav.Decode(r)
	default:
		streamer, f, err = mp3.Decode(readSeekNopCloser{r})
	}
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("%w: decoding %s: %v", ErrMediaLoad, format, err)
	}
	return streamer, f, nil
}

// skipID3v2 advances past an ID3v2 tag some encoders prepend to FLAC files.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && n < 10 {
		_, serr := r.Seek(0, io.SeekStart)
		return serr
	}
	if string(header[:3]) != "ID3" {
		_, err := r.Seek(0, io.SeekStart)
		return err
	}
	// Syncsafe integer: 7 bits per byte.
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
