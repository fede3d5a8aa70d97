package player

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// SampleRate is the rate the output device runs at. Sources are resampled to it.
const SampleRate = beep.SampleRate(44100)

// Output is the audio device the engine mixes into.
// Lock and Unlock guard streamers that the output is currently pulling from.
type Output interface {
	Init(sr beep.SampleRate) error
	Play(s beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

// speakerOutput drives the system speaker. It is initialized on first use;
// a failed initialization is retried on the next Play.
type speakerOutput struct {
	mu          sync.Mutex
	initialized bool
}

func (o *speakerOutput) Init(sr beep.SampleRate) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.initialized {
		return nil
	}
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return err
	}
	o.initialized = true
	return nil
}

func (o *speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }

func (o *speakerOutput) Clear() {
	o.mu.Lock()
	ok := o.initialized
	o.mu.Unlock()
	if ok {
		speaker.Clear()
	}
}

func (o *speakerOutput) Lock()   { speaker.Lock() }
func (o *speakerOutput) Unlock() { speaker.Unlock() }
