package playback

import (
	"testing"
	"time"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusStopped, "Stopped"},
		{StatusPlaying, "Playing"},
		{StatusPaused, "Paused"},
		{Status(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Errorf("Status.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestState_Status(t *testing.T) {
	track := &Track{Title: "A", Locator: "a.mp3"}
	tests := []struct {
		name  string
		state State
		want  Status
	}{
		{"no track", State{IsPlaying: true}, StatusStopped},
		{"loaded, never played", State{Track: track}, StatusStopped},
		{"pending", State{Track: track, Pending: true}, StatusPlaying},
		{"playing", State{Track: track, IsPlaying: true}, StatusPlaying},
		{"paused mid-track", State{Track: track, Position: time.Second}, StatusPaused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Status(); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestState_Progress(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  float64
	}{
		{"unknown duration", State{Position: time.Second}, 0},
		{"half", State{Position: 30 * time.Second, Duration: time.Minute}, 0.5},
		{"past end", State{Position: 2 * time.Minute, Duration: time.Minute}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Progress(); got != tt.want {
				t.Errorf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestState_DisplayDuration(t *testing.T) {
	track := &Track{Title: "A", DurationHint: 3 * time.Minute}

	if got := (State{Track: track}).DisplayDuration(); got != 3*time.Minute {
		t.Errorf("DisplayDuration() = %v, want hint", got)
	}
	if got := (State{Track: track, Duration: time.Minute}).DisplayDuration(); got != time.Minute {
		t.Errorf("DisplayDuration() = %v, want known duration", got)
	}
	if got := (State{}).DisplayDuration(); got != 0 {
		t.Errorf("DisplayDuration() = %v, want 0", got)
	}
}

func TestState_SameAs(t *testing.T) {
	a := State{Category: "pop", Tracks: []Track{{Title: "A"}}, Track: &Track{Title: "A"}, Version: 1}
	b := State{Category: "pop", Tracks: []Track{{Title: "A"}}, Track: &Track{Title: "A"}, Version: 7}

	if !a.sameAs(b) {
		t.Error("states differing only in Version should compare equal")
	}

	b.IsMuted = true
	if a.sameAs(b) {
		t.Error("mute change should be detected")
	}

	c := a
	c.Track = nil
	if a.sameAs(c) {
		t.Error("track removal should be detected")
	}
}

func TestErrorKind_String(t *testing.T) {
	if MediaLoadFailed.String() != "MediaLoadFailed" || PlaybackRejected.String() != "PlaybackRejected" {
		t.Error("unexpected ErrorKind names")
	}
}
