package playback

import "errors"

var (
	// ErrEmptyQueue is returned by transport commands when the active
	// category has no tracks.
	ErrEmptyQueue = errors.New("empty queue")
	// ErrUnknownCategory is returned by SelectCategory for keys not in the catalog.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrIndexOutOfRange is returned by SelectTrack for invalid indexes.
	ErrIndexOutOfRange = errors.New("track index out of range")
	// ErrDurationUnknown is returned by SeekToFraction before metadata arrived.
	ErrDurationUnknown = errors.New("duration unknown")
	// ErrClosed is returned by commands issued after Close.
	ErrClosed = errors.New("playback closed")
	// ErrNoLocator marks a track that has no media to play.
	ErrNoLocator = errors.New("track has no media locator")
)
