package playback

// Service is the command and observation surface of the coordinator.
// Commands block until applied and are safe to call from any goroutine,
// including from an Adapter's Render.
type Service interface {
	// Selection
	SelectCategory(key string) error
	SelectTrack(index int) error

	// Transport
	TogglePlayPause() error
	Play() error
	Pause() error
	Next() error
	Previous() error
	ToggleMute() error
	SeekToFraction(fraction float64) error

	// Observation
	State() State
	Subscribe() *Subscription
	Unsubscribe(sub *Subscription)
	Attach(a Adapter) (detach func())

	// Lifecycle
	Close() error
}

// Adapter is a view of the playback state. Render receives every published
// snapshot in order, on a goroutine owned by the attachment; it never
// overlaps with itself.
type Adapter interface {
	Render(s State)
}

// AdapterFunc adapts a function to the Adapter interface.
type AdapterFunc func(State)

// Render calls f(s).
func (f AdapterFunc) Render(s State) { f(s) }
