// Package notify shows desktop notifications for the sample that starts
// playing.
package notify

// Urgency is the freedesktop notification urgency hint.
type Urgency byte

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification is one desktop notification.
type Notification struct {
	Title      string
	Body       string
	Icon       string // file path or icon name
	Timeout    int32  // ms; -1 leaves it to the server, 0 never expires
	ReplacesID uint32 // id of a notification to replace, or 0
	Urgency    Urgency
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify shows n and returns the id the server gave it.
	Notify(n Notification) (uint32, error)
	Close(id uint32) error
}

// Discard is a Notifier that shows nothing.
type Discard struct{}

func (Discard) Notify(Notification) (uint32, error) { return 0, nil }
func (Discard) Close(uint32) error                  { return nil }
