package player

// State is the engine's state for the loaded source. Load, Stop and the
// end of the source all return it to Stopped; Play and Pause move between
// Playing and Paused once a source is decoded.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

var stateNames = [...]string{Stopped: "stopped", Playing: "playing", Paused: "paused"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

