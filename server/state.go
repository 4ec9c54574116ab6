package server

// State is the lifecycle phase of a Loop
type State int32

const (
	// Running serves one request per cycle.
	Running State = iota

	// Draining means shutdown was requested and the loop is finishing its
	// current cycle.
	Draining

	// Stopped means the loop returned and the channels are closed.
	Stopped
)

// String returns the state name
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Draining:
		return "draining"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}
