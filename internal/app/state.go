package app

// State of the bootstrap. There is no terminal state; the process ends when
// the host run loop returns.
type State int32

const (
	StateStarting State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}
