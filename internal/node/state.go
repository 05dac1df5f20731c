package node

// State is the lifecycle state of a node.
type State int32

const (
	StateJoining State = iota
	StateSynced
	StateShuttingDown
)

func (s State) String() string {
	switch s {
	case StateJoining:
		return "joining"
	case StateSynced:
		return "synced"
	case StateShuttingDown:
		return "shutting_down"
	default:
		return "unknown"
	}
}
