package palette

// State is the palette's keyboard state.
type State int

const (
	StateClosed State = iota
	StateOpenEmpty
	StateOpenTyping
	StateOpenSuggesting
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpenEmpty:
		return "open-empty"
	case StateOpenTyping:
		return "open-typing"
	case StateOpenSuggesting:
		return "open-suggesting"
	default:
		return "unknown"
	}
}

// Entry is one submitted command and what it printed.
type Entry struct {
	Input   string
	Output  string
	IsError bool
}
