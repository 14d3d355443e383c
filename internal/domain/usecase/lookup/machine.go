package lookup

import "sync"

type State int

const (
	Idle State = iota
	Loading
	Success
	Failure
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Machine tracks one session's lookup form. Each Begin hands out a new token
// and only the holder of the latest token may finish the submission.
type Machine struct {
	mu    sync.Mutex
	state State
	token uint64
}

func NewMachine() *Machine {
	return &Machine{}
}

// Begin moves to Loading under a new token. Any earlier submission is superseded.
func (m *Machine) Begin() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token++
	m.state = Loading
	return m.token
}

// Finish settles the submission holding token. It returns false when a newer submission superseded it.
func (m *Machine) Finish(token uint64, ok bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token != m.token || m.state != Loading {
		return false
	}
	next := Failure
	if ok {
		next = Success
	}
	m.state = next
	return true
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}
