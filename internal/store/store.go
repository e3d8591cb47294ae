package store

// Store owns the application state. It is created at the composition root
// and driven from the Bubble Tea update loop, which is single threaded, so
// it carries no lock.
type Store struct {
	state       State
	subscribers []func(prev, next State)
}

// New returns a store holding Initial().
func New() *Store {
	return &Store{state: Initial()}
}

// NewWithState returns a store seeded with s.
func NewWithState(s State) *Store {
	return &Store{state: s}
}

// State returns a copy of the current state.
func (s *Store) State() State { return s.state }

// Dispatch applies a and notifies subscribers.
func (s *Store) Dispatch(a Action) State {
	prev := s.state
	s.state = Reduce(prev, a)
	for _, fn := range s.subscribers {
		fn(prev, s.state)
	}
	return s.state
}

// Subscribe registers fn to be called after every dispatch.
func (s *Store) Subscribe(fn func(prev, next State)) {
	s.subscribers = append(s.subscribers, fn)
}
