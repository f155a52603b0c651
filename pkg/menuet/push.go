package menuet

import (
	"time"
)

// Push is the tri-state answer to an edge/repeat query. An identifier that
// never produced an event yields PushUnknown, which is deliberately distinct
// from "known and not pushed".
type Push int

const (
	// PushUnknown means the identifier has never been observed.
	PushUnknown Push = iota
	// PushNo means the identifier is known and not due to fire.
	PushNo
	// PushYes means the press (or a repeat of it) fires on this query.
	PushYes
)

func (p Push) String() string {
	switch p {
	case PushUnknown:
		return "unknown"
	case PushNo:
		return "no"
	case PushYes:
		return "yes"
	default:
		return "invalid"
	}
}

// Yes reports whether the query fired.
func (p Push) Yes() bool {
	return p == PushYes
}

// pushState is the per-identifier repeat machine: current up/down state,
// whether the press has been consumed once, and when the last firing query
// re-armed the timer.
type pushState struct {
	down  bool
	first bool
	last  time.Time
}

// edgeTracker holds pushState per identifier. Entries are created on the
// first Down or Up event and never removed; the identifier space is bounded.
type edgeTracker[K comparable] struct {
	states map[K]*pushState
	now    func() time.Time
}

func newEdgeTracker[K comparable]() *edgeTracker[K] {
	return &edgeTracker[K]{
		states: make(map[K]*pushState),
		now:    time.Now,
	}
}

func (t *edgeTracker[K]) ensure(id K) *pushState {
	s, ok := t.states[id]
	if !ok {
		s = &pushState{}
		t.states[id] = s
	}
	return s
}

func (t *edgeTracker[K]) press(id K) {
	s := t.ensure(id)
	s.down = true
	s.first = true
}

func (t *edgeTracker[K]) release(id K) {
	s := t.ensure(id)
	s.down = false
	s.first = false
}

// push runs one query against the repeat machine. The first query after a
// press fires regardless of delay and arms the timer; while held, the query
// fires again each time delay has elapsed since the last firing query.
func (t *edgeTracker[K]) push(id K, delay time.Duration) Push {
	s, ok := t.states[id]
	if !ok {
		return PushUnknown
	}

	if s.first {
		s.first = false
		s.last = t.now()
		return PushYes
	}
	if !s.down {
		return PushNo
	}
	if t.now().Sub(s.last) >= delay {
		s.last = t.now()
		return PushYes
	}
	return PushNo
}
