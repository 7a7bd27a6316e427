// Package undofsm provides a finite state machine driven by a declarative
// configuration of states and event transitions. Every state change is kept
// in a linear history that can be walked back and forth with Undo and Redo.
// It is built with types and utilities from the github.com/enetx/g library.
package undofsm

import (
	"maps"

	"github.com/enetx/g"
)

// New creates an FSM positioned at cfg.Initial.
//
// The configuration is not validated beyond its presence: an undeclared
// initial state or transition target surfaces as ErrUnknownState when used.
func New(cfg *Config) (*FSM, error) {
	if cfg == nil {
		return nil, &ErrConfiguration{Reason: "configuration is nil"}
	}

	index := make(g.Map[State, Transitions], len(cfg.States))
	order := make(g.Slice[State], 0, len(cfg.States))

	for _, p := range cfg.States {
		if !index.Contains(p.Key) {
			order = append(order, p.Key)
		}

		index[p.Key] = maps.Clone(p.Value.Transitions)
	}

	return &FSM{
		initial: cfg.Initial,
		order:   order,
		index:   index,
		history: g.Slice[State]{cfg.Initial},
	}, nil
}

// Clone creates a new FSM instance with the same configuration but a fresh history.
func (f *FSM) Clone() *FSM {
	return &FSM{
		initial: f.initial,
		order:   f.order,
		index:   f.index,
		history: g.Slice[State]{f.initial},
	}
}

// Sync wraps the FSM for use from multiple goroutines.
// The FSM must not be used directly afterwards.
func (f *FSM) Sync() *SyncFSM { return &SyncFSM{fsm: f} }

// Initial returns the configured initial state.
func (f *FSM) Initial() State { return f.initial }

// Current returns the FSM's current state.
func (f *FSM) Current() State { return f.history[f.cursor] }

// History returns a copy of the visited states, including entries that can be redone.
func (f *FSM) History() g.Slice[State] { return f.history.Clone() }

// Index returns the position of the current state in History.
func (f *FSM) Index() int { return f.cursor }

// ChangeState jumps to s without consulting any transition table.
// Entries after the current position are discarded before s is appended,
// so they can no longer be redone.
func (f *FSM) ChangeState(s State) error {
	if !f.index.Contains(s) {
		return &ErrUnknownState{State: s}
	}

	f.history = append(f.history[:f.cursor+1], s)
	f.cursor++

	return nil
}

// Trigger follows the current state's transition for event.
func (f *FSM) Trigger(event Event) error {
	from := f.Current()

	to, ok := f.index[from][event]
	if !ok {
		return &ErrUnknownState{From: from, Event: event}
	}

	if err := f.ChangeState(to); err != nil {
		return &ErrUnknownState{State: to, From: from, Event: event}
	}

	return nil
}

// Reset rewinds the FSM to its initial state and drops the whole history.
func (f *FSM) Reset() {
	f.history = g.Slice[State]{f.initial}
	f.cursor = 0
}

// ClearHistory drops the history. The FSM returns to its initial state,
// not to the state that was active before the call.
func (f *FSM) ClearHistory() { f.Reset() }

// States returns the declared states in declaration order.
// When a non-empty event is given, only states with a transition for it are returned.
func (f *FSM) States(event ...Event) g.Slice[State] {
	if len(event) == 0 || event[0] == "" {
		return f.order.Clone()
	}

	states := g.NewSlice[State]()

	for _, s := range f.order {
		if to, ok := f.index[s][event[0]]; ok && to != "" {
			states = append(states, s)
		}
	}

	return states
}

// CanUndo reports whether Undo would succeed.
func (f *FSM) CanUndo() bool { return f.cursor > 0 }

// CanRedo reports whether Redo would succeed.
func (f *FSM) CanRedo() bool { return f.cursor+1 < len(f.history) }

// Undo steps back to the previous history entry. It returns false when
// already at the oldest entry.
func (f *FSM) Undo() bool {
	if !f.CanUndo() {
		return false
	}

	f.cursor--

	return true
}

// Redo steps forward to the next history entry. It returns false when
// already at the newest entry.
func (f *FSM) Redo() bool {
	if !f.CanRedo() {
		return false
	}

	f.cursor++

	return true
}

// String renders the history with the current state in brackets,
// e.g. "green -> [yellow] -> red".
func (f *FSM) String() string {
	parts := make(g.Slice[g.String], 0, len(f.history))

	for i, s := range f.history {
		if i == f.cursor {
			parts = append(parts, g.Format("[{}]", s))
			continue
		}

		parts = append(parts, g.String(s))
	}

	return string(parts.Join(" -> "))
}
