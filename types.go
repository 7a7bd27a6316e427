package undofsm

import (
	"sync"

	"github.com/enetx/g"
)

type (
	// State represents a finite state in the FSM.
	State g.String
	// Event represents an event that triggers a transition.
	Event g.String

	// Transitions maps an event to the state it leads to.
	Transitions = g.Map[Event, State]

	// StateConfig declares a single state.
	StateConfig struct {
		Transitions Transitions
	}

	// Config is the declarative description of a machine. It is read once by New
	// and never modified by the FSM afterwards.
	Config struct {
		Initial State
		States  g.MapOrd[State, StateConfig]
	}

	// FSM is the main state machine struct.
	// history is never empty and history[cursor] is the active state.
	FSM struct {
		initial State
		order   g.Slice[State]
		index   g.Map[State, Transitions]
		history g.Slice[State]
		cursor  int
	}

	// SyncFSM is a thread-safe wrapper around an FSM.
	// It protects all state-mutating and state-reading operations with a sync.RWMutex,
	// making it safe for use across multiple goroutines.
	// All methods on SyncFSM are the thread-safe counterparts to the methods on the base FSM.
	SyncFSM struct {
		fsm *FSM
		mu  sync.RWMutex
	}
)
