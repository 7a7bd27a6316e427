package undofsm

import (
	"encoding/json"
	"fmt"

	"github.com/enetx/g"
)

// Snapshot is a serializable representation of the FSM's position.
// It carries the full history, including entries that can still be redone.
type Snapshot struct {
	History g.Slice[State] `json:"history"`
	Index   int            `json:"index"`
}

// MarshalJSON implements the json.Marshaler interface.
func (f *FSM) MarshalJSON() ([]byte, error) {
	return json.Marshal(Snapshot{
		History: f.history.Clone(),
		Index:   f.cursor,
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The snapshot must belong to a machine with the same configuration: every
// state in it has to be declared or be the initial state. On error the FSM
// is left unchanged.
func (f *FSM) UnmarshalJSON(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to unmarshal fsm state: %w", err)
	}

	if len(snap.History) == 0 {
		return &ErrInvalidSnapshot{Reason: "history is empty"}
	}

	if snap.Index < 0 || snap.Index >= len(snap.History) {
		return &ErrInvalidSnapshot{
			Reason: fmt.Sprintf("index %d out of range [0, %d)", snap.Index, len(snap.History)),
		}
	}

	for _, s := range snap.History {
		if s != f.initial && !f.index.Contains(s) {
			return &ErrUnknownState{State: s}
		}
	}

	f.history = snap.History
	f.cursor = snap.Index

	return nil
}
