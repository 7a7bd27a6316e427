package undofsm

import "github.com/enetx/g"

// StateMachine is implemented by both FSM and SyncFSM.
type StateMachine interface {
	Initial() State
	Current() State
	ChangeState(State) error
	Trigger(Event) error
	Reset()
	ClearHistory()
	States(...Event) g.Slice[State]
	History() g.Slice[State]
	Index() int
	CanUndo() bool
	CanRedo() bool
	Undo() bool
	Redo() bool
	MarshalJSON() ([]byte, error)
	UnmarshalJSON(data []byte) error
}

// Interface compliance checks.
var (
	_ StateMachine = (*FSM)(nil)
	_ StateMachine = (*SyncFSM)(nil)
)
