package undofsm

import "fmt"

// ErrConfiguration is returned by New when the machine cannot be built from
// the supplied configuration. No FSM is produced.
type ErrConfiguration struct {
	Reason string
}

func (e *ErrConfiguration) Error() string {
	return fmt.Sprintf("fsm: invalid configuration: %s", e.Reason)
}

// ErrUnknownState is returned when a requested or resolved destination is not
// declared in the configuration.
//
// ChangeState sets only State. Trigger also sets From and Event; State stays
// empty when the current state has no transition for Event at all.
// The FSM is left unchanged whenever this error is returned.
type ErrUnknownState struct {
	State State
	From  State
	Event Event
}

func (e *ErrUnknownState) Error() string {
	switch {
	case e.Event != "" && e.State == "":
		return fmt.Sprintf("fsm: no transition for event %q from state %q", e.Event, e.From)
	case e.Event != "":
		return fmt.Sprintf("fsm: event %q from state %q leads to unknown state %q", e.Event, e.From, e.State)
	default:
		return fmt.Sprintf("fsm: unknown state %q", e.State)
	}
}

// ErrInvalidSnapshot is returned when a serialized snapshot is structurally
// unusable, e.g. an empty history or a cursor outside of it.
type ErrInvalidSnapshot struct {
	Reason string
}

func (e *ErrInvalidSnapshot) Error() string {
	return fmt.Sprintf("fsm: invalid snapshot: %s", e.Reason)
}
