package undofsm_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	. "github.com/enetx/undofsm"
)

func TestFSM_Serialization(t *testing.T) {
	fsm := newTrafficLight(t)
	assertNoError(t, fsm.Trigger("timer"))
	assertNoError(t, fsm.Trigger("timer"))
	assertTrue(t, fsm.Undo())

	jsonData, err := json.Marshal(fsm)
	assertNoError(t, err)
	assertEqual(t, string(jsonData), `{"history":["green","yellow","red"],"index":1}`)

	restored := newTrafficLight(t)
	assertNoError(t, json.Unmarshal(jsonData, restored))

	// Position and redo branch are both restored.
	assertEqual(t, restored.Current(), State("yellow"))
	assertStates(t, restored.History(), "green", "yellow", "red")
	assertTrue(t, restored.Redo())
	assertEqual(t, restored.Current(), State("red"))
}

func TestFSM_SerializationUndeclaredInitial(t *testing.T) {
	fsm, err := New(NewConfig("boot").State("ready"))
	assertNoError(t, err)

	jsonData, err := json.Marshal(fsm)
	assertNoError(t, err)

	restored := fsm.Clone()
	assertNoError(t, json.Unmarshal(jsonData, restored))
	assertEqual(t, restored.Current(), State("boot"))
}

func TestFSM_SerializationUnknownState(t *testing.T) {
	fsm := newTrafficLight(t)
	invalidJSON := `{"history": ["green", "unknown_state"], "index": 1}`

	err := json.Unmarshal([]byte(invalidJSON), fsm)
	assertError(t, err)
	assertTrue(t, strings.Contains(err.Error(), "unknown state"))

	e := assertUnknownState(t, err)
	assertEqual(t, e.State, State("unknown_state"))
	assertEqual(t, fsm.Current(), State("green"))
}

func TestFSM_SerializationInvalidSnapshot(t *testing.T) {
	for _, data := range []string{
		`{"history": [], "index": 0}`,
		`{"history": ["green"], "index": 1}`,
		`{"history": ["green", "red"], "index": -1}`,
	} {
		fsm := newTrafficLight(t)

		err := json.Unmarshal([]byte(data), fsm)

		var target *ErrInvalidSnapshot
		if !errors.As(err, &target) {
			t.Fatalf("%s: expected *ErrInvalidSnapshot, got %v", data, err)
		}
		assertEqual(t, fsm.Index(), 0)
		assertEqual(t, fsm.History().Len(), 1)
	}
}

func TestFSM_SerializationMalformed(t *testing.T) {
	fsm := newTrafficLight(t)

	err := fsm.UnmarshalJSON([]byte(`{"history": "green"`))
	assertError(t, err)
	assertTrue(t, strings.Contains(err.Error(), "failed to unmarshal fsm state"))
}
