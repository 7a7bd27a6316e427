package undofsm_test

import (
	"errors"
	"fmt"

	"github.com/enetx/undofsm"
)

func Example() {
	cfg := undofsm.NewConfig("green").
		Transition("green", "timer", "yellow").
		Transition("yellow", "timer", "red").
		Transition("red", "timer", "green")

	light, err := undofsm.New(cfg)
	if err != nil {
		panic(err)
	}

	_ = light.Trigger("timer")
	_ = light.Trigger("timer")
	light.Undo()
	_ = light.Trigger("timer")

	fmt.Println(light.Current(), light.CanRedo())
	fmt.Println([]undofsm.State(light.States("timer")))
	fmt.Println(light)

	err = light.ChangeState("purple")

	var unknown *undofsm.ErrUnknownState
	fmt.Println(errors.As(err, &unknown), light.Current())

	// Output:
	// red false
	// [green yellow red]
	// green -> yellow -> [red]
	// true red
}
