package undofsm

import "github.com/enetx/g"

// NewConfig starts an empty configuration with the given initial state.
// The initial state is not declared implicitly; declare it with State or Transition.
func NewConfig(initial State) *Config {
	return &Config{Initial: initial}
}

// State declares a state without adding any transitions to it.
// Declaring an existing state again keeps its position and transitions.
func (c *Config) State(s State) *Config {
	c.entry(s)
	return c
}

// Transition declares from (if needed) and adds from -> event -> to.
// The destination is not declared; an undeclared destination is only
// reported when the event is triggered.
func (c *Config) Transition(from State, event Event, to State) *Config {
	i := c.entry(from)
	if c.States[i].Value.Transitions == nil {
		c.States[i].Value.Transitions = Transitions{}
	}

	c.States[i].Value.Transitions[event] = to

	return c
}

func (c *Config) entry(s State) int {
	for i, p := range c.States {
		if p.Key == s {
			return i
		}
	}

	c.States = append(c.States, g.Pair[State, StateConfig]{Key: s})

	return len(c.States) - 1
}
