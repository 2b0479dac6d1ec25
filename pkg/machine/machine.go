package machine

import (
	"errors"
	"fmt"
	"slices"
)

type State interface {
	~string
}

// Allowable maps where a from state is allowed to transition to
type Allowable[S State] struct {
	from S
	to   []S
}

// StateMachine tracks the current state of a single run and the transitions it may take
type StateMachine[S State] struct {
	current     S
	transitions []Allowable[S]
	history     []S
}

var (
	ErrInvalidTransition = errors.New("invalid state transition")
)

// TransitionBuilder helps in creating a from-to relationship for state transitions
type TransitionBuilder[S State] struct {
	transition Allowable[S]
}

func New[S State](initial S, transitions ...Allowable[S]) *StateMachine[S] {
	return &StateMachine[S]{current: initial, transitions: transitions, history: []S{initial}}
}

// From initializes a transition from a specific state
func From[S State](from S) *TransitionBuilder[S] {
	return &TransitionBuilder[S]{transition: Allowable[S]{from: from}}
}

// FromAny creates one transition per from state, all sharing the same destinations
func FromAny[S State](from []S, to ...S) []Allowable[S] {
	transitions := make([]Allowable[S], 0, len(from))
	for _, f := range from {
		transitions = append(transitions, From(f).To(to...))
	}
	return transitions
}

// To sets the possible destination states and returns the configured transition
func (tb *TransitionBuilder[S]) To(to ...S) Allowable[S] {
	tb.transition.to = to
	return tb.transition
}

// Current returns the state the machine is in
func (m *StateMachine[S]) Current() S {
	return m.current
}

// History returns every state the machine has been in, oldest first
func (m *StateMachine[S]) History() []S {
	return slices.Clone(m.history)
}

// Visited reports whether the machine has been in s at any point
func (m *StateMachine[S]) Visited(s S) bool {
	return slices.Contains(m.history, s)
}

// ToState determines if the current state can transition to s
func (m *StateMachine[S]) ToState(s S) error {
	for _, transition := range m.transitions {
		// can't transition from one state to another state if we're not in the same from state
		if transition.from != m.current {
			continue
		}

		if slices.Contains(transition.to, s) {
			return nil
		}
	}

	return ErrInvalidTransition
}

// Transition moves the machine to s if the move is allowed
func (m *StateMachine[S]) Transition(s S) error {
	if err := m.ToState(s); err != nil {
		return fmt.Errorf("%s -> %s: %w", m.current, s, err)
	}

	m.current = s
	m.history = append(m.history, s)
	return nil
}
