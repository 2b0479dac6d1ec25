package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testState string

const (
	statePending   testState = "Pending"
	stateSubmitted testState = "Submitted"
	stateCanceled  testState = "Canceled"
	stateDone      testState = "Done"
)

func newTestMachine(initial testState) *StateMachine[testState] {
	return New(initial,
		From(statePending).To(stateSubmitted),
		From(stateSubmitted).To(stateDone, stateCanceled),
	)
}

func TestStateMachine_ToState(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		machine := newTestMachine(statePending)

		assert.Len(t, machine.transitions, 2)

		err := machine.ToState(stateSubmitted)
		assert.Nil(t, err)
		assert.Equal(t, statePending, machine.Current(), "ToState must not move the machine")
	})

	t.Run("invalid transition", func(t *testing.T) {
		machine := newTestMachine(stateSubmitted)

		err := machine.ToState(statePending)
		assert.Equal(t, stateSubmitted, machine.Current())
		assert.Equal(t, ErrInvalidTransition, err)
	})
}

func TestStateMachine_Transition(t *testing.T) {
	t.Run("walks the allowed path", func(t *testing.T) {
		machine := newTestMachine(statePending)

		require.NoError(t, machine.Transition(stateSubmitted))
		require.NoError(t, machine.Transition(stateDone))

		assert.Equal(t, stateDone, machine.Current())
		assert.Equal(t, []testState{statePending, stateSubmitted, stateDone}, machine.History())
		assert.True(t, machine.Visited(stateSubmitted))
		assert.False(t, machine.Visited(stateCanceled))
	})

	t.Run("rejects skipping a state", func(t *testing.T) {
		machine := newTestMachine(statePending)

		err := machine.Transition(stateDone)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Contains(t, err.Error(), "Pending -> Done")
		assert.Equal(t, statePending, machine.Current())
	})

	t.Run("terminal state has no way out", func(t *testing.T) {
		machine := newTestMachine(statePending)
		require.NoError(t, machine.Transition(stateSubmitted))
		require.NoError(t, machine.Transition(stateCanceled))

		assert.ErrorIs(t, machine.Transition(stateDone), ErrInvalidTransition)
	})
}

func TestFromAny(t *testing.T) {
	transitions := FromAny([]testState{statePending, stateSubmitted}, stateCanceled)
	machine := New(statePending, transitions...)

	require.NoError(t, machine.Transition(stateCanceled))

	machine = New(stateSubmitted, transitions...)
	require.NoError(t, machine.Transition(stateCanceled))

	machine = New(stateDone, transitions...)
	assert.ErrorIs(t, machine.Transition(stateCanceled), ErrInvalidTransition)
}

func TestStateMachine_HistoryIsACopy(t *testing.T) {
	machine := newTestMachine(statePending)
	history := machine.History()
	history[0] = stateDone

	assert.Equal(t, statePending, machine.History()[0])
}
