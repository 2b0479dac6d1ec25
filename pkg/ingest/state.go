package ingest

import "github.com/kasuboski/ingestz/pkg/machine"

// State is a step of the per-file pipeline
type State string

const (
	StateNew          State = "new"
	StateSubmitted    State = "submitted"
	StateIdentified   State = "identified"
	StateConfigured   State = "configured"
	StateRenamedVideo State = "renamed_video"
	StateRenamedSubs  State = "renamed_subs"
	StateResumed      State = "resumed"
	StateDone         State = "done"
	StateFailed       State = "failed"
)

var nonTerminal = []State{
	StateNew,
	StateSubmitted,
	StateIdentified,
	StateConfigured,
	StateRenamedVideo,
	StateRenamedSubs,
	StateResumed,
}

// newPipeline returns the state machine for one torrent file
func newPipeline() *machine.StateMachine[State] {
	transitions := []machine.Allowable[State]{
		machine.From(StateNew).To(StateSubmitted),
		machine.From(StateSubmitted).To(StateIdentified),
		machine.From(StateIdentified).To(StateConfigured),
		machine.From(StateConfigured).To(StateRenamedVideo),
		machine.From(StateRenamedVideo).To(StateRenamedSubs),
		machine.From(StateRenamedSubs).To(StateResumed),
		machine.From(StateResumed).To(StateDone),
	}
	transitions = append(transitions, machine.FromAny(nonTerminal, StateFailed)...)

	return machine.New(StateNew, transitions...)
}
