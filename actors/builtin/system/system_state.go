package system

// The system actor carries no externally-auditable state.
type State struct{}

func ConstructState() *State {
	return &State{}
}
