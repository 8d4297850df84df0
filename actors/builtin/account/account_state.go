package account

import (
	addr "github.com/filecoin-project/go-address"
)

// State includes the address for the actor
type State struct {
	Address addr.Address // must be a public-key style address.
}

func ConstructState(address addr.Address) *State {
	return &State{Address: address}
}
