package cron

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
)

type State struct {
	Entries []Entry
}

type Entry struct {
	Receiver  addr.Address  // The actor to invoke periodically.
	MethodNum abi.MethodNum // The method number to invoke.
}

func ConstructState(entries []Entry) *State {
	return &State{Entries: entries}
}
