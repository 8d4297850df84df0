package multisig

import (
	"encoding/binary"

	address "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	cid "github.com/ipfs/go-cid"
)

// SignersMax is the maximum number of signers allowed in a multisig.
const SignersMax = 256

type TxnID int64

func (t TxnID) Key() string {
	// convert a TxnID to a HAMT key.
	txnKey := make([]byte, 0, binary.MaxVarintLen64)
	temp := make([]byte, binary.MaxVarintLen64)
	n := binary.PutVarint(temp, int64(t))
	txnKey = append(txnKey, temp[:n]...)
	return string(txnKey)
}

type Transaction struct {
	To     address.Address
	Value  abi.TokenAmount
	Method abi.MethodNum
	Params []byte

	// This address at index 0 is the transaction proposer, order of this slice must be preserved.
	Approved []address.Address
}

type State struct {
	// Signers may be either public-key or actor ID-addresses. The ID address is canonical, but doesn't exist
	// for a public key that has not yet received a message on chain.
	Signers               []address.Address
	NumApprovalsThreshold uint64
	NextTxnID             TxnID

	// Linear unlock
	InitialBalance abi.TokenAmount
	StartEpoch     abi.ChainEpoch
	UnlockDuration abi.ChainEpoch

	PendingTxns cid.Cid // HAMT[TxnID]Transaction
}

func ConstructState(signers []address.Address, threshold uint64, emptyMapCid cid.Cid) *State {
	return &State{
		Signers:               signers,
		NumApprovalsThreshold: threshold,
		NextTxnID:             0,
		InitialBalance:        big.Zero(),
		StartEpoch:            0,
		UnlockDuration:        0,
		PendingTxns:           emptyMapCid,
	}
}
