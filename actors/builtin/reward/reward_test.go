package reward_test

import (
	"context"
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/assert"

	"github.com/filecoin-project/go-state-audit/actors/builtin/reward"
	"github.com/filecoin-project/go-state-audit/support/ipld"
)

func TestRewardInvariants(t *testing.T) {
	store := ipld.NewADTStore(context.Background())

	wellFunded := func() (*reward.State, abi.TokenAmount) {
		st := reward.ConstructState(abi.NewStoragePower(1 << 40))
		st.Epoch = 11
		// balance covers the full mining allocation before any rewards are paid
		return st, reward.StorageMiningAllocationCheck
	}

	t.Run("fresh state passes", func(t *testing.T) {
		st, balance := wellFunded()
		_, acc := reward.CheckStateInvariants(st, store, abi.ChainEpoch(10), balance)
		assert.True(t, acc.IsEmpty(), "unexpected messages: %v", acc.Messages())
	})

	t.Run("epoch mismatch reported", func(t *testing.T) {
		st, balance := wellFunded()
		_, acc := reward.CheckStateInvariants(st, store, abi.ChainEpoch(11), balance)
		assert.Len(t, acc.Messages(), 1)
	})

	t.Run("depleted allocation reported", func(t *testing.T) {
		st, _ := wellFunded()
		_, acc := reward.CheckStateInvariants(st, store, abi.ChainEpoch(10), big.Zero())
		assert.Len(t, acc.Messages(), 1)
	})

	t.Run("paid rewards count toward allocation", func(t *testing.T) {
		st, balance := wellFunded()
		paid := big.Div(balance, big.NewInt(2))
		st.TotalStoragePowerReward = paid
		remaining := big.Sub(balance, paid)
		_, acc := reward.CheckStateInvariants(st, store, abi.ChainEpoch(10), remaining)
		assert.True(t, acc.IsEmpty(), "unexpected messages: %v", acc.Messages())
	})

	t.Run("cumsum ordering reported", func(t *testing.T) {
		st, balance := wellFunded()
		st.CumsumRealized = big.NewInt(100)
		// baseline left at zero
		_, acc := reward.CheckStateInvariants(st, store, abi.ChainEpoch(10), balance)
		assert.Len(t, acc.Messages(), 1)
	})
}
