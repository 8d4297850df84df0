package miner_test

import (
	"context"
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-state-audit/actors/builtin"
	"github.com/filecoin-project/go-state-audit/actors/builtin/miner"
	"github.com/filecoin-project/go-state-audit/actors/util/adt"
	"github.com/filecoin-project/go-state-audit/support/ipld"
	tutil "github.com/filecoin-project/go-state-audit/support/testing"
)

const sectorSize = abi.SectorSize(32 << 30)

func makeInfo(t *testing.T, store adt.Store) *miner.State {
	info := miner.MinerInfo{
		Owner:               tutil.NewIDAddr(t, 100),
		Worker:              tutil.NewIDAddr(t, 101),
		SectorSize:          sectorSize,
		WindowPoStProofType: abi.RegisteredPoStProof_StackedDrgWindow32GiBV1,
	}
	infoCid, err := store.Put(store.Context(), &info)
	require.NoError(t, err)

	st, err := miner.ConstructState(store, infoCid)
	require.NoError(t, err)
	return st
}

func putSector(t *testing.T, store adt.Store, st *miner.State, sector *miner.SectorOnChainInfo) {
	sectors, err := adt.AsArray(store, st.Sectors, miner.SectorsAmtBitwidth)
	require.NoError(t, err)
	require.NoError(t, sectors.Set(uint64(sector.SectorNumber), sector))
	st.Sectors, err = sectors.Root()
	require.NoError(t, err)
}

func TestMinerInvariants(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	policy := builtin.DefaultPolicy()

	t.Run("empty miner passes", func(t *testing.T) {
		st := makeInfo(t, store)
		summary, acc := miner.CheckStateInvariants(st, store, policy, big.Zero())
		assert.True(t, acc.IsEmpty(), "unexpected messages: %v", acc.Messages())
		assert.Equal(t, sectorSize, summary.SectorSize)
		assert.True(t, summary.LivePower.IsZero())
	})

	t.Run("sector power and pledge accumulate", func(t *testing.T) {
		st := makeInfo(t, store)
		putSector(t, store, st, &miner.SectorOnChainInfo{
			SectorNumber:  1,
			SealProof:     abi.RegisteredSealProof_StackedDrg32GiBV1,
			Activation:    0,
			Expiration:    policy.MinSectorExpiration + 100,
			DealIDs:       []abi.DealID{42},
			InitialPledge: big.NewInt(1000),
		})
		st.InitialPledge = big.NewInt(1000)

		summary, acc := miner.CheckStateInvariants(st, store, policy, big.NewInt(1000))
		assert.True(t, acc.IsEmpty(), "unexpected messages: %v", acc.Messages())
		assert.Equal(t, uint64(1), summary.SectorCount)
		assert.True(t, summary.LivePower.Equals(miner.PowerForSector(sectorSize)))
		assert.True(t, summary.ActivePower.Equals(summary.LivePower))

		deal, found := summary.Deals[abi.DealID(42)]
		require.True(t, found)
		assert.Equal(t, abi.ChainEpoch(0), deal.SectorStart)
	})

	t.Run("faulty sector subtracts active power", func(t *testing.T) {
		st := makeInfo(t, store)
		putSector(t, store, st, &miner.SectorOnChainInfo{
			SectorNumber:  1,
			SealProof:     abi.RegisteredSealProof_StackedDrg32GiBV1,
			Activation:    0,
			Expiration:    policy.MinSectorExpiration + 100,
			InitialPledge: big.Zero(),
		})
		st.Faults.Set(1)

		summary, acc := miner.CheckStateInvariants(st, store, policy, big.Zero())
		assert.True(t, acc.IsEmpty(), "unexpected messages: %v", acc.Messages())
		assert.Equal(t, uint64(1), summary.FaultCount)
		assert.True(t, summary.FaultyPower.Equals(miner.PowerForSector(sectorSize)))
		assert.True(t, summary.ActivePower.IsZero())
	})

	t.Run("fault for missing sector reported", func(t *testing.T) {
		st := makeInfo(t, store)
		st.Faults.Set(9)
		_, acc := miner.CheckStateInvariants(st, store, policy, big.Zero())
		assert.False(t, acc.IsEmpty())
	})

	t.Run("balance below locked funds reported", func(t *testing.T) {
		st := makeInfo(t, store)
		st.LockedFunds = big.NewInt(10)
		_, acc := miner.CheckStateInvariants(st, store, policy, big.NewInt(5))
		assert.False(t, acc.IsEmpty())
	})

	t.Run("sector expiring too soon reported", func(t *testing.T) {
		st := makeInfo(t, store)
		putSector(t, store, st, &miner.SectorOnChainInfo{
			SectorNumber:  1,
			SealProof:     abi.RegisteredSealProof_StackedDrg32GiBV1,
			Activation:    0,
			Expiration:    policy.MinSectorExpiration - 1,
			InitialPledge: big.Zero(),
		})
		_, acc := miner.CheckStateInvariants(st, store, policy, big.Zero())
		assert.False(t, acc.IsEmpty())
	})
}
