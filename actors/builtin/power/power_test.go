package power_test

import (
	"context"
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-state-audit/actors/builtin"
	"github.com/filecoin-project/go-state-audit/actors/builtin/power"
	"github.com/filecoin-project/go-state-audit/actors/util/adt"
	"github.com/filecoin-project/go-state-audit/support/ipld"
	tutil "github.com/filecoin-project/go-state-audit/support/testing"
)

func TestPowerInvariants(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	policy := builtin.DefaultPolicy()

	t.Run("empty state passes", func(t *testing.T) {
		st, err := power.ConstructState(store)
		require.NoError(t, err)

		summary, acc := power.CheckStateInvariants(st, store, policy)
		assert.True(t, acc.IsEmpty(), "unexpected messages: %v", acc.Messages())
		assert.Empty(t, summary.Claims)
		assert.Empty(t, summary.Crons)
	})

	t.Run("claims accumulate into totals", func(t *testing.T) {
		st, err := power.ConstructState(store)
		require.NoError(t, err)

		miner1 := tutil.NewIDAddr(t, 1000)
		miner2 := tutil.NewIDAddr(t, 1001)

		claims, err := adt.AsMap(store, st.Claims, builtin.DefaultHamtBitwidth)
		require.NoError(t, err)
		require.NoError(t, claims.Put(abi.AddrKey(miner1), &power.Claim{
			RawBytePower:    abi.NewStoragePower(1 << 30),
			QualityAdjPower: abi.NewStoragePower(1 << 30),
		}))
		require.NoError(t, claims.Put(abi.AddrKey(miner2), &power.Claim{
			RawBytePower:    abi.NewStoragePower(1 << 20),
			QualityAdjPower: abi.NewStoragePower(1 << 21),
		}))
		st.Claims, err = claims.Root()
		require.NoError(t, err)

		st.TotalBytesCommitted = abi.NewStoragePower((1 << 30) + (1 << 20))
		st.TotalQABytesCommitted = abi.NewStoragePower((1 << 30) + (1 << 21))
		st.MinerCount = 2

		summary, acc := power.CheckStateInvariants(st, store, policy)
		assert.True(t, acc.IsEmpty(), "unexpected messages: %v", acc.Messages())
		assert.Len(t, summary.Claims, 2)
	})

	t.Run("claim sum mismatch is reported", func(t *testing.T) {
		st, err := power.ConstructState(store)
		require.NoError(t, err)

		miner1 := tutil.NewIDAddr(t, 1000)
		claims, err := adt.AsMap(store, st.Claims, builtin.DefaultHamtBitwidth)
		require.NoError(t, err)
		require.NoError(t, claims.Put(abi.AddrKey(miner1), &power.Claim{
			RawBytePower:    abi.NewStoragePower(1 << 30),
			QualityAdjPower: abi.NewStoragePower(1 << 30),
		}))
		st.Claims, err = claims.Root()
		require.NoError(t, err)
		st.MinerCount = 1
		// totals left at zero

		_, acc := power.CheckStateInvariants(st, store, policy)
		assert.False(t, acc.IsEmpty())
	})

	t.Run("miner above min power counted", func(t *testing.T) {
		st, err := power.ConstructState(store)
		require.NoError(t, err)

		miner1 := tutil.NewIDAddr(t, 1000)
		claims, err := adt.AsMap(store, st.Claims, builtin.DefaultHamtBitwidth)
		require.NoError(t, err)
		require.NoError(t, claims.Put(abi.AddrKey(miner1), &power.Claim{
			RawBytePower:    policy.ConsensusMinerMinPower,
			QualityAdjPower: policy.ConsensusMinerMinPower,
		}))
		st.Claims, err = claims.Root()
		require.NoError(t, err)

		st.TotalBytesCommitted = policy.ConsensusMinerMinPower
		st.TotalQABytesCommitted = policy.ConsensusMinerMinPower
		st.MinerCount = 1
		st.MinerAboveMinPowerCount = 1

		_, acc := power.CheckStateInvariants(st, store, policy)
		assert.True(t, acc.IsEmpty(), "unexpected messages: %v", acc.Messages())
	})

	t.Run("cron events before first cron epoch are reported", func(t *testing.T) {
		st, err := power.ConstructState(store)
		require.NoError(t, err)
		st.FirstCronEpoch = 100

		queue, err := adt.AsMultimap(store, st.CronEventQueue, power.CronQueueHamtBitwidth, power.CronQueueAmtBitwidth)
		require.NoError(t, err)
		require.NoError(t, queue.Add(abi.IntKey(50), &power.CronEvent{
			MinerAddr:       tutil.NewIDAddr(t, 1000),
			CallbackPayload: []byte{1, 2},
		}))
		st.CronEventQueue, err = queue.Root()
		require.NoError(t, err)

		summary, acc := power.CheckStateInvariants(st, store, policy)
		assert.False(t, acc.IsEmpty())
		assert.Len(t, summary.Crons, 1)
	})
}
