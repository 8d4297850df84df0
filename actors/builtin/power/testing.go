package power

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"

	"github.com/filecoin-project/go-state-audit/actors/builtin"
	"github.com/filecoin-project/go-state-audit/actors/util/adt"
)

type MinerCronEvent struct {
	Epoch   abi.ChainEpoch
	Payload []byte
}

type CronEventsByAddress map[address.Address][]MinerCronEvent
type ClaimsByAddress map[address.Address]Claim

type StateSummary struct {
	Crons  CronEventsByAddress
	Claims ClaimsByAddress
}

// Checks internal invariants of power state.
func CheckStateInvariants(st *State, store adt.Store, policy *builtin.Policy) (*StateSummary, *builtin.MessageAccumulator) {
	acc := &builtin.MessageAccumulator{}

	// basic invariants around recorded power
	acc.Require(st.TotalRawBytePower.GreaterThanEqual(big.Zero()), "total raw power is negative %v", st.TotalRawBytePower)
	acc.Require(st.TotalQualityAdjPower.GreaterThanEqual(big.Zero()), "total qa power is negative %v", st.TotalQualityAdjPower)
	acc.Require(st.TotalBytesCommitted.GreaterThanEqual(big.Zero()), "total raw power committed is negative %v", st.TotalBytesCommitted)
	acc.Require(st.TotalQABytesCommitted.GreaterThanEqual(big.Zero()), "total qa power committed is negative %v", st.TotalQABytesCommitted)
	acc.Require(st.TotalPledgeCollateral.GreaterThanEqual(big.Zero()), "total pledge is negative %v", st.TotalPledgeCollateral)

	acc.Require(st.TotalRawBytePower.LessThanEqual(st.TotalQualityAdjPower),
		"total raw power %v is greater than total quality adjusted power %v", st.TotalRawBytePower, st.TotalQualityAdjPower)
	acc.Require(st.TotalBytesCommitted.LessThanEqual(st.TotalQABytesCommitted),
		"committed raw power %v is greater than committed quality adjusted power %v", st.TotalBytesCommitted, st.TotalQABytesCommitted)
	acc.Require(st.TotalRawBytePower.LessThanEqual(st.TotalBytesCommitted),
		"total raw power %v is greater than raw power committed %v", st.TotalRawBytePower, st.TotalBytesCommitted)
	acc.Require(st.TotalQualityAdjPower.LessThanEqual(st.TotalQABytesCommitted),
		"total qa power %v is greater than qa power committed %v", st.TotalQualityAdjPower, st.TotalQABytesCommitted)

	crons := CheckCronInvariants(st, store, acc)
	claims := CheckClaimInvariants(st, store, policy, acc)

	return &StateSummary{
		Crons:  crons,
		Claims: claims,
	}, acc
}

func CheckCronInvariants(st *State, store adt.Store, acc *builtin.MessageAccumulator) CronEventsByAddress {
	byAddress := make(CronEventsByAddress)
	queue, err := adt.AsMultimap(store, st.CronEventQueue, CronQueueHamtBitwidth, CronQueueAmtBitwidth)
	if err != nil {
		acc.Addf("error loading cron event queue: %v", err)
		// Bail here.
		return byAddress
	}

	err = queue.ForAll(func(ekey string, arr *adt.Array) error {
		epoch, err := abi.ParseIntKey(ekey)
		acc.Require(err == nil, "non-int key in cron array")
		if err != nil {
			return nil // error noted above
		}

		acc.Require(abi.ChainEpoch(epoch) >= st.FirstCronEpoch, "cron event at epoch %d before FirstCronEpoch %d",
			epoch, st.FirstCronEpoch)

		var event CronEvent
		return arr.ForEach(&event, func(i int64) error {
			acc.Require(event.MinerAddr.Protocol() == address.ID,
				"cron event miner address %v is not an ID address", event.MinerAddr)
			byAddress[event.MinerAddr] = append(byAddress[event.MinerAddr], MinerCronEvent{
				Epoch:   abi.ChainEpoch(epoch),
				Payload: event.CallbackPayload,
			})

			return nil
		})
	})
	acc.RequireNoError(err, "error iterating cron tasks")
	return byAddress
}

func CheckClaimInvariants(st *State, store adt.Store, policy *builtin.Policy, acc *builtin.MessageAccumulator) ClaimsByAddress {
	byAddress := make(ClaimsByAddress)
	claims, err := adt.AsMap(store, st.Claims, builtin.DefaultHamtBitwidth)
	if err != nil {
		acc.Addf("error loading power claims: %v", err)
		// Bail here
		return byAddress
	}

	committedRawPower := abi.NewStoragePower(0)
	committedQAPower := abi.NewStoragePower(0)
	claimsWithSufficientPowerCount := int64(0)
	var claim Claim
	err = claims.ForEach(&claim, func(key string) error {
		addr, err := address.NewFromBytes([]byte(key))
		if err != nil {
			return err
		}
		byAddress[addr] = claim

		acc.Require(claim.RawBytePower.GreaterThanEqual(big.Zero()), "miner %v claim raw power is negative %v", addr, claim.RawBytePower)
		acc.Require(claim.QualityAdjPower.GreaterThanEqual(big.Zero()), "miner %v claim qa power is negative %v", addr, claim.QualityAdjPower)

		committedRawPower = big.Add(committedRawPower, claim.RawBytePower)
		committedQAPower = big.Add(committedQAPower, claim.QualityAdjPower)

		if claim.RawBytePower.GreaterThanEqual(policy.ConsensusMinerMinPower) {
			claimsWithSufficientPowerCount += 1
		}
		return nil
	})
	acc.RequireNoError(err, "error iterating power claims")

	acc.Require(int64(len(byAddress)) == st.MinerCount,
		"claim count %d does not match recorded miner count %d", len(byAddress), st.MinerCount)
	acc.Require(claimsWithSufficientPowerCount == st.MinerAboveMinPowerCount,
		"claims with sufficient power %d does not match MinerAboveMinPowerCount %d",
		claimsWithSufficientPowerCount, st.MinerAboveMinPowerCount)

	acc.Require(st.TotalBytesCommitted.Equals(committedRawPower),
		"sum of raw power in claims %v does not match recorded bytes committed %v", committedRawPower, st.TotalBytesCommitted)
	acc.Require(st.TotalQABytesCommitted.Equals(committedQAPower),
		"sum of qa power in claims %v does not match recorded qa power committed %v", committedQAPower, st.TotalQABytesCommitted)

	return byAddress
}
