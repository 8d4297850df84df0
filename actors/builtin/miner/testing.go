package miner

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"

	"github.com/filecoin-project/go-state-audit/actors/builtin"
	"github.com/filecoin-project/go-state-audit/actors/util/adt"
)

type DealSummary struct {
	SectorStart      abi.ChainEpoch
	SectorExpiration abi.ChainEpoch
}

type StateSummary struct {
	LivePower   PowerPair
	ActivePower PowerPair
	FaultyPower PowerPair
	SectorSize  abi.SectorSize
	Deals       map[abi.DealID]DealSummary
	SectorCount uint64
	FaultCount  uint64
}

// Checks internal invariants of miner state.
func CheckStateInvariants(st *State, store adt.Store, policy *builtin.Policy, balance abi.TokenAmount) (*StateSummary, *builtin.MessageAccumulator) {
	acc := &builtin.MessageAccumulator{}
	minerSummary := &StateSummary{
		LivePower:   NewPowerPairZero(),
		ActivePower: NewPowerPairZero(),
		FaultyPower: NewPowerPairZero(),
		SectorSize:  0,
		Deals:       map[abi.DealID]DealSummary{},
	}

	// Load data from linked structures.
	info, err := st.GetInfo(store)
	if err != nil {
		acc.Addf("error loading miner info: %v", err)
		// Stop here, it's too hard to make other useful checks.
		return minerSummary, acc
	}
	minerSummary.SectorSize = info.SectorSize
	CheckMinerInfo(info, acc)

	CheckMinerBalances(st, balance, acc)

	// Check sectors.
	pledgeSum := big.Zero()
	allSectors := map[abi.SectorNumber]*SectorOnChainInfo{}
	if sectorsArr, err := adt.AsArray(store, st.Sectors, SectorsAmtBitwidth); err != nil {
		acc.Addf("error loading sectors: %v", err)
	} else {
		var sector SectorOnChainInfo
		err = sectorsArr.ForEach(&sector, func(sno int64) error {
			acc := acc.WithPrefix("sector %d: ", sno) // Intentional shadow

			cpy := sector
			allSectors[abi.SectorNumber(sno)] = &cpy

			acc.Require(uint64(sector.SectorNumber) == uint64(sno),
				"sector number %d does not match array index", sector.SectorNumber)
			acc.Require(sector.Activation < sector.Expiration,
				"expiration %d not after activation %d", sector.Expiration, sector.Activation)

			duration := sector.Expiration - sector.Activation
			acc.Require(duration >= policy.MinSectorExpiration,
				"sector duration %d less than min sector expiration %d", duration, policy.MinSectorExpiration)
			acc.Require(duration <= policy.MaxSectorExpirationExtension,
				"sector duration %d greater than max sector expiration extension %d", duration, policy.MaxSectorExpirationExtension)

			acc.Require(sector.InitialPledge.GreaterThanEqual(big.Zero()),
				"sector initial pledge %v is negative", sector.InitialPledge)
			pledgeSum = big.Add(pledgeSum, sector.InitialPledge)

			for _, dealID := range sector.DealIDs {
				minerSummary.Deals[dealID] = DealSummary{
					SectorStart:      sector.Activation,
					SectorExpiration: sector.Expiration,
				}
			}

			minerSummary.LivePower = minerSummary.LivePower.Add(PowerForSector(info.SectorSize))
			minerSummary.SectorCount++
			return nil
		})
		acc.RequireNoError(err, "error iterating sectors")
	}

	acc.Require(st.InitialPledge.Equals(pledgeSum),
		"sum of sector initial pledges %v does not match recorded initial pledge %v", pledgeSum, st.InitialPledge)

	// Check faults are a subset of proven sectors.
	if err := st.Faults.ForEach(func(sno uint64) error {
		_, found := allSectors[abi.SectorNumber(sno)]
		acc.Require(found, "faulty sector %d not among proven sectors", sno)
		if found {
			minerSummary.FaultyPower = minerSummary.FaultyPower.Add(PowerForSector(info.SectorSize))
			minerSummary.FaultCount++
		}
		return nil
	}); err != nil {
		acc.Addf("error expanding fault bitfield: %v", err)
	}

	minerSummary.ActivePower = minerSummary.LivePower.Sub(minerSummary.FaultyPower)
	return minerSummary, acc
}

func CheckMinerInfo(info *MinerInfo, acc *builtin.MessageAccumulator) {
	acc.Require(info.Owner.Protocol() == address.ID, "owner address %v is not an ID address", info.Owner)
	acc.Require(info.Worker.Protocol() == address.ID, "worker address %v is not an ID address", info.Worker)
	acc.Require(info.SectorSize > 0, "sector size %d is not positive", info.SectorSize)
}

func CheckMinerBalances(st *State, balance abi.TokenAmount, acc *builtin.MessageAccumulator) {
	acc.Require(balance.GreaterThanEqual(big.Zero()), "balance is less than zero: %v", balance)
	acc.Require(st.LockedFunds.GreaterThanEqual(big.Zero()), "locked funds is less than zero: %v", st.LockedFunds)
	acc.Require(st.PreCommitDeposits.GreaterThanEqual(big.Zero()), "pre-commit deposit is less than zero: %v", st.PreCommitDeposits)
	acc.Require(st.InitialPledge.GreaterThanEqual(big.Zero()), "initial pledge is less than zero: %v", st.InitialPledge)

	unlockable := big.Sum(st.LockedFunds, st.PreCommitDeposits, st.InitialPledge)
	acc.Require(balance.GreaterThanEqual(unlockable),
		"balance %v below sum of locked funds, pre-commit deposit and initial pledge %v", balance, unlockable)
}
