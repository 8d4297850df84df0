package market

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"

	"github.com/filecoin-project/go-state-audit/actors/builtin"
	"github.com/filecoin-project/go-state-audit/actors/util/adt"
)

type DealSummary struct {
	Provider address.Address
	Client   address.Address

	StartEpoch       abi.ChainEpoch
	EndEpoch         abi.ChainEpoch
	SectorStartEpoch abi.ChainEpoch
	LastUpdatedEpoch abi.ChainEpoch
	SlashEpoch       abi.ChainEpoch
}

type StateSummary struct {
	Deals          map[abi.DealID]*DealSummary
	ProposalCount  uint64
	DealStateCount uint64
}

// Checks internal invariants of market state.
func CheckStateInvariants(st *State, store adt.Store, balance abi.TokenAmount, currEpoch abi.ChainEpoch) (*StateSummary, *builtin.MessageAccumulator) {
	acc := &builtin.MessageAccumulator{}

	acc.Require(
		st.TotalClientLockedCollateral.GreaterThanEqual(big.Zero()),
		"negative total client locked collateral: %v", st.TotalClientLockedCollateral)

	acc.Require(
		st.TotalProviderLockedCollateral.GreaterThanEqual(big.Zero()),
		"negative total provider locked collateral: %v", st.TotalProviderLockedCollateral)

	acc.Require(
		st.TotalClientStorageFee.GreaterThanEqual(big.Zero()),
		"negative total client storage fee: %v", st.TotalClientStorageFee)

	//
	// Proposals
	//

	proposalStats := make(map[abi.DealID]*DealSummary)
	maxDealID := int64(-1)
	proposalCount := uint64(0)

	if proposals, err := adt.AsArray(store, st.Proposals, ProposalsAmtBitwidth); err != nil {
		acc.Addf("error loading proposals: %v", err)
	} else {
		var proposal DealProposal
		err = proposals.ForEach(&proposal, func(dealID int64) error {
			acc.Require(proposal.Client.Protocol() == address.ID,
				"deal %d client address %v is not an ID address", dealID, proposal.Client)
			acc.Require(proposal.Provider.Protocol() == address.ID,
				"deal %d provider address %v is not an ID address", dealID, proposal.Provider)
			acc.Require(proposal.PieceSize > 0, "deal %d piece size is not positive", dealID)
			acc.Require(proposal.EndEpoch > proposal.StartEpoch,
				"deal %d end epoch %d not after start epoch %d", dealID, proposal.EndEpoch, proposal.StartEpoch)
			acc.Require(abi.DealID(dealID) < st.NextID, "deal %d exceeds next deal id %d", dealID, st.NextID)

			proposalStats[abi.DealID(dealID)] = &DealSummary{
				Provider:         proposal.Provider,
				Client:           proposal.Client,
				StartEpoch:       proposal.StartEpoch,
				EndEpoch:         proposal.EndEpoch,
				SectorStartEpoch: EpochUndefined,
				LastUpdatedEpoch: EpochUndefined,
				SlashEpoch:       EpochUndefined,
			}

			if dealID > maxDealID {
				maxDealID = dealID
			}
			proposalCount++
			return nil
		})
		acc.RequireNoError(err, "error iterating proposals")
	}

	//
	// Deal states
	//

	dealStateCount := uint64(0)
	if dealStates, err := adt.AsArray(store, st.States, StatesAmtBitwidth); err != nil {
		acc.Addf("error loading deal states: %v", err)
	} else {
		var dealState DealState
		err = dealStates.ForEach(&dealState, func(dealID int64) error {
			acc.Require(dealState.SectorStartEpoch >= 0, "deal %d state start epoch undefined: %v", dealID, dealState)

			stats, found := proposalStats[abi.DealID(dealID)]
			acc.Require(found, "deal %d state has no corresponding proposal", dealID)
			if found {
				acc.Require(dealState.LastUpdatedEpoch == EpochUndefined || dealState.LastUpdatedEpoch >= dealState.SectorStartEpoch,
					"deal %d state last updated at %d before sector start %d", dealID, dealState.LastUpdatedEpoch, dealState.SectorStartEpoch)
				acc.Require(dealState.LastUpdatedEpoch == EpochUndefined || dealState.LastUpdatedEpoch <= currEpoch,
					"deal %d last updated epoch %d after current %d", dealID, dealState.LastUpdatedEpoch, currEpoch)
				acc.Require(dealState.SlashEpoch == EpochUndefined || dealState.SlashEpoch >= dealState.SectorStartEpoch,
					"deal %d state slashed at %d before sector start %d", dealID, dealState.SlashEpoch, dealState.SectorStartEpoch)
				acc.Require(dealState.SlashEpoch == EpochUndefined || dealState.SlashEpoch <= currEpoch,
					"deal %d state slashed at %d after current %d", dealID, dealState.SlashEpoch, currEpoch)

				stats.SectorStartEpoch = dealState.SectorStartEpoch
				stats.LastUpdatedEpoch = dealState.LastUpdatedEpoch
				stats.SlashEpoch = dealState.SlashEpoch
			}

			dealStateCount++
			return nil
		})
		acc.RequireNoError(err, "error iterating deal states")
	}

	acc.Require(maxDealID < int64(st.NextID), "next id, %d, is not greater than all deal ids", st.NextID)

	//
	// Escrow and locked tables
	//

	lockedTotal := big.Sum(st.TotalClientLockedCollateral, st.TotalProviderLockedCollateral, st.TotalClientStorageFee)

	if escrowTable, err := adt.AsBalanceTable(store, st.EscrowTable); err != nil {
		acc.Addf("error loading escrow table: %v", err)
	} else if lockedTable, err := adt.AsBalanceTable(store, st.LockedTable); err != nil {
		acc.Addf("error loading locked table: %v", err)
	} else {
		escrowTotal, err := escrowTable.Total()
		if err != nil {
			acc.Addf("error totalling escrow table: %v", err)
			return &StateSummary{Deals: proposalStats, ProposalCount: proposalCount, DealStateCount: dealStateCount}, acc
		}
		lockedTableTotal, err := lockedTable.Total()
		if err != nil {
			acc.Addf("error totalling locked table: %v", err)
			return &StateSummary{Deals: proposalStats, ProposalCount: proposalCount, DealStateCount: dealStateCount}, acc
		}

		acc.Require(balance.GreaterThanEqual(escrowTotal),
			"escrow total %v exceeds actor balance %v", escrowTotal, balance)
		acc.Require(escrowTotal.GreaterThanEqual(lockedTableTotal),
			"escrow total %v less than locked table total %v", escrowTotal, lockedTableTotal)
		acc.Require(lockedTotal.Equals(lockedTableTotal),
			"locked collateral totals %v do not match locked table total %v", lockedTotal, lockedTableTotal)
	}

	return &StateSummary{
		Deals:          proposalStats,
		ProposalCount:  proposalCount,
		DealStateCount: dealStateCount,
	}, acc
}
