package states

import (
	"fmt"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/ipfs/go-cid"

	"github.com/filecoin-project/go-state-audit/actors/builtin"
	"github.com/filecoin-project/go-state-audit/actors/builtin/account"
	"github.com/filecoin-project/go-state-audit/actors/builtin/cron"
	init_ "github.com/filecoin-project/go-state-audit/actors/builtin/init"
	"github.com/filecoin-project/go-state-audit/actors/builtin/market"
	"github.com/filecoin-project/go-state-audit/actors/builtin/miner"
	"github.com/filecoin-project/go-state-audit/actors/builtin/multisig"
	"github.com/filecoin-project/go-state-audit/actors/builtin/paych"
	"github.com/filecoin-project/go-state-audit/actors/builtin/power"
	"github.com/filecoin-project/go-state-audit/actors/builtin/reward"
	"github.com/filecoin-project/go-state-audit/actors/builtin/verifreg"
)

// Returned when the state tree references a code CID absent from the manifest.
// The audit cannot classify such an actor and aborts rather than guess.
type UnknownCodeError struct {
	Address addr.Address
	Code    cid.Cid
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("unexpected actor code CID %v for address %v", e.Code, e.Address)
}

// Within this code, Go errors are not expected, but are often converted to messages so that execution
// can continue to find more errors rather than fail with no insight.
// Only errors that are particularly troublesome to recover from should propagate as Go errors.
func CheckStateInvariants(manifest *builtin.Manifest, policy *builtin.Policy, tree *Tree, expectedBalanceTotal abi.TokenAmount, priorEpoch abi.ChainEpoch) (*builtin.MessageAccumulator, error) {
	acc := &builtin.MessageAccumulator{}
	totalFIl := big.Zero()
	var initSummary *init_.StateSummary
	var cronSummary *cron.StateSummary
	var verifregSummary *verifreg.StateSummary
	var marketSummary *market.StateSummary
	var rewardSummary *reward.StateSummary
	var accountSummaries []*account.StateSummary
	var powerSummary *power.StateSummary
	var paychSummaries []*paych.StateSummary
	var multisigSummaries []*multisig.StateSummary
	minerSummaries := make(map[addr.Address]*miner.StateSummary)

	if err := tree.ForEach(func(key addr.Address, actor *Actor) error {
		acc := acc.WithPrefix("%v ", key) // Intentional shadow
		if key.Protocol() != addr.ID {
			acc.Addf("unexpected address protocol in state tree root: %v", key)
		}
		totalFIl = big.Add(totalFIl, actor.Balance)

		actorType, ok := manifest.Lookup(actor.Code)
		if !ok {
			return &UnknownCodeError{Address: key, Code: actor.Code}
		}

		switch actorType {
		case builtin.TypeSystem:

		case builtin.TypeInit:
			var st init_.State
			if err := tree.Store.Get(tree.Store.Context(), actor.Head, &st); err != nil {
				return err
			}
			summary, msgs := init_.CheckStateInvariants(&st, tree.Store)
			acc.WithPrefix("init: ").AddAll(msgs)
			acc.Require(initSummary == nil, "duplicate init actor")
			if initSummary == nil {
				initSummary = summary
			}
		case builtin.TypeCron:
			var st cron.State
			if err := tree.Store.Get(tree.Store.Context(), actor.Head, &st); err != nil {
				return err
			}
			summary, msgs := cron.CheckStateInvariants(&st)
			acc.WithPrefix("cron: ").AddAll(msgs)
			acc.Require(cronSummary == nil, "duplicate cron actor")
			if cronSummary == nil {
				cronSummary = summary
			}
		case builtin.TypeAccount:
			var st account.State
			if err := tree.Store.Get(tree.Store.Context(), actor.Head, &st); err != nil {
				return err
			}
			summary, msgs := account.CheckStateInvariants(&st, key)
			acc.WithPrefix("account: ").AddAll(msgs)
			accountSummaries = append(accountSummaries, summary)
		case builtin.TypePower:
			var st power.State
			if err := tree.Store.Get(tree.Store.Context(), actor.Head, &st); err != nil {
				return err
			}
			summary, msgs := power.CheckStateInvariants(&st, tree.Store, policy)
			acc.WithPrefix("power: ").AddAll(msgs)
			acc.Require(powerSummary == nil, "duplicate storage power actor")
			if powerSummary == nil {
				powerSummary = summary
			}
		case builtin.TypeMiner:
			var st miner.State
			if err := tree.Store.Get(tree.Store.Context(), actor.Head, &st); err != nil {
				return err
			}
			summary, msgs := miner.CheckStateInvariants(&st, tree.Store, policy, actor.Balance)
			acc.WithPrefix("miner: ").AddAll(msgs)
			minerSummaries[key] = summary
		case builtin.TypeMarket:
			var st market.State
			if err := tree.Store.Get(tree.Store.Context(), actor.Head, &st); err != nil {
				return err
			}
			summary, msgs := market.CheckStateInvariants(&st, tree.Store, actor.Balance, priorEpoch)
			acc.WithPrefix("market: ").AddAll(msgs)
			acc.Require(marketSummary == nil, "duplicate storage market actor")
			if marketSummary == nil {
				marketSummary = summary
			}
		case builtin.TypePaymentChannel:
			var st paych.State
			if err := tree.Store.Get(tree.Store.Context(), actor.Head, &st); err != nil {
				return err
			}
			summary, msgs := paych.CheckStateInvariants(&st, tree.Store, actor.Balance)
			acc.WithPrefix("paych: ").AddAll(msgs)
			paychSummaries = append(paychSummaries, summary)
		case builtin.TypeMultisig:
			var st multisig.State
			if err := tree.Store.Get(tree.Store.Context(), actor.Head, &st); err != nil {
				return err
			}
			summary, msgs := multisig.CheckStateInvariants(&st, tree.Store)
			acc.WithPrefix("multisig: ").AddAll(msgs)
			multisigSummaries = append(multisigSummaries, summary)
		case builtin.TypeReward:
			var st reward.State
			if err := tree.Store.Get(tree.Store.Context(), actor.Head, &st); err != nil {
				return err
			}
			summary, msgs := reward.CheckStateInvariants(&st, tree.Store, priorEpoch, actor.Balance)
			acc.WithPrefix("reward: ").AddAll(msgs)
			acc.Require(rewardSummary == nil, "duplicate reward actor")
			if rewardSummary == nil {
				rewardSummary = summary
			}
		case builtin.TypeVerifiedRegistry:
			var st verifreg.State
			if err := tree.Store.Get(tree.Store.Context(), actor.Head, &st); err != nil {
				return err
			}
			summary, msgs := verifreg.CheckStateInvariants(&st, tree.Store)
			acc.WithPrefix("verifreg: ").AddAll(msgs)
			acc.Require(verifregSummary == nil, "duplicate verified registry actor")
			if verifregSummary == nil {
				verifregSummary = summary
			}
		default:
			return &UnknownCodeError{Address: key, Code: actor.Code}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	//
	// Perform cross-actor checks from state summaries here.
	//

	CheckMinersAgainstPower(acc, minerSummaries, powerSummary)
	CheckDealStatesAgainstSectors(acc, minerSummaries, marketSummary)

	_ = initSummary
	_ = verifregSummary
	_ = cronSummary
	_ = rewardSummary

	if !totalFIl.Equals(expectedBalanceTotal) {
		acc.Addf("total token balance is %v, expected %v", totalFIl, expectedBalanceTotal)
	}

	return acc, nil
}

func CheckMinersAgainstPower(acc *builtin.MessageAccumulator, minerSummaries map[addr.Address]*miner.StateSummary, powerSummary *power.StateSummary) {
	if powerSummary == nil {
		acc.Require(len(minerSummaries) == 0, "miners present with no power actor")
		return
	}

	for mAddr, minerSummary := range minerSummaries { // nolint:nomaprange
		// check claim
		claim, ok := powerSummary.Claims[mAddr]
		acc.Require(ok, "miner %v has no power claim", mAddr)
		if ok {
			claimPower := miner.NewPowerPair(claim.RawBytePower, claim.QualityAdjPower)
			acc.Require(minerSummary.ActivePower.Equals(claimPower),
				"miner %v computed active power %v does not match claim %v", mAddr, minerSummary.ActivePower, claimPower)
		}

	}

	// every claim belongs to a miner in the tree
	for cAddr := range powerSummary.Claims { // nolint:nomaprange
		_, found := minerSummaries[cAddr]
		acc.Require(found, "claim for address %v not found among miners", cAddr)
	}

	// cron events may only be registered by miners
	for cAddr := range powerSummary.Crons { // nolint:nomaprange
		_, found := minerSummaries[cAddr]
		acc.Require(found, "cron event registered for address %v not found among miners", cAddr)
	}
}

func CheckDealStatesAgainstSectors(acc *builtin.MessageAccumulator, minerSummaries map[addr.Address]*miner.StateSummary, marketSummary *market.StateSummary) {
	if marketSummary == nil {
		return
	}

	// Check that all active deals are included within a non-terminated sector.
	// We cannot check that all deals referenced within a sector are in the market, because deals
	// can be terminated independently of the sector in which they are included.
	for dealID, deal := range marketSummary.Deals { // nolint:nomaprange
		if deal.SectorStartEpoch == market.EpochUndefined {
			// deal hasn't been activated yet, make no assertions about sector state
			continue
		}

		minerSummary, found := minerSummaries[deal.Provider]
		if !found {
			acc.Addf("provider %v for deal %d not found among miners", deal.Provider, dealID)
			continue
		}

		sectorDeal, found := minerSummary.Deals[dealID]
		if !found {
			acc.Require(deal.SlashEpoch >= 0, "un-slashed deal %d not referenced in active sectors of miner %v", dealID, deal.Provider)
			continue
		}

		acc.Require(deal.SectorStartEpoch == sectorDeal.SectorStart,
			"deal state start %d does not match sector start %d for miner %v",
			deal.SectorStartEpoch, sectorDeal.SectorStart, deal.Provider)

		acc.Require(deal.SectorStartEpoch <= sectorDeal.SectorExpiration,
			"deal state start %d activated after sector expiration %d for miner %v",
			deal.SectorStartEpoch, sectorDeal.SectorExpiration, deal.Provider)

		acc.Require(deal.LastUpdatedEpoch <= sectorDeal.SectorExpiration,
			"deal state update at %d after sector expiration %d for miner %v",
			deal.LastUpdatedEpoch, sectorDeal.SectorExpiration, deal.Provider)

		acc.Require(deal.SlashEpoch <= sectorDeal.SectorExpiration,
			"deal state slashed at %d after sector expiration %d for miner %v",
			deal.SlashEpoch, sectorDeal.SectorExpiration, deal.Provider)
	}
}
