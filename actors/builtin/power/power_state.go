package power

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	cid "github.com/ipfs/go-cid"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-state-audit/actors/builtin"
	"github.com/filecoin-project/go-state-audit/actors/util/adt"
)

// Bitwidth of CronEventQueue HAMT determined empirically from mutation
// patterns and projections of mainnet data.
const CronQueueHamtBitwidth = 6

// Bitwidth of CronEventQueue AMT determined empirically from mutation
// patterns and projections of mainnet data.
const CronQueueAmtBitwidth = 6

type State struct {
	TotalRawBytePower abi.StoragePower
	// TotalBytesCommitted includes claims from miners below min power threshold.
	TotalBytesCommitted  abi.StoragePower
	TotalQualityAdjPower abi.StoragePower
	// TotalQABytesCommitted includes claims from miners below min power threshold.
	TotalQABytesCommitted abi.StoragePower
	TotalPledgeCollateral abi.TokenAmount

	MinerCount int64
	// Number of miners having proven the minimum consensus power.
	MinerAboveMinPowerCount int64

	CronEventQueue cid.Cid // Multimap, (HAMT[ChainEpoch]AMT[CronEvent])
	FirstCronEpoch abi.ChainEpoch

	Claims cid.Cid // Map, HAMT[address]Claim
}

type Claim struct {
	// Sum of raw byte power for a miner's sectors.
	RawBytePower abi.StoragePower

	// Sum of quality adjusted power for a miner's sectors.
	QualityAdjPower abi.StoragePower
}

type CronEvent struct {
	MinerAddr       addr.Address
	CallbackPayload []byte
}

func ConstructState(store adt.Store) (*State, error) {
	emptyClaimsMapCid, err := adt.StoreEmptyMap(store, builtin.DefaultHamtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty map: %w", err)
	}
	emptyCronQueueMMapCid, err := adt.StoreEmptyMultimap(store, CronQueueHamtBitwidth, CronQueueAmtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty multimap: %w", err)
	}

	return &State{
		TotalRawBytePower:       abi.NewStoragePower(0),
		TotalBytesCommitted:     abi.NewStoragePower(0),
		TotalQualityAdjPower:    abi.NewStoragePower(0),
		TotalQABytesCommitted:   abi.NewStoragePower(0),
		TotalPledgeCollateral:   abi.NewTokenAmount(0),
		FirstCronEpoch:          0,
		CronEventQueue:          emptyCronQueueMMapCid,
		Claims:                  emptyClaimsMapCid,
		MinerCount:              0,
		MinerAboveMinPowerCount: 0,
	}, nil
}

// Gets the claim for a miner, if it exists.
func (st *State) GetClaim(store adt.Store, a addr.Address) (*Claim, bool, error) {
	claims, err := adt.AsMap(store, st.Claims, builtin.DefaultHamtBitwidth)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load claims: %w", err)
	}

	var out Claim
	found, err := claims.Get(abi.AddrKey(a), &out)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to get claim for address %v: %w", a, err)
	}
	return &out, found, nil
}

func (c *Claim) Zero() bool {
	return c.RawBytePower.IsZero() && c.QualityAdjPower.IsZero()
}
