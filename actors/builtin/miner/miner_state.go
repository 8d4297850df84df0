package miner

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-bitfield"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	cid "github.com/ipfs/go-cid"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-state-audit/actors/util/adt"
)

// Bitwidth of AMTs carrying sector infos.
const SectorsAmtBitwidth = 5

// Balance of Miner Actor should be greater than or equal to
// the sum of PreCommitDeposits and LockedFunds.
// It is possible for balance to fall below the sum of
// PCD, LF and InitialPledgeRequirements, and this is a bad
// state (IP Debt) that limits a miner actor's behavior (i.e. no balance withdrawals)
type State struct {
	// Information not related to sectors.
	Info cid.Cid

	PreCommitDeposits abi.TokenAmount // Total funds locked as pre-commit deposits
	LockedFunds       abi.TokenAmount // Total rewards and added funds locked in vesting table
	InitialPledge     abi.TokenAmount // Sum of initial pledge requirements of all active sectors

	// Sectors that have been proven, keyed by sector number.
	Sectors cid.Cid // Array, AMT[SectorNumber]SectorOnChainInfo (sparse)

	// Sectors currently considered faulty. A subset of the proven sectors.
	Faults bitfield.BitField
}

type MinerInfo struct {
	// Account that owns this miner, receiving fund withdrawals and terminal rewards.
	Owner addr.Address // Must be an ID-address.

	// Account used to sign operational transactions, e.g. proofs.
	Worker addr.Address // Must be an ID-address.

	// Amount of space in each sector committed by this miner.
	SectorSize abi.SectorSize

	// The proof type used for Window PoSt for this miner.
	WindowPoStProofType abi.RegisteredPoStProof
}

// Information stored on-chain for a proven sector.
type SectorOnChainInfo struct {
	SectorNumber  abi.SectorNumber
	SealProof     abi.RegisteredSealProof // The seal proof type implies the PoSt proof
	Activation    abi.ChainEpoch          // Epoch during which the sector proof was accepted
	Expiration    abi.ChainEpoch          // Epoch during which the sector expires
	DealIDs       []abi.DealID
	InitialPledge abi.TokenAmount // Pledge collected to commit this sector
}

func ConstructState(store adt.Store, infoCid cid.Cid) (*State, error) {
	emptySectorsArrayCid, err := adt.StoreEmptyArray(store, SectorsAmtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to construct empty sectors array: %w", err)
	}

	return &State{
		Info: infoCid,

		PreCommitDeposits: abi.NewTokenAmount(0),
		LockedFunds:       abi.NewTokenAmount(0),
		InitialPledge:     abi.NewTokenAmount(0),

		Sectors: emptySectorsArrayCid,
		Faults:  bitfield.New(),
	}, nil
}

func (st *State) GetInfo(store adt.Store) (*MinerInfo, error) {
	var info MinerInfo
	if err := store.Get(store.Context(), st.Info, &info); err != nil {
		return nil, xerrors.Errorf("failed to get miner info %w", err)
	}
	return &info, nil
}

// A set of raw/QA power pairs.
type PowerPair struct {
	Raw abi.StoragePower
	QA  abi.StoragePower
}

func NewPowerPairZero() PowerPair {
	return NewPowerPair(big.Zero(), big.Zero())
}

func NewPowerPair(raw, qa abi.StoragePower) PowerPair {
	return PowerPair{Raw: raw, QA: qa}
}

func (pp PowerPair) Add(other PowerPair) PowerPair {
	return PowerPair{
		Raw: big.Add(pp.Raw, other.Raw),
		QA:  big.Add(pp.QA, other.QA),
	}
}

func (pp PowerPair) Sub(other PowerPair) PowerPair {
	return PowerPair{
		Raw: big.Sub(pp.Raw, other.Raw),
		QA:  big.Sub(pp.QA, other.QA),
	}
}

func (pp PowerPair) IsZero() bool {
	return pp.Raw.IsZero() && pp.QA.IsZero()
}

func (pp PowerPair) Equals(other PowerPair) bool {
	return pp.Raw.Equals(other.Raw) && pp.QA.Equals(other.QA)
}

// The power for a sector of the given size.
// With no deal weighting in this model, quality-adjusted power equals raw power.
func PowerForSector(sectorSize abi.SectorSize) PowerPair {
	size := big.NewIntUnsigned(uint64(sectorSize))
	return PowerPair{
		Raw: size,
		QA:  size,
	}
}
