package builtin

import (
	"github.com/filecoin-project/go-state-types/abi"
)

// Policy bundles the chain-wide protocol parameters consulted by state checks.
// It is passed through the audit unmodified; checks that depend on network
// configuration read it rather than package constants so that trees from
// differently-configured networks can be audited with the right parameters.
type Policy struct {
	// Minimum power of an individual miner to count towards consensus.
	ConsensusMinerMinPower abi.StoragePower

	// The minimum duration a committed sector must be active for.
	MinSectorExpiration abi.ChainEpoch

	// The maximum duration a committed sector may be active for.
	MaxSectorExpirationExtension abi.ChainEpoch

	// Number of epochs after which a chain reorganisation is assumed impossible.
	ChainFinality abi.ChainEpoch
}

// The policy in force on the main network.
func DefaultPolicy() *Policy {
	return &Policy{
		ConsensusMinerMinPower:       abi.NewStoragePower(10 << 40),
		MinSectorExpiration:          180 * EpochsInDay,
		MaxSectorExpirationExtension: 540 * EpochsInDay,
		ChainFinality:                900,
	}
}
