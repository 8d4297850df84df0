package states_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	address "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/ipfs/go-cid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xorcare/golden"

	"github.com/filecoin-project/go-state-audit/actors/builtin"
	"github.com/filecoin-project/go-state-audit/actors/builtin/account"
	"github.com/filecoin-project/go-state-audit/actors/builtin/cron"
	"github.com/filecoin-project/go-state-audit/actors/builtin/system"
	"github.com/filecoin-project/go-state-audit/actors/states"
	"github.com/filecoin-project/go-state-audit/actors/util/adt"
	"github.com/filecoin-project/go-state-audit/support/ipld"
	tutil "github.com/filecoin-project/go-state-audit/support/testing"
)

func makeTestManifest(t *testing.T) *builtin.Manifest {
	codes := map[cid.Cid]builtin.Type{
		builtin.MakeCodeCID("fil/7/system"):           builtin.TypeSystem,
		builtin.MakeCodeCID("fil/7/init"):             builtin.TypeInit,
		builtin.MakeCodeCID("fil/7/cron"):             builtin.TypeCron,
		builtin.MakeCodeCID("fil/7/account"):          builtin.TypeAccount,
		builtin.MakeCodeCID("fil/7/storagepower"):     builtin.TypePower,
		builtin.MakeCodeCID("fil/7/storageminer"):     builtin.TypeMiner,
		builtin.MakeCodeCID("fil/7/storagemarket"):    builtin.TypeMarket,
		builtin.MakeCodeCID("fil/7/paymentchannel"):   builtin.TypePaymentChannel,
		builtin.MakeCodeCID("fil/7/multisig"):         builtin.TypeMultisig,
		builtin.MakeCodeCID("fil/7/reward"):           builtin.TypeReward,
		builtin.MakeCodeCID("fil/7/verifiedregistry"): builtin.TypeVerifiedRegistry,
	}
	m := builtin.MakeManifest(codes)
	require.Equal(t, len(codes), m.Len())
	return m
}

// Stores an actor state and adds the actor to the tree under its code CID.
func setActor(t *testing.T, tree *states.Tree, a address.Address, codeName string, st cbor.Marshaler, balance abi.TokenAmount) {
	head, err := tree.Store.Put(tree.Store.Context(), st)
	require.NoError(t, err)
	require.NoError(t, tree.SetActor(a, &states.Actor{
		Code:    builtin.MakeCodeCID(codeName),
		Head:    head,
		Balance: balance,
	}))
}

func emptyTree(t *testing.T) (*states.Tree, adt.Store) {
	store := ipld.NewADTStore(context.Background())
	tree, err := states.NewTree(store)
	require.NoError(t, err)
	return tree, store
}

func TestCheckAccountsAndBalances(t *testing.T) {
	tree, _ := emptyTree(t)
	manifest := makeTestManifest(t)
	policy := builtin.DefaultPolicy()

	setActor(t, tree, builtin.SystemActorAddr, "fil/7/system", system.ConstructState(), big.Zero())
	setActor(t, tree, tutil.NewIDAddr(t, 100), "fil/7/account",
		account.ConstructState(tutil.NewSECP256K1Addr(t, "100")), big.NewInt(5))
	setActor(t, tree, tutil.NewIDAddr(t, 101), "fil/7/account",
		account.ConstructState(tutil.NewBLSAddr(t, 101)), big.NewInt(3))

	t.Run("clean tree produces no messages", func(t *testing.T) {
		acc, err := states.CheckStateInvariants(manifest, policy, tree, big.NewInt(8), abi.ChainEpoch(10))
		require.NoError(t, err)
		assert.True(t, acc.IsEmpty(), "unexpected messages: %v", acc.Messages())
	})

	t.Run("balance total mismatch is a single message", func(t *testing.T) {
		acc, err := states.CheckStateInvariants(manifest, policy, tree, big.NewInt(9), abi.ChainEpoch(10))
		require.NoError(t, err)
		require.Len(t, acc.Messages(), 1)
		assert.Contains(t, acc.Messages()[0], "total token balance is 8, expected 9")
	})

	t.Run("repeated audits are identical", func(t *testing.T) {
		acc1, err := states.CheckStateInvariants(manifest, policy, tree, big.NewInt(9), abi.ChainEpoch(10))
		require.NoError(t, err)
		acc2, err := states.CheckStateInvariants(manifest, policy, tree, big.NewInt(9), abi.ChainEpoch(10))
		require.NoError(t, err)
		assert.Equal(t, acc1.Messages(), acc2.Messages())
	})
}

func TestCheckUnknownCode(t *testing.T) {
	tree, _ := emptyTree(t)
	manifest := makeTestManifest(t)
	policy := builtin.DefaultPolicy()

	setActor(t, tree, builtin.SystemActorAddr, "fil/7/system", system.ConstructState(), big.Zero())
	badAddr := tutil.NewIDAddr(t, 100)
	setActor(t, tree, badAddr, "fil/7/bogus", system.ConstructState(), big.Zero())

	_, err := states.CheckStateInvariants(manifest, policy, tree, big.Zero(), abi.ChainEpoch(10))
	require.Error(t, err)

	var unknown *states.UnknownCodeError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, badAddr, unknown.Address)
	assert.Equal(t, builtin.MakeCodeCID("fil/7/bogus"), unknown.Code)
	assert.Contains(t, err.Error(), fmt.Sprintf("%v", badAddr))
	assert.Contains(t, err.Error(), fmt.Sprintf("%v", builtin.MakeCodeCID("fil/7/bogus")))
}

func TestCheckMissingHead(t *testing.T) {
	tree, _ := emptyTree(t)
	manifest := makeTestManifest(t)
	policy := builtin.DefaultPolicy()

	setActor(t, tree, builtin.SystemActorAddr, "fil/7/system", system.ConstructState(), big.Zero())
	// An account actor whose head was never written to the store.
	require.NoError(t, tree.SetActor(tutil.NewIDAddr(t, 100), &states.Actor{
		Code:    builtin.MakeCodeCID("fil/7/account"),
		Head:    tutil.MakeCID("dangling head", nil),
		Balance: big.NewInt(5),
	}))

	acc, err := states.CheckStateInvariants(manifest, policy, tree, big.NewInt(5), abi.ChainEpoch(10))
	require.Error(t, err)
	assert.Nil(t, acc)
}

// Adapts arbitrary bytes as a map key.
type rawKey string

func (k rawKey) Key() string {
	return string(k)
}

func TestCheckMalformedTreeKey(t *testing.T) {
	tree, store := emptyTree(t)
	manifest := makeTestManifest(t)
	policy := builtin.DefaultPolicy()

	setActor(t, tree, builtin.SystemActorAddr, "fil/7/system", system.ConstructState(), big.Zero())

	// Bytes that do not decode as any address protocol.
	head, err := store.Put(store.Context(), system.ConstructState())
	require.NoError(t, err)
	require.NoError(t, tree.Map.Put(rawKey("\xff\xff"), &states.Actor{
		Code:    builtin.MakeCodeCID("fil/7/system"),
		Head:    head,
		Balance: big.Zero(),
	}))

	acc, err := states.CheckStateInvariants(manifest, policy, tree, big.Zero(), abi.ChainEpoch(10))
	require.Error(t, err)
	assert.Nil(t, acc)
}

func TestCheckDuplicateSingleton(t *testing.T) {
	tree, _ := emptyTree(t)
	manifest := makeTestManifest(t)
	policy := builtin.DefaultPolicy()

	setActor(t, tree, builtin.SystemActorAddr, "fil/7/system", system.ConstructState(), big.Zero())
	setActor(t, tree, builtin.CronActorAddr, "fil/7/cron", cron.ConstructState(nil), big.Zero())
	setActor(t, tree, tutil.NewIDAddr(t, 100), "fil/7/cron", cron.ConstructState(nil), big.Zero())

	acc, err := states.CheckStateInvariants(manifest, policy, tree, big.Zero(), abi.ChainEpoch(10))
	require.NoError(t, err)
	require.Len(t, acc.Messages(), 1)
	assert.Contains(t, acc.Messages()[0], "duplicate cron actor")
}

func TestCheckNonIDTreeKey(t *testing.T) {
	tree, store := emptyTree(t)
	manifest := makeTestManifest(t)
	policy := builtin.DefaultPolicy()

	setActor(t, tree, builtin.SystemActorAddr, "fil/7/system", system.ConstructState(), big.Zero())

	// A key with a public-key protocol cannot enter the tree through SetActor,
	// so put the entry through the underlying map.
	pubkey := tutil.NewSECP256K1Addr(t, "pubkey")
	head, err := store.Put(store.Context(), system.ConstructState())
	require.NoError(t, err)
	require.NoError(t, tree.Map.Put(abi.AddrKey(pubkey), &states.Actor{
		Code:    builtin.MakeCodeCID("fil/7/system"),
		Head:    head,
		Balance: big.NewInt(2),
	}))

	acc, err := states.CheckStateInvariants(manifest, policy, tree, big.NewInt(2), abi.ChainEpoch(10))
	require.NoError(t, err)
	require.Len(t, acc.Messages(), 1)
	assert.Contains(t, acc.Messages()[0], "unexpected address protocol in state tree root")
}

func TestCheckReportGolden(t *testing.T) {
	tree, _ := emptyTree(t)
	manifest := makeTestManifest(t)
	policy := builtin.DefaultPolicy()

	setActor(t, tree, builtin.SystemActorAddr, "fil/7/system", system.ConstructState(), big.Zero())
	// An account actor holding an ID address where a public key belongs.
	setActor(t, tree, tutil.NewIDAddr(t, 100), "fil/7/account",
		account.ConstructState(tutil.NewIDAddr(t, 999)), big.NewInt(5))

	acc, err := states.CheckStateInvariants(manifest, policy, tree, big.NewInt(9), abi.ChainEpoch(10))
	require.NoError(t, err)

	var b bytes.Buffer
	for _, msg := range acc.Messages() {
		b.WriteString(msg)
		b.WriteString("\n")
	}
	golden.Assert(t, b.Bytes())
}
