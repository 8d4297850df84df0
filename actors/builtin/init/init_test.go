package init_test

import (
	"context"
	"testing"

	address "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/go-state-audit/actors/builtin"
	init_ "github.com/filecoin-project/go-state-audit/actors/builtin/init"
	"github.com/filecoin-project/go-state-audit/actors/util/adt"
	"github.com/filecoin-project/go-state-audit/support/ipld"
	tutil "github.com/filecoin-project/go-state-audit/support/testing"
)

func TestResolveAddress(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	st, err := init_.ConstructState(store, "testnet")
	require.NoError(t, err)

	pubkey := tutil.NewSECP256K1Addr(t, "pubkey")
	m, err := adt.AsMap(store, st.AddressMap, builtin.DefaultHamtBitwidth)
	require.NoError(t, err)
	value := cbg.CborInt(100)
	require.NoError(t, m.Put(abi.AddrKey(pubkey), &value))
	st.AddressMap, err = m.Root()
	require.NoError(t, err)

	resolved, found, err := st.ResolveAddress(store, pubkey)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, tutil.NewIDAddr(t, 100), resolved)

	// ID addresses pass through.
	idAddr := tutil.NewIDAddr(t, 5)
	resolved, found, err = st.ResolveAddress(store, idAddr)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, idAddr, resolved)

	_, found, err = st.ResolveAddress(store, tutil.NewSECP256K1Addr(t, "unmapped"))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInitInvariants(t *testing.T) {
	store := ipld.NewADTStore(context.Background())

	addMapping := func(t *testing.T, st *init_.State, key address.Address, id abi.ActorID) {
		m, err := adt.AsMap(store, st.AddressMap, builtin.DefaultHamtBitwidth)
		require.NoError(t, err)
		value := cbg.CborInt(id)
		require.NoError(t, m.Put(abi.AddrKey(key), &value))
		st.AddressMap, err = m.Root()
		require.NoError(t, err)
	}

	t.Run("fresh state passes", func(t *testing.T) {
		st, err := init_.ConstructState(store, "testnet")
		require.NoError(t, err)
		summary, acc := init_.CheckStateInvariants(st, store)
		assert.True(t, acc.IsEmpty(), "unexpected messages: %v", acc.Messages())
		assert.Equal(t, abi.ActorID(builtin.FirstNonSingletonActorId), summary.NextID)
	})

	t.Run("empty network name reported", func(t *testing.T) {
		st, err := init_.ConstructState(store, "")
		require.NoError(t, err)
		_, acc := init_.CheckStateInvariants(st, store)
		assert.Len(t, acc.Messages(), 1)
	})

	t.Run("mapping beyond next id reported", func(t *testing.T) {
		st, err := init_.ConstructState(store, "testnet")
		require.NoError(t, err)
		addMapping(t, st, tutil.NewSECP256K1Addr(t, "k1"), abi.ActorID(200))
		_, acc := init_.CheckStateInvariants(st, store)
		require.Len(t, acc.Messages(), 1)
		assert.Contains(t, acc.Messages()[0], "exceeds next id")
	})

	t.Run("valid mappings collected", func(t *testing.T) {
		st, err := init_.ConstructState(store, "testnet")
		require.NoError(t, err)
		st.NextID = 102
		addMapping(t, st, tutil.NewSECP256K1Addr(t, "k1"), abi.ActorID(100))
		addMapping(t, st, tutil.NewBLSAddr(t, 2), abi.ActorID(101))
		summary, acc := init_.CheckStateInvariants(st, store)
		assert.True(t, acc.IsEmpty(), "unexpected messages: %v", acc.Messages())
		assert.Len(t, summary.AddrIDs, 2)
	})
}
