package adt_test

import (
	"context"
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/go-state-audit/actors/builtin"
	"github.com/filecoin-project/go-state-audit/actors/util/adt"
	"github.com/filecoin-project/go-state-audit/support/ipld"
)

func TestMapPutGetDelete(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	m, err := adt.MakeEmptyMap(store, builtin.DefaultHamtBitwidth)
	require.NoError(t, err)

	v := cbg.CborInt(42)
	require.NoError(t, m.Put(abi.IntKey(1), &v))

	var out cbg.CborInt
	found, err := m.Get(abi.IntKey(1), &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, cbg.CborInt(42), out)

	has, err := m.Has(abi.IntKey(1))
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, m.Delete(abi.IntKey(1)))
	found, err = m.Get(abi.IntKey(1), &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMapRootReload(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	m, err := adt.MakeEmptyMap(store, builtin.DefaultHamtBitwidth)
	require.NoError(t, err)

	for i := int64(0); i < 10; i++ {
		v := cbg.CborInt(i)
		require.NoError(t, m.Put(abi.IntKey(i), &v))
	}
	root, err := m.Root()
	require.NoError(t, err)

	reloaded, err := adt.AsMap(store, root, builtin.DefaultHamtBitwidth)
	require.NoError(t, err)

	keys, err := reloaded.CollectKeys()
	require.NoError(t, err)
	assert.Len(t, keys, 10)

	var v cbg.CborInt
	sum := int64(0)
	err = reloaded.ForEach(&v, func(k string) error {
		sum += int64(v)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(45), sum)
}
