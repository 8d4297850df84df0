package adt_test

import (
	"context"
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/go-state-audit/actors/util/adt"
	"github.com/filecoin-project/go-state-audit/support/ipld"
)

func TestMultimapAddGet(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	mm, err := adt.MakeEmptyMultimap(store, 6, 6)
	require.NoError(t, err)

	v1 := cbg.CborInt(1)
	v2 := cbg.CborInt(2)
	require.NoError(t, mm.Add(abi.IntKey(7), &v1))
	require.NoError(t, mm.Add(abi.IntKey(7), &v2))

	arr, found, err := mm.Get(abi.IntKey(7))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, uint64(2), arr.Length())

	_, found, err = mm.Get(abi.IntKey(8))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMultimapForAll(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	mm, err := adt.MakeEmptyMultimap(store, 6, 6)
	require.NoError(t, err)

	for k := int64(0); k < 3; k++ {
		for i := int64(0); i <= k; i++ {
			v := cbg.CborInt(i)
			require.NoError(t, mm.Add(abi.IntKey(k), &v))
		}
	}
	root, err := mm.Root()
	require.NoError(t, err)

	reloaded, err := adt.AsMultimap(store, root, 6, 6)
	require.NoError(t, err)

	total := uint64(0)
	keys := 0
	err = reloaded.ForAll(func(k string, arr *adt.Array) error {
		keys++
		total += arr.Length()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, keys)
	assert.Equal(t, uint64(1+2+3), total)
}
