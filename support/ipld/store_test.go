package ipld_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-state-audit/actors/builtin"
	"github.com/filecoin-project/go-state-audit/actors/util/adt"
	"github.com/filecoin-project/go-state-audit/support/ipld"
)

func TestBlockStoreInMemory(t *testing.T) {
	store := ipld.NewADTStore(context.Background())

	data := builtin.ManifestData{Version: 1}
	c, err := store.Put(store.Context(), &data)
	require.NoError(t, err)

	var out builtin.ManifestData
	require.NoError(t, store.Get(store.Context(), c, &out))
	assert.Equal(t, data, out)

	// The store keys blocks by the same CID as direct serialization.
	key, raw, err := ipld.MarshalCBOR(&data)
	require.NoError(t, err)
	assert.Equal(t, c, key)
	assert.NotEmpty(t, raw)

	var missing builtin.ManifestData
	err = store.Get(store.Context(), builtin.MakeCodeCID("missing"), &missing)
	assert.Error(t, err)
}

func TestMetricsBlockStore(t *testing.T) {
	bs := ipld.NewMetricsBlockStore(ipld.NewBlockStoreInMemory())
	store := adt.WrapBlockStore(context.Background(), bs)

	data := builtin.ManifestData{Version: 1}
	c, err := store.Put(store.Context(), &data)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), bs.WriteCount())
	assert.True(t, bs.WriteSize() > 0)

	var out builtin.ManifestData
	require.NoError(t, store.Get(store.Context(), c, &out))
	assert.Equal(t, uint64(1), bs.ReadCount())
	assert.Equal(t, bs.WriteSize(), bs.ReadSize())
}

func TestSyncBlockStore(t *testing.T) {
	bs := ipld.NewSyncBlockStore(ipld.NewBlockStoreInMemory())
	store := adt.WrapBlockStore(context.Background(), bs)

	data := builtin.ManifestData{Version: 7}
	c, err := store.Put(store.Context(), &data)
	require.NoError(t, err)

	var out builtin.ManifestData
	require.NoError(t, store.Get(store.Context(), c, &out))
	assert.Equal(t, uint64(7), out.Version)
}
