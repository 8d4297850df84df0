package builtin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-state-audit/actors/builtin"
	"github.com/filecoin-project/go-state-audit/support/ipld"
)

func TestManifestRoundTrip(t *testing.T) {
	store := ipld.NewADTStore(context.Background())

	data := builtin.ManifestData{
		Version: 1,
		Entries: []builtin.ManifestEntry{
			{Name: "system", Code: builtin.MakeCodeCID("fil/7/system")},
			{Name: "init", Code: builtin.MakeCodeCID("fil/7/init")},
			{Name: "account", Code: builtin.MakeCodeCID("fil/7/account")},
			{Name: "storageminer", Code: builtin.MakeCodeCID("fil/7/storageminer")},
		},
	}
	root, err := store.Put(store.Context(), &data)
	require.NoError(t, err)

	manifest, err := builtin.LoadManifest(store, root)
	require.NoError(t, err)
	assert.Equal(t, 4, manifest.Len())

	typ, found := manifest.Lookup(builtin.MakeCodeCID("fil/7/init"))
	assert.True(t, found)
	assert.Equal(t, builtin.TypeInit, typ)

	code, found := manifest.CodeOf(builtin.TypeMiner)
	assert.True(t, found)
	assert.Equal(t, builtin.MakeCodeCID("fil/7/storageminer"), code)

	_, found = manifest.Lookup(builtin.MakeCodeCID("fil/7/bogus"))
	assert.False(t, found)
}

func TestLoadManifestRejectsUnknownName(t *testing.T) {
	store := ipld.NewADTStore(context.Background())

	data := builtin.ManifestData{
		Version: 1,
		Entries: []builtin.ManifestEntry{
			{Name: "embryo", Code: builtin.MakeCodeCID("fil/7/embryo")},
		},
	}
	root, err := store.Put(store.Context(), &data)
	require.NoError(t, err)

	_, err = builtin.LoadManifest(store, root)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown actor name")
}

func TestLoadManifestRejectsDuplicateCode(t *testing.T) {
	store := ipld.NewADTStore(context.Background())

	code := builtin.MakeCodeCID("fil/7/account")
	data := builtin.ManifestData{
		Version: 1,
		Entries: []builtin.ManifestEntry{
			{Name: "account", Code: code},
			{Name: "multisig", Code: code},
		},
	}
	root, err := store.Put(store.Context(), &data)
	require.NoError(t, err)

	_, err = builtin.LoadManifest(store, root)
	assert.Error(t, err)
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "storagepower", builtin.TypePower.String())
	assert.Equal(t, "paymentchannel", builtin.TypePaymentChannel.String())
	assert.Equal(t, "unknown", builtin.Type(99).String())

	assert.True(t, builtin.TypeSystem.IsSingleton())
	assert.True(t, builtin.TypeMarket.IsSingleton())
	assert.False(t, builtin.TypeAccount.IsSingleton())
	assert.False(t, builtin.TypeMiner.IsSingleton())
}
