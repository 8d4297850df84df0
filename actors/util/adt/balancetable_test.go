package adt_test

import (
	"context"
	"testing"

	"github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-state-audit/actors/util/adt"
	"github.com/filecoin-project/go-state-audit/support/ipld"
	tutil "github.com/filecoin-project/go-state-audit/support/testing"
)

func TestBalanceTable(t *testing.T) {
	store := ipld.NewADTStore(context.Background())

	buildTable := func(t *testing.T) *adt.BalanceTable {
		emptyMap, err := adt.StoreEmptyMap(store, adt.BalanceTableBitwidth)
		require.NoError(t, err)
		bt, err := adt.AsBalanceTable(store, emptyMap)
		require.NoError(t, err)
		return bt
	}

	t.Run("absent key reads as zero", func(t *testing.T) {
		bt := buildTable(t)
		amount, err := bt.Get(tutil.NewIDAddr(t, 100))
		require.NoError(t, err)
		assert.Equal(t, big.Zero(), amount)
	})

	t.Run("add and total", func(t *testing.T) {
		bt := buildTable(t)
		a1 := tutil.NewIDAddr(t, 100)
		a2 := tutil.NewIDAddr(t, 101)

		require.NoError(t, bt.Add(a1, big.NewInt(10)))
		require.NoError(t, bt.Add(a1, big.NewInt(20)))
		require.NoError(t, bt.Add(a2, big.NewInt(1)))

		amount, err := bt.Get(a1)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(30), amount)

		total, err := bt.Total()
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(31), total)
	})

	t.Run("balance may not go negative", func(t *testing.T) {
		bt := buildTable(t)
		a1 := tutil.NewIDAddr(t, 100)
		require.NoError(t, bt.Add(a1, big.NewInt(5)))
		assert.Error(t, bt.Add(a1, big.NewInt(-6)))
	})

	t.Run("zero balances are not persisted", func(t *testing.T) {
		bt := buildTable(t)
		a1 := tutil.NewIDAddr(t, 100)
		require.NoError(t, bt.Add(a1, big.NewInt(5)))
		require.NoError(t, bt.Add(a1, big.NewInt(-5)))

		root, err := bt.Root()
		require.NoError(t, err)
		reloaded, err := adt.AsBalanceTable(store, root)
		require.NoError(t, err)
		total, err := reloaded.Total()
		require.NoError(t, err)
		assert.Equal(t, big.Zero(), total)
	})
}
