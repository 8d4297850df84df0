package multisig_test

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-state-audit/actors/builtin"
	"github.com/filecoin-project/go-state-audit/actors/builtin/multisig"
	"github.com/filecoin-project/go-state-audit/actors/util/adt"
	"github.com/filecoin-project/go-state-audit/support/ipld"
	tutil "github.com/filecoin-project/go-state-audit/support/testing"
)

// Adapts arbitrary bytes as a map key.
type rawKey string

func (k rawKey) Key() string {
	return string(k)
}

func TestTxnIDKeyRoundTrip(t *testing.T) {
	for _, id := range []multisig.TxnID{0, 1, 4096, 1 << 40} {
		parsed, err := multisig.ParseTxnIDKey(id.Key())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}
}

func TestMultisigInvariants(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	signers := []addr.Address{tutil.NewIDAddr(t, 100), tutil.NewIDAddr(t, 101)}

	emptyMap, err := adt.StoreEmptyMap(store, builtin.DefaultHamtBitwidth)
	require.NoError(t, err)

	t.Run("empty multisig passes", func(t *testing.T) {
		st := multisig.ConstructState(signers, 2, emptyMap)
		summary, acc := multisig.CheckStateInvariants(st, store)
		assert.True(t, acc.IsEmpty(), "unexpected messages: %v", acc.Messages())
		assert.Equal(t, uint64(0), summary.PendingTxnCount)
		assert.Equal(t, 2, summary.SignerCount)
	})

	t.Run("threshold exceeding signers is reported", func(t *testing.T) {
		st := multisig.ConstructState(signers, 3, emptyMap)
		_, acc := multisig.CheckStateInvariants(st, store)
		assert.Len(t, acc.Messages(), 1)
	})

	t.Run("locked balance without unlock duration is reported", func(t *testing.T) {
		st := multisig.ConstructState(signers, 2, emptyMap)
		st.InitialBalance = big.NewInt(1)
		_, acc := multisig.CheckStateInvariants(st, store)
		assert.Len(t, acc.Messages(), 1)
	})

	t.Run("pending transactions checked against signers", func(t *testing.T) {
		pending, err := adt.MakeEmptyMap(store, builtin.DefaultHamtBitwidth)
		require.NoError(t, err)

		goodTxn := multisig.Transaction{
			To:       tutil.NewIDAddr(t, 102),
			Value:    big.NewInt(10),
			Method:   0,
			Approved: []addr.Address{signers[0]},
		}
		badTxn := multisig.Transaction{
			To:       tutil.NewIDAddr(t, 103),
			Value:    big.NewInt(1),
			Method:   0,
			Approved: []addr.Address{tutil.NewIDAddr(t, 666)},
		}
		require.NoError(t, pending.Put(multisig.TxnID(0), &goodTxn))
		require.NoError(t, pending.Put(multisig.TxnID(1), &badTxn))
		pendingRoot, err := pending.Root()
		require.NoError(t, err)

		st := multisig.ConstructState(signers, 2, pendingRoot)
		st.NextTxnID = 2
		summary, acc := multisig.CheckStateInvariants(st, store)
		assert.Equal(t, uint64(2), summary.PendingTxnCount)
		require.Len(t, acc.Messages(), 1)
		assert.Contains(t, acc.Messages()[0], "not in signers list")
	})

	t.Run("unparseable pending transaction key is reported", func(t *testing.T) {
		pending, err := adt.MakeEmptyMap(store, builtin.DefaultHamtBitwidth)
		require.NoError(t, err)
		txn := multisig.Transaction{
			To:       tutil.NewIDAddr(t, 102),
			Value:    big.Zero(),
			Approved: []addr.Address{signers[0]},
		}
		// An unterminated varint cannot be parsed back to a transaction id.
		require.NoError(t, pending.Put(rawKey("\x80"), &txn))
		pendingRoot, err := pending.Root()
		require.NoError(t, err)

		st := multisig.ConstructState(signers, 2, pendingRoot)
		_, acc := multisig.CheckStateInvariants(st, store)
		require.Len(t, acc.Messages(), 1)
		assert.Contains(t, acc.Messages()[0], "invalid pending transaction key")
	})

	t.Run("stale next transaction id is reported", func(t *testing.T) {
		pending, err := adt.MakeEmptyMap(store, builtin.DefaultHamtBitwidth)
		require.NoError(t, err)
		txn := multisig.Transaction{
			To:       tutil.NewIDAddr(t, 102),
			Value:    big.Zero(),
			Approved: []addr.Address{signers[0]},
		}
		require.NoError(t, pending.Put(multisig.TxnID(5), &txn))
		pendingRoot, err := pending.Root()
		require.NoError(t, err)

		st := multisig.ConstructState(signers, 2, pendingRoot)
		st.NextTxnID = 5
		_, acc := multisig.CheckStateInvariants(st, store)
		require.Len(t, acc.Messages(), 1)
		assert.Contains(t, acc.Messages()[0], "not greater than pending ids")
	})
}
