package tx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openfrac/gofracd/internal/core/tx"
	"github.com/openfrac/gofracd/internal/core/tx/vote"

	// Register every transaction type
	_ "github.com/openfrac/gofracd/internal/core/tx/all"
)

func TestFromJSON(t *testing.T) {
	data := []byte(`{
		"TransactionType": "PriceVote",
		"Account": "alice",
		"Sequence": 3,
		"Price": 150
	}`)

	txn, err := tx.FromJSON(data)
	require.NoError(t, err)
	require.Equal(t, tx.TypePriceVote, txn.TxType())

	pv, ok := txn.(*vote.PriceVote)
	require.True(t, ok)
	require.Equal(t, "alice", pv.Common.Account)
	require.Equal(t, uint32(3), pv.GetSequence())
	require.Equal(t, uint64(150), pv.Price)
}

func TestFromJSONUnknownType(t *testing.T) {
	_, err := tx.FromJSON([]byte(`{"TransactionType": "Teleport", "Account": "alice"}`))
	require.ErrorIs(t, err, tx.ErrUnknownTransactionType)
}

func TestFromJSONInvalid(t *testing.T) {
	_, err := tx.FromJSON([]byte(`{not json`))
	require.Error(t, err)
}

func TestSupportedTypesComplete(t *testing.T) {
	want := []tx.Type{
		tx.TypePriceVote,
		tx.TypeShareTransfer,
		tx.TypeAuctionStart,
		tx.TypeAuctionBid,
		tx.TypeAuctionEnd,
		tx.TypeRedeem,
		tx.TypeCash,
		tx.TypeFeeClaim,
		tx.TypeCuratorSet,
		tx.TypeCuratorFeeSet,
		tx.TypeAuctionLengthSet,
		tx.TypeKickCurator,
		tx.TypeGovernanceSet,
	}

	got := tx.SupportedTypes()
	require.ElementsMatch(t, want, got)

	// Every registered type round-trips through its wire name
	for _, typ := range got {
		require.Equal(t, typ, tx.TypeFromString(typ.String()))
		txn, err := tx.NewFromType(typ)
		require.NoError(t, err)
		require.Equal(t, typ, txn.TxType())
	}
}
