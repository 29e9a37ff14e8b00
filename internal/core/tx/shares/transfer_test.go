package shares

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openfrac/gofracd/internal/core/tx"
	testenv "github.com/openfrac/gofracd/internal/testing"
)

func TestShareTransferValidate(t *testing.T) {
	tests := []struct {
		name    string
		txn     *ShareTransfer
		wantErr error
	}{
		{"valid", NewShareTransfer("alice", "bob", 10), nil},
		{"missing account", NewShareTransfer("", "bob", 10), tx.ErrMissingAccount},
		{"missing destination", NewShareTransfer("alice", "", 10), ErrTransferNoDestination},
		{"self transfer", NewShareTransfer("alice", "alice", 10), ErrTransferSelf},
		{"zero amount", NewShareTransfer("alice", "bob", 0), ErrTransferZeroAmount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.txn.Validate()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}

	withValue := NewShareTransfer("alice", "bob", 10)
	withValue.Common.Value = 5
	require.ErrorIs(t, withValue.Validate(), ErrTransferHasValue)
}

func TestShareTransferMovesBalances(t *testing.T) {
	env := testenv.NewTestEnv(t)
	env.Fund("alice", 0)

	testenv.RequireTxSuccess(t, env.Submit(NewShareTransfer(testenv.Curator, "alice", 400)))
	testenv.RequireShares(t, env, testenv.Curator, 600)
	testenv.RequireShares(t, env, "alice", 400)
	require.Equal(t, uint64(1000), env.Supply())

	// The aggregator saw the move: only the curator's 600 still vote
	require.Equal(t, uint64(600), env.Vault().VotingTokens)
	testenv.RequireReserve(t, env, 100)
}

func TestShareTransferUnknownDestination(t *testing.T) {
	env := testenv.NewTestEnv(t)

	result := env.Submit(NewShareTransfer(testenv.Curator, "nobody", 10))
	testenv.RequireTxFail(t, result, "tecNO_DST")
	testenv.RequireShares(t, env, testenv.Curator, 1000)
}

func TestShareTransferInsufficientShares(t *testing.T) {
	env := testenv.NewTestEnv(t)
	env.Fund("alice", 0)

	result := env.Submit(NewShareTransfer(testenv.Curator, "alice", 1001))
	testenv.RequireTxFail(t, result, "tecINSUFFICIENT_SHARES")

	// The rejected transfer must not have touched the aggregator
	require.Equal(t, uint64(1000), env.Vault().VotingTokens)
	testenv.RequireShares(t, env, testenv.Curator, 1000)
}
