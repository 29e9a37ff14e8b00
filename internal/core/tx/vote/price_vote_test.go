package vote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openfrac/gofracd/internal/core/tx"
	"github.com/openfrac/gofracd/internal/core/tx/admin"
	"github.com/openfrac/gofracd/internal/core/tx/auction"
	"github.com/openfrac/gofracd/internal/core/tx/shares"
	testenv "github.com/openfrac/gofracd/internal/testing"
)

func TestPriceVoteValidate(t *testing.T) {
	tests := []struct {
		name    string
		txn     *PriceVote
		wantErr error
	}{
		{"valid", NewPriceVote("alice", 150), nil},
		{"valid withdrawal", NewPriceVote("alice", 0), nil},
		{"missing account", NewPriceVote("", 150), tx.ErrMissingAccount},
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

	withValue := NewPriceVote("alice", 150)
	withValue.Common.Value = 10
	require.ErrorIs(t, withValue.Validate(), ErrVoteHasValue)
}

func TestPriceVoteSoleVoterMovesFreely(t *testing.T) {
	env := testenv.NewTestEnv(t)

	// The curator holds all voting weight: the genesis list price can be
	// replaced without a band check
	testenv.RequireTxSuccess(t, env.Submit(NewPriceVote(testenv.Curator, 150)))
	testenv.RequireReserve(t, env, 150)
	require.Equal(t, uint64(1000), env.Vault().VotingTokens)
	require.Equal(t, uint64(150000), env.Vault().ReserveTotal)
}

func TestPriceVoteWeightFollowsTransfers(t *testing.T) {
	env := testenv.NewTestEnv(t)
	env.Fund("alice", 0)

	testenv.RequireTxSuccess(t, env.Submit(NewPriceVote(testenv.Curator, 150)))

	// 400 shares land on a non-voter: that weight stops voting but the
	// average holds
	testenv.RequireTxSuccess(t, env.Submit(shares.NewShareTransfer(testenv.Curator, "alice", 400)))
	require.Equal(t, uint64(600), env.Vault().VotingTokens)
	require.Equal(t, uint64(90000), env.Vault().ReserveTotal)
	testenv.RequireReserve(t, env, 150)

	// Alice votes her 400 shares at 120: in band [75, 300]
	testenv.RequireTxSuccess(t, env.Submit(NewPriceVote("alice", 120)))
	require.Equal(t, uint64(1000), env.Vault().VotingTokens)
	require.Equal(t, uint64(90000+400*120), env.Vault().ReserveTotal)
	testenv.RequireReserve(t, env, 138)
}

func TestPriceVoteBandRejection(t *testing.T) {
	env := testenv.NewTestEnv(t)
	env.Fund("alice", 0)

	testenv.RequireTxSuccess(t, env.Submit(shares.NewShareTransfer(testenv.Curator, "alice", 400)))

	// Reserve average is 100; band [50, 200]
	testenv.RequireTxFail(t, env.Submit(NewPriceVote("alice", 201)), "tecPRICE_DEVIATION")
	testenv.RequireTxFail(t, env.Submit(NewPriceVote("alice", 49)), "tecPRICE_DEVIATION")
	testenv.RequireTxSuccess(t, env.Submit(NewPriceVote("alice", 200)))
}

func TestPriceVoteRedundant(t *testing.T) {
	env := testenv.NewTestEnv(t)

	// The curator's vote is already seeded at the list price
	testenv.RequireTxFail(t, env.Submit(NewPriceVote(testenv.Curator, 100)), "tecREDUNDANT")
}

func TestPriceVoteWithdrawal(t *testing.T) {
	env := testenv.NewTestEnv(t)
	env.Fund("alice", 0)

	testenv.RequireTxSuccess(t, env.Submit(shares.NewShareTransfer(testenv.Curator, "alice", 400)))
	testenv.RequireTxSuccess(t, env.Submit(NewPriceVote("alice", 120)))

	// Withdrawals skip the band check
	testenv.RequireTxSuccess(t, env.Submit(NewPriceVote("alice", 0)))
	require.Equal(t, uint64(600), env.Vault().VotingTokens)
	testenv.RequireReserve(t, env, 100)
}

func TestPriceVoteWithdrawalAfterFeeMint(t *testing.T) {
	// Fee minting grows a voting curator's balance; the minted weight
	// must keep counting so a later withdrawal drains the totals exactly
	// instead of wrapping them below zero.
	g := testenv.DefaultGenesis()
	g.Supply = 630720000
	g.CuratorFee = 100
	g.Settings.GovernanceFee = 50
	env := testenv.NewTestEnvWithGenesis(t, g)

	env.AdvanceTime(time.Hour)
	testenv.RequireTxSuccess(t, env.Submit(admin.NewFeeClaim(testenv.Curator)))

	// The curator's mint joined their vote; the treasury's did not
	require.Equal(t, uint64(630720000+7200), env.Vault().VotingTokens)
	require.LessOrEqual(t, env.Vault().VotingTokens, env.Supply())
	testenv.RequireReserve(t, env, 100)

	testenv.RequireTxSuccess(t, env.Submit(NewPriceVote(testenv.Curator, 0)))
	require.Equal(t, uint64(0), env.Vault().ReserveTotal)
	require.Equal(t, uint64(0), env.ReservePrice())
}

func TestTransferDrainsVoteWeightAfterFeeMint(t *testing.T) {
	g := testenv.DefaultGenesis()
	g.Supply = 630720000
	g.CuratorFee = 100
	env := testenv.NewTestEnvWithGenesis(t, g)
	env.Fund("alice", 0)

	env.AdvanceTime(time.Hour)
	testenv.RequireTxSuccess(t, env.Submit(admin.NewFeeClaim(testenv.Curator)))

	// The curator moves their whole grown balance to a non-voter
	balance := env.SharesOf(testenv.Curator)
	require.Equal(t, uint64(630720000+7200), balance)
	testenv.RequireTxSuccess(t, env.Submit(shares.NewShareTransfer(testenv.Curator, "alice", balance)))

	require.Equal(t, uint64(0), env.Vault().VotingTokens)
	require.Equal(t, uint64(0), env.Vault().ReserveTotal)
	require.Equal(t, balance, env.SharesOf("alice"))
	require.Equal(t, env.Supply(), env.SharesOf("alice"))
}

func TestPriceVoteRequiresInactiveAuction(t *testing.T) {
	env := testenv.NewTestEnv(t)
	env.Fund("bidder", 1000)

	testenv.RequireTxSuccess(t, env.Submit(auction.NewAuctionStart("bidder", 100)))
	testenv.RequireTxFail(t, env.Submit(NewPriceVote(testenv.Curator, 150)), "tecWRONG_STATE")
}
