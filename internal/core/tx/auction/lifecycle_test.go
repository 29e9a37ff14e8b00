package auction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openfrac/gofracd/internal/core/vault"
	testenv "github.com/openfrac/gofracd/internal/testing"
)

func TestAuctionStartOpensAtReserve(t *testing.T) {
	env := testenv.NewTestEnv(t)
	env.Fund("alice", 1000)

	testenv.RequireTxSuccess(t, env.Submit(NewAuctionStart("alice", 100)))

	v := env.Vault()
	require.Equal(t, vault.AuctionLive, v.Auction)
	require.Equal(t, uint64(100), v.LivePrice)
	require.Equal(t, "alice", v.Winning)
	require.Equal(t, env.Now()+v.AuctionLength, v.AuctionEnd)
	require.Equal(t, uint64(100), v.Pool)
	testenv.RequireNative(t, env, "alice", 900)

	// Only one auction per vault
	testenv.RequireTxFail(t, env.Submit(NewAuctionStart("alice", 200)), "tecWRONG_STATE")
}

func TestAuctionStartBelowReserve(t *testing.T) {
	env := testenv.NewTestEnv(t)
	env.Fund("alice", 1000)

	testenv.RequireTxFail(t, env.Submit(NewAuctionStart("alice", 99)), "tecBELOW_RESERVE")
	require.Equal(t, vault.AuctionInactive, env.Vault().Auction)
	testenv.RequireNative(t, env, "alice", 1000)
}

func TestAuctionStartQuorumNotMet(t *testing.T) {
	// A zero list price seeds no votes at all
	g := testenv.DefaultGenesis()
	g.ListPrice = 0
	env := testenv.NewTestEnvWithGenesis(t, g)
	env.Fund("alice", 1000)

	testenv.RequireTxFail(t, env.Submit(NewAuctionStart("alice", 500)), "tecQUORUM_NOT_MET")
}

func TestAuctionStartInsufficientFunds(t *testing.T) {
	env := testenv.NewTestEnv(t)
	env.Fund("alice", 99)

	result := env.Submit(NewAuctionStart("alice", 100))
	testenv.RequireTxFail(t, result, "tecINSUFFICIENT_FUNDS")
	require.True(t, result.Applied)
}

func TestAuctionBidIncrement(t *testing.T) {
	env := testenv.NewTestEnv(t)
	env.Fund("alice", 1000)
	env.Fund("bob", 1000)

	testenv.RequireTxSuccess(t, env.Submit(NewAuctionStart("alice", 100)))

	// MinBidIncrease is 50 per-mille: 104 misses the 5% step, 105 clears it
	testenv.RequireTxFail(t, env.Submit(NewAuctionBid("bob", 104)), "tecBID_TOO_LOW")
	testenv.RequireTxSuccess(t, env.Submit(NewAuctionBid("bob", 105)))

	v := env.Vault()
	require.Equal(t, uint64(105), v.LivePrice)
	require.Equal(t, "bob", v.Winning)
	require.Equal(t, uint64(105), v.Pool)

	// Alice's opening bid came back
	testenv.RequireNative(t, env, "alice", 1000)
	testenv.RequireNative(t, env, "bob", 895)
}

func TestAuctionBidOutsideLivePhase(t *testing.T) {
	env := testenv.NewTestEnv(t)
	env.Fund("bob", 1000)

	testenv.RequireTxFail(t, env.Submit(NewAuctionBid("bob", 200)), "tecWRONG_STATE")
}

func TestAuctionBidAfterDeadline(t *testing.T) {
	env := testenv.NewTestEnv(t)
	env.Fund("alice", 1000)
	env.Fund("bob", 1000)

	testenv.RequireTxSuccess(t, env.Submit(NewAuctionStart("alice", 100)))
	env.AdvanceTime(time.Duration(env.Vault().AuctionLength) * time.Second)

	testenv.RequireTxFail(t, env.Submit(NewAuctionBid("bob", 200)), "tecEXPIRED")
}

func TestAuctionBidAntiSnipeExtension(t *testing.T) {
	env := testenv.NewTestEnv(t)
	env.Fund("alice", 1000)
	env.Fund("bob", 1000)

	testenv.RequireTxSuccess(t, env.Submit(NewAuctionStart("alice", 100)))
	deadline := env.Vault().AuctionEnd

	// A bid landing inside the window pushes the deadline out
	env.SetTime(time.Unix(int64(deadline-ExtensionWindow), 0).UTC())
	testenv.RequireTxSuccess(t, env.Submit(NewAuctionBid("bob", 105)))
	require.Equal(t, deadline+ExtensionWindow, env.Vault().AuctionEnd)

	// A bid before the window leaves the deadline alone
	env.Fund("carol", 1000)
	env.SetTime(time.Unix(int64(deadline-ExtensionWindow-3600), 0).UTC())
	testenv.RequireTxSuccess(t, env.Submit(NewAuctionBid("carol", 120)))
	require.Equal(t, deadline+ExtensionWindow, env.Vault().AuctionEnd)
}

func TestAuctionEndGating(t *testing.T) {
	env := testenv.NewTestEnv(t)
	env.Fund("alice", 1000)

	testenv.RequireTxFail(t, env.Submit(NewAuctionEnd("alice")), "tecWRONG_STATE")

	testenv.RequireTxSuccess(t, env.Submit(NewAuctionStart("alice", 100)))
	testenv.RequireTxFail(t, env.Submit(NewAuctionEnd("alice")), "tecTOO_SOON")

	env.AdvanceTime(time.Duration(env.Vault().AuctionLength) * time.Second)
	testenv.RequireTxSuccess(t, env.Submit(NewAuctionEnd("alice")))

	v := env.Vault()
	require.Equal(t, vault.AuctionEnded, v.Auction)
	require.Equal(t, "alice", env.Ledger().AssetOwner())

	// Terminal: no restart, no further settlement
	testenv.RequireTxFail(t, env.Submit(NewAuctionEnd("alice")), "tecWRONG_STATE")
	testenv.RequireTxFail(t, env.Submit(NewAuctionStart("alice", 500)), "tecWRONG_STATE")
}

func TestCashProRata(t *testing.T) {
	env := testenv.NewTestEnv(t)
	env.Fund("alice", 1000)

	// Split the supply 600/400 with a contract-flagged holder
	env.FundContract("escrow", 0)
	require.NoError(t, env.Ledger().Transfer(testenv.Curator, "escrow", 400))

	testenv.RequireTxSuccess(t, env.Submit(NewAuctionStart("alice", 100)))
	env.AdvanceTime(time.Duration(env.Vault().AuctionLength) * time.Second)
	testenv.RequireTxSuccess(t, env.Submit(NewAuctionEnd("alice")))

	// curator: 600 * 100 / 1000 = 60
	testenv.RequireTxSuccess(t, env.Submit(NewCash(testenv.Curator)))
	testenv.RequireNative(t, env, testenv.Curator, 60)
	testenv.RequireShares(t, env, testenv.Curator, 0)
	require.Equal(t, uint64(40), env.Vault().Pool)

	// escrow: 400 * 40 / 400 = 40, paid as wrapped value
	testenv.RequireTxSuccess(t, env.Submit(NewCash("escrow")))
	require.Equal(t, uint64(40), env.WrappedOf("escrow"))
	require.Equal(t, uint64(0), env.NativeOf("escrow"))
	require.Equal(t, uint64(0), env.Vault().Pool)
	require.Equal(t, uint64(0), env.Supply())

	// Shares are gone; a second claim has nothing to burn
	testenv.RequireTxFail(t, env.Submit(NewCash(testenv.Curator)), "tecINSUFFICIENT_SHARES")
}

func TestCashRequiresEndedAuction(t *testing.T) {
	env := testenv.NewTestEnv(t)

	testenv.RequireTxFail(t, env.Submit(NewCash(testenv.Curator)), "tecWRONG_STATE")
}

func TestRedeemFullSupply(t *testing.T) {
	env := testenv.NewTestEnv(t)

	testenv.RequireTxSuccess(t, env.Submit(NewRedeem(testenv.Curator)))

	v := env.Vault()
	require.Equal(t, vault.AuctionRedeemed, v.Auction)
	require.Equal(t, testenv.Curator, env.Ledger().AssetOwner())
	require.Equal(t, uint64(0), env.Supply())

	// Terminal state
	testenv.RequireTxFail(t, env.Submit(NewRedeem(testenv.Curator)), "tecWRONG_STATE")
}

func TestRedeemPartialSupply(t *testing.T) {
	env := testenv.NewTestEnv(t)
	env.Fund("alice", 0)
	require.NoError(t, env.Ledger().Transfer(testenv.Curator, "alice", 1))

	testenv.RequireTxFail(t, env.Submit(NewRedeem(testenv.Curator)), "tecNOT_FULL_SUPPLY")
	require.Equal(t, vault.AuctionInactive, env.Vault().Auction)
}

func TestRedeemBlockedDuringAuction(t *testing.T) {
	env := testenv.NewTestEnv(t)
	env.Fund("alice", 1000)

	testenv.RequireTxSuccess(t, env.Submit(NewAuctionStart("alice", 100)))
	testenv.RequireTxFail(t, env.Submit(NewRedeem(testenv.Curator)), "tecWRONG_STATE")
}
