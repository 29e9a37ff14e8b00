package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingHook captures hook invocations.
type recordingHook struct {
	calls []hookCall
}

type hookCall struct {
	from, to string
	amount   uint64
}

func (h *recordingHook) OnShareTransfer(from, to string, amount uint64) {
	h.calls = append(h.calls, hookCall{from, to, amount})
}

func TestMintFiresHookWithEmptySender(t *testing.T) {
	lg := New("asset-1")
	hook := &recordingHook{}
	lg.SetHook(hook)

	lg.Mint("alice", 100)

	require.Equal(t, []hookCall{{"", "alice", 100}}, hook.calls)
	require.Equal(t, uint64(100), lg.SharesOf("alice"))
	require.Equal(t, uint64(100), lg.TotalSupply())

	// Zero mints never reach the hook
	lg.Mint("alice", 0)
	require.Len(t, hook.calls, 1)
}

func TestTransferFiresHookBeforeBalances(t *testing.T) {
	lg := New("asset-1")
	lg.Mint("alice", 100)
	lg.Register("bob", false)

	hook := &recordingHook{}
	lg.SetHook(hook)

	require.NoError(t, lg.Transfer("alice", "bob", 40))
	require.Equal(t, []hookCall{{"alice", "bob", 40}}, hook.calls)
	require.Equal(t, uint64(60), lg.SharesOf("alice"))
	require.Equal(t, uint64(40), lg.SharesOf("bob"))
	require.Equal(t, uint64(100), lg.TotalSupply())
}

func TestTransferErrors(t *testing.T) {
	lg := New("asset-1")
	lg.Mint("alice", 100)
	lg.Register("bob", false)

	hook := &recordingHook{}
	lg.SetHook(hook)

	require.ErrorIs(t, lg.Transfer("ghost", "bob", 10), ErrNoAccount)
	require.ErrorIs(t, lg.Transfer("alice", "ghost", 10), ErrNoAccount)
	require.ErrorIs(t, lg.Transfer("alice", "bob", 101), ErrInsufficientShares)

	// No hook call for any failed transfer
	require.Empty(t, hook.calls)
}

func TestBurnFiresHookWithEmptyReceiver(t *testing.T) {
	lg := New("asset-1")
	lg.Mint("alice", 100)

	hook := &recordingHook{}
	lg.SetHook(hook)

	require.NoError(t, lg.Burn("alice", 100))
	require.Equal(t, []hookCall{{"alice", "", 100}}, hook.calls)
	require.Equal(t, uint64(0), lg.SharesOf("alice"))
	require.Equal(t, uint64(0), lg.TotalSupply())

	require.ErrorIs(t, lg.Burn("alice", 1), ErrInsufficientShares)
	require.ErrorIs(t, lg.Burn("ghost", 1), ErrNoAccount)
}

func TestNativeBalances(t *testing.T) {
	lg := New("asset-1")
	lg.CreditNative("alice", 500)

	require.Equal(t, uint64(500), lg.NativeOf("alice"))
	require.NoError(t, lg.DebitNative("alice", 200))
	require.Equal(t, uint64(300), lg.NativeOf("alice"))

	require.ErrorIs(t, lg.DebitNative("alice", 301), ErrInsufficientFunds)
	require.ErrorIs(t, lg.DebitNative("ghost", 1), ErrNoAccount)
}

func TestPayOutContractGetsWrapped(t *testing.T) {
	lg := New("asset-1")
	lg.Register("alice", false)
	lg.Register("escrow", true)

	lg.PayOut("alice", 100)
	lg.PayOut("escrow", 100)

	require.Equal(t, uint64(100), lg.NativeOf("alice"))
	require.Equal(t, uint64(0), lg.WrappedOf("alice"))
	require.Equal(t, uint64(0), lg.NativeOf("escrow"))
	require.Equal(t, uint64(100), lg.WrappedOf("escrow"))
}

func TestBumpSequence(t *testing.T) {
	lg := New("asset-1")
	lg.Register("alice", false)

	lg.BumpSequence("alice")
	lg.BumpSequence("alice")
	lg.BumpSequence("ghost") // no-op

	acct, ok := lg.Account("alice")
	require.True(t, ok)
	require.Equal(t, uint32(2), acct.Sequence)
}

func TestRegisterIsIdempotent(t *testing.T) {
	lg := New("asset-1")
	lg.Mint("alice", 100)

	// Re-registering must not reset balances or flip the contract flag
	lg.Register("alice", true)

	require.Equal(t, uint64(100), lg.SharesOf("alice"))
	acct, _ := lg.Account("alice")
	require.False(t, acct.Contract)
}

func TestCloneIsDeep(t *testing.T) {
	lg := New("asset-1")
	lg.Mint("alice", 100)
	lg.CreditNative("alice", 500)
	lg.TransferAsset("vault")

	hook := &recordingHook{}
	lg.SetHook(hook)

	clone := lg.Clone()
	require.NoError(t, clone.Transfer("alice", clone.Register("bob", false).Address, 40))
	clone.CreditNative("alice", 1)

	require.Equal(t, uint64(100), lg.SharesOf("alice"))
	require.Equal(t, uint64(500), lg.NativeOf("alice"))
	require.Equal(t, uint64(60), clone.SharesOf("alice"))

	// The clone carries no hook
	require.Empty(t, hook.calls)
	require.Equal(t, "vault", clone.AssetOwner())
}

func TestImageRoundTrip(t *testing.T) {
	lg := New("asset-1")
	lg.Mint("alice", 100)
	lg.Mint("bob", 50)
	lg.CreditNative("bob", 700)
	lg.Register("escrow", true)
	lg.TransferAsset("vault")
	lg.BumpSequence("alice")

	restored := FromImage(lg.Image())

	require.Equal(t, lg.TotalSupply(), restored.TotalSupply())
	require.Equal(t, lg.AssetID(), restored.AssetID())
	require.Equal(t, lg.AssetOwner(), restored.AssetOwner())
	require.Equal(t, uint64(100), restored.SharesOf("alice"))
	require.Equal(t, uint64(700), restored.NativeOf("bob"))

	alice, ok := restored.Account("alice")
	require.True(t, ok)
	require.Equal(t, uint32(1), alice.Sequence)

	escrow, ok := restored.Account("escrow")
	require.True(t, ok)
	require.True(t, escrow.Contract)
}
