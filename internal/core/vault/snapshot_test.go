package vault

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	v, lg, err := NewFromGenesis(testGenesis())
	require.NoError(t, err)

	// Mutate past genesis so the round trip carries real state
	require.NoError(t, lg.Transfer("curator", "alice", 400))
	require.NoError(t, v.UpdateUserPrice("alice", 400, 120))
	v.Pool = 5000
	v.Auction = AuctionLive
	v.AuctionEnd = 1700100000
	v.Winning = "alice"
	v.LivePrice = 150000

	payload, err := EncodeSnapshot(v, lg, 1700000042)
	require.NoError(t, err)

	restoredV, restoredL, takenAt, err := DecodeSnapshot(payload)
	require.NoError(t, err)
	require.Equal(t, uint64(1700000042), takenAt)

	require.Equal(t, v.AssetID, restoredV.AssetID)
	require.Equal(t, v.Auction, restoredV.Auction)
	require.Equal(t, v.AuctionEnd, restoredV.AuctionEnd)
	require.Equal(t, v.Winning, restoredV.Winning)
	require.Equal(t, v.LivePrice, restoredV.LivePrice)
	require.Equal(t, v.Pool, restoredV.Pool)
	require.Equal(t, v.ReserveTotal, restoredV.ReserveTotal)
	require.Equal(t, v.VotingTokens, restoredV.VotingTokens)
	require.Equal(t, v.UserPrices, restoredV.UserPrices)
	require.Equal(t, v.Settings, restoredV.Settings)

	require.Equal(t, lg.TotalSupply(), restoredL.TotalSupply())
	require.Equal(t, lg.AssetOwner(), restoredL.AssetOwner())
	require.Equal(t, lg.SharesOf("curator"), restoredL.SharesOf("curator"))
	require.Equal(t, lg.SharesOf("alice"), restoredL.SharesOf("alice"))
	require.Equal(t, lg.NativeOf("alice"), restoredL.NativeOf("alice"))

	acct, ok := restoredL.Account("escrow")
	require.True(t, ok)
	require.True(t, acct.Contract)
}

func TestDecodeSnapshotTooShort(t *testing.T) {
	_, _, _, err := DecodeSnapshot([]byte{0, 0, 1})
	require.ErrorIs(t, err, ErrSnapshotTooShort)
}

func TestDecodeSnapshotUnknownFlag(t *testing.T) {
	_, _, _, err := DecodeSnapshot([]byte{0, 0, 0, 1, 0xFF, 0xAA})
	require.Error(t, err)
}

func TestDecodeSnapshotRestoresEmptyPriceMap(t *testing.T) {
	g := testGenesis()
	g.ListPrice = 0
	v, lg, err := NewFromGenesis(g)
	require.NoError(t, err)
	v.UserPrices = nil

	payload, err := EncodeSnapshot(v, lg, 1)
	require.NoError(t, err)

	restored, _, _, err := DecodeSnapshot(payload)
	require.NoError(t, err)
	require.NotNil(t, restored.UserPrices)
}
