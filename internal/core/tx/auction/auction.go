// Package auction implements the auction lifecycle transactors:
// AuctionStart, AuctionBid, AuctionEnd, Redeem, and Cash.
package auction

import (
	"errors"

	"github.com/openfrac/gofracd/internal/core/tx"
	"github.com/openfrac/gofracd/internal/core/vault"
)

func init() {
	tx.Register(tx.TypeAuctionStart, func() tx.Transaction {
		return &AuctionStart{BaseTx: *tx.NewBaseTx(tx.TypeAuctionStart, "")}
	})
	tx.Register(tx.TypeAuctionBid, func() tx.Transaction {
		return &AuctionBid{BaseTx: *tx.NewBaseTx(tx.TypeAuctionBid, "")}
	})
	tx.Register(tx.TypeAuctionEnd, func() tx.Transaction {
		return &AuctionEnd{BaseTx: *tx.NewBaseTx(tx.TypeAuctionEnd, "")}
	})
	tx.Register(tx.TypeRedeem, func() tx.Transaction {
		return &Redeem{BaseTx: *tx.NewBaseTx(tx.TypeRedeem, "")}
	})
	tx.Register(tx.TypeCash, func() tx.Transaction {
		return &Cash{BaseTx: *tx.NewBaseTx(tx.TypeCash, "")}
	})
}

// Auction constants
const (
	// ExtensionWindow is the anti-sniping window: a bid landing within
	// this many seconds of the deadline pushes the deadline out by the
	// same amount.
	ExtensionWindow = 15 * 60
)

// Auction errors
var (
	ErrBidZeroValue = errors.New("temBAD_AMOUNT: attached value must be positive")
	ErrHasValue     = errors.New("temMALFORMED: operation does not take attached value")
)

// quorumMet reports whether enough supply is voting to allow a start.
func quorumMet(v *vault.State, supply uint64) bool {
	return v.VotingTokens*vault.PerMille >= v.Settings.MinVotePercentage*supply
}

// meetsIncrement reports whether a bid clears the minimum step over the
// live price.
func meetsIncrement(v *vault.State, bid uint64) bool {
	return bid*vault.PerMille >= v.LivePrice*(vault.PerMille+v.Settings.MinBidIncrease)
}
