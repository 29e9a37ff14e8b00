package auction

import (
	"github.com/openfrac/gofracd/internal/core/tx"
	"github.com/openfrac/gofracd/internal/core/vault"
	"github.com/openfrac/gofracd/internal/events"
)

// AuctionBid outbids the live price with the attached value. The
// previous high bidder is refunded only after the new bid is recorded.
type AuctionBid struct {
	tx.BaseTx
}

// NewAuctionBid creates a new AuctionBid transaction with the given bid
// attached.
func NewAuctionBid(account string, value uint64) *AuctionBid {
	bid := &AuctionBid{BaseTx: *tx.NewBaseTx(tx.TypeAuctionBid, account)}
	bid.Common.Value = value
	return bid
}

// TxType returns the transaction type
func (a *AuctionBid) TxType() tx.Type {
	return tx.TypeAuctionBid
}

// Validate validates the AuctionBid transaction
func (a *AuctionBid) Validate() error {
	if err := a.BaseTx.Validate(); err != nil {
		return err
	}
	if a.Common.Value == 0 {
		return ErrBidZeroValue
	}
	return nil
}

// Apply records the bid
func (a *AuctionBid) Apply(ctx *tx.ApplyContext) tx.Result {
	v := ctx.Vault

	if v.Auction != vault.AuctionLive {
		return tx.TecWRONG_STATE
	}
	if ctx.Now >= v.AuctionEnd {
		return tx.TecEXPIRED
	}
	if !meetsIncrement(v, ctx.Value) {
		return tx.TecBID_TOO_LOW
	}

	extended := false
	if v.AuctionEnd-ctx.Now <= ExtensionWindow {
		v.AuctionEnd += ExtensionWindow
		extended = true
	}

	prevBidder := v.Winning
	prevBid := v.LivePrice
	v.LivePrice = ctx.Value
	v.Winning = ctx.Account

	// New bid in, old bid out, in that order
	if err := ctx.Ledger.DebitNative(ctx.Account, ctx.Value); err != nil {
		return tx.TefINTERNAL
	}
	v.Pool += ctx.Value
	v.Pool -= prevBid
	ctx.Ledger.PayOut(prevBidder, prevBid)

	ctx.Events.Publish(events.TopicAuctionBid, events.AuctionBid{
		Bidder:     ctx.Account,
		Price:      ctx.Value,
		AuctionEnd: v.AuctionEnd,
		Extended:   extended,
	})
	return tx.TesSUCCESS
}
