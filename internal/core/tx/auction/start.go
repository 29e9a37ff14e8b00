package auction

import (
	"github.com/openfrac/gofracd/internal/core/tx"
	"github.com/openfrac/gofracd/internal/core/vault"
	"github.com/openfrac/gofracd/internal/events"
)

// AuctionStart opens the auction with the attached value as the opening
// bid. Requires the reserve price to be met and the vote quorum reached.
type AuctionStart struct {
	tx.BaseTx
}

// NewAuctionStart creates a new AuctionStart transaction with the given
// opening bid attached.
func NewAuctionStart(account string, value uint64) *AuctionStart {
	start := &AuctionStart{BaseTx: *tx.NewBaseTx(tx.TypeAuctionStart, account)}
	start.Common.Value = value
	return start
}

// TxType returns the transaction type
func (a *AuctionStart) TxType() tx.Type {
	return tx.TypeAuctionStart
}

// Validate validates the AuctionStart transaction
func (a *AuctionStart) Validate() error {
	if err := a.BaseTx.Validate(); err != nil {
		return err
	}
	if a.Common.Value == 0 {
		return ErrBidZeroValue
	}
	return nil
}

// Apply opens the auction
func (a *AuctionStart) Apply(ctx *tx.ApplyContext) tx.Result {
	v := ctx.Vault

	if v.Auction != vault.AuctionInactive {
		return tx.TecWRONG_STATE
	}
	if ctx.Value < v.ReservePrice() {
		return tx.TecBELOW_RESERVE
	}
	if !quorumMet(v, ctx.Ledger.TotalSupply()) {
		return tx.TecQUORUM_NOT_MET
	}

	v.Auction = vault.AuctionLive
	v.AuctionEnd = ctx.Now + v.AuctionLength
	v.LivePrice = ctx.Value
	v.Winning = ctx.Account

	// Preclaim verified the funds; the opening bid moves into the pool
	if err := ctx.Ledger.DebitNative(ctx.Account, ctx.Value); err != nil {
		return tx.TefINTERNAL
	}
	v.Pool += ctx.Value

	ctx.Events.Publish(events.TopicAuctionStart, events.AuctionStart{
		Bidder:     ctx.Account,
		Price:      ctx.Value,
		AuctionEnd: v.AuctionEnd,
	})
	return tx.TesSUCCESS
}
