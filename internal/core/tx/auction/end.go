package auction

import (
	"github.com/openfrac/gofracd/internal/core/tx"
	"github.com/openfrac/gofracd/internal/core/vault"
	"github.com/openfrac/gofracd/internal/events"
)

// AuctionEnd settles an expired auction: fees are settled, the asset
// goes to the winner, and the vault becomes Ended for good. Anyone may
// submit it once the deadline has passed.
type AuctionEnd struct {
	tx.BaseTx
}

// NewAuctionEnd creates a new AuctionEnd transaction
func NewAuctionEnd(account string) *AuctionEnd {
	return &AuctionEnd{BaseTx: *tx.NewBaseTx(tx.TypeAuctionEnd, account)}
}

// TxType returns the transaction type
func (a *AuctionEnd) TxType() tx.Type {
	return tx.TypeAuctionEnd
}

// Validate validates the AuctionEnd transaction
func (a *AuctionEnd) Validate() error {
	if err := a.BaseTx.Validate(); err != nil {
		return err
	}
	if a.Common.Value != 0 {
		return ErrHasValue
	}
	return nil
}

// Apply settles the auction
func (a *AuctionEnd) Apply(ctx *tx.ApplyContext) tx.Result {
	v := ctx.Vault

	if v.Auction != vault.AuctionLive {
		return tx.TecWRONG_STATE
	}
	if ctx.Now < v.AuctionEnd {
		return tx.TecTOO_SOON
	}

	// Fees accrue up to the moment of sale; once Ended they never can
	accrual := vault.SettleFees(v, ctx.Ledger, ctx.Now)

	ctx.Ledger.TransferAsset(v.Winning)
	v.Auction = vault.AuctionEnded

	if accrual.Total() > 0 {
		ctx.Events.Publish(events.TopicFeesClaimed, events.FeesClaimed{
			Curator:    accrual.Curator,
			Governance: accrual.Governance,
		})
	}
	ctx.Events.Publish(events.TopicAuctionWon, events.AuctionWon{
		Winner: v.Winning,
		Price:  v.LivePrice,
	})
	return tx.TesSUCCESS
}
