package auction

import (
	"github.com/openfrac/gofracd/internal/core/tx"
	"github.com/openfrac/gofracd/internal/core/vault"
	"github.com/openfrac/gofracd/internal/events"
)

// Redeem lets a holder of the entire share supply take the asset back
// before any auction has started. Burns the supply; terminal.
type Redeem struct {
	tx.BaseTx
}

// NewRedeem creates a new Redeem transaction
func NewRedeem(account string) *Redeem {
	return &Redeem{BaseTx: *tx.NewBaseTx(tx.TypeRedeem, account)}
}

// TxType returns the transaction type
func (r *Redeem) TxType() tx.Type {
	return tx.TypeRedeem
}

// Validate validates the Redeem transaction
func (r *Redeem) Validate() error {
	if err := r.BaseTx.Validate(); err != nil {
		return err
	}
	if r.Common.Value != 0 {
		return ErrHasValue
	}
	return nil
}

// Apply redeems the asset
func (r *Redeem) Apply(ctx *tx.ApplyContext) tx.Result {
	v := ctx.Vault

	if v.Auction != vault.AuctionInactive {
		return tx.TecWRONG_STATE
	}

	supply := ctx.Ledger.TotalSupply()
	if supply == 0 || ctx.Ledger.SharesOf(ctx.Account) != supply {
		return tx.TecNOT_FULL_SUPPLY
	}

	if err := ctx.Ledger.Burn(ctx.Account, supply); err != nil {
		return tx.TefINTERNAL
	}
	v.Auction = vault.AuctionRedeemed
	ctx.Ledger.TransferAsset(ctx.Account)

	ctx.Events.Publish(events.TopicRedeemed, events.Redeemed{
		Redeemer: ctx.Account,
	})
	return tx.TesSUCCESS
}
