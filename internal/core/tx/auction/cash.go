package auction

import (
	"github.com/openfrac/gofracd/internal/core/tx"
	"github.com/openfrac/gofracd/internal/core/vault"
	"github.com/openfrac/gofracd/internal/events"
)

// Cash burns the sender's shares for their pro-rata slice of the sale
// proceeds. Only available once the auction has Ended; repeat claims
// fail because the shares are gone.
type Cash struct {
	tx.BaseTx
}

// NewCash creates a new Cash transaction
func NewCash(account string) *Cash {
	return &Cash{BaseTx: *tx.NewBaseTx(tx.TypeCash, account)}
}

// TxType returns the transaction type
func (c *Cash) TxType() tx.Type {
	return tx.TypeCash
}

// Validate validates the Cash transaction
func (c *Cash) Validate() error {
	if err := c.BaseTx.Validate(); err != nil {
		return err
	}
	if c.Common.Value != 0 {
		return ErrHasValue
	}
	return nil
}

// Apply pays out the pro-rata share of the pool
func (c *Cash) Apply(ctx *tx.ApplyContext) tx.Result {
	v := ctx.Vault

	if v.Auction != vault.AuctionEnded {
		return tx.TecWRONG_STATE
	}

	balance := ctx.Ledger.SharesOf(ctx.Account)
	if balance == 0 {
		return tx.TecINSUFFICIENT_SHARES
	}

	// Recomputed against the live supply and pool, so later claimants
	// split whatever fee-minted shares changed in the meantime
	supply := ctx.Ledger.TotalSupply()
	share := balance * v.Pool / supply

	if err := ctx.Ledger.Burn(ctx.Account, balance); err != nil {
		return tx.TefINTERNAL
	}
	v.Pool -= share
	ctx.Ledger.PayOut(ctx.Account, share)

	ctx.Events.Publish(events.TopicCashed, events.Cashed{
		Holder: ctx.Account,
		Shares: balance,
		Payout: share,
	})
	return tx.TesSUCCESS
}
