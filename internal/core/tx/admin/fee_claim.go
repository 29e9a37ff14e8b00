package admin

import (
	"github.com/openfrac/gofracd/internal/core/tx"
	"github.com/openfrac/gofracd/internal/core/vault"
	"github.com/openfrac/gofracd/internal/events"
)

// FeeClaim settles accrued fees: shares are minted to the curator and
// the fee receiver for the time since the last settlement. Anyone may
// submit it. Rejected once the auction has Ended; the sale settlement
// was final. After a redemption the supply is zero, so the claim is an
// allowed no-op.
type FeeClaim struct {
	tx.BaseTx
}

// NewFeeClaim creates a new FeeClaim transaction
func NewFeeClaim(account string) *FeeClaim {
	return &FeeClaim{BaseTx: *tx.NewBaseTx(tx.TypeFeeClaim, account)}
}

// TxType returns the transaction type
func (f *FeeClaim) TxType() tx.Type {
	return tx.TypeFeeClaim
}

// Validate validates the FeeClaim transaction
func (f *FeeClaim) Validate() error {
	if err := f.BaseTx.Validate(); err != nil {
		return err
	}
	return rejectValue(&f.Common)
}

// Apply settles the accrued fees
func (f *FeeClaim) Apply(ctx *tx.ApplyContext) tx.Result {
	v := ctx.Vault

	if v.Auction == vault.AuctionEnded {
		return tx.TecWRONG_STATE
	}

	accrual := vault.SettleFees(v, ctx.Ledger, ctx.Now)

	ctx.Events.Publish(events.TopicFeesClaimed, events.FeesClaimed{
		Curator:    accrual.Curator,
		Governance: accrual.Governance,
	})
	return tx.TesSUCCESS
}
