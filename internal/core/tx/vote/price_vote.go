// Package vote implements the reserve price voting transactor.
package vote

import (
	"errors"

	"github.com/openfrac/gofracd/internal/core/tx"
	"github.com/openfrac/gofracd/internal/core/vault"
	"github.com/openfrac/gofracd/internal/events"
)

func init() {
	tx.Register(tx.TypePriceVote, func() tx.Transaction {
		return &PriceVote{BaseTx: *tx.NewBaseTx(tx.TypePriceVote, "")}
	})
}

// Vote errors
var (
	ErrVoteHasValue = errors.New("temMALFORMED: PriceVote does not take attached value")
)

// PriceVote records or updates the sender's reserve price vote, weighted
// by their share balance. A price of 0 withdraws the vote.
type PriceVote struct {
	tx.BaseTx

	// Price is the desired reserve price; 0 withdraws
	Price uint64 `json:"Price"`
}

// NewPriceVote creates a new PriceVote transaction
func NewPriceVote(account string, price uint64) *PriceVote {
	return &PriceVote{
		BaseTx: *tx.NewBaseTx(tx.TypePriceVote, account),
		Price:  price,
	}
}

// TxType returns the transaction type
func (p *PriceVote) TxType() tx.Type {
	return tx.TypePriceVote
}

// Validate validates the PriceVote transaction
func (p *PriceVote) Validate() error {
	if err := p.BaseTx.Validate(); err != nil {
		return err
	}
	if p.Common.Value != 0 {
		return ErrVoteHasValue
	}
	return nil
}

// Apply records the vote in the reserve aggregator
func (p *PriceVote) Apply(ctx *tx.ApplyContext) tx.Result {
	if ctx.Vault.Auction != vault.AuctionInactive {
		return tx.TecWRONG_STATE
	}

	weight := ctx.Ledger.SharesOf(ctx.Account)

	if err := ctx.Vault.UpdateUserPrice(ctx.Account, weight, p.Price); err != nil {
		switch {
		case errors.Is(err, vault.ErrSamePrice):
			return tx.TecREDUNDANT
		case errors.Is(err, vault.ErrPriceOutOfBounds):
			return tx.TecPRICE_DEVIATION
		case errors.Is(err, vault.ErrWeightExceedsTotals):
			return tx.TecOUT_OF_BOUNDS
		default:
			return tx.TefINTERNAL
		}
	}

	ctx.Events.Publish(events.TopicPriceUpdate, events.PriceUpdate{
		Account: ctx.Account,
		Price:   p.Price,
		Reserve: ctx.Vault.ReservePrice(),
	})
	return tx.TesSUCCESS
}
