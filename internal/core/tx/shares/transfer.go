// Package shares implements the share transfer transactor.
package shares

import (
	"errors"

	"github.com/openfrac/gofracd/internal/core/ledger"
	"github.com/openfrac/gofracd/internal/core/tx"
	"github.com/openfrac/gofracd/internal/events"
)

func init() {
	tx.Register(tx.TypeShareTransfer, func() tx.Transaction {
		return &ShareTransfer{BaseTx: *tx.NewBaseTx(tx.TypeShareTransfer, "")}
	})
}

// Transfer errors
var (
	ErrTransferNoDestination = errors.New("temDST_NEEDED: Destination is required")
	ErrTransferSelf          = errors.New("temDST_IS_SRC: Destination may not be source")
	ErrTransferZeroAmount    = errors.New("temBAD_AMOUNT: Amount must be positive")
	ErrTransferHasValue      = errors.New("temMALFORMED: ShareTransfer does not take attached value")
)

// ShareTransfer moves shares between accounts. While the vault is
// inactive the reserve aggregator observes the move through the ledger
// hook; afterwards it is a plain balance move.
type ShareTransfer struct {
	tx.BaseTx

	// Destination receives the shares
	Destination string `json:"Destination"`

	// Amount is the number of shares to move
	Amount uint64 `json:"Amount"`
}

// NewShareTransfer creates a new ShareTransfer transaction
func NewShareTransfer(account, destination string, amount uint64) *ShareTransfer {
	return &ShareTransfer{
		BaseTx:      *tx.NewBaseTx(tx.TypeShareTransfer, account),
		Destination: destination,
		Amount:      amount,
	}
}

// TxType returns the transaction type
func (s *ShareTransfer) TxType() tx.Type {
	return tx.TypeShareTransfer
}

// Validate validates the ShareTransfer transaction
func (s *ShareTransfer) Validate() error {
	if err := s.BaseTx.Validate(); err != nil {
		return err
	}
	if s.Destination == "" {
		return ErrTransferNoDestination
	}
	if s.Destination == s.Common.Account {
		return ErrTransferSelf
	}
	if s.Amount == 0 {
		return ErrTransferZeroAmount
	}
	if s.Common.Value != 0 {
		return ErrTransferHasValue
	}
	return nil
}

// Apply moves the shares
func (s *ShareTransfer) Apply(ctx *tx.ApplyContext) tx.Result {
	if _, ok := ctx.Ledger.Account(s.Destination); !ok {
		return tx.TecNO_DST
	}

	if err := ctx.Ledger.Transfer(ctx.Account, s.Destination, s.Amount); err != nil {
		if errors.Is(err, ledger.ErrInsufficientShares) {
			return tx.TecINSUFFICIENT_SHARES
		}
		return tx.TefINTERNAL
	}

	ctx.Events.Publish(events.TopicShareTransfer, events.ShareTransfer{
		From:   ctx.Account,
		To:     s.Destination,
		Amount: s.Amount,
	})
	return tx.TesSUCCESS
}
