// Package admin implements the curator and governance transactors:
// FeeClaim, CuratorSet, CuratorFeeSet, AuctionLengthSet, KickCurator,
// and GovernanceSet.
package admin

import (
	"errors"

	"github.com/openfrac/gofracd/internal/core/tx"
)

func init() {
	tx.Register(tx.TypeFeeClaim, func() tx.Transaction {
		return &FeeClaim{BaseTx: *tx.NewBaseTx(tx.TypeFeeClaim, "")}
	})
	tx.Register(tx.TypeCuratorSet, func() tx.Transaction {
		return &CuratorSet{BaseTx: *tx.NewBaseTx(tx.TypeCuratorSet, "")}
	})
	tx.Register(tx.TypeCuratorFeeSet, func() tx.Transaction {
		return &CuratorFeeSet{BaseTx: *tx.NewBaseTx(tx.TypeCuratorFeeSet, "")}
	})
	tx.Register(tx.TypeAuctionLengthSet, func() tx.Transaction {
		return &AuctionLengthSet{BaseTx: *tx.NewBaseTx(tx.TypeAuctionLengthSet, "")}
	})
	tx.Register(tx.TypeKickCurator, func() tx.Transaction {
		return &KickCurator{BaseTx: *tx.NewBaseTx(tx.TypeKickCurator, "")}
	})
	tx.Register(tx.TypeGovernanceSet, func() tx.Transaction {
		return &GovernanceSet{BaseTx: *tx.NewBaseTx(tx.TypeGovernanceSet, "")}
	})
}

// Admin errors
var (
	ErrHasValue         = errors.New("temMALFORMED: operation does not take attached value")
	ErrNoCurator        = errors.New("temDST_NEEDED: NewCurator is required")
	ErrNoFieldsToUpdate = errors.New("temMALFORMED: no fields to update")
)

// rejectValue is the shared no-attached-value check.
func rejectValue(c *tx.Common) error {
	if c.Value != 0 {
		return ErrHasValue
	}
	return nil
}
