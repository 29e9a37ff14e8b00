package tx

import (
	"github.com/openfrac/gofracd/internal/core/ledger"
	"github.com/openfrac/gofracd/internal/core/vault"
	"github.com/openfrac/gofracd/internal/events"
)

// ApplyContext carries everything a transactor needs to apply itself.
// Vault and Ledger are working copies; the engine commits them only on
// success, so transactors never need to undo partial effects.
type ApplyContext struct {
	// Vault is the vault aggregate being modified
	Vault *vault.State

	// Ledger is the share/native/wrapped ledger being modified
	Ledger *ledger.Ledger

	// Account is the transaction's source account
	Account string

	// Value is the native value attached to the transaction.
	// Preclaim has already verified the account can cover it.
	Value uint64

	// Now is the wall-clock time of this apply, in unix seconds
	Now uint64

	// TxHash is the hash of the transaction being applied
	TxHash [32]byte

	// Events receives domain notifications. May be nil.
	Events *events.Bus
}
