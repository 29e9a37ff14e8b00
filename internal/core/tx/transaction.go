package tx

import "errors"

// Common errors
var (
	ErrMissingAccount         = errors.New("temBAD_ACCOUNT: Account is required")
	ErrMissingType            = errors.New("temINVALID: TransactionType is required")
	ErrInvalidTransactionType = errors.New("temINVALID: unknown transaction type")
)

// Transaction is the interface that all transaction types must implement
type Transaction interface {
	// TxType returns the transaction type
	TxType() Type

	// GetCommon returns the common transaction fields
	GetCommon() *Common

	// Validate checks if the transaction is syntactically valid
	Validate() error
}

// Appliable is implemented by transaction types that can apply themselves
// to the vault and ledger state. Every registered type implements it.
type Appliable interface {
	Apply(ctx *ApplyContext) Result
}

// Common contains fields common to all transaction types
type Common struct {
	// Required fields
	Account         string `json:"Account"`
	TransactionType string `json:"TransactionType"`

	// Sequence number (required for submission)
	Sequence *uint32 `json:"Sequence,omitempty"`

	// Value is the native value attached to the transaction. Only payable
	// operations (AuctionStart, AuctionBid) consume it; for everything
	// else it must be zero.
	Value uint64 `json:"Value,omitempty"`
}

// Validate validates the common fields
func (c *Common) Validate() error {
	if c.Account == "" {
		return ErrMissingAccount
	}
	if c.TransactionType == "" {
		return ErrMissingType
	}
	return nil
}

// SetSequence sets the sequence number
func (c *Common) SetSequence(seq uint32) {
	c.Sequence = &seq
}

// GetSequence returns the sequence number (0 if not set)
func (c *Common) GetSequence() uint32 {
	if c.Sequence == nil {
		return 0
	}
	return *c.Sequence
}

// BaseTx provides a base implementation for transactions
type BaseTx struct {
	Common
	txType Type
}

// TxType returns the transaction type
func (b *BaseTx) TxType() Type {
	return b.txType
}

// GetCommon returns the common transaction fields
func (b *BaseTx) GetCommon() *Common {
	return &b.Common
}

// Validate validates the base transaction
func (b *BaseTx) Validate() error {
	return b.Common.Validate()
}

// NewBaseTx creates a new base transaction
func NewBaseTx(txType Type, account string) *BaseTx {
	return &BaseTx{
		Common: Common{
			Account:         account,
			TransactionType: txType.String(),
		},
		txType: txType,
	}
}
