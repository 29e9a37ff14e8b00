package admin

import (
	"github.com/openfrac/gofracd/internal/core/tx"
	"github.com/openfrac/gofracd/internal/core/vault"
	"github.com/openfrac/gofracd/internal/events"
)

// CuratorSet hands the curator role to another account. Curator only.
type CuratorSet struct {
	tx.BaseTx

	// NewCurator takes over the role and future fee accrual
	NewCurator string `json:"NewCurator"`
}

// NewCuratorSet creates a new CuratorSet transaction
func NewCuratorSet(account, newCurator string) *CuratorSet {
	return &CuratorSet{
		BaseTx:     *tx.NewBaseTx(tx.TypeCuratorSet, account),
		NewCurator: newCurator,
	}
}

// TxType returns the transaction type
func (c *CuratorSet) TxType() tx.Type {
	return tx.TypeCuratorSet
}

// Validate validates the CuratorSet transaction
func (c *CuratorSet) Validate() error {
	if err := c.BaseTx.Validate(); err != nil {
		return err
	}
	if c.NewCurator == "" {
		return ErrNoCurator
	}
	return rejectValue(&c.Common)
}

// Apply transfers the curator role
func (c *CuratorSet) Apply(ctx *tx.ApplyContext) tx.Result {
	v := ctx.Vault

	if ctx.Account != v.Curator {
		return tx.TecNO_PERMISSION
	}
	if c.NewCurator == v.Curator {
		return tx.TecREDUNDANT
	}

	old := v.Curator
	v.Curator = c.NewCurator

	ctx.Events.Publish(events.TopicCuratorChanged, events.CuratorChanged{
		Old: old,
		New: c.NewCurator,
	})
	return tx.TesSUCCESS
}

// KickCurator replaces the curator against their will. Governance only.
type KickCurator struct {
	tx.BaseTx

	// NewCurator takes over the role
	NewCurator string `json:"NewCurator"`
}

// NewKickCurator creates a new KickCurator transaction
func NewKickCurator(account, newCurator string) *KickCurator {
	return &KickCurator{
		BaseTx:     *tx.NewBaseTx(tx.TypeKickCurator, account),
		NewCurator: newCurator,
	}
}

// TxType returns the transaction type
func (k *KickCurator) TxType() tx.Type {
	return tx.TypeKickCurator
}

// Validate validates the KickCurator transaction
func (k *KickCurator) Validate() error {
	if err := k.BaseTx.Validate(); err != nil {
		return err
	}
	if k.NewCurator == "" {
		return ErrNoCurator
	}
	return rejectValue(&k.Common)
}

// Apply replaces the curator
func (k *KickCurator) Apply(ctx *tx.ApplyContext) tx.Result {
	v := ctx.Vault

	if ctx.Account != v.Settings.Governance {
		return tx.TecNO_PERMISSION
	}
	if k.NewCurator == v.Curator {
		return tx.TecREDUNDANT
	}

	old := v.Curator
	v.Curator = k.NewCurator

	ctx.Events.Publish(events.TopicCuratorChanged, events.CuratorChanged{
		Old:    old,
		New:    k.NewCurator,
		Kicked: true,
	})
	return tx.TesSUCCESS
}

// CuratorFeeSet changes the curator's annual fee rate. Fees accrued so
// far are settled at the old rate first; the new rate only covers time
// after this transaction.
type CuratorFeeSet struct {
	tx.BaseTx

	// Fee is the new annual rate in per-mille of supply
	Fee uint64 `json:"Fee"`
}

// NewCuratorFeeSet creates a new CuratorFeeSet transaction
func NewCuratorFeeSet(account string, fee uint64) *CuratorFeeSet {
	return &CuratorFeeSet{
		BaseTx: *tx.NewBaseTx(tx.TypeCuratorFeeSet, account),
		Fee:    fee,
	}
}

// TxType returns the transaction type
func (c *CuratorFeeSet) TxType() tx.Type {
	return tx.TypeCuratorFeeSet
}

// Validate validates the CuratorFeeSet transaction
func (c *CuratorFeeSet) Validate() error {
	if err := c.BaseTx.Validate(); err != nil {
		return err
	}
	return rejectValue(&c.Common)
}

// Apply settles at the old rate, then switches to the new one
func (c *CuratorFeeSet) Apply(ctx *tx.ApplyContext) tx.Result {
	v := ctx.Vault

	if ctx.Account != v.Curator {
		return tx.TecNO_PERMISSION
	}
	if v.Auction == vault.AuctionEnded || v.Auction == vault.AuctionRedeemed {
		return tx.TecWRONG_STATE
	}
	if c.Fee > v.Settings.MaxCuratorFee {
		return tx.TecOUT_OF_BOUNDS
	}
	if c.Fee == v.CuratorFee {
		return tx.TecREDUNDANT
	}

	accrual := vault.SettleFees(v, ctx.Ledger, ctx.Now)
	old := v.CuratorFee
	v.CuratorFee = c.Fee

	if accrual.Total() > 0 {
		ctx.Events.Publish(events.TopicFeesClaimed, events.FeesClaimed{
			Curator:    accrual.Curator,
			Governance: accrual.Governance,
		})
	}
	ctx.Events.Publish(events.TopicSettingChanged, events.SettingChanged{
		Name: "curator_fee",
		Old:  old,
		New:  c.Fee,
	})
	return tx.TesSUCCESS
}

// AuctionLengthSet changes the length of future auctions. Curator only;
// bounded by the governance settings. A live auction keeps its deadline.
type AuctionLengthSet struct {
	tx.BaseTx

	// Length is the new auction length in seconds
	Length uint64 `json:"Length"`
}

// NewAuctionLengthSet creates a new AuctionLengthSet transaction
func NewAuctionLengthSet(account string, length uint64) *AuctionLengthSet {
	return &AuctionLengthSet{
		BaseTx: *tx.NewBaseTx(tx.TypeAuctionLengthSet, account),
		Length: length,
	}
}

// TxType returns the transaction type
func (a *AuctionLengthSet) TxType() tx.Type {
	return tx.TypeAuctionLengthSet
}

// Validate validates the AuctionLengthSet transaction
func (a *AuctionLengthSet) Validate() error {
	if err := a.BaseTx.Validate(); err != nil {
		return err
	}
	return rejectValue(&a.Common)
}

// Apply changes the auction length
func (a *AuctionLengthSet) Apply(ctx *tx.ApplyContext) tx.Result {
	v := ctx.Vault

	if ctx.Account != v.Curator {
		return tx.TecNO_PERMISSION
	}
	if a.Length < v.Settings.MinAuctionLength || a.Length > v.Settings.MaxAuctionLength {
		return tx.TecOUT_OF_BOUNDS
	}
	if a.Length == v.AuctionLength {
		return tx.TecREDUNDANT
	}

	old := v.AuctionLength
	v.AuctionLength = a.Length

	ctx.Events.Publish(events.TopicSettingChanged, events.SettingChanged{
		Name: "auction_length",
		Old:  old,
		New:  a.Length,
	})
	return tx.TesSUCCESS
}
