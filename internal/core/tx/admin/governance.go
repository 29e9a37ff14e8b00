package admin

import (
	"github.com/openfrac/gofracd/internal/core/tx"
	"github.com/openfrac/gofracd/internal/core/vault"
	"github.com/openfrac/gofracd/internal/events"
)

// GovernanceSet updates governance-owned settings. Governance only.
// Absent fields keep their value; each present field is checked against
// the hard limits and its complementary bound before anything changes,
// so a rejected update leaves all settings untouched.
type GovernanceSet struct {
	tx.BaseTx

	MinAuctionLength  *uint64 `json:"MinAuctionLength,omitempty"`
	MaxAuctionLength  *uint64 `json:"MaxAuctionLength,omitempty"`
	GovernanceFee     *uint64 `json:"GovernanceFee,omitempty"`
	MinBidIncrease    *uint64 `json:"MinBidIncrease,omitempty"`
	MinVotePercentage *uint64 `json:"MinVotePercentage,omitempty"`
	MinReserveFactor  *uint64 `json:"MinReserveFactor,omitempty"`
	MaxReserveFactor  *uint64 `json:"MaxReserveFactor,omitempty"`
	FeeReceiver       *string `json:"FeeReceiver,omitempty"`
}

// NewGovernanceSet creates an empty GovernanceSet transaction; callers
// set the fields they want changed.
func NewGovernanceSet(account string) *GovernanceSet {
	return &GovernanceSet{BaseTx: *tx.NewBaseTx(tx.TypeGovernanceSet, account)}
}

// TxType returns the transaction type
func (g *GovernanceSet) TxType() tx.Type {
	return tx.TypeGovernanceSet
}

// Validate validates the GovernanceSet transaction
func (g *GovernanceSet) Validate() error {
	if err := g.BaseTx.Validate(); err != nil {
		return err
	}
	if g.MinAuctionLength == nil && g.MaxAuctionLength == nil &&
		g.GovernanceFee == nil && g.MinBidIncrease == nil &&
		g.MinVotePercentage == nil && g.MinReserveFactor == nil &&
		g.MaxReserveFactor == nil && g.FeeReceiver == nil {
		return ErrNoFieldsToUpdate
	}
	if g.FeeReceiver != nil && *g.FeeReceiver == "" {
		return ErrNoFieldsToUpdate
	}
	return rejectValue(&g.Common)
}

// Apply updates the settings
func (g *GovernanceSet) Apply(ctx *tx.ApplyContext) tx.Result {
	v := ctx.Vault
	s := v.Settings

	if ctx.Account != s.Governance {
		return tx.TecNO_PERMISSION
	}

	// Stage the full block, validate, then swap
	next := s
	var changes []events.SettingChanged

	if g.MinAuctionLength != nil {
		changes = append(changes, events.SettingChanged{
			Name: "min_auction_length", Old: next.MinAuctionLength, New: *g.MinAuctionLength,
		})
		next.MinAuctionLength = *g.MinAuctionLength
	}
	if g.MaxAuctionLength != nil {
		changes = append(changes, events.SettingChanged{
			Name: "max_auction_length", Old: next.MaxAuctionLength, New: *g.MaxAuctionLength,
		})
		next.MaxAuctionLength = *g.MaxAuctionLength
	}
	if g.GovernanceFee != nil {
		changes = append(changes, events.SettingChanged{
			Name: "governance_fee", Old: next.GovernanceFee, New: *g.GovernanceFee,
		})
		next.GovernanceFee = *g.GovernanceFee
	}
	if g.MinBidIncrease != nil {
		changes = append(changes, events.SettingChanged{
			Name: "min_bid_increase", Old: next.MinBidIncrease, New: *g.MinBidIncrease,
		})
		next.MinBidIncrease = *g.MinBidIncrease
	}
	if g.MinVotePercentage != nil {
		changes = append(changes, events.SettingChanged{
			Name: "min_vote_percentage", Old: next.MinVotePercentage, New: *g.MinVotePercentage,
		})
		next.MinVotePercentage = *g.MinVotePercentage
	}
	if g.MinReserveFactor != nil {
		changes = append(changes, events.SettingChanged{
			Name: "min_reserve_factor", Old: next.MinReserveFactor, New: *g.MinReserveFactor,
		})
		next.MinReserveFactor = *g.MinReserveFactor
	}
	if g.MaxReserveFactor != nil {
		changes = append(changes, events.SettingChanged{
			Name: "max_reserve_factor", Old: next.MaxReserveFactor, New: *g.MaxReserveFactor,
		})
		next.MaxReserveFactor = *g.MaxReserveFactor
	}
	if g.FeeReceiver != nil {
		next.FeeReceiver = *g.FeeReceiver
	}

	if err := next.Validate(); err != nil {
		return tx.TecOUT_OF_BOUNDS
	}

	// Governance fee accrual must run at the old rate before it changes
	if g.GovernanceFee != nil && *g.GovernanceFee != s.GovernanceFee &&
		v.Auction != vault.AuctionEnded && v.Auction != vault.AuctionRedeemed {
		accrual := vault.SettleFees(v, ctx.Ledger, ctx.Now)
		if accrual.Total() > 0 {
			ctx.Events.Publish(events.TopicFeesClaimed, events.FeesClaimed{
				Curator:    accrual.Curator,
				Governance: accrual.Governance,
			})
		}
	}

	v.Settings = next
	for _, change := range changes {
		ctx.Events.Publish(events.TopicSettingChanged, change)
	}
	return tx.TesSUCCESS
}
