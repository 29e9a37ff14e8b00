// Package vault implements the fractional-ownership aggregate: the
// reserve price aggregator, the curator fee schedule, the auction state
// machine fields, and governance-owned settings.
package vault

import "errors"

// PerMille is the denominator for all per-mille rates and factors.
const PerMille = 1000

// Time constants, in seconds.
const (
	Day  = 24 * 60 * 60
	Week = 7 * Day
)

// Hard limits. Governance can move settings only inside these.
const (
	// Auction length must stay within [1 day, 8 weeks]
	HardMinAuctionLength = Day
	HardMaxAuctionLength = 8 * Week

	// Governance fee capped at 10% annually
	HardMaxGovernanceFee = 100

	// Minimum bid increase within [1%, 10%]
	HardMinBidIncrease = 10
	HardMaxBidIncrease = 100

	// Vote quorum cannot exceed 100% of supply
	HardMaxVotePercentage = 1000

	// Reserve factors: lower bound strictly below parity, upper bound at
	// or above parity and strictly above the lower bound
	HardMaxMinReserveFactor = PerMille - 1
	HardMinMaxReserveFactor = PerMille
)

// Settings validation errors
var (
	ErrBadAuctionLengths  = errors.New("auction lengths outside [1 day, 8 weeks] or min > max")
	ErrBadGovernanceFee   = errors.New("governance fee above 100 per-mille")
	ErrBadBidIncrease     = errors.New("min bid increase outside [10, 100] per-mille")
	ErrBadVotePercentage  = errors.New("min vote percentage above 1000 per-mille")
	ErrBadReserveFactors  = errors.New("reserve factors outside bounds or min >= max")
	ErrMissingGovernance  = errors.New("governance account is required")
	ErrMissingFeeReceiver = errors.New("fee receiver account is required")
)

// Settings are the governance-owned bounds and accounts.
type Settings struct {
	// Governance owns this settings block
	Governance string `json:"governance"`

	// FeeReceiver collects the protocol share of accrued fees
	FeeReceiver string `json:"fee_receiver"`

	// MinAuctionLength and MaxAuctionLength bound the curator's choice,
	// in seconds
	MinAuctionLength uint64 `json:"min_auction_length"`
	MaxAuctionLength uint64 `json:"max_auction_length"`

	// GovernanceFee is the protocol's annual fee in per-mille of supply
	GovernanceFee uint64 `json:"governance_fee"`

	// MaxCuratorFee caps the curator's annual fee, in per-mille
	MaxCuratorFee uint64 `json:"max_curator_fee"`

	// MinBidIncrease is the required bid step in per-mille of the live price
	MinBidIncrease uint64 `json:"min_bid_increase"`

	// MinVotePercentage is the quorum needed to start an auction, in
	// per-mille of supply
	MinVotePercentage uint64 `json:"min_vote_percentage"`

	// MinReserveFactor and MaxReserveFactor band individual price votes
	// around the current weighted average, in per-mille
	MinReserveFactor uint64 `json:"min_reserve_factor"`
	MaxReserveFactor uint64 `json:"max_reserve_factor"`
}

// DefaultSettings returns the stock deployment parameters.
func DefaultSettings() Settings {
	return Settings{
		MinAuctionLength:  3 * Day,
		MaxAuctionLength:  2 * Week,
		GovernanceFee:     10,
		MaxCuratorFee:     100,
		MinBidIncrease:    50,
		MinVotePercentage: 250,
		MinReserveFactor:  500,
		MaxReserveFactor:  2000,
	}
}

// ValidateAuctionLengths checks a min/max auction length pair against the
// hard limits.
func ValidateAuctionLengths(min, max uint64) error {
	if min < HardMinAuctionLength || max > HardMaxAuctionLength || min > max {
		return ErrBadAuctionLengths
	}
	return nil
}

// ValidateGovernanceFee checks an annual governance fee rate.
func ValidateGovernanceFee(fee uint64) error {
	if fee > HardMaxGovernanceFee {
		return ErrBadGovernanceFee
	}
	return nil
}

// ValidateMinBidIncrease checks a bid step.
func ValidateMinBidIncrease(v uint64) error {
	if v < HardMinBidIncrease || v > HardMaxBidIncrease {
		return ErrBadBidIncrease
	}
	return nil
}

// ValidateMinVotePercentage checks a quorum threshold.
func ValidateMinVotePercentage(v uint64) error {
	if v > HardMaxVotePercentage {
		return ErrBadVotePercentage
	}
	return nil
}

// ValidateReserveFactors checks a reserve band pair.
func ValidateReserveFactors(min, max uint64) error {
	if min > HardMaxMinReserveFactor || max < HardMinMaxReserveFactor || min >= max {
		return ErrBadReserveFactors
	}
	return nil
}

// Validate checks the whole settings block.
func (s Settings) Validate() error {
	if s.Governance == "" {
		return ErrMissingGovernance
	}
	if s.FeeReceiver == "" {
		return ErrMissingFeeReceiver
	}
	if err := ValidateAuctionLengths(s.MinAuctionLength, s.MaxAuctionLength); err != nil {
		return err
	}
	if err := ValidateGovernanceFee(s.GovernanceFee); err != nil {
		return err
	}
	if err := ValidateMinBidIncrease(s.MinBidIncrease); err != nil {
		return err
	}
	if err := ValidateMinVotePercentage(s.MinVotePercentage); err != nil {
		return err
	}
	return ValidateReserveFactors(s.MinReserveFactor, s.MaxReserveFactor)
}
