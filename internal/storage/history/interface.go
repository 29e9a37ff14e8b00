// Package history records auction activity in a relational store so the
// RPC surface can answer auction_history without replaying events.
package history

import "context"

// BidRecord is one opening bid or outbid.
type BidRecord struct {
	Bidder     string `json:"bidder"`
	Price      uint64 `json:"price"`
	AuctionEnd uint64 `json:"auction_end"`
	Opening    bool   `json:"opening"`
	At         uint64 `json:"at"`
}

// SettlementRecord is a terminal outcome: a sale, a redemption, or an
// individual cash-out.
type SettlementRecord struct {
	Kind    string `json:"kind"` // "won", "redeemed", "cashed"
	Account string `json:"account"`
	Amount  uint64 `json:"amount"`
	At      uint64 `json:"at"`
}

// Store persists auction history.
type Store interface {
	SaveBid(ctx context.Context, rec BidRecord) error
	SaveSettlement(ctx context.Context, rec SettlementRecord) error

	// Bids returns the most recent bids, newest first.
	Bids(ctx context.Context, limit int) ([]BidRecord, error)

	// Settlements returns the most recent settlements, newest first.
	Settlements(ctx context.Context, limit int) ([]SettlementRecord, error)

	Close() error
}
