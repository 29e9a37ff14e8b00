// Package events carries domain notifications from the transaction
// engine to subscribers (history writer, websocket feed).
package events

import (
	"github.com/asaskevich/EventBus"
)

// Topics published by the transactors.
const (
	TopicPriceUpdate    = "vault:price_update"
	TopicShareTransfer  = "vault:share_transfer"
	TopicAuctionStart   = "vault:auction_start"
	TopicAuctionBid     = "vault:auction_bid"
	TopicAuctionWon     = "vault:auction_won"
	TopicRedeemed       = "vault:redeemed"
	TopicCashed         = "vault:cashed"
	TopicFeesClaimed    = "vault:fees_claimed"
	TopicCuratorChanged = "vault:curator_changed"
	TopicSettingChanged = "vault:setting_changed"
)

// PriceUpdate is published on every accepted vote.
type PriceUpdate struct {
	Account string `json:"account"`
	Price   uint64 `json:"price"`
	Reserve uint64 `json:"reserve"`
}

// ShareTransfer is published on every share move.
type ShareTransfer struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

// AuctionStart is published when an auction opens.
type AuctionStart struct {
	Bidder     string `json:"bidder"`
	Price      uint64 `json:"price"`
	AuctionEnd uint64 `json:"auction_end"`
}

// AuctionBid is published on every accepted bid.
type AuctionBid struct {
	Bidder     string `json:"bidder"`
	Price      uint64 `json:"price"`
	AuctionEnd uint64 `json:"auction_end"`
	Extended   bool   `json:"extended"`
}

// AuctionWon is published when the auction settles.
type AuctionWon struct {
	Winner string `json:"winner"`
	Price  uint64 `json:"price"`
}

// Redeemed is published when a sole holder takes the asset back.
type Redeemed struct {
	Redeemer string `json:"redeemer"`
}

// Cashed is published on every proceeds claim.
type Cashed struct {
	Holder string `json:"holder"`
	Shares uint64 `json:"shares"`
	Payout uint64 `json:"payout"`
}

// FeesClaimed is published after a fee settlement.
type FeesClaimed struct {
	Curator    uint64 `json:"curator"`
	Governance uint64 `json:"governance"`
}

// CuratorChanged is published when the curator account changes hands.
type CuratorChanged struct {
	Old    string `json:"old"`
	New    string `json:"new"`
	Kicked bool   `json:"kicked"`
}

// SettingChanged is published per mutated governance or curator setting.
type SettingChanged struct {
	Name string `json:"name"`
	Old  uint64 `json:"old"`
	New  uint64 `json:"new"`
}

// Bus wraps the process-local event bus. A nil *Bus is valid and drops
// everything, which keeps transactors free of nil checks.
type Bus struct {
	bus EventBus.Bus
}

// NewBus creates an event bus.
func NewBus() *Bus {
	return &Bus{bus: EventBus.New()}
}

// Publish emits a payload on a topic.
func (b *Bus) Publish(topic string, payload any) {
	if b == nil {
		return
	}
	b.bus.Publish(topic, payload)
}

// Subscribe registers a handler for a topic. Handlers run asynchronously
// so slow subscribers cannot stall the engine.
func (b *Bus) Subscribe(topic string, fn any) error {
	if b == nil {
		return nil
	}
	return b.bus.SubscribeAsync(topic, fn, false)
}

// Unsubscribe removes a handler from a topic.
func (b *Bus) Unsubscribe(topic string, fn any) error {
	if b == nil {
		return nil
	}
	return b.bus.Unsubscribe(topic, fn)
}

// WaitAsync blocks until all in-flight async handlers finish.
func (b *Bus) WaitAsync() {
	if b == nil {
		return
	}
	b.bus.WaitAsync()
}
