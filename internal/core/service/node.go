// Package service hosts the node: the transaction engine plus the
// persistence reacting to it (snapshots after every applied transaction,
// history rows from domain events).
package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/openfrac/gofracd/internal/core/ledger"
	"github.com/openfrac/gofracd/internal/core/tx"
	"github.com/openfrac/gofracd/internal/core/vault"
	"github.com/openfrac/gofracd/internal/events"
	"github.com/openfrac/gofracd/internal/storage/history"
	"github.com/openfrac/gofracd/internal/storage/snapshots"
)

// Node is the single-writer front door to the vault.
type Node struct {
	log    zerolog.Logger
	engine *tx.Engine
	bus    *events.Bus
	clock  tx.Clock
	snaps  *snapshots.Store
	hist   history.Store
}

// New wires a node. Snapshot store and history store may be nil (tests,
// ephemeral runs); the node then skips the corresponding persistence.
func New(engine *tx.Engine, bus *events.Bus, clock tx.Clock, snaps *snapshots.Store, hist history.Store, log zerolog.Logger) *Node {
	n := &Node{
		log:    log.With().Str("component", "node").Logger(),
		engine: engine,
		bus:    bus,
		clock:  clock,
		snaps:  snaps,
		hist:   hist,
	}
	n.subscribeHistory()
	return n
}

// Submit applies a transaction and, when it was applied, persists the
// resulting state as the latest snapshot.
func (n *Node) Submit(ctx context.Context, txn tx.Transaction) tx.ApplyResult {
	result := n.engine.Apply(txn)

	n.log.Debug().
		Str("type", txn.TxType().String()).
		Str("account", txn.GetCommon().Account).
		Str("result", result.Result.String()).
		Msg("transaction processed")

	if result.Applied && n.snaps != nil {
		now := uint64(n.clock.Now().Unix())
		payload, err := vault.EncodeSnapshot(n.engine.Vault(), n.engine.Ledger(), now)
		if err != nil {
			n.log.Error().Err(err).Msg("failed to encode snapshot")
			return result
		}
		if err := n.snaps.Save(ctx, payload, now); err != nil {
			n.log.Error().Err(err).Msg("failed to persist snapshot")
		}
	}
	return result
}

// Vault returns the live vault aggregate.
func (n *Node) Vault() *vault.State {
	return n.engine.Vault()
}

// Ledger returns the live ledger.
func (n *Node) Ledger() *ledger.Ledger {
	return n.engine.Ledger()
}

// Now returns the node's clock reading in unix seconds.
func (n *Node) Now() uint64 {
	return uint64(n.clock.Now().Unix())
}

// History returns the history store, or nil when running without one.
func (n *Node) History() history.Store {
	return n.hist
}

// Close flushes async event handlers and closes the history store.
func (n *Node) Close() error {
	n.bus.WaitAsync()
	if n.hist != nil {
		return n.hist.Close()
	}
	return nil
}

// subscribeHistory feeds auction events into the history store.
func (n *Node) subscribeHistory() {
	if n.hist == nil {
		return
	}

	saveBid := func(rec history.BidRecord) {
		if err := n.hist.SaveBid(context.Background(), rec); err != nil {
			n.log.Error().Err(err).Msg("failed to record bid")
		}
	}
	saveSettlement := func(rec history.SettlementRecord) {
		if err := n.hist.SaveSettlement(context.Background(), rec); err != nil {
			n.log.Error().Err(err).Msg("failed to record settlement")
		}
	}

	n.bus.Subscribe(events.TopicAuctionStart, func(ev events.AuctionStart) {
		saveBid(history.BidRecord{
			Bidder:     ev.Bidder,
			Price:      ev.Price,
			AuctionEnd: ev.AuctionEnd,
			Opening:    true,
			At:         n.Now(),
		})
	})
	n.bus.Subscribe(events.TopicAuctionBid, func(ev events.AuctionBid) {
		saveBid(history.BidRecord{
			Bidder:     ev.Bidder,
			Price:      ev.Price,
			AuctionEnd: ev.AuctionEnd,
			At:         n.Now(),
		})
	})
	n.bus.Subscribe(events.TopicAuctionWon, func(ev events.AuctionWon) {
		saveSettlement(history.SettlementRecord{
			Kind:    "won",
			Account: ev.Winner,
			Amount:  ev.Price,
			At:      n.Now(),
		})
	})
	n.bus.Subscribe(events.TopicRedeemed, func(ev events.Redeemed) {
		saveSettlement(history.SettlementRecord{
			Kind:    "redeemed",
			Account: ev.Redeemer,
			At:      n.Now(),
		})
	})
	n.bus.Subscribe(events.TopicCashed, func(ev events.Cashed) {
		saveSettlement(history.SettlementRecord{
			Kind:    "cashed",
			Account: ev.Holder,
			Amount:  ev.Payout,
			At:      n.Now(),
		})
	})
}
