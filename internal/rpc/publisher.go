package rpc

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/openfrac/gofracd/internal/events"
)

// streamEvent is the wire shape of a pushed event.
type streamEvent struct {
	Type    string `json:"type"`
	Stream  string `json:"stream"`
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Publisher bridges the domain event bus onto websocket streams.
type Publisher struct {
	log zerolog.Logger
	ws  *WebsocketServer
	bus *events.Bus
}

// NewPublisher wires a publisher; call Start to begin forwarding.
func NewPublisher(ws *WebsocketServer, bus *events.Bus, log zerolog.Logger) *Publisher {
	return &Publisher{
		log: log.With().Str("component", "publisher").Logger(),
		ws:  ws,
		bus: bus,
	}
}

// Start subscribes to every published topic.
func (p *Publisher) Start() error {
	subs := []struct {
		topic string
		fn    any
	}{
		{events.TopicPriceUpdate, func(ev events.PriceUpdate) { p.forward(StreamPrices, events.TopicPriceUpdate, ev) }},
		{events.TopicShareTransfer, func(ev events.ShareTransfer) { p.forward(StreamTransfers, events.TopicShareTransfer, ev) }},
		{events.TopicAuctionStart, func(ev events.AuctionStart) { p.forward(StreamAuction, events.TopicAuctionStart, ev) }},
		{events.TopicAuctionBid, func(ev events.AuctionBid) { p.forward(StreamAuction, events.TopicAuctionBid, ev) }},
		{events.TopicAuctionWon, func(ev events.AuctionWon) { p.forward(StreamAuction, events.TopicAuctionWon, ev) }},
		{events.TopicRedeemed, func(ev events.Redeemed) { p.forward(StreamAuction, events.TopicRedeemed, ev) }},
		{events.TopicCashed, func(ev events.Cashed) { p.forward(StreamAuction, events.TopicCashed, ev) }},
		{events.TopicFeesClaimed, func(ev events.FeesClaimed) { p.forward(StreamFees, events.TopicFeesClaimed, ev) }},
		{events.TopicCuratorChanged, func(ev events.CuratorChanged) { p.forward(StreamAdmin, events.TopicCuratorChanged, ev) }},
		{events.TopicSettingChanged, func(ev events.SettingChanged) { p.forward(StreamAdmin, events.TopicSettingChanged, ev) }},
	}

	for _, sub := range subs {
		if err := p.bus.Subscribe(sub.topic, sub.fn); err != nil {
			return err
		}
	}
	return nil
}

func (p *Publisher) forward(stream, topic string, payload any) {
	data, err := json.Marshal(streamEvent{
		Type:    "event",
		Stream:  stream,
		Event:   topic,
		Payload: payload,
	})
	if err != nil {
		p.log.Error().Err(err).Str("topic", topic).Msg("failed to marshal event")
		return
	}
	p.ws.Broadcast(stream, data)
}
