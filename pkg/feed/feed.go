// Package feed publishes fill events to a Kafka topic so the ticker
// UI and quest system can react to market activity without polling.
// The publisher is optional: a nil *Publisher drops everything.
package feed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/gnoobs75/Expedition-sub004/pkg/exchange"
	"github.com/gnoobs75/Expedition-sub004/pkg/obs"
)

type Publisher struct {
	writer *kafka.Writer
	obs    *obs.Client
}

// FillEvent is the wire form of one execution.
type FillEvent struct {
	ID         string `json:"id"`
	StationID  string `json:"stationId"`
	GoodID     string `json:"goodId"`
	Price      int64  `json:"price"`
	Quantity   int64  `json:"quantity"`
	BidOrderID int64  `json:"bidOrderId"`
	AskOrderID int64  `json:"askOrderId"`
	Timestamp  int64  `json:"timestamp"`
}

func NewPublisher(brokers []string, topic string, log *obs.Client) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
		},
		obs: log,
	}
}

// PublishFills sends one event per fill, keyed by instrument so a
// consumer sees each market's trades in order. Publish failures are
// logged and swallowed — the match already happened and must not fail.
func (p *Publisher) PublishFills(ctx context.Context, fills []exchange.Fill) {
	if p == nil || len(fills) == 0 {
		return
	}

	messages := make([]kafka.Message, 0, len(fills))
	for _, fill := range fills {
		event := FillEvent{
			ID:         uuid.NewString(),
			StationID:  fill.Instrument.StationID,
			GoodID:     fill.Instrument.GoodID,
			Price:      fill.Price,
			Quantity:   fill.Quantity,
			BidOrderID: fill.BidOrderID,
			AskOrderID: fill.AskOrderID,
			Timestamp:  fill.Timestamp,
		}
		value, err := json.Marshal(event)
		if err != nil {
			p.obs.LogErr(ctx, "feed.publish: marshal failed: %v", err)
			continue
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(fill.Instrument.StationID + "/" + fill.Instrument.GoodID),
			Value: value,
		})
	}
	if len(messages) == 0 {
		return
	}
	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		p.obs.LogErr(ctx, "feed.publish: write failed: %v", err)
	}
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
