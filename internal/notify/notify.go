package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pawction/internal/domain"
	"github.com/GlebRadaev/pawction/internal/service/policy"
)

type EventType string

const (
	BidPlaced       EventType = "bid_placed"
	AuctionClosed   EventType = "auction_closed"
	AuctionCanceled EventType = "auction_canceled"
	AuctionSettled  EventType = "auction_settled"
	WinnerPromoted  EventType = "winner_promoted"
)

// Event is the payload pushed to subscribers of an auction channel.
type Event struct {
	EventID        string               `json:"event_id"`
	Type           EventType            `json:"type"`
	AuctionID      int64                `json:"auction_id"`
	HighestBid     decimal.Decimal      `json:"highest_bid"`
	NextMinimumBid decimal.Decimal      `json:"next_minimum_bid"`
	BidCount       int                  `json:"bid_count,omitempty"`
	Status         domain.AuctionStatus `json:"status"`
	At             time.Time            `json:"at"`
}

func NewEvent(eventType EventType, auction *domain.Auction, at time.Time) Event {
	return Event{
		EventID:        uuid.NewString(),
		Type:           eventType,
		AuctionID:      auction.ID,
		HighestBid:     auction.HighestBid,
		NextMinimumBid: policy.NextMinimumBid(auction),
		Status:         auction.Status,
		At:             at,
	}
}

func Channel(auctionID int64) string {
	return fmt.Sprintf("auction:%d", auctionID)
}

// Publisher sends events over Redis pub/sub. A Publisher without a client
// drops every event.
type Publisher struct {
	client *redis.Client
}

func New(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// Connect dials Redis at addr, which may be a redis:// URL or host:port.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		opts = &redis.Options{Addr: addr}
	}
	opts.PoolSize = 20
	opts.MinIdleConns = 2
	opts.MaxRetries = 3

	client := redis.NewClient(opts)
	if err := HealthCheck(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}
	zap.L().Info("Connected to redis", zap.String("addr", opts.Addr))
	return client, nil
}

func HealthCheck(ctx context.Context, client *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}

// Publish never fails the caller; delivery errors are logged.
func (p *Publisher) Publish(ctx context.Context, event Event) {
	if p == nil || p.client == nil {
		return
	}
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("Failed to encode event", zap.Int64("auction_id", event.AuctionID), zap.Error(err))
		return
	}
	if err := p.client.Publish(ctx, Channel(event.AuctionID), payload).Err(); err != nil {
		zap.L().Error("Failed to publish event",
			zap.Int64("auction_id", event.AuctionID), zap.String("type", string(event.Type)), zap.Error(err))
		return
	}
	zap.L().Debug("Event published", zap.Int64("auction_id", event.AuctionID), zap.String("type", string(event.Type)))
}

func (p *Publisher) Close() error {
	if p == nil || p.client == nil {
		return nil
	}
	return p.client.Close()
}
