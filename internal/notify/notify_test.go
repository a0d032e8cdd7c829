package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/pawction/internal/domain"
)

var now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func auction() *domain.Auction {
	return &domain.Auction{
		ID:         7,
		StartPrice: decimal.NewFromInt(40),
		HighestBid: decimal.NewFromInt(41),
		Status:     domain.AuctionLive,
	}
}

func TestNewEvent(t *testing.T) {
	event := NewEvent(BidPlaced, auction(), now)

	_, err := uuid.Parse(event.EventID)
	assert.NoError(t, err)
	assert.Equal(t, BidPlaced, event.Type)
	assert.Equal(t, int64(7), event.AuctionID)
	assert.True(t, decimal.NewFromInt(42).Equal(event.NextMinimumBid))
	assert.Equal(t, domain.AuctionLive, event.Status)
	assert.Equal(t, "auction:7", Channel(event.AuctionID))
}

func TestPublisher_Publish(t *testing.T) {
	event := NewEvent(BidPlaced, auction(), now)
	event.BidCount = 2
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	tests := []struct {
		name      string
		mockSetup func(mock redismock.ClientMock)
	}{
		{
			name: "Event delivered",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectPublish("auction:7", payload).SetVal(1)
			},
		},
		{
			name: "Redis failure is swallowed",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectPublish("auction:7", payload).SetErr(errors.New("connection refused"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			tt.mockSetup(mock)

			New(db).Publish(context.Background(), event)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPublisher_EventPayload(t *testing.T) {
	event := NewEvent(AuctionClosed, auction(), now)
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "auction_closed", decoded["type"])
	assert.Equal(t, "41", decoded["highest_bid"])
	assert.Equal(t, "42", decoded["next_minimum_bid"])
	assert.NotContains(t, decoded, "bid_count")
}

func TestPublisher_WithoutClient(t *testing.T) {
	var p *Publisher
	assert.NotPanics(t, func() { p.Publish(context.Background(), Event{AuctionID: 1}) })
	assert.NotPanics(t, func() { New(nil).Publish(context.Background(), Event{AuctionID: 1}) })
	assert.NoError(t, New(nil).Close())
}

func TestHealthCheck(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, HealthCheck(context.Background(), db))

	mock.ExpectPing().SetErr(errors.New("connection failed"))
	err := HealthCheck(context.Background(), db)
	assert.ErrorContains(t, err, "redis health check failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}
