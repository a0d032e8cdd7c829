package auctionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/pawction/internal/domain"
)

var auctionColumns = []string{
	"id", "pet_id", "seller_id", "winner_id", "description", "start_price", "highest_bid", "status",
	"payment_status", "created_at", "end_time", "updated_at", "payment_due_date",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	price := decimal.NewFromInt(40)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		wantID    int64
	}{
		{
			name: "Auction saved",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO auctions")).
					WithArgs(int64(3), int64(7), "friendly beagle", price, price, domain.AuctionLive,
						domain.PaymentUnpaid, now, now.Add(12*time.Hour), now).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
			},
			wantID: 11,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO auctions")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			auction := &domain.Auction{
				PetID:         3,
				SellerID:      7,
				Description:   "friendly beagle",
				StartPrice:    price,
				HighestBid:    price,
				Status:        domain.AuctionLive,
				PaymentStatus: domain.PaymentUnpaid,
				CreatedAt:     now,
				EndTime:       now.Add(12 * time.Hour),
				UpdatedAt:     now,
			}
			result, err := repo.Create(context.Background(), auction)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, result.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	winner := int64(9)
	due := now.Add(72 * time.Hour)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Auction
	}{
		{
			name: "Auction locked",
			mockSetup: func() {
				rows := pgxmock.NewRows(auctionColumns).
					AddRow(int64(1), int64(3), int64(7), &winner, "beagle", decimal.NewFromInt(40), decimal.NewFromInt(41),
						domain.AuctionEnded, domain.PaymentUnpaid, now, now, now, &due)
				mock.ExpectQuery(regexp.QuoteMeta("FROM auctions WHERE id = $1 FOR UPDATE")).
					WithArgs(int64(1)).
					WillReturnRows(rows)
			},
			result: &domain.Auction{
				ID: 1, PetID: 3, SellerID: 7, WinnerID: &winner, Description: "beagle",
				StartPrice: decimal.NewFromInt(40), HighestBid: decimal.NewFromInt(41),
				Status: domain.AuctionEnded, PaymentStatus: domain.PaymentUnpaid,
				CreatedAt: now, EndTime: now, UpdatedAt: now, PaymentDueDate: &due,
			},
		},
		{
			name: "Auction does not exist",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM auctions WHERE id = $1 FOR UPDATE")).
					WithArgs(int64(1)).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM auctions WHERE id = $1 FOR UPDATE")).
					WithArgs(int64(1)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByIDForUpdate(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByID_NoWinner(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows(auctionColumns).
		AddRow(int64(2), int64(3), int64(7), (*int64)(nil), "tabby", decimal.NewFromInt(10), decimal.NewFromInt(10),
			domain.AuctionLive, domain.PaymentUnpaid, now, now.Add(12*time.Hour), now, (*time.Time)(nil))
	mock.ExpectQuery(regexp.QuoteMeta("FROM auctions WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(rows)

	result, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Nil(t, result.WinnerID)
	assert.Nil(t, result.PaymentDueDate)
	assert.False(t, result.HasBids())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	winner := int64(9)
	auction := &domain.Auction{
		ID: 1, WinnerID: &winner, Description: "beagle", HighestBid: decimal.NewFromInt(41),
		Status: domain.AuctionLive, PaymentStatus: domain.PaymentUnpaid, EndTime: now, UpdatedAt: now,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Auction updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE auctions")).
					WithArgs(&winner, "beagle", decimal.NewFromInt(41), domain.AuctionLive, domain.PaymentUnpaid,
						now, now, (*time.Time)(nil), int64(1)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE auctions")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Update(context.Background(), auction)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindExpiredLiveIDs(t *testing.T) {
	repo, mock := NewMock(t)
	cutoff := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []int64
	}{
		{
			name: "Expired auctions found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'LIVE' AND end_time <= $1 AND id > $2")).
					WithArgs(cutoff, int64(5), 200).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(6)).AddRow(int64(8)))
			},
			result: []int64{6, 8},
		},
		{
			name: "Nothing to close",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'LIVE' AND end_time <= $1 AND id > $2")).
					WithArgs(cutoff, int64(5), 200).
					WillReturnRows(pgxmock.NewRows([]string{"id"}))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'LIVE'")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindExpiredLiveIDs(context.Background(), cutoff, 5, 200)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindOverdueUnpaidIDs(t *testing.T) {
	repo, mock := NewMock(t)
	cutoff := time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'ENDED' AND payment_status = 'UNPAID' AND payment_due_date <= $1")).
		WithArgs(cutoff, int64(0), 50).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

	ids, err := repo.FindOverdueUnpaidIDs(context.Background(), cutoff, 0, 50)
	assert.NoError(t, err)
	assert.Equal(t, []int64{3}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
