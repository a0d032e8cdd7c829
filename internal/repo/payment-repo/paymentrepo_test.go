package paymentrepo

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

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments (auction_id, payer_id, amount, currency, external_ref, created_at)")).
		WithArgs(int64(1), int64(4), decimal.NewFromInt(36), "USD", "pay-1", now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

	payment, err := repo.Create(context.Background(), &domain.Payment{
		AuctionID: 1, PayerID: 4, Amount: decimal.NewFromInt(36), Currency: "USD", ExternalRef: "pay-1", CreatedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), payment.ID)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).WillReturnError(errors.New("database error"))
	payment, err = repo.Create(context.Background(), &domain.Payment{AuctionID: 1})
	assert.Error(t, err)
	assert.Nil(t, payment)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByRef(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	columns := []string{"id", "auction_id", "payer_id", "amount", "currency", "external_ref", "created_at"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Payment
	}{
		{
			name: "Payment recorded before",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE auction_id = $1 AND external_ref = $2")).
					WithArgs(int64(1), "pay-1").
					WillReturnRows(pgxmock.NewRows(columns).
						AddRow(int64(3), int64(1), int64(4), decimal.NewFromInt(36), "USD", "pay-1", now))
			},
			result: &domain.Payment{ID: 3, AuctionID: 1, PayerID: 4, Amount: decimal.NewFromInt(36), Currency: "USD", ExternalRef: "pay-1", CreatedAt: now},
		},
		{
			name: "New reference",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE auction_id = $1 AND external_ref = $2")).
					WithArgs(int64(1), "pay-1").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE auction_id = $1 AND external_ref = $2")).
					WithArgs(int64(1), "pay-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByRef(context.Background(), 1, "pay-1")
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

func TestRepository_SumByPayer(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM payments WHERE auction_id = $1 AND payer_id = $2")).
		WithArgs(int64(1), int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(decimal.NewFromInt(20)))

	sum, err := repo.SumByPayer(context.Background(), 1, 4)
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(20).Equal(sum))

	mock.ExpectQuery(regexp.QuoteMeta("FROM payments")).WillReturnError(errors.New("database error"))
	sum, err = repo.SumByPayer(context.Background(), 1, 4)
	assert.Error(t, err)
	assert.True(t, sum.IsZero())

	assert.NoError(t, mock.ExpectationsWereMet())
}
