package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/pawction/internal/domain"
)

var accountColumns = []string{"id", "user_id", "balance", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		anyErr      bool
		result      *domain.Account
	}{
		{
			name: "Account created",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO accounts (user_id, balance)")).
					WithArgs(int64(4)).
					WillReturnRows(pgxmock.NewRows(accountColumns).AddRow(int64(1), int64(4), decimal.Zero, now))
			},
			result: &domain.Account{ID: 1, UserID: 4, Balance: decimal.Zero, CreatedAt: now},
		},
		{
			name: "Account already exists",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO accounts (user_id, balance)")).
					WithArgs(int64(4)).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			expectedErr: domain.ErrAccountExists,
		},
		{
			name: "Unknown user",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO accounts (user_id, balance)")).
					WithArgs(int64(4)).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
			},
			expectedErr: domain.ErrUserNotFound,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO accounts (user_id, balance)")).
					WithArgs(int64(4)).
					WillReturnError(errors.New("database error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), 4)
			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetOrCreateByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	upsert := regexp.QuoteMeta("ON CONFLICT (user_id) DO NOTHING")

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		anyErr      bool
		result      *domain.Account
	}{
		{
			name: "Account opened",
			mockSetup: func() {
				mock.ExpectQuery(upsert).
					WithArgs(int64(4)).
					WillReturnRows(pgxmock.NewRows(accountColumns).AddRow(int64(1), int64(4), decimal.Zero, now))
			},
			result: &domain.Account{ID: 1, UserID: 4, Balance: decimal.Zero, CreatedAt: now},
		},
		{
			name: "Concurrent insert wins, existing row returned",
			mockSetup: func() {
				mock.ExpectQuery(upsert).
					WithArgs(int64(4)).
					WillReturnRows(pgxmock.NewRows(accountColumns))
				mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE user_id = $1")).
					WithArgs(int64(4)).
					WillReturnRows(pgxmock.NewRows(accountColumns).AddRow(int64(2), int64(4), decimal.NewFromInt(15), now))
			},
			result: &domain.Account{ID: 2, UserID: 4, Balance: decimal.NewFromInt(15), CreatedAt: now},
		},
		{
			name: "Unknown user",
			mockSetup: func() {
				mock.ExpectQuery(upsert).
					WithArgs(int64(4)).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
			},
			expectedErr: domain.ErrUserNotFound,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(upsert).
					WithArgs(int64(4)).
					WillReturnError(errors.New("database error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetOrCreateByUserID(context.Background(), 4)
			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	account := &domain.Account{ID: 1, UserID: 4, Balance: decimal.NewFromInt(100), CreatedAt: now}

	tests := []struct {
		name      string
		query     string
		get       func(ctx context.Context, id int64) (*domain.Account, error)
		mockErr   error
		expectErr bool
		result    *domain.Account
	}{
		{name: "By id", query: "FROM accounts WHERE id = $1", get: repo.GetByID, result: account},
		{name: "By id for update", query: "FROM accounts WHERE id = $1 FOR UPDATE", get: repo.GetByIDForUpdate, result: account},
		{name: "By user id", query: "FROM accounts WHERE user_id = $1", get: repo.GetByUserID, result: account},
		{name: "Missing account", query: "FROM accounts WHERE id = $1", get: repo.GetByID, mockErr: pgx.ErrNoRows},
		{name: "Database error", query: "FROM accounts WHERE user_id = $1", get: repo.GetByUserID, mockErr: errors.New("database error"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expect := mock.ExpectQuery(regexp.QuoteMeta(tt.query)).WithArgs(int64(1))
			if tt.mockErr != nil {
				expect.WillReturnError(tt.mockErr)
			} else {
				expect.WillReturnRows(pgxmock.NewRows(accountColumns).AddRow(int64(1), int64(4), decimal.NewFromInt(100), now))
			}

			result, err := tt.get(context.Background(), 1)
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

func TestRepository_AddBalance(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		delta     decimal.Decimal
		mockSetup func(delta decimal.Decimal)
		expectErr bool
		balance   decimal.Decimal
	}{
		{
			name:  "Credit",
			delta: decimal.NewFromInt(25),
			mockSetup: func(delta decimal.Decimal) {
				mock.ExpectQuery(regexp.QuoteMeta("SET balance = balance + $1 WHERE id = $2")).
					WithArgs(delta, int64(1)).
					WillReturnRows(pgxmock.NewRows(accountColumns).AddRow(int64(1), int64(4), decimal.NewFromInt(125), now))
			},
			balance: decimal.NewFromInt(125),
		},
		{
			name:  "Debit",
			delta: decimal.NewFromInt(-25),
			mockSetup: func(delta decimal.Decimal) {
				mock.ExpectQuery(regexp.QuoteMeta("SET balance = balance + $1 WHERE id = $2")).
					WithArgs(delta, int64(1)).
					WillReturnRows(pgxmock.NewRows(accountColumns).AddRow(int64(1), int64(4), decimal.NewFromInt(75), now))
			},
			balance: decimal.NewFromInt(75),
		},
		{
			name:  "Database error",
			delta: decimal.NewFromInt(5),
			mockSetup: func(delta decimal.Decimal) {
				mock.ExpectQuery(regexp.QuoteMeta("SET balance = balance + $1")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.delta)
			account, err := repo.AddBalance(context.Background(), 1, tt.delta)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.True(t, tt.balance.Equal(account.Balance))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
