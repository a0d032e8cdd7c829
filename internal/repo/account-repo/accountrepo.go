package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pawction/internal/domain"
	"github.com/GlebRadaev/pawction/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, userID int64) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (user_id, balance)
		VALUES ($1, 0)
		RETURNING id, user_id, balance, created_at
	`
	var account domain.Account
	err := r.db.QueryRow(ctx, query, userID).Scan(&account.ID, &account.UserID, &account.Balance, &account.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return nil, domain.ErrAccountExists
			case pgerrcode.ForeignKeyViolation:
				return nil, domain.ErrUserNotFound
			}
		}
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

// GetOrCreateByUserID returns the user's account, creating it when missing.
// A concurrent insert for the same user is absorbed by ON CONFLICT, so the
// surrounding transaction is never aborted by a unique violation.
func (r *Repository) GetOrCreateByUserID(ctx context.Context, userID int64) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (user_id, balance)
		VALUES ($1, 0)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING id, user_id, balance, created_at
	`
	var account domain.Account
	err := r.db.QueryRow(ctx, query, userID).Scan(&account.ID, &account.UserID, &account.Balance, &account.CreatedAt)
	if err == nil {
		return &account, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, domain.ErrUserNotFound
		}
		zap.L().Error("failed to upsert account", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return r.GetByUserID(ctx, userID)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return r.get(ctx, `SELECT id, user_id, balance, created_at FROM accounts WHERE id = $1`, id)
}

// GetByIDForUpdate locks the account row; availability checks and balance
// changes made after it cannot interleave with another transaction's.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error) {
	return r.get(ctx, `SELECT id, user_id, balance, created_at FROM accounts WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Account, error) {
	return r.get(ctx, `SELECT id, user_id, balance, created_at FROM accounts WHERE user_id = $1`, userID)
}

func (r *Repository) get(ctx context.Context, query string, arg int64) (*domain.Account, error) {
	var account domain.Account
	err := r.db.QueryRow(ctx, query, arg).Scan(&account.ID, &account.UserID, &account.Balance, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) AddBalance(ctx context.Context, id int64, delta decimal.Decimal) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET balance = balance + $1
		WHERE id = $2
		RETURNING id, user_id, balance, created_at
	`
	var account domain.Account
	err := r.db.QueryRow(ctx, query, delta, id).Scan(&account.ID, &account.UserID, &account.Balance, &account.CreatedAt)
	if err != nil {
		zap.L().Error("failed to update account balance", zap.Int64("account_id", id), zap.Error(err))
		return nil, err
	}
	return &account, nil
}
