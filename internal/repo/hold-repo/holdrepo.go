package holdrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pawction/internal/domain"
	"github.com/GlebRadaev/pawction/internal/pg"
)

const columns = `id, account_id, auction_id, amount, status, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, hold *domain.DepositHold) (*domain.DepositHold, error) {
	query := `
		INSERT INTO deposit_holds (account_id, auction_id, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		hold.AccountID, hold.AuctionID, hold.Amount, hold.Status, hold.CreatedAt, hold.UpdatedAt,
	).Scan(&hold.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, domain.ErrAuctionNotFound
		}
		zap.L().Error("can't save deposit hold", zap.Error(err))
		return nil, err
	}
	return hold, nil
}

func (r *Repository) FindByAccountAndAuction(ctx context.Context, accountID, auctionID int64) (*domain.DepositHold, error) {
	query := `SELECT ` + columns + ` FROM deposit_holds WHERE account_id = $1 AND auction_id = $2`
	var h domain.DepositHold
	err := r.db.QueryRow(ctx, query, accountID, auctionID).
		Scan(&h.ID, &h.AccountID, &h.AuctionID, &h.Amount, &h.Status, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find deposit hold", zap.Error(err))
		return nil, err
	}
	return &h, nil
}

// SumHeld is the part of the balance reserved by HELD holds.
func (r *Repository) SumHeld(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM deposit_holds
		WHERE account_id = $1 AND status = 'HELD'
	`
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, accountID).Scan(&sum); err != nil {
		zap.L().Error("can't sum held amount", zap.Int64("account_id", accountID), zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

// UpdateStatus is a compare-and-set: it only moves holds currently in from.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.HoldStatus, at time.Time) (bool, error) {
	query := `
		UPDATE deposit_holds
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`
	tag, err := r.db.Exec(ctx, query, to, at, id, from)
	if err != nil {
		zap.L().Error("failed to update deposit hold", zap.Int64("hold_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListByAccount(ctx context.Context, accountID int64) ([]domain.DepositHold, error) {
	return r.list(ctx, `SELECT `+columns+` FROM deposit_holds WHERE account_id = $1 ORDER BY created_at DESC, id DESC`, accountID)
}

func (r *Repository) ListByAuction(ctx context.Context, auctionID int64) ([]domain.DepositHold, error) {
	return r.list(ctx, `SELECT `+columns+` FROM deposit_holds WHERE auction_id = $1 ORDER BY id ASC`, auctionID)
}

func (r *Repository) list(ctx context.Context, query string, arg int64) ([]domain.DepositHold, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		zap.L().Error("can't get deposit holds", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var holds []domain.DepositHold
	for rows.Next() {
		var h domain.DepositHold
		if err := rows.Scan(&h.ID, &h.AccountID, &h.AuctionID, &h.Amount, &h.Status, &h.CreatedAt, &h.UpdatedAt); err != nil {
			zap.L().Error("can't scan deposit hold row", zap.Error(err))
			return nil, err
		}
		holds = append(holds, h)
	}
	return holds, rows.Err()
}
