package auctionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pawction/internal/domain"
	"github.com/GlebRadaev/pawction/internal/pg"
)

const columns = `id, pet_id, seller_id, winner_id, description, start_price, highest_bid, status,
	payment_status, created_at, end_time, updated_at, payment_due_date`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAuction(row pgx.Row) (*domain.Auction, error) {
	var a domain.Auction
	err := row.Scan(
		&a.ID, &a.PetID, &a.SellerID, &a.WinnerID, &a.Description, &a.StartPrice, &a.HighestBid, &a.Status,
		&a.PaymentStatus, &a.CreatedAt, &a.EndTime, &a.UpdatedAt, &a.PaymentDueDate,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) Create(ctx context.Context, a *domain.Auction) (*domain.Auction, error) {
	query := `
		INSERT INTO auctions (pet_id, seller_id, description, start_price, highest_bid, status,
			payment_status, created_at, end_time, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		a.PetID, a.SellerID, a.Description, a.StartPrice, a.HighestBid, a.Status,
		a.PaymentStatus, a.CreatedAt, a.EndTime, a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		zap.L().Error("can't save auction", zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Auction, error) {
	return r.get(ctx, `SELECT `+columns+` FROM auctions WHERE id = $1`, id)
}

// GetByIDForUpdate locks the auction row until the surrounding transaction
// ends. Every mutation of an auction, its bids or its holds goes through it.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Auction, error) {
	return r.get(ctx, `SELECT `+columns+` FROM auctions WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) get(ctx context.Context, query string, id int64) (*domain.Auction, error) {
	auction, err := scanAuction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get auction", zap.Int64("auction_id", id), zap.Error(err))
		return nil, err
	}
	return auction, nil
}

func (r *Repository) Update(ctx context.Context, a *domain.Auction) error {
	query := `
		UPDATE auctions
		SET winner_id = $1, description = $2, highest_bid = $3, status = $4, payment_status = $5,
			end_time = $6, updated_at = $7, payment_due_date = $8
		WHERE id = $9
	`
	_, err := r.db.Exec(ctx, query,
		a.WinnerID, a.Description, a.HighestBid, a.Status, a.PaymentStatus,
		a.EndTime, a.UpdatedAt, a.PaymentDueDate, a.ID,
	)
	if err != nil {
		zap.L().Error("failed to update auction", zap.Int64("auction_id", a.ID), zap.Error(err))
		return err
	}
	return nil
}

// FindExpiredLiveIDs pages LIVE auctions whose end time has passed, keyed by id.
func (r *Repository) FindExpiredLiveIDs(ctx context.Context, cutoff time.Time, afterID int64, limit int) ([]int64, error) {
	query := `
		SELECT id
		FROM auctions
		WHERE status = 'LIVE' AND end_time <= $1 AND id > $2
		ORDER BY id ASC
		LIMIT $3
	`
	return r.ids(ctx, query, cutoff, afterID, limit)
}

// FindOverdueUnpaidIDs pages ENDED unpaid auctions whose payment window closed.
func (r *Repository) FindOverdueUnpaidIDs(ctx context.Context, cutoff time.Time, afterID int64, limit int) ([]int64, error) {
	query := `
		SELECT id
		FROM auctions
		WHERE status = 'ENDED' AND payment_status = 'UNPAID' AND payment_due_date <= $1 AND id > $2
		ORDER BY id ASC
		LIMIT $3
	`
	return r.ids(ctx, query, cutoff, afterID, limit)
}

func (r *Repository) ids(ctx context.Context, query string, cutoff time.Time, afterID int64, limit int) ([]int64, error) {
	rows, err := r.db.Query(ctx, query, cutoff, afterID, limit)
	if err != nil {
		zap.L().Error("can't get auction ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan auction id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
