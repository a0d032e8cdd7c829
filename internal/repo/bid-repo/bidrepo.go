package bidrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) Create(ctx context.Context, bid *domain.Bid) (*domain.Bid, error) {
	query := `
		INSERT INTO bids (auction_id, bidder_id, amount, status, bid_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, bid.AuctionID, bid.BidderID, bid.Amount, bid.Status, bid.BidTime).Scan(&bid.ID)
	if err != nil {
		zap.L().Error("can't save bid", zap.Error(err))
		return nil, err
	}
	return bid, nil
}

// FindTop returns the leading bid: highest amount, earliest bid time.
func (r *Repository) FindTop(ctx context.Context, auctionID int64) (*domain.Bid, error) {
	return r.findRanked(ctx, auctionID, 0)
}

func (r *Repository) FindSecond(ctx context.Context, auctionID int64) (*domain.Bid, error) {
	return r.findRanked(ctx, auctionID, 1)
}

func (r *Repository) findRanked(ctx context.Context, auctionID int64, offset int) (*domain.Bid, error) {
	query := `
		SELECT id, auction_id, bidder_id, amount, status, bid_time
		FROM bids
		WHERE auction_id = $1
		ORDER BY amount DESC, bid_time ASC, id ASC
		LIMIT 1 OFFSET $2
	`
	var bid domain.Bid
	err := r.db.QueryRow(ctx, query, auctionID, offset).
		Scan(&bid.ID, &bid.AuctionID, &bid.BidderID, &bid.Amount, &bid.Status, &bid.BidTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get ranked bid", zap.Int64("auction_id", auctionID), zap.Error(err))
		return nil, err
	}
	return &bid, nil
}

func (r *Repository) ListByAuction(ctx context.Context, auctionID int64) ([]domain.Bid, error) {
	query := `
		SELECT id, auction_id, bidder_id, amount, status, bid_time
		FROM bids
		WHERE auction_id = $1
		ORDER BY bid_time DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, auctionID)
	if err != nil {
		zap.L().Error("can't get bids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bids []domain.Bid
	for rows.Next() {
		var bid domain.Bid
		if err := rows.Scan(&bid.ID, &bid.AuctionID, &bid.BidderID, &bid.Amount, &bid.Status, &bid.BidTime); err != nil {
			zap.L().Error("can't scan bid row", zap.Error(err))
			return nil, err
		}
		bids = append(bids, bid)
	}
	return bids, rows.Err()
}

func (r *Repository) CountByAuction(ctx context.Context, auctionID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM bids WHERE auction_id = $1`, auctionID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count bids", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// MarkOutbidExcept moves every bid of the auction except keepID to OUTBID in a
// single statement. keepID 0 outbids all of them.
func (r *Repository) MarkOutbidExcept(ctx context.Context, auctionID, keepID int64) (int64, error) {
	query := `
		UPDATE bids
		SET status = 'OUTBID'
		WHERE auction_id = $1 AND id <> $2 AND status <> 'OUTBID'
	`
	tag, err := r.db.Exec(ctx, query, auctionID, keepID)
	if err != nil {
		zap.L().Error("failed to mark bids outbid", zap.Int64("auction_id", auctionID), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// UpdateStatus is a compare-and-set on the bid status.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.BidStatus) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE bids SET status = $1 WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		zap.L().Error("failed to update bid status", zap.Int64("bid_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
