package paymentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	query := `
		INSERT INTO payments (auction_id, payer_id, amount, currency, external_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, p.AuctionID, p.PayerID, p.Amount, p.Currency, p.ExternalRef, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) FindByRef(ctx context.Context, auctionID int64, externalRef string) (*domain.Payment, error) {
	query := `
		SELECT id, auction_id, payer_id, amount, currency, external_ref, created_at
		FROM payments
		WHERE auction_id = $1 AND external_ref = $2
	`
	var p domain.Payment
	err := r.db.QueryRow(ctx, query, auctionID, externalRef).
		Scan(&p.ID, &p.AuctionID, &p.PayerID, &p.Amount, &p.Currency, &p.ExternalRef, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) SumByPayer(ctx context.Context, auctionID, payerID int64) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE auction_id = $1 AND payer_id = $2
	`
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, auctionID, payerID).Scan(&sum); err != nil {
		zap.L().Error("can't sum payments", zap.Int64("auction_id", auctionID), zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}
