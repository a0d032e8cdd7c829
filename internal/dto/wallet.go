package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/pawction/internal/domain"
)

type AccountResponseDTO struct {
	ID        int64           `json:"id" example:"1"`
	UserID    int64           `json:"user_id" example:"4"`
	Balance   decimal.Decimal `json:"balance" swaggertype:"string" example:"100.00"`
	Available decimal.Decimal `json:"available" swaggertype:"string" example:"95.00"`
	CreatedAt time.Time       `json:"created_at" example:"2024-05-01T10:00:00Z"`
}

type AmountRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"50.00"`
}

type TransactionResponseDTO struct {
	ID        int64           `json:"id" example:"12"`
	AuctionID *int64          `json:"auction_id,omitempty" example:"7"`
	Kind      string          `json:"kind" example:"DEPOSIT"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"50.00"`
	CreatedAt time.Time       `json:"created_at" example:"2024-05-01T10:00:00Z"`
}

type HoldResponseDTO struct {
	ID        int64           `json:"id" example:"5"`
	AuctionID int64           `json:"auction_id" example:"7"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"5.00"`
	Status    string          `json:"status" example:"HELD"`
	CreatedAt time.Time       `json:"created_at" example:"2024-05-01T11:00:00Z"`
	UpdatedAt time.Time       `json:"updated_at" example:"2024-05-01T11:00:00Z"`
}

func TransactionResponse(tx *domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:        tx.ID,
		AuctionID: tx.AuctionID,
		Kind:      string(tx.Kind),
		Amount:    tx.Amount,
		CreatedAt: tx.CreatedAt,
	}
}

func HoldResponse(h *domain.DepositHold) HoldResponseDTO {
	return HoldResponseDTO{
		ID:        h.ID,
		AuctionID: h.AuctionID,
		Amount:    h.Amount,
		Status:    string(h.Status),
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}
