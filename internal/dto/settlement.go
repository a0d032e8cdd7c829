package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/pawction/internal/domain"
)

type HoldOptionRequestDTO struct {
	Option string `json:"option" enums:"APPLY_TO_PAYMENT,RELEASE_TO_ACCOUNT" example:"APPLY_TO_PAYMENT"`
}

type PaymentRequestDTO struct {
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"40.00"`
	Currency    string          `json:"currency" example:"USD"`
	ExternalRef string          `json:"external_ref" example:"pi_3PZ2mK2eZvKYlo2C"`
}

type SettlementResponseDTO struct {
	AuctionID      int64           `json:"auction_id" example:"7"`
	SellerID       int64           `json:"seller_id" example:"2"`
	WinnerID       *int64          `json:"winner_id,omitempty" example:"4"`
	FinalPrice     decimal.Decimal `json:"final_price" swaggertype:"string" example:"45.00"`
	AppliedHold    decimal.Decimal `json:"applied_hold" swaggertype:"string" example:"5.00"`
	Paid           decimal.Decimal `json:"paid" swaggertype:"string" example:"0"`
	AmountDue      decimal.Decimal `json:"amount_due" swaggertype:"string" example:"40.00"`
	PaymentDueDate *time.Time      `json:"payment_due_date,omitempty" example:"2024-05-04T22:00:00Z"`
	PaymentStatus  string          `json:"payment_status" example:"UNPAID"`
	Status         string          `json:"status" example:"ENDED"`
}

func SettlementResponse(s *domain.Settlement) SettlementResponseDTO {
	return SettlementResponseDTO{
		AuctionID:      s.AuctionID,
		SellerID:       s.SellerID,
		WinnerID:       s.WinnerID,
		FinalPrice:     s.FinalPrice,
		AppliedHold:    s.AppliedHold,
		Paid:           s.Paid,
		AmountDue:      s.AmountDue,
		PaymentDueDate: s.PaymentDueDate,
		PaymentStatus:  string(s.PaymentStatus),
		Status:         string(s.Status),
	}
}
