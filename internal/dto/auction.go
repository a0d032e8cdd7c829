package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/pawction/internal/domain"
	"github.com/GlebRadaev/pawction/internal/service/policy"
)

type CreateAuctionRequestDTO struct {
	PetID       int64           `json:"pet_id" example:"3"`
	StartPrice  decimal.Decimal `json:"start_price" swaggertype:"string" example:"40.00"`
	Description string          `json:"description" example:"Friendly beagle, vaccinated"`
	EndTime     time.Time       `json:"end_time" example:"2024-05-01T22:00:00Z"`
}

type UpdateAuctionDetailRequestDTO struct {
	Description string `json:"description" example:"Friendly beagle, vaccinated and chipped"`
}

type UpdateAuctionEndTimeRequestDTO struct {
	EndTime time.Time `json:"end_time" example:"2024-05-01T22:00:00Z"`
}

type UpdatePetRequestDTO struct {
	Name    string `json:"name" example:"Rex"`
	Details string `json:"details" example:"beagle, 2y"`
}

type PetResponseDTO struct {
	ID        int64     `json:"id" example:"3"`
	OwnerID   int64     `json:"owner_id" example:"7"`
	Name      string    `json:"name" example:"Rex"`
	Details   string    `json:"details" example:"beagle, 2y"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-05-01T10:00:00Z"`
}

type AuctionResponseDTO struct {
	ID             int64           `json:"id" example:"7"`
	PetID          int64           `json:"pet_id" example:"3"`
	SellerID       int64           `json:"seller_id" example:"2"`
	WinnerID       *int64          `json:"winner_id,omitempty" example:"4"`
	Description    string          `json:"description" example:"Friendly beagle, vaccinated"`
	StartPrice     decimal.Decimal `json:"start_price" swaggertype:"string" example:"40.00"`
	HighestBid     decimal.Decimal `json:"highest_bid" swaggertype:"string" example:"45.00"`
	NextMinimumBid decimal.Decimal `json:"next_minimum_bid" swaggertype:"string" example:"46.00"`
	RequiredHold   decimal.Decimal `json:"required_hold" swaggertype:"string" example:"5.00"`
	Status         string          `json:"status" example:"LIVE"`
	PaymentStatus  string          `json:"payment_status" example:"UNPAID"`
	CreatedAt      time.Time       `json:"created_at" example:"2024-05-01T10:00:00Z"`
	EndTime        time.Time       `json:"end_time" example:"2024-05-01T22:00:00Z"`
	PaymentDueDate *time.Time      `json:"payment_due_date,omitempty" example:"2024-05-04T22:00:00Z"`
}

type PlaceBidRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"45.00"`
}

type BidResponseDTO struct {
	ID        int64           `json:"id" example:"11"`
	AuctionID int64           `json:"auction_id" example:"7"`
	BidderID  int64           `json:"bidder_id" example:"4"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"45.00"`
	Status    string          `json:"status" example:"WINNING"`
	BidTime   time.Time       `json:"bid_time" example:"2024-05-01T11:00:00Z"`
}

func AuctionResponse(a *domain.Auction) AuctionResponseDTO {
	return AuctionResponseDTO{
		ID:             a.ID,
		PetID:          a.PetID,
		SellerID:       a.SellerID,
		WinnerID:       a.WinnerID,
		Description:    a.Description,
		StartPrice:     a.StartPrice,
		HighestBid:     a.HighestBid,
		NextMinimumBid: policy.NextMinimumBid(a),
		RequiredHold:   policy.RequiredHold(a),
		Status:         string(a.Status),
		PaymentStatus:  string(a.PaymentStatus),
		CreatedAt:      a.CreatedAt,
		EndTime:        a.EndTime,
		PaymentDueDate: a.PaymentDueDate,
	}
}

func PetResponse(p *domain.Pet) PetResponseDTO {
	return PetResponseDTO{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Details:   p.Details,
		UpdatedAt: p.UpdatedAt,
	}
}

func BidResponse(b *domain.Bid) BidResponseDTO {
	return BidResponseDTO{
		ID:        b.ID,
		AuctionID: b.AuctionID,
		BidderID:  b.BidderID,
		Amount:    b.Amount,
		Status:    string(b.Status),
		BidTime:   b.BidTime,
	}
}
