package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AuctionStatus string

const (
	AuctionLive     AuctionStatus = "LIVE"
	AuctionEnded    AuctionStatus = "ENDED"
	AuctionSettled  AuctionStatus = "SETTLED"
	AuctionCanceled AuctionStatus = "CANCELED"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "UNPAID"
	PaymentPaid   PaymentStatus = "PAID"
)

type BidStatus string

const (
	BidWinning BidStatus = "WINNING"
	BidOutbid  BidStatus = "OUTBID"
	BidWon     BidStatus = "WON"
)

type HoldStatus string

const (
	HoldHeld      HoldStatus = "HELD"
	HoldReleased  HoldStatus = "RELEASED"
	HoldForfeited HoldStatus = "FORFEITED"
	HoldApplied   HoldStatus = "APPLIED"
)

type TransactionKind string

const (
	TxDeposit         TransactionKind = "DEPOSIT"
	TxWithdrawal      TransactionKind = "WITHDRAWAL"
	TxHoldApplied     TransactionKind = "HOLD_APPLIED"
	TxPenalty         TransactionKind = "PENALTY"
	TxSaleProceeds    TransactionKind = "SALE_PROCEEDS"
	TxPenaltyProceeds TransactionKind = "PENALTY_PROCEEDS"
	TxRefund          TransactionKind = "REFUND"
)

type HoldOption string

const (
	ApplyToPayment   HoldOption = "APPLY_TO_PAYMENT"
	ReleaseToAccount HoldOption = "RELEASE_TO_ACCOUNT"
)

type User struct {
	ID        int64     `db:"id"`
	Login     string    `db:"login"`
	CreatedAt time.Time `db:"created_at"`
}

type Pet struct {
	ID        int64     `db:"id"`
	OwnerID   int64     `db:"owner_id"`
	Name      string    `db:"name"`
	Details   string    `db:"details"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Auction struct {
	ID             int64           `db:"id"`
	PetID          int64           `db:"pet_id"`
	SellerID       int64           `db:"seller_id"`
	WinnerID       *int64          `db:"winner_id"`
	Description    string          `db:"description"`
	StartPrice     decimal.Decimal `db:"start_price"`
	HighestBid     decimal.Decimal `db:"highest_bid"`
	Status         AuctionStatus   `db:"status"`
	PaymentStatus  PaymentStatus   `db:"payment_status"`
	CreatedAt      time.Time       `db:"created_at"`
	EndTime        time.Time       `db:"end_time"`
	UpdatedAt      time.Time       `db:"updated_at"`
	PaymentDueDate *time.Time      `db:"payment_due_date"`
}

// HasBids reports whether the auction price moved off its start price.
func (a *Auction) HasBids() bool {
	return !a.HighestBid.Equal(a.StartPrice)
}

func (a *Auction) IsWinner(userID int64) bool {
	return a.WinnerID != nil && *a.WinnerID == userID
}

type Bid struct {
	ID        int64           `db:"id"`
	AuctionID int64           `db:"auction_id"`
	BidderID  int64           `db:"bidder_id"`
	Amount    decimal.Decimal `db:"amount"`
	Status    BidStatus       `db:"status"`
	BidTime   time.Time       `db:"bid_time"`
}

type Account struct {
	ID        int64           `db:"id"`
	UserID    int64           `db:"user_id"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedAt time.Time       `db:"created_at"`
}

type DepositHold struct {
	ID        int64           `db:"id"`
	AccountID int64           `db:"account_id"`
	AuctionID int64           `db:"auction_id"`
	Amount    decimal.Decimal `db:"amount"`
	Status    HoldStatus      `db:"status"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type Transaction struct {
	ID        int64           `db:"id"`
	AccountID int64           `db:"account_id"`
	AuctionID *int64          `db:"auction_id"`
	Kind      TransactionKind `db:"kind"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
}

type Payment struct {
	ID          int64           `db:"id"`
	AuctionID   int64           `db:"auction_id"`
	PayerID     int64           `db:"payer_id"`
	Amount      decimal.Decimal `db:"amount"`
	Currency    string          `db:"currency"`
	ExternalRef string          `db:"external_ref"`
	CreatedAt   time.Time       `db:"created_at"`
}

// Settlement is the payment view of an ended auction. AmountDue is what the
// winner still owes after applied holds and recorded payments.
type Settlement struct {
	AuctionID      int64
	SellerID       int64
	WinnerID       *int64
	FinalPrice     decimal.Decimal
	AppliedHold    decimal.Decimal
	Paid           decimal.Decimal
	AmountDue      decimal.Decimal
	PaymentDueDate *time.Time
	PaymentStatus  PaymentStatus
	Status         AuctionStatus
}
