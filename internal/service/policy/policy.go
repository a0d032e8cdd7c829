// Package policy holds the pricing rules of an auction: the deposit hold a
// bidder must cover and the minimum step between successive bids.
package policy

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/pawction/internal/domain"
)

const (
	// AuctionDuration is the only allowed distance between creation and end time.
	AuctionDuration = 12 * time.Hour
	// PaymentWindow is how long a winner has to pay after close or promotion.
	PaymentWindow = 72 * time.Hour
	// MoneyPlaces is the scale of every stored money column, NUMERIC(19,2).
	MoneyPlaces = 2
)

// MinIncrement is the fixed step a new bid must add to the highest bid.
var MinIncrement = decimal.NewFromInt(1)

type tier struct {
	upTo decimal.Decimal
	hold decimal.Decimal
}

var (
	holdTiers = []tier{
		{upTo: decimal.NewFromInt(50), hold: decimal.NewFromInt(5)},
		{upTo: decimal.NewFromInt(100), hold: decimal.NewFromInt(10)},
		{upTo: decimal.NewFromInt(500), hold: decimal.NewFromInt(25)},
	}
	maxHold = decimal.NewFromInt(50)
)

// RequiredHold returns the deposit a bidder must have available to bid on
// the auction. It depends on the start price only.
func RequiredHold(auction *domain.Auction) decimal.Decimal {
	for _, t := range holdTiers {
		if auction.StartPrice.LessThanOrEqual(t.upTo) {
			return t.hold
		}
	}
	return maxHold
}

// IsValidAmount reports whether amount is positive and has no digits past
// MoneyPlaces, so the database stores it unchanged.
func IsValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Equal(amount.Truncate(MoneyPlaces))
}

// CheckAmount wraps kind when amount is not a valid money amount.
func CheckAmount(amount decimal.Decimal, kind error) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be larger than 0", kind)
	}
	if !IsValidAmount(amount) {
		return fmt.Errorf("%w: amount %s has more than %d decimal places", kind, amount, MoneyPlaces)
	}
	return nil
}

func IsValidIncrement(auction *domain.Auction, proposed decimal.Decimal) (bool, error) {
	if err := CheckAmount(proposed, domain.ErrInvalidAmount); err != nil {
		return false, err
	}
	return proposed.GreaterThanOrEqual(NextMinimumBid(auction)), nil
}

func NextMinimumBid(auction *domain.Auction) decimal.Decimal {
	return auction.HighestBid.Add(MinIncrement)
}

// IsValidEndTime reports whether end is exactly one AuctionDuration after
// from, compared at second precision.
func IsValidEndTime(from, end time.Time) bool {
	return end.Truncate(time.Second).Equal(from.Add(AuctionDuration).Truncate(time.Second))
}
