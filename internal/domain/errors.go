package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every concrete error below wraps exactly one of them so callers
// can branch on the kind with errors.Is.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidState   = errors.New("invalid state")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidBid     = errors.New("invalid bid")
	ErrInvalidAuction = errors.New("invalid auction")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidPayment = errors.New("invalid payment")
)

var (
	ErrAuctionNotFound = fmt.Errorf("auction %w", ErrNotFound)
	ErrBidNotFound     = fmt.Errorf("bid %w", ErrNotFound)
	ErrAccountNotFound = fmt.Errorf("account %w", ErrNotFound)
	ErrHoldNotFound    = fmt.Errorf("active hold %w", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrPetNotFound     = fmt.Errorf("pet %w", ErrNotFound)

	ErrAuctionInvalidState = fmt.Errorf("auction %w", ErrInvalidState)
	ErrInsufficientFunds   = fmt.Errorf("%w: insufficient available funds", ErrInvalidAmount)
	ErrAccountExists       = fmt.Errorf("%w: account already exists", ErrInvalidState)
)
