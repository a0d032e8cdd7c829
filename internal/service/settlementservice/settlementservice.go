package settlementservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pawction/internal/domain"
	"github.com/GlebRadaev/pawction/internal/monitoring"
	"github.com/GlebRadaev/pawction/internal/notify"
	"github.com/GlebRadaev/pawction/internal/pg"
	"github.com/GlebRadaev/pawction/internal/service/policy"
	"github.com/GlebRadaev/pawction/pkg/clock"
)

//go:generate mockgen -source=settlementservice.go -destination=mock_settlementservice.go -package=settlementservice

type AuctionRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Auction, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Auction, error)
	Update(ctx context.Context, auction *domain.Auction) error
	FindOverdueUnpaidIDs(ctx context.Context, cutoff time.Time, afterID int64, limit int) ([]int64, error)
}

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	FindByRef(ctx context.Context, auctionID int64, externalRef string) (*domain.Payment, error)
	SumByPayer(ctx context.Context, auctionID, payerID int64) (decimal.Decimal, error)
}

type Wallet interface {
	GetAccountByUserID(ctx context.Context, userID int64) (*domain.Account, error)
	EnsureAccount(ctx context.Context, userID int64) (*domain.Account, error)
	GetAuctionHolds(ctx context.Context, auctionID int64) ([]domain.DepositHold, error)
	FindHold(ctx context.Context, accountID, auctionID int64) (*domain.DepositHold, error)
	ReleaseHold(ctx context.Context, accountID, auctionID int64) (*domain.DepositHold, error)
	ForfeitHold(ctx context.Context, accountID, auctionID int64) (*domain.DepositHold, error)
	ApplyHold(ctx context.Context, accountID, auctionID int64) (*domain.DepositHold, error)
	ForfeitAppliedHold(ctx context.Context, accountID, auctionID int64) (*domain.DepositHold, error)
	RefundAppliedHold(ctx context.Context, accountID, auctionID int64) (*domain.DepositHold, error)
	Credit(ctx context.Context, accountID int64, amount decimal.Decimal, kind domain.TransactionKind, auctionID *int64) (*domain.Transaction, error)
	Debit(ctx context.Context, accountID int64, amount decimal.Decimal, kind domain.TransactionKind, auctionID *int64) (*domain.Transaction, error)
}

type Bidding interface {
	GetSecondHighestBid(ctx context.Context, auctionID int64) (*domain.Bid, error)
	PromoteBid(ctx context.Context, auctionID, bidID int64) error
	OutbidAll(ctx context.Context, auctionID int64) error
}

type Publisher interface {
	Publish(ctx context.Context, event notify.Event)
}

const expireBatchSize = 50

// Service runs the payment window of ended auctions: hold options, payments,
// expiry with runner-up promotion and cancellation.
type Service struct {
	txManager pg.TXManager
	auctions  AuctionRepo
	payments  PaymentRepo
	wallet    Wallet
	bidding   Bidding
	publisher Publisher
	clock     clock.Clock
	currency  string
	batchSize int
}

func New(
	txManager pg.TXManager,
	auctions AuctionRepo,
	payments PaymentRepo,
	wallet Wallet,
	bidding Bidding,
	publisher Publisher,
	clk clock.Clock,
	currency string,
) *Service {
	return &Service{
		txManager: txManager,
		auctions:  auctions,
		payments:  payments,
		wallet:    wallet,
		bidding:   bidding,
		publisher: publisher,
		clock:     clk,
		currency:  strings.ToUpper(currency),
		batchSize: expireBatchSize,
	}
}

// Begin opens the payment window for the winner of an ENDED auction and
// frees the deposits of everyone else.
func (s *Service) Begin(ctx context.Context, auctionID, winnerID int64, finalPrice decimal.Decimal, dueAt time.Time) (*domain.Auction, error) {
	var auction *domain.Auction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		auction, err = s.lock(ctx, auctionID)
		if err != nil {
			return err
		}
		if auction.Status != domain.AuctionEnded {
			return fmt.Errorf("%w: settlement needs an ended auction, got %s", domain.ErrAuctionInvalidState, auction.Status)
		}
		if auction.WinnerID != nil && !auction.IsWinner(winnerID) {
			return fmt.Errorf("%w: user %d is not the winner of auction %d", domain.ErrInvalidState, winnerID, auctionID)
		}
		auction.WinnerID = &winnerID
		auction.HighestBid = finalPrice
		auction.PaymentDueDate = &dueAt
		auction.PaymentStatus = domain.PaymentUnpaid
		auction.UpdatedAt = s.clock.Now()
		if err := s.auctions.Update(ctx, auction); err != nil {
			return err
		}
		winner, err := s.wallet.GetAccountByUserID(ctx, winnerID)
		if err != nil {
			return err
		}
		return s.releaseHolds(ctx, auctionID, winner.ID)
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("Settlement started", zap.Int64("auction_id", auctionID), zap.Int64("winner_id", winnerID),
		zap.String("final_price", finalPrice.String()), zap.Time("due", dueAt))
	return auction, nil
}

// NoWinner closes an ENDED auction that received no bids.
func (s *Service) NoWinner(ctx context.Context, auctionID int64) (*domain.Auction, error) {
	var auction *domain.Auction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		auction, err = s.lock(ctx, auctionID)
		if err != nil {
			return err
		}
		if auction.Status != domain.AuctionEnded {
			return fmt.Errorf("%w: auction %d is %s", domain.ErrAuctionInvalidState, auctionID, auction.Status)
		}
		if err := s.releaseHolds(ctx, auctionID, 0); err != nil {
			return err
		}
		auction.Status = domain.AuctionSettled
		auction.WinnerID = nil
		auction.PaymentDueDate = nil
		auction.UpdatedAt = s.clock.Now()
		return s.auctions.Update(ctx, auction)
	})
	if err != nil {
		return nil, err
	}
	return auction, nil
}

func (s *Service) GetSettlement(ctx context.Context, auctionID int64) (*domain.Settlement, error) {
	auction, err := s.auctions.GetByID(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, domain.ErrAuctionNotFound
	}
	applied, paid, err := s.amounts(ctx, auction)
	if err != nil {
		return nil, err
	}
	return summarize(auction, applied, paid), nil
}

// ChooseHoldOption lets the winner count the deposit toward the price or get
// it back. Repeating the choice already made is a no-op.
func (s *Service) ChooseHoldOption(ctx context.Context, auctionID, winnerID int64, option domain.HoldOption) (*domain.Settlement, error) {
	if option != domain.ApplyToPayment && option != domain.ReleaseToAccount {
		return nil, fmt.Errorf("%w: unknown hold option %q", domain.ErrInvalidPayment, option)
	}

	var (
		settlement *domain.Settlement
		auction    *domain.Auction
		paidOff    bool
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		auction, err = s.lockOpen(ctx, auctionID, winnerID)
		if err != nil {
			return err
		}
		account, err := s.wallet.GetAccountByUserID(ctx, winnerID)
		if err != nil {
			return err
		}
		hold, err := s.wallet.FindHold(ctx, account.ID, auctionID)
		if err != nil {
			return err
		}
		if hold == nil {
			return domain.ErrHoldNotFound
		}
		paid, err := s.payments.SumByPayer(ctx, auctionID, winnerID)
		if err != nil {
			return err
		}

		applied := decimal.Zero
		switch {
		case option == domain.ApplyToPayment && hold.Status == domain.HoldApplied:
			applied = hold.Amount
		case option == domain.ApplyToPayment && hold.Status == domain.HoldHeld:
			due := summarize(auction, decimal.Zero, paid).AmountDue
			if hold.Amount.GreaterThan(due) {
				return fmt.Errorf("%w: deposit %s exceeds amount due %s", domain.ErrInvalidPayment, hold.Amount, due)
			}
			if _, err := s.wallet.ApplyHold(ctx, account.ID, auctionID); err != nil {
				return err
			}
			applied = hold.Amount
		case option == domain.ReleaseToAccount && hold.Status == domain.HoldReleased:
		case option == domain.ReleaseToAccount && hold.Status == domain.HoldHeld:
			if _, err := s.wallet.ReleaseHold(ctx, account.ID, auctionID); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: deposit is already %s", domain.ErrInvalidState, hold.Status)
		}

		settlement = summarize(auction, applied, paid)
		if settlement.AmountDue.IsZero() {
			if err := s.finalize(ctx, auction); err != nil {
				return err
			}
			paidOff = true
			settlement = summarize(auction, applied, paid)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("Hold option chosen", zap.Int64("auction_id", auctionID), zap.String("option", string(option)))
	if paidOff {
		s.afterPaid(ctx, auction)
	}
	return settlement, nil
}

// RecordPayment stores an external capture by the winner. A payment with an
// already recorded external reference returns the current settlement when
// it matches the stored one.
func (s *Service) RecordPayment(
	ctx context.Context, auctionID, payerID int64, amount decimal.Decimal, currency, externalRef string,
) (*domain.Settlement, error) {
	if err := policy.CheckAmount(amount, domain.ErrInvalidPayment); err != nil {
		return nil, err
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency != s.currency {
		return nil, fmt.Errorf("%w: unsupported currency %q", domain.ErrInvalidPayment, currency)
	}
	externalRef = strings.TrimSpace(externalRef)
	if externalRef == "" {
		return nil, fmt.Errorf("%w: external reference is required", domain.ErrInvalidPayment)
	}

	var (
		settlement *domain.Settlement
		auction    *domain.Auction
		paidOff    bool
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		auction, err = s.lock(ctx, auctionID)
		if err != nil {
			return err
		}
		existing, err := s.payments.FindByRef(ctx, auctionID, externalRef)
		if err != nil {
			return err
		}
		if existing != nil {
			if existing.PayerID != payerID || !existing.Amount.Equal(amount) || existing.Currency != currency {
				return fmt.Errorf("%w: external reference %q already used", domain.ErrInvalidPayment, externalRef)
			}
			applied, paid, err := s.amounts(ctx, auction)
			if err != nil {
				return err
			}
			settlement = summarize(auction, applied, paid)
			return nil
		}

		if auction.PaymentStatus == domain.PaymentPaid || auction.Status != domain.AuctionEnded {
			return fmt.Errorf("%w: auction %d is not awaiting payment", domain.ErrAuctionInvalidState, auctionID)
		}
		if !auction.IsWinner(payerID) {
			return fmt.Errorf("%w: only the winner can pay for auction %d", domain.ErrUnauthorized, auctionID)
		}
		if s.windowClosed(auction) {
			return fmt.Errorf("%w: payment window has expired", domain.ErrInvalidState)
		}
		applied, paid, err := s.amounts(ctx, auction)
		if err != nil {
			return err
		}
		due := summarize(auction, applied, paid).AmountDue
		if amount.GreaterThan(due) {
			return fmt.Errorf("%w: amount %s exceeds amount due %s", domain.ErrInvalidPayment, amount, due)
		}

		if _, err := s.payments.Create(ctx, &domain.Payment{
			AuctionID:   auctionID,
			PayerID:     payerID,
			Amount:      amount,
			Currency:    currency,
			ExternalRef: externalRef,
			CreatedAt:   s.clock.Now(),
		}); err != nil {
			return err
		}
		paid = paid.Add(amount)
		settlement = summarize(auction, applied, paid)
		if settlement.AmountDue.IsZero() {
			if err := s.finalize(ctx, auction); err != nil {
				return err
			}
			paidOff = true
			settlement = summarize(auction, applied, paid)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("Payment recorded", zap.Int64("auction_id", auctionID), zap.String("external_ref", externalRef),
		zap.String("amount", amount.String()))
	if paidOff {
		s.afterPaid(ctx, auction)
	}
	return settlement, nil
}

// ConfirmPaid settles the auction once nothing is due. Confirming a paid
// auction again returns its settlement unchanged.
func (s *Service) ConfirmPaid(ctx context.Context, auctionID int64) (*domain.Settlement, error) {
	var (
		settlement *domain.Settlement
		auction    *domain.Auction
		paidOff    bool
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		auction, err = s.lock(ctx, auctionID)
		if err != nil {
			return err
		}
		applied, paid, err := s.amounts(ctx, auction)
		if err != nil {
			return err
		}
		settlement = summarize(auction, applied, paid)
		if auction.PaymentStatus == domain.PaymentPaid {
			return nil
		}
		if auction.Status != domain.AuctionEnded {
			return fmt.Errorf("%w: auction %d is not awaiting payment", domain.ErrAuctionInvalidState, auctionID)
		}
		if settlement.AmountDue.IsPositive() {
			return fmt.Errorf("%w: %s is still due", domain.ErrInvalidPayment, settlement.AmountDue)
		}
		if err := s.finalize(ctx, auction); err != nil {
			return err
		}
		paidOff = true
		settlement = summarize(auction, applied, paid)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if paidOff {
		s.afterPaid(ctx, auction)
	}
	return settlement, nil
}

// ExpireAndPromoteNext penalizes a winner who let the payment window lapse
// and passes the auction to the runner-up, or closes it without a winner.
// It reports whether anything changed.
func (s *Service) ExpireAndPromoteNext(ctx context.Context, auctionID int64, now time.Time) (bool, error) {
	var (
		auction *domain.Auction
		outcome string
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		locked, err := s.lock(ctx, auctionID)
		if err != nil {
			return err
		}
		if locked.PaymentStatus == domain.PaymentPaid || locked.Status != domain.AuctionEnded ||
			locked.WinnerID == nil || locked.PaymentDueDate == nil || locked.PaymentDueDate.After(now) {
			return nil
		}
		loserID := *locked.WinnerID
		if err := s.penalize(ctx, locked, loserID); err != nil {
			return err
		}

		second, err := s.bidding.GetSecondHighestBid(ctx, auctionID)
		if err != nil && !errors.Is(err, domain.ErrBidNotFound) {
			return err
		}
		locked.UpdatedAt = s.clock.Now()
		if second == nil || second.BidderID == loserID {
			locked.HighestBid = locked.StartPrice
			locked.WinnerID = nil
			locked.PaymentDueDate = nil
			locked.Status = domain.AuctionSettled
			if err := s.auctions.Update(ctx, locked); err != nil {
				return err
			}
			if err := s.bidding.OutbidAll(ctx, auctionID); err != nil {
				return err
			}
			if err := s.releaseHolds(ctx, auctionID, 0); err != nil {
				return err
			}
			auction, outcome = locked, monitoring.SettlementExpired
			return nil
		}

		due := now.Add(policy.PaymentWindow)
		winnerID := second.BidderID
		locked.WinnerID = &winnerID
		locked.HighestBid = second.Amount
		locked.PaymentDueDate = &due
		if err := s.auctions.Update(ctx, locked); err != nil {
			return err
		}
		if err := s.bidding.PromoteBid(ctx, auctionID, second.ID); err != nil {
			return err
		}
		auction, outcome = locked, monitoring.SettlementPromoted
		return nil
	})
	if err != nil {
		return false, err
	}
	if auction == nil {
		return false, nil
	}

	monitoring.RecordSettlement(outcome)
	event := notify.AuctionSettled
	if outcome == monitoring.SettlementPromoted {
		event = notify.WinnerPromoted
	}
	zap.L().Info("Payment window expired", zap.Int64("auction_id", auctionID), zap.String("outcome", outcome))
	s.publisher.Publish(ctx, notify.NewEvent(event, auction, auction.UpdatedAt))
	return true, nil
}

// ExpireOverdueSettlements runs ExpireAndPromoteNext over every unpaid
// auction whose window has passed. Failures are isolated per auction.
func (s *Service) ExpireOverdueSettlements(ctx context.Context) (int, error) {
	started := time.Now()
	now := s.clock.Now()

	var (
		afterID   int64
		processed int
	)
	for {
		ids, err := s.auctions.FindOverdueUnpaidIDs(ctx, now, afterID, s.batchSize)
		if err != nil {
			return processed, err
		}
		for _, id := range ids {
			ok, err := s.ExpireAndPromoteNext(ctx, id, now)
			if err != nil {
				zap.L().Error("failed to expire settlement", zap.Int64("auction_id", id), zap.Error(err))
				continue
			}
			if ok {
				processed++
			}
		}
		if len(ids) < s.batchSize {
			break
		}
		afterID = ids[len(ids)-1]
	}

	monitoring.ObserveSweep("expire_settlements", started, processed)
	if processed > 0 {
		zap.L().Info("Overdue settlements processed", zap.Int("count", processed))
	}
	return processed, nil
}

// CancelAuctionSettlement unwinds every deposit and payment of an unpaid
// auction and marks it CANCELED.
func (s *Service) CancelAuctionSettlement(ctx context.Context, auctionID int64) (*domain.Auction, error) {
	var (
		auction  *domain.Auction
		canceled bool
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		auction, err = s.lock(ctx, auctionID)
		if err != nil {
			return err
		}
		if auction.PaymentStatus == domain.PaymentPaid {
			return fmt.Errorf("%w: paid auction %d cannot be canceled", domain.ErrAuctionInvalidState, auctionID)
		}
		if auction.Status == domain.AuctionCanceled {
			return nil
		}

		holds, err := s.wallet.GetAuctionHolds(ctx, auctionID)
		if err != nil {
			return err
		}
		for _, h := range holds {
			switch h.Status {
			case domain.HoldHeld:
				_, err = s.wallet.ReleaseHold(ctx, h.AccountID, auctionID)
			case domain.HoldApplied:
				_, err = s.wallet.RefundAppliedHold(ctx, h.AccountID, auctionID)
			}
			if err != nil {
				return err
			}
		}
		if auction.WinnerID != nil {
			if err := s.refundPayments(ctx, auction, *auction.WinnerID); err != nil {
				return err
			}
		}

		auction.Status = domain.AuctionCanceled
		auction.WinnerID = nil
		auction.PaymentDueDate = nil
		auction.HighestBid = auction.StartPrice
		auction.UpdatedAt = s.clock.Now()
		if err := s.auctions.Update(ctx, auction); err != nil {
			return err
		}
		canceled = true
		return s.bidding.OutbidAll(ctx, auctionID)
	})
	if err != nil {
		return nil, err
	}
	if canceled {
		monitoring.RecordSettlement(monitoring.SettlementCanceled)
		zap.L().Info("Auction settlement canceled", zap.Int64("auction_id", auctionID))
		s.publisher.Publish(ctx, notify.NewEvent(notify.AuctionCanceled, auction, auction.UpdatedAt))
	}
	return auction, nil
}

// finalize marks the auction paid, frees leftover deposits and pays the seller.
func (s *Service) finalize(ctx context.Context, auction *domain.Auction) error {
	auction.PaymentStatus = domain.PaymentPaid
	auction.Status = domain.AuctionSettled
	auction.PaymentDueDate = nil
	auction.UpdatedAt = s.clock.Now()
	if err := s.auctions.Update(ctx, auction); err != nil {
		return err
	}
	if err := s.releaseHolds(ctx, auction.ID, 0); err != nil {
		return err
	}
	seller, err := s.wallet.EnsureAccount(ctx, auction.SellerID)
	if err != nil {
		return err
	}
	_, err = s.wallet.Credit(ctx, seller.ID, auction.HighestBid, domain.TxSaleProceeds, &auction.ID)
	return err
}

func (s *Service) afterPaid(ctx context.Context, auction *domain.Auction) {
	monitoring.RecordSettlement(monitoring.SettlementPaid)
	zap.L().Info("Auction paid", zap.Int64("auction_id", auction.ID))
	s.publisher.Publish(ctx, notify.NewEvent(notify.AuctionSettled, auction, auction.UpdatedAt))
}

// penalize keeps the lapsed winner's deposit for the seller and refunds any
// partial payments.
func (s *Service) penalize(ctx context.Context, auction *domain.Auction, loserID int64) error {
	account, err := s.wallet.GetAccountByUserID(ctx, loserID)
	if err != nil {
		return err
	}
	hold, err := s.wallet.FindHold(ctx, account.ID, auction.ID)
	if err != nil {
		return err
	}

	penalty := decimal.Zero
	if hold != nil {
		switch hold.Status {
		case domain.HoldHeld:
			if _, err := s.wallet.ForfeitHold(ctx, account.ID, auction.ID); err != nil {
				return err
			}
			if _, err := s.wallet.Debit(ctx, account.ID, hold.Amount, domain.TxPenalty, &auction.ID); err != nil {
				return err
			}
			penalty = hold.Amount
		case domain.HoldApplied:
			if _, err := s.wallet.ForfeitAppliedHold(ctx, account.ID, auction.ID); err != nil {
				return err
			}
			penalty = hold.Amount
		}
	}
	if penalty.IsPositive() {
		seller, err := s.wallet.EnsureAccount(ctx, auction.SellerID)
		if err != nil {
			return err
		}
		if _, err := s.wallet.Credit(ctx, seller.ID, penalty, domain.TxPenaltyProceeds, &auction.ID); err != nil {
			return err
		}
	}
	zap.L().Info("Winner penalized", zap.Int64("auction_id", auction.ID), zap.Int64("user_id", loserID),
		zap.String("penalty", penalty.String()))
	return s.refundPayments(ctx, auction, loserID)
}

func (s *Service) refundPayments(ctx context.Context, auction *domain.Auction, payerID int64) error {
	paid, err := s.payments.SumByPayer(ctx, auction.ID, payerID)
	if err != nil {
		return err
	}
	if !paid.IsPositive() {
		return nil
	}
	account, err := s.wallet.EnsureAccount(ctx, payerID)
	if err != nil {
		return err
	}
	_, err = s.wallet.Credit(ctx, account.ID, paid, domain.TxRefund, &auction.ID)
	return err
}

// releaseHolds releases every HELD hold on the auction except the one owned
// by keepAccountID. Zero keeps none.
func (s *Service) releaseHolds(ctx context.Context, auctionID, keepAccountID int64) error {
	holds, err := s.wallet.GetAuctionHolds(ctx, auctionID)
	if err != nil {
		return err
	}
	for _, h := range holds {
		if h.Status != domain.HoldHeld || h.AccountID == keepAccountID {
			continue
		}
		if _, err := s.wallet.ReleaseHold(ctx, h.AccountID, auctionID); err != nil {
			return err
		}
	}
	return nil
}

// amounts returns the winner's applied deposit and recorded payments.
func (s *Service) amounts(ctx context.Context, auction *domain.Auction) (decimal.Decimal, decimal.Decimal, error) {
	if auction.WinnerID == nil {
		return decimal.Zero, decimal.Zero, nil
	}
	applied := decimal.Zero
	account, err := s.wallet.GetAccountByUserID(ctx, *auction.WinnerID)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return decimal.Zero, decimal.Zero, err
	}
	if account != nil {
		hold, err := s.wallet.FindHold(ctx, account.ID, auction.ID)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		if hold != nil && hold.Status == domain.HoldApplied {
			applied = hold.Amount
		}
	}
	paid, err := s.payments.SumByPayer(ctx, auction.ID, *auction.WinnerID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return applied, paid, nil
}

func summarize(auction *domain.Auction, applied, paid decimal.Decimal) *domain.Settlement {
	due := auction.HighestBid.Sub(applied).Sub(paid)
	if auction.WinnerID == nil || auction.PaymentStatus == domain.PaymentPaid || due.IsNegative() {
		due = decimal.Zero
	}
	return &domain.Settlement{
		AuctionID:      auction.ID,
		SellerID:       auction.SellerID,
		WinnerID:       auction.WinnerID,
		FinalPrice:     auction.HighestBid,
		AppliedHold:    applied,
		Paid:           paid,
		AmountDue:      due,
		PaymentDueDate: auction.PaymentDueDate,
		PaymentStatus:  auction.PaymentStatus,
		Status:         auction.Status,
	}
}

func (s *Service) windowClosed(auction *domain.Auction) bool {
	return auction.PaymentDueDate != nil && s.clock.Now().After(*auction.PaymentDueDate)
}

func (s *Service) lock(ctx context.Context, auctionID int64) (*domain.Auction, error) {
	auction, err := s.auctions.GetByIDForUpdate(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, domain.ErrAuctionNotFound
	}
	return auction, nil
}

// lockOpen locks an auction that is waiting for payment from winnerID.
func (s *Service) lockOpen(ctx context.Context, auctionID, winnerID int64) (*domain.Auction, error) {
	auction, err := s.lock(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if !auction.IsWinner(winnerID) {
		return nil, fmt.Errorf("%w: only the winner can settle auction %d", domain.ErrUnauthorized, auctionID)
	}
	if auction.Status != domain.AuctionEnded || auction.PaymentStatus != domain.PaymentUnpaid {
		return nil, fmt.Errorf("%w: auction %d is not awaiting payment", domain.ErrAuctionInvalidState, auctionID)
	}
	if s.windowClosed(auction) {
		return nil, fmt.Errorf("%w: payment window has expired", domain.ErrInvalidState)
	}
	return auction, nil
}
