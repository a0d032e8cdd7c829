package auctionservice

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

//go:generate mockgen -source=auctionservice.go -destination=mock_auctionservice.go -package=auctionservice

type AuctionRepo interface {
	Create(ctx context.Context, auction *domain.Auction) (*domain.Auction, error)
	GetByID(ctx context.Context, id int64) (*domain.Auction, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Auction, error)
	Update(ctx context.Context, auction *domain.Auction) error
	FindExpiredLiveIDs(ctx context.Context, cutoff time.Time, afterID int64, limit int) ([]int64, error)
}

type Directory interface {
	FindUser(ctx context.Context, id int64) (*domain.User, error)
	FindPet(ctx context.Context, id int64) (*domain.Pet, error)
	UpdatePet(ctx context.Context, pet *domain.Pet) error
}

type Bidding interface {
	GetWinningBid(ctx context.Context, auctionID int64) (*domain.Bid, error)
	FinalizeBidsOnClose(ctx context.Context, auctionID int64) error
}

type Settlement interface {
	Begin(ctx context.Context, auctionID, winnerID int64, finalPrice decimal.Decimal, dueAt time.Time) (*domain.Auction, error)
	NoWinner(ctx context.Context, auctionID int64) (*domain.Auction, error)
}

type Publisher interface {
	Publish(ctx context.Context, event notify.Event)
}

const closeBatchSize = 200

type Service struct {
	txManager  pg.TXManager
	auctions   AuctionRepo
	directory  Directory
	bidding    Bidding
	settlement Settlement
	publisher  Publisher
	clock      clock.Clock
	closeGrace time.Duration
	batchSize  int
}

func New(
	txManager pg.TXManager,
	auctions AuctionRepo,
	directory Directory,
	bidding Bidding,
	settlement Settlement,
	publisher Publisher,
	clk clock.Clock,
	closeGrace time.Duration,
) *Service {
	return &Service{
		txManager:  txManager,
		auctions:   auctions,
		directory:  directory,
		bidding:    bidding,
		settlement: settlement,
		publisher:  publisher,
		clock:      clk,
		closeGrace: closeGrace,
		batchSize:  closeBatchSize,
	}
}

func (s *Service) Create(ctx context.Context, sellerID, petID int64, startPrice decimal.Decimal, description string, endTime time.Time) (*domain.Auction, error) {
	if err := policy.CheckAmount(startPrice, domain.ErrInvalidAmount); err != nil {
		return nil, fmt.Errorf("start price: %w", err)
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrInvalidAuction)
	}
	now := s.clock.Now()
	if !policy.IsValidEndTime(now, endTime) {
		return nil, fmt.Errorf("%w: end time must be exactly %s after creation", domain.ErrInvalidAuction, policy.AuctionDuration)
	}

	seller, err := s.directory.FindUser(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrUserNotFound
	}
	pet, err := s.directory.FindPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, domain.ErrPetNotFound
	}
	if pet.OwnerID != sellerID {
		return nil, fmt.Errorf("%w: pet %d does not belong to user %d", domain.ErrUnauthorized, petID, sellerID)
	}

	auction, err := s.auctions.Create(ctx, &domain.Auction{
		PetID:         petID,
		SellerID:      sellerID,
		Description:   description,
		StartPrice:    startPrice,
		HighestBid:    startPrice,
		Status:        domain.AuctionLive,
		PaymentStatus: domain.PaymentUnpaid,
		CreatedAt:     now,
		EndTime:       endTime.Truncate(time.Second),
		UpdatedAt:     now,
	})
	if err != nil {
		zap.L().Error("failed to create auction", zap.Int64("seller_id", sellerID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("Auction created", zap.Int64("auction_id", auction.ID), zap.Int64("seller_id", sellerID))
	return auction, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Auction, error) {
	auction, err := s.auctions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, domain.ErrAuctionNotFound
	}
	return auction, nil
}

func (s *Service) NextMinimumBid(ctx context.Context, id int64) (decimal.Decimal, error) {
	auction, err := s.Get(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return policy.NextMinimumBid(auction), nil
}

func (s *Service) UpdateDetail(ctx context.Context, sellerID, id int64, description string) (*domain.Auction, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrInvalidAuction)
	}
	return s.updateLive(ctx, sellerID, id, func(_ context.Context, auction *domain.Auction, _ time.Time) error {
		auction.Description = description
		return nil
	})
}

func (s *Service) UpdateEndTime(ctx context.Context, sellerID, id int64, endTime time.Time) (*domain.Auction, error) {
	return s.updateLive(ctx, sellerID, id, func(_ context.Context, auction *domain.Auction, now time.Time) error {
		if !policy.IsValidEndTime(now, endTime) {
			return fmt.Errorf("%w: end time must be exactly %s from now", domain.ErrInvalidAuction, policy.AuctionDuration)
		}
		auction.EndTime = endTime.Truncate(time.Second)
		return nil
	})
}

func (s *Service) UpdatePetInfo(ctx context.Context, sellerID, id int64, name, details string) (*domain.Pet, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: pet name is required", domain.ErrInvalidAuction)
	}
	var pet *domain.Pet
	_, err := s.updateLive(ctx, sellerID, id, func(ctx context.Context, auction *domain.Auction, now time.Time) error {
		var err error
		pet, err = s.directory.FindPet(ctx, auction.PetID)
		if err != nil {
			return err
		}
		if pet == nil {
			return domain.ErrPetNotFound
		}
		pet.Name = name
		pet.Details = details
		pet.UpdatedAt = now
		return s.directory.UpdatePet(ctx, pet)
	})
	if err != nil {
		return nil, err
	}
	return pet, nil
}

// updateLive applies a seller edit to a LIVE auction under its row lock.
func (s *Service) updateLive(
	ctx context.Context, sellerID, id int64, apply func(ctx context.Context, auction *domain.Auction, now time.Time) error,
) (*domain.Auction, error) {
	var auction *domain.Auction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		auction, err = s.lockOwned(ctx, sellerID, id)
		if err != nil {
			return err
		}
		if auction.Status != domain.AuctionLive {
			return fmt.Errorf("%w: auction %d is %s", domain.ErrAuctionInvalidState, id, auction.Status)
		}
		now := s.clock.Now()
		if err := apply(ctx, auction, now); err != nil {
			return err
		}
		auction.UpdatedAt = now
		return s.auctions.Update(ctx, auction)
	})
	if err != nil {
		return nil, err
	}
	return auction, nil
}

// Cancel withdraws a LIVE auction that nobody has bid on yet.
func (s *Service) Cancel(ctx context.Context, sellerID, id int64) (*domain.Auction, error) {
	var auction *domain.Auction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		auction, err = s.lockOwned(ctx, sellerID, id)
		if err != nil {
			return err
		}
		if auction.Status != domain.AuctionLive {
			return fmt.Errorf("%w: auction %d is %s", domain.ErrAuctionInvalidState, id, auction.Status)
		}
		if auction.HasBids() {
			return fmt.Errorf("%w: cannot cancel after the first bid", domain.ErrInvalidAuction)
		}
		auction.Status = domain.AuctionCanceled
		auction.UpdatedAt = s.clock.Now()
		return s.auctions.Update(ctx, auction)
	})
	if err != nil {
		return nil, err
	}
	monitoring.RecordAuctionClosed(monitoring.Canceled)
	zap.L().Info("Auction canceled", zap.Int64("auction_id", id))
	s.publisher.Publish(ctx, notify.NewEvent(notify.AuctionCanceled, auction, auction.UpdatedAt))
	return auction, nil
}

// Settle is the seller closing the auction now instead of waiting for the
// end time.
func (s *Service) Settle(ctx context.Context, sellerID, id int64) (*domain.Auction, error) {
	var (
		auction *domain.Auction
		outcome string
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		locked, err := s.lockOwned(ctx, sellerID, id)
		if err != nil {
			return err
		}
		if locked.Status != domain.AuctionLive {
			return fmt.Errorf("%w: auction %d is %s", domain.ErrAuctionInvalidState, id, locked.Status)
		}
		locked.EndTime = s.clock.Now()
		auction, outcome, err = s.endLocked(ctx, locked)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.afterClose(ctx, auction, outcome)
	return auction, nil
}

// End closes the auction and hands it to settlement. A second call fails with
// an invalid state error and changes nothing.
func (s *Service) End(ctx context.Context, id int64) (*domain.Auction, error) {
	var (
		auction *domain.Auction
		outcome string
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		locked, err := s.lock(ctx, id)
		if err != nil {
			return err
		}
		switch locked.Status {
		case domain.AuctionCanceled, domain.AuctionEnded, domain.AuctionSettled:
			return fmt.Errorf("%w: auction %d is already %s", domain.ErrAuctionInvalidState, id, locked.Status)
		}
		auction, outcome, err = s.endLocked(ctx, locked)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.afterClose(ctx, auction, outcome)
	return auction, nil
}

// CloseExpiredAuctions ends every LIVE auction whose end time passed more than
// the grace period ago. Failures are logged per auction and do not stop the
// sweep.
func (s *Service) CloseExpiredAuctions(ctx context.Context) (int, error) {
	started := time.Now()
	cutoff := s.clock.Now().Add(-s.closeGrace)

	var (
		afterID int64
		closed  int
	)
	for {
		ids, err := s.auctions.FindExpiredLiveIDs(ctx, cutoff, afterID, s.batchSize)
		if err != nil {
			return closed, err
		}
		for _, id := range ids {
			ok, err := s.CloseOneIfExpired(ctx, id, cutoff)
			if err != nil {
				zap.L().Error("failed to close expired auction", zap.Int64("auction_id", id), zap.Error(err))
				continue
			}
			if ok {
				closed++
			}
		}
		if len(ids) < s.batchSize {
			break
		}
		afterID = ids[len(ids)-1]
	}

	monitoring.ObserveSweep("close_expired", started, closed)
	if closed > 0 {
		zap.L().Info("Expired auctions closed", zap.Int("count", closed))
	}
	return closed, nil
}

// CloseOneIfExpired ends the auction if it is still LIVE and its end time is
// not after now.
func (s *Service) CloseOneIfExpired(ctx context.Context, id int64, now time.Time) (bool, error) {
	var (
		auction *domain.Auction
		outcome string
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		locked, err := s.lock(ctx, id)
		if err != nil {
			return err
		}
		if locked.Status != domain.AuctionLive || locked.EndTime.After(now) {
			return nil
		}
		auction, outcome, err = s.endLocked(ctx, locked)
		return err
	})
	if err != nil {
		return false, err
	}
	if auction == nil {
		return false, nil
	}
	s.afterClose(ctx, auction, outcome)
	return true, nil
}

func (s *Service) endLocked(ctx context.Context, auction *domain.Auction) (*domain.Auction, string, error) {
	now := s.clock.Now()
	auction.Status = domain.AuctionEnded
	auction.UpdatedAt = now

	top, err := s.bidding.GetWinningBid(ctx, auction.ID)
	if errors.Is(err, domain.ErrBidNotFound) {
		auction.WinnerID = nil
		auction.PaymentDueDate = nil
		if err := s.auctions.Update(ctx, auction); err != nil {
			return nil, "", err
		}
		settled, err := s.settlement.NoWinner(ctx, auction.ID)
		if err != nil {
			return nil, "", err
		}
		return settled, monitoring.ClosedNoWinner, nil
	}
	if err != nil {
		return nil, "", err
	}

	if err := s.bidding.FinalizeBidsOnClose(ctx, auction.ID); err != nil {
		return nil, "", err
	}
	due := now.Add(policy.PaymentWindow)
	winnerID := top.BidderID
	auction.WinnerID = &winnerID
	auction.HighestBid = top.Amount
	auction.PaymentDueDate = &due
	if err := s.auctions.Update(ctx, auction); err != nil {
		return nil, "", err
	}
	ended, err := s.settlement.Begin(ctx, auction.ID, winnerID, top.Amount, due)
	if err != nil {
		return nil, "", err
	}
	return ended, monitoring.ClosedWithWinner, nil
}

func (s *Service) afterClose(ctx context.Context, auction *domain.Auction, outcome string) {
	monitoring.RecordAuctionClosed(outcome)
	zap.L().Info("Auction closed", zap.Int64("auction_id", auction.ID), zap.String("outcome", outcome),
		zap.String("status", string(auction.Status)))
	s.publisher.Publish(ctx, notify.NewEvent(notify.AuctionClosed, auction, auction.UpdatedAt))
}

func (s *Service) lock(ctx context.Context, id int64) (*domain.Auction, error) {
	auction, err := s.auctions.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, domain.ErrAuctionNotFound
	}
	return auction, nil
}

func (s *Service) lockOwned(ctx context.Context, sellerID, id int64) (*domain.Auction, error) {
	auction, err := s.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	if auction.SellerID != sellerID {
		return nil, fmt.Errorf("%w: only the seller can manage auction %d", domain.ErrUnauthorized, id)
	}
	return auction, nil
}
