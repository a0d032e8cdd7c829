package biddingservice

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pawction/internal/domain"
	"github.com/GlebRadaev/pawction/internal/monitoring"
	"github.com/GlebRadaev/pawction/internal/notify"
	"github.com/GlebRadaev/pawction/internal/pg"
	"github.com/GlebRadaev/pawction/internal/service/policy"
	"github.com/GlebRadaev/pawction/pkg/clock"
)

//go:generate mockgen -source=biddingservice.go -destination=mock_biddingservice.go -package=biddingservice

type AuctionRepo interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Auction, error)
	Update(ctx context.Context, auction *domain.Auction) error
}

type BidRepo interface {
	Create(ctx context.Context, bid *domain.Bid) (*domain.Bid, error)
	FindTop(ctx context.Context, auctionID int64) (*domain.Bid, error)
	FindSecond(ctx context.Context, auctionID int64) (*domain.Bid, error)
	ListByAuction(ctx context.Context, auctionID int64) ([]domain.Bid, error)
	CountByAuction(ctx context.Context, auctionID int64) (int, error)
	MarkOutbidExcept(ctx context.Context, auctionID, keepID int64) (int64, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.BidStatus) (bool, error)
}

type UserDirectory interface {
	FindUser(ctx context.Context, id int64) (*domain.User, error)
}

type Wallet interface {
	GetAccountByUserID(ctx context.Context, userID int64) (*domain.Account, error)
	GetAvailable(ctx context.Context, accountID int64) (decimal.Decimal, error)
	FindHold(ctx context.Context, accountID, auctionID int64) (*domain.DepositHold, error)
	PlaceHold(ctx context.Context, accountID, auctionID int64, amount decimal.Decimal) (*domain.DepositHold, error)
}

type Publisher interface {
	Publish(ctx context.Context, event notify.Event)
}

type Service struct {
	txManager pg.TXManager
	auctions  AuctionRepo
	bids      BidRepo
	users     UserDirectory
	wallet    Wallet
	publisher Publisher
	clock     clock.Clock
}

func New(txManager pg.TXManager, auctions AuctionRepo, bids BidRepo, users UserDirectory, wallet Wallet, publisher Publisher, clk clock.Clock) *Service {
	return &Service{
		txManager: txManager,
		auctions:  auctions,
		bids:      bids,
		users:     users,
		wallet:    wallet,
		publisher: publisher,
		clock:     clk,
	}
}

// PlaceBid validates the bid under the auction row lock, reserves the deposit
// hold and makes the new bid the only leader.
func (s *Service) PlaceBid(ctx context.Context, bidderID, auctionID int64, amount decimal.Decimal) (*domain.Bid, error) {
	var (
		bid     *domain.Bid
		auction *domain.Auction
		count   int
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		auction, err = s.auctions.GetByIDForUpdate(ctx, auctionID)
		if err != nil {
			return err
		}
		if auction == nil {
			return domain.ErrAuctionNotFound
		}
		if err := policy.CheckAmount(amount, domain.ErrInvalidAmount); err != nil {
			return fmt.Errorf("bid %w", err)
		}
		now := s.clock.Now()
		if auction.Status != domain.AuctionLive || !auction.EndTime.After(now) {
			return fmt.Errorf("%w: auction %d is not accepting bids", domain.ErrAuctionInvalidState, auctionID)
		}

		bidder, err := s.users.FindUser(ctx, bidderID)
		if err != nil {
			return err
		}
		if bidder == nil {
			return domain.ErrUserNotFound
		}
		if auction.SellerID == bidderID {
			return fmt.Errorf("%w: seller cannot bid on own auction", domain.ErrInvalidBid)
		}

		required := policy.RequiredHold(auction)
		ok, err := policy.IsValidIncrement(auction, amount)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: bid must be at least %s", domain.ErrInvalidBid, policy.NextMinimumBid(auction))
		}

		account, err := s.wallet.GetAccountByUserID(ctx, bidderID)
		if err != nil {
			return err
		}
		hold, err := s.wallet.FindHold(ctx, account.ID, auctionID)
		if err != nil {
			return err
		}
		if hold == nil || hold.Status != domain.HoldHeld {
			available, err := s.wallet.GetAvailable(ctx, account.ID)
			if err != nil {
				return err
			}
			if available.LessThan(required) {
				return fmt.Errorf("%w: insufficient funds to cover deposit hold of %s", domain.ErrInvalidBid, required)
			}
		}
		if _, err := s.wallet.PlaceHold(ctx, account.ID, auctionID, required); err != nil {
			return err
		}

		bid, err = s.bids.Create(ctx, &domain.Bid{
			AuctionID: auctionID,
			BidderID:  bidderID,
			Amount:    amount,
			Status:    domain.BidWinning,
			BidTime:   now,
		})
		if err != nil {
			return err
		}
		if _, err := s.bids.MarkOutbidExcept(ctx, auctionID, bid.ID); err != nil {
			return err
		}

		auction.HighestBid = amount
		auction.WinnerID = &bidderID
		auction.UpdatedAt = now
		if err := s.auctions.Update(ctx, auction); err != nil {
			return err
		}
		count, err = s.bids.CountByAuction(ctx, auctionID)
		return err
	})
	if err != nil {
		monitoring.RecordBid(monitoring.BidRejected)
		zap.L().Info("Bid rejected", zap.Int64("auction_id", auctionID), zap.Int64("bidder_id", bidderID),
			zap.String("amount", amount.String()), zap.Error(err))
		return nil, err
	}

	monitoring.RecordBid(monitoring.BidAccepted)
	zap.L().Info("Bid placed", zap.Int64("auction_id", auctionID), zap.Int64("bid_id", bid.ID),
		zap.String("amount", amount.String()))
	event := notify.NewEvent(notify.BidPlaced, auction, bid.BidTime)
	event.BidCount = count
	s.publisher.Publish(ctx, event)
	return bid, nil
}

// GetWinningBid ranks by amount, then earliest bid time.
func (s *Service) GetWinningBid(ctx context.Context, auctionID int64) (*domain.Bid, error) {
	bid, err := s.bids.FindTop(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if bid == nil {
		return nil, domain.ErrBidNotFound
	}
	return bid, nil
}

func (s *Service) GetSecondHighestBid(ctx context.Context, auctionID int64) (*domain.Bid, error) {
	bid, err := s.bids.FindSecond(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if bid == nil {
		return nil, domain.ErrBidNotFound
	}
	return bid, nil
}

func (s *Service) GetBidHistory(ctx context.Context, auctionID int64) ([]domain.Bid, error) {
	return s.bids.ListByAuction(ctx, auctionID)
}

func (s *Service) GetBidCount(ctx context.Context, auctionID int64) (int, error) {
	return s.bids.CountByAuction(ctx, auctionID)
}

// FinalizeBidsOnClose marks the leader WON and everything else OUTBID. Safe to
// call again on an already finalized auction.
func (s *Service) FinalizeBidsOnClose(ctx context.Context, auctionID int64) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		top, err := s.bids.FindTop(ctx, auctionID)
		if err != nil {
			return err
		}
		if top == nil {
			return nil
		}
		if top.Status == domain.BidWinning {
			if _, err := s.bids.UpdateStatus(ctx, top.ID, domain.BidWinning, domain.BidWon); err != nil {
				return err
			}
		}
		_, err = s.bids.MarkOutbidExcept(ctx, auctionID, top.ID)
		return err
	})
}

// PromoteBid makes bidID the sole WON bid of the auction.
func (s *Service) PromoteBid(ctx context.Context, auctionID, bidID int64) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.bids.MarkOutbidExcept(ctx, auctionID, bidID); err != nil {
			return err
		}
		ok, err := s.bids.UpdateStatus(ctx, bidID, domain.BidOutbid, domain.BidWon)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: bid %d cannot be promoted", domain.ErrInvalidState, bidID)
		}
		return nil
	})
}

func (s *Service) OutbidAll(ctx context.Context, auctionID int64) error {
	_, err := s.bids.MarkOutbidExcept(ctx, auctionID, 0)
	return err
}
