package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/pawction/internal/config"
	"github.com/GlebRadaev/pawction/internal/notify"
	"github.com/GlebRadaev/pawction/internal/pg"
	"github.com/GlebRadaev/pawction/internal/repo"
	"github.com/GlebRadaev/pawction/internal/service/auctionservice"
	"github.com/GlebRadaev/pawction/internal/service/biddingservice"
	"github.com/GlebRadaev/pawction/internal/service/settlementservice"
	"github.com/GlebRadaev/pawction/internal/service/walletservice"
	"github.com/GlebRadaev/pawction/pkg/clock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	repos := &repo.Repositories{
		AuctionRepo:     auctionRepo{auctionservice.NewMockAuctionRepo(ctrl), settlementservice.NewMockAuctionRepo(ctrl)},
		BidRepo:         biddingservice.NewMockBidRepo(ctrl),
		DirectoryRepo:   auctionservice.NewMockDirectory(ctrl),
		AccountRepo:     walletservice.NewMockAccountRepo(ctrl),
		HoldRepo:        walletservice.NewMockHoldRepo(ctrl),
		TransactionRepo: walletservice.NewMockTransactionRepo(ctrl),
		PaymentRepo:     settlementservice.NewMockPaymentRepo(ctrl),
	}
	cfg := &config.Config{PaymentCurrency: "USD", CloseGrace: 2 * time.Second}

	services := New(cfg, repos, pg.NewMockTXManager(ctrl), notify.New(nil), clock.New())

	assert.IsType(t, &auctionservice.Service{}, services.AuctionService)
	assert.IsType(t, &biddingservice.Service{}, services.BiddingService)
	assert.IsType(t, &walletservice.Service{}, services.WalletService)
	assert.IsType(t, &settlementservice.Service{}, services.SettlementService)
	assert.Same(t, services.AuctionService, services.AuctionSweeper)
	assert.Same(t, services.SettlementService, services.SettlementSweeper)
}

type auctionRepo struct {
	*auctionservice.MockAuctionRepo
	overdue *settlementservice.MockAuctionRepo
}

func (r auctionRepo) FindOverdueUnpaidIDs(ctx context.Context, cutoff time.Time, afterID int64, limit int) ([]int64, error) {
	return r.overdue.FindOverdueUnpaidIDs(ctx, cutoff, afterID, limit)
}
