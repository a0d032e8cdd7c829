package service

import (
	"github.com/GlebRadaev/pawction/internal/config"
	"github.com/GlebRadaev/pawction/internal/handlers/auctions"
	"github.com/GlebRadaev/pawction/internal/handlers/settlement"
	"github.com/GlebRadaev/pawction/internal/handlers/wallet"
	"github.com/GlebRadaev/pawction/internal/notify"
	"github.com/GlebRadaev/pawction/internal/pg"
	"github.com/GlebRadaev/pawction/internal/repo"
	"github.com/GlebRadaev/pawction/internal/scheduler"
	"github.com/GlebRadaev/pawction/internal/service/auctionservice"
	"github.com/GlebRadaev/pawction/internal/service/biddingservice"
	"github.com/GlebRadaev/pawction/internal/service/settlementservice"
	"github.com/GlebRadaev/pawction/internal/service/walletservice"
	"github.com/GlebRadaev/pawction/pkg/clock"
)

type Services struct {
	AuctionService    auctions.Service
	BiddingService    auctions.BiddingService
	WalletService     wallet.Service
	SettlementService settlement.Service

	AuctionSweeper    scheduler.AuctionSweeper
	SettlementSweeper scheduler.SettlementSweeper
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, publisher *notify.Publisher, clk clock.Clock) *Services {
	walletService := walletservice.New(txManager, repo.AccountRepo, repo.HoldRepo, repo.TransactionRepo, clk)
	biddingService := biddingservice.New(txManager, repo.AuctionRepo, repo.BidRepo, repo.DirectoryRepo, walletService, publisher, clk)
	settlementService := settlementservice.New(
		txManager, repo.AuctionRepo, repo.PaymentRepo, walletService, biddingService, publisher, clk, cfg.PaymentCurrency,
	)
	auctionService := auctionservice.New(
		txManager, repo.AuctionRepo, repo.DirectoryRepo, biddingService, settlementService, publisher, clk, cfg.CloseGrace,
	)

	return &Services{
		AuctionService:    auctionService,
		BiddingService:    biddingService,
		WalletService:     walletService,
		SettlementService: settlementService,
		AuctionSweeper:    auctionService,
		SettlementSweeper: settlementService,
	}
}
