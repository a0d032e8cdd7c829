package repo

import (
	"github.com/GlebRadaev/pawction/internal/pg"
	accountrepo "github.com/GlebRadaev/pawction/internal/repo/account-repo"
	auctionrepo "github.com/GlebRadaev/pawction/internal/repo/auction-repo"
	bidrepo "github.com/GlebRadaev/pawction/internal/repo/bid-repo"
	directoryrepo "github.com/GlebRadaev/pawction/internal/repo/directory-repo"
	holdrepo "github.com/GlebRadaev/pawction/internal/repo/hold-repo"
	paymentrepo "github.com/GlebRadaev/pawction/internal/repo/payment-repo"
	transactionrepo "github.com/GlebRadaev/pawction/internal/repo/transaction-repo"
	"github.com/GlebRadaev/pawction/internal/service/auctionservice"
	"github.com/GlebRadaev/pawction/internal/service/biddingservice"
	"github.com/GlebRadaev/pawction/internal/service/settlementservice"
	"github.com/GlebRadaev/pawction/internal/service/walletservice"
)

// AuctionRepo is the auction store shared by the lifecycle, bidding and
// settlement services.
type AuctionRepo interface {
	auctionservice.AuctionRepo
	biddingservice.AuctionRepo
	settlementservice.AuctionRepo
}

type Repositories struct {
	AuctionRepo     AuctionRepo
	BidRepo         biddingservice.BidRepo
	DirectoryRepo   auctionservice.Directory
	AccountRepo     walletservice.AccountRepo
	HoldRepo        walletservice.HoldRepo
	TransactionRepo walletservice.TransactionRepo
	PaymentRepo     settlementservice.PaymentRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		AuctionRepo:     auctionrepo.New(conn),
		BidRepo:         bidrepo.New(conn),
		DirectoryRepo:   directoryrepo.New(conn),
		AccountRepo:     accountrepo.New(conn),
		HoldRepo:        holdrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		PaymentRepo:     paymentrepo.New(conn),
	}
}
