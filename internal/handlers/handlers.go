package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/pawction/docs"
	auctionhandlers "github.com/GlebRadaev/pawction/internal/handlers/auctions"
	settlementhandlers "github.com/GlebRadaev/pawction/internal/handlers/settlement"
	wallethandlers "github.com/GlebRadaev/pawction/internal/handlers/wallet"
	"github.com/GlebRadaev/pawction/internal/monitoring"
	"github.com/GlebRadaev/pawction/internal/service"
	"github.com/GlebRadaev/pawction/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuctionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateDetail(w http.ResponseWriter, r *http.Request)
	UpdateEndTime(w http.ResponseWriter, r *http.Request)
	UpdatePet(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Settle(w http.ResponseWriter, r *http.Request)
	PlaceBid(w http.ResponseWriter, r *http.Request)
	GetBids(w http.ResponseWriter, r *http.Request)
	GetWinningBid(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	CreateAccount(w http.ResponseWriter, r *http.Request)
	GetAccount(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetHolds(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type SettlementHandler interface {
	GetSettlement(w http.ResponseWriter, r *http.Request)
	ChooseHoldOption(w http.ResponseWriter, r *http.Request)
	RecordPayment(w http.ResponseWriter, r *http.Request)
	ConfirmPaid(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuctionHandler    AuctionHandler
	WalletHandler     WalletHandler
	SettlementHandler SettlementHandler
	Tokens            auth.TokenValidator
}

func New(s *service.Services, tokens auth.TokenValidator) *Handlers {
	return &Handlers{
		AuctionHandler:    auctionhandlers.New(s.AuctionService, s.BiddingService),
		WalletHandler:     wallethandlers.New(s.WalletService),
		SettlementHandler: settlementhandlers.New(s.SettlementService),
		Tokens:            tokens,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		monitoring.Instrument,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", monitoring.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.Middleware(h.Tokens))

		r.Route("/auctions", func(r chi.Router) {
			r.Post("/", h.AuctionHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.AuctionHandler.Get)
				r.Delete("/", h.AuctionHandler.Cancel)
				r.Patch("/detail", h.AuctionHandler.UpdateDetail)
				r.Patch("/end-time", h.AuctionHandler.UpdateEndTime)
				r.Patch("/pet", h.AuctionHandler.UpdatePet)
				r.Post("/settle", h.AuctionHandler.Settle)

				r.Route("/bids", func(r chi.Router) {
					r.Post("/", h.AuctionHandler.PlaceBid)
					r.Get("/", h.AuctionHandler.GetBids)
					r.Get("/winning", h.AuctionHandler.GetWinningBid)
				})

				r.Route("/settlement", func(r chi.Router) {
					r.Get("/", h.SettlementHandler.GetSettlement)
					r.Post("/hold-option", h.SettlementHandler.ChooseHoldOption)
					r.Post("/payments", h.SettlementHandler.RecordPayment)
					r.Post("/confirm", h.SettlementHandler.ConfirmPaid)
				})
			})
		})

		r.Route("/wallet", func(r chi.Router) {
			r.Post("/", h.WalletHandler.CreateAccount)
			r.Get("/", h.WalletHandler.GetAccount)
			r.Post("/deposit", h.WalletHandler.Deposit)
			r.Post("/withdraw", h.WalletHandler.Withdraw)
			r.Get("/holds", h.WalletHandler.GetHolds)
			r.Get("/transactions", h.WalletHandler.GetTransactions)
		})
	})

	return r
}
