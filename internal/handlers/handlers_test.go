package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/pawction/internal/handlers/auctions"
	"github.com/GlebRadaev/pawction/internal/handlers/settlement"
	"github.com/GlebRadaev/pawction/internal/handlers/wallet"
	"github.com/GlebRadaev/pawction/internal/service"
	"github.com/GlebRadaev/pawction/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		AuctionService:    auctions.NewMockService(ctrl),
		BiddingService:    auctions.NewMockBiddingService(ctrl),
		WalletService:     wallet.NewMockService(ctrl),
		SettlementService: settlement.NewMockService(ctrl),
	}

	h := New(services, auth.NewJWTService("secret"))
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuctionHandler)
	assert.NotNil(t, h.WalletHandler)
	assert.NotNil(t, h.SettlementHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockAuctionHandler := NewMockAuctionHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockSettlementHandler := NewMockSettlementHandler(ctrl)

	mockAuctionHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuctionHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuctionHandler.EXPECT().UpdateDetail(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuctionHandler.EXPECT().UpdateEndTime(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuctionHandler.EXPECT().UpdatePet(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuctionHandler.EXPECT().Cancel(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuctionHandler.EXPECT().Settle(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuctionHandler.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuctionHandler.EXPECT().GetBids(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuctionHandler.EXPECT().GetWinningBid(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetAccount(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Deposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetHolds(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockSettlementHandler.EXPECT().GetSettlement(gomock.Any(), gomock.Any()).AnyTimes()
	mockSettlementHandler.EXPECT().ChooseHoldOption(gomock.Any(), gomock.Any()).AnyTimes()
	mockSettlementHandler.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).AnyTimes()
	mockSettlementHandler.EXPECT().ConfirmPaid(gomock.Any(), gomock.Any()).AnyTimes()

	tokens := auth.NewJWTService("secret")
	h := &Handlers{
		AuctionHandler:    mockAuctionHandler,
		WalletHandler:     mockWalletHandler,
		SettlementHandler: mockSettlementHandler,
		Tokens:            tokens,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	token, err := tokens.GenerateJWT(4, time.Now().Add(time.Hour))
	require.NoError(t, err)

	routes := []struct {
		method string
		url    string
	}{
		{"POST", "/api/auctions"},
		{"GET", "/api/auctions/7"},
		{"DELETE", "/api/auctions/7"},
		{"PATCH", "/api/auctions/7/detail"},
		{"PATCH", "/api/auctions/7/end-time"},
		{"PATCH", "/api/auctions/7/pet"},
		{"POST", "/api/auctions/7/settle"},
		{"POST", "/api/auctions/7/bids"},
		{"GET", "/api/auctions/7/bids"},
		{"GET", "/api/auctions/7/bids/winning"},
		{"GET", "/api/auctions/7/settlement"},
		{"POST", "/api/auctions/7/settlement/hold-option"},
		{"POST", "/api/auctions/7/settlement/payments"},
		{"POST", "/api/auctions/7/settlement/confirm"},
		{"POST", "/api/wallet"},
		{"GET", "/api/wallet"},
		{"POST", "/api/wallet/deposit"},
		{"POST", "/api/wallet/withdraw"},
		{"GET", "/api/wallet/holds"},
		{"GET", "/api/wallet/transactions"},
	}

	for _, tt := range routes {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			req = httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec = httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}

	t.Run("GET /metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "pawction_http_requests_total")
	})

	t.Run("GET /swagger/doc.json", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/swagger/doc.json", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/api/auctions/{id}/bids")
	})
}
