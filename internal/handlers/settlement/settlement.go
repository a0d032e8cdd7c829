package settlement

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/pawction/internal/domain"
	"github.com/GlebRadaev/pawction/internal/dto"
	"github.com/GlebRadaev/pawction/internal/handlers/httperr"
	"github.com/GlebRadaev/pawction/pkg/auth"
	"github.com/GlebRadaev/pawction/pkg/utils"
)

type Service interface {
	GetSettlement(ctx context.Context, auctionID int64) (*domain.Settlement, error)
	ChooseHoldOption(ctx context.Context, auctionID, winnerID int64, option domain.HoldOption) (*domain.Settlement, error)
	RecordPayment(ctx context.Context, auctionID, payerID int64, amount decimal.Decimal, currency, externalRef string) (*domain.Settlement, error)
	ConfirmPaid(ctx context.Context, auctionID int64) (*domain.Settlement, error)
}

type SettlementHandler struct {
	settlementService Service
}

func New(settlementService Service) *SettlementHandler {
	return &SettlementHandler{
		settlementService: settlementService,
	}
}

// GetSettlement godoc
//
//	@Summary		Get settlement
//	@Description	Final price, applied hold, recorded payments and amount still due for an ended auction.
//	@Tags			Settlement
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Auction ID"
//	@Success		200	{object}	dto.SettlementResponseDTO	"Settlement"
//	@Failure		403	{object}	utils.Response				"Caller is neither seller nor winner"
//	@Failure		404	{object}	utils.Response				"Auction not found"
//	@Router			/api/auctions/{id}/settlement [get]
func (h *SettlementHandler) GetSettlement(w http.ResponseWriter, r *http.Request) {
	id, ok := httperr.AuctionID(w, r)
	if !ok {
		return
	}
	settlement, ok := h.party(w, r, id)
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettlementResponse(settlement))
}

// ChooseHoldOption godoc
//
//	@Summary		Choose what happens to the winner's deposit hold
//	@Description	APPLY_TO_PAYMENT counts the hold towards the final price, RELEASE_TO_ACCOUNT returns it to the available balance.
//	@Tags			Settlement
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Auction ID"
//	@Param			request	body		dto.HoldOptionRequestDTO	true	"Hold option"
//	@Success		200		{object}	dto.SettlementResponseDTO	"Settlement"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		403		{object}	utils.Response				"Caller is not the winner"
//	@Failure		404		{object}	utils.Response				"No active hold"
//	@Failure		409		{object}	utils.Response				"Payment window closed or already settled"
//	@Failure		422		{object}	utils.Response				"Unknown option"
//	@Router			/api/auctions/{id}/settlement/hold-option [post]
func (h *SettlementHandler) ChooseHoldOption(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)
	id, ok := httperr.AuctionID(w, r)
	if !ok {
		return
	}

	var req dto.HoldOptionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settlement, err := h.settlementService.ChooseHoldOption(r.Context(), id, userID, domain.HoldOption(req.Option))
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettlementResponse(settlement))
}

// RecordPayment godoc
//
//	@Summary		Record payment
//	@Description	Record an external payment by the winner. Repeating a payment with the same external reference is a no-op.
//	@Tags			Settlement
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Auction ID"
//	@Param			request	body		dto.PaymentRequestDTO		true	"Payment"
//	@Success		200		{object}	dto.SettlementResponseDTO	"Settlement"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		403		{object}	utils.Response				"Caller is not the winner"
//	@Failure		409		{object}	utils.Response				"Payment window closed or already paid"
//	@Failure		422		{object}	utils.Response				"Invalid amount, currency or reference"
//	@Router			/api/auctions/{id}/settlement/payments [post]
func (h *SettlementHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)
	id, ok := httperr.AuctionID(w, r)
	if !ok {
		return
	}

	var req dto.PaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settlement, err := h.settlementService.RecordPayment(r.Context(), id, userID, req.Amount, req.Currency, req.ExternalRef)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettlementResponse(settlement))
}

// ConfirmPaid godoc
//
//	@Summary		Confirm payment
//	@Description	Mark the auction paid once the applied hold and recorded payments cover the final price.
//	@Tags			Settlement
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Auction ID"
//	@Success		200	{object}	dto.SettlementResponseDTO	"Settlement"
//	@Failure		403	{object}	utils.Response				"Caller is neither seller nor winner"
//	@Failure		404	{object}	utils.Response				"Auction not found"
//	@Failure		409	{object}	utils.Response				"Auction not ended"
//	@Failure		422	{object}	utils.Response				"Amount still due"
//	@Router			/api/auctions/{id}/settlement/confirm [post]
func (h *SettlementHandler) ConfirmPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := httperr.AuctionID(w, r)
	if !ok {
		return
	}
	if _, ok := h.party(w, r, id); !ok {
		return
	}

	settlement, err := h.settlementService.ConfirmPaid(r.Context(), id)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettlementResponse(settlement))
}

// party loads the settlement and checks the caller is its seller or winner.
func (h *SettlementHandler) party(w http.ResponseWriter, r *http.Request, id int64) (*domain.Settlement, bool) {
	userID := r.Context().Value(auth.UserIDKey).(int64)
	settlement, err := h.settlementService.GetSettlement(r.Context(), id)
	if err != nil {
		httperr.Respond(w, r, err)
		return nil, false
	}
	if settlement.SellerID != userID && (settlement.WinnerID == nil || *settlement.WinnerID != userID) {
		httperr.Respond(w, r, fmt.Errorf("%w: user %d is not a party to auction %d", domain.ErrUnauthorized, userID, id))
		return nil, false
	}
	return settlement, true
}
