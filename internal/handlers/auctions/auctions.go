package auctions

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/pawction/internal/domain"
	"github.com/GlebRadaev/pawction/internal/dto"
	"github.com/GlebRadaev/pawction/internal/handlers/httperr"
	"github.com/GlebRadaev/pawction/pkg/auth"
	"github.com/GlebRadaev/pawction/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, sellerID, petID int64, startPrice decimal.Decimal, description string, endTime time.Time) (*domain.Auction, error)
	Get(ctx context.Context, id int64) (*domain.Auction, error)
	UpdateDetail(ctx context.Context, sellerID, id int64, description string) (*domain.Auction, error)
	UpdateEndTime(ctx context.Context, sellerID, id int64, endTime time.Time) (*domain.Auction, error)
	UpdatePetInfo(ctx context.Context, sellerID, id int64, name, details string) (*domain.Pet, error)
	Cancel(ctx context.Context, sellerID, id int64) (*domain.Auction, error)
	Settle(ctx context.Context, sellerID, id int64) (*domain.Auction, error)
}

type BiddingService interface {
	PlaceBid(ctx context.Context, bidderID, auctionID int64, amount decimal.Decimal) (*domain.Bid, error)
	GetBidHistory(ctx context.Context, auctionID int64) ([]domain.Bid, error)
	GetWinningBid(ctx context.Context, auctionID int64) (*domain.Bid, error)
}

type AuctionHandler struct {
	auctionService Service
	biddingService BiddingService
}

func New(auctionService Service, biddingService BiddingService) *AuctionHandler {
	return &AuctionHandler{
		auctionService: auctionService,
		biddingService: biddingService,
	}
}

// Create godoc
//
//	@Summary		Create auction
//	@Description	Put one of the caller's pets up for auction. The end time must be exactly 12 hours after creation.
//	@Tags			Auctions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAuctionRequestDTO	true	"Auction payload"
//	@Success		201		{object}	dto.AuctionResponseDTO		"Auction created"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Pet belongs to another user"
//	@Failure		404		{object}	utils.Response				"Pet or user not found"
//	@Failure		422		{object}	utils.Response				"Invalid price, description or end time"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/auctions [post]
func (h *AuctionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.CreateAuctionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	auction, err := h.auctionService.Create(r.Context(), userID, req.PetID, req.StartPrice, req.Description, req.EndTime)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.AuctionResponse(auction))
}

// Get godoc
//
//	@Summary	Get auction
//	@Tags		Auctions
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int						true	"Auction ID"
//	@Success	200	{object}	dto.AuctionResponseDTO	"Auction"
//	@Failure	400	{object}	utils.Response			"Invalid auction id"
//	@Failure	401	{object}	utils.Response			"User not authorized"
//	@Failure	404	{object}	utils.Response			"Auction not found"
//	@Failure	500	{object}	utils.Response			"Internal server error"
//	@Router		/api/auctions/{id} [get]
func (h *AuctionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := httperr.AuctionID(w, r)
	if !ok {
		return
	}

	auction, err := h.auctionService.Get(r.Context(), id)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuctionResponse(auction))
}

// UpdateDetail godoc
//
//	@Summary	Update auction description
//	@Tags		Auctions
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int									true	"Auction ID"
//	@Param		request	body		dto.UpdateAuctionDetailRequestDTO	true	"New description"
//	@Success	200		{object}	dto.AuctionResponseDTO				"Updated auction"
//	@Failure	400		{object}	utils.Response						"Invalid request"
//	@Failure	403		{object}	utils.Response						"Caller is not the seller"
//	@Failure	404		{object}	utils.Response						"Auction not found"
//	@Failure	409		{object}	utils.Response						"Auction is not live"
//	@Failure	422		{object}	utils.Response						"Empty description"
//	@Router		/api/auctions/{id}/detail [patch]
func (h *AuctionHandler) UpdateDetail(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)
	id, ok := httperr.AuctionID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateAuctionDetailRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	auction, err := h.auctionService.UpdateDetail(r.Context(), userID, id, req.Description)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuctionResponse(auction))
}

// UpdateEndTime godoc
//
//	@Summary		Update auction end time
//	@Description	Move the end of a live auction. The new end time must be exactly 12 hours from now.
//	@Tags			Auctions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int									true	"Auction ID"
//	@Param			request	body		dto.UpdateAuctionEndTimeRequestDTO	true	"New end time"
//	@Success		200		{object}	dto.AuctionResponseDTO				"Updated auction"
//	@Failure		400		{object}	utils.Response						"Invalid request"
//	@Failure		403		{object}	utils.Response						"Caller is not the seller"
//	@Failure		404		{object}	utils.Response						"Auction not found"
//	@Failure		409		{object}	utils.Response						"Auction is not live"
//	@Failure		422		{object}	utils.Response						"Invalid end time"
//	@Router			/api/auctions/{id}/end-time [patch]
func (h *AuctionHandler) UpdateEndTime(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)
	id, ok := httperr.AuctionID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateAuctionEndTimeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	auction, err := h.auctionService.UpdateEndTime(r.Context(), userID, id, req.EndTime)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuctionResponse(auction))
}

// UpdatePet godoc
//
//	@Summary	Update the auctioned pet
//	@Tags		Auctions
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Auction ID"
//	@Param		request	body		dto.UpdatePetRequestDTO	true	"Pet info"
//	@Success	200		{object}	dto.PetResponseDTO		"Updated pet"
//	@Failure	400		{object}	utils.Response			"Invalid request"
//	@Failure	403		{object}	utils.Response			"Caller is not the seller"
//	@Failure	404		{object}	utils.Response			"Auction or pet not found"
//	@Failure	409		{object}	utils.Response			"Auction is not live"
//	@Failure	422		{object}	utils.Response			"Empty pet name"
//	@Router		/api/auctions/{id}/pet [patch]
func (h *AuctionHandler) UpdatePet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)
	id, ok := httperr.AuctionID(w, r)
	if !ok {
		return
	}

	var req dto.UpdatePetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pet, err := h.auctionService.UpdatePetInfo(r.Context(), userID, id, req.Name, req.Details)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PetResponse(pet))
}

// Cancel godoc
//
//	@Summary		Cancel auction
//	@Description	Cancel a live auction that has no bids yet.
//	@Tags			Auctions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Auction ID"
//	@Success		200	{object}	dto.AuctionResponseDTO	"Canceled auction"
//	@Failure		403	{object}	utils.Response			"Caller is not the seller"
//	@Failure		404	{object}	utils.Response			"Auction not found"
//	@Failure		409	{object}	utils.Response			"Auction is not live"
//	@Failure		422	{object}	utils.Response			"Auction already has bids"
//	@Router			/api/auctions/{id} [delete]
func (h *AuctionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)
	id, ok := httperr.AuctionID(w, r)
	if !ok {
		return
	}

	auction, err := h.auctionService.Cancel(r.Context(), userID, id)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuctionResponse(auction))
}

// Settle godoc
//
//	@Summary		Close auction now
//	@Description	End a live auction immediately and open the payment window for the winner.
//	@Tags			Auctions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Auction ID"
//	@Success		200	{object}	dto.AuctionResponseDTO	"Closed auction"
//	@Failure		403	{object}	utils.Response			"Caller is not the seller"
//	@Failure		404	{object}	utils.Response			"Auction not found"
//	@Failure		409	{object}	utils.Response			"Auction is not live"
//	@Router			/api/auctions/{id}/settle [post]
func (h *AuctionHandler) Settle(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)
	id, ok := httperr.AuctionID(w, r)
	if !ok {
		return
	}

	auction, err := h.auctionService.Settle(r.Context(), userID, id)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuctionResponse(auction))
}

// PlaceBid godoc
//
//	@Summary		Place bid
//	@Description	Bid on a live auction. The first bid on an auction places a deposit hold on the bidder's wallet.
//	@Tags			Bids
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Auction ID"
//	@Param			request	body		dto.PlaceBidRequestDTO	true	"Bid amount"
//	@Success		201		{object}	dto.BidResponseDTO		"Bid accepted"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		404		{object}	utils.Response			"Auction, user or wallet not found"
//	@Failure		409		{object}	utils.Response			"Auction is not live"
//	@Failure		422		{object}	utils.Response			"Bid too low or insufficient funds"
//	@Router			/api/auctions/{id}/bids [post]
func (h *AuctionHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)
	id, ok := httperr.AuctionID(w, r)
	if !ok {
		return
	}

	var req dto.PlaceBidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bid, err := h.biddingService.PlaceBid(r.Context(), userID, id, req.Amount)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.BidResponse(bid))
}

// GetBids godoc
//
//	@Summary	Get bid history
//	@Tags		Bids
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int					true	"Auction ID"
//	@Success	200	{array}		dto.BidResponseDTO	"Bids, newest first"
//	@Success	204	{object}	utils.Response		"No bids yet"
//	@Failure	500	{object}	utils.Response		"Internal server error"
//	@Router		/api/auctions/{id}/bids [get]
func (h *AuctionHandler) GetBids(w http.ResponseWriter, r *http.Request) {
	id, ok := httperr.AuctionID(w, r)
	if !ok {
		return
	}

	bids, err := h.biddingService.GetBidHistory(r.Context(), id)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	if len(bids) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	response := make([]dto.BidResponseDTO, len(bids))
	for i := range bids {
		response[i] = dto.BidResponse(&bids[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetWinningBid godoc
//
//	@Summary	Get winning bid
//	@Tags		Bids
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int					true	"Auction ID"
//	@Success	200	{object}	dto.BidResponseDTO	"Current leader or winner"
//	@Failure	404	{object}	utils.Response		"No winning bid"
//	@Router		/api/auctions/{id}/bids/winning [get]
func (h *AuctionHandler) GetWinningBid(w http.ResponseWriter, r *http.Request) {
	id, ok := httperr.AuctionID(w, r)
	if !ok {
		return
	}

	bid, err := h.biddingService.GetWinningBid(r.Context(), id)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BidResponse(bid))
}
