package wallet

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/pawction/internal/domain"
	"github.com/GlebRadaev/pawction/internal/dto"
	"github.com/GlebRadaev/pawction/internal/handlers/httperr"
	"github.com/GlebRadaev/pawction/pkg/auth"
	"github.com/GlebRadaev/pawction/pkg/utils"
)

type Service interface {
	CreateAccount(ctx context.Context, userID int64) (*domain.Account, error)
	GetAccountByUserID(ctx context.Context, userID int64) (*domain.Account, error)
	GetAvailable(ctx context.Context, accountID int64) (decimal.Decimal, error)
	Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.Transaction, error)
	Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.Transaction, error)
	GetHolds(ctx context.Context, accountID int64) ([]domain.DepositHold, error)
	GetTransactions(ctx context.Context, accountID int64) ([]domain.Transaction, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// CreateAccount godoc
//
//	@Summary	Open wallet
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Produce	json
//	@Success	201	{object}	dto.AccountResponseDTO	"Wallet opened"
//	@Failure	401	{object}	utils.Response			"User not authorized"
//	@Failure	404	{object}	utils.Response			"User not found"
//	@Failure	409	{object}	utils.Response			"Wallet already exists"
//	@Failure	500	{object}	utils.Response			"Internal server error"
//	@Router		/api/wallet [post]
func (h *WalletHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	account, err := h.walletService.CreateAccount(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.AccountResponseDTO{
		ID:        account.ID,
		UserID:    account.UserID,
		Balance:   account.Balance,
		Available: account.Balance,
		CreatedAt: account.CreatedAt,
	})
}

// GetAccount godoc
//
//	@Summary		Get wallet balance
//	@Description	Return the ledger balance and the amount available after active deposit holds.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AccountResponseDTO	"Wallet"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Wallet not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, ok := h.account(w, r)
	if !ok {
		return
	}

	available, err := h.walletService.GetAvailable(r.Context(), account.ID)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccountResponseDTO{
		ID:        account.ID,
		UserID:    account.UserID,
		Balance:   account.Balance,
		Available: available,
		CreatedAt: account.CreatedAt,
	})
}

// Deposit godoc
//
//	@Summary	Deposit funds
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.AmountRequestDTO		true	"Amount to deposit"
//	@Success	200		{object}	dto.TransactionResponseDTO	"Ledger entry"
//	@Failure	400		{object}	utils.Response				"Invalid request body"
//	@Failure	404		{object}	utils.Response				"Wallet not found"
//	@Failure	422		{object}	utils.Response				"Amount must be positive"
//	@Router		/api/wallet/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.post(w, r, h.walletService.Deposit)
}

// Withdraw godoc
//
//	@Summary		Withdraw funds
//	@Description	Withdraw up to the available amount. Funds held for auctions cannot be withdrawn.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AmountRequestDTO		true	"Amount to withdraw"
//	@Success		200		{object}	dto.TransactionResponseDTO	"Ledger entry"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		404		{object}	utils.Response				"Wallet not found"
//	@Failure		422		{object}	utils.Response				"Insufficient available funds"
//	@Router			/api/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.post(w, r, h.walletService.Withdraw)
}

// GetHolds godoc
//
//	@Summary	Get deposit holds
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.HoldResponseDTO	"Holds, newest first"
//	@Success	204	{object}	utils.Response		"No holds"
//	@Failure	404	{object}	utils.Response		"Wallet not found"
//	@Router		/api/wallet/holds [get]
func (h *WalletHandler) GetHolds(w http.ResponseWriter, r *http.Request) {
	account, ok := h.account(w, r)
	if !ok {
		return
	}

	holds, err := h.walletService.GetHolds(r.Context(), account.ID)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	if len(holds) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	response := make([]dto.HoldResponseDTO, len(holds))
	for i := range holds {
		response[i] = dto.HoldResponse(&holds[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetTransactions godoc
//
//	@Summary	Get ledger history
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.TransactionResponseDTO	"Ledger entries, newest first"
//	@Success	204	{object}	utils.Response				"No entries"
//	@Failure	404	{object}	utils.Response				"Wallet not found"
//	@Router		/api/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	account, ok := h.account(w, r)
	if !ok {
		return
	}

	txs, err := h.walletService.GetTransactions(r.Context(), account.ID)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	if len(txs) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	response := make([]dto.TransactionResponseDTO, len(txs))
	for i := range txs {
		response[i] = dto.TransactionResponse(&txs[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func (h *WalletHandler) post(
	w http.ResponseWriter, r *http.Request,
	apply func(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.Transaction, error),
) {
	var req dto.AmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	account, ok := h.account(w, r)
	if !ok {
		return
	}

	tx, err := apply(r.Context(), account.ID, req.Amount)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionResponse(tx))
}

func (h *WalletHandler) account(w http.ResponseWriter, r *http.Request) (*domain.Account, bool) {
	userID := r.Context().Value(auth.UserIDKey).(int64)
	account, err := h.walletService.GetAccountByUserID(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, r, err)
		return nil, false
	}
	return account, true
}
