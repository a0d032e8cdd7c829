package walletservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pawction/internal/domain"
	"github.com/GlebRadaev/pawction/internal/pg"
	"github.com/GlebRadaev/pawction/internal/service/policy"
	"github.com/GlebRadaev/pawction/pkg/clock"
)

//go:generate mockgen -source=walletservice.go -destination=mock_walletservice.go -package=walletservice

type AccountRepo interface {
	Create(ctx context.Context, userID int64) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Account, error)
	GetOrCreateByUserID(ctx context.Context, userID int64) (*domain.Account, error)
	AddBalance(ctx context.Context, id int64, delta decimal.Decimal) (*domain.Account, error)
}

type HoldRepo interface {
	Create(ctx context.Context, hold *domain.DepositHold) (*domain.DepositHold, error)
	FindByAccountAndAuction(ctx context.Context, accountID, auctionID int64) (*domain.DepositHold, error)
	SumHeld(ctx context.Context, accountID int64) (decimal.Decimal, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.HoldStatus, at time.Time) (bool, error)
	ListByAccount(ctx context.Context, accountID int64) ([]domain.DepositHold, error)
	ListByAuction(ctx context.Context, auctionID int64) ([]domain.DepositHold, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID int64) ([]domain.Transaction, error)
}

// Service is the wallet ledger. Holds reserve part of the balance without
// moving money; available = balance - sum of HELD holds.
type Service struct {
	txManager    pg.TXManager
	accounts     AccountRepo
	holds        HoldRepo
	transactions TransactionRepo
	clock        clock.Clock
}

func New(txManager pg.TXManager, accounts AccountRepo, holds HoldRepo, transactions TransactionRepo, clk clock.Clock) *Service {
	return &Service{
		txManager:    txManager,
		accounts:     accounts,
		holds:        holds,
		transactions: transactions,
		clock:        clk,
	}
}

func (s *Service) CreateAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	account, err := s.accounts.Create(ctx, userID)
	if err != nil {
		return nil, err
	}
	zap.L().Info("account created", zap.Int64("account_id", account.ID), zap.Int64("user_id", userID))
	return account, nil
}

// EnsureAccount returns the user's account and opens one when the user has
// none yet. Safe to call inside a transaction that races another creator.
func (s *Service) EnsureAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	account, err := s.accounts.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) GetAccountByUserID(ctx context.Context, userID int64) (*domain.Account, error) {
	account, err := s.accounts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) GetBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// GetAvailable locks the account row, so inside a caller's transaction the
// value stays valid until commit.
func (s *Service) GetAvailable(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	var available decimal.Decimal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.lockAccount(ctx, accountID)
		if err != nil {
			return err
		}
		available, err = s.available(ctx, account)
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}
	return available, nil
}

func (s *Service) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.Transaction, error) {
	if err := requirePositive(amount); err != nil {
		return nil, err
	}
	var tx *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.lockAccount(ctx, accountID); err != nil {
			return err
		}
		var err error
		tx, err = s.post(ctx, accountID, amount, domain.TxDeposit, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *Service) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.Transaction, error) {
	return s.Debit(ctx, accountID, amount, domain.TxWithdrawal, nil)
}

// Credit posts a positive ledger entry of the given kind.
func (s *Service) Credit(ctx context.Context, accountID int64, amount decimal.Decimal, kind domain.TransactionKind, auctionID *int64) (*domain.Transaction, error) {
	if err := requirePositive(amount); err != nil {
		return nil, err
	}
	var tx *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.lockAccount(ctx, accountID); err != nil {
			return err
		}
		var err error
		tx, err = s.post(ctx, accountID, amount, kind, auctionID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// Debit posts a negative ledger entry. Like a withdrawal it may only spend
// available funds.
func (s *Service) Debit(ctx context.Context, accountID int64, amount decimal.Decimal, kind domain.TransactionKind, auctionID *int64) (*domain.Transaction, error) {
	if err := requirePositive(amount); err != nil {
		return nil, err
	}
	var tx *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.lockAccount(ctx, accountID)
		if err != nil {
			return err
		}
		available, err := s.available(ctx, account)
		if err != nil {
			return err
		}
		if available.LessThan(amount) {
			zap.L().Info("debit rejected", zap.Int64("account_id", accountID), zap.String("kind", string(kind)),
				zap.String("amount", amount.String()), zap.String("available", available.String()))
			return domain.ErrInsufficientFunds
		}
		tx, err = s.post(ctx, accountID, amount.Neg(), kind, auctionID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// PlaceHold reserves amount for the auction. An existing hold for the pair is
// returned as is, whatever its status.
func (s *Service) PlaceHold(ctx context.Context, accountID, auctionID int64, amount decimal.Decimal) (*domain.DepositHold, error) {
	if err := requirePositive(amount); err != nil {
		return nil, err
	}
	var hold *domain.DepositHold
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.lockAccount(ctx, accountID)
		if err != nil {
			return err
		}
		existing, err := s.holds.FindByAccountAndAuction(ctx, accountID, auctionID)
		if err != nil {
			return err
		}
		if existing != nil {
			hold = existing
			return nil
		}
		available, err := s.available(ctx, account)
		if err != nil {
			return err
		}
		if available.LessThan(amount) {
			return domain.ErrInsufficientFunds
		}
		now := s.clock.Now()
		hold, err = s.holds.Create(ctx, &domain.DepositHold{
			AccountID: accountID,
			AuctionID: auctionID,
			Amount:    amount,
			Status:    domain.HoldHeld,
			CreatedAt: now,
			UpdatedAt: now,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return hold, nil
}

func (s *Service) FindHold(ctx context.Context, accountID, auctionID int64) (*domain.DepositHold, error) {
	return s.holds.FindByAccountAndAuction(ctx, accountID, auctionID)
}

// ReleaseHold returns a HELD hold to the bidder. Nothing is posted to the
// ledger because holds never debited the balance.
func (s *Service) ReleaseHold(ctx context.Context, accountID, auctionID int64) (*domain.DepositHold, error) {
	return s.resolveHold(ctx, accountID, auctionID, domain.HoldHeld, domain.HoldReleased, nil)
}

// ForfeitHold marks a HELD hold as lost. The penalty itself is posted by the
// settlement workflow.
func (s *Service) ForfeitHold(ctx context.Context, accountID, auctionID int64) (*domain.DepositHold, error) {
	return s.resolveHold(ctx, accountID, auctionID, domain.HoldHeld, domain.HoldForfeited, nil)
}

// ApplyHold counts a HELD hold toward the final price: the hold becomes
// APPLIED and its amount is debited as HOLD_APPLIED.
func (s *Service) ApplyHold(ctx context.Context, accountID, auctionID int64) (*domain.DepositHold, error) {
	return s.resolveHold(ctx, accountID, auctionID, domain.HoldHeld, domain.HoldApplied, func(hold *domain.DepositHold) posting {
		return posting{amount: hold.Amount.Neg(), kind: domain.TxHoldApplied}
	})
}

// ForfeitAppliedHold keeps an applied hold as a penalty. Its amount already
// left the balance when it was applied.
func (s *Service) ForfeitAppliedHold(ctx context.Context, accountID, auctionID int64) (*domain.DepositHold, error) {
	return s.resolveHold(ctx, accountID, auctionID, domain.HoldApplied, domain.HoldForfeited, nil)
}

// RefundAppliedHold gives back the amount of an applied hold.
func (s *Service) RefundAppliedHold(ctx context.Context, accountID, auctionID int64) (*domain.DepositHold, error) {
	return s.resolveHold(ctx, accountID, auctionID, domain.HoldApplied, domain.HoldReleased, func(hold *domain.DepositHold) posting {
		return posting{amount: hold.Amount, kind: domain.TxRefund}
	})
}

type posting struct {
	amount decimal.Decimal
	kind   domain.TransactionKind
}

func (s *Service) resolveHold(
	ctx context.Context, accountID, auctionID int64, from, to domain.HoldStatus, post func(*domain.DepositHold) posting,
) (*domain.DepositHold, error) {
	var hold *domain.DepositHold
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.lockAccount(ctx, accountID); err != nil {
			return err
		}
		var err error
		hold, err = s.holds.FindByAccountAndAuction(ctx, accountID, auctionID)
		if err != nil {
			return err
		}
		if hold == nil || hold.Status != from {
			return domain.ErrHoldNotFound
		}
		now := s.clock.Now()
		ok, err := s.holds.UpdateStatus(ctx, hold.ID, from, to, now)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrHoldNotFound
		}
		hold.Status = to
		hold.UpdatedAt = now
		if post != nil {
			p := post(hold)
			if _, err := s.post(ctx, accountID, p.amount, p.kind, &hold.AuctionID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Debug("hold resolved", zap.Int64("hold_id", hold.ID), zap.String("status", string(hold.Status)))
	return hold, nil
}

func (s *Service) GetHolds(ctx context.Context, accountID int64) ([]domain.DepositHold, error) {
	if _, err := s.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return s.holds.ListByAccount(ctx, accountID)
}

func (s *Service) GetActiveHolds(ctx context.Context, accountID int64) ([]domain.DepositHold, error) {
	holds, err := s.GetHolds(ctx, accountID)
	if err != nil {
		return nil, err
	}
	active := make([]domain.DepositHold, 0, len(holds))
	for _, h := range holds {
		if h.Status == domain.HoldHeld {
			active = append(active, h)
		}
	}
	return active, nil
}

func (s *Service) GetAuctionHolds(ctx context.Context, auctionID int64) ([]domain.DepositHold, error) {
	return s.holds.ListByAuction(ctx, auctionID)
}

func (s *Service) GetTransactions(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	if _, err := s.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return s.transactions.ListByAccount(ctx, accountID)
}

func (s *Service) lockAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accounts.GetByIDForUpdate(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) available(ctx context.Context, account *domain.Account) (decimal.Decimal, error) {
	held, err := s.holds.SumHeld(ctx, account.ID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance.Sub(held), nil
}

func (s *Service) post(ctx context.Context, accountID int64, delta decimal.Decimal, kind domain.TransactionKind, auctionID *int64) (*domain.Transaction, error) {
	if _, err := s.accounts.AddBalance(ctx, accountID, delta); err != nil {
		return nil, err
	}
	return s.transactions.Create(ctx, &domain.Transaction{
		AccountID: accountID,
		AuctionID: auctionID,
		Kind:      kind,
		Amount:    delta,
		CreatedAt: s.clock.Now(),
	})
}

func requirePositive(amount decimal.Decimal) error {
	return policy.CheckAmount(amount, domain.ErrInvalidAmount)
}
