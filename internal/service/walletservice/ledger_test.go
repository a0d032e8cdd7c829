package walletservice

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/pawction/internal/domain"
	"github.com/GlebRadaev/pawction/internal/pg"
	"github.com/GlebRadaev/pawction/pkg/clock"
)

// memLedger keeps accounts, holds and transactions in memory so properties of
// the ledger can be checked across sequences of operations.
type memLedger struct {
	accounts map[int64]*domain.Account
	holds    []*domain.DepositHold
	txs      []domain.Transaction
	nextID   int64
}

type (
	memAccounts     struct{ *memLedger }
	memHolds        struct{ *memLedger }
	memTransactions struct{ *memLedger }
	noTx            struct{}
)

func (noTx) Begin(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }

func (l *memLedger) id() int64 {
	l.nextID++
	return l.nextID
}

func (r memAccounts) Create(_ context.Context, userID int64) (*domain.Account, error) {
	a := &domain.Account{ID: r.id(), UserID: userID, Balance: decimal.Zero}
	r.accounts[a.ID] = a
	c := *a
	return &c, nil
}

func (r memAccounts) GetByID(_ context.Context, id int64) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	c := *a
	return &c, nil
}

func (r memAccounts) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error) {
	return r.GetByID(ctx, id)
}

func (r memAccounts) GetByUserID(_ context.Context, userID int64) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.UserID == userID {
			c := *a
			return &c, nil
		}
	}
	return nil, nil
}

func (r memAccounts) GetOrCreateByUserID(ctx context.Context, userID int64) (*domain.Account, error) {
	a, err := r.GetByUserID(ctx, userID)
	if err != nil || a != nil {
		return a, err
	}
	return r.Create(ctx, userID)
}

func (r memAccounts) AddBalance(_ context.Context, id int64, delta decimal.Decimal) (*domain.Account, error) {
	a := r.accounts[id]
	a.Balance = a.Balance.Add(delta)
	c := *a
	return &c, nil
}

func (r memHolds) Create(_ context.Context, h *domain.DepositHold) (*domain.DepositHold, error) {
	h.ID = r.id()
	c := *h
	r.holds = append(r.holds, &c)
	return h, nil
}

func (r memHolds) FindByAccountAndAuction(_ context.Context, accountID, auctionID int64) (*domain.DepositHold, error) {
	for _, h := range r.holds {
		if h.AccountID == accountID && h.AuctionID == auctionID {
			c := *h
			return &c, nil
		}
	}
	return nil, nil
}

func (r memHolds) SumHeld(_ context.Context, accountID int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, h := range r.holds {
		if h.AccountID == accountID && h.Status == domain.HoldHeld {
			sum = sum.Add(h.Amount)
		}
	}
	return sum, nil
}

func (r memHolds) UpdateStatus(_ context.Context, id int64, from, to domain.HoldStatus, at time.Time) (bool, error) {
	for _, h := range r.holds {
		if h.ID == id && h.Status == from {
			h.Status = to
			h.UpdatedAt = at
			return true, nil
		}
	}
	return false, nil
}

func (r memHolds) ListByAccount(_ context.Context, accountID int64) ([]domain.DepositHold, error) {
	var out []domain.DepositHold
	for _, h := range r.holds {
		if h.AccountID == accountID {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (r memHolds) ListByAuction(_ context.Context, auctionID int64) ([]domain.DepositHold, error) {
	var out []domain.DepositHold
	for _, h := range r.holds {
		if h.AuctionID == auctionID {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (r memTransactions) Create(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	tx.ID = r.id()
	r.txs = append(r.txs, *tx)
	return tx, nil
}

func (r memTransactions) ListByAccount(_ context.Context, accountID int64) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, tx := range r.txs {
		if tx.AccountID == accountID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func newLedger(t *testing.T) (*Service, *memLedger, *domain.Account) {
	l := &memLedger{accounts: map[int64]*domain.Account{}}
	service := New(noTx{}, memAccounts{l}, memHolds{l}, memTransactions{l},
		clock.NewFixed(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))
	account, err := service.CreateAccount(context.Background(), 4)
	require.NoError(t, err)
	return service, l, account
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func assertAvailableInvariant(t *testing.T, service *Service, l *memLedger, accountID int64) {
	t.Helper()
	ctx := context.Background()
	balance, err := service.GetBalance(ctx, accountID)
	require.NoError(t, err)
	held, _ := memHolds{l}.SumHeld(ctx, accountID)
	available, err := service.GetAvailable(ctx, accountID)
	require.NoError(t, err)
	assert.True(t, balance.Sub(held).Equal(available), "available %s, balance %s, held %s", available, balance, held)
	assert.False(t, available.IsNegative())
}

func TestLedger_DepositWithdrawRoundTrip(t *testing.T) {
	service, l, account := newLedger(t)
	ctx := context.Background()

	_, err := service.Deposit(ctx, account.ID, dec(20))
	require.NoError(t, err)
	before, err := service.GetBalance(ctx, account.ID)
	require.NoError(t, err)

	_, err = service.Deposit(ctx, account.ID, decimal.RequireFromString("37.45"))
	require.NoError(t, err)
	_, err = service.Withdraw(ctx, account.ID, decimal.RequireFromString("37.45"))
	require.NoError(t, err)

	after, err := service.GetBalance(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, before.Equal(after))

	txs, err := service.GetTransactions(ctx, account.ID)
	require.NoError(t, err)
	assert.Len(t, txs, 3)
	assertAvailableInvariant(t, service, l, account.ID)
}

func TestLedger_PlaceHoldIsIdempotent(t *testing.T) {
	service, l, account := newLedger(t)
	ctx := context.Background()

	_, err := service.Deposit(ctx, account.ID, dec(5))
	require.NoError(t, err)

	first, err := service.PlaceHold(ctx, account.ID, 1, dec(5))
	require.NoError(t, err)
	second, err := service.PlaceHold(ctx, account.ID, 1, dec(5))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	active, err := service.GetActiveHolds(ctx, account.ID)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	available, err := service.GetAvailable(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, available.IsZero())
	assertAvailableInvariant(t, service, l, account.ID)
}

func TestLedger_HoldsLimitWithdrawals(t *testing.T) {
	service, l, account := newLedger(t)
	ctx := context.Background()

	_, err := service.Deposit(ctx, account.ID, dec(30))
	require.NoError(t, err)
	_, err = service.PlaceHold(ctx, account.ID, 1, dec(25))
	require.NoError(t, err)

	_, err = service.Withdraw(ctx, account.ID, dec(6))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = service.PlaceHold(ctx, account.ID, 2, dec(10))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	_, err = service.ReleaseHold(ctx, account.ID, 1)
	require.NoError(t, err)
	_, err = service.Withdraw(ctx, account.ID, dec(30))
	require.NoError(t, err)

	balance, err := service.GetBalance(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
	assertAvailableInvariant(t, service, l, account.ID)
}

func TestLedger_ApplyThenRefund(t *testing.T) {
	service, l, account := newLedger(t)
	ctx := context.Background()

	_, err := service.Deposit(ctx, account.ID, dec(10))
	require.NoError(t, err)
	_, err = service.PlaceHold(ctx, account.ID, 1, dec(5))
	require.NoError(t, err)

	_, err = service.ApplyHold(ctx, account.ID, 1)
	require.NoError(t, err)
	balance, _ := service.GetBalance(ctx, account.ID)
	assert.True(t, dec(5).Equal(balance))
	assertAvailableInvariant(t, service, l, account.ID)

	_, err = service.ReleaseHold(ctx, account.ID, 1)
	assert.ErrorIs(t, err, domain.ErrHoldNotFound)

	_, err = service.RefundAppliedHold(ctx, account.ID, 1)
	require.NoError(t, err)
	balance, _ = service.GetBalance(ctx, account.ID)
	assert.True(t, dec(10).Equal(balance))
	assertAvailableInvariant(t, service, l, account.ID)
}

func TestLedger_RejectsSubCentAmounts(t *testing.T) {
	service, l, account := newLedger(t)
	ctx := context.Background()

	_, err := service.Deposit(ctx, account.ID, dec(10))
	require.NoError(t, err)

	subCent := decimal.RequireFromString("0.004")
	_, err = service.Deposit(ctx, account.ID, subCent)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = service.Withdraw(ctx, account.ID, subCent)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = service.PlaceHold(ctx, account.ID, 1, decimal.RequireFromString("4.999"))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = service.Credit(ctx, account.ID, subCent, domain.TxSaleProceeds, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	txs, err := service.GetTransactions(ctx, account.ID)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
	balance, err := service.GetBalance(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, dec(10).Equal(balance))
	assertAvailableInvariant(t, service, l, account.ID)
}

func TestLedger_EnsureAccountOpensOnce(t *testing.T) {
	service, l, account := newLedger(t)
	ctx := context.Background()

	existing, err := service.EnsureAccount(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, account.ID, existing.ID)

	first, err := service.EnsureAccount(ctx, 5)
	require.NoError(t, err)
	second, err := service.EnsureAccount(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, l.accounts, 2)
}
