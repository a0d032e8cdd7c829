package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	accountrepo "github.com/GlebRadaev/pawction/internal/repo/account-repo"
	auctionrepo "github.com/GlebRadaev/pawction/internal/repo/auction-repo"
	bidrepo "github.com/GlebRadaev/pawction/internal/repo/bid-repo"
	directoryrepo "github.com/GlebRadaev/pawction/internal/repo/directory-repo"
	holdrepo "github.com/GlebRadaev/pawction/internal/repo/hold-repo"
	paymentrepo "github.com/GlebRadaev/pawction/internal/repo/payment-repo"
	transactionrepo "github.com/GlebRadaev/pawction/internal/repo/transaction-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &auctionrepo.Repository{}, repo.AuctionRepo)
	assert.IsType(t, &bidrepo.Repository{}, repo.BidRepo)
	assert.IsType(t, &directoryrepo.Repository{}, repo.DirectoryRepo)
	assert.IsType(t, &accountrepo.Repository{}, repo.AccountRepo)
	assert.IsType(t, &holdrepo.Repository{}, repo.HoldRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)
	assert.IsType(t, &paymentrepo.Repository{}, repo.PaymentRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
