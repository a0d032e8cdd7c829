package auctionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/pawction/internal/domain"
	"github.com/GlebRadaev/pawction/internal/notify"
	"github.com/GlebRadaev/pawction/internal/pg"
	"github.com/GlebRadaev/pawction/pkg/clock"
)

var now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

const grace = 2 * time.Second

type mocks struct {
	tx         *pg.MockTXManager
	auctions   *MockAuctionRepo
	directory  *MockDirectory
	bidding    *MockBidding
	settlement *MockSettlement
	publisher  *MockPublisher
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		tx:         pg.NewMockTXManager(ctrl),
		auctions:   NewMockAuctionRepo(ctrl),
		directory:  NewMockDirectory(ctrl),
		bidding:    NewMockBidding(ctrl),
		settlement: NewMockSettlement(ctrl),
		publisher:  NewMockPublisher(ctrl),
	}
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	return New(m.tx, m.auctions, m.directory, m.bidding, m.settlement, m.publisher, clock.NewFixed(now), grace), m
}

type decimalMatcher struct {
	want decimal.Decimal
}

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "is decimal " + m.want.String()
}

func eqDecimal(v int64) gomock.Matcher {
	return decimalMatcher{want: decimal.NewFromInt(v)}
}

func liveAuction(start, highest int64) *domain.Auction {
	return &domain.Auction{
		ID:            7,
		PetID:         3,
		SellerID:      2,
		Description:   "Beagle puppy",
		StartPrice:    decimal.NewFromInt(start),
		HighestBid:    decimal.NewFromInt(highest),
		Status:        domain.AuctionLive,
		PaymentStatus: domain.PaymentUnpaid,
		CreatedAt:     now.Add(-12 * time.Hour),
		EndTime:       now.Add(time.Hour),
	}
}

func TestCreate(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	endTime := now.Add(12 * time.Hour)

	tests := []struct {
		name        string
		startPrice  decimal.Decimal
		description string
		endTime     time.Time
		prepareMock func()
		expectedErr error
	}{
		{
			name:        "Auction created",
			startPrice:  decimal.NewFromInt(40),
			description: "Beagle puppy",
			endTime:     endTime,
			prepareMock: func() {
				m.directory.EXPECT().FindUser(gomock.Any(), int64(2)).Return(&domain.User{ID: 2}, nil)
				m.directory.EXPECT().FindPet(gomock.Any(), int64(3)).Return(&domain.Pet{ID: 3, OwnerID: 2}, nil)
				m.auctions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Auction) (*domain.Auction, error) {
					assert.Equal(t, domain.AuctionLive, a.Status)
					assert.Equal(t, domain.PaymentUnpaid, a.PaymentStatus)
					assert.True(t, a.HighestBid.Equal(a.StartPrice))
					assert.Equal(t, endTime, a.EndTime)
					a.ID = 7
					return a, nil
				})
			},
		},
		{
			name:        "Start price is zero",
			startPrice:  decimal.Zero,
			description: "Beagle puppy",
			endTime:     endTime,
			prepareMock: func() {},
			expectedErr: domain.ErrInvalidAmount,
		},
		{
			name:        "Start price below one cent",
			startPrice:  decimal.RequireFromString("40.005"),
			description: "Beagle puppy",
			endTime:     endTime,
			prepareMock: func() {},
			expectedErr: domain.ErrInvalidAmount,
		},
		{
			name:        "Blank description",
			startPrice:  decimal.NewFromInt(40),
			description: "   ",
			endTime:     endTime,
			prepareMock: func() {},
			expectedErr: domain.ErrInvalidAuction,
		},
		{
			name:        "End time is not twelve hours away",
			startPrice:  decimal.NewFromInt(40),
			description: "Beagle puppy",
			endTime:     now.Add(11 * time.Hour),
			prepareMock: func() {},
			expectedErr: domain.ErrInvalidAuction,
		},
		{
			name:        "Seller does not exist",
			startPrice:  decimal.NewFromInt(40),
			description: "Beagle puppy",
			endTime:     endTime,
			prepareMock: func() {
				m.directory.EXPECT().FindUser(gomock.Any(), int64(2)).Return(nil, nil)
			},
			expectedErr: domain.ErrUserNotFound,
		},
		{
			name:        "Pet does not exist",
			startPrice:  decimal.NewFromInt(40),
			description: "Beagle puppy",
			endTime:     endTime,
			prepareMock: func() {
				m.directory.EXPECT().FindUser(gomock.Any(), int64(2)).Return(&domain.User{ID: 2}, nil)
				m.directory.EXPECT().FindPet(gomock.Any(), int64(3)).Return(nil, nil)
			},
			expectedErr: domain.ErrPetNotFound,
		},
		{
			name:        "Pet belongs to someone else",
			startPrice:  decimal.NewFromInt(40),
			description: "Beagle puppy",
			endTime:     endTime,
			prepareMock: func() {
				m.directory.EXPECT().FindUser(gomock.Any(), int64(2)).Return(&domain.User{ID: 2}, nil)
				m.directory.EXPECT().FindPet(gomock.Any(), int64(3)).Return(&domain.Pet{ID: 3, OwnerID: 9}, nil)
			},
			expectedErr: domain.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			auction, err := service.Create(ctx, 2, 3, tt.startPrice, tt.description, tt.endTime)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, auction)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), auction.ID)
		})
	}
}

func TestCancel(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		sellerID    int64
		prepareMock func()
		expectedErr error
	}{
		{
			name:     "No bids yet",
			sellerID: 2,
			prepareMock: func() {
				m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(liveAuction(40, 40), nil)
				m.auctions.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Auction) error {
					assert.Equal(t, domain.AuctionCanceled, a.Status)
					return nil
				})
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, event notify.Event) {
					assert.Equal(t, notify.AuctionCanceled, event.Type)
				})
			},
		},
		{
			name:     "After the first bid",
			sellerID: 2,
			prepareMock: func() {
				m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(liveAuction(40, 41), nil)
			},
			expectedErr: domain.ErrInvalidAuction,
		},
		{
			name:     "Not the seller",
			sellerID: 4,
			prepareMock: func() {
				m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(liveAuction(40, 40), nil)
			},
			expectedErr: domain.ErrUnauthorized,
		},
		{
			name:     "Already ended",
			sellerID: 2,
			prepareMock: func() {
				a := liveAuction(40, 40)
				a.Status = domain.AuctionEnded
				m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(a, nil)
			},
			expectedErr: domain.ErrInvalidState,
		},
		{
			name:     "Unknown auction",
			sellerID: 2,
			prepareMock: func() {
				m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(nil, nil)
			},
			expectedErr: domain.ErrAuctionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			auction, err := service.Cancel(ctx, tt.sellerID, 7)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.AuctionCanceled, auction.Status)
		})
	}
}

func TestEnd(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	due := now.Add(72 * time.Hour)

	t.Run("Winner hands off to settlement", func(t *testing.T) {
		m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(liveAuction(40, 60), nil)
		m.bidding.EXPECT().GetWinningBid(gomock.Any(), int64(7)).
			Return(&domain.Bid{ID: 10, BidderID: 4, Amount: decimal.NewFromInt(60), Status: domain.BidWinning}, nil)
		m.bidding.EXPECT().FinalizeBidsOnClose(gomock.Any(), int64(7)).Return(nil)
		m.auctions.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Auction) error {
			assert.Equal(t, domain.AuctionEnded, a.Status)
			assert.True(t, a.IsWinner(4))
			require.NotNil(t, a.PaymentDueDate)
			assert.Equal(t, due, *a.PaymentDueDate)
			return nil
		})
		ended := liveAuction(40, 60)
		ended.Status = domain.AuctionEnded
		m.settlement.EXPECT().Begin(gomock.Any(), int64(7), int64(4), eqDecimal(60), due).Return(ended, nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		auction, err := service.End(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, domain.AuctionEnded, auction.Status)
	})

	t.Run("Second call is rejected", func(t *testing.T) {
		ended := liveAuction(40, 60)
		ended.Status = domain.AuctionEnded
		m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(ended, nil)

		_, err := service.End(ctx, 7)
		assert.ErrorIs(t, err, domain.ErrAuctionInvalidState)
	})

	t.Run("No bids settles without winner", func(t *testing.T) {
		m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(liveAuction(40, 40), nil)
		m.bidding.EXPECT().GetWinningBid(gomock.Any(), int64(7)).Return(nil, domain.ErrBidNotFound)
		m.auctions.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Auction) error {
			assert.Nil(t, a.WinnerID)
			assert.Nil(t, a.PaymentDueDate)
			return nil
		})
		settled := liveAuction(40, 40)
		settled.Status = domain.AuctionSettled
		m.settlement.EXPECT().NoWinner(gomock.Any(), int64(7)).Return(settled, nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		auction, err := service.End(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, domain.AuctionSettled, auction.Status)
	})

	t.Run("Canceled auction cannot end", func(t *testing.T) {
		canceled := liveAuction(40, 40)
		canceled.Status = domain.AuctionCanceled
		m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(canceled, nil)

		_, err := service.End(ctx, 7)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("Settled auction is terminal", func(t *testing.T) {
		settled := liveAuction(40, 40)
		settled.Status = domain.AuctionSettled
		m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(settled, nil)

		_, err := service.End(ctx, 7)
		assert.ErrorIs(t, err, domain.ErrAuctionInvalidState)
	})
}

func TestSettle(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(liveAuction(40, 40), nil)
	m.bidding.EXPECT().GetWinningBid(gomock.Any(), int64(7)).Return(nil, domain.ErrBidNotFound)
	m.auctions.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Auction) error {
		assert.Equal(t, now, a.EndTime)
		assert.Equal(t, domain.AuctionEnded, a.Status)
		return nil
	})
	settled := liveAuction(40, 40)
	settled.Status = domain.AuctionSettled
	m.settlement.EXPECT().NoWinner(gomock.Any(), int64(7)).Return(settled, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

	auction, err := service.Settle(ctx, 2, 7)
	require.NoError(t, err)
	assert.Equal(t, domain.AuctionSettled, auction.Status)

	m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(liveAuction(40, 40), nil)
	_, err = service.Settle(ctx, 4, 7)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCloseExpiredAuctions(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	cutoff := now.Add(-grace)

	expired := liveAuction(40, 41)
	expired.EndTime = now.Add(-time.Minute)

	m.auctions.EXPECT().FindExpiredLiveIDs(gomock.Any(), cutoff, int64(0), closeBatchSize).Return([]int64{7}, nil)
	m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(expired, nil)
	m.bidding.EXPECT().GetWinningBid(gomock.Any(), int64(7)).
		Return(&domain.Bid{ID: 10, BidderID: 4, Amount: decimal.NewFromInt(41), Status: domain.BidWinning}, nil)
	m.bidding.EXPECT().FinalizeBidsOnClose(gomock.Any(), int64(7)).Return(nil)
	m.auctions.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.settlement.EXPECT().Begin(gomock.Any(), int64(7), int64(4), eqDecimal(41), now.Add(72*time.Hour)).Return(expired, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

	closed, err := service.CloseExpiredAuctions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, closed)
	assert.Equal(t, domain.AuctionEnded, expired.Status)
}

func TestCloseExpiredAuctions_PagesAndIsolatesFailures(t *testing.T) {
	service, m := NewMock(t)
	service.batchSize = 2
	ctx := context.Background()
	cutoff := now.Add(-grace)

	skipped := liveAuction(40, 40)
	skipped.ID = 8
	skipped.Status = domain.AuctionCanceled

	expired := liveAuction(40, 40)
	expired.ID = 9
	expired.EndTime = cutoff

	gomock.InOrder(
		m.auctions.EXPECT().FindExpiredLiveIDs(gomock.Any(), cutoff, int64(0), 2).Return([]int64{7, 8}, nil),
		m.auctions.EXPECT().FindExpiredLiveIDs(gomock.Any(), cutoff, int64(8), 2).Return([]int64{9}, nil),
	)
	m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(nil, errors.New("database error"))
	m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(8)).Return(skipped, nil)
	m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(9)).Return(expired, nil)
	m.bidding.EXPECT().GetWinningBid(gomock.Any(), int64(9)).Return(nil, domain.ErrBidNotFound)
	m.auctions.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.settlement.EXPECT().NoWinner(gomock.Any(), int64(9)).Return(expired, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

	closed, err := service.CloseExpiredAuctions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, closed)
}

func TestCloseOneIfExpired_NotYetExpired(t *testing.T) {
	service, m := NewMock(t)
	m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(liveAuction(40, 40), nil)

	ok, err := service.CloseOneIfExpired(context.Background(), 7, now)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdates(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	t.Run("Detail", func(t *testing.T) {
		m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(liveAuction(40, 40), nil)
		m.auctions.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		auction, err := service.UpdateDetail(ctx, 2, 7, "Calm beagle")
		require.NoError(t, err)
		assert.Equal(t, "Calm beagle", auction.Description)
		assert.Equal(t, now, auction.UpdatedAt)
	})

	t.Run("End time must be twelve hours from now", func(t *testing.T) {
		m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(liveAuction(40, 40), nil)
		_, err := service.UpdateEndTime(ctx, 2, 7, now.Add(6*time.Hour))
		assert.ErrorIs(t, err, domain.ErrInvalidAuction)

		m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(liveAuction(40, 40), nil)
		m.auctions.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		auction, err := service.UpdateEndTime(ctx, 2, 7, now.Add(12*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, now.Add(12*time.Hour), auction.EndTime)
	})

	t.Run("Pet info", func(t *testing.T) {
		m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(liveAuction(40, 40), nil)
		m.directory.EXPECT().FindPet(gomock.Any(), int64(3)).Return(&domain.Pet{ID: 3, OwnerID: 2, Name: "Rex"}, nil)
		m.directory.EXPECT().UpdatePet(gomock.Any(), &domain.Pet{ID: 3, OwnerID: 2, Name: "Max", Details: "beagle", UpdatedAt: now}).Return(nil)
		m.auctions.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		pet, err := service.UpdatePetInfo(ctx, 2, 7, "Max", "beagle")
		require.NoError(t, err)
		assert.Equal(t, "Max", pet.Name)
	})

	t.Run("Only while live", func(t *testing.T) {
		ended := liveAuction(40, 40)
		ended.Status = domain.AuctionEnded
		m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(ended, nil)
		_, err := service.UpdateDetail(ctx, 2, 7, "Calm beagle")
		assert.ErrorIs(t, err, domain.ErrAuctionInvalidState)
	})

	t.Run("Only by the seller", func(t *testing.T) {
		m.auctions.EXPECT().GetByIDForUpdate(gomock.Any(), int64(7)).Return(liveAuction(40, 40), nil)
		_, err := service.UpdateDetail(ctx, 4, 7, "Calm beagle")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestGetAndNextMinimumBid(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	m.auctions.EXPECT().GetByID(gomock.Any(), int64(7)).Return(liveAuction(40, 41), nil)
	next, err := service.NextMinimumBid(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "42", next.String())

	m.auctions.EXPECT().GetByID(gomock.Any(), int64(7)).Return(nil, nil)
	_, err = service.Get(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrAuctionNotFound)
}
