package auction

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"marketplace-auction/internal/auctionerrors"
	"marketplace-auction/internal/auth"
	"marketplace-auction/internal/events"
	"marketplace-auction/internal/models"
	"marketplace-auction/internal/repository"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newMockedService(t *testing.T, authorizer auth.Authorizer) (*AuctionService, *repository.MockAuctionDB, *clockwork.FakeClock, *events.Recorder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := repository.NewMockAuctionDB(ctrl)
	clock := clockwork.NewFakeClockAt(baseTime)
	recorder := events.NewRecorder()
	service := NewAuctionService(mockRepo, authorizer, clock, recorder)
	return service, mockRepo, clock, recorder
}

func activeAuction(seller models.Address) models.Auction {
	return models.Auction{
		ID: "auction1",
		Product: models.Product{
			Name:           "Vintage Textbook",
			Condition:      models.ConditionGood,
			Seller:         seller,
			InventoryCount: 2,
		},
		Status:       models.StatusActive,
		StartTime:    baseTime.Add(-time.Hour),
		EndTime:      baseTime.Add(time.Hour),
		ReservePrice: decimal.NewFromInt(100),
		AllBids:      []models.Bid{},
		Dispute:      models.Dispute{Status: models.DisputeNone},
	}
}

// Tests Initialize
func TestAuctionService_Initialize(t *testing.T) {
	tests := []struct {
		name          string
		admin         models.Address
		authorizer    auth.Authorizer
		mockSetup     func(m *repository.MockAuctionDB)
		expectedError error
	}{
		{
			name:       "valid_initialize",
			admin:      "admin1",
			authorizer: auth.NewStaticAuthorizer("admin1"),
			mockSetup: func(m *repository.MockAuctionDB) {
				m.EXPECT().SetupRegistry(models.Address("admin1")).Return(nil)
			},
		},
		{
			name:          "empty_admin",
			admin:         "",
			authorizer:    auth.AllowAll{},
			mockSetup:     func(_ *repository.MockAuctionDB) {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "unauthorized_caller",
			admin:         "admin1",
			authorizer:    auth.NewStaticAuthorizer("someone-else"),
			mockSetup:     func(_ *repository.MockAuctionDB) {},
			expectedError: auctionerrors.ErrUnauthorized,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			service, mockRepo, _, _ := newMockedService(t, tc.authorizer)
			tc.mockSetup(mockRepo)

			err := service.Initialize(context.Background(), tc.admin)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// Tests AddVerifier and AddResolver authorization
func TestAuctionService_AddVerifier(t *testing.T) {
	tests := []struct {
		name          string
		caller        models.Address
		verifier      models.Address
		mockSetup     func(m *repository.MockAuctionDB)
		expectedError error
	}{
		{
			name:     "admin_adds_verifier",
			caller:   "admin1",
			verifier: "ver1",
			mockSetup: func(m *repository.MockAuctionDB) {
				m.EXPECT().Admin().Return(models.Address("admin1"), nil)
				m.EXPECT().AddVerifier(models.Address("ver1")).Return(nil)
			},
		},
		{
			name:     "non_admin_rejected",
			caller:   "mallory",
			verifier: "ver1",
			mockSetup: func(m *repository.MockAuctionDB) {
				m.EXPECT().Admin().Return(models.Address("admin1"), nil)
			},
			expectedError: auctionerrors.ErrUnauthorized,
		},
		{
			name:     "empty_verifier",
			caller:   "admin1",
			verifier: "",
			mockSetup: func(m *repository.MockAuctionDB) {
				m.EXPECT().Admin().Return(models.Address("admin1"), nil)
			},
			expectedError: auctionerrors.ErrInvalidInput,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			service, mockRepo, _, _ := newMockedService(t, auth.AllowAll{})
			tc.mockSetup(mockRepo)

			err := service.AddVerifier(context.Background(), tc.caller, tc.verifier)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// Tests CreateAuction validation and id allocation
func TestAuctionService_CreateAuction(t *testing.T) {
	validParams := func() CreateAuctionParams {
		return CreateAuctionParams{
			Seller:         "seller1",
			Name:           "Vintage Textbook",
			Description:    "A rare educational textbook from 1950",
			Condition:      models.ConditionGood,
			InventoryCount: 2,
			ReservePrice:   decimal.NewFromInt(1000),
			StartTime:      baseTime.Add(time.Minute),
			EndTime:        baseTime.Add(time.Hour),
		}
	}

	tests := []struct {
		name          string
		mutate        func(p *CreateAuctionParams)
		mockSetup     func(m *repository.MockAuctionDB)
		expectedError error
	}{
		{
			name:   "valid_auction",
			mutate: func(_ *CreateAuctionParams) {},
			mockSetup: func(m *repository.MockAuctionDB) {
				m.EXPECT().NextAuctionSeq().Return(uint32(0), nil)
				m.EXPECT().SaveAuction(gomock.Any()).Return(nil)
				m.EXPECT().AddToUserSelling(models.Address("seller1"), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "empty_name",
			mutate:        func(p *CreateAuctionParams) { p.Name = "" },
			mockSetup:     func(_ *repository.MockAuctionDB) {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "unknown_condition",
			mutate:        func(p *CreateAuctionParams) { p.Condition = "pristine" },
			mockSetup:     func(_ *repository.MockAuctionDB) {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "zero_inventory",
			mutate:        func(p *CreateAuctionParams) { p.InventoryCount = 0 },
			mockSetup:     func(_ *repository.MockAuctionDB) {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "negative_reserve",
			mutate:        func(p *CreateAuctionParams) { p.ReservePrice = decimal.NewFromInt(-1) },
			mockSetup:     func(_ *repository.MockAuctionDB) {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "end_before_start",
			mutate:        func(p *CreateAuctionParams) { p.EndTime = p.StartTime.Add(-time.Minute) },
			mockSetup:     func(_ *repository.MockAuctionDB) {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "end_equals_start",
			mutate:        func(p *CreateAuctionParams) { p.EndTime = p.StartTime },
			mockSetup:     func(_ *repository.MockAuctionDB) {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			service, mockRepo, _, recorder := newMockedService(t, auth.AllowAll{})
			tc.mockSetup(mockRepo)

			params := validParams()
			tc.mutate(&params)

			id, err := service.CreateAuction(context.Background(), params)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				require.Empty(t, recorder.Events())
				return
			}
			require.NoError(t, err)
			require.Len(t, string(id), 64, "id should be a hex-encoded 32-byte hash")
			require.Equal(t, []string{"auction_created"}, recorder.Topics())
		})
	}
}

// Tests zero reserve is allowed
func TestAuctionService_CreateAuctionZeroReserve(t *testing.T) {
	service, mockRepo, _, _ := newMockedService(t, auth.AllowAll{})
	mockRepo.EXPECT().NextAuctionSeq().Return(uint32(3), nil)
	mockRepo.EXPECT().SaveAuction(gomock.Any()).Return(nil)
	mockRepo.EXPECT().AddToUserSelling(gomock.Any(), gomock.Any()).Return(nil)

	_, err := service.CreateAuction(context.Background(), CreateAuctionParams{
		Seller:         "seller1",
		Name:           "Freebie",
		Condition:      models.ConditionFair,
		InventoryCount: 1,
		ReservePrice:   decimal.Zero,
		StartTime:      baseTime,
		EndTime:        baseTime.Add(time.Hour),
	})
	require.NoError(t, err)
}

// Tests PlaceBid validation against auction state
func TestAuctionService_PlaceBid(t *testing.T) {
	tests := []struct {
		name          string
		bidder        models.Address
		amount        decimal.Decimal
		quantity      uint32
		mockSetup     func(m *repository.MockAuctionDB)
		expectedError error
	}{
		{
			name:     "valid_first_bid",
			bidder:   "bidder1",
			amount:   decimal.NewFromInt(150),
			quantity: 1,
			mockSetup: func(m *repository.MockAuctionDB) {
				m.EXPECT().GetAuction(models.AuctionID("auction1")).Return(activeAuction("seller1"), nil)
				m.EXPECT().SaveAuction(gomock.Any()).Return(nil)
				m.EXPECT().AddToUserBidding(models.Address("bidder1"), models.AuctionID("auction1")).Return(nil)
			},
		},
		{
			name:     "auction_not_found",
			bidder:   "bidder1",
			amount:   decimal.NewFromInt(150),
			quantity: 1,
			mockSetup: func(m *repository.MockAuctionDB) {
				m.EXPECT().GetAuction(models.AuctionID("auction1")).
					Return(models.Auction{}, auctionerrors.ErrAuctionNotFound)
			},
			expectedError: auctionerrors.ErrAuctionNotFound,
		},
		{
			name:     "pending_auction",
			bidder:   "bidder1",
			amount:   decimal.NewFromInt(150),
			quantity: 1,
			mockSetup: func(m *repository.MockAuctionDB) {
				a := activeAuction("seller1")
				a.Status = models.StatusPending
				m.EXPECT().GetAuction(models.AuctionID("auction1")).Return(a, nil)
			},
			expectedError: auctionerrors.ErrInvalidState,
		},
		{
			name:     "before_start_time",
			bidder:   "bidder1",
			amount:   decimal.NewFromInt(150),
			quantity: 1,
			mockSetup: func(m *repository.MockAuctionDB) {
				a := activeAuction("seller1")
				a.StartTime = baseTime.Add(time.Minute)
				m.EXPECT().GetAuction(models.AuctionID("auction1")).Return(a, nil)
			},
			expectedError: auctionerrors.ErrNotStarted,
		},
		{
			name:     "after_end_time",
			bidder:   "bidder1",
			amount:   decimal.NewFromInt(150),
			quantity: 1,
			mockSetup: func(m *repository.MockAuctionDB) {
				a := activeAuction("seller1")
				a.EndTime = baseTime.Add(-time.Minute)
				m.EXPECT().GetAuction(models.AuctionID("auction1")).Return(a, nil)
			},
			expectedError: auctionerrors.ErrExpired,
		},
		{
			name:     "zero_quantity",
			bidder:   "bidder1",
			amount:   decimal.NewFromInt(150),
			quantity: 0,
			mockSetup: func(m *repository.MockAuctionDB) {
				m.EXPECT().GetAuction(models.AuctionID("auction1")).Return(activeAuction("seller1"), nil)
			},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:     "quantity_exceeds_inventory",
			bidder:   "bidder1",
			amount:   decimal.NewFromInt(150),
			quantity: 3,
			mockSetup: func(m *repository.MockAuctionDB) {
				m.EXPECT().GetAuction(models.AuctionID("auction1")).Return(activeAuction("seller1"), nil)
			},
			expectedError: auctionerrors.ErrInsufficientInventory,
		},
		{
			name:     "below_reserve",
			bidder:   "bidder1",
			amount:   decimal.NewFromInt(99),
			quantity: 1,
			mockSetup: func(m *repository.MockAuctionDB) {
				m.EXPECT().GetAuction(models.AuctionID("auction1")).Return(activeAuction("seller1"), nil)
			},
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:     "equal_to_reserve_accepted",
			bidder:   "bidder1",
			amount:   decimal.NewFromInt(100),
			quantity: 1,
			mockSetup: func(m *repository.MockAuctionDB) {
				m.EXPECT().GetAuction(models.AuctionID("auction1")).Return(activeAuction("seller1"), nil)
				m.EXPECT().SaveAuction(gomock.Any()).Return(nil)
				m.EXPECT().AddToUserBidding(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "below_current_highest",
			bidder:   "bidder2",
			amount:   decimal.NewFromInt(120),
			quantity: 1,
			mockSetup: func(m *repository.MockAuctionDB) {
				a := activeAuction("seller1")
				highest := models.Bid{Bidder: "bidder1", Amount: decimal.NewFromInt(150), Quantity: 1}
				a.AllBids = []models.Bid{highest}
				a.CurrentHighestBid = &highest
				m.EXPECT().GetAuction(models.AuctionID("auction1")).Return(a, nil)
			},
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:     "equal_to_current_highest_rejected",
			bidder:   "bidder2",
			amount:   decimal.NewFromInt(150),
			quantity: 1,
			mockSetup: func(m *repository.MockAuctionDB) {
				a := activeAuction("seller1")
				highest := models.Bid{Bidder: "bidder1", Amount: decimal.NewFromInt(150), Quantity: 1}
				a.AllBids = []models.Bid{highest}
				a.CurrentHighestBid = &highest
				m.EXPECT().GetAuction(models.AuctionID("auction1")).Return(a, nil)
			},
			expectedError: auctionerrors.ErrBidTooLow,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			service, mockRepo, _, recorder := newMockedService(t, auth.AllowAll{})
			tc.mockSetup(mockRepo)

			bid, err := service.PlaceBid(context.Background(), "auction1", tc.bidder, tc.amount, tc.quantity)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				require.Empty(t, recorder.Events())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.bidder, bid.Bidder)
			require.True(t, bid.Amount.Equal(tc.amount))
			require.Equal(t, baseTime, bid.Timestamp)
			require.Equal(t, []string{"bid_placed"}, recorder.Topics())
		})
	}
}
