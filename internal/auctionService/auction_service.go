package auction

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"

	"marketplace-auction/internal/auctionerrors"
	"marketplace-auction/internal/auth"
	"marketplace-auction/internal/events"
	"marketplace-auction/internal/models"
	"marketplace-auction/internal/repository"
)

// AuctionService drives the full sale lifecycle: listing, bidding,
// closing, disputes and shipment tracking. Every mutating operation
// follows the same discipline: load the record, validate caller and
// state completely, mutate an in-memory copy, write it back once, then
// emit the domain event.
type AuctionService struct {
	repo   repository.AuctionDB
	auth   auth.Authorizer
	clock  clockwork.Clock
	events events.Publisher
}

// NewAuctionService creates a new AuctionService instance.
func NewAuctionService(repo repository.AuctionDB, authorizer auth.Authorizer, clock clockwork.Clock, publisher events.Publisher) *AuctionService {
	return &AuctionService{
		repo:   repo,
		auth:   authorizer,
		clock:  clock,
		events: publisher,
	}
}

// Initialize establishes the admin and empty permission sets. Exactly-once:
// a second call fails with ErrAlreadyInitialized.
func (s *AuctionService) Initialize(ctx context.Context, admin models.Address) error {
	if admin == "" {
		return fmt.Errorf("service: %w - empty admin address", auctionerrors.ErrInvalidInput)
	}
	if err := s.auth.RequireAuth(ctx, admin); err != nil {
		return fmt.Errorf("service: initialize: %w", err)
	}
	if err := s.repo.SetupRegistry(admin); err != nil {
		return fmt.Errorf("service: initialize: %w", err)
	}
	return nil
}

// AddVerifier adds an address to the verifier set. Admin only.
func (s *AuctionService) AddVerifier(ctx context.Context, admin, verifier models.Address) error {
	if err := s.requireAdmin(ctx, admin); err != nil {
		return fmt.Errorf("service: add verifier: %w", err)
	}
	if verifier == "" {
		return fmt.Errorf("service: %w - empty verifier address", auctionerrors.ErrInvalidInput)
	}
	if err := s.repo.AddVerifier(verifier); err != nil {
		return fmt.Errorf("service: add verifier: %w", err)
	}
	return nil
}

// AddResolver adds an address to the resolver set. Admin only.
func (s *AuctionService) AddResolver(ctx context.Context, admin, resolver models.Address) error {
	if err := s.requireAdmin(ctx, admin); err != nil {
		return fmt.Errorf("service: add resolver: %w", err)
	}
	if resolver == "" {
		return fmt.Errorf("service: %w - empty resolver address", auctionerrors.ErrInvalidInput)
	}
	if err := s.repo.AddResolver(resolver); err != nil {
		return fmt.Errorf("service: add resolver: %w", err)
	}
	return nil
}

// requireAdmin checks caller authorization and that the caller is the
// stored admin.
func (s *AuctionService) requireAdmin(ctx context.Context, caller models.Address) error {
	if err := s.auth.RequireAuth(ctx, caller); err != nil {
		return err
	}
	stored, err := s.repo.Admin()
	if err != nil {
		return err
	}
	if caller != stored {
		return fmt.Errorf("caller %s is not the admin: %w", caller, auctionerrors.ErrUnauthorized)
	}
	return nil
}

// CreateAuctionParams carries the listing details for a new auction.
type CreateAuctionParams struct {
	Seller         models.Address
	Name           string
	Description    string
	Condition      models.ProductCondition
	Images         []string
	InventoryCount uint32
	ReservePrice   decimal.Decimal
	StartTime      time.Time
	EndTime        time.Time
}

// CreateAuction validates and stores a new Pending auction, registering
// it in the seller's selling index, and returns the allocated id.
func (s *AuctionService) CreateAuction(ctx context.Context, params CreateAuctionParams) (models.AuctionID, error) {
	if err := s.auth.RequireAuth(ctx, params.Seller); err != nil {
		return "", fmt.Errorf("service: create auction: %w", err)
	}
	if err := validateCreateParams(params); err != nil {
		return "", err
	}

	seq, err := s.repo.NextAuctionSeq()
	if err != nil {
		return "", fmt.Errorf("service: create auction: %w", err)
	}

	now := s.clock.Now().UTC()
	id := newAuctionID(seq, params.Seller, now)

	auction := models.Auction{
		ID: id,
		Product: models.Product{
			Name:           params.Name,
			Description:    params.Description,
			Condition:      params.Condition,
			Images:         params.Images,
			Seller:         params.Seller,
			InventoryCount: params.InventoryCount,
		},
		Status:       models.StatusPending,
		StartTime:    params.StartTime.UTC(),
		EndTime:      params.EndTime.UTC(),
		ReservePrice: params.ReservePrice,
		AllBids:      []models.Bid{},
		Dispute:      models.Dispute{Status: models.DisputeNone},
		CreatedAt:    now,
	}

	if err := s.repo.SaveAuction(auction); err != nil {
		return "", fmt.Errorf("service: failed to save auction %s: %w", id, err)
	}
	if err := s.repo.AddToUserSelling(params.Seller, id); err != nil {
		return "", fmt.Errorf("service: failed to index auction %s for seller: %w", id, err)
	}

	s.events.Publish("auction_created", map[string]any{
		"auction_id": string(id),
		"seller":     string(params.Seller),
	})
	return id, nil
}

func validateCreateParams(params CreateAuctionParams) error {
	if params.Name == "" {
		return fmt.Errorf("service: %w - empty product name", auctionerrors.ErrInvalidInput)
	}
	if !params.Condition.Valid() {
		return fmt.Errorf("service: %w - unknown product condition %q", auctionerrors.ErrInvalidInput, params.Condition)
	}
	if params.InventoryCount == 0 {
		return fmt.Errorf("service: %w - inventory count must be greater than 0", auctionerrors.ErrInvalidInput)
	}
	if params.ReservePrice.IsNegative() {
		return fmt.Errorf("service: %w - negative reserve price", auctionerrors.ErrInvalidInput)
	}
	if !params.EndTime.After(params.StartTime) {
		return fmt.Errorf("service: %w - end time must be after start time", auctionerrors.ErrInvalidInput)
	}
	return nil
}

// newAuctionID derives a 32-byte id from the counter, the seller and the
// ledger timestamp, hex-encoded.
func newAuctionID(seq uint32, seller models.Address, now time.Time) models.AuctionID {
	seed := fmt.Sprintf("%d|%s|%d", seq, seller, now.UnixNano())
	sum := sha256.Sum256([]byte(seed))
	return models.AuctionID(hex.EncodeToString(sum[:]))
}

// StartAuction transitions a Pending auction to Active. Seller only;
// the start time must have been reached.
func (s *AuctionService) StartAuction(ctx context.Context, id models.AuctionID, caller models.Address) error {
	auction, err := s.loadForSeller(ctx, id, caller)
	if err != nil {
		return fmt.Errorf("service: start auction: %w", err)
	}
	if auction.Status != models.StatusPending {
		return fmt.Errorf("service: start auction %s in status %s: %w", id, auction.Status, auctionerrors.ErrInvalidState)
	}
	if s.clock.Now().Before(auction.StartTime) {
		return fmt.Errorf("service: start auction %s before its start time: %w", id, auctionerrors.ErrNotStarted)
	}

	auction.Status = models.StatusActive
	if err := s.repo.SaveAuction(auction); err != nil {
		return fmt.Errorf("service: start auction: %w", err)
	}

	s.events.Publish("auction_started", map[string]any{"auction_id": string(id)})
	return nil
}

// CancelAuction cancels a listing. A Pending auction can always be
// cancelled by its seller; an Active auction only while it has no bids.
func (s *AuctionService) CancelAuction(ctx context.Context, id models.AuctionID, caller models.Address) error {
	auction, err := s.loadForSeller(ctx, id, caller)
	if err != nil {
		return fmt.Errorf("service: cancel auction: %w", err)
	}
	switch auction.Status {
	case models.StatusPending:
	case models.StatusActive:
		if auction.HasBids() {
			return fmt.Errorf("service: cancel auction %s with existing bids: %w", id, auctionerrors.ErrInvalidState)
		}
	default:
		return fmt.Errorf("service: cancel auction %s in status %s: %w", id, auction.Status, auctionerrors.ErrInvalidState)
	}

	auction.Status = models.StatusCancelled
	if err := s.repo.SaveAuction(auction); err != nil {
		return fmt.Errorf("service: cancel auction: %w", err)
	}

	s.events.Publish("auction_cancelled", map[string]any{"auction_id": string(id)})
	return nil
}

// VerifyProduct marks a listing's product verified (or not). Callable
// only by an address in the verifier set; does not change auction status.
// Terminal listings (Cancelled, Completed) cannot be verified.
func (s *AuctionService) VerifyProduct(ctx context.Context, verifier models.Address, id models.AuctionID, authentic bool) error {
	if err := s.auth.RequireAuth(ctx, verifier); err != nil {
		return fmt.Errorf("service: verify product: %w", err)
	}
	if !s.repo.IsVerifier(verifier) {
		return fmt.Errorf("service: %s is not a verifier: %w", verifier, auctionerrors.ErrUnauthorized)
	}

	auction, err := s.repo.GetAuction(id)
	if err != nil {
		return fmt.Errorf("service: verify product: %w", err)
	}
	if auction.Status == models.StatusCancelled || auction.Status == models.StatusCompleted {
		return fmt.Errorf("service: verify product on %s auction %s: %w", auction.Status, id, auctionerrors.ErrInvalidState)
	}

	now := s.clock.Now().UTC()
	auction.Product.Verified = authentic
	auction.Product.VerifiedAt = &now
	if err := s.repo.SaveAuction(auction); err != nil {
		return fmt.Errorf("service: verify product: %w", err)
	}

	s.events.Publish("product_verified", map[string]any{
		"auction_id": string(id),
		"verifier":   string(verifier),
		"authentic":  authentic,
	})
	return nil
}

// loadForSeller authorizes caller, loads the auction and checks the
// caller is its seller.
func (s *AuctionService) loadForSeller(ctx context.Context, id models.AuctionID, caller models.Address) (models.Auction, error) {
	if err := s.auth.RequireAuth(ctx, caller); err != nil {
		return models.Auction{}, err
	}
	auction, err := s.repo.GetAuction(id)
	if err != nil {
		return models.Auction{}, err
	}
	if auction.Product.Seller != caller {
		return models.Auction{}, fmt.Errorf("caller %s is not the seller: %w", caller, auctionerrors.ErrUnauthorized)
	}
	return auction, nil
}
