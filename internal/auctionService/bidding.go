package auction

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"marketplace-auction/internal/auctionerrors"
	"marketplace-auction/internal/models"
)

// PlaceBid validates and records a bid against the auction's current
// state. A successful bid is appended to the bid list, becomes the
// current highest bid and registers the auction in the bidder's bidding
// index. Ties are always rejected: a new bid must strictly exceed the
// current highest.
func (s *AuctionService) PlaceBid(ctx context.Context, id models.AuctionID, bidder models.Address, amount decimal.Decimal, quantity uint32) (models.Bid, error) {
	if err := s.auth.RequireAuth(ctx, bidder); err != nil {
		return models.Bid{}, fmt.Errorf("service: place bid: %w", err)
	}

	auction, err := s.repo.GetAuction(id)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: place bid: %w", err)
	}

	if auction.Status != models.StatusActive {
		return models.Bid{}, fmt.Errorf("service: place bid on %s auction %s: %w", auction.Status, id, auctionerrors.ErrInvalidState)
	}

	now := s.clock.Now().UTC()
	if now.Before(auction.StartTime) {
		return models.Bid{}, fmt.Errorf("service: place bid on auction %s: %w", id, auctionerrors.ErrNotStarted)
	}
	if now.After(auction.EndTime) {
		return models.Bid{}, fmt.Errorf("service: place bid on auction %s: %w", id, auctionerrors.ErrExpired)
	}

	if quantity == 0 {
		return models.Bid{}, fmt.Errorf("service: %w - zero quantity", auctionerrors.ErrInvalidInput)
	}
	if quantity > auction.Product.InventoryCount {
		return models.Bid{}, fmt.Errorf("service: quantity %d exceeds inventory %d: %w",
			quantity, auction.Product.InventoryCount, auctionerrors.ErrInsufficientInventory)
	}

	if highest := auction.CurrentHighestBid; highest != nil {
		if !amount.GreaterThan(highest.Amount) {
			return models.Bid{}, fmt.Errorf("service: %w - current highest bid is %s",
				auctionerrors.ErrBidTooLow, highest.Amount)
		}
	} else if amount.LessThan(auction.ReservePrice) {
		return models.Bid{}, fmt.Errorf("service: %w - reserve price is %s",
			auctionerrors.ErrBidTooLow, auction.ReservePrice)
	}

	bid := models.Bid{
		Bidder:    bidder,
		Amount:    amount,
		Timestamp: now,
		Quantity:  quantity,
	}

	auction.AllBids = append(auction.AllBids, bid)
	auction.CurrentHighestBid = &bid

	if err := s.repo.SaveAuction(auction); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on auction %s by %s: %w", id, bidder, err)
	}
	if err := s.repo.AddToUserBidding(bidder, id); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to index auction %s for bidder: %w", id, err)
	}

	s.events.Publish("bid_placed", map[string]any{
		"auction_id": string(id),
		"bidder":     string(bidder),
		"amount":     amount.String(),
		"quantity":   quantity,
	})
	return bid, nil
}
