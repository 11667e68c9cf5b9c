package auction

import (
	"context"
	"fmt"

	"marketplace-auction/internal/auctionerrors"
	"marketplace-auction/internal/models"
)

// EndAuction transitions an Active auction to Ended. Callable by anyone
// once the end time has passed; no further bids are accepted afterwards.
func (s *AuctionService) EndAuction(ctx context.Context, id models.AuctionID) error {
	auction, err := s.repo.GetAuction(id)
	if err != nil {
		return fmt.Errorf("service: end auction: %w", err)
	}
	if auction.Status != models.StatusActive {
		return fmt.Errorf("service: end auction %s in status %s: %w", id, auction.Status, auctionerrors.ErrInvalidState)
	}
	if !s.clock.Now().After(auction.EndTime) {
		return fmt.Errorf("service: end auction %s before its end time: %w", id, auctionerrors.ErrInvalidState)
	}

	auction.Status = models.StatusEnded
	if err := s.repo.SaveAuction(auction); err != nil {
		return fmt.Errorf("service: end auction: %w", err)
	}

	s.events.Publish("auction_ended", map[string]any{"auction_id": string(id)})
	return nil
}

// OpenDispute opens the dispute sub-protocol on an Ended auction. Only
// the buyer (current highest bidder) or the seller may open one, and
// only one dispute exists per auction.
func (s *AuctionService) OpenDispute(ctx context.Context, id models.AuctionID, opener models.Address, reason string) error {
	if err := s.auth.RequireAuth(ctx, opener); err != nil {
		return fmt.Errorf("service: open dispute: %w", err)
	}

	auction, err := s.repo.GetAuction(id)
	if err != nil {
		return fmt.Errorf("service: open dispute: %w", err)
	}
	if auction.Status != models.StatusEnded {
		return fmt.Errorf("service: open dispute on %s auction %s: %w", auction.Status, id, auctionerrors.ErrInvalidState)
	}
	if auction.Dispute.Status != models.DisputeNone {
		return fmt.Errorf("service: dispute already opened on auction %s: %w", id, auctionerrors.ErrInvalidState)
	}

	isBuyer := auction.CurrentHighestBid != nil && auction.CurrentHighestBid.Bidder == opener
	if !isBuyer && opener != auction.Product.Seller {
		return fmt.Errorf("service: %s is neither buyer nor seller of auction %s: %w", opener, id, auctionerrors.ErrUnauthorized)
	}

	auction.Dispute.Status = models.DisputeOpen
	auction.Dispute.Reason = reason
	auction.Status = models.StatusDisputed
	if err := s.repo.SaveAuction(auction); err != nil {
		return fmt.Errorf("service: open dispute: %w", err)
	}

	s.events.Publish("dispute_opened", map[string]any{
		"auction_id": string(id),
		"opener":     string(opener),
		"reason":     reason,
	})
	return nil
}

// ResolveDispute settles an open dispute and completes the auction. The
// caller must be in the resolver set or be the admin; the outcome must
// name a winner. Resolving an already-resolved dispute fails.
func (s *AuctionService) ResolveDispute(ctx context.Context, id models.AuctionID, resolver models.Address, outcome models.DisputeStatus) error {
	if err := s.auth.RequireAuth(ctx, resolver); err != nil {
		return fmt.Errorf("service: resolve dispute: %w", err)
	}
	admin, err := s.repo.Admin()
	if err != nil {
		return fmt.Errorf("service: resolve dispute: %w", err)
	}
	if resolver != admin && !s.repo.IsResolver(resolver) {
		return fmt.Errorf("service: %s is not a resolver: %w", resolver, auctionerrors.ErrUnauthorized)
	}

	if outcome != models.DisputeResolvedForBuyer && outcome != models.DisputeResolvedForSeller {
		return fmt.Errorf("service: %w - outcome must name a winner, got %q", auctionerrors.ErrInvalidInput, outcome)
	}

	auction, err := s.repo.GetAuction(id)
	if err != nil {
		return fmt.Errorf("service: resolve dispute: %w", err)
	}
	if auction.Status != models.StatusDisputed || auction.Dispute.Status != models.DisputeOpen {
		return fmt.Errorf("service: auction %s has no open dispute: %w", id, auctionerrors.ErrNoOpenDispute)
	}

	now := s.clock.Now().UTC()
	auction.Dispute.Status = outcome
	auction.Dispute.Resolver = &resolver
	auction.Dispute.ResolvedAt = &now
	auction.Status = models.StatusCompleted
	if err := s.repo.SaveAuction(auction); err != nil {
		return fmt.Errorf("service: resolve dispute: %w", err)
	}

	s.events.Publish("dispute_resolved", map[string]any{
		"auction_id": string(id),
		"resolver":   string(resolver),
		"outcome":    string(outcome),
	})
	return nil
}
