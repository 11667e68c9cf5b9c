package auction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"marketplace-auction/internal/auctionerrors"
	"marketplace-auction/internal/models"
)

// AddShippingInfoParams carries the shipment details the seller records
// once the auction has ended with a winning bid.
type AddShippingInfoParams struct {
	TrackingNumber    string
	Carrier           string
	EstimatedDelivery time.Time
	ShippingCost      decimal.Decimal
	RecipientAddress  string
}

// AddShippingInfo creates the shipment record for an Ended auction with
// a winning bid. Seller only; the record starts in Shipped status.
func (s *AuctionService) AddShippingInfo(ctx context.Context, id models.AuctionID, caller models.Address, params AddShippingInfoParams) error {
	auction, err := s.loadForSeller(ctx, id, caller)
	if err != nil {
		return fmt.Errorf("service: add shipping info: %w", err)
	}
	if auction.Status != models.StatusEnded {
		return fmt.Errorf("service: add shipping info on %s auction %s: %w", auction.Status, id, auctionerrors.ErrInvalidState)
	}
	if auction.CurrentHighestBid == nil {
		return fmt.Errorf("service: add shipping info on auction %s: %w", id, auctionerrors.ErrNoWinningBid)
	}
	if auction.Shipping != nil {
		return fmt.Errorf("service: shipping info already exists for auction %s: %w", id, auctionerrors.ErrInvalidState)
	}
	if params.TrackingNumber == "" || params.Carrier == "" {
		return fmt.Errorf("service: %w - missing tracking number or carrier", auctionerrors.ErrInvalidInput)
	}

	auction.Shipping = &models.ShippingInfo{
		Status:            models.ShippingShipped,
		TrackingNumber:    params.TrackingNumber,
		Carrier:           params.Carrier,
		EstimatedDelivery: params.EstimatedDelivery.UTC(),
		ShippingCost:      params.ShippingCost,
		RecipientAddress:  params.RecipientAddress,
	}
	if err := s.repo.SaveAuction(auction); err != nil {
		return fmt.Errorf("service: add shipping info: %w", err)
	}

	s.events.Publish("product_shipped", map[string]any{
		"auction_id": string(id),
		"tracking":   params.TrackingNumber,
	})
	return nil
}

// UpdateShippingStatus advances the shipment. Transitions are forward
// only. Delivered also completes the auction.
func (s *AuctionService) UpdateShippingStatus(ctx context.Context, id models.AuctionID, caller models.Address, newStatus models.ShippingStatus) error {
	auction, err := s.loadForSeller(ctx, id, caller)
	if err != nil {
		return fmt.Errorf("service: update shipping status: %w", err)
	}
	// Disputed auctions are frozen: only ResolveDispute may complete them.
	if auction.Status == models.StatusCompleted || auction.Status == models.StatusCancelled || auction.Status == models.StatusDisputed {
		return fmt.Errorf("service: update shipping on %s auction %s: %w", auction.Status, id, auctionerrors.ErrInvalidState)
	}
	if auction.Shipping == nil {
		return fmt.Errorf("service: update shipping on auction %s: %w", id, auctionerrors.ErrNoShippingInfo)
	}
	if !newStatus.Valid() {
		return fmt.Errorf("service: %w - unknown shipping status %q", auctionerrors.ErrInvalidInput, newStatus)
	}
	if !auction.Shipping.Status.Before(newStatus) {
		return fmt.Errorf("service: shipping status %s cannot move to %s: %w",
			auction.Shipping.Status, newStatus, auctionerrors.ErrInvalidState)
	}

	auction.Shipping.Status = newStatus
	delivered := newStatus == models.ShippingDelivered
	if delivered {
		auction.Status = models.StatusCompleted
	}
	if err := s.repo.SaveAuction(auction); err != nil {
		return fmt.Errorf("service: update shipping status: %w", err)
	}

	if delivered {
		s.events.Publish("product_delivered", map[string]any{"auction_id": string(id)})
	}
	return nil
}

// Shipping speed classes for the cost estimator.
const (
	SpeedExpress  uint32 = 1
	SpeedStandard uint32 = 2
)

// CalculateShippingCost estimates the shipping cost for an auction from
// the destination (length as a distance proxy), the speed class and a
// bulk discount on multi-item winning bids, capped at 50%.
func (s *AuctionService) CalculateShippingCost(id models.AuctionID, destination string, speed uint32) (decimal.Decimal, error) {
	auction, err := s.repo.GetAuction(id)
	if err != nil {
		return decimal.Zero, fmt.Errorf("service: calculate shipping cost: %w", err)
	}

	cost := int64(500)
	cost += int64(len(destination)) * 10

	switch speed {
	case SpeedExpress:
		cost += 1000
	case SpeedStandard:
		cost += 500
	default:
		cost += 200
	}

	total := decimal.NewFromInt(cost)
	if highest := auction.CurrentHighestBid; highest != nil && highest.Quantity > 1 {
		discount := (highest.Quantity - 1) * 10
		if discount > 50 {
			discount = 50
		}
		factor := decimal.NewFromInt(int64(100 - discount))
		total = total.Mul(factor).Div(decimal.NewFromInt(100))
	}
	return total, nil
}
