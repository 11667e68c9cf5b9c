package auction

import (
	"fmt"

	"marketplace-auction/internal/auctionerrors"
	"marketplace-auction/internal/models"
)

// GetAuction returns one auction record.
func (s *AuctionService) GetAuction(id models.AuctionID) (models.Auction, error) {
	if id == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}
	auction, err := s.repo.GetAuction(id)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", id, err)
	}
	return auction, nil
}

// GetAuctions returns the records for ids; absent ids are skipped.
func (s *AuctionService) GetAuctions(ids []models.AuctionID) []models.Auction {
	return s.repo.GetAuctions(ids)
}

// GetUserSellingAuctions returns the auction ids addr is selling.
func (s *AuctionService) GetUserSellingAuctions(addr models.Address) ([]models.AuctionID, error) {
	if addr == "" {
		return nil, fmt.Errorf("service: %w - empty user address", auctionerrors.ErrInvalidInput)
	}
	return s.repo.UserSelling(addr), nil
}

// GetUserBiddingAuctions returns the auction ids addr has bid on.
func (s *AuctionService) GetUserBiddingAuctions(addr models.Address) ([]models.AuctionID, error) {
	if addr == "" {
		return nil, fmt.Errorf("service: %w - empty user address", auctionerrors.ErrInvalidInput)
	}
	return s.repo.UserBidding(addr), nil
}
