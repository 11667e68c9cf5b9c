package helpers

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type InitializeRequest struct {
	Admin string `json:"admin" binding:"required"`
}

type AddPrincipalRequest struct {
	Address string `json:"address" binding:"required"`
}

type CreateAuctionRequest struct {
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	Condition      string          `json:"condition" binding:"required"`
	Images         []string        `json:"images"`
	InventoryCount uint32          `json:"inventory_count" binding:"required,gt=0"`
	ReservePrice   decimal.Decimal `json:"reserve_price"`
	StartTime      time.Time       `json:"start_time" binding:"required"`
	EndTime        time.Time       `json:"end_time" binding:"required"`
}

type CreateAuctionResponse struct {
	AuctionID string `json:"auction_id"`
}

type PlaceBidRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Quantity uint32          `json:"quantity" binding:"required,gt=0"`
}

type BidResponse struct {
	AuctionID string `json:"auction_id"`
	Bidder    string `json:"bidder"`
	Amount    string `json:"amount"`
	Quantity  uint32 `json:"quantity"`
	CreatedAt string `json:"created_at"`
}

type VerifyProductRequest struct {
	Authentic *bool `json:"authentic" binding:"required"`
}

type OpenDisputeRequest struct {
	Reason string `json:"reason"`
}

type ResolveDisputeRequest struct {
	Outcome string `json:"outcome" binding:"required"`
}

type AddShippingInfoRequest struct {
	TrackingNumber    string          `json:"tracking_number" binding:"required"`
	Carrier           string          `json:"carrier" binding:"required"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
	ShippingCost      decimal.Decimal `json:"shipping_cost"`
	RecipientAddress  string          `json:"recipient_address"`
}

type UpdateShippingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ShippingCostResponse struct {
	AuctionID string `json:"auction_id"`
	Cost      string `json:"cost"`
}

type UserAuctionsResponse struct {
	User       string   `json:"user"`
	AuctionIDs []string `json:"auction_ids"`
}
