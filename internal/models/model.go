package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Address identifies a participant (seller, bidder, admin, verifier, resolver).
type Address string

// AuctionID is the hex encoding of a 32-byte auction identifier.
type AuctionID string

// ProductCondition rates the physical state of a listed product.
type ProductCondition string

const (
	ConditionNew     ProductCondition = "new"
	ConditionLikeNew ProductCondition = "like_new"
	ConditionGood    ProductCondition = "good"
	ConditionFair    ProductCondition = "fair"
	ConditionPoor    ProductCondition = "poor"
)

// Valid reports whether c is a known condition rating.
func (c ProductCondition) Valid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

// AuctionStatus is the lifecycle state of an auction.
type AuctionStatus string

const (
	StatusPending   AuctionStatus = "pending"
	StatusActive    AuctionStatus = "active"
	StatusEnded     AuctionStatus = "ended"
	StatusCancelled AuctionStatus = "cancelled"
	StatusCompleted AuctionStatus = "completed"
	StatusDisputed  AuctionStatus = "disputed"
)

// DisputeStatus tracks the dispute sub-protocol of an auction.
type DisputeStatus string

const (
	DisputeNone              DisputeStatus = "none"
	DisputeOpen              DisputeStatus = "open"
	DisputeResolvedForBuyer  DisputeStatus = "resolved_for_buyer"
	DisputeResolvedForSeller DisputeStatus = "resolved_for_seller"
)

// ShippingStatus tracks post-sale fulfillment.
type ShippingStatus string

const (
	ShippingNotShipped ShippingStatus = "not_shipped"
	ShippingShipped    ShippingStatus = "shipped"
	ShippingInTransit  ShippingStatus = "in_transit"
	ShippingDelivered  ShippingStatus = "delivered"
)

// rank orders shipping statuses for the forward-only transition check.
func (s ShippingStatus) rank() int {
	switch s {
	case ShippingNotShipped:
		return 0
	case ShippingShipped:
		return 1
	case ShippingInTransit:
		return 2
	case ShippingDelivered:
		return 3
	}
	return -1
}

// Valid reports whether s is a known shipping status.
func (s ShippingStatus) Valid() bool { return s.rank() >= 0 }

// Before reports whether s comes strictly earlier than o in the shipping flow.
func (s ShippingStatus) Before(o ShippingStatus) bool { return s.rank() < o.rank() }

// Product describes the item being sold in an auction.
type Product struct {
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Condition      ProductCondition `json:"condition"`
	Images         []string         `json:"images,omitempty"`
	Seller         Address          `json:"seller"`
	InventoryCount uint32           `json:"inventory_count"`
	Verified       bool             `json:"verified"`
	VerifiedAt     *time.Time       `json:"verified_at,omitempty"`
}

// Bid is a single offer on an auction. Bids are immutable once appended
// and are never removed.
type Bid struct {
	Bidder    Address         `json:"bidder"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
	Quantity  uint32          `json:"quantity"`
}

// Dispute is embedded in the auction record, not a separate entity.
type Dispute struct {
	Status     DisputeStatus `json:"status"`
	Reason     string        `json:"reason,omitempty"`
	Resolver   *Address      `json:"resolver,omitempty"`
	ResolvedAt *time.Time    `json:"resolved_at,omitempty"`
}

// ShippingInfo is created once per auction and mutated by status
// transitions only.
type ShippingInfo struct {
	Status            ShippingStatus  `json:"status"`
	TrackingNumber    string          `json:"tracking_number"`
	Carrier           string          `json:"carrier"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
	ShippingCost      decimal.Decimal `json:"shipping_cost"`
	RecipientAddress  string          `json:"recipient_address"`
}

// Auction is the central record tracking one item's sale lifecycle.
type Auction struct {
	ID                AuctionID       `json:"id"`
	Product           Product         `json:"product"`
	Status            AuctionStatus   `json:"status"`
	StartTime         time.Time       `json:"start_time"`
	EndTime           time.Time       `json:"end_time"`
	ReservePrice      decimal.Decimal `json:"reserve_price"`
	CurrentHighestBid *Bid            `json:"current_highest_bid,omitempty"`
	AllBids           []Bid           `json:"all_bids"`
	Dispute           Dispute         `json:"dispute"`
	Shipping          *ShippingInfo   `json:"shipping,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// HasBids reports whether any bid has been accepted.
func (a *Auction) HasBids() bool { return len(a.AllBids) > 0 }
