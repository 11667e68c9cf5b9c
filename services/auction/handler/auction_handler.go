package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"marketplace-auction/internal/auctionerrors"
	"marketplace-auction/internal/auth"
	svc "marketplace-auction/internal/auctionService"
	model "marketplace-auction/internal/models"
	"marketplace-auction/services/auction/helpers"
	"marketplace-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AuctionServiceInterface interface {
	Initialize(ctx context.Context, admin model.Address) error
	AddVerifier(ctx context.Context, admin, verifier model.Address) error
	AddResolver(ctx context.Context, admin, resolver model.Address) error
	CreateAuction(ctx context.Context, params svc.CreateAuctionParams) (model.AuctionID, error)
	StartAuction(ctx context.Context, id model.AuctionID, caller model.Address) error
	CancelAuction(ctx context.Context, id model.AuctionID, caller model.Address) error
	VerifyProduct(ctx context.Context, verifier model.Address, id model.AuctionID, authentic bool) error
	PlaceBid(ctx context.Context, id model.AuctionID, bidder model.Address, amount decimal.Decimal, quantity uint32) (model.Bid, error)
	EndAuction(ctx context.Context, id model.AuctionID) error
	OpenDispute(ctx context.Context, id model.AuctionID, opener model.Address, reason string) error
	ResolveDispute(ctx context.Context, id model.AuctionID, resolver model.Address, outcome model.DisputeStatus) error
	AddShippingInfo(ctx context.Context, id model.AuctionID, caller model.Address, params svc.AddShippingInfoParams) error
	UpdateShippingStatus(ctx context.Context, id model.AuctionID, caller model.Address, newStatus model.ShippingStatus) error
	CalculateShippingCost(id model.AuctionID, destination string, speed uint32) (decimal.Decimal, error)
	GetAuction(id model.AuctionID) (model.Auction, error)
	GetAuctions(ids []model.AuctionID) []model.Auction
	GetUserSellingAuctions(addr model.Address) ([]model.AuctionID, error)
	GetUserBiddingAuctions(addr model.Address) ([]model.AuctionID, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// caller extracts the authenticated address the auth middleware put on
// the request context, replying 401 when there is none.
func (h *AuctionHandler) caller(c *gin.Context, handlerName string) (model.Address, bool) {
	addr, ok := auth.CallerFromContext(c.Request.Context())
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthorized, "missing or invalid bearer token")
		utils.Warn(handlerName+": unauthenticated request", map[string]any{"path": c.Request.URL.Path})
	}
	return addr, ok
}

func (h *AuctionHandler) serviceError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	fields["error"] = err.Error()
	utils.Error(handlerName+": request failed", fields)
}

// InitializeHandler handles POST /admin/init
func (h *AuctionHandler) InitializeHandler(c *gin.Context) {
	var req helpers.InitializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "InitializeHandler", err)
		return
	}

	if err := h.service.Initialize(c.Request.Context(), model.Address(req.Admin)); err != nil {
		h.serviceError(c, "InitializeHandler", err, map[string]any{"admin": req.Admin})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"admin": req.Admin}, "registry initialized")
	helpers.LogSuccess("InitializeHandler", "registry initialized", map[string]any{"admin": req.Admin})
}

// AddVerifierHandler handles POST /admin/verifiers
func (h *AuctionHandler) AddVerifierHandler(c *gin.Context) {
	caller, ok := h.caller(c, "AddVerifierHandler")
	if !ok {
		return
	}
	var req helpers.AddPrincipalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddVerifierHandler", err)
		return
	}

	if err := h.service.AddVerifier(c.Request.Context(), caller, model.Address(req.Address)); err != nil {
		h.serviceError(c, "AddVerifierHandler", err, map[string]any{"verifier": req.Address})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"verifier": req.Address}, "verifier added")
	helpers.LogSuccess("AddVerifierHandler", "verifier added", map[string]any{"verifier": req.Address})
}

// AddResolverHandler handles POST /admin/resolvers
func (h *AuctionHandler) AddResolverHandler(c *gin.Context) {
	caller, ok := h.caller(c, "AddResolverHandler")
	if !ok {
		return
	}
	var req helpers.AddPrincipalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddResolverHandler", err)
		return
	}

	if err := h.service.AddResolver(c.Request.Context(), caller, model.Address(req.Address)); err != nil {
		h.serviceError(c, "AddResolverHandler", err, map[string]any{"resolver": req.Address})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"resolver": req.Address}, "resolver added")
	helpers.LogSuccess("AddResolverHandler", "resolver added", map[string]any{"resolver": req.Address})
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	caller, ok := h.caller(c, "CreateAuctionHandler")
	if !ok {
		return
	}
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	id, err := h.service.CreateAuction(c.Request.Context(), svc.CreateAuctionParams{
		Seller:         caller,
		Name:           req.Name,
		Description:    req.Description,
		Condition:      model.ProductCondition(req.Condition),
		Images:         req.Images,
		InventoryCount: req.InventoryCount,
		ReservePrice:   req.ReservePrice,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
	})
	if err != nil {
		h.serviceError(c, "CreateAuctionHandler", err, map[string]any{"seller": string(caller)})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.CreateAuctionResponse{AuctionID: string(id)}, "auction created")
	helpers.LogSuccess("CreateAuctionHandler", "auction created", map[string]any{
		"auction_id": string(id),
		"seller":     string(caller),
	})
}

// StartAuctionHandler handles POST /auctions/:auction_id/start
func (h *AuctionHandler) StartAuctionHandler(c *gin.Context) {
	caller, ok := h.caller(c, "StartAuctionHandler")
	if !ok {
		return
	}
	id := model.AuctionID(c.Param("auction_id"))

	if err := h.service.StartAuction(c.Request.Context(), id, caller); err != nil {
		h.serviceError(c, "StartAuctionHandler", err, map[string]any{"auction_id": string(id)})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": string(id)}, "auction started")
	helpers.LogSuccess("StartAuctionHandler", "auction started", map[string]any{"auction_id": string(id)})
}

// CancelAuctionHandler handles POST /auctions/:auction_id/cancel
func (h *AuctionHandler) CancelAuctionHandler(c *gin.Context) {
	caller, ok := h.caller(c, "CancelAuctionHandler")
	if !ok {
		return
	}
	id := model.AuctionID(c.Param("auction_id"))

	if err := h.service.CancelAuction(c.Request.Context(), id, caller); err != nil {
		h.serviceError(c, "CancelAuctionHandler", err, map[string]any{"auction_id": string(id)})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": string(id)}, "auction cancelled")
	helpers.LogSuccess("CancelAuctionHandler", "auction cancelled", map[string]any{"auction_id": string(id)})
}

// VerifyProductHandler handles POST /auctions/:auction_id/verify
func (h *AuctionHandler) VerifyProductHandler(c *gin.Context) {
	caller, ok := h.caller(c, "VerifyProductHandler")
	if !ok {
		return
	}
	id := model.AuctionID(c.Param("auction_id"))
	var req helpers.VerifyProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "VerifyProductHandler", err)
		return
	}

	if err := h.service.VerifyProduct(c.Request.Context(), caller, id, *req.Authentic); err != nil {
		h.serviceError(c, "VerifyProductHandler", err, map[string]any{"auction_id": string(id)})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": string(id), "authentic": *req.Authentic}, "product verified")
	helpers.LogSuccess("VerifyProductHandler", "product verified", map[string]any{
		"auction_id": string(id),
		"verifier":   string(caller),
	})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	caller, ok := h.caller(c, "PlaceBidHandler")
	if !ok {
		return
	}
	id := model.AuctionID(c.Param("auction_id"))
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), id, caller, req.Amount, req.Quantity)
	if err != nil {
		h.serviceError(c, "PlaceBidHandler", err, map[string]any{
			"auction_id": string(id),
			"bidder":     string(caller),
		})
		return
	}

	resp := helpers.BidResponse{
		AuctionID: string(id),
		Bidder:    string(bid.Bidder),
		Amount:    bid.Amount.String(),
		Quantity:  bid.Quantity,
		CreatedAt: bid.Timestamp.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"auction_id": string(id),
		"bidder":     string(bid.Bidder),
		"amount":     bid.Amount.String(),
	})
}

// EndAuctionHandler handles POST /auctions/:auction_id/end
func (h *AuctionHandler) EndAuctionHandler(c *gin.Context) {
	id := model.AuctionID(c.Param("auction_id"))

	if err := h.service.EndAuction(c.Request.Context(), id); err != nil {
		h.serviceError(c, "EndAuctionHandler", err, map[string]any{"auction_id": string(id)})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": string(id)}, "auction ended")
	helpers.LogSuccess("EndAuctionHandler", "auction ended", map[string]any{"auction_id": string(id)})
}

// OpenDisputeHandler handles POST /auctions/:auction_id/dispute
func (h *AuctionHandler) OpenDisputeHandler(c *gin.Context) {
	caller, ok := h.caller(c, "OpenDisputeHandler")
	if !ok {
		return
	}
	id := model.AuctionID(c.Param("auction_id"))
	var req helpers.OpenDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "OpenDisputeHandler", err)
		return
	}

	if err := h.service.OpenDispute(c.Request.Context(), id, caller, req.Reason); err != nil {
		h.serviceError(c, "OpenDisputeHandler", err, map[string]any{"auction_id": string(id)})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"auction_id": string(id)}, "dispute opened")
	helpers.LogSuccess("OpenDisputeHandler", "dispute opened", map[string]any{
		"auction_id": string(id),
		"opener":     string(caller),
	})
}

// ResolveDisputeHandler handles POST /auctions/:auction_id/dispute/resolve
func (h *AuctionHandler) ResolveDisputeHandler(c *gin.Context) {
	caller, ok := h.caller(c, "ResolveDisputeHandler")
	if !ok {
		return
	}
	id := model.AuctionID(c.Param("auction_id"))
	var req helpers.ResolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ResolveDisputeHandler", err)
		return
	}

	outcome := model.DisputeStatus(req.Outcome)
	if err := h.service.ResolveDispute(c.Request.Context(), id, caller, outcome); err != nil {
		h.serviceError(c, "ResolveDisputeHandler", err, map[string]any{"auction_id": string(id)})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": string(id), "outcome": req.Outcome}, "dispute resolved")
	helpers.LogSuccess("ResolveDisputeHandler", "dispute resolved", map[string]any{
		"auction_id": string(id),
		"resolver":   string(caller),
		"outcome":    req.Outcome,
	})
}

// AddShippingInfoHandler handles POST /auctions/:auction_id/shipping
func (h *AuctionHandler) AddShippingInfoHandler(c *gin.Context) {
	caller, ok := h.caller(c, "AddShippingInfoHandler")
	if !ok {
		return
	}
	id := model.AuctionID(c.Param("auction_id"))
	var req helpers.AddShippingInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddShippingInfoHandler", err)
		return
	}

	err := h.service.AddShippingInfo(c.Request.Context(), id, caller, svc.AddShippingInfoParams{
		TrackingNumber:    req.TrackingNumber,
		Carrier:           req.Carrier,
		EstimatedDelivery: req.EstimatedDelivery,
		ShippingCost:      req.ShippingCost,
		RecipientAddress:  req.RecipientAddress,
	})
	if err != nil {
		h.serviceError(c, "AddShippingInfoHandler", err, map[string]any{"auction_id": string(id)})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"auction_id": string(id), "tracking_number": req.TrackingNumber}, "shipping info added")
	helpers.LogSuccess("AddShippingInfoHandler", "shipping info added", map[string]any{
		"auction_id": string(id),
		"tracking":   req.TrackingNumber,
	})
}

// UpdateShippingStatusHandler handles PATCH /auctions/:auction_id/shipping/status
func (h *AuctionHandler) UpdateShippingStatusHandler(c *gin.Context) {
	caller, ok := h.caller(c, "UpdateShippingStatusHandler")
	if !ok {
		return
	}
	id := model.AuctionID(c.Param("auction_id"))
	var req helpers.UpdateShippingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateShippingStatusHandler", err)
		return
	}

	newStatus := model.ShippingStatus(req.Status)
	if err := h.service.UpdateShippingStatus(c.Request.Context(), id, caller, newStatus); err != nil {
		h.serviceError(c, "UpdateShippingStatusHandler", err, map[string]any{"auction_id": string(id)})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": string(id), "status": req.Status}, "shipping status updated")
	helpers.LogSuccess("UpdateShippingStatusHandler", "shipping status updated", map[string]any{
		"auction_id": string(id),
		"status":     req.Status,
	})
}

// ShippingCostHandler handles GET /auctions/:auction_id/shipping/cost
func (h *AuctionHandler) ShippingCostHandler(c *gin.Context) {
	id := model.AuctionID(c.Param("auction_id"))
	destination := c.Query("destination")
	speed, err := strconv.ParseUint(c.DefaultQuery("speed", "2"), 10, 32)
	if err != nil {
		helpers.HandleBindError(c, "ShippingCostHandler", err)
		return
	}

	cost, err := h.service.CalculateShippingCost(id, destination, uint32(speed))
	if err != nil {
		h.serviceError(c, "ShippingCostHandler", err, map[string]any{"auction_id": string(id)})
		return
	}

	resp := helpers.ShippingCostResponse{AuctionID: string(id), Cost: cost.String()}
	utils.JSONResponse(c, http.StatusOK, resp, "shipping cost calculated")
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	id := model.AuctionID(c.Param("auction_id"))

	auction, err := h.service.GetAuction(id)
	if err != nil {
		h.serviceError(c, "GetAuctionHandler", err, map[string]any{"auction_id": string(id)})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
}

// GetAuctionsHandler handles GET /auctions?ids=id1,id2
func (h *AuctionHandler) GetAuctionsHandler(c *gin.Context) {
	var ids []model.AuctionID
	if raw := c.Query("ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			ids = append(ids, model.AuctionID(part))
		}
	}

	auctions := h.service.GetAuctions(ids)
	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// GetUserSellingHandler handles GET /users/:user_id/selling
func (h *AuctionHandler) GetUserSellingHandler(c *gin.Context) {
	user := c.Param("user_id")

	ids, err := h.service.GetUserSellingAuctions(model.Address(user))
	if err != nil {
		h.serviceError(c, "GetUserSellingHandler", err, map[string]any{"user_id": user})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.UserAuctionsResponse{User: user, AuctionIDs: toStrings(ids)}, "selling auctions retrieved")
}

// GetUserBiddingHandler handles GET /users/:user_id/bidding
func (h *AuctionHandler) GetUserBiddingHandler(c *gin.Context) {
	user := c.Param("user_id")

	ids, err := h.service.GetUserBiddingAuctions(model.Address(user))
	if err != nil {
		h.serviceError(c, "GetUserBiddingHandler", err, map[string]any{"user_id": user})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.UserAuctionsResponse{User: user, AuctionIDs: toStrings(ids)}, "bidding auctions retrieved")
}

func toStrings(ids []model.AuctionID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}
	return out
}
