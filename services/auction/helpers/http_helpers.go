package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"marketplace-auction/internal/auctionerrors"
	"marketplace-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrUnauthorized):
		return http.StatusForbidden, "caller not authorized"
	case errors.Is(err, auctionerrors.ErrAlreadyInitialized):
		return http.StatusConflict, "registry already initialized"
	case errors.Is(err, auctionerrors.ErrNotInitialized):
		return http.StatusConflict, "registry not initialized"
	case errors.Is(err, auctionerrors.ErrNotStarted):
		return http.StatusConflict, "auction has not started"
	case errors.Is(err, auctionerrors.ErrExpired):
		return http.StatusConflict, "auction bidding window has closed"
	case errors.Is(err, auctionerrors.ErrInsufficientInventory):
		return http.StatusConflict, "requested quantity exceeds inventory"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrNoWinningBid):
		return http.StatusConflict, "no winning bid for auction"
	case errors.Is(err, auctionerrors.ErrNoOpenDispute):
		return http.StatusConflict, "no open dispute for auction"
	case errors.Is(err, auctionerrors.ErrNoShippingInfo):
		return http.StatusConflict, "no shipping information for auction"
	case errors.Is(err, auctionerrors.ErrInvalidState):
		return http.StatusConflict, "action not allowed in current auction state"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
