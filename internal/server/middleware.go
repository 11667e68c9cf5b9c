package server

import (
	"net/http"
	"strings"
	"time"

	"marketplace-auction/internal/auctionerrors"
	"marketplace-auction/internal/auth"
	"marketplace-auction/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing and a
// per-request id.
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()
	requestID := utils.GenerateRequestID()
	c.Set("request_id", requestID)

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	})
}

// CallerAuthMiddleware verifies the bearer token and places the proven
// caller address on the request context. Requests without a valid token
// are rejected before reaching any mutating handler.
func CallerAuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		addr, err := tokens.Verify(tokenStr)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err, "invalid bearer token")
			c.Abort()
			return
		}

		ctx := auth.WithCaller(c.Request.Context(), addr)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
