package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response, echoing the request id
// established by the logging middleware so clients can correlate logs.
func JSONResponse(c *gin.Context, status int, data any, message string) {
	body := gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	}
	if id := c.GetString("request_id"); id != "" {
		body["request_id"] = id
	}
	c.JSON(status, body)
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	body := gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	}
	if id := c.GetString("request_id"); id != "" {
		body["request_id"] = id
	}
	c.JSON(status, body)
}
