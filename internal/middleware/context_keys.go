package middleware

import "github.com/gin-gonic/gin"

// requestIDKey is the key used to store the request ID in the Gin context.
const requestIDKey = contextKey("requestID")

// clientIDHeader lets a front end identify itself across requests for analytics.
const clientIDHeader = "X-Client-ID"

// GetRequestIDFromContext returns the ID assigned by StructuredLoggingMiddleware.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(requestIDKey))
	if !exists {
		return "", false
	}
	id, ok := val.(string)
	return id, ok
}

// GetClientIDFromContext identifies the caller: the X-Client-ID header when sent, else the client IP.
// There are no user accounts, so this is the only distinct id available.
func GetClientIDFromContext(c *gin.Context) string {
	if id := c.GetHeader(clientIDHeader); id != "" {
		return id
	}
	return c.ClientIP()
}
