package middleware

import "github.com/gin-gonic/gin"

// contextKey is the key type for values stored in the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey    = contextKey("logger")
	requestIDKey = contextKey("requestID")
)

// GetRequestIDFromContext retrieves the request ID from the Gin context.
// It returns the ID and a boolean indicating if it was found.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(requestIDKey))
	if !exists {
		reqIDVal := c.Request.Context().Value(requestIDKey)
		if reqIDVal != nil {
			if id, ok := reqIDVal.(string); ok {
				return id, true
			}
		}
		return "", false
	}

	requestID, ok := val.(string)
	if !ok {
		return "", false
	}
	return requestID, true
}
