package middleware

import "github.com/gin-gonic/gin"

// ownerKey is the key used to store the authenticated subject in the contexts.
const ownerKey = contextKey("owner")

// LocalOwner is the subject used when the API runs without authentication.
const LocalOwner = "local"

// GetOwnerFromContext retrieves the authenticated subject from the Gin context.
// It returns the subject and a boolean indicating if it was found.
func GetOwnerFromContext(c *gin.Context) (string, bool) {
	ownerVal, exists := c.Get(string(ownerKey))
	if !exists {
		// check in the request context as well
		if v, ok := c.Request.Context().Value(ownerKey).(string); ok {
			return v, true
		}
		return "", false
	}

	owner, ok := ownerVal.(string)
	return owner, ok
}
