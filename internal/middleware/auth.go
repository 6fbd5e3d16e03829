package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenValidator is the part of the auth service the middleware needs.
type TokenValidator interface {
	Enabled() bool
	ValidateToken(tokenString string) (string, error)
}

// AuthMiddleware creates a Gin middleware handler that validates bearer tokens.
// When the validator is disabled every request is attributed to LocalOwner.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve logger from the standard context
		logger := GetLoggerFromCtx(c.Request.Context())

		if !validator.Enabled() {
			setOwner(c, logger, LocalOwner)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		subject, err := validator.ValidateToken(parts[1])
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		setOwner(c, logger, subject)
		c.Next() // Proceed to the next handler
	}
}

func setOwner(c *gin.Context, logger *slog.Logger, owner string) {
	enrichedLogger := logger.With(slog.String("owner", owner))

	ctx := context.WithValue(c.Request.Context(), ownerKey, owner)
	c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))
	c.Set(string(ownerKey), owner)
	c.Set(string(loggerKey), enrichedLogger)
}
