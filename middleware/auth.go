package middleware

import (
	"strings"

	"github.com/akshayraj-industries/website-backend/errors"
	"github.com/akshayraj-industries/website-backend/internal/auth"
	"github.com/akshayraj-industries/website-backend/logger"
	"github.com/gin-gonic/gin"
)

const (
	// AdminIDKey is the gin context key holding the authenticated admin's id.
	AdminIDKey = "admin_id"
	// AdminUsernameKey is the gin context key holding the admin's username.
	AdminUsernameKey = "admin_username"
)

// RequireAdmin validates the bearer token on admin routes and stores the
// admin identity in the context.
func RequireAdmin(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := issuer.Validate(token)
		if err != nil {
			logger.GetLogger().Debugw("Token validation failed",
				"error", err, "client_ip", c.ClientIP())
			abortUnauthorized(c, "Invalid or expired session")
			return
		}

		c.Set(AdminIDKey, claims.UserID)
		c.Set(AdminUsernameKey, claims.Username)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	_ = c.Error(errors.AuthenticationFailed(message))
	c.Abort()
}
