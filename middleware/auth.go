package middleware

import (
	"net/http"
	"strings"

	"github.com/stzheng716/sharebnb-backend/utils"

	"github.com/gin-gonic/gin"
)

// Context keys populated by RequireAuth.
const (
	CtxUsername = "username"
	CtxIsHost   = "is_host"
)

// RequireAuth validates the bearer token and stores the asserted identity in
// the request context. Requests without a valid token never reach the handler.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.JSONError(c, http.StatusUnauthorized, "authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.JSONError(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(CtxUsername, claims.Username)
		c.Set(CtxIsHost, claims.IsHost)
		c.Next()
	}
}
