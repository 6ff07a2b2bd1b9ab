package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/carewave-api/internal/utils"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID    = "userID"
	ContextUserRole  = "userRole"
	ContextUserEmail = "userEmail"
)

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": true, "message": message})
}

// AuthMiddleware requires a valid "Authorization: Bearer <token>" header.
func AuthMiddleware(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if authHeader == "" || !ok || strings.TrimSpace(tokenString) == "" {
			abort(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := tokens.ValidateJWT(strings.TrimSpace(tokenString))
		if err != nil {
			abort(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		// Set user info in the context for handlers to use
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Set(ContextUserEmail, claims.Email)

		c.Next()
	}
}

// RequireRole lets the request through only when the authenticated role is
// one of roles. It must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		abort(c, http.StatusForbidden, "Forbidden: Insufficient permissions")
	}
}
