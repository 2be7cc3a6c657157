package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"family-health-api/internal/auth"
)

// UserIDKey holds the authenticated user id in the gin context.
const UserIDKey = "uid"

// Auth rejects requests without a valid bearer token and stores the
// normalized user id under UserIDKey.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// token from Authorization: Bearer <jwt>
		raw := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "No token"})
			return
		}

		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Invalid token"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}
