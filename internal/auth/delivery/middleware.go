package delivery

import (
	"net/http"
	"strings"

	"habitly-backend/internal/auth/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards authenticated routes. It extracts the bearer token,
// resolves its subject through the issuer and stores the user id on the
// context under "userID".
func AuthMiddleware(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		userID, err := issuer.ExtractSubject(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
