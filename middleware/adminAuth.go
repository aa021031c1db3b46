package middleware

import (
	"net/http"
	"strings"

	"salonbook/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware gates catalog and booking mutations behind a valid,
// unexpired admin bearer token. No mutation runs past a failed check.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		adminID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("adminID", adminID)
		c.Next()
	}
}
