package middleware

import (
	"net/http"
	"strings"

	"pawbook/utils"

	"github.com/gin-gonic/gin"
)

// StaffAuthMiddleware gates the staff calendar behind a verified staff token.
// Tokens are issued by the account service; this side only verifies them.
func StaffAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ParseStaffToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if claims.Role != "staff" && claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Staff access required"})
			return
		}

		c.Set("staffID", claims.StaffID)
		c.Set("staffRole", claims.Role)
		c.Next()
	}
}
