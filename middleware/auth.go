package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"probook/utils"
)

// Roles carried in the externally-issued token.
const (
	RoleProfessional = "professional"
	RoleCustomer     = "customer"
)

// JWTAuthMiddleware verifies the bearer token and injects the caller
// identity. Identity is always externally supplied; a request without a valid
// token is rejected, never given a fallback identity.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		subject, email, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set("userID", subject)
		c.Set("email", email)
		c.Set("role", role)
		c.Next()
	}
}

// RequireRole rejects callers whose token does not carry the given role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerRole, _ := c.Get("role")
		if callerRole != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Forbidden for this role",
			})
			return
		}
		c.Next()
	}
}
