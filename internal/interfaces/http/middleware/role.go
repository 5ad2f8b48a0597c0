package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talenttrek/backend/internal/domain/identity"
)

// RequireRole returns a middleware that only lets through users whose
// JWT carries one of the given roles. It must run after JWT auth.
func RequireRole(roles ...identity.Role) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role.String()] = true
	}

	return func(c *gin.Context) {
		role := GetJWTRole(c)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Authentication required",
				},
			})
			return
		}

		if !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "This endpoint is not available for your role",
				},
			})
			return
		}

		c.Next()
	}
}

// RequireStudent restricts a route to student accounts
func RequireStudent() gin.HandlerFunc {
	return RequireRole(identity.RoleStudent)
}

// RequireRecruiter restricts a route to recruiter accounts
func RequireRecruiter() gin.HandlerFunc {
	return RequireRole(identity.RoleRecruiter)
}
