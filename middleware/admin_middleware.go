package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
	"github.com/navedhana-tech/navedhana-cms-backend/services"
	"github.com/navedhana-tech/navedhana-cms-backend/utils"
)

// AdminAuthMiddleware validates the admin JWT from the admin_token cookie or
// the Authorization header
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || token == "" {
			token, err = utils.ExtractTokenFromHeader(c.GetHeader("Authorization"))
			if err != nil {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
				c.Abort()
				return
			}
		}

		verifier := services.GetJWTService()
		if verifier == nil {
			log.Printf("[auth] ERROR jwt service not initialised")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Authentication unavailable"))
			c.Abort()
			return
		}

		claims, err := verifier.VerifyAdminJWT(token)
		if err != nil {
			log.Printf("[auth] invalid token: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Set("adminEmail", claims.Email)
		c.Set("adminRole", claims.Role)
		c.Next()
	}
}

// RequireAdminRole blocks analysts from admin-only routes such as exports
func RequireAdminRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, _ := c.Get("adminRole"); role != services.RoleAdmin {
			log.Printf("[auth] role %v attempted restricted action", role)
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetAdminFromContext returns the id and email set by AdminAuthMiddleware
func GetAdminFromContext(c *gin.Context) (id, email string) {
	id = c.GetString("adminID")
	email = c.GetString("adminEmail")
	return id, email
}
