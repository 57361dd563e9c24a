package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
	"github.com/navedhana-tech/navedhana-cms-backend/utils"
)

// CustomerAuthMiddleware validates the customer token the storefront forwards
// and requires it to belong to the :customerId in the path
func CustomerAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := utils.ExtractTokenFromHeader(c.GetHeader("Authorization"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
			c.Abort()
			return
		}

		claims, err := utils.ValidateCustomerJWT(secret, token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		if id := c.Param("customerId"); id != "" && id != claims.CustomerID {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Token does not belong to this customer"))
			c.Abort()
			return
		}

		c.Set("customerID", claims.CustomerID)
		c.Next()
	}
}
