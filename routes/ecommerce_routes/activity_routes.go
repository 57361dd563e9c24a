package ecommerce_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/controllers/ecommerce/activity_controller"
	"github.com/navedhana-tech/navedhana-cms-backend/middleware"
)

// SetupActivityRoutes mounts the storefront activity intake
func SetupActivityRoutes(rg *gin.RouterGroup, storefrontSecret string) {
	activity := rg.Group("/activity")
	activity.Use(middleware.CustomerAuthMiddleware(storefrontSecret))

	activity.POST("/:customerId", activity_controller.TrackActivity)
}
