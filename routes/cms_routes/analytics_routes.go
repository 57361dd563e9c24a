package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/controllers/cms/analytics_controller"
	"github.com/navedhana-tech/navedhana-cms-backend/middleware"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")

	analytics.GET("/overview", analytics_controller.GetAnalyticsOverview)
	analytics.GET("/categories", analytics_controller.GetCategoryBreakdown)
	analytics.GET("/daily-trend", analytics_controller.GetDailyTrend)
	analytics.GET("/top-products", analytics_controller.GetTopProducts)
	analytics.GET("/geographic-data", analytics_controller.GetGeographicData)
	analytics.GET("/monthly-revenue", analytics_controller.GetMonthlyRevenue)

	// Exports carry customer data
	exports := analytics.Group("")
	exports.Use(middleware.RequireAdminRole())
	{
		exports.GET("/export", analytics_controller.ExportReport)
		exports.GET("/exports", analytics_controller.GetRecentExports)
	}
}

func SetupInventoryRoutes(rg *gin.RouterGroup) {
	inventory := rg.Group("/inventory")

	inventory.GET("/product-stats", analytics_controller.GetProductStats)
}
