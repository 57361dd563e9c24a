package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/analytics"
	"github.com/navedhana-tech/navedhana-cms-backend/config"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
)

// GetAnalyticsOverview godoc
// @Summary Get analytics overview
// @Description Totals, category breakdown, daily trend, top products and top cities for one window
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param range query string false "Trailing days or all" default(30)
// @Param start query string false "Window start (YYYY-MM-DD)"
// @Param end query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=models.AnalyticsSnapshot}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/overview [get]
func GetAnalyticsOverview(c *gin.Context) {
	const tag = "admin.analytics-overview"
	log.Printf("[%s] start", tag)

	loc := config.ReportLocation
	window, err := parseWindow(c, clock().In(loc), loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	orders, ok := loadOrders(c, tag)
	if !ok {
		return
	}

	snap := analytics.BuildSnapshot(orders, analytics.SnapshotOptions{
		Range:       window,
		Location:    loc,
		TopProducts: analytics.DefaultTopProducts,
		TopCities:   analytics.DefaultTopCities,
	})

	log.Printf("[%s] respond 200 orders=%d revenue=%.2f skipped=%d", tag,
		snap.Totals.TotalOrders, snap.Totals.TotalRevenue, snap.SkippedOrders)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics overview fetched successfully", snap))
}
