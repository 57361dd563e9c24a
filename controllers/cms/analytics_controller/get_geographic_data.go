package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/analytics"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
)

// GetGeographicData godoc
// @Summary Get revenue by city
// @Description Cities ranked by revenue; orders without a city count under Unknown City
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param range query string false "Trailing days or all" default(30)
// @Param start query string false "Window start (YYYY-MM-DD)"
// @Param end query string false "Window end (YYYY-MM-DD)"
// @Param limit query int false "Number of cities (max 50)" default(6)
// @Success 200 {object} models.ApiResponse{data=[]models.CityRevenue}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/geographic-data [get]
func GetGeographicData(c *gin.Context) {
	const tag = "admin.analytics-geographic"
	limit := parseLimit(c, tag, analytics.DefaultTopCities, 50)

	orders, ok := loadOrders(c, tag)
	if !ok {
		return
	}
	inWindow, _, ok := windowOrders(c, tag, orders)
	if !ok {
		return
	}

	cities := analytics.ComputeGeoBreakdown(inWindow, limit)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Geographic data fetched successfully", cities))
}
