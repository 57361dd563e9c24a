package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/analytics"
	"github.com/navedhana-tech/navedhana-cms-backend/config"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
)

// GetDailyTrend godoc
// @Summary Get daily revenue trend
// @Description Revenue and order count per calendar day in the report timezone, ascending
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param range query string false "Trailing days or all" default(30)
// @Param start query string false "Window start (YYYY-MM-DD)"
// @Param end query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=[]models.DailyTrendPoint}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/daily-trend [get]
func GetDailyTrend(c *gin.Context) {
	const tag = "admin.analytics-daily-trend"

	orders, ok := loadOrders(c, tag)
	if !ok {
		return
	}
	inWindow, _, ok := windowOrders(c, tag, orders)
	if !ok {
		return
	}

	trend := analytics.ComputeDailyTrend(inWindow, config.ReportLocation)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Daily trend fetched successfully", trend))
}
