package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/analytics"
	"github.com/navedhana-tech/navedhana-cms-backend/config"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
)

// GetMonthlyRevenue godoc
// @Summary Get monthly revenue
// @Description Revenue for the trailing 12 months including the current one, zero-filled
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.MonthlyRevenueData}
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/monthly-revenue [get]
func GetMonthlyRevenue(c *gin.Context) {
	const tag = "admin.analytics-monthly-revenue"

	orders, ok := loadOrders(c, tag)
	if !ok {
		return
	}

	loc := config.ReportLocation
	months := analytics.ComputeMonthlyRevenue(orders, clock().In(loc), loc)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly revenue fetched successfully", months))
}
