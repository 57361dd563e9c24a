package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/analytics"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
)

// GetCategoryBreakdown godoc
// @Summary Get revenue by category
// @Description Line-item revenue per category for non-cancelled orders, highest first
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param range query string false "Trailing days or all" default(30)
// @Param start query string false "Window start (YYYY-MM-DD)"
// @Param end query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=[]models.CategoryRevenue}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/categories [get]
func GetCategoryBreakdown(c *gin.Context) {
	const tag = "admin.analytics-categories"

	orders, ok := loadOrders(c, tag)
	if !ok {
		return
	}
	inWindow, _, ok := windowOrders(c, tag, orders)
	if !ok {
		return
	}

	categories := analytics.CategoryRevenueList(analytics.ComputeCategoryBreakdown(inWindow))
	log.Printf("[%s] respond 200 categories=%d", tag, len(categories))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category breakdown fetched successfully", categories))
}
