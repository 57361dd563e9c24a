package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/analytics"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
)

// GetTopProducts godoc
// @Summary Get top products
// @Description Products ranked by units sold in the window, cancelled orders excluded
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param range query string false "Trailing days or all" default(30)
// @Param start query string false "Window start (YYYY-MM-DD)"
// @Param end query string false "Window end (YYYY-MM-DD)"
// @Param limit query int false "Number of products (max 50)" default(5)
// @Success 200 {object} models.ApiResponse{data=[]models.TopProduct}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/top-products [get]
func GetTopProducts(c *gin.Context) {
	const tag = "admin.analytics-top-products"
	limit := parseLimit(c, tag, analytics.DefaultTopProducts, 50)

	orders, ok := loadOrders(c, tag)
	if !ok {
		return
	}
	inWindow, _, ok := windowOrders(c, tag, orders)
	if !ok {
		return
	}

	products := analytics.ComputeTopProducts(inWindow, limit)
	log.Printf("[%s] respond 200 count=%d", tag, len(products))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top products fetched successfully", products))
}
