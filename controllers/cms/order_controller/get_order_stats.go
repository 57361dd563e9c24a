package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/analytics"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
)

// GetOrderStats godoc
// @Summary Get order stats (CMS)
// @Description All-time order count with a per-status breakdown; completion rate counts delivered orders only
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.OrderStatsResponse}
// @Failure 503 {object} models.ApiResponse
// @Router /admin/orders/stats [get]
func GetOrderStats(c *gin.Context) {
	const tag = "admin.order.stats"
	log.Printf("[%s] start", tag)

	orders, ok := loadOrders(c, tag)
	if !ok {
		return
	}

	stats := analytics.ComputeStatusBreakdown(orders)
	log.Printf("[%s] respond 200 total=%d completion=%.2f", tag, stats.TotalOrders, stats.CompletionRate)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order stats fetched successfully", stats))
}
