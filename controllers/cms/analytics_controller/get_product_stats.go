package analytics_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/analytics"
	"github.com/navedhana-tech/navedhana-cms-backend/config"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
)

// productFilter reads filter=today|yesterday|all|custom with start/end for custom
func productFilter(c *gin.Context) (analytics.ProductDateFilter, error) {
	loc := config.ReportLocation
	f := analytics.ProductDateFilter{Kind: strings.ToLower(strings.TrimSpace(c.DefaultQuery("filter", analytics.FilterAll)))}
	if f.Kind != analytics.FilterCustom {
		return f, nil
	}
	if raw := c.Query("start"); raw != "" {
		t, err := parseQueryDate(raw, loc)
		if err != nil {
			return f, err
		}
		f.Start = t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := parseQueryDate(raw, loc)
		if err != nil {
			return f, err
		}
		f.End = t
	}
	return f, nil
}

// GetProductStats godoc
// @Summary Get inventory usage per product
// @Description Quantity, order count and revenue per (product, category) for non-cancelled orders
// @Tags Admin - Inventory
// @Produce json
// @Security BearerAuth
// @Param filter query string false "today, yesterday, all or custom" default(all)
// @Param start query string false "Custom start (YYYY-MM-DD)"
// @Param end query string false "Custom end (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=[]models.ProductStat}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/inventory/product-stats [get]
func GetProductStats(c *gin.Context) {
	const tag = "admin.inventory-product-stats"

	filter, err := productFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	orders, ok := loadOrders(c, tag)
	if !ok {
		return
	}

	loc := config.ReportLocation
	stats, err := analytics.AggregateProductStats(orders, filter, clock().In(loc), loc)
	if err != nil {
		log.Printf("[%s] WARN bad filter=%q err=%v", tag, filter.Kind, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	log.Printf("[%s] respond 200 filter=%s products=%d", tag, filter.Kind, len(stats))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product stats fetched successfully", stats))
}
