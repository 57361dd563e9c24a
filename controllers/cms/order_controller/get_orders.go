package order_controller

import (
	"log"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/analytics"
	"github.com/navedhana-tech/navedhana-cms-backend/config"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
)

func listRow(o models.Order, loc *time.Location) models.OrderListRow {
	row := models.OrderListRow{
		ID:           o.ID,
		Status:       o.Status,
		CustomerName: o.AddressInfo.Name,
		PhoneNumber:  o.AddressInfo.PhoneNumber,
		City:         o.AddressInfo.City,
		Pincode:      o.AddressInfo.Pincode,
		ItemCount:    len(o.CartItems),
		GrandTotal:   o.GrandTotal,
	}
	if t, ok := analytics.EffectiveDate(o, loc); ok {
		row.OrderedAt = &t
	}
	return row
}

func matchesQuery(o models.Order, q string) bool {
	q = strings.ToLower(q)
	for _, field := range []string{o.ID, o.AddressInfo.Name, o.AddressInfo.PhoneNumber, o.AddressInfo.City, o.AddressInfo.Pincode} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// GetOrders godoc
// @Summary Get orders (CMS)
// @Description Every order, cancelled and undated ones included, newest first with undated orders last
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param status query string false "placed, harvested, out for delivery, delivered or cancelled"
// @Param q query string false "Search by order id, customer name, phone, city or pincode"
// @Success 200 {object} models.ApiResponse{data=[]models.OrderListRow,meta=models.Pagination}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	const tag = "admin.orders"

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		log.Printf("[%s] WARN invalid page=%q -> default 1", tag, c.Query("page"))
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		log.Printf("[%s] WARN limit out of range (%q) -> set 10", tag, c.Query("limit"))
		limit = 10
	}

	var status models.OrderStatus
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status, err = models.ParseOrderStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
	}
	q := strings.TrimSpace(c.Query("q"))
	log.Printf("[%s] params page=%d limit=%d status=%q q=%q", tag, page, limit, status, q)

	orders, ok := loadOrders(c, tag)
	if !ok {
		return
	}

	loc := config.ReportLocation
	rows := make([]models.OrderListRow, 0, len(orders))
	for _, o := range orders {
		if status != "" && o.Status != status {
			continue
		}
		if q != "" && !matchesQuery(o, q) {
			continue
		}
		rows = append(rows, listRow(o, loc))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].OrderedAt, rows[j].OrderedAt
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return a.After(*b)
	})

	total := len(rows)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
	log.Printf("[%s] respond 200 meta=%+v", tag, *meta)
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders fetched successfully", rows[start:end], meta))
}
