package customer_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/analytics"
	"github.com/navedhana-tech/navedhana-cms-backend/config"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
	"github.com/navedhana-tech/navedhana-cms-backend/services"
)

// clock is swapped in tests
var clock = time.Now

// GetCustomersEngagement godoc
// @Summary Get customer engagement (CMS)
// @Description Customers with freshly computed engagement, loyalty, lifecycle stage and spending frequency, most engaged first
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Param stage query string false "Lifecycle stage filter"
// @Success 200 {object} models.ApiResponse{data=[]models.CustomerEngagementRow,meta=models.Pagination}
// @Failure 503 {object} models.ApiResponse
// @Router /admin/customers/engagement [get]
func GetCustomersEngagement(c *gin.Context) {
	const tag = "admin.customers-engagement"

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		log.Printf("[%s] WARN limit out of range (%q) -> set 20", tag, c.Query("limit"))
		limit = 20
	}
	stage := strings.TrimSpace(c.Query("stage"))

	store := services.GetStore()
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, models.NoDataResponse(c, "Customer data is unavailable"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	customers, err := store.ListCustomers(ctx)
	if err != nil {
		log.Printf("[%s] ERROR load customers err=%v", tag, err)
		c.JSON(http.StatusServiceUnavailable, models.NoDataResponse(c, "Customer data is unavailable"))
		return
	}

	all := analytics.EngagementRows(customers, clock())
	rows := all[:0:0]
	for _, r := range all {
		if stage == "" || r.LifecycleStage == stage {
			rows = append(rows, r)
		}
	}

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
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customer engagement fetched successfully", rows[start:end], meta))
}
