package analytics_controller

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/analytics"
	"github.com/navedhana-tech/navedhana-cms-backend/config"
	"github.com/navedhana-tech/navedhana-cms-backend/middleware"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
	"github.com/navedhana-tech/navedhana-cms-backend/services"
	"github.com/navedhana-tech/navedhana-cms-backend/utils"
)

var reportTitles = map[string]string{
	models.ReportSummary:    "Sales Summary",
	models.ReportDaily:      "Daily Revenue",
	models.ReportCategories: "Revenue by Category",
	models.ReportProducts:   "Top Products",
	models.ReportInventory:  "Inventory Usage",
	models.ReportCustomers:  "Customer Engagement",
}

func summaryRows(t models.OrderTotals) []models.SummaryMetric {
	return []models.SummaryMetric{
		{Metric: "Total revenue", Value: fmt.Sprintf("%.2f", t.TotalRevenue)},
		{Metric: "Total orders", Value: fmt.Sprintf("%d", t.TotalOrders)},
		{Metric: "Average order value", Value: fmt.Sprintf("%.2f", t.AvgOrderValue)},
		{Metric: "Unique customers", Value: fmt.Sprintf("%d", t.UniqueCustomers)},
		{Metric: "Completion rate (%)", Value: fmt.Sprintf("%.2f", t.CompletionRate)},
	}
}

// reportRows builds the rows for one report; it writes the error response itself
func reportRows(c *gin.Context, tag, report string) (any, int, bool) {
	loc := config.ReportLocation

	if report == models.ReportCustomers {
		store := services.GetStore()
		if store == nil {
			c.JSON(http.StatusServiceUnavailable, models.NoDataResponse(c, "Customer data is unavailable"))
			return nil, 0, false
		}
		ctx, cancel := config.WithTimeout()
		defer cancel()
		customers, err := store.ListCustomers(ctx)
		if err != nil {
			log.Printf("[%s] ERROR load customers err=%v", tag, err)
			c.JSON(http.StatusServiceUnavailable, models.NoDataResponse(c, "Customer data is unavailable"))
			return nil, 0, false
		}
		rows := analytics.EngagementRows(customers, clock().In(loc))
		return rows, len(rows), true
	}

	if report == models.ReportInventory {
		filter, err := productFilter(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return nil, 0, false
		}
		orders, ok := loadOrders(c, tag)
		if !ok {
			return nil, 0, false
		}
		stats, err := analytics.AggregateProductStats(orders, filter, clock().In(loc), loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return nil, 0, false
		}
		return stats, len(stats), true
	}

	orders, ok := loadOrders(c, tag)
	if !ok {
		return nil, 0, false
	}
	inWindow, _, ok := windowOrders(c, tag, orders)
	if !ok {
		return nil, 0, false
	}

	switch report {
	case models.ReportSummary:
		rows := summaryRows(analytics.ComputeTotals(inWindow))
		return rows, len(rows), true
	case models.ReportDaily:
		rows := analytics.ComputeDailyTrend(inWindow, loc)
		return rows, len(rows), true
	case models.ReportCategories:
		rows := analytics.CategoryRevenueList(analytics.ComputeCategoryBreakdown(inWindow))
		return rows, len(rows), true
	case models.ReportProducts:
		rows := analytics.ComputeTopProducts(inWindow, parseLimit(c, tag, 50, 500))
		return rows, len(rows), true
	}
	return nil, 0, false
}

// ExportReport godoc
// @Summary Export an analytics report
// @Description Downloads a report as CSV, JSON or PDF. Every export is audited.
// @Tags Admin - Analytics
// @Produce text/csv
// @Produce application/json
// @Produce application/pdf
// @Security BearerAuth
// @Param report query string true "summary, daily, categories, products, inventory or customers"
// @Param format query string false "csv, json or pdf" default(csv)
// @Param range query string false "Trailing days or all" default(30)
// @Param start query string false "Window start (YYYY-MM-DD)"
// @Param end query string false "Window end (YYYY-MM-DD)"
// @Param filter query string false "Inventory filter: today, yesterday, all or custom"
// @Success 200 {file} file
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/export [get]
func ExportReport(c *gin.Context) {
	const tag = "admin.analytics-export"

	report := strings.ToLower(strings.TrimSpace(c.Query("report")))
	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", models.FormatCSV)))
	title, known := reportTitles[report]
	if !known {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "report must be one of summary, daily, categories, products, inventory, customers"))
		return
	}
	if format != models.FormatCSV && format != models.FormatJSON && format != models.FormatPDF {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "format must be csv, json or pdf"))
		return
	}
	log.Printf("[%s] start report=%s format=%s", tag, report, format)

	rows, count, ok := reportRows(c, tag, report)
	if !ok {
		return
	}

	now := clock().In(config.ReportLocation)
	file, err := services.RenderReport(format, title, rows, now)
	if err != nil {
		log.Printf("[%s] ERROR render err=%v", tag, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to render report"))
		return
	}

	if auditLog := services.GetExportLog(); auditLog != nil {
		adminID, adminEmail := middleware.GetAdminFromContext(c)
		filters := map[string]string{}
		for _, key := range []string{"range", "start", "end", "filter", "limit"} {
			if v := c.Query(key); v != "" {
				filters[key] = v
			}
		}
		ctx, cancel := config.WithTimeout()
		defer cancel()
		if err := auditLog.Record(ctx, &models.ReportExport{
			AdminID:    adminID,
			AdminEmail: adminEmail,
			Report:     report,
			Format:     format,
			Filters:    filters,
			RowCount:   count,
			IPAddress:  utils.GetClientIP(c),
		}); err != nil {
			log.Printf("[%s] WARN export not audited err=%v", tag, err)
		}
	}

	filename := fmt.Sprintf("navedhana-%s-%s.%s", report, now.Format("20060102"), file.Extension)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	log.Printf("[%s] respond 200 rows=%d bytes=%d", tag, count, len(file.Body))
	c.Data(http.StatusOK, file.ContentType, file.Body)
}

// GetRecentExports godoc
// @Summary List recent report exports
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of entries (max 100)" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.ReportExport}
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/exports [get]
func GetRecentExports(c *gin.Context) {
	const tag = "admin.analytics-exports"

	auditLog := services.GetExportLog()
	if auditLog == nil {
		c.JSON(http.StatusServiceUnavailable, models.NoDataResponse(c, "Export audit log is unavailable"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()
	exports, err := auditLog.Recent(ctx, parseLimit(c, tag, 20, 100))
	if err != nil {
		log.Printf("[%s] ERROR err=%v", tag, err)
		c.JSON(http.StatusServiceUnavailable, models.NoDataResponse(c, "Export audit log is unavailable"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Recent exports fetched successfully", exports))
}
