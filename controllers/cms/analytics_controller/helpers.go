package analytics_controller

import (
	"fmt"
	"log"
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

const (
	defaultRangeDays = "30"
	queryDateLayout  = "2006-01-02"
)

// clock is swapped in tests
var clock = time.Now

// loadOrders reads every order from the store. On failure it has already
// written a no-data response and returns false.
func loadOrders(c *gin.Context, tag string) ([]models.Order, bool) {
	store := services.GetStore()
	if store == nil {
		log.Printf("[%s] ERROR no store configured", tag)
		c.JSON(http.StatusServiceUnavailable, models.NoDataResponse(c, "Analytics data is unavailable"))
		return nil, false
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, err := store.ListOrders(ctx)
	if err != nil {
		log.Printf("[%s] ERROR load orders err=%v", tag, err)
		c.JSON(http.StatusServiceUnavailable, models.NoDataResponse(c, "Analytics data is unavailable"))
		return nil, false
	}
	return orders, true
}

func parseQueryDate(raw string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(queryDateLayout, strings.TrimSpace(raw), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("dates must be YYYY-MM-DD, got %q", raw)
	}
	return t, nil
}

// parseWindow reads start/end (whole days) or range=<days>|all.
// A nil window means every order, undated ones included.
func parseWindow(c *gin.Context, now time.Time, loc *time.Location) (*analytics.DateRange, error) {
	startRaw, endRaw := c.Query("start"), c.Query("end")
	if startRaw != "" || endRaw != "" {
		if startRaw == "" || endRaw == "" {
			return nil, fmt.Errorf("start and end must be given together")
		}
		start, err := parseQueryDate(startRaw, loc)
		if err != nil {
			return nil, err
		}
		end, err := parseQueryDate(endRaw, loc)
		if err != nil {
			return nil, err
		}
		r := analytics.ExplicitRange(start, end, loc)
		return &r, nil
	}

	raw := strings.ToLower(strings.TrimSpace(c.DefaultQuery("range", defaultRangeDays)))
	if raw == "all" {
		return nil, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return nil, fmt.Errorf("range must be a positive number of days or \"all\"")
	}
	r := analytics.LastNDays(now, days)
	return &r, nil
}

// windowOrders applies the request's window to orders
func windowOrders(c *gin.Context, tag string, orders []models.Order) ([]models.Order, *analytics.DateRange, bool) {
	loc := config.ReportLocation
	window, err := parseWindow(c, clock().In(loc), loc)
	if err != nil {
		log.Printf("[%s] WARN bad window err=%v", tag, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return nil, nil, false
	}
	if window == nil {
		return orders, nil, true
	}
	kept, skipped := analytics.FilterByDateRange(orders, *window, loc)
	log.Printf("[%s] window %s..%s kept=%d skipped=%d", tag,
		window.Start.Format(queryDateLayout), window.End.Format(queryDateLayout), len(kept), skipped)
	return kept, window, true
}

func parseLimit(c *gin.Context, tag string, def, max int) int {
	raw := c.Query("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > max {
		log.Printf("[%s] WARN limit out of range (%q) -> set %d", tag, raw, def)
		return def
	}
	return limit
}
