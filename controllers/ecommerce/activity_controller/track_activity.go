package activity_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/config"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
	"github.com/navedhana-tech/navedhana-cms-backend/services"
)

// TrackActivity godoc
// @Summary Record storefront activity
// @Description Applies one event (page_visit, product_view, search, cart_action, order_placed) to the customer's activity record and returns the rescored record
// @Tags Storefront - Activity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param customerId path string true "Customer ID"
// @Param event body models.ActivityEvent true "Activity event"
// @Success 200 {object} models.ApiResponse{data=models.CustomerActivity}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /activity/{customerId} [post]
func TrackActivity(c *gin.Context) {
	const tag = "storefront.activity"

	var event models.ActivityEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	tracker := services.GetActivityTracker()
	if tracker == nil {
		log.Printf("[%s] ERROR tracker not configured", tag)
		c.JSON(http.StatusServiceUnavailable, models.NoDataResponse(c, "Activity tracking is unavailable"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	customer, err := tracker.Track(ctx, c.Param("customerId"), event)
	if errors.Is(err, services.ErrInvalidEvent) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	if err != nil {
		log.Printf("[%s] ERROR customer=%s type=%s err=%v", tag, c.Param("customerId"), event.Type, err)
		c.JSON(http.StatusServiceUnavailable, models.NoDataResponse(c, "Activity tracking is unavailable"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Activity recorded", customer))
}
