package customer_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/analytics"
	"github.com/navedhana-tech/navedhana-cms-backend/config"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
	"github.com/navedhana-tech/navedhana-cms-backend/services"
)

// GetCustomerDetailsByID godoc
// @Summary Get customer activity (CMS)
// @Description Full activity record with histories and rescored derived fields
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} models.ApiResponse{data=models.CustomerActivity}
// @Failure 404 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/customers/{id} [get]
func GetCustomerDetailsByID(c *gin.Context) {
	const tag = "admin.customer-details"
	id := strings.TrimSpace(c.Param("id"))

	store := services.GetStore()
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, models.NoDataResponse(c, "Customer data is unavailable"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	customer, err := store.GetCustomer(ctx, id)
	if errors.Is(err, services.ErrCustomerNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
		return
	}
	if err != nil {
		log.Printf("[%s] ERROR id=%s err=%v", tag, id, err)
		c.JSON(http.StatusServiceUnavailable, models.NoDataResponse(c, "Customer data is unavailable"))
		return
	}

	analytics.Rescore(customer, nil, clock())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer fetched successfully", customer))
}
