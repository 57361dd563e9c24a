package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/config"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
	"github.com/navedhana-tech/navedhana-cms-backend/services"
)

func loadOrders(c *gin.Context, tag string) ([]models.Order, bool) {
	store := services.GetStore()
	if store == nil {
		log.Printf("[%s] ERROR no store configured", tag)
		c.JSON(http.StatusServiceUnavailable, models.NoDataResponse(c, "Order data is unavailable"))
		return nil, false
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, err := store.ListOrders(ctx)
	if err != nil {
		log.Printf("[%s] ERROR load orders err=%v", tag, err)
		c.JSON(http.StatusServiceUnavailable, models.NoDataResponse(c, "Order data is unavailable"))
		return nil, false
	}
	return orders, true
}
