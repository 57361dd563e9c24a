package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/controllers/cms/order_controller"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	order := rg.Group("/orders")

	order.GET("", order_controller.GetOrders)
	order.GET("/stats", order_controller.GetOrderStats)
}
