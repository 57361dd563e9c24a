package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/controllers/cms/customer_controller"
)

func SetupCustomerRoutes(rg *gin.RouterGroup) {
	customer := rg.Group("/customers")

	customer.GET("/engagement", customer_controller.GetCustomersEngagement)
	customer.GET("/:id", customer_controller.GetCustomerDetailsByID)
}
