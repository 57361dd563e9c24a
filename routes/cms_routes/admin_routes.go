package cms_routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/middleware"
	"github.com/redis/go-redis/v9"
)

// SetupAdminRoutes mounts every admin route under /admin behind JWT auth and
// the per-admin rate limiter
func SetupAdminRoutes(rg *gin.RouterGroup, limiter redis.Cmdable, perMinute int) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware())
	admin.Use(middleware.RateLimiter(limiter, perMinute, time.Minute))

	SetupAnalyticsRoutes(admin)
	SetupInventoryRoutes(admin)
	SetupOrderRoutes(admin)
	SetupCustomerRoutes(admin)
}
