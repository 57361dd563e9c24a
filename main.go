// @title Navedhana CMS API
// @version 1.0
// @description Admin analytics and storefront activity API for the Navedhana grocery store
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	order_cache "github.com/navedhana-tech/navedhana-cms-backend/cache"
	"github.com/navedhana-tech/navedhana-cms-backend/config"
	_ "github.com/navedhana-tech/navedhana-cms-backend/docs"
	"github.com/navedhana-tech/navedhana-cms-backend/middleware"
	"github.com/navedhana-tech/navedhana-cms-backend/routes/cms_routes"
	"github.com/navedhana-tech/navedhana-cms-backend/routes/ecommerce_routes"
	"github.com/navedhana-tech/navedhana-cms-backend/services"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	settings := config.Load()
	if settings.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to DB
	config.InitDB()
	defer config.CloseDB()
	// Redis connection
	config.ConnectRedis()
	defer config.CloseRedis()

	store, err := services.OpenStore()
	if err != nil {
		log.Fatalf("❌ Failed to open data source: %v", err)
	}
	defer config.DisconnectMongo()
	services.SetStore(order_cache.Wrap(store, settings.OrderCacheTTL))
	services.SetActivityTracker(services.NewActivityTracker(store, time.Now))

	exportLog := services.NewPgxExportLog(config.AdminDB)
	ctx, cancel := config.WithTimeout()
	if err := exportLog.EnsureSchema(ctx); err != nil {
		log.Printf("⚠️ report_exports table not ready, exports will not be audited: %v", err)
	} else {
		services.SetExportLog(exportLog)
	}
	cancel()

	if settings.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(settings.JWTSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")
	if settings.StorefrontSecret == "" {
		log.Println("⚠️ STOREFRONT_JWT_SECRET not set, activity intake will reject every request")
	}

	corsCfg := cors.Config{
		AllowOrigins:     settings.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length", "X-Request-ID"},
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")
	cms_routes.SetupAdminRoutes(api, config.RedisClient, settings.RateLimitPerMinute)
	log.Println("✅ Admin routes registered")
	ecommerce_routes.SetupActivityRoutes(api, settings.StorefrontSecret)
	log.Println("✅ Storefront activity routes registered")

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server is running on http://localhost:%s", settings.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ Graceful shutdown failed: %v", err)
	}
}
