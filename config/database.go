package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// AdminDB holds admin-side records (report export audit)
	AdminDB *pgxpool.Pool

	// StoreGorm reads storefront orders and customers when DATA_SOURCE=postgres
	StoreGorm *gorm.DB
)

func InitDB() {
	initPgx()
	if App.DataSource == DataSourcePostgres {
		initGORM()
	}
}

func initPgx() {
	adminURL := os.Getenv("ADMIN_DB_URL")
	if adminURL == "" {
		adminURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/navedhana_admin?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ ADMIN_DB_URL not set, using local default")
	}

	var err error
	AdminDB, err = pgxpool.New(context.Background(), adminURL)
	if err != nil {
		log.Fatalf("❌ Unable to connect to admin database: %v", err)
	}

	if err = AdminDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ Admin database ping failed: %v", err)
	}

	log.Println("✅ Admin database connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if App.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	storeDSN := os.Getenv("STORE_DB_URL")
	if storeDSN == "" {
		storeDSN = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=navedhana_store port=%s sslmode=disable TimeZone=UTC",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ STORE_DB_URL not set, using local GORM default")
	}

	var err error
	StoreGorm, err = gorm.Open(postgres.Open(storeDSN), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to store database with GORM: %v", err)
	}
	if sqlDB, err := StoreGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Store database connected (GORM)")
}

func CloseDB() {
	if AdminDB != nil {
		AdminDB.Close()
		log.Println("✅ Admin database connection closed (pgx)")
	}

	if StoreGorm != nil {
		sqlDB, _ := StoreGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Store database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}
