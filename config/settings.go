package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings is the process configuration read from the environment
type Settings struct {
	AppEnv             string
	Port               string
	DataSource         string // mongo or postgres
	MongoURI           string
	MongoDBName        string
	JWTSecret          string
	StorefrontSecret   string // signs the customer tokens the storefront forwards
	ReportTimezone     string
	RateLimitPerMinute int
	OrderCacheTTL      time.Duration
	AllowedOrigins     []string
}

const (
	DataSourceMongo    = "mongo"
	DataSourcePostgres = "postgres"
)

var (
	App            Settings
	ReportLocation = time.Local
)

// Load reads the environment into App. Call after godotenv has run.
func Load() Settings {
	App = Settings{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8081"),
		DataSource:         strings.ToLower(getEnv("DATA_SOURCE", DataSourceMongo)),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:        getEnv("MONGO_DB_NAME", "navedhana"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		StorefrontSecret:   os.Getenv("STOREFRONT_JWT_SECRET"),
		ReportTimezone:     getEnv("REPORT_TIMEZONE", "Asia/Kolkata"),
		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 100),
		OrderCacheTTL:      time.Duration(getEnvAsInt("ORDER_CACHE_TTL_SECONDS", 30)) * time.Second,
		AllowedOrigins:     splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")),
	}

	loc, err := time.LoadLocation(App.ReportTimezone)
	if err != nil {
		log.Printf("⚠️ REPORT_TIMEZONE %q invalid (%v), using server local time", App.ReportTimezone, err)
		loc = time.Local
	}
	ReportLocation = loc

	return App
}

func (s Settings) IsProduction() bool {
	return s.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		log.Printf("⚠️ %s=%q is not a number, using %d", key, value, defaultValue)
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
