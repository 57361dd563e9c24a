package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/services"
	"github.com/navedhana-tech/navedhana-cms-backend/utils"
	"github.com/redis/go-redis/v9"
)

func ok(c *gin.Context) { c.String(http.StatusOK, c.GetString("adminRole")+c.GetString("customerID")) }

func do(r *gin.Engine, method, target, bearer string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAdminAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	if err := services.InitJWTService("admin-secret"); err != nil {
		t.Fatal(err)
	}
	jwtSvc := services.GetJWTService()
	admin, _ := jwtSvc.GenerateAdminJWT("a1", "ops@navedhana.local", services.RoleAdmin, time.Hour)
	analyst, _ := jwtSvc.GenerateAdminJWT("a2", "bi@navedhana.local", services.RoleAnalyst, time.Hour)
	shopper, _ := jwtSvc.GenerateAdminJWT("a3", "shop@navedhana.local", "customer", time.Hour)

	r := gin.New()
	r.Use(AdminAuthMiddleware())
	r.GET("/overview", ok)
	r.GET("/export", RequireAdminRole(), ok)

	tests := []struct {
		name   string
		target string
		token  string
		want   int
	}{
		{name: "no token", target: "/overview", want: http.StatusUnauthorized},
		{name: "garbage token", target: "/overview", token: "x.y.z", want: http.StatusUnauthorized},
		{name: "unknown role", target: "/overview", token: shopper, want: http.StatusUnauthorized},
		{name: "analyst reads", target: "/overview", token: analyst, want: http.StatusOK},
		{name: "analyst cannot export", target: "/export", token: analyst, want: http.StatusForbidden},
		{name: "admin exports", target: "/export", token: admin, want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := do(r, http.MethodGet, tt.target, tt.token); w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestCustomerAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/activity/:customerId", CustomerAuthMiddleware("shop-secret"), ok)

	mine, _ := utils.GenerateCustomerJWT("shop-secret", "cust-1", time.Hour)
	forged, _ := utils.GenerateCustomerJWT("wrong-secret", "cust-1", time.Hour)

	tests := []struct {
		name   string
		target string
		token  string
		want   int
	}{
		{name: "own record", target: "/activity/cust-1", token: mine, want: http.StatusOK},
		{name: "someone else", target: "/activity/cust-2", token: mine, want: http.StatusForbidden},
		{name: "forged", target: "/activity/cust-1", token: forged, want: http.StatusUnauthorized},
		{name: "missing", target: "/activity/cust-1", want: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, tt.target, tt.token)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
			if tt.want == http.StatusOK && w.Body.String() != "cust-1" {
				t.Errorf("customerID = %q", w.Body.String())
			}
		})
	}
}

// counterClient answers Incr from a fixed count; everything else is unused
type counterClient struct {
	redis.Cmdable
	count int64
	err   error
}

func (c *counterClient) Incr(ctx context.Context, key string) *redis.IntCmd {
	return redis.NewIntResult(c.count, c.err)
}

func (c *counterClient) Get(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult(strconv.FormatInt(time.Now().Add(30*time.Second).Unix(), 10), nil)
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		client redis.Cmdable
		want   int
	}{
		{name: "no redis", client: nil, want: http.StatusOK},
		{name: "redis error fails open", client: &counterClient{err: errors.New("dial tcp: refused")}, want: http.StatusOK},
		{name: "under limit", client: &counterClient{count: 5}, want: http.StatusOK},
		{name: "over limit", client: &counterClient{count: 6}, want: http.StatusTooManyRequests},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/overview", RateLimiter(tt.client, 5, time.Minute), ok)

			if w := do(r, http.MethodGet, "/overview", ""); w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRequestLoggerSetsID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/health", ok)

	w := do(r, http.MethodGet, "/health", "")
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID")
	}
}
