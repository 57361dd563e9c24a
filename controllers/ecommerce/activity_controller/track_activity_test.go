package activity_controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
	"github.com/navedhana-tech/navedhana-cms-backend/services"
)

type memCustomers struct {
	records map[string]models.CustomerActivity
	err     error
}

func (m *memCustomers) ListCustomers(ctx context.Context) ([]models.CustomerActivity, error) {
	return nil, m.err
}

func (m *memCustomers) GetCustomer(ctx context.Context, id string) (*models.CustomerActivity, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.records[id]
	if !ok {
		return nil, services.ErrCustomerNotFound
	}
	return &c, nil
}

func (m *memCustomers) SaveCustomer(ctx context.Context, c *models.CustomerActivity) error {
	if m.err != nil {
		return m.err
	}
	m.records[c.ID] = *c
	return nil
}

func setup(t *testing.T, tracker *services.ActivityTracker) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	prev := services.GetActivityTracker()
	services.SetActivityTracker(tracker)
	t.Cleanup(func() { services.SetActivityTracker(prev) })

	r := gin.New()
	r.POST("/activity/:customerId", TrackActivity)
	return r
}

func post(r *gin.Engine, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestTrackActivity(t *testing.T) {
	now := time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC)
	store := &memCustomers{records: map[string]models.CustomerActivity{}}
	r := setup(t, services.NewActivityTracker(store, func() time.Time { return now }))

	w := post(r, "/activity/cust-1", `{"type":"page_visit"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var env struct {
		Data models.CustomerActivity `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.Data.ID != "cust-1" || env.Data.PageVisits != 1 {
		t.Errorf("record = %+v", env.Data)
	}
	if env.Data.EngagementScore != 22 {
		t.Errorf("engagement = %d, want 22", env.Data.EngagementScore)
	}
	if _, ok := store.records["cust-1"]; !ok {
		t.Error("record was not saved")
	}
}

func TestTrackActivityRejects(t *testing.T) {
	store := &memCustomers{records: map[string]models.CustomerActivity{}}
	r := setup(t, services.NewActivityTracker(store, nil))

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"type":`},
		{name: "unknown type", body: `{"type":"wishlist"}`},
		{name: "view without product", body: `{"type":"product_view"}`},
		{name: "order without id", body: `{"type":"order_placed","amount":120}`},
		{name: "negative amount", body: `{"type":"order_placed","order_id":"o1","amount":-5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := post(r, "/activity/cust-1", tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
	if len(store.records) != 0 {
		t.Errorf("rejected events touched the store: %+v", store.records)
	}
}

func TestTrackActivityUnavailable(t *testing.T) {
	r := setup(t, nil)
	if w := post(r, "/activity/cust-1", `{"type":"cart_action"}`); w.Code != http.StatusServiceUnavailable {
		t.Errorf("no tracker: status = %d, want 503", w.Code)
	}

	store := &memCustomers{records: map[string]models.CustomerActivity{}, err: errors.New("down")}
	r = setup(t, services.NewActivityTracker(store, nil))
	if w := post(r, "/activity/cust-1", `{"type":"cart_action"}`); w.Code != http.StatusServiceUnavailable {
		t.Errorf("store down: status = %d, want 503", w.Code)
	}
}
