package analytics_controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/navedhana-tech/navedhana-cms-backend/models"
)

func TestGetAnalyticsOverview(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantRevenue float64
		wantOrders  int
		wantSkipped int
	}{
		{name: "default 30 days", query: "", wantRevenue: 160, wantOrders: 3, wantSkipped: 1},
		{name: "explicit days", query: "?start=2026-10-13&end=2026-10-14", wantRevenue: 160, wantOrders: 2, wantSkipped: 1},
		{name: "all time", query: "?range=all", wantRevenue: 1230, wantOrders: 5, wantSkipped: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup(t, &stubStore{orders: fixtureOrders()})

			w, env := serve(t, "/overview", GetAnalyticsOverview, "/overview"+tt.query)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
			}

			var snap models.AnalyticsSnapshot
			if err := json.Unmarshal(env.Data, &snap); err != nil {
				t.Fatal(err)
			}
			if snap.Totals.TotalRevenue != tt.wantRevenue {
				t.Errorf("revenue = %v, want %v", snap.Totals.TotalRevenue, tt.wantRevenue)
			}
			if snap.Totals.TotalOrders != tt.wantOrders {
				t.Errorf("orders = %d, want %d", snap.Totals.TotalOrders, tt.wantOrders)
			}
			if snap.SkippedOrders != tt.wantSkipped {
				t.Errorf("skipped = %d, want %d", snap.SkippedOrders, tt.wantSkipped)
			}
		})
	}
}

func TestGetAnalyticsOverviewCompletionRate(t *testing.T) {
	setup(t, &stubStore{orders: fixtureOrders()})

	_, env := serve(t, "/overview", GetAnalyticsOverview, "/overview?range=30")
	var snap models.AnalyticsSnapshot
	if err := json.Unmarshal(env.Data, &snap); err != nil {
		t.Fatal(err)
	}
	if snap.Totals.CompletionRate != 33.33 {
		t.Errorf("completion = %v, want 33.33", snap.Totals.CompletionRate)
	}
	if snap.Totals.UniqueCustomers != 3 {
		t.Errorf("unique customers = %d, want 3", snap.Totals.UniqueCustomers)
	}
}

func TestAnalyticsNoData(t *testing.T) {
	tests := []struct {
		name  string
		store *stubStore
	}{
		{name: "no store"},
		{name: "read failure", store: &stubStore{err: errors.New("connection refused")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.store == nil {
				setup(t, nil)
			} else {
				setup(t, tt.store)
			}

			w, env := serve(t, "/overview", GetAnalyticsOverview, "/overview")
			if w.Code != http.StatusServiceUnavailable {
				t.Fatalf("status = %d, want 503", w.Code)
			}
			if !env.NoData || !env.Error {
				t.Errorf("envelope = %+v, want no_data error", env)
			}
		})
	}
}

func TestAnalyticsBadRange(t *testing.T) {
	setup(t, &stubStore{orders: fixtureOrders()})

	for _, target := range []string{"/overview?range=week", "/overview?start=2026-10-01", "/overview?start=x&end=y"} {
		w, env := serve(t, "/overview", GetAnalyticsOverview, target)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, w.Code)
		}
		if !env.Error || env.NoData {
			t.Errorf("%s: envelope = %+v", target, env)
		}
	}
}

func TestGetGeographicData(t *testing.T) {
	setup(t, &stubStore{orders: fixtureOrders()})

	w, env := serve(t, "/geo", GetGeographicData, "/geo")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var cities []models.CityRevenue
	if err := json.Unmarshal(env.Data, &cities); err != nil {
		t.Fatal(err)
	}
	if len(cities) != 2 {
		t.Fatalf("cities = %+v, want 2", cities)
	}
	if cities[0].City != "Hyderabad" || cities[0].Revenue != 100 {
		t.Errorf("first = %+v, want Hyderabad 100", cities[0])
	}
	if cities[1].City != "Unknown City" || !cities[1].CityDefaulted {
		t.Errorf("second = %+v, want defaulted Unknown City", cities[1])
	}
}

func TestGetProductStats(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantCode int
		want     map[string]int
	}{
		{name: "all includes undated", query: "", wantCode: http.StatusOK, want: map[string]int{"Tomato": 27, "Milk": 2, "Spinach": 2}},
		{name: "yesterday", query: "?filter=yesterday", wantCode: http.StatusOK, want: map[string]int{"Tomato": 2}},
		{name: "today is empty", query: "?filter=today", wantCode: http.StatusOK, want: map[string]int{}},
		{name: "custom without bounds", query: "?filter=custom", wantCode: http.StatusBadRequest},
		{name: "custom bad date", query: "?filter=custom&start=13-10-2026&end=2026-10-14", wantCode: http.StatusBadRequest},
		{name: "unknown filter", query: "?filter=fortnight", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup(t, &stubStore{orders: fixtureOrders()})

			w, env := serve(t, "/stats", GetProductStats, "/stats"+tt.query)
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d body=%s", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.want == nil {
				return
			}

			var stats []models.ProductStat
			if err := json.Unmarshal(env.Data, &stats); err != nil {
				t.Fatal(err)
			}
			got := make(map[string]int, len(stats))
			for _, s := range stats {
				got[s.ProductName] = s.TotalQuantity
			}
			if len(got) != len(tt.want) {
				t.Fatalf("stats = %+v, want %v", stats, tt.want)
			}
			for name, qty := range tt.want {
				if got[name] != qty {
					t.Errorf("%s quantity = %d, want %d", name, got[name], qty)
				}
			}
		})
	}
}

func TestExportReport(t *testing.T) {
	setup(t, &stubStore{orders: fixtureOrders()})

	w, _ := serve(t, "/export", ExportReport, "/export?report=categories&format=csv&range=all")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "navedhana-categories-20261015.csv") {
		t.Errorf("content disposition = %q", cd)
	}

	body := w.Body.String()
	if !strings.HasPrefix(body, "category,revenue\n") {
		t.Errorf("body = %q, want csv header", body)
	}
	if !strings.Contains(body, "Vegetables,1080") {
		t.Errorf("body = %q, want Vegetables,1080", body)
	}
}

func TestExportReportRejectsUnknown(t *testing.T) {
	setup(t, &stubStore{orders: fixtureOrders()})

	for _, target := range []string{"/export", "/export?report=refunds", "/export?report=daily&format=xlsx"} {
		w, _ := serve(t, "/export", ExportReport, target)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, w.Code)
		}
	}
}

func TestGetRecentExportsWithoutLog(t *testing.T) {
	setup(t, &stubStore{})

	w, env := serve(t, "/exports", GetRecentExports, "/exports")
	if w.Code != http.StatusServiceUnavailable || !env.NoData {
		t.Errorf("status = %d envelope = %+v, want 503 no_data", w.Code, env)
	}
}
