package analytics

import (
	"log"
	"strings"
	"time"

	"github.com/navedhana-tech/navedhana-cms-backend/models"
)

// DateRange is an inclusive [Start, End] window
type DateRange struct {
	Start time.Time
	End   time.Time
}

// LastNDays is the window [now - days, now]
func LastNDays(now time.Time, days int) DateRange {
	if days < 0 {
		days = 0
	}
	return DateRange{Start: now.AddDate(0, 0, -days), End: now}
}

// ExplicitRange covers whole calendar days from start to end in loc.
// Swapped bounds are put back in order.
func ExplicitRange(start, end time.Time, loc *time.Location) DateRange {
	if loc == nil {
		loc = time.Local
	}
	if end.Before(start) {
		start, end = end, start
	}
	s := start.In(loc)
	e := end.In(loc)
	return DateRange{
		Start: time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, loc),
		End:   time.Date(e.Year(), e.Month(), e.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), loc),
	}
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Layouts accepted for the free-text order date, tried in order
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006, 3:04:05 PM",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Mon Jan 02 2006",
	"Mon Jan 02 2006 15:04:05",
	time.RFC1123,
	time.RFC1123Z,
}

// ParseOrderDate parses a free-text date in loc
func ParseOrderDate(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	// JS Date.toString() appends " GMT+0530 (India Standard Time)"
	if i := strings.Index(raw, " GMT"); i > 0 {
		raw = raw[:i]
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// EffectiveDate prefers the structured timestamp and falls back to the date string
func EffectiveDate(o models.Order, loc *time.Location) (time.Time, bool) {
	if o.Timestamp != nil && !o.Timestamp.IsZero() {
		return *o.Timestamp, true
	}
	return ParseOrderDate(o.Date, loc)
}

// FilterByDateRange keeps the orders whose effective date falls inside r.
// Orders with no parseable date cannot be placed in a period; they are
// dropped with a warning and counted in skipped.
func FilterByDateRange(orders []models.Order, r DateRange, loc *time.Location) (kept []models.Order, skipped int) {
	kept = make([]models.Order, 0, len(orders))
	for _, o := range orders {
		t, ok := EffectiveDate(o, loc)
		if !ok {
			log.Printf("[analytics.date-filter] WARN order id=%q has no parseable date, skipped", o.ID)
			skipped++
			continue
		}
		if r.Contains(t) {
			kept = append(kept, o)
		}
	}
	return kept, skipped
}
