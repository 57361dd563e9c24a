package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/navedhana-tech/navedhana-cms-backend/config"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
	"github.com/navedhana-tech/navedhana-cms-backend/services"
)

func init() {
	_ = godotenv.Load()
}

type product struct {
	title    string
	category string
	price    float64
}

var catalog = []product{
	{"Tomato", "vegetables", 40},
	{"Onion", "vegetables", 35},
	{"Potato", "vegetables", 30},
	{"Spinach", "leafy greens", 25},
	{"Coriander", "leafy greens", 15},
	{"Banana", "fruits", 60},
	{"Mango", "fruits", 120},
	{"Milk", "dairy", 30},
	{"Curd", "dairy", 45},
	{"Organic Tomato", "", 90}, // older listings carry no category
}

var cities = []string{"Hyderabad", "Warangal", "Karimnagar", "Nizamabad", "Khammam", "Vijayawada", "Guntur", ""}

var statuses = []models.OrderStatus{
	models.OrderStatusDelivered, models.OrderStatusDelivered, models.OrderStatusDelivered,
	models.OrderStatusPlaced, models.OrderStatusHarvested, models.OrderStatusOutForDelivery,
	models.OrderStatusCancelled,
}

type demoCustomer struct {
	id    string
	name  string
	phone string
	city  string
}

// main writes demo orders and replays them as storefront activity so the
// customer records carry realistic scores.
// Usage: go run ./cmd/seed -orders 300 -customers 40 -days 120
func main() {
	orderCount := flag.Int("orders", 300, "number of orders to create")
	customerCount := flag.Int("customers", 40, "number of customers")
	days := flag.Int("days", 120, "spread orders over this many trailing days")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("NAVEDHANA - Demo Data Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")

	config.Load()
	config.InitDB()
	defer config.CloseDB()

	store, err := services.OpenStore()
	if err != nil {
		log.Fatalf("❌ Failed to open data source: %v", err)
	}
	defer config.DisconnectMongo()

	writer, ok := store.(services.OrderWriter)
	if !ok {
		log.Fatalf("❌ data source %q cannot insert orders", config.App.DataSource)
	}

	rng := rand.New(rand.NewSource(*seed))
	customers := make([]demoCustomer, *customerCount)
	for i := range customers {
		customers[i] = demoCustomer{
			id:    uuid.NewString(),
			name:  fmt.Sprintf("Customer %02d", i+1),
			phone: fmt.Sprintf("9%09d", rng.Intn(1_000_000_000)),
			city:  cities[rng.Intn(len(cities))],
		}
	}

	now := time.Now().In(config.ReportLocation)
	orders := make([]models.Order, 0, *orderCount)
	owners := make([]demoCustomer, 0, *orderCount)
	for i := 0; i < *orderCount; i++ {
		cust := customers[rng.Intn(len(customers))]
		at := now.Add(-time.Duration(rng.Int63n(int64(*days) * int64(24*time.Hour))))
		orders = append(orders, demoOrder(rng, cust, at, i))
		owners = append(owners, cust)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := writer.InsertOrders(ctx, orders); err != nil {
		log.Fatalf("❌ Failed to insert orders: %v", err)
	}
	log.Printf("✓ Inserted %d orders", len(orders))

	// Replay in time order with the tracker clock pinned to each event
	var simNow time.Time
	tracker := services.NewActivityTracker(store, func() time.Time { return simNow })
	replayed := 0
	for _, idx := range chronological(orders) {
		o, cust := orders[idx], owners[idx]
		at := *o.Timestamp

		for v := rng.Intn(4) + 1; v > 0; v-- {
			simNow = at.Add(-time.Duration(v) * time.Minute)
			track(ctx, tracker, cust.id, models.ActivityEvent{Type: models.EventPageVisit})
		}
		simNow = at.Add(-30 * time.Second)
		track(ctx, tracker, cust.id, models.ActivityEvent{Type: models.EventProductView, Product: o.CartItems[0].Title})
		if rng.Intn(3) == 0 {
			track(ctx, tracker, cust.id, models.ActivityEvent{Type: models.EventSearch, Query: o.CartItems[0].Title})
		}
		track(ctx, tracker, cust.id, models.ActivityEvent{Type: models.EventCartAction})

		if o.IsCancelled() {
			continue
		}
		simNow = at
		track(ctx, tracker, cust.id, models.ActivityEvent{Type: models.EventOrderPlaced, OrderID: o.ID, Amount: o.GrandTotal})
		replayed++
	}
	log.Printf("✓ Replayed %d placed orders as customer activity", replayed)

	for _, cust := range customers {
		rec, err := store.GetCustomer(ctx, cust.id)
		if err != nil {
			continue
		}
		rec.Name, rec.PhoneNumber = cust.name, cust.phone
		if err := store.SaveCustomer(ctx, rec); err != nil {
			log.Printf("⚠️ Failed to name customer %s: %v", cust.id, err)
		}
	}

	fmt.Println()
	fmt.Println("✅ Demo data seeded")
	if config.App.JWTSecret != "" {
		if err := services.InitJWTService(config.App.JWTSecret); err == nil {
			token, err := services.GetJWTService().GenerateAdminJWT(uuid.NewString(), "dev@navedhana.local", services.RoleAdmin, 24*time.Hour)
			if err == nil {
				fmt.Println("Dev admin token (24h):")
				fmt.Println(token)
			}
		}
	}
}

func demoOrder(rng *rand.Rand, cust demoCustomer, at time.Time, i int) models.Order {
	lines := rng.Intn(4) + 1
	items := make([]models.CartItem, 0, lines)
	var subtotal float64
	for j := 0; j < lines; j++ {
		p := catalog[rng.Intn(len(catalog))]
		qty := rng.Intn(5) + 1
		items = append(items, models.CartItem{Title: p.title, Category: p.category, Price: p.price, Quantity: qty})
		subtotal += p.price * float64(qty)
	}

	delivery := 0.0
	if subtotal < 300 {
		delivery = 30
	}
	discount := 0.0
	if rng.Intn(5) == 0 {
		discount = 20
	}

	o := models.Order{
		ID:             uuid.NewString(),
		Status:         statuses[rng.Intn(len(statuses))],
		CartItems:      items,
		AddressInfo:    models.AddressInfo{Name: cust.name, PhoneNumber: cust.phone, City: cust.city, Pincode: "500001"},
		Subtotal:       subtotal,
		DeliveryCharge: delivery,
		DiscountAmount: discount,
		GrandTotal:     subtotal + delivery - discount,
	}
	// every tenth order mimics legacy documents with only a date string
	if i%10 == 0 {
		o.Date = at.Format("1/2/2006, 3:04:05 PM")
	} else {
		ts := at
		o.Timestamp = &ts
	}
	return o
}

// chronological returns the indexes of dated orders, oldest first
func chronological(orders []models.Order) []int {
	idx := make([]int, 0, len(orders))
	for i, o := range orders {
		if o.Timestamp != nil {
			idx = append(idx, i)
		}
	}
	sort.Slice(idx, func(a, b int) bool {
		return orders[idx[a]].Timestamp.Before(*orders[idx[b]].Timestamp)
	})
	return idx
}

func track(ctx context.Context, t *services.ActivityTracker, id string, e models.ActivityEvent) {
	if _, err := t.Track(ctx, id, e); err != nil {
		log.Printf("⚠️ %s event for %s not applied: %v", e.Type, id, err)
	}
}
