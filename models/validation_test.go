package models

import (
	"math"
	"testing"
	"time"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    OrderStatus
		wantErr bool
	}{
		{raw: "placed", want: OrderStatusPlaced},
		{raw: " Delivered ", want: OrderStatusDelivered},
		{raw: "harvested", want: OrderStatusHarvested},
		{raw: "out for delivery", want: OrderStatusOutForDelivery},
		{raw: "out_for_delivery", want: OrderStatusOutForDelivery},
		{raw: "Out-For-Delivery", want: OrderStatusOutForDelivery},
		{raw: "canceled", want: OrderStatusCancelled},
		{raw: "CANCELLED", want: OrderStatusCancelled},
		{raw: "", wantErr: true},
		{raw: "   ", wantErr: true},
		{raw: "refunded", wantErr: true},
		{raw: "leafy", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseOrderStatus(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("status = %q, want %q", got, tt.want)
			}
		})
	}
}

func validOrder() Order {
	ts := time.Date(2026, time.October, 10, 9, 0, 0, 0, time.UTC)
	return Order{
		ID:         "o1",
		Timestamp:  &ts,
		Status:     "Out_For_Delivery",
		CartItems:  []CartItem{{Title: "Tomato", Category: "Vegetables", Price: 40, Quantity: 2}},
		Subtotal:   80,
		GrandTotal: 110,
	}
}

func TestNormalizeOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *Order)
		wantErr bool
	}{
		{name: "valid", mutate: func(o *Order) {}},
		{name: "missing id", mutate: func(o *Order) { o.ID = "" }, wantErr: true},
		{name: "missing status", mutate: func(o *Order) { o.Status = "" }, wantErr: true},
		{name: "unknown status", mutate: func(o *Order) { o.Status = "returned" }, wantErr: true},
		{name: "negative grand total", mutate: func(o *Order) { o.GrandTotal = -1 }, wantErr: true},
		{name: "infinite grand total", mutate: func(o *Order) { o.GrandTotal = math.Inf(1) }, wantErr: true},
		{name: "nan grand total", mutate: func(o *Order) { o.GrandTotal = math.NaN() }, wantErr: true},
		{name: "infinite price", mutate: func(o *Order) { o.CartItems[0].Price = math.Inf(1) }, wantErr: true},
		{name: "negative price", mutate: func(o *Order) { o.CartItems[0].Price = -5 }, wantErr: true},
		{name: "negative quantity", mutate: func(o *Order) { o.CartItems[0].Quantity = -1 }, wantErr: true},
		{name: "infinite discount", mutate: func(o *Order) { o.DiscountAmount = math.Inf(-1) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOrder()
			tt.mutate(&o)

			err := NormalizeOrder(&o)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && o.Status != OrderStatusOutForDelivery {
				t.Errorf("status = %q, want canonical %q", o.Status, OrderStatusOutForDelivery)
			}
		})
	}
}

func TestValidateActivityEventRejectsNonFiniteAmount(t *testing.T) {
	e := ActivityEvent{Type: EventOrderPlaced, OrderID: "o1", Amount: math.Inf(1)}
	if err := ValidateActivityEvent(e); err == nil {
		t.Error("expected +Inf amount to be rejected")
	}
	e.Amount = 120
	if err := ValidateActivityEvent(e); err != nil {
		t.Errorf("valid event rejected: %v", err)
	}
}
