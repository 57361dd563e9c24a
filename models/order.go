package models

import (
	"fmt"
	"strings"
	"time"
)

// OrderStatus is the lifecycle state of a grocery order
type OrderStatus string

const (
	OrderStatusPlaced         OrderStatus = "placed"
	OrderStatusHarvested      OrderStatus = "harvested"
	OrderStatusOutForDelivery OrderStatus = "out for delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// OrderStatuses lists every status in lifecycle order
var OrderStatuses = []OrderStatus{
	OrderStatusPlaced,
	OrderStatusHarvested,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ParseOrderStatus maps a raw status string from the store onto the closed enum.
// Matching is case-insensitive and tolerates "_"/"-" separators and the US spelling "canceled".
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)

	switch s {
	case "":
		return "", fmt.Errorf("order status is missing")
	case "placed":
		return OrderStatusPlaced, nil
	case "harvested":
		return OrderStatusHarvested, nil
	case "out for delivery":
		return OrderStatusOutForDelivery, nil
	case "delivered":
		return OrderStatusDelivered, nil
	case "cancelled", "canceled":
		return OrderStatusCancelled, nil
	}
	return "", fmt.Errorf("unknown order status %q", raw)
}

func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CartItem is one line of an order's cart snapshot
type CartItem struct {
	Title    string  `json:"title,omitempty" bson:"title,omitempty"`
	Name     string  `json:"name,omitempty" bson:"name,omitempty"` // older documents carry name instead of title
	Category string  `json:"category,omitempty" bson:"category,omitempty"`
	Price    float64 `json:"price" bson:"price" validate:"finite,gte=0"`
	Quantity int     `json:"quantity" bson:"quantity" validate:"gte=0"`
}

// ProductName returns the title, falling back to name
func (i CartItem) ProductName() string {
	if t := strings.TrimSpace(i.Title); t != "" {
		return t
	}
	return strings.TrimSpace(i.Name)
}

// AddressInfo is the delivery address captured at checkout
type AddressInfo struct {
	Name        string `json:"name,omitempty" bson:"name,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	City        string `json:"city,omitempty" bson:"city,omitempty"`
	Pincode     string `json:"pincode,omitempty" bson:"pincode,omitempty"`
}

// Order is a checkout record as read from the store
type Order struct {
	ID             string      `json:"id" bson:"_id" validate:"required"`
	Timestamp      *time.Time  `json:"timestamp,omitempty" bson:"timestamp,omitempty"`
	Date           string      `json:"date,omitempty" bson:"date,omitempty"` // free-text fallback when timestamp is absent
	Status         OrderStatus `json:"status" bson:"status" validate:"required,order_status"`
	CartItems      []CartItem  `json:"cartItems" bson:"cartItems" validate:"dive"`
	AddressInfo    AddressInfo `json:"addressInfo" bson:"addressInfo"`
	Subtotal       float64     `json:"subtotal" bson:"subtotal" validate:"finite"`
	DeliveryCharge float64     `json:"deliveryCharge" bson:"deliveryCharge" validate:"finite"`
	DiscountAmount float64     `json:"discountAmount" bson:"discountAmount" validate:"finite"`
	GrandTotal     float64     `json:"grandTotal" bson:"grandTotal" validate:"finite,gte=0"`
}

func (o Order) IsCancelled() bool {
	return o.Status == OrderStatusCancelled
}

// OrderListRow is the admin listing view of an order
type OrderListRow struct {
	ID           string      `json:"id"`
	Status       OrderStatus `json:"status"`
	CustomerName string      `json:"customer_name"`
	PhoneNumber  string      `json:"phone_number"`
	City         string      `json:"city"`
	Pincode      string      `json:"pincode"`
	ItemCount    int         `json:"item_count"`
	GrandTotal   float64     `json:"grand_total"`
	OrderedAt    *time.Time  `json:"ordered_at,omitempty"` // nil when the order carries no parseable date
}

type OrderStatsBreakdown struct {
	Count       int    `json:"count"`
	Description string `json:"description"`
}

// OrderStatsResponse counts every order, cancelled included
type OrderStatsResponse struct {
	TotalOrders    int                 `json:"total_orders"`
	CompletionRate float64             `json:"completion_rate"`
	Placed         OrderStatsBreakdown `json:"placed"`
	Harvested      OrderStatsBreakdown `json:"harvested"`
	OutForDelivery OrderStatsBreakdown `json:"out_for_delivery"`
	Delivered      OrderStatsBreakdown `json:"delivered"`
	Cancelled      OrderStatsBreakdown `json:"cancelled"`
}
