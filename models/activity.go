package models

// Storefront activity event types
const (
	EventPageVisit   = "page_visit"
	EventProductView = "product_view"
	EventSearch      = "search"
	EventCartAction  = "cart_action"
	EventOrderPlaced = "order_placed"
)

// ActivityEvent is one storefront interaction reported for a customer
type ActivityEvent struct {
	Type    string  `json:"type" validate:"required,oneof=page_visit product_view search cart_action order_placed"`
	Product string  `json:"product,omitempty" validate:"required_if=Type product_view"`
	Query   string  `json:"query,omitempty" validate:"required_if=Type search"`
	OrderID string  `json:"order_id,omitempty" validate:"required_if=Type order_placed"`
	Amount  float64 `json:"amount,omitempty" validate:"finite,gte=0"`
}
