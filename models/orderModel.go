package models

import "time"

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// Order is immutable once created. Items are value copies of the cart lines
// at checkout time, so later cart mutation cannot alter a persisted order.
type Order struct {
	ID                string      `json:"id"`
	Date              time.Time   `json:"date"`
	Status            OrderStatus `json:"status"`
	Total             int         `json:"total"`
	Items             []CartItem  `json:"items"`
	Tracking          string      `json:"tracking,omitempty"`
	EstimatedDelivery *time.Time  `json:"estimatedDelivery,omitempty"`
	DeliveryDate      *time.Time  `json:"deliveryDate,omitempty"`
}
