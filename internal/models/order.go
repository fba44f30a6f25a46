package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Fulfillment order. "cancelled" sits outside the rank table; it is
// reachable from any non-terminal state via CanTransitionTo.
var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusConfirmed:  1,
	OrderStatusProcessing: 2,
	OrderStatusShipped:    3,
	OrderStatusDelivered:  4,
}

// Valid reports whether s is a recognized order status. List-filter
// values such as "all" are not statuses and fail here.
func (s OrderStatus) Valid() bool {
	if s == OrderStatusCancelled {
		return true
	}

	_, ok := orderStatusRank[s]

	return ok
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo enforces the forward fulfillment sequence
// pending -> confirmed -> processing -> shipped -> delivered. Skipping
// ahead is allowed, moving backwards is not. Cancellation is allowed
// from any non-terminal state. Terminal orders never transition.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if !target.Valid() || s.Terminal() {
		return false
	}

	if target == OrderStatusCancelled {
		return true
	}

	return orderStatusRank[target] > orderStatusRank[s]
}

// OrderItem is a point-in-time copy of the purchased item. Later edits
// or deletion of the catalog Item must not affect it.
type OrderItem struct {
	ItemID    uuid.UUID `json:"item_id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
}

type Order struct {
	ID             uuid.UUID   `json:"id"`
	UserID         uuid.UUID   `json:"user_id"`
	UserName       string      `json:"user_name,omitempty"`
	UserEmail      string      `json:"user_email,omitempty"`
	Items          []OrderItem `json:"items"`
	TotalAmount    float64     `json:"total_amount"`
	Status         OrderStatus `json:"status"`
	TrackingNumber string      `json:"tracking_number,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// Status arrives as a plain string so the order engine can answer
// InvalidArgument for unknown values itself.
type UpdateOrderStatusRequest struct {
	Status         string `json:"status" validate:"required"`
	TrackingNumber string `json:"tracking_number,omitempty" validate:"omitempty,max=64"`
}

type OrderListResponse struct {
	Orders []Order `json:"orders"`
	Total  int64   `json:"total"`
	Page   int     `json:"page"`
	Size   int     `json:"size"`
}

type DashboardStats struct {
	TotalOrders    int64                 `json:"total_orders"`
	TotalUsers     int64                 `json:"total_users"`
	TotalItems     int64                 `json:"total_items"`
	TotalRevenue   float64               `json:"total_revenue"`
	OrdersByStatus map[OrderStatus]int64 `json:"orders_by_status"`
	RecentOrders   []Order               `json:"recent_orders"`
}
