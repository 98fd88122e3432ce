package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusProcessing     OrderStatus = "Processing"
	OrderStatusShipped        OrderStatus = "Shipped"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
	OrderStatusCancelled      OrderStatus = "Cancelled"
	OrderStatusRefunded       OrderStatus = "Refunded"
)

// ValidOrderStatus reports whether s is one of the declared statuses.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusOutForDelivery,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusFailed   PaymentStatus = "Failed"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

// Order's primary key is the short human-readable code (AT-XXXXXXXX),
// which doubles as the public tracking capability.
type Order struct {
	ID                string          `db:"id"`
	CustomerID        uuid.UUID       `db:"customer_id"`
	ShippingAddressID *uuid.UUID      `db:"shipping_address_id"`
	Subtotal          decimal.Decimal `db:"subtotal"`
	Tax               decimal.Decimal `db:"tax"`
	ShippingCost      decimal.Decimal `db:"shipping_cost"`
	Total             decimal.Decimal `db:"total"`
	Status            OrderStatus     `db:"status"`
	PaymentStatus     PaymentStatus   `db:"payment_status"`
	TrackingNumber    *string         `db:"tracking_number"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}
