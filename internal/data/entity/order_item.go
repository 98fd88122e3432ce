package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem snapshots product name/price/image at order time so later
// product edits or deletion never change historical orders.
type OrderItem struct {
	ID              uuid.UUID       `db:"id"`
	OrderID         string          `db:"order_id"`
	ProductID       string          `db:"product_id"`
	Name            string          `db:"name"`
	Price           decimal.Decimal `db:"price"`
	Quantity        int             `db:"quantity"`
	Image           string          `db:"image"`
	SelectedOptions []string        `db:"selected_options"`
}
