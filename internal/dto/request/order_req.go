package request

import "github.com/shopspring/decimal"

// CartItem price is a pointer so an absent price fails validation
// instead of silently becoming zero. Quantity may be omitted; negative
// values still fail validation.
type CartItem struct {
	ProductID       string           `json:"productId" validate:"required"`
	Name            string           `json:"name" validate:"required"`
	Price           *decimal.Decimal `json:"price" validate:"required"`
	Quantity        int              `json:"quantity" validate:"omitempty,gt=0"`
	Image           string           `json:"image"`
	SelectedOptions []string         `json:"selectedOptions"`
}

// Qty treats an absent quantity as a single unit.
func (i CartItem) Qty() int {
	if i.Quantity == 0 {
		return 1
	}
	return i.Quantity
}

type CreateOrder struct {
	Items           []CartItem      `json:"items" validate:"required,min=1,dive"`
	ShippingAddress ShippingAddress `json:"shippingAddress" validate:"required"`
	PhoneNumber     *string         `json:"phoneNumber"`
}

type UpdateOrderStatus struct {
	Status string `json:"status" validate:"required"`
}
