package response

import (
	"time"

	"storefront/internal/data/entity"
	"storefront/internal/data/repository"
)

type OrderItem struct {
	ID              string   `json:"id"`
	ProductID       string   `json:"productId"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	Quantity        int      `json:"quantity"`
	Image           string   `json:"image"`
	SelectedOptions []string `json:"selectedOptions"`
}

func FromOrderItems(items []*entity.OrderItem) []OrderItem {
	out := make([]OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, OrderItem{
			ID:              item.ID.String(),
			ProductID:       item.ProductID,
			Name:            item.Name,
			Price:           item.Price.InexactFloat64(),
			Quantity:        item.Quantity,
			Image:           item.Image,
			SelectedOptions: item.SelectedOptions,
		})
	}
	return out
}

type OrderCustomer struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phoneNumber"`
}

type Order struct {
	ID              string         `json:"id"`
	Status          string         `json:"status"`
	PaymentStatus   string         `json:"paymentStatus"`
	Subtotal        float64        `json:"subtotal"`
	Tax             float64        `json:"tax"`
	ShippingCost    float64        `json:"shippingCost"`
	Total           float64        `json:"total"`
	TrackingNumber  *string        `json:"trackingNumber"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	Items           []OrderItem    `json:"items"`
	ShippingAddress *Address       `json:"shippingAddress"`
	Customer        *OrderCustomer `json:"customer,omitempty"`
}

func FromOrder(o *entity.Order, items []*entity.OrderItem, address *entity.Address) Order {
	return Order{
		ID:              o.ID,
		Status:          string(o.Status),
		PaymentStatus:   string(o.PaymentStatus),
		Subtotal:        o.Subtotal.InexactFloat64(),
		Tax:             o.Tax.InexactFloat64(),
		ShippingCost:    o.ShippingCost.InexactFloat64(),
		Total:           o.Total.InexactFloat64(),
		TrackingNumber:  o.TrackingNumber,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Items:           FromOrderItems(items),
		ShippingAddress: FromAddress(address),
	}
}

// formatOrderDate renders the display date, e.g. "Aug 28, 2026".
func formatOrderDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// OrderTracking exposes only what the public tracking view needs. The
// order code itself is the access credential.
type OrderTracking struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"paymentStatus"`
	TrackingNumber *string   `json:"trackingNumber"`
	CreatedAt      time.Time `json:"createdAt"`
	Date           string    `json:"date"`
}

func FromOrderTracking(o *entity.Order) OrderTracking {
	return OrderTracking{
		ID:             o.ID,
		Status:         string(o.Status),
		PaymentStatus:  string(o.PaymentStatus),
		TrackingNumber: o.TrackingNumber,
		CreatedAt:      o.CreatedAt,
		Date:           formatOrderDate(o.CreatedAt),
	}
}

type CheckoutResult struct {
	ID    string  `json:"id"`
	Total float64 `json:"total"`
}

type Customer struct {
	Profile
	OrderCount int64   `json:"orderCount"`
	TotalSpent float64 `json:"totalSpent"`
}

func FromCustomerSummaries(summaries []*repository.CustomerSummary) []Customer {
	out := make([]Customer, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, Customer{
			Profile:    FromUser(&s.User, s.Address),
			OrderCount: s.OrderCount,
			TotalSpent: s.TotalSpent.InexactFloat64(),
		})
	}
	return out
}
