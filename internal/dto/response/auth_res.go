package response

import (
	"time"

	"storefront/internal/data/entity"
)

type Address struct {
	ID        string `json:"id"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Region    string `json:"region"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}

func FromAddress(a *entity.Address) *Address {
	if a == nil {
		return nil
	}
	return &Address{
		ID:        a.ID.String(),
		Address:   a.Address,
		City:      a.City,
		Region:    a.Region,
		ZipCode:   a.ZipCode,
		Country:   a.Country,
		IsDefault: a.IsDefault,
	}
}

type Profile struct {
	ID              string     `json:"id"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	PhoneNumber     *string    `json:"phoneNumber"`
	ProfileImage    *string    `json:"profileImage"`
	Role            string     `json:"role"`
	Status          string     `json:"status"`
	LastActiveAt    *time.Time `json:"lastActiveAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	ShippingAddress *Address   `json:"shippingAddress"`
}

func FromUser(u *entity.User, defaultAddress *entity.Address) Profile {
	return Profile{
		ID:              u.ID.String(),
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Email:           u.Email,
		PhoneNumber:     u.PhoneNumber,
		ProfileImage:    u.ProfileImage,
		Role:            string(u.Role),
		Status:          string(u.Status),
		LastActiveAt:    u.LastActiveAt,
		CreatedAt:       u.CreatedAt,
		ShippingAddress: FromAddress(defaultAddress),
	}
}

type Auth struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}
