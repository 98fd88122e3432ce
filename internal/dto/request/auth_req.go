package request

type Register struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ShippingAddress is shared by profile updates and checkout. Every
// field is required once the block is supplied at all.
type ShippingAddress struct {
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Region  string `json:"region" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// UpdateProfile is partial: nil fields are left untouched.
type UpdateProfile struct {
	FirstName       *string          `json:"firstName" validate:"omitempty,max=100"`
	LastName        *string          `json:"lastName" validate:"omitempty,max=100"`
	Email           *string          `json:"email" validate:"omitempty,email"`
	PhoneNumber     *string          `json:"phoneNumber"`
	ProfileImage    *string          `json:"profileImage"`
	ShippingAddress *ShippingAddress `json:"shippingAddress" validate:"omitempty"`
}
