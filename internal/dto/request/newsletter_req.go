package request

type Subscribe struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Unsubscribe struct {
	Email string `json:"email" validate:"required,email"`
}
