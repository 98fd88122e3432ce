package entity

import "github.com/google/uuid"

// Address rows are append-only: updating a user's shipping address
// inserts a new default row rather than mutating the old one, so order
// history keeps pointing at the address it shipped to.
type Address struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Address   string    `db:"address"`
	City      string    `db:"city"`
	Region    string    `db:"region"`
	ZipCode   string    `db:"zip_code"`
	Country   string    `db:"country"`
	IsDefault bool      `db:"is_default"`
}
