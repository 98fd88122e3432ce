package entity

import (
	"time"
)

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "Active"
	UserStatusInactive UserStatus = "Inactive"
	UserStatusBlocked  UserStatus = "Blocked"
)

type User struct {
	Base
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password"`
	PhoneNumber  *string    `db:"phone_number"`
	ProfileImage *string    `db:"profile_image"`
	Role         UserRole   `db:"role"`
	Status       UserStatus `db:"status"`
	LastActiveAt *time.Time `db:"last_active_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
