package domain

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleCleaner  UserRole = "cleaner"
	RoleCustomer UserRole = "customer"
)

// User is an account on the platform. Password is a plain demo credential
// and is never serialized to API responses.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      UserRole  `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
