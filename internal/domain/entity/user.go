package entity

import "time"

// User roles.
const (
	RoleAdmin = "admin"
	RoleSales = "sales"
)

// User is an API account.
type User struct {
	ID           string // uuid
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
