package repository

import "github.com/suryatek/quotation-api/internal/domain/entity"

// UserRepository persistence port for API accounts.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
