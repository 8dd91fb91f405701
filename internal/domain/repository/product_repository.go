package repository

import "github.com/suryatek/quotation-api/internal/domain/entity"

// ProductRepository persistence port for the preset catalog.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
