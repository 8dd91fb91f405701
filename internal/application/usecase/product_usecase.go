package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/suryatek/quotation-api/internal/application/dto"
	"github.com/suryatek/quotation-api/internal/domain"
	"github.com/suryatek/quotation-api/internal/domain/entity"
	"github.com/suryatek/quotation-api/internal/domain/repository"
)

// ProductUseCase CRUD for the preset catalog the quotation form pulls from.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase wires the use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create validates and persists a new catalog product.
func (uc *ProductUseCase) Create(in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" || in.UnitPrice < 0 || in.GSTRate < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		HSNCode:     in.HSNCode,
		Unit:        in.Unit,
		UnitPrice:   in.UnitPrice,
		GSTRate:     in.GSTRate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID loads one product.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

// List returns catalog products with pagination.
func (uc *ProductUseCase) List(limit, offset int) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Update rewrites the editable fields of a product.
func (uc *ProductUseCase) Update(id string, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.Name) == "" || in.UnitPrice < 0 || in.GSTRate < 0 {
		return nil, domain.ErrInvalidInput
	}
	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.HSNCode = in.HSNCode
	p.Unit = in.Unit
	p.UnitPrice = in.UnitPrice
	p.GSTRate = in.GSTRate
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Delete removes a product from the catalog. Saved quotations keep their
// line-item snapshots, so deleting a preset never mutates old quotes.
func (uc *ProductUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		HSNCode:     p.HSNCode,
		Unit:        p.Unit,
		UnitPrice:   p.UnitPrice,
		GSTRate:     p.GSTRate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
