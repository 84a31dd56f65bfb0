package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo      repository.CategoryRepository
	catalogTx CatalogTxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, catalogTx CatalogTxRunner) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, catalogTx: catalogTx}
}

// Create crea una categoría con icono y color por defecto si no se indican.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrMissingField
	}
	icon := in.Icon
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}
	color := in.Color
	if color == "" {
		color = entity.DefaultCategoryColor
	}
	now := time.Now()
	category := &entity.Category{
		Name:        in.Name,
		Description: in.Description,
		Icon:        icon,
		Color:       color,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría. Devuelve ErrNotFound si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// Update actualización parcial de una categoría.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.Icon != nil {
		category.Icon = *in.Icon
	}
	if in.Color != nil {
		category.Color = *in.Color
	}
	if in.Active != nil {
		category.Active = *in.Active
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría. Falla con ErrCategoryInUse si algún producto la
// referencia; la verificación y el borrado ocurren en la misma unidad.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.catalogTx.RunCatalog(ctx, func(
		categoryRepo repository.CategoryRepository,
		_ repository.ProductRepository,
		_ repository.MovementRepository,
	) error {
		category, err := categoryRepo.GetByID(id)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
		refs, err := categoryRepo.CountProducts(id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return domain.ErrCategoryInUse
		}
		return categoryRepo.Delete(id)
	})
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// ListWithProductCounts lista categorías con el total de productos asociados.
func (uc *CategoryUseCase) ListWithProductCounts() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		resp := toCategoryResponse(c)
		n, err := uc.repo.CountProducts(c.ID)
		if err != nil {
			return nil, err
		}
		resp.ProductCount = n
		items = append(items, *resp)
	}
	return items, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
