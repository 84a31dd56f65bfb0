package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

// Valores por defecto al crear productos.
const (
	defaultMinQuantity = 5
	defaultMaxQuantity = 100
	defaultLocation    = "Almacén General"
	defaultCurrency    = "USD"
)

// ProductUseCase casos de uso CRUD para productos. La cantidad en inventario
// solo se muta vía el ledger de movimientos; aquí nunca se toca directamente.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	catalogTx    CatalogTxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, catalogTx CatalogTxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, catalogTx: catalogTx}
}

// Create crea un producto nuevo. Falla con ErrMissingField si faltan nombre,
// SKU o categoría; con ErrDuplicateSKU si el SKU ya existe (activo o inactivo);
// con ErrNotFound si la categoría no existe.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" || in.CategoryID == "" {
		return nil, domain.ErrMissingField
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	minQty := int64(defaultMinQuantity)
	if in.MinQuantity != nil {
		minQty = *in.MinQuantity
	}
	maxQty := int64(defaultMaxQuantity)
	if in.MaxQuantity != nil {
		maxQty = *in.MaxQuantity
	}
	location := in.Location
	if location == "" {
		location = defaultLocation
	}

	now := time.Now()
	product := &entity.Product{
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Price: entity.ProductPrice{
			PurchasePrice: in.PurchasePrice,
			SellPrice:     in.SellPrice,
			Currency:      defaultCurrency,
			Margin:        entity.ComputeMargin(in.PurchasePrice, in.SellPrice),
		},
		Inventory: entity.ProductInventory{
			Quantity:    in.Quantity,
			MinQuantity: minQty,
			MaxQuantity: maxQty,
			Location:    location,
			LastUpdated: now,
		},
		Status:    entity.ProductStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// GetBySKU obtiene un producto por su código SKU.
func (uc *ProductUseCase) GetBySKU(sku string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualización parcial. Los campos de precio e inventario se combinan
// campo a campo sobre los sub-objetos existentes. La cantidad no se toca aquí.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	if in.PurchasePrice != nil || in.SellPrice != nil {
		if in.PurchasePrice != nil {
			product.Price.PurchasePrice = *in.PurchasePrice
		}
		if in.SellPrice != nil {
			product.Price.SellPrice = *in.SellPrice
		}
		product.Price.Margin = entity.ComputeMargin(product.Price.PurchasePrice, product.Price.SellPrice)
	}
	if in.MinQuantity != nil {
		product.Inventory.MinQuantity = *in.MinQuantity
	}
	if in.MaxQuantity != nil {
		product.Inventory.MaxQuantity = *in.MaxQuantity
	}
	if in.Location != nil {
		product.Inventory.Location = *in.Location
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Si el ledger tiene movimientos que lo referencian
// se archiva (status INACTIVE, conserva el registro para la auditoría); si no,
// se elimina permanentemente. Ambas ramas se deciden en la misma unidad.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*dto.DeleteProductResponse, error) {
	var outcome entity.DeleteOutcome
	err := uc.catalogTx.RunCatalog(ctx, func(
		_ repository.CategoryRepository,
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		refs, err := movRepo.CountByProduct(id)
		if err != nil {
			return err
		}
		if refs > 0 {
			outcome = entity.DeleteOutcomeArchived
			return productRepo.Archive(id)
		}
		outcome = entity.DeleteOutcomeRemoved
		return productRepo.Remove(id)
	})
	if err != nil {
		return nil, err
	}
	msg := "producto eliminado permanentemente"
	if outcome == entity.DeleteOutcomeArchived {
		msg = "producto archivado (contiene movimientos de inventario)"
	}
	return &dto.DeleteProductResponse{Outcome: string(outcome), Message: msg}, nil
}

// Activate reactiva un producto inactivo.
func (uc *ProductUseCase) Activate(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Status = entity.ProductStatusActive
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos; por defecto solo activos.
func (uc *ProductUseCase) List(includeInactive bool) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(includeInactive)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListByCategory lista productos activos de una categoría.
func (uc *ProductUseCase) ListByCategory(categoryID string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Search busca productos activos por nombre, SKU o descripción.
func (uc *ProductUseCase) Search(term string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.Search(term)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// LowStock productos activos en o bajo su stock mínimo.
func (uc *ProductUseCase) LowStock() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(false)
	if err != nil {
		return nil, err
	}
	var out []dto.ProductResponse
	for _, p := range list {
		if p.IsLowStock() {
			out = append(out, *toProductResponse(p))
		}
	}
	return out, nil
}

// OutOfStock productos activos con cantidad 0.
func (uc *ProductUseCase) OutOfStock() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(false)
	if err != nil {
		return nil, err
	}
	var out []dto.ProductResponse
	for _, p := range list {
		if p.Inventory.Quantity == 0 {
			out = append(out, *toProductResponse(p))
		}
	}
	return out, nil
}

// Stats estadísticas agregadas del catálogo.
func (uc *ProductUseCase) Stats() (*dto.ProductStatsResponse, error) {
	all, err := uc.repo.List(true)
	if err != nil {
		return nil, err
	}
	stats := &dto.ProductStatsResponse{
		TotalProducts:  len(all),
		InventoryValue: decimal.Zero,
		AverageMargin:  decimal.Zero,
	}
	marginSum := decimal.Zero
	marginCount := 0
	for _, p := range all {
		if !p.IsActive() {
			stats.InactiveProducts++
			continue
		}
		stats.ActiveProducts++
		stats.TotalItems += p.Inventory.Quantity
		qty := decimal.NewFromInt(p.Inventory.Quantity)
		stats.InventoryValue = stats.InventoryValue.Add(p.Price.SellPrice.Mul(qty))
		if p.IsLowStock() {
			stats.LowStockCount++
		}
		if p.Inventory.Quantity == 0 {
			stats.OutOfStockCount++
		}
		if !p.Price.Margin.IsZero() {
			marginSum = marginSum.Add(p.Price.Margin)
			marginCount++
		}
	}
	if marginCount > 0 {
		stats.AverageMargin = marginSum.Div(decimal.NewFromInt(int64(marginCount))).Round(2)
	}
	return stats, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		PurchasePrice: p.Price.PurchasePrice,
		SellPrice:     p.Price.SellPrice,
		Currency:      p.Price.Currency,
		Margin:        p.Price.Margin,
		Quantity:      p.Inventory.Quantity,
		MinQuantity:   p.Inventory.MinQuantity,
		MaxQuantity:   p.Inventory.MaxQuantity,
		Location:      p.Inventory.Location,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}
