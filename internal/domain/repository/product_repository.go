package repository

import "github.com/jhoicas/inventario-local/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// AdjustQuantity es la única vía de mutación de cantidad: aplica el delta,
// rechaza resultados negativos y actualiza el timestamp de modificación.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	AdjustQuantity(productID string, delta int64) (*entity.Product, error)
	List(includeInactive bool) ([]*entity.Product, error)
	ListByCategory(categoryID string) ([]*entity.Product, error)
	Search(term string) ([]*entity.Product, error)
	Remove(id string) error
	Archive(id string) error
}
