package usecase

import (
	"context"

	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

// CatalogTxRunner ejecuta operaciones de catálogo (productos y categorías) como
// unidad atómica sobre el documento. Se usa donde la decisión depende de más de
// una colección: eliminar producto (consulta movimientos) o categoría (consulta
// productos).
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error) error
}
