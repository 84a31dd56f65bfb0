package inventory

import (
	"context"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

// StockPort capacidad mínima que el ledger necesita del almacén de productos:
// consultar existencia/cantidad y ajustar la cantidad. El ledger referencia esta
// capacidad, no el almacén completo.
type StockPort interface {
	GetByID(id string) (*entity.Product, error)
	AdjustQuantity(productID string, delta int64) (*entity.Product, error)
}

// TxRunner ejecuta una función como unidad atómica sobre el documento,
// pasando repositorios atados a esa unidad. Si fn falla no se persiste nada:
// la validación nunca produce registros intermedios ni aplicaciones parciales.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stock StockPort,
		auditRepo repository.AuditRepository,
	) error) error
}
