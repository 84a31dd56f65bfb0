package localstore

import (
	"context"

	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/application/usecase"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)
var _ usecase.CatalogTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks como unidad atómica sobre el documento: el callback
// trabaja sobre la copia en vuelo y la escritura se confirma o descarta completa.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con los puertos del ledger atados a la misma unidad.
func (r *TxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	stock inventory.StockPort,
	auditRepo repository.AuditRepository,
) error) error {
	return r.store.Update(func(d *entity.Document) error {
		return fn(docMovements{d}, docProducts{d}, docAudit{d})
	})
}

// RunCatalog ejecuta fn con los repositorios de catálogo atados a la misma unidad.
func (r *TxRunner) RunCatalog(_ context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
) error) error {
	return r.store.Update(func(d *entity.Document) error {
		return fn(docCategories{d}, docProducts{d}, docMovements{d})
	})
}
