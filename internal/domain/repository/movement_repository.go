package repository

import (
	"time"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// MovementFilter filtros opcionales para listar movimientos.
type MovementFilter struct {
	Type      string // ENTRY, EXIT o vacío
	ProductID string
	From      *time.Time
	To        *time.Time
}

// MovementRepository define el puerto de persistencia para Movement (DIP).
// El ledger es append-only: no hay Update ni Delete (permanencia de auditoría).
type MovementRepository interface {
	Append(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	List(filter MovementFilter) ([]*entity.Movement, error)
	ListByProduct(productID string) ([]*entity.Movement, error)
	CountByProduct(productID string) (int, error)
}

// AuditRepository define el puerto del log de auditoría (append-only).
type AuditRepository interface {
	Append(entry *entity.AuditEntry) error
	List(user, action string) ([]*entity.AuditEntry, error)
}
