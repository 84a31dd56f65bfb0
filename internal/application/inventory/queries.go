package inventory

import (
	"sort"
	"time"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

// MovementQueryUseCase consultas de solo lectura sobre el ledger: listados,
// historial, estadísticas, auditoría y verificación de consistencia.
type MovementQueryUseCase struct {
	movRepo     repository.MovementRepository
	productRepo repository.ProductRepository
	audit       repository.AuditRepository
}

// NewMovementQueryUseCase construye el caso de uso de consultas.
func NewMovementQueryUseCase(movRepo repository.MovementRepository, productRepo repository.ProductRepository, audit repository.AuditRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo, productRepo: productRepo, audit: audit}
}

// List movimientos filtrados, los más recientes primero.
func (uc *MovementQueryUseCase) List(movementType, productID string, from, to *time.Time) ([]dto.MovementResponse, error) {
	list, err := uc.movRepo.List(repository.MovementFilter{
		Type:      movementType,
		ProductID: productID,
		From:      from,
		To:        to,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return items, nil
}

// History historial de stock de un producto en orden cronológico, con el
// balance acumulado tras cada movimiento.
func (uc *MovementQueryUseCase) History(productID string) ([]dto.StockHistoryItem, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	// ListByProduct devuelve reciente→antiguo; el historial se lee antiguo→reciente.
	sort.SliceStable(movements, func(i, j int) bool { return movements[i].Date.Before(movements[j].Date) })

	var balance int64
	items := make([]dto.StockHistoryItem, 0, len(movements))
	for _, m := range movements {
		change := m.SignedQuantity()
		balance += change
		items = append(items, dto.StockHistoryItem{
			MovementID: m.ID,
			Date:       m.Date,
			Type:       m.Type,
			Quantity:   m.Quantity,
			Reason:     m.Reason,
			User:       m.User,
			Change:     change,
			Balance:    balance,
		})
	}
	return items, nil
}

// VerifyConsistency reconstruye el stock de un producto sumando las cantidades
// con signo de todos sus movimientos (del más antiguo al más reciente) y lo
// compara contra la cantidad registrada. Si no coinciden devuelve el reporte
// junto con ErrInconsistentStock; solo detección, nunca reconcilia.
func (uc *MovementQueryUseCase) VerifyConsistency(productID string) (*dto.ConsistencyReport, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(movements, func(i, j int) bool { return movements[i].Date.Before(movements[j].Date) })

	var computed int64
	for _, m := range movements {
		computed += m.SignedQuantity()
	}
	stored := product.Inventory.Quantity
	report := &dto.ConsistencyReport{
		ProductID:        productID,
		StoredQuantity:   stored,
		ComputedQuantity: computed,
		Difference:       stored - computed,
		Consistent:       stored == computed,
		TotalMovements:   len(movements),
	}
	if !report.Consistent {
		return report, domain.ErrInconsistentStock
	}
	return report, nil
}

// Stats estadísticas agregadas del ledger.
func (uc *MovementQueryUseCase) Stats() (*dto.MovementStatsResponse, error) {
	list, err := uc.movRepo.List(repository.MovementFilter{})
	if err != nil {
		return nil, err
	}
	stats := &dto.MovementStatsResponse{
		TotalMovements: len(list),
		EntryReasons:   map[string]int64{},
		ExitReasons:    map[string]int64{},
	}
	users := map[string]struct{}{}
	for _, m := range list {
		users[m.User] = struct{}{}
		if m.Type == entity.MovementTypeEntry {
			stats.TotalEntries++
			stats.UnitsIn += m.Quantity
			stats.EntryReasons[m.Reason] += m.Quantity
		} else {
			stats.TotalExits++
			stats.UnitsOut += m.Quantity
			stats.ExitReasons[m.Reason] += m.Quantity
		}
	}
	stats.NetBalance = stats.UnitsIn - stats.UnitsOut
	stats.ActiveUsers = make([]string, 0, len(users))
	for u := range users {
		stats.ActiveUsers = append(stats.ActiveUsers, u)
	}
	sort.Strings(stats.ActiveUsers)
	return stats, nil
}

// AuditLog entradas de auditoría filtradas por usuario y/o acción.
func (uc *MovementQueryUseCase) AuditLog(user, action string) ([]dto.AuditEntryResponse, error) {
	list, err := uc.audit.List(user, action)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, dto.AuditEntryResponse{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			Action:    e.Action,
			User:      e.User,
			Movement:  *toMovementResponse(&e.Movement),
		})
	}
	return items, nil
}
