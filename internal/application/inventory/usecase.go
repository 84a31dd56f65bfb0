package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock (ENTRY/EXIT) como
// unidad atómica: validar, ajustar cantidad, anexar movimiento y auditoría, y
// persistir, o nada. Un movimiento rechazado nunca deja registro ni aplica
// cambios parciales.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
	audit    repository.AuditRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, movRepo repository.MovementRepository, audit repository.AuditRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, movRepo: movRepo, audit: audit}
}

// MovementInput entrada interna para registrar un movimiento.
type MovementInput struct {
	Type      string
	ProductID string
	Quantity  int64
	Reason    string
	User      string
	Notes     string
}

// RegisterEntry registra una entrada de stock (compra, devolución, ajuste +).
func (uc *RegisterMovementUseCase) RegisterEntry(ctx context.Context, in MovementInput) (*dto.MovementResponse, error) {
	in.Type = entity.MovementTypeEntry
	return uc.register(ctx, in)
}

// RegisterExit registra una salida de stock (venta, merma, muestra, etc).
func (uc *RegisterMovementUseCase) RegisterExit(ctx context.Context, in MovementInput) (*dto.MovementResponse, error) {
	in.Type = entity.MovementTypeExit
	return uc.register(ctx, in)
}

// RegisterAdjustment ajuste manual: el signo de quantity decide la dirección
// (no negativo entrada, negativo salida). La razón es siempre INVENTORY_ADJUSTMENT.
func (uc *RegisterMovementUseCase) RegisterAdjustment(ctx context.Context, productID string, quantity int64, user, notes string) (*dto.MovementResponse, error) {
	in := MovementInput{
		ProductID: productID,
		Quantity:  quantity,
		Reason:    entity.ReasonAdjustment,
		User:      user,
		Notes:     notes,
	}
	if quantity >= 0 {
		return uc.RegisterEntry(ctx, in)
	}
	in.Quantity = -quantity
	return uc.RegisterExit(ctx, in)
}

// register valida y confirma el movimiento. Orden de validación fijo, la
// primera falla gana: producto, cantidad, stock disponible (solo salidas),
// razón, usuario.
func (uc *RegisterMovementUseCase) register(ctx context.Context, in MovementInput) (*dto.MovementResponse, error) {
	var out *dto.MovementResponse
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stock StockPort,
		auditRepo repository.AuditRepository,
	) error {
		if in.ProductID == "" {
			return domain.ErrMissingProduct
		}
		product, err := stock.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrMissingProduct
		}
		if in.Quantity <= 0 {
			return domain.ErrInvalidQuantity
		}
		if in.Type == entity.MovementTypeExit && in.Quantity > product.Inventory.Quantity {
			return domain.ErrInsufficientStock
		}
		if !entity.ValidReason(in.Type, in.Reason) {
			return domain.ErrInvalidReasonCode
		}
		if in.User == "" {
			return domain.ErrMissingUser
		}

		delta := in.Quantity
		if in.Type == entity.MovementTypeExit {
			delta = -in.Quantity
		}
		if _, err := stock.AdjustQuantity(in.ProductID, delta); err != nil {
			return err
		}

		now := time.Now()
		mov := &entity.Movement{
			Type:      in.Type,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			Reason:    in.Reason,
			User:      in.User,
			Notes:     in.Notes,
			Date:      now,
			Status:    entity.MovementStatusCompleted,
		}
		if err := movRepo.Append(mov); err != nil {
			return err
		}

		action := entity.AuditActionEntryRegistered
		if in.Type == entity.MovementTypeExit {
			action = entity.AuditActionExitRegistered
		}
		if err := auditRepo.Append(&entity.AuditEntry{
			ID:        uuid.New().String(),
			Timestamp: now,
			Action:    action,
			User:      in.User,
			Movement:  *mov,
		}); err != nil {
			return err
		}

		out = toMovementResponse(mov)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:        m.ID,
		Type:      m.Type,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		User:      m.User,
		Notes:     m.Notes,
		Date:      m.Date,
		Status:    m.Status,
	}
}
