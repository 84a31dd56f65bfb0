package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP del ledger de movimientos (protegido).
type InventoryHandler struct {
	register *inventory.RegisterMovementUseCase
	queries  *inventory.MovementQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(register *inventory.RegisterMovementUseCase, queries *inventory.MovementQueryUseCase) *InventoryHandler {
	return &InventoryHandler{register: register, queries: queries}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario (ENTRY o EXIT)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "type, productId, quantity, reasonCode, notes"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := inventory.MovementInput{
		Type:      in.Type,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		User:      GetUsername(c),
		Notes:     in.Notes,
	}

	var (
		out *dto.MovementResponse
		err error
	)
	switch in.Type {
	case entity.MovementTypeEntry:
		out, err = h.register.RegisterEntry(c.Context(), input)
	case entity.MovementTypeExit:
		out, err = h.register.RegisterExit(c.Context(), input)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser ENTRY o EXIT"})
	}
	if err != nil {
		return mapMovementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegisterAdjustment godoc
// @Summary      Ajuste manual de stock (el signo de quantity decide la dirección)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterAdjustmentRequest  true  "productId, quantity con signo, notes"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) RegisterAdjustment(c *fiber.Ctx) error {
	var in dto.RegisterAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.register.RegisterAdjustment(c.Context(), in.ProductID, in.Quantity, GetUsername(c), in.Notes)
	if err != nil {
		return mapMovementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        type       query  string  false  "ENTRY | EXIT"
// @Param        productId  query  string  false  "Filtrar por producto"
// @Param        from       query  string  false  "Fecha inicial (RFC 3339)"
// @Param        to         query  string  false  "Fecha final (RFC 3339)"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	from, err := parseTimeQuery(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC 3339"})
	}
	to, err := parseTimeQuery(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC 3339"})
	}
	out, err := h.queries.List(c.Query("type"), c.Query("productId"), from, to)
	if err != nil {
		return mapMovementError(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de stock de un producto con balance acumulado
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {array}  dto.StockHistoryItem
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/history [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.queries.History(id)
	if err != nil {
		return mapMovementError(c, err)
	}
	return c.JSON(out)
}

// VerifyConsistency godoc
// @Summary      Verificar stock almacenado contra el ledger de movimientos
// @Description  Reconstruye el stock sumando los movimientos del producto.
//
//	Si no coincide con la cantidad almacenada responde 409 con el
//	reporte; la reconciliación es manual.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ConsistencyReport
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ConsistencyReport
// @Router       /api/inventory/products/{id}/consistency [get]
func (h *InventoryHandler) VerifyConsistency(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	report, err := h.queries.VerifyConsistency(id)
	if err != nil {
		if errors.Is(err, domain.ErrInconsistentStock) && report != nil {
			return c.Status(fiber.StatusConflict).JSON(report)
		}
		return mapMovementError(c, err)
	}
	return c.JSON(report)
}

// Stats godoc
// @Summary      Estadísticas del ledger de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MovementStatsResponse
// @Router       /api/inventory/stats [get]
func (h *InventoryHandler) Stats(c *fiber.Ctx) error {
	out, err := h.queries.Stats()
	if err != nil {
		return mapMovementError(c, err)
	}
	return c.JSON(out)
}

// AuditLog godoc
// @Summary      Bitácora de auditoría de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        user    query  string  false  "Filtrar por usuario"
// @Param        action  query  string  false  "Filtrar por acción"
// @Success      200  {array}  dto.AuditEntryResponse
// @Router       /api/inventory/audit-log [get]
func (h *InventoryHandler) AuditLog(c *fiber.Ctx) error {
	out, err := h.queries.AuditLog(c.Query("user"), c.Query("action"))
	if err != nil {
		return mapMovementError(c, err)
	}
	return c.JSON(out)
}

// parseTimeQuery interpreta un parámetro de fecha opcional en RFC 3339.
func parseTimeQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// mapMovementError traduce errores de dominio a respuestas HTTP.
func mapMovementError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingProduct), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser un entero positivo"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrInvalidReasonCode):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "reasonCode inválido para el tipo de movimiento"})
	case errors.Is(err, domain.ErrMissingUser):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user es requerido"})
	case errors.Is(err, domain.ErrStaleDocument):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STALE_DOCUMENT", Message: "el documento cambió en disco, recargue e intente de nuevo"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
