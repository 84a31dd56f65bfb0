package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/usecase"
	"github.com/jhoicas/inventario-local/internal/domain"
)

// ExportHandler maneja el respaldo y la restauración del documento (solo admin).
type ExportHandler struct {
	uc *usecase.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar el inventario completo como JSON descargable
// @Tags         export
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ExportDocument
// @Router       /api/export [get]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	data, err := h.uc.Export()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("inventario-%s.json", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

// Import godoc
// @Summary      Restaurar el inventario desde un respaldo JSON
// @Description  Reemplaza el documento completo. Los usuarios solo se
//
//	reemplazan si el respaldo trae alguno.
//
// @Tags         export
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/import [post]
func (h *ExportHandler) Import(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo vacío"})
	}
	if err := h.uc.Import(body); err != nil {
		if errors.Is(err, domain.ErrInvalidImportFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "el respaldo no tiene el formato esperado"})
		}
		if errors.Is(err, domain.ErrStaleDocument) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STALE_DOCUMENT", Message: "el documento cambió en disco, recargue e intente de nuevo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "inventario restaurado"})
}
