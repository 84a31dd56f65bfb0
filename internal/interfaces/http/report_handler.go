package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/reports"
)

// ReportHandler maneja la generación de reportes PDF (protegido).
type ReportHandler struct {
	uc *reports.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.PDFUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventoryReport godoc
// @Summary      Reporte de inventario en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) InventoryReport(c *fiber.Ctx) error {
	data, err := h.uc.GenerateInventoryReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("inventario-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}
