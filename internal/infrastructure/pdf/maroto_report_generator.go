// Package pdf implementa el reporte de inventario en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Categoría | Cant | Mín | Valor     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: unidades totales / valor del inventario           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BAJO STOCK: productos en o bajo su mínimo                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/application/reports"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.InventoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(_ context.Context, summary reports.InventorySummary) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range productRows(summary) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(summary.TotalItems, summary.InventoryValue))

	if len(summary.LowStock) > 0 {
		m.AddRows(line.NewRow(3))
		for _, r := range lowStockRows(summary.LowStock) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Cant.", 1, align.Center),
		h("Mín.", 1, align.Center),
		h("Valor", 2, align.Right),
	)
}

func productRows(summary reports.InventorySummary) []core.Row {
	result := make([]core.Row, 0, len(summary.Products))
	for _, p := range summary.Products {
		value := p.Price.SellPrice.Mul(decimal.NewFromInt(p.Inventory.Quantity))
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(p.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(
				summary.CategoryNames[p.CategoryID],
				props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", p.Inventory.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", p.Inventory.MinQuantity),
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				"$"+value.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalsRow(totalItems int64, value decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("Unidades totales: %d", totalItems), props.Text{
				Size: 9, Top: 2, Left: 1,
			}),
		),
		col.New(6).Add(
			text.New("Valor del inventario: $"+value.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Right: 1,
				Color: colorPrimary,
			}),
		),
	)
}

func lowStockRows(lowStock []*entity.Product) []core.Row {
	result := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("PRODUCTOS BAJO STOCK MÍNIMO", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorAlert, Top: 1,
			}),
		)),
	}
	for _, p := range lowStock {
		result = append(result, row.New(6).Add(
			col.New(12).Add(text.New(
				fmt.Sprintf("%s - %s: %d unidades (mínimo %d)",
					p.SKU, p.Name, p.Inventory.Quantity, p.Inventory.MinQuantity),
				props.Text{Size: 8, Top: 1, Left: 1, Color: colorAlert},
			)),
		))
	}
	return result
}
