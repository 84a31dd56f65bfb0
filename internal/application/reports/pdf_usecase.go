package reports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

// InventorySummary datos ya agregados que recibe el generador de PDF.
type InventorySummary struct {
	Products       []*entity.Product
	LowStock       []*entity.Product
	CategoryNames  map[string]string
	TotalItems     int64
	InventoryValue decimal.Decimal
}

// InventoryPDFGenerator puerto del generador del reporte de inventario.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, summary InventorySummary) ([]byte, error)
}

// PDFUseCase arma el reporte de inventario en PDF: tabla de productos activos
// con valorización y sección de productos bajo stock mínimo.
type PDFUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	generator    InventoryPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, generator InventoryPDFGenerator) *PDFUseCase {
	return &PDFUseCase{productRepo: productRepo, categoryRepo: categoryRepo, generator: generator}
}

// GenerateInventoryReport junta los datos y delega la generación al adaptador PDF.
func (uc *PDFUseCase) GenerateInventoryReport(ctx context.Context) ([]byte, error) {
	products, err := uc.productRepo.List(false)
	if err != nil {
		return nil, err
	}
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	summary := InventorySummary{
		Products:       products,
		CategoryNames:  names,
		InventoryValue: decimal.Zero,
	}
	for _, p := range products {
		summary.TotalItems += p.Inventory.Quantity
		qty := decimal.NewFromInt(p.Inventory.Quantity)
		summary.InventoryValue = summary.InventoryValue.Add(p.Price.SellPrice.Mul(qty))
		if p.IsLowStock() {
			summary.LowStock = append(summary.LowStock, p)
		}
	}
	return uc.generator.GenerateInventoryPDF(ctx, summary)
}
