package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

// DashboardUseCase arma el resumen general del inventario para la vista
// principal: totales, valorización, alertas de stock y productos más movidos.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	movRepo      repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, movRepo repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, categoryRepo: categoryRepo, movRepo: movRepo}
}

// topProductLimit máximo de productos en el ranking de más movidos.
const topProductLimit = 10

// GetDashboard calcula el resumen a partir del estado actual del documento.
func (uc *DashboardUseCase) GetDashboard() (*dto.DashboardResponse, error) {
	products, err := uc.productRepo.List(true)
	if err != nil {
		return nil, err
	}
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movRepo.List(repository.MovementFilter{})
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		TotalProducts:   len(products),
		TotalCategories: len(categories),
		TotalMovements:  len(movements),
		InventoryValue:  decimal.Zero,
		AverageMargin:   decimal.Zero,
		TopProducts:     []dto.TopProductDTO{},
	}

	names := map[string]string{}
	marginSum := decimal.Zero
	marginCount := 0
	for _, p := range products {
		names[p.ID] = p.Name
		if !p.IsActive() {
			continue
		}
		qty := decimal.NewFromInt(p.Inventory.Quantity)
		resp.InventoryValue = resp.InventoryValue.Add(p.Price.SellPrice.Mul(qty))
		if p.IsLowStock() {
			resp.LowStockCount++
		}
		if p.Inventory.Quantity == 0 {
			resp.OutOfStockCount++
		}
		if !p.Price.Margin.IsZero() {
			marginSum = marginSum.Add(p.Price.Margin)
			marginCount++
		}
	}
	if marginCount > 0 {
		resp.AverageMargin = marginSum.Div(decimal.NewFromInt(int64(marginCount))).Round(2)
	}

	byProduct := map[string]*dto.TopProductDTO{}
	for _, m := range movements {
		t := byProduct[m.ProductID]
		if t == nil {
			t = &dto.TopProductDTO{ProductID: m.ProductID, Name: names[m.ProductID]}
			byProduct[m.ProductID] = t
		}
		if m.Type == entity.MovementTypeEntry {
			t.TotalEntries += m.Quantity
		} else {
			t.TotalExits += m.Quantity
		}
		t.TotalMovements++
	}
	top := make([]dto.TopProductDTO, 0, len(byProduct))
	for _, t := range byProduct {
		top = append(top, *t)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].TotalMovements != top[j].TotalMovements {
			return top[i].TotalMovements > top[j].TotalMovements
		}
		return top[i].ProductID < top[j].ProductID
	})
	if len(top) > topProductLimit {
		top = top[:topProductLimit]
	}
	resp.TopProducts = top
	return resp, nil
}
