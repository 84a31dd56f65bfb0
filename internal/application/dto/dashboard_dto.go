package dto

import "github.com/shopspring/decimal"

// TopProductDTO producto con más movimientos registrados.
type TopProductDTO struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	TotalEntries   int64  `json:"totalEntries"`
	TotalExits     int64  `json:"totalExits"`
	TotalMovements int    `json:"totalMovements"`
}

// DashboardResponse resumen general del inventario para la vista principal.
type DashboardResponse struct {
	TotalProducts   int             `json:"totalProducts"`
	TotalCategories int             `json:"totalCategories"`
	TotalMovements  int             `json:"totalMovements"`
	InventoryValue  decimal.Decimal `json:"inventoryValue"`
	AverageMargin   decimal.Decimal `json:"averageMargin"`
	LowStockCount   int             `json:"lowStockCount"`
	OutOfStockCount int             `json:"outOfStockCount"`
	TopProducts     []TopProductDTO `json:"topProducts"`
}
