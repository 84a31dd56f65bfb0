package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Product.
const (
	ProductStatusActive       = "ACTIVE"
	ProductStatusInactive     = "INACTIVE" // soft delete: conserva referencias de movimientos
	ProductStatusDiscontinued = "DISCONTINUED"
)

// ProductPrice precios del producto. Margin se recalcula al cambiar cualquiera de los dos precios.
type ProductPrice struct {
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellPrice     decimal.Decimal `json:"sellPrice"`
	Currency      string          `json:"currency"`
	Margin        decimal.Decimal `json:"margin"` // porcentaje: (venta - compra) / compra * 100
}

// ProductInventory estado de inventario del producto. Quantity solo se muta vía
// movimientos (AdjustQuantity); mutarla directo rompe la auditoría.
type ProductInventory struct {
	Quantity    int64     `json:"quantity"`
	MinQuantity int64     `json:"minQuantity"`
	MaxQuantity int64     `json:"maxQuantity"`
	Location    string    `json:"location"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Product representa un producto o SKU del inventario.
type Product struct {
	ID          string           `json:"id"` // PROD-NNN secuencial
	SKU         string           `json:"sku"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	CategoryID  string           `json:"categoryId"`
	Price       ProductPrice     `json:"price"`
	Inventory   ProductInventory `json:"inventory"`
	Status      string           `json:"status"` // ACTIVE, INACTIVE, DISCONTINUED
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"modifiedAt"`
}

// IsActive indica si el producto está activo.
func (p *Product) IsActive() bool { return p.Status == ProductStatusActive }

// IsLowStock indica si la cantidad está en o bajo el mínimo configurado.
func (p *Product) IsLowStock() bool { return p.Inventory.Quantity <= p.Inventory.MinQuantity }

// ComputeMargin calcula el margen porcentual a partir de los precios.
// Retorna 0 si el precio de compra es 0 (no hay base de cálculo).
func ComputeMargin(purchase, sell decimal.Decimal) decimal.Decimal {
	if purchase.IsZero() {
		return decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	return sell.Sub(purchase).Div(purchase).Mul(hundred).Round(2)
}

// DeleteOutcome resultado de eliminar un producto: archivado (soft) o removido (hard).
type DeleteOutcome string

const (
	// DeleteOutcomeArchived el producto tenía movimientos y pasó a INACTIVE.
	DeleteOutcomeArchived DeleteOutcome = "ARCHIVED"
	// DeleteOutcomeRemoved el producto no tenía movimientos y fue eliminado del documento.
	DeleteOutcomeRemoved DeleteOutcome = "REMOVED"
)
