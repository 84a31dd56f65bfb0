package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Name, SKU y CategoryID
// son obligatorios; el resto toma valores por defecto.
type CreateProductRequest struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CategoryID    string          `json:"categoryId"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellPrice     decimal.Decimal `json:"sellPrice"`
	Quantity      int64           `json:"quantity"`
	MinQuantity   *int64          `json:"minQuantity"`
	MaxQuantity   *int64          `json:"maxQuantity"`
	Location      string          `json:"location"`
}

// UpdateProductRequest entrada para actualización parcial. Los sub-objetos de
// precio e inventario se combinan campo a campo, no se reemplazan completos.
// La cantidad no se actualiza por aquí: solo vía movimientos.
type UpdateProductRequest struct {
	SKU           *string          `json:"sku"`
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	CategoryID    *string          `json:"categoryId"`
	Status        *string          `json:"status"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	SellPrice     *decimal.Decimal `json:"sellPrice"`
	MinQuantity   *int64           `json:"minQuantity"`
	MaxQuantity   *int64           `json:"maxQuantity"`
	Location      *string          `json:"location"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CategoryID    string          `json:"categoryId"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellPrice     decimal.Decimal `json:"sellPrice"`
	Currency      string          `json:"currency"`
	Margin        decimal.Decimal `json:"margin"`
	Quantity      int64           `json:"quantity"`
	MinQuantity   int64           `json:"minQuantity"`
	MaxQuantity   int64           `json:"maxQuantity"`
	Location      string          `json:"location"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"modifiedAt"`
}

// DeleteProductResponse distingue archivado (soft delete) de eliminación real.
type DeleteProductResponse struct {
	Outcome string `json:"outcome"` // ARCHIVED o REMOVED
	Message string `json:"message"`
}

// ProductStatsResponse estadísticas agregadas del catálogo de productos.
type ProductStatsResponse struct {
	TotalProducts    int             `json:"totalProducts"`
	ActiveProducts   int             `json:"activeProducts"`
	InactiveProducts int             `json:"inactiveProducts"`
	TotalItems       int64           `json:"totalItems"`
	InventoryValue   decimal.Decimal `json:"inventoryValue"` // suma precio venta * cantidad
	LowStockCount    int             `json:"lowStockCount"`
	OutOfStockCount  int             `json:"outOfStockCount"`
	AverageMargin    decimal.Decimal `json:"averageMargin"`
}
