package entity

import "time"

// Valores por defecto de Category.
const (
	DefaultCategoryIcon  = "📂"
	DefaultCategoryColor = "#4ECDC4"
)

// Category representa una categoría de productos.
// No puede eliminarse mientras algún producto la referencie.
type Category struct {
	ID          string    `json:"id"` // CAT-NNN secuencial
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"modifiedAt"`
}
