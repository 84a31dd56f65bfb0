package dto

import (
	"time"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// ExportMetadata sobre envolvente del documento exportado.
type ExportMetadata struct {
	Version    string       `json:"version"`
	ExportDate time.Time    `json:"exportDate"`
	Totals     ExportTotals `json:"totals"`
}

// ExportTotals conteos del documento exportado.
type ExportTotals struct {
	Categories int `json:"categories"`
	Products   int `json:"products"`
	Movements  int `json:"movements"`
}

// ExportDocument documento completo con metadatos. La importación acepta esta
// misma forma (los metadatos son opcionales al importar).
type ExportDocument struct {
	Metadata    ExportMetadata      `json:"metadata"`
	Categories  []entity.Category   `json:"categories"`
	Products    []entity.Product    `json:"products"`
	Movements   []entity.Movement   `json:"movements"`
	AuditLog    []entity.AuditEntry `json:"auditLog,omitempty"`
	LastUpdated time.Time           `json:"lastUpdated"`
}
