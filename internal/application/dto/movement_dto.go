package dto

import "time"

// RegisterMovementRequest entrada para registrar una entrada o salida.
// Type: ENTRY o EXIT; User lo completa el handler con el usuario autenticado.
type RegisterMovementRequest struct {
	Type      string `json:"type"`
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
	Reason    string `json:"reasonCode"`
	Notes     string `json:"notes"`
}

// RegisterAdjustmentRequest ajuste manual: el signo de Quantity decide la
// dirección (no negativo entrada, negativo salida).
type RegisterAdjustmentRequest struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
	Notes     string `json:"notes"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	ProductID string    `json:"productId"`
	Quantity  int64     `json:"quantity"`
	Reason    string    `json:"reasonCode"`
	User      string    `json:"user"`
	Notes     string    `json:"notes"`
	Date      time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

// ConsistencyReport resultado de verificar el stock de un producto contra sus
// movimientos. Solo detección: no hay reconciliación automática.
type ConsistencyReport struct {
	ProductID        string `json:"productId"`
	StoredQuantity   int64  `json:"storedQuantity"`
	ComputedQuantity int64  `json:"computedQuantity"`
	Difference       int64  `json:"difference"`
	Consistent       bool   `json:"consistent"`
	TotalMovements   int    `json:"totalMovements"`
}

// StockHistoryItem un punto del historial de stock de un producto.
type StockHistoryItem struct {
	MovementID string    `json:"movementId"`
	Date       time.Time `json:"date"`
	Type       string    `json:"type"`
	Quantity   int64     `json:"quantity"`
	Reason     string    `json:"reasonCode"`
	User       string    `json:"user"`
	Change     int64     `json:"change"`
	Balance    int64     `json:"balance"` // stock acumulado tras aplicar el movimiento
}

// MovementStatsResponse estadísticas del ledger de movimientos.
type MovementStatsResponse struct {
	TotalMovements int              `json:"totalMovements"`
	TotalEntries   int              `json:"totalEntries"`
	TotalExits     int              `json:"totalExits"`
	UnitsIn        int64            `json:"unitsIn"`
	UnitsOut       int64            `json:"unitsOut"`
	NetBalance     int64            `json:"netBalance"`
	EntryReasons   map[string]int64 `json:"entryReasons"` // unidades por razón
	ExitReasons    map[string]int64 `json:"exitReasons"`
	ActiveUsers    []string         `json:"activeUsers"`
}

// AuditEntryResponse salida de una entrada de auditoría.
type AuditEntryResponse struct {
	ID        string           `json:"id"`
	Timestamp time.Time        `json:"timestamp"`
	Action    string           `json:"action"`
	User      string           `json:"user"`
	Movement  MovementResponse `json:"movement"`
}
