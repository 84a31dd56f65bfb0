package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeEntry = "ENTRY" // suma cantidad
	MovementTypeExit  = "EXIT"  // resta cantidad
)

// MovementStatusCompleted único estado persistido: la validación nunca produce registros intermedios.
const MovementStatusCompleted = "COMPLETED"

// Razones válidas para entradas.
var EntryReasons = []string{
	"PURCHASE",
	"CUSTOMER_RETURN",
	"INVENTORY_ADJUSTMENT",
	"TRANSFER_IN",
	"INITIAL_RECEIPT",
	"REPAIR_COMPLETED",
}

// Razones válidas para salidas.
var ExitReasons = []string{
	"CUSTOMER_SALE",
	"SUPPLIER_RETURN",
	"INVENTORY_ADJUSTMENT",
	"TRANSFER_OUT",
	"DAMAGE_LOSS",
	"SAMPLE_GIVEAWAY",
	"THEFT_LOSS",
	"EXPIRATION",
}

// ReasonAdjustment razón fija usada por los ajustes manuales de inventario.
const ReasonAdjustment = "INVENTORY_ADJUSTMENT"

// ValidReason indica si la razón pertenece al conjunto permitido para el tipo.
func ValidReason(movementType, reason string) bool {
	var set []string
	switch movementType {
	case MovementTypeEntry:
		set = EntryReasons
	case MovementTypeExit:
		set = ExitReasons
	default:
		return false
	}
	for _, r := range set {
		if r == reason {
			return true
		}
	}
	return false
}

// Movement representa un movimiento de stock registrado. Los movimientos son
// inmutables una vez creados: no existe actualización ni borrado (permanencia de auditoría).
type Movement struct {
	ID        string    `json:"id"` // MOV-NNNNN secuencial
	Type      string    `json:"type"`
	ProductID string    `json:"productId"`
	Quantity  int64     `json:"quantity"` // siempre > 0; el signo lo da Type
	Reason    string    `json:"reasonCode"`
	User      string    `json:"user"`
	Notes     string    `json:"notes"`
	Date      time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

// SignedQuantity cantidad con signo según el tipo (ENTRY positivo, EXIT negativo).
func (m *Movement) SignedQuantity() int64 {
	if m.Type == MovementTypeExit {
		return -m.Quantity
	}
	return m.Quantity
}

// AuditEntry registro de auditoría generado al confirmar un movimiento.
type AuditEntry struct {
	ID        string    `json:"id"` // uuid
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"` // ENTRY_REGISTERED, EXIT_REGISTERED
	User      string    `json:"user"`
	Movement  Movement  `json:"movement"` // snapshot del movimiento confirmado
}

// Acciones de auditoría.
const (
	AuditActionEntryRegistered = "ENTRY_REGISTERED"
	AuditActionExitRegistered  = "EXIT_REGISTERED"
)
