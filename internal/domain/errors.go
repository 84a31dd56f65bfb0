package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrDuplicateSKU        = errors.New("el código SKU ya está en uso")
	ErrMissingField        = errors.New("faltan campos requeridos")
	ErrMissingProduct      = errors.New("el producto del movimiento no existe o no fue indicado")
	ErrMissingUser         = errors.New("el usuario del movimiento es requerido")
	ErrInvalidQuantity     = errors.New("la cantidad debe ser mayor a 0")
	ErrInvalidReasonCode   = errors.New("razón inválida para el tipo de movimiento")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrCategoryInUse       = errors.New("la categoría tiene productos asociados")
	ErrInconsistentStock   = errors.New("el stock registrado no coincide con los movimientos")
	ErrInvalidImportFormat = errors.New("formato de importación inválido")
	ErrStaleDocument       = errors.New("el documento en disco fue modificado por otro proceso")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrUsernameTaken       = errors.New("el nombre de usuario ya existe")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
)
