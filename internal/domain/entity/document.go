package entity

import "time"

// Document es el documento único persistido: categorías, productos, movimientos,
// auditoría y usuarios comparten un solo blob JSON sin aislamiento transaccional
// entre secciones. Cada mutación lee-modifica-escribe el documento completo.
//
// Version crece monótonamente con cada escritura; una escritura que detecta en
// disco una versión distinta a la última observada falla con ErrStaleDocument
// (concurrencia optimista entre procesos que comparten el archivo).
type Document struct {
	Version     uint64       `json:"version"`
	Categories  []Category   `json:"categories"`
	Products    []Product    `json:"products"`
	Movements   []Movement   `json:"movements"`
	AuditLog    []AuditEntry `json:"auditLog"`
	Users       []User       `json:"users"`
	LastUpdated time.Time    `json:"lastUpdated"`
}

// NewDocument crea un documento vacío con los slices inicializados.
func NewDocument() *Document {
	return &Document{
		Categories: []Category{},
		Products:   []Product{},
		Movements:  []Movement{},
		AuditLog:   []AuditEntry{},
		Users:      []User{},
	}
}

// Clone copia profunda del documento. Las entidades no contienen punteros,
// por lo que copiar los slices es suficiente.
func (d *Document) Clone() *Document {
	c := *d
	c.Categories = append([]Category(nil), d.Categories...)
	c.Products = append([]Product(nil), d.Products...)
	c.Movements = append([]Movement(nil), d.Movements...)
	c.AuditLog = append([]AuditEntry(nil), d.AuditLog...)
	c.Users = append([]User(nil), d.Users...)
	return &c
}
