package repository

import "github.com/jhoicas/inventario-local/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	FindByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
}

// DocumentRepository acceso al documento completo para exportación e importación.
// Snapshot devuelve una copia; Restore reemplaza el contenido de forma atómica
// (la versión sigue creciendo, nunca retrocede).
type DocumentRepository interface {
	Snapshot() (*entity.Document, error)
	Restore(doc *entity.Document) error
}
