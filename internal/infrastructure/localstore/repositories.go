package localstore

import (
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

// Adaptadores públicos de los puertos de persistencia sobre el Store. Cada
// escritura toma el lock, aplica la vista doc* sobre la copia en vuelo y
// persiste; cada lectura trabaja bajo el lock de lectura.

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el documento local.
type ProductRepo struct {
	store *Store
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

func (r *ProductRepo) Create(product *entity.Product) error {
	return r.store.Update(func(d *entity.Document) error {
		return docProducts{d}.Create(product)
	})
}

func (r *ProductRepo) GetByID(id string) (p *entity.Product, err error) {
	err = r.store.View(func(d *entity.Document) error {
		p, err = docProducts{d}.GetByID(id)
		return err
	})
	return p, err
}

func (r *ProductRepo) GetBySKU(sku string) (p *entity.Product, err error) {
	err = r.store.View(func(d *entity.Document) error {
		p, err = docProducts{d}.GetBySKU(sku)
		return err
	})
	return p, err
}

func (r *ProductRepo) Update(product *entity.Product) error {
	return r.store.Update(func(d *entity.Document) error {
		return docProducts{d}.Update(product)
	})
}

func (r *ProductRepo) AdjustQuantity(productID string, delta int64) (p *entity.Product, err error) {
	err = r.store.Update(func(d *entity.Document) error {
		p, err = docProducts{d}.AdjustQuantity(productID, delta)
		return err
	})
	return p, err
}

func (r *ProductRepo) List(includeInactive bool) (list []*entity.Product, err error) {
	err = r.store.View(func(d *entity.Document) error {
		list, err = docProducts{d}.List(includeInactive)
		return err
	})
	return list, err
}

func (r *ProductRepo) ListByCategory(categoryID string) (list []*entity.Product, err error) {
	err = r.store.View(func(d *entity.Document) error {
		list, err = docProducts{d}.ListByCategory(categoryID)
		return err
	})
	return list, err
}

func (r *ProductRepo) Search(term string) (list []*entity.Product, err error) {
	err = r.store.View(func(d *entity.Document) error {
		list, err = docProducts{d}.Search(term)
		return err
	})
	return list, err
}

func (r *ProductRepo) Remove(id string) error {
	return r.store.Update(func(d *entity.Document) error {
		return docProducts{d}.Remove(id)
	})
}

func (r *ProductRepo) Archive(id string) error {
	return r.store.Update(func(d *entity.Document) error {
		return docProducts{d}.Archive(id)
	})
}

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre el documento local.
type CategoryRepo struct {
	store *Store
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(store *Store) *CategoryRepo {
	return &CategoryRepo{store: store}
}

func (r *CategoryRepo) Create(category *entity.Category) error {
	return r.store.Update(func(d *entity.Document) error {
		return docCategories{d}.Create(category)
	})
}

func (r *CategoryRepo) GetByID(id string) (c *entity.Category, err error) {
	err = r.store.View(func(d *entity.Document) error {
		c, err = docCategories{d}.GetByID(id)
		return err
	})
	return c, err
}

func (r *CategoryRepo) Update(category *entity.Category) error {
	return r.store.Update(func(d *entity.Document) error {
		return docCategories{d}.Update(category)
	})
}

func (r *CategoryRepo) List() (list []*entity.Category, err error) {
	err = r.store.View(func(d *entity.Document) error {
		list, err = docCategories{d}.List()
		return err
	})
	return list, err
}

func (r *CategoryRepo) Delete(id string) error {
	return r.store.Update(func(d *entity.Document) error {
		return docCategories{d}.Delete(id)
	})
}

func (r *CategoryRepo) CountProducts(categoryID string) (n int, err error) {
	err = r.store.View(func(d *entity.Document) error {
		n, err = docCategories{d}.CountProducts(categoryID)
		return err
	})
	return n, err
}

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre el documento local.
type MovementRepo struct {
	store *Store
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(store *Store) *MovementRepo {
	return &MovementRepo{store: store}
}

func (r *MovementRepo) Append(movement *entity.Movement) error {
	return r.store.Update(func(d *entity.Document) error {
		return docMovements{d}.Append(movement)
	})
}

func (r *MovementRepo) GetByID(id string) (m *entity.Movement, err error) {
	err = r.store.View(func(d *entity.Document) error {
		m, err = docMovements{d}.GetByID(id)
		return err
	})
	return m, err
}

func (r *MovementRepo) List(filter repository.MovementFilter) (list []*entity.Movement, err error) {
	err = r.store.View(func(d *entity.Document) error {
		list, err = docMovements{d}.List(filter)
		return err
	})
	return list, err
}

func (r *MovementRepo) ListByProduct(productID string) (list []*entity.Movement, err error) {
	err = r.store.View(func(d *entity.Document) error {
		list, err = docMovements{d}.ListByProduct(productID)
		return err
	})
	return list, err
}

func (r *MovementRepo) CountByProduct(productID string) (n int, err error) {
	err = r.store.View(func(d *entity.Document) error {
		n, err = docMovements{d}.CountByProduct(productID)
		return err
	})
	return n, err
}

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación del puerto AuditRepository sobre el documento local.
type AuditRepo struct {
	store *Store
}

// NewAuditRepository construye el adaptador del log de auditoría.
func NewAuditRepository(store *Store) *AuditRepo {
	return &AuditRepo{store: store}
}

func (r *AuditRepo) Append(entry *entity.AuditEntry) error {
	return r.store.Update(func(d *entity.Document) error {
		return docAudit{d}.Append(entry)
	})
}

func (r *AuditRepo) List(user, action string) (list []*entity.AuditEntry, err error) {
	err = r.store.View(func(d *entity.Document) error {
		list, err = docAudit{d}.List(user, action)
		return err
	})
	return list, err
}

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el documento local.
type UserRepo struct {
	store *Store
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

func (r *UserRepo) Create(user *entity.User) error {
	return r.store.Update(func(d *entity.Document) error {
		return docUsers{d}.Create(user)
	})
}

func (r *UserRepo) FindByUsername(username string) (u *entity.User, err error) {
	err = r.store.View(func(d *entity.Document) error {
		u, err = docUsers{d}.FindByUsername(username)
		return err
	})
	return u, err
}

func (r *UserRepo) List() (list []*entity.User, err error) {
	err = r.store.View(func(d *entity.Document) error {
		list, err = docUsers{d}.List()
		return err
	})
	return list, err
}

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo acceso al documento completo (exportación e importación).
type DocumentRepo struct {
	store *Store
}

// NewDocumentRepository construye el adaptador del documento completo.
func NewDocumentRepository(store *Store) *DocumentRepo {
	return &DocumentRepo{store: store}
}

func (r *DocumentRepo) Snapshot() (*entity.Document, error) { return r.store.Snapshot() }

func (r *DocumentRepo) Restore(doc *entity.Document) error { return r.store.Restore(doc) }
