package localstore

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

// Las vistas doc* operan directamente sobre un *entity.Document sin tomar locks
// ni persistir: dentro de Store.Update trabajan sobre la copia en vuelo, de modo
// que todas las mutaciones de una unidad se confirman o descartan juntas.

// nextSequentialID genera el siguiente id PREFIX-NNN escaneando el máximo sufijo
// numérico existente (sobrevive a eliminaciones, a diferencia de contar elementos).
func nextSequentialID(prefix string, width int, ids []string) string {
	max := 0
	for _, id := range ids {
		raw, ok := strings.CutPrefix(id, prefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(raw); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, width, max+1)
}

// ── Productos ─────────────────────────────────────────────────────────────────

type docProducts struct {
	doc *entity.Document
}

var _ repository.ProductRepository = docProducts{}

func (v docProducts) ids() []string {
	ids := make([]string, 0, len(v.doc.Products))
	for _, p := range v.doc.Products {
		ids = append(ids, p.ID)
	}
	return ids
}

func (v docProducts) indexOf(id string) int {
	for i := range v.doc.Products {
		if v.doc.Products[i].ID == id {
			return i
		}
	}
	return -1
}

// Create agrega el producto al documento. El SKU es único entre todos los
// productos, activos e inactivos.
func (v docProducts) Create(product *entity.Product) error {
	for i := range v.doc.Products {
		if v.doc.Products[i].SKU == product.SKU {
			return domain.ErrDuplicateSKU
		}
	}
	if product.ID == "" {
		product.ID = nextSequentialID("PROD-", 3, v.ids())
	}
	v.doc.Products = append(v.doc.Products, *product)
	return nil
}

func (v docProducts) GetByID(id string) (*entity.Product, error) {
	i := v.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	p := v.doc.Products[i]
	return &p, nil
}

func (v docProducts) GetBySKU(sku string) (*entity.Product, error) {
	for i := range v.doc.Products {
		if v.doc.Products[i].SKU == sku {
			p := v.doc.Products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// Update reemplaza el producto completo. Valida unicidad de SKU contra otros productos.
func (v docProducts) Update(product *entity.Product) error {
	i := v.indexOf(product.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	for j := range v.doc.Products {
		if j != i && v.doc.Products[j].SKU == product.SKU {
			return domain.ErrDuplicateSKU
		}
	}
	v.doc.Products[i] = *product
	return nil
}

// AdjustQuantity aplica el delta a la cantidad. Nunca deja la cantidad negativa.
func (v docProducts) AdjustQuantity(productID string, delta int64) (*entity.Product, error) {
	i := v.indexOf(productID)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	p := &v.doc.Products[i]
	next := p.Inventory.Quantity + delta
	if next < 0 {
		return nil, domain.ErrInsufficientStock
	}
	now := time.Now()
	p.Inventory.Quantity = next
	p.Inventory.LastUpdated = now
	p.UpdatedAt = now
	out := *p
	return &out, nil
}

func (v docProducts) List(includeInactive bool) ([]*entity.Product, error) {
	var list []*entity.Product
	for i := range v.doc.Products {
		if !includeInactive && v.doc.Products[i].Status != entity.ProductStatusActive {
			continue
		}
		p := v.doc.Products[i]
		list = append(list, &p)
	}
	return list, nil
}

func (v docProducts) ListByCategory(categoryID string) ([]*entity.Product, error) {
	var list []*entity.Product
	for i := range v.doc.Products {
		p := v.doc.Products[i]
		if p.CategoryID == categoryID && p.Status == entity.ProductStatusActive {
			list = append(list, &p)
		}
	}
	return list, nil
}

func (v docProducts) Search(term string) ([]*entity.Product, error) {
	needle := strings.ToLower(term)
	var list []*entity.Product
	for i := range v.doc.Products {
		p := v.doc.Products[i]
		if p.Status != entity.ProductStatusActive {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.SKU), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			list = append(list, &p)
		}
	}
	return list, nil
}

// Remove elimina el registro permanentemente.
func (v docProducts) Remove(id string) error {
	i := v.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	v.doc.Products = append(v.doc.Products[:i], v.doc.Products[i+1:]...)
	return nil
}

// Archive marca el producto como INACTIVE conservando el registro (soft delete).
func (v docProducts) Archive(id string) error {
	i := v.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	v.doc.Products[i].Status = entity.ProductStatusInactive
	v.doc.Products[i].UpdatedAt = time.Now()
	return nil
}

// ── Categorías ────────────────────────────────────────────────────────────────

type docCategories struct {
	doc *entity.Document
}

var _ repository.CategoryRepository = docCategories{}

func (v docCategories) indexOf(id string) int {
	for i := range v.doc.Categories {
		if v.doc.Categories[i].ID == id {
			return i
		}
	}
	return -1
}

func (v docCategories) Create(category *entity.Category) error {
	if category.ID == "" {
		ids := make([]string, 0, len(v.doc.Categories))
		for _, c := range v.doc.Categories {
			ids = append(ids, c.ID)
		}
		category.ID = nextSequentialID("CAT-", 3, ids)
	}
	v.doc.Categories = append(v.doc.Categories, *category)
	return nil
}

func (v docCategories) GetByID(id string) (*entity.Category, error) {
	i := v.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	c := v.doc.Categories[i]
	return &c, nil
}

func (v docCategories) Update(category *entity.Category) error {
	i := v.indexOf(category.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	v.doc.Categories[i] = *category
	return nil
}

func (v docCategories) List() ([]*entity.Category, error) {
	list := make([]*entity.Category, 0, len(v.doc.Categories))
	for i := range v.doc.Categories {
		c := v.doc.Categories[i]
		list = append(list, &c)
	}
	return list, nil
}

// Delete elimina la categoría. La regla "sin productos asociados" la valida el
// caso de uso dentro de la misma unidad (CountProducts + Delete).
func (v docCategories) Delete(id string) error {
	i := v.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	v.doc.Categories = append(v.doc.Categories[:i], v.doc.Categories[i+1:]...)
	return nil
}

func (v docCategories) CountProducts(categoryID string) (int, error) {
	n := 0
	for i := range v.doc.Products {
		if v.doc.Products[i].CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

// ── Movimientos ───────────────────────────────────────────────────────────────

type docMovements struct {
	doc *entity.Document
}

var _ repository.MovementRepository = docMovements{}

// Append agrega el movimiento al final del ledger (orden cronológico).
func (v docMovements) Append(movement *entity.Movement) error {
	if movement.ID == "" {
		ids := make([]string, 0, len(v.doc.Movements))
		for _, m := range v.doc.Movements {
			ids = append(ids, m.ID)
		}
		movement.ID = nextSequentialID("MOV-", 5, ids)
	}
	v.doc.Movements = append(v.doc.Movements, *movement)
	return nil
}

func (v docMovements) GetByID(id string) (*entity.Movement, error) {
	for i := range v.doc.Movements {
		if v.doc.Movements[i].ID == id {
			m := v.doc.Movements[i]
			return &m, nil
		}
	}
	return nil, nil
}

// List devuelve movimientos filtrados, del más reciente al más antiguo.
func (v docMovements) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for i := range v.doc.Movements {
		m := v.doc.Movements[i]
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.From != nil && m.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.Date.After(*filter.To) {
			continue
		}
		list = append(list, &m)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}

func (v docMovements) ListByProduct(productID string) ([]*entity.Movement, error) {
	return v.List(repository.MovementFilter{ProductID: productID})
}

func (v docMovements) CountByProduct(productID string) (int, error) {
	n := 0
	for i := range v.doc.Movements {
		if v.doc.Movements[i].ProductID == productID {
			n++
		}
	}
	return n, nil
}

// ── Auditoría ─────────────────────────────────────────────────────────────────

type docAudit struct {
	doc *entity.Document
}

var _ repository.AuditRepository = docAudit{}

func (v docAudit) Append(entry *entity.AuditEntry) error {
	v.doc.AuditLog = append(v.doc.AuditLog, *entry)
	return nil
}

// List devuelve entradas de auditoría, las más recientes primero.
func (v docAudit) List(user, action string) ([]*entity.AuditEntry, error) {
	var list []*entity.AuditEntry
	for i := range v.doc.AuditLog {
		e := v.doc.AuditLog[i]
		if user != "" && e.User != user {
			continue
		}
		if action != "" && e.Action != action {
			continue
		}
		list = append(list, &e)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Timestamp.After(list[j].Timestamp) })
	return list, nil
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

type docUsers struct {
	doc *entity.Document
}

var _ repository.UserRepository = docUsers{}

func (v docUsers) Create(user *entity.User) error {
	for i := range v.doc.Users {
		if v.doc.Users[i].Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	v.doc.Users = append(v.doc.Users, *user)
	return nil
}

func (v docUsers) FindByUsername(username string) (*entity.User, error) {
	for i := range v.doc.Users {
		if v.doc.Users[i].Username == username {
			u := v.doc.Users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (v docUsers) List() ([]*entity.User, error) {
	list := make([]*entity.User, 0, len(v.doc.Users))
	for i := range v.doc.Users {
		u := v.doc.Users[i]
		list = append(list, &u)
	}
	return list, nil
}
