package inventory_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/application/usecase"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/infrastructure/localstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: entorno completo sobre un documento temporal
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	store    *localstore.Store
	products *localstore.ProductRepo
	register *inventory.RegisterMovementUseCase
	queries  *inventory.MovementQueryUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "inventario.json"))
	require.NoError(t, err)

	products := localstore.NewProductRepository(store)
	movements := localstore.NewMovementRepository(store)
	audit := localstore.NewAuditRepository(store)
	txRunner := localstore.NewTxRunner(store)

	return &testEnv{
		store:    store,
		products: products,
		register: inventory.NewRegisterMovementUseCase(txRunner, movements, audit),
		queries:  inventory.NewMovementQueryUseCase(movements, products, audit),
	}
}

// seedProduct crea producto y categoría directamente en el almacén.
func (e *testEnv) seedProduct(t *testing.T, sku string, quantity, minQuantity int64) string {
	t.Helper()
	categories := localstore.NewCategoryRepository(e.store)
	txRunner := localstore.NewTxRunner(e.store)
	categoryUC := usecase.NewCategoryUseCase(categories, txRunner)
	productUC := usecase.NewProductUseCase(e.products, categories, txRunner)

	cat, err := categoryUC.Create(dto.CreateCategoryRequest{Name: "General"})
	require.NoError(t, err)

	minQty := minQuantity
	out, err := productUC.Create(dto.CreateProductRequest{
		SKU:           sku,
		Name:          "Producto " + sku,
		CategoryID:    cat.ID,
		PurchasePrice: decimal.NewFromInt(10),
		SellPrice:     decimal.NewFromInt(15),
		Quantity:      quantity,
		MinQuantity:   &minQty,
	})
	require.NoError(t, err)
	return out.ID
}

func (e *testEnv) quantityOf(t *testing.T, productID string) int64 {
	t.Helper()
	p, err := e.products.GetByID(productID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Inventory.Quantity
}

func entryInput(productID string, qty int64) inventory.MovementInput {
	return inventory.MovementInput{
		ProductID: productID,
		Quantity:  qty,
		Reason:    "PURCHASE",
		User:      "admin",
	}
}

func exitInput(productID string, qty int64) inventory.MovementInput {
	return inventory.MovementInput{
		ProductID: productID,
		Quantity:  qty,
		Reason:    "CUSTOMER_SALE",
		User:      "admin",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de entradas y salidas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterEntry_AumentaStockYRegistraMovimiento(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedProduct(t, "SKU-001", 10, 2)

	out, err := env.register.RegisterEntry(context.Background(), entryInput(id, 5))
	require.NoError(t, err)

	assert.Equal(t, "MOV-00001", out.ID, "el primer movimiento recibe el id MOV-00001")
	assert.Equal(t, entity.MovementTypeEntry, out.Type)
	assert.EqualValues(t, 5, out.Quantity)
	assert.Equal(t, entity.MovementStatusCompleted, out.Status)
	assert.EqualValues(t, 15, env.quantityOf(t, id))
}

func TestRegisterExit_HastaCeroYLuegoFalla(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedProduct(t, "SKU-001", 10, 2)

	// Vaciar exactamente el stock disponible es válido.
	_, err := env.register.RegisterExit(context.Background(), exitInput(id, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 0, env.quantityOf(t, id))

	// Una unidad más no hay de dónde sacarla.
	_, err = env.register.RegisterExit(context.Background(), exitInput(id, 1))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.EqualValues(t, 0, env.quantityOf(t, id), "el rechazo no toca la cantidad")
}

func TestRegisterEntry_RazonDeVentaEnEntrada_Falla(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedProduct(t, "SKU-001", 10, 2)

	in := entryInput(id, 5)
	in.Reason = "CUSTOMER_SALE" // razón de salida en una entrada
	_, err := env.register.RegisterEntry(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidReasonCode)

	assert.EqualValues(t, 10, env.quantityOf(t, id), "el producto queda intacto")
	movs, err := env.queries.List("", "", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, movs, "un movimiento rechazado no deja registro")
}

func TestRegisterMovement_RechazoNoDejaAuditoria(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedProduct(t, "SKU-001", 3, 1)

	_, err := env.register.RegisterExit(context.Background(), exitInput(id, 50))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	audit, err := env.queries.AuditLog("", "")
	require.NoError(t, err)
	assert.Empty(t, audit)
}

func TestRegisterMovement_GeneraEntradaDeAuditoria(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedProduct(t, "SKU-001", 10, 2)

	_, err := env.register.RegisterEntry(context.Background(), entryInput(id, 5))
	require.NoError(t, err)
	_, err = env.register.RegisterExit(context.Background(), exitInput(id, 3))
	require.NoError(t, err)

	audit, err := env.queries.AuditLog("", "")
	require.NoError(t, err)
	require.Len(t, audit, 2)

	soloSalidas, err := env.queries.AuditLog("", entity.AuditActionExitRegistered)
	require.NoError(t, err)
	require.Len(t, soloSalidas, 1)
	assert.Equal(t, "admin", soloSalidas[0].User)
	assert.NotEmpty(t, soloSalidas[0].ID, "cada entrada de auditoría lleva su propio id")
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden de validación: la primera falla gana
// ──────────────────────────────────────────────────────────────────────────────

func TestValidacion_ProductoAusenteGanaATodo(t *testing.T) {
	env := newTestEnv(t)

	// Cantidad inválida, razón inválida y usuario vacío a la vez: el producto
	// ausente se reporta primero.
	_, err := env.register.RegisterEntry(context.Background(), inventory.MovementInput{
		ProductID: "PROD-999",
		Quantity:  0,
		Reason:    "NO-EXISTE",
		User:      "",
	})
	assert.ErrorIs(t, err, domain.ErrMissingProduct)

	_, err = env.register.RegisterEntry(context.Background(), inventory.MovementInput{
		Quantity: 5, Reason: "PURCHASE", User: "admin",
	})
	assert.ErrorIs(t, err, domain.ErrMissingProduct, "productId vacío también cuenta como ausente")
}

func TestValidacion_CantidadAntesQueRazon(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedProduct(t, "SKU-001", 10, 2)

	in := inventory.MovementInput{ProductID: id, Quantity: 0, Reason: "NO-EXISTE", User: "admin"}
	_, err := env.register.RegisterEntry(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	in.Quantity = -3
	_, err = env.register.RegisterEntry(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestValidacion_StockInsuficienteAntesQueRazon(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedProduct(t, "SKU-001", 2, 1)

	// Salida con stock insuficiente Y razón inválida: gana el stock.
	in := inventory.MovementInput{ProductID: id, Quantity: 50, Reason: "NO-EXISTE", User: "admin"}
	_, err := env.register.RegisterExit(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestValidacion_UsuarioVacioAlFinal(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedProduct(t, "SKU-001", 10, 2)

	in := entryInput(id, 5)
	in.User = ""
	_, err := env.register.RegisterEntry(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrMissingUser)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes manuales
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterAdjustment_SignoDecideDireccion(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedProduct(t, "SKU-001", 10, 2)
	ctx := context.Background()

	out, err := env.register.RegisterAdjustment(ctx, id, 4, "admin", "conteo físico")
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeEntry, out.Type)
	assert.Equal(t, entity.ReasonAdjustment, out.Reason)
	assert.EqualValues(t, 14, env.quantityOf(t, id))

	out, err = env.register.RegisterAdjustment(ctx, id, -6, "admin", "merma detectada")
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeExit, out.Type)
	assert.EqualValues(t, 6, out.Quantity, "el movimiento guarda la magnitud, no el signo")
	assert.EqualValues(t, 8, env.quantityOf(t, id))
}

func TestRegisterAdjustment_NegativoMayorQueStock_Falla(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedProduct(t, "SKU-001", 5, 2)

	_, err := env.register.RegisterAdjustment(context.Background(), id, -9, "admin", "")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.EqualValues(t, 5, env.quantityOf(t, id))
}
