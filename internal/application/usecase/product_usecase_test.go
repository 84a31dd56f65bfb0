package usecase_test

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
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type catalogEnv struct {
	store      *localstore.Store
	productUC  *usecase.ProductUseCase
	categoryUC *usecase.CategoryUseCase
	register   *inventory.RegisterMovementUseCase
}

func newCatalogEnv(t *testing.T) *catalogEnv {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "inventario.json"))
	require.NoError(t, err)

	products := localstore.NewProductRepository(store)
	categories := localstore.NewCategoryRepository(store)
	movements := localstore.NewMovementRepository(store)
	audit := localstore.NewAuditRepository(store)
	txRunner := localstore.NewTxRunner(store)

	return &catalogEnv{
		store:      store,
		productUC:  usecase.NewProductUseCase(products, categories, txRunner),
		categoryUC: usecase.NewCategoryUseCase(categories, txRunner),
		register:   inventory.NewRegisterMovementUseCase(txRunner, movements, audit),
	}
}

func (e *catalogEnv) seedCategory(t *testing.T, name string) string {
	t.Helper()
	out, err := e.categoryUC.Create(dto.CreateCategoryRequest{Name: name})
	require.NoError(t, err)
	return out.ID
}

func createReq(sku, categoryID string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:           sku,
		Name:          "Producto " + sku,
		CategoryID:    categoryID,
		PurchasePrice: decimal.NewFromInt(100),
		SellPrice:     decimal.NewFromInt(150),
		Quantity:      10,
	}
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_AplicaDefaults(t *testing.T) {
	env := newCatalogEnv(t)
	catID := env.seedCategory(t, "Electrónica")

	out, err := env.productUC.Create(createReq("SKU-001", catID))
	require.NoError(t, err)

	assert.Equal(t, "PROD-001", out.ID)
	assert.EqualValues(t, 5, out.MinQuantity, "mínimo por defecto")
	assert.EqualValues(t, 100, out.MaxQuantity, "máximo por defecto")
	assert.Equal(t, "Almacén General", out.Location)
	assert.Equal(t, "USD", out.Currency)
	assert.Equal(t, entity.ProductStatusActive, out.Status)
	// margen = (150-100)/100 * 100 = 50%
	assert.True(t, out.Margin.Equal(decimal.NewFromInt(50)), "margen calculado: %s", out.Margin)
}

func TestProductCreate_CamposObligatorios(t *testing.T) {
	env := newCatalogEnv(t)
	catID := env.seedCategory(t, "Electrónica")

	casos := []dto.CreateProductRequest{
		{Name: "Sin SKU", CategoryID: catID},
		{SKU: "SKU-001", CategoryID: catID},
		{SKU: "SKU-001", Name: "Sin categoría"},
	}
	for _, in := range casos {
		_, err := env.productUC.Create(in)
		assert.ErrorIs(t, err, domain.ErrMissingField)
	}
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	env := newCatalogEnv(t)
	_, err := env.productUC.Create(createReq("SKU-001", "CAT-999"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	env := newCatalogEnv(t)
	catID := env.seedCategory(t, "Electrónica")

	_, err := env.productUC.Create(createReq("SKU-001", catID))
	require.NoError(t, err)

	_, err = env.productUC.Create(createReq("SKU-001", catID))
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)

	// Un producto archivado sigue reservando su SKU.
	out, err := env.productUC.Create(createReq("SKU-002", catID))
	require.NoError(t, err)
	_, err = env.productUC.Update(out.ID, dto.UpdateProductRequest{Status: strPtr(entity.ProductStatusInactive)})
	require.NoError(t, err)
	_, err = env.productUC.Create(createReq("SKU-002", catID))
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
}

func TestProductCreate_MargenConCompraCero(t *testing.T) {
	env := newCatalogEnv(t)
	catID := env.seedCategory(t, "Regalos")

	in := createReq("SKU-001", catID)
	in.PurchasePrice = decimal.Zero
	out, err := env.productUC.Create(in)
	require.NoError(t, err)
	assert.True(t, out.Margin.IsZero(), "sin precio de compra no hay margen que calcular")
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualización parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_CombinaCampoACampo(t *testing.T) {
	env := newCatalogEnv(t)
	catID := env.seedCategory(t, "Electrónica")
	out, err := env.productUC.Create(createReq("SKU-001", catID))
	require.NoError(t, err)

	nuevoPrecio := decimal.NewFromInt(200)
	updated, err := env.productUC.Update(out.ID, dto.UpdateProductRequest{
		Name:      strPtr("Renombrado"),
		SellPrice: &nuevoPrecio,
	})
	require.NoError(t, err)

	assert.Equal(t, "Renombrado", updated.Name)
	assert.Equal(t, "SKU-001", updated.SKU, "los campos no enviados no cambian")
	assert.True(t, updated.PurchasePrice.Equal(decimal.NewFromInt(100)))
	assert.EqualValues(t, 10, updated.Quantity, "la cantidad solo se mueve vía el ledger")
	// margen rederiva: (200-100)/100*100 = 100%
	assert.True(t, updated.Margin.Equal(decimal.NewFromInt(100)), "margen rederivado: %s", updated.Margin)
}

func TestProductUpdate_CategoriaDebeExistir(t *testing.T) {
	env := newCatalogEnv(t)
	catID := env.seedCategory(t, "Electrónica")
	out, err := env.productUC.Create(createReq("SKU-001", catID))
	require.NoError(t, err)

	_, err = env.productUC.Update(out.ID, dto.UpdateProductRequest{CategoryID: strPtr("CAT-999")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminación: archivar vs eliminar
// ──────────────────────────────────────────────────────────────────────────────

func TestProductDelete_SinMovimientos_EliminaDefinitivo(t *testing.T) {
	env := newCatalogEnv(t)
	catID := env.seedCategory(t, "Electrónica")
	out, err := env.productUC.Create(createReq("SKU-001", catID))
	require.NoError(t, err)

	res, err := env.productUC.Delete(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.DeleteOutcomeRemoved), res.Outcome)

	_, err = env.productUC.GetByID(out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_ConMovimientos_Archiva(t *testing.T) {
	env := newCatalogEnv(t)
	catID := env.seedCategory(t, "Electrónica")
	out, err := env.productUC.Create(createReq("SKU-001", catID))
	require.NoError(t, err)

	_, err = env.register.RegisterEntry(context.Background(), inventory.MovementInput{
		ProductID: out.ID, Quantity: 5, Reason: "PURCHASE", User: "admin",
	})
	require.NoError(t, err)

	res, err := env.productUC.Delete(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.DeleteOutcomeArchived), res.Outcome)

	// El registro sigue, pero inactivo y fuera de los listados por defecto.
	got, err := env.productUC.GetByID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusInactive, got.Status)

	activos, err := env.productUC.List(false)
	require.NoError(t, err)
	assert.Empty(t, activos)
	todos, err := env.productUC.List(true)
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestProductDelete_Inexistente(t *testing.T) {
	env := newCatalogEnv(t)
	_, err := env.productUC.Delete(context.Background(), "PROD-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas derivadas
// ──────────────────────────────────────────────────────────────────────────────

func TestProductLowStock_EnOBajoElMinimo(t *testing.T) {
	env := newCatalogEnv(t)
	catID := env.seedCategory(t, "Electrónica")

	bajo := createReq("SKU-BAJO", catID)
	bajo.Quantity = 5 // igual al mínimo por defecto cuenta como bajo
	_, err := env.productUC.Create(bajo)
	require.NoError(t, err)

	ok := createReq("SKU-OK", catID)
	ok.Quantity = 50
	_, err = env.productUC.Create(ok)
	require.NoError(t, err)

	list, err := env.productUC.LowStock()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "SKU-BAJO", list[0].SKU)
}

func TestProductSearch_NombreSKUDescripcion(t *testing.T) {
	env := newCatalogEnv(t)
	catID := env.seedCategory(t, "Electrónica")

	in := createReq("TEC-001", catID)
	in.Name = "Teclado mecánico"
	in.Description = "Switch azul"
	_, err := env.productUC.Create(in)
	require.NoError(t, err)

	for _, term := range []string{"teclado", "tec-0", "switch"} {
		list, err := env.productUC.Search(term)
		require.NoError(t, err)
		assert.Len(t, list, 1, "término %q", term)
	}

	list, err := env.productUC.Search("monitor")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProductStats_Agregados(t *testing.T) {
	env := newCatalogEnv(t)
	catID := env.seedCategory(t, "Electrónica")

	a := createReq("SKU-A", catID) // 10 uds a 150
	_, err := env.productUC.Create(a)
	require.NoError(t, err)

	b := createReq("SKU-B", catID)
	b.Quantity = 0
	b.SellPrice = decimal.NewFromInt(300)
	_, err = env.productUC.Create(b)
	require.NoError(t, err)

	stats, err := env.productUC.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 2, stats.ActiveProducts)
	assert.EqualValues(t, 10, stats.TotalItems)
	assert.True(t, stats.InventoryValue.Equal(decimal.NewFromInt(1500)), "valor: %s", stats.InventoryValue)
	assert.Equal(t, 1, stats.OutOfStockCount)
	assert.Equal(t, 1, stats.LowStockCount, "el producto sin stock también está bajo mínimo")
}
