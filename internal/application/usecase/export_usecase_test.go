package usecase_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/application/usecase"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/infrastructure/localstore"
)

func newExportEnv(t *testing.T) (*catalogEnv, *usecase.ExportUseCase) {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "inventario.json"))
	require.NoError(t, err)

	products := localstore.NewProductRepository(store)
	categories := localstore.NewCategoryRepository(store)
	movements := localstore.NewMovementRepository(store)
	audit := localstore.NewAuditRepository(store)
	txRunner := localstore.NewTxRunner(store)

	env := &catalogEnv{
		store:      store,
		productUC:  usecase.NewProductUseCase(products, categories, txRunner),
		categoryUC: usecase.NewCategoryUseCase(categories, txRunner),
		register:   inventory.NewRegisterMovementUseCase(txRunner, movements, audit),
	}
	return env, usecase.NewExportUseCase(localstore.NewDocumentRepository(store))
}

func TestExport_IncluyeMetadatosYTotales(t *testing.T) {
	env, exportUC := newExportEnv(t)
	catID := env.seedCategory(t, "Electrónica")
	out, err := env.productUC.Create(createReq("SKU-001", catID))
	require.NoError(t, err)
	_, err = env.register.RegisterEntry(context.Background(), inventory.MovementInput{
		ProductID: out.ID, Quantity: 5, Reason: "PURCHASE", User: "admin",
	})
	require.NoError(t, err)

	data, err := exportUC.Export()
	require.NoError(t, err)

	var doc dto.ExportDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "1.0", doc.Metadata.Version)
	assert.False(t, doc.Metadata.ExportDate.IsZero())
	assert.Equal(t, 1, doc.Metadata.Totals.Categories)
	assert.Equal(t, 1, doc.Metadata.Totals.Products)
	assert.Equal(t, 1, doc.Metadata.Totals.Movements)
}

func TestExportImport_RoundTrip(t *testing.T) {
	env, exportUC := newExportEnv(t)
	catID := env.seedCategory(t, "Electrónica")
	out, err := env.productUC.Create(createReq("SKU-001", catID))
	require.NoError(t, err)
	_, err = env.register.RegisterEntry(context.Background(), inventory.MovementInput{
		ProductID: out.ID, Quantity: 5, Reason: "PURCHASE", User: "admin",
	})
	require.NoError(t, err)

	backup, err := exportUC.Export()
	require.NoError(t, err)

	// Un segundo sistema vacío restaurado desde el respaldo reproduce el contenido.
	otro, otroExportUC := newExportEnv(t)
	require.NoError(t, otroExportUC.Import(backup))

	products, err := otro.productUC.List(true)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "SKU-001", products[0].SKU)
	assert.EqualValues(t, 15, products[0].Quantity)

	categories, err := otro.categoryUC.List()
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	restored, err := otroExportUC.Export()
	require.NoError(t, err)

	// Mismo contenido salvo los campos de fecha refrescados.
	var a, b dto.ExportDocument
	require.NoError(t, json.Unmarshal(backup, &a))
	require.NoError(t, json.Unmarshal(restored, &b))
	assert.Equal(t, a.Categories, b.Categories)
	assert.Equal(t, a.Products, b.Products)
	assert.Equal(t, a.Movements, b.Movements)
}

func TestImport_FormatoInvalido(t *testing.T) {
	env, exportUC := newExportEnv(t)
	env.seedCategory(t, "Intacta")

	casos := [][]byte{
		[]byte("esto no es json"),
		[]byte(`{"metadata":{}}`),
		[]byte(`{"categories":[],"products":[]}`), // falta movements
	}
	for _, data := range casos {
		err := exportUC.Import(data)
		assert.ErrorIs(t, err, domain.ErrInvalidImportFormat, "input: %s", data)
	}

	// El estado previo queda intacto tras importes rechazados.
	categories, err := env.categoryUC.List()
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}
