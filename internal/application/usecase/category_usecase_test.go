package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
)

func TestCategoryCreate_AplicaDefaults(t *testing.T) {
	env := newCatalogEnv(t)

	out, err := env.categoryUC.Create(dto.CreateCategoryRequest{Name: "Electrónica"})
	require.NoError(t, err)

	assert.Equal(t, "CAT-001", out.ID)
	assert.Equal(t, "📂", out.Icon, "icono por defecto")
	assert.Equal(t, "#4ECDC4", out.Color, "color por defecto")
	assert.True(t, out.Active)
}

func TestCategoryCreate_NombreObligatorio(t *testing.T) {
	env := newCatalogEnv(t)
	_, err := env.categoryUC.Create(dto.CreateCategoryRequest{Description: "sin nombre"})
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestCategoryUpdate_Parcial(t *testing.T) {
	env := newCatalogEnv(t)
	out, err := env.categoryUC.Create(dto.CreateCategoryRequest{Name: "Electrónica", Icon: "🖥️"})
	require.NoError(t, err)

	updated, err := env.categoryUC.Update(out.ID, dto.UpdateCategoryRequest{Name: strPtr("Cómputo")})
	require.NoError(t, err)
	assert.Equal(t, "Cómputo", updated.Name)
	assert.Equal(t, "🖥️", updated.Icon, "los campos no enviados no cambian")
}

func TestCategoryDelete_ConProductos_Bloqueado(t *testing.T) {
	env := newCatalogEnv(t)
	catID := env.seedCategory(t, "Electrónica")
	_, err := env.productUC.Create(createReq("SKU-001", catID))
	require.NoError(t, err)

	err = env.categoryUC.Delete(context.Background(), catID)
	assert.ErrorIs(t, err, domain.ErrCategoryInUse)

	// Sigue existiendo.
	_, err = env.categoryUC.GetByID(catID)
	assert.NoError(t, err)
}

func TestCategoryDelete_SinProductos_Elimina(t *testing.T) {
	env := newCatalogEnv(t)
	catID := env.seedCategory(t, "Vacía")

	require.NoError(t, env.categoryUC.Delete(context.Background(), catID))

	_, err := env.categoryUC.GetByID(catID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryDelete_Inexistente(t *testing.T) {
	env := newCatalogEnv(t)
	err := env.categoryUC.Delete(context.Background(), "CAT-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryListWithProductCounts(t *testing.T) {
	env := newCatalogEnv(t)
	conProductos := env.seedCategory(t, "Electrónica")
	env.seedCategory(t, "Vacía")

	_, err := env.productUC.Create(createReq("SKU-001", conProductos))
	require.NoError(t, err)
	_, err = env.productUC.Create(createReq("SKU-002", conProductos))
	require.NoError(t, err)

	list, err := env.categoryUC.ListWithProductCounts()
	require.NoError(t, err)
	require.Len(t, list, 2)

	counts := map[string]int{}
	for _, c := range list {
		counts[c.Name] = c.ProductCount
	}
	assert.Equal(t, 2, counts["Electrónica"])
	assert.Equal(t, 0, counts["Vacía"])
}
