package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-sync-api/internal/application/usecase"
	"github.com/jhoicas/bodega-sync-api/internal/domain"
	"github.com/jhoicas/bodega-sync-api/internal/domain/entity"
	"github.com/jhoicas/bodega-sync-api/internal/infrastructure/memory"
)

func TestWarehouse_ListOrdenadoYVacio(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewWarehouseUseCase(memory.NewStore().Warehouses())

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	for _, id := range []int{3, 1, 2} {
		require.NoError(t, uc.Create(ctx, &entity.Warehouse{WarehouseID: id}))
	}
	list, err = uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{list[0].WarehouseID, list[1].WarehouseID, list[2].WarehouseID})
}

// Escenario: warehouseID duplicado -> Conflict y el documento previo no cambia.
func TestWarehouse_CreateDuplicado(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewWarehouseUseCase(memory.NewStore().Warehouses())
	require.NoError(t, uc.Create(ctx, &entity.Warehouse{WarehouseID: 1, Extra: map[string]interface{}{"name": "Original"}}))

	err := uc.Create(ctx, &entity.Warehouse{WarehouseID: 1, Extra: map[string]interface{}{"name": "Otra"}})
	assert.ErrorIs(t, err, domain.ErrConflict)

	w, err := uc.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Original", w.Extra["name"])
}

func TestWarehouse_GetYDelete(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewWarehouseUseCase(memory.NewStore().Warehouses())
	require.NoError(t, uc.Create(ctx, &entity.Warehouse{WarehouseID: 7}))

	_, err := uc.Get(ctx, "x7")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
	_, err = uc.Get(ctx, "8")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, uc.Delete(ctx, " 7 "))
	assert.ErrorIs(t, uc.Delete(ctx, "7"), domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "siete"), domain.ErrInvalidID)
}

func TestParseWarehouseID(t *testing.T) {
	id, err := usecase.ParseWarehouseID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	_, err = usecase.ParseWarehouseID("4.2")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
	_, err = usecase.ParseWarehouseID("")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
