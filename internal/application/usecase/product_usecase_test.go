package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-sync-api/internal/application/projection"
	"github.com/jhoicas/bodega-sync-api/internal/application/usecase"
	"github.com/jhoicas/bodega-sync-api/internal/domain"
	"github.com/jhoicas/bodega-sync-api/internal/domain/entity"
	"github.com/jhoicas/bodega-sync-api/internal/infrastructure/memory"
)

type fixture struct {
	store      *memory.Store
	engine     *projection.Engine
	warehouses *usecase.WarehouseUseCase
	products   *usecase.ProductUseCase
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := memory.NewStore()
	engine := projection.NewEngine(store.Warehouses(), store.Products(), projection.Options{}, nil)
	return fixture{
		store:      store,
		engine:     engine,
		warehouses: usecase.NewWarehouseUseCase(store.Warehouses()),
		products:   usecase.NewProductUseCase(store.Products(), store.Warehouses(), engine),
	}
}

func widget() entity.ProductEntry {
	return entity.ProductEntry{ProductID: "p1", ProductName: "Widget", ProductQuantity: decimal.NewFromInt(5)}
}

func (f fixture) insertWarehouse(t *testing.T, id int) {
	t.Helper()
	require.NoError(t, f.warehouses.Create(context.Background(), &entity.Warehouse{
		WarehouseID:   id,
		WarehouseData: []entity.WarehouseData{{ProductData: []entity.ProductEntry{}}},
	}))
}

// Escenario: insertar bodega 1, agregar p1 y consultarlo en la colección plana.
func TestAddToWarehouse_RoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.insertWarehouse(t, 1)

	res, err := f.products.AddToWarehouse(ctx, "1", widget())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Entries)

	got, err := f.products.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ProductID)
	assert.Equal(t, "Widget", got.ProductName)
	assert.True(t, decimal.NewFromInt(5).Equal(got.ProductQuantity))
}

func TestAddToWarehouse_IDNoEntero(t *testing.T) {
	f := newFixture(t)
	_, err := f.products.AddToWarehouse(context.Background(), "abc", widget())
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

// Push sobre una bodega inexistente: NotFound explícito y sin mutaciones.
func TestAddToWarehouse_BodegaInexistente(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.insertWarehouse(t, 1)

	_, err := f.products.AddToWarehouse(ctx, "42", widget())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	w, err := f.warehouses.Get(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, w.WarehouseData[0].ProductData)
	list, err := f.products.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAddToWarehouse_BodegaSinBloquesCreaElPrimero(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.warehouses.Create(ctx, &entity.Warehouse{WarehouseID: 5}))

	_, err := f.products.AddToWarehouse(ctx, "5", widget())
	require.NoError(t, err)

	w, err := f.warehouses.Get(ctx, "5")
	require.NoError(t, err)
	require.Len(t, w.WarehouseData, 1)
	assert.Len(t, w.WarehouseData[0].ProductData, 1)
}

// Escenario: borrar p1 elimina el registro plano y la entrada anidada; una nueva
// proyección no lo vuelve a insertar.
func TestDelete_BorradoDobleNoReaparece(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.insertWarehouse(t, 1)
	_, err := f.products.AddToWarehouse(ctx, "1", widget())
	require.NoError(t, err)

	res, err := f.products.Delete(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, res.FlatDeleted)
	assert.Equal(t, int64(1), res.WarehousesModified)

	_, err = f.engine.Run(ctx)
	require.NoError(t, err)
	_, err = f.products.Get(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	w, err := f.warehouses.Get(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, w.WarehouseData[0].ProductData)
}

func TestDelete_QuitaDeTodasLasBodegas(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.insertWarehouse(t, 1)
	f.insertWarehouse(t, 2)
	_, err := f.products.AddToWarehouse(ctx, "1", widget())
	require.NoError(t, err)
	_, err = f.products.AddToWarehouse(ctx, "2", widget())
	require.NoError(t, err)

	res, err := f.products.Delete(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.WarehousesModified)
}

func TestDelete_SoloAnidadoNoEsNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.insertWarehouse(t, 1)
	require.NoError(t, f.store.Warehouses().PushProductEntry(ctx, 1, widget()))

	res, err := f.products.Delete(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, res.FlatDeleted)
	assert.Equal(t, int64(1), res.WarehousesModified)
}

func TestDelete_Inexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.products.Delete(context.Background(), "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_OrdenadoPorProductID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.insertWarehouse(t, 1)
	for _, id := range []string{"c", "a", "b"} {
		_, err := f.products.AddToWarehouse(ctx, "1", entity.ProductEntry{ProductID: id, ProductName: id, ProductQuantity: decimal.NewFromInt(1)})
		require.NoError(t, err)
	}

	list, err := f.products.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].ProductID)
	assert.Equal(t, "b", list[1].ProductID)
	assert.Equal(t, "c", list[2].ProductID)
}
