package projection_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-sync-api/internal/domain/entity"
	"github.com/jhoicas/bodega-sync-api/internal/domain/projection"
)

func entry(id, name string, qty int64) entity.ProductEntry {
	return entity.ProductEntry{ProductID: id, ProductName: name, ProductQuantity: decimal.NewFromInt(qty)}
}

func warehouse(id int, blocks ...[]entity.ProductEntry) *entity.Warehouse {
	w := &entity.Warehouse{WarehouseID: id}
	for _, b := range blocks {
		w.WarehouseData = append(w.WarehouseData, entity.WarehouseData{ProductData: b})
	}
	return w
}

func TestFlatten_RecorreBodegasBloquesYEntradasEnOrden(t *testing.T) {
	ws := []*entity.Warehouse{
		warehouse(1,
			[]entity.ProductEntry{entry("a", "A", 1), entry("b", "B", 2)},
			[]entity.ProductEntry{entry("c", "C", 3)},
		),
		nil,
		warehouse(2),
		warehouse(3, []entity.ProductEntry{entry("d", "D", 4)}),
	}

	got := projection.Flatten(ws)

	ids := make([]string, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.ProductID)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids)
}

func TestFlatten_SinBodegas(t *testing.T) {
	assert.Empty(t, projection.Flatten(nil))
}

func TestProject_UltimaEntradaGana(t *testing.T) {
	entries := []entity.ProductEntry{
		entry("p1", "Widget", 5),
		entry("p2", "Gadget", 1),
		entry("p1", "Widget v2", 9),
	}

	got := projection.Project(entries)

	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ProductID, "el orden de salida es el de la primera aparición")
	assert.Equal(t, "p1", got[0].ID, "_id replica productID")
	assert.Equal(t, "Widget v2", got[0].ProductName)
	assert.True(t, decimal.NewFromInt(9).Equal(got[0].ProductQuantity))
	assert.Equal(t, "p2", got[1].ProductID)
}

func TestProject_Idempotente(t *testing.T) {
	entries := []entity.ProductEntry{entry("x", "X", 1), entry("y", "Y", 2), entry("x", "X2", 3)}
	assert.Equal(t, projection.Project(entries), projection.Project(entries))
}

func TestStale(t *testing.T) {
	projected := []entity.Product{{ProductID: "a"}, {ProductID: "c"}}

	assert.Equal(t, []string{"b", "d"}, projection.Stale([]string{"a", "b", "c", "d"}, projected))
	assert.Empty(t, projection.Stale([]string{"a"}, projected))
	assert.Equal(t, []string{"a"}, projection.Stale([]string{"a"}, nil))
}
