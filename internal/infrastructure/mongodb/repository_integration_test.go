package mongodb

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/bodega-sync-api/internal/domain"
	"github.com/jhoicas/bodega-sync-api/internal/domain/entity"
	"github.com/jhoicas/bodega-sync-api/pkg/config"
)

// Estas pruebas requieren un MongoDB real: MONGO_TEST_URI=mongodb://localhost:27017 go test ./...
func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI no definido")
	}
	ctx := context.Background()
	client, err := NewClient(ctx, config.MongoConfig{
		URI:            uri,
		MaxPoolSize:    4,
		ConnectTimeout: 5 * time.Second,
	}, "bodega-sync-api-test")
	require.NoError(t, err)

	db := client.Database(fmt.Sprintf("bodega_test_%d", time.Now().UnixNano()))
	require.NoError(t, EnsureIndexes(ctx, db))
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return db
}

func TestMongo_PushFlattenUpsert(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	warehouses := NewWarehouseRepository(db)
	products := NewProductRepository(db)

	require.NoError(t, warehouses.Insert(ctx, &entity.Warehouse{
		WarehouseID:   1,
		WarehouseData: []entity.WarehouseData{{}},
		Extra:         map[string]interface{}{"name": "Central"},
	}))
	err := warehouses.Insert(ctx, &entity.Warehouse{WarehouseID: 1})
	assert.ErrorIs(t, err, domain.ErrConflict)

	widget := entity.ProductEntry{ProductID: "p1", ProductName: "Widget", ProductQuantity: decimal.NewFromInt(5)}
	require.NoError(t, warehouses.PushProductEntry(ctx, 1, widget))
	assert.ErrorIs(t, warehouses.PushProductEntry(ctx, 99, widget), domain.ErrNotFound)

	entries, err := warehouses.FlattenProductEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, widget.ProductID, entries[0].ProductID)
	assert.True(t, widget.ProductQuantity.Equal(entries[0].ProductQuantity))

	n, err := products.UpsertMany(ctx, []entity.Product{entity.ProductFromEntry(widget)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = products.UpsertMany(ctx, []entity.Product{entity.ProductFromEntry(widget)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := products.GetByProductID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.ProductName)

	w, err := warehouses.GetByWarehouseID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Central", w.Extra["name"])

	modified, err := warehouses.PullProductEntry(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	require.NoError(t, warehouses.Delete(ctx, 1))
	assert.ErrorIs(t, warehouses.Delete(ctx, 1), domain.ErrNotFound)
}

func TestMongo_InsertManyDuplicado(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	warehouses := NewWarehouseRepository(db)

	batch := []*entity.Warehouse{{WarehouseID: 1}, {WarehouseID: 2}}
	require.NoError(t, warehouses.InsertMany(ctx, batch))

	err := warehouses.InsertMany(ctx, []*entity.Warehouse{{WarehouseID: 2}, {WarehouseID: 3}})
	assert.ErrorIs(t, err, domain.ErrAlreadyLoaded)

	list, err := warehouses.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3, "la inserción sin orden conserva los documentos sin conflicto")
}
