package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/bodega-sync-api/internal/domain"
	"github.com/jhoicas/bodega-sync-api/internal/domain/entity"
	"github.com/jhoicas/bodega-sync-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// firstBlockProducts path del arreglo de productos del primer bloque de datos.
const firstBlockProducts = "warehouseData.0.productData"

// WarehouseRepo implementación del puerto WarehouseRepository sobre MongoDB.
type WarehouseRepo struct {
	coll *mongo.Collection
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(db *mongo.Database) *WarehouseRepo {
	return &WarehouseRepo{coll: db.Collection(WarehouseCollection)}
}

// List devuelve todas las bodegas ordenadas por warehouseID.
func (r *WarehouseRepo) List(ctx context.Context) ([]*entity.Warehouse, error) {
	opts := options.Find().SetSort(bson.D{{Key: "warehouseID", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	list := make([]*entity.Warehouse, 0)
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode warehouses: %w", err)
	}
	return list, nil
}

// GetByWarehouseID obtiene una bodega por su clave de negocio.
func (r *WarehouseRepo) GetByWarehouseID(ctx context.Context, warehouseID int) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := r.coll.FindOne(ctx, bson.D{{Key: "warehouseID", Value: warehouseID}}).Decode(&w)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("get warehouse %d: %w", warehouseID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get warehouse %d: %w", warehouseID, err)
	}
	return &w, nil
}

// Insert persiste una bodega nueva y completa su _id.
func (r *WarehouseRepo) Insert(ctx context.Context, warehouse *entity.Warehouse) error {
	warehouse.Normalize()
	res, err := r.coll.InsertOne(ctx, warehouse)
	if err != nil {
		return writeError("insert warehouse", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok && warehouse.ObjectID == nil {
		warehouse.ObjectID = &oid
	}
	return nil
}

// InsertMany inserta el lote sin orden: un duplicado no detiene el resto del lote.
func (r *WarehouseRepo) InsertMany(ctx context.Context, warehouses []*entity.Warehouse) error {
	if len(warehouses) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(warehouses))
	for _, w := range warehouses {
		w.Normalize()
		docs = append(docs, w)
	}
	_, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert warehouses: %w: %v", domain.ErrAlreadyLoaded, err)
		}
		return writeError("insert warehouses", err)
	}
	return nil
}

// Delete elimina una bodega por warehouseID.
func (r *WarehouseRepo) Delete(ctx context.Context, warehouseID int) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "warehouseID", Value: warehouseID}})
	if err != nil {
		return fmt.Errorf("delete warehouse %d: %w", warehouseID, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("delete warehouse %d: %w", warehouseID, domain.ErrNotFound)
	}
	return nil
}

// PushProductEntry agrega la entrada al primer bloque de datos. Si ninguna bodega coincide
// devuelve domain.ErrNotFound.
func (r *WarehouseRepo) PushProductEntry(ctx context.Context, warehouseID int, e entity.ProductEntry) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "warehouseID", Value: warehouseID}},
		bson.D{{Key: "$push", Value: bson.D{{Key: firstBlockProducts, Value: e}}}},
	)
	if err != nil {
		return writeError(fmt.Sprintf("push product into warehouse %d", warehouseID), err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("push product into warehouse %d: %w", warehouseID, domain.ErrNotFound)
	}
	return nil
}

// PullProductEntry quita la entrada del primer bloque de todas las bodegas que la contengan.
func (r *WarehouseRepo) PullProductEntry(ctx context.Context, productID string) (int64, error) {
	res, err := r.coll.UpdateMany(ctx,
		bson.D{{Key: firstBlockProducts + ".productID", Value: productID}},
		bson.D{{Key: "$pull", Value: bson.D{{Key: firstBlockProducts, Value: bson.D{{Key: "productID", Value: productID}}}}}},
	)
	if err != nil {
		return 0, writeError(fmt.Sprintf("pull product %q", productID), err)
	}
	return res.ModifiedCount, nil
}

// FlattenProductEntries ejecuta la agregación $unwind/$project sobre todas las bodegas.
func (r *WarehouseRepo) FlattenProductEntries(ctx context.Context) ([]entity.ProductEntry, error) {
	cur, err := r.coll.Aggregate(ctx, flattenPipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate product entries: %w", err)
	}
	entries := make([]entity.ProductEntry, 0)
	if err := cur.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode product entries: %w", err)
	}
	return entries, nil
}
