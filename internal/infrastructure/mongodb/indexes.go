package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WarehouseIndexes índices de la colección warehouse: warehouseID es la clave única de negocio.
var WarehouseIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "warehouseID", Value: 1}},
		Options: options.Index().SetName("uniq_warehouseID").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "warehouseData.productData.productID", Value: 1}},
		Options: options.Index().SetName("idx_warehouseData_productID"),
	},
}

// ProductIndexes índices de la colección product.
var ProductIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "productID", Value: 1}},
		Options: options.Index().SetName("uniq_productID").SetUnique(true),
	},
}

// EnsureIndexes crea los índices si no existen (idempotente).
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(WarehouseCollection).Indexes().CreateMany(ctx, WarehouseIndexes); err != nil {
		return fmt.Errorf("crear índices %s: %w", WarehouseCollection, err)
	}
	if _, err := db.Collection(ProductCollection).Indexes().CreateMany(ctx, ProductIndexes); err != nil {
		return fmt.Errorf("crear índices %s: %w", ProductCollection, err)
	}
	return nil
}
