package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/bodega-sync-api/internal/domain"
	"github.com/jhoicas/bodega-sync-api/internal/domain/entity"
	"github.com/jhoicas/bodega-sync-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre MongoDB.
type ProductRepo struct {
	coll *mongo.Collection
}

// NewProductRepository construye el adaptador de persistencia para la colección plana.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{coll: db.Collection(ProductCollection)}
}

// List devuelve los productos ordenados por productID.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "productID", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	list := make([]*entity.Product, 0)
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return list, nil
}

// GetByProductID obtiene un producto plano por productID.
func (r *ProductRepo) GetByProductID(ctx context.Context, productID string) (*entity.Product, error) {
	var p entity.Product
	err := r.coll.FindOne(ctx, bson.D{{Key: "productID", Value: productID}}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("get product %q: %w", productID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get product %q: %w", productID, err)
	}
	return &p, nil
}

// UpsertMany reemplaza o inserta cada producto en un único BulkWrite ordenado.
// El filtro es por _id (= productID), igual que un $merge sobre la colección.
func (r *ProductRepo) UpsertMany(ctx context.Context, products []entity.Product) (int64, error) {
	if len(products) == 0 {
		return 0, nil
	}
	models := make([]mongo.WriteModel, 0, len(products))
	for _, p := range products {
		p.ID = p.ProductID
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.D{{Key: "_id", Value: p.ProductID}}).
			SetReplacement(p).
			SetUpsert(true))
	}
	res, err := r.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return 0, writeError("upsert products", err)
	}
	return res.MatchedCount + res.UpsertedCount, nil
}

// Delete elimina un producto plano por productID.
func (r *ProductRepo) Delete(ctx context.Context, productID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "productID", Value: productID}})
	if err != nil {
		return fmt.Errorf("delete product %q: %w", productID, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("delete product %q: %w", productID, domain.ErrNotFound)
	}
	return nil
}

// ListIDs devuelve todos los productID de la colección plana.
func (r *ProductRepo) ListIDs(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.D{{Key: "_id", Value: 0}, {Key: "productID", Value: 1}}).
		SetSort(bson.D{{Key: "productID", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list product ids: %w", err)
	}
	var rows []struct {
		ProductID string `bson:"productID"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode product ids: %w", err)
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ProductID)
	}
	return ids, nil
}

// DeleteMany elimina los productos planos indicados.
func (r *ProductRepo) DeleteMany(ctx context.Context, productIDs []string) (int64, error) {
	if len(productIDs) == 0 {
		return 0, nil
	}
	res, err := r.coll.DeleteMany(ctx, bson.D{{Key: "productID", Value: bson.D{{Key: "$in", Value: productIDs}}}})
	if err != nil {
		return 0, fmt.Errorf("delete products: %w", err)
	}
	return res.DeletedCount, nil
}
