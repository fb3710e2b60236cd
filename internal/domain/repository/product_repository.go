package repository

import (
	"context"

	"github.com/jhoicas/bodega-sync-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para la colección plana de productos.
type ProductRepository interface {
	// List devuelve los productos ordenados por productID ascendente.
	List(ctx context.Context) ([]*entity.Product, error)
	GetByProductID(ctx context.Context, productID string) (*entity.Product, error)
	// UpsertMany reemplaza o inserta cada producto por productID, en orden.
	UpsertMany(ctx context.Context, products []entity.Product) (int64, error)
	// Delete devuelve domain.ErrNotFound si no se eliminó nada.
	Delete(ctx context.Context, productID string) error
	ListIDs(ctx context.Context) ([]string, error)
	DeleteMany(ctx context.Context, productIDs []string) (int64, error)
}
