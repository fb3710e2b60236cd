package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/bodega-sync-api/internal/application/projection"
	"github.com/jhoicas/bodega-sync-api/internal/domain"
	"github.com/jhoicas/bodega-sync-api/internal/domain/entity"
	"github.com/jhoicas/bodega-sync-api/internal/domain/repository"
)

// ProductUseCase casos de uso sobre la colección plana de productos. Las escrituras
// van a las entradas anidadas de las bodegas y luego se reproyectan.
type ProductUseCase struct {
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	projector  Projector
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, warehouses repository.WarehouseRepository, projector Projector) *ProductUseCase {
	return &ProductUseCase{products: products, warehouses: warehouses, projector: projector}
}

// DeleteResult resultado del borrado doble (plano + anidado).
type DeleteResult struct {
	FlatDeleted        bool
	WarehousesModified int64
}

// List lista los productos planos ordenados por productID.
func (uc *ProductUseCase) List(ctx context.Context) ([]*entity.Product, error) {
	return uc.products.List(ctx)
}

// Get obtiene un producto plano por productID.
func (uc *ProductUseCase) Get(ctx context.Context, productID string) (*entity.Product, error) {
	return uc.products.GetByProductID(ctx, productID)
}

// AddToWarehouse agrega la entrada al primer bloque de la bodega y reproyecta.
// Push y proyección no son atómicos: si la proyección falla la entrada anidada queda
// escrita y el error se devuelve al llamador.
func (uc *ProductUseCase) AddToWarehouse(ctx context.Context, rawWarehouseID string, e entity.ProductEntry) (projection.Result, error) {
	id, err := ParseWarehouseID(rawWarehouseID)
	if err != nil {
		return projection.Result{}, err
	}
	if err := uc.warehouses.PushProductEntry(ctx, id, e); err != nil {
		return projection.Result{}, err
	}
	return uc.projector.Run(ctx)
}

// Delete elimina el producto plano y quita sus entradas anidadas de todas las bodegas.
// Ambas operaciones se ejecutan siempre; un error de cualquiera se devuelve. Solo es
// domain.ErrNotFound si ninguna de las dos eliminó algo.
func (uc *ProductUseCase) Delete(ctx context.Context, productID string) (DeleteResult, error) {
	var res DeleteResult

	flatErr := uc.products.Delete(ctx, productID)
	res.FlatDeleted = flatErr == nil

	modified, pullErr := uc.warehouses.PullProductEntry(ctx, productID)
	res.WarehousesModified = modified

	if flatErr != nil && !errors.Is(flatErr, domain.ErrNotFound) {
		return res, flatErr
	}
	if pullErr != nil {
		return res, pullErr
	}
	if !res.FlatDeleted && res.WarehousesModified == 0 {
		return res, fmt.Errorf("delete product %q: %w", productID, domain.ErrNotFound)
	}
	return res, nil
}
