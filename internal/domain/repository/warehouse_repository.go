package repository

import (
	"context"

	"github.com/jhoicas/bodega-sync-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// Las implementaciones traducen sus errores a los sentinelas de domain.
type WarehouseRepository interface {
	// List devuelve todas las bodegas ordenadas por warehouseID ascendente.
	List(ctx context.Context) ([]*entity.Warehouse, error)
	GetByWarehouseID(ctx context.Context, warehouseID int) (*entity.Warehouse, error)
	Insert(ctx context.Context, warehouse *entity.Warehouse) error
	// InsertMany inserta sin orden; un duplicado devuelve domain.ErrAlreadyLoaded y
	// lo ya insertado se queda.
	InsertMany(ctx context.Context, warehouses []*entity.Warehouse) error
	Delete(ctx context.Context, warehouseID int) error
	// PushProductEntry agrega la entrada al primer bloque de datos de la bodega.
	PushProductEntry(ctx context.Context, warehouseID int, entry entity.ProductEntry) error
	// PullProductEntry quita la entrada del primer bloque de todas las bodegas y
	// devuelve cuántas bodegas se modificaron.
	PullProductEntry(ctx context.Context, productID string) (int64, error)
	// FlattenProductEntries devuelve todas las entradas anidadas en orden de unwind.
	FlattenProductEntries(ctx context.Context) ([]entity.ProductEntry, error)
}
