package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/bodega-sync-api/internal/domain"
	"github.com/jhoicas/bodega-sync-api/internal/domain/entity"
	"github.com/jhoicas/bodega-sync-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para bodegas.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// List lista todas las bodegas ordenadas por warehouseID.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]*entity.Warehouse, error) {
	return uc.repo.List(ctx)
}

// Get obtiene una bodega por warehouseID (en texto, tal como llega en la ruta).
func (uc *WarehouseUseCase) Get(ctx context.Context, rawID string) (*entity.Warehouse, error) {
	id, err := ParseWarehouseID(rawID)
	if err != nil {
		return nil, err
	}
	return uc.repo.GetByWarehouseID(ctx, id)
}

// Create inserta una bodega. Devuelve domain.ErrConflict si el warehouseID ya existe.
func (uc *WarehouseUseCase) Create(ctx context.Context, w *entity.Warehouse) error {
	return uc.repo.Insert(ctx, w)
}

// Delete elimina una bodega por warehouseID.
func (uc *WarehouseUseCase) Delete(ctx context.Context, rawID string) error {
	id, err := ParseWarehouseID(rawID)
	if err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// ParseWarehouseID convierte el id de la ruta a entero; si no es entero devuelve domain.ErrInvalidID.
func ParseWarehouseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("warehouseID %q: %w", raw, domain.ErrInvalidID)
	}
	return id, nil
}
