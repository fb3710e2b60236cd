// Package memory implementa los puertos de persistencia en memoria. Sirve para
// ejecutar la API sin MongoDB (STORE_DRIVER=memory) y como doble de pruebas.
// Replica las reglas del almacenamiento real: claves únicas, orden natural de
// inserción para el unwind y push sobre el primer bloque de datos.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/bodega-sync-api/internal/domain"
	"github.com/jhoicas/bodega-sync-api/internal/domain/entity"
	"github.com/jhoicas/bodega-sync-api/internal/domain/projection"
	"github.com/jhoicas/bodega-sync-api/internal/domain/repository"
)

var (
	_ repository.WarehouseRepository = (*WarehouseRepo)(nil)
	_ repository.ProductRepository   = (*ProductRepo)(nil)
)

// Store agrupa el estado compartido de ambas colecciones.
type Store struct {
	mu         sync.RWMutex
	warehouses []*entity.Warehouse
	products   map[string]entity.Product
}

// NewStore crea un almacenamiento vacío.
func NewStore() *Store {
	return &Store{products: make(map[string]entity.Product)}
}

// Warehouses devuelve el repositorio de bodegas sobre este almacenamiento.
func (s *Store) Warehouses() *WarehouseRepo { return &WarehouseRepo{s: s} }

// Products devuelve el repositorio de productos sobre este almacenamiento.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// WarehouseRepo implementación en memoria de WarehouseRepository.
type WarehouseRepo struct {
	s *Store
}

func (r *WarehouseRepo) List(_ context.Context) ([]*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Warehouse, 0, len(r.s.warehouses))
	for _, w := range r.s.warehouses {
		out = append(out, cloneWarehouse(w))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].WarehouseID < out[j].WarehouseID })
	return out, nil
}

func (r *WarehouseRepo) GetByWarehouseID(_ context.Context, warehouseID int) (*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if i := r.s.indexOf(warehouseID); i >= 0 {
		return cloneWarehouse(r.s.warehouses[i]), nil
	}
	return nil, fmt.Errorf("get warehouse %d: %w", warehouseID, domain.ErrNotFound)
}

func (r *WarehouseRepo) Insert(_ context.Context, warehouse *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.insert(warehouse); err != nil {
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

func (r *WarehouseRepo) InsertMany(_ context.Context, warehouses []*entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	duplicated := false
	for _, w := range warehouses {
		if err := r.s.insert(w); err != nil {
			duplicated = true
		}
	}
	if duplicated {
		return fmt.Errorf("insert warehouses: %w", domain.ErrAlreadyLoaded)
	}
	return nil
}

func (r *WarehouseRepo) Delete(_ context.Context, warehouseID int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.indexOf(warehouseID)
	if i < 0 {
		return fmt.Errorf("delete warehouse %d: %w", warehouseID, domain.ErrNotFound)
	}
	r.s.warehouses = append(r.s.warehouses[:i], r.s.warehouses[i+1:]...)
	return nil
}

func (r *WarehouseRepo) PushProductEntry(_ context.Context, warehouseID int, e entity.ProductEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.indexOf(warehouseID)
	if i < 0 {
		return fmt.Errorf("push product into warehouse %d: %w", warehouseID, domain.ErrNotFound)
	}
	w := r.s.warehouses[i]
	if len(w.WarehouseData) == 0 {
		w.WarehouseData = append(w.WarehouseData, entity.WarehouseData{})
	}
	w.WarehouseData[0].ProductData = append(w.WarehouseData[0].ProductData, e)
	return nil
}

func (r *WarehouseRepo) PullProductEntry(_ context.Context, productID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var modified int64
	for _, w := range r.s.warehouses {
		if len(w.WarehouseData) == 0 {
			continue
		}
		block := &w.WarehouseData[0]
		kept := block.ProductData[:0]
		for _, e := range block.ProductData {
			if e.ProductID != productID {
				kept = append(kept, e)
			}
		}
		if len(kept) != len(block.ProductData) {
			block.ProductData = kept
			modified++
		}
	}
	return modified, nil
}

func (r *WarehouseRepo) FlattenProductEntries(_ context.Context) ([]entity.ProductEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return projection.Flatten(r.s.warehouses), nil
}

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	s *Store
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (r *ProductRepo) GetByProductID(_ context.Context, productID string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[productID]
	if !ok {
		return nil, fmt.Errorf("get product %q: %w", productID, domain.ErrNotFound)
	}
	return &p, nil
}

func (r *ProductRepo) UpsertMany(_ context.Context, products []entity.Product) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range products {
		r.s.products[p.ProductID] = p
	}
	return int64(len(products)), nil
}

func (r *ProductRepo) Delete(_ context.Context, productID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[productID]; !ok {
		return fmt.Errorf("delete product %q: %w", productID, domain.ErrNotFound)
	}
	delete(r.s.products, productID)
	return nil
}

func (r *ProductRepo) ListIDs(_ context.Context) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := make([]string, 0, len(r.s.products))
	for id := range r.s.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *ProductRepo) DeleteMany(_ context.Context, productIDs []string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, id := range productIDs {
		if _, ok := r.s.products[id]; ok {
			delete(r.s.products, id)
			n++
		}
	}
	return n, nil
}

func (s *Store) indexOf(warehouseID int) int {
	for i, w := range s.warehouses {
		if w.WarehouseID == warehouseID {
			return i
		}
	}
	return -1
}

// insert asume el lock tomado. Asigna _id si falta, como hace el driver.
func (s *Store) insert(w *entity.Warehouse) error {
	if s.indexOf(w.WarehouseID) >= 0 {
		return fmt.Errorf("warehouseID %d: %w", w.WarehouseID, domain.ErrConflict)
	}
	if w.ObjectID == nil {
		oid := primitive.NewObjectID()
		w.ObjectID = &oid
	}
	stored := cloneWarehouse(w)
	stored.Normalize()
	s.warehouses = append(s.warehouses, stored)
	return nil
}

func cloneWarehouse(w *entity.Warehouse) *entity.Warehouse {
	c := *w
	if w.ObjectID != nil {
		oid := *w.ObjectID
		c.ObjectID = &oid
	}
	c.Extra = cloneMap(w.Extra)
	if w.WarehouseData != nil {
		c.WarehouseData = make([]entity.WarehouseData, len(w.WarehouseData))
		for i, d := range w.WarehouseData {
			c.WarehouseData[i] = entity.WarehouseData{Extra: cloneMap(d.Extra)}
			if d.ProductData != nil {
				c.WarehouseData[i].ProductData = append([]entity.ProductEntry{}, d.ProductData...)
			}
		}
	}
	return &c
}

// cloneMap copia en profundidad los metadatos (mapas y arreglos anidados) para que
// nadie fuera del store comparta estado con el documento guardado.
func cloneMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return cloneMap(t)
	case primitive.M:
		return primitive.M(cloneMap(t))
	case []interface{}:
		return cloneSlice(t)
	case primitive.A:
		return primitive.A(cloneSlice(t))
	case primitive.D:
		out := make(primitive.D, len(t))
		for i, e := range t {
			out[i] = primitive.E{Key: e.Key, Value: cloneValue(e.Value)}
		}
		return out
	default:
		return v
	}
}

func cloneSlice(s []interface{}) []interface{} {
	if s == nil {
		return nil
	}
	out := make([]interface{}, len(s))
	for i, v := range s {
		out[i] = cloneValue(v)
	}
	return out
}
