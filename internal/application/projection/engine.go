package projection

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bodega-sync-api/internal/domain/projection"
	"github.com/jhoicas/bodega-sync-api/internal/domain/repository"
	"github.com/jhoicas/bodega-sync-api/pkg/logger"
)

// Options configura la pasada de proyección.
type Options struct {
	// Prune elimina los productos planos cuyo productID ya no aparece en ninguna bodega.
	// Sin Prune la pasada solo agrega o sobrescribe.
	Prune bool
}

// Result resumen de una pasada.
type Result struct {
	RunID    string
	Entries  int   // entradas anidadas leídas
	Upserted int64 // productos planos escritos
	Pruned   int64 // productos planos eliminados (solo con Prune)
	Duration time.Duration
}

// Engine reconstruye la colección plana de productos desde las entradas anidadas
// en todas las bodegas: aplanar, proyectar por productID y materializar con upsert.
// Es idempotente y recorre todo en cada pasada; no reintenta errores del almacenamiento.
type Engine struct {
	warehouses repository.WarehouseRepository
	products   repository.ProductRepository
	opts       Options
	log        *logger.Logger
}

// NewEngine construye el motor de proyección.
func NewEngine(warehouses repository.WarehouseRepository, products repository.ProductRepository, opts Options, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{warehouses: warehouses, products: products, opts: opts, log: log.Component("projection")}
}

// Run ejecuta una pasada completa de forma síncrona.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	res := Result{RunID: uuid.NewString()}

	entries, err := e.warehouses.FlattenProductEntries(ctx)
	if err != nil {
		return res, fmt.Errorf("proyección %s: aplanar: %w", res.RunID, err)
	}
	res.Entries = len(entries)

	projected := projection.Project(entries)

	res.Upserted, err = e.products.UpsertMany(ctx, projected)
	if err != nil {
		return res, fmt.Errorf("proyección %s: materializar: %w", res.RunID, err)
	}

	if e.opts.Prune {
		ids, err := e.products.ListIDs(ctx)
		if err != nil {
			return res, fmt.Errorf("proyección %s: listar ids: %w", res.RunID, err)
		}
		if stale := projection.Stale(ids, projected); len(stale) > 0 {
			res.Pruned, err = e.products.DeleteMany(ctx, stale)
			if err != nil {
				return res, fmt.Errorf("proyección %s: depurar: %w", res.RunID, err)
			}
		}
	}

	res.Duration = time.Since(start)
	e.log.Info().
		Str("run_id", res.RunID).
		Int("entries", res.Entries).
		Int("products", len(projected)).
		Int64("upserted", res.Upserted).
		Int64("pruned", res.Pruned).
		Dur("duration", res.Duration).
		Msg("pasada de proyección completada")
	return res, nil
}
