// Package storage abre el almacenamiento elegido por STORE_DRIVER y entrega los
// repositorios listos para inyectar.
package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/bodega-sync-api/internal/domain/repository"
	"github.com/jhoicas/bodega-sync-api/internal/infrastructure/memory"
	"github.com/jhoicas/bodega-sync-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/bodega-sync-api/pkg/config"
	"github.com/jhoicas/bodega-sync-api/pkg/logger"
)

// Repositories repositorios de ambas colecciones sobre un mismo almacenamiento.
type Repositories struct {
	Warehouses repository.WarehouseRepository
	Products   repository.ProductRepository

	client *mongo.Client
}

// Open conecta con el almacenamiento configurado. Con mongo crea los índices únicos
// antes de devolver; el llamador debe invocar Close al apagar.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Repositories, error) {
	switch cfg.Store.Driver {
	case config.StoreMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return &Repositories{Warehouses: store.Warehouses(), Products: store.Products()}, nil

	case config.StoreMongo:
		client, err := mongodb.NewClient(ctx, cfg.Mongo, cfg.App.Name)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Mongo.Database)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("conectado a MongoDB")
		return &Repositories{
			Warehouses: mongodb.NewWarehouseRepository(db),
			Products:   mongodb.NewProductRepository(db),
			client:     client,
		}, nil

	default:
		return nil, fmt.Errorf("STORE_DRIVER no soportado: %q", cfg.Store.Driver)
	}
}

// Close libera la conexión (no hace nada en memoria).
func (r *Repositories) Close(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Disconnect(ctx)
}
