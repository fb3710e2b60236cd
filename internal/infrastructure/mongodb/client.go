package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/bodega-sync-api/pkg/config"
)

// Nombres de las colecciones.
const (
	WarehouseCollection = "warehouse"
	ProductCollection   = "product"
)

// NewClient crea el cliente MongoDB con su propio pool de conexiones y verifica la conexión.
// El cliente se construye una vez en main y se inyecta en los repositorios; quien lo crea
// debe llamar Disconnect al apagar.
func NewClient(ctx context.Context, cfg config.MongoConfig, appName string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout).
		// Registrar codec decimal.Decimal <-> Decimal128 para todas las operaciones del cliente.
		SetRegistry(NewRegistry()).
		// Metadatos anidados desconocidos se decodifican como mapas, no como bson.D,
		// para que se serialicen a JSON como objetos.
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar MongoDB: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	return client, nil
}
