package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jhoicas/bodega-sync-api/internal/application/projection"
	"github.com/jhoicas/bodega-sync-api/internal/domain/entity"
	"github.com/jhoicas/bodega-sync-api/internal/domain/repository"
	"github.com/jhoicas/bodega-sync-api/pkg/logger"
)

// Parser decodifica una exportación de documentos de bodega conservando los tipos
// extendidos del formato del almacenamiento (ObjectID, fechas, decimales).
type Parser interface {
	Parse(r io.Reader) ([]*entity.Warehouse, error)
}

// Projector ejecuta una pasada de proyección.
type Projector interface {
	Run(ctx context.Context) (projection.Result, error)
}

// Result resumen de una carga.
type Result struct {
	Warehouses int
	Projection projection.Result
}

// Loader carga el lote inicial de bodegas y reproyecta una vez.
type Loader struct {
	parser     Parser
	warehouses repository.WarehouseRepository
	projector  Projector
	log        *logger.Logger
}

// NewLoader construye el cargador.
func NewLoader(parser Parser, warehouses repository.WarehouseRepository, projector Projector, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{parser: parser, warehouses: warehouses, projector: projector, log: log.Component("seed")}
}

// Load inserta todos los documentos de r. Si alguno choca con una clave existente
// devuelve domain.ErrAlreadyLoaded; lo insertado antes del conflicto no se revierte
// y la proyección no se ejecuta.
func (l *Loader) Load(ctx context.Context, r io.Reader) (Result, error) {
	docs, err := l.parser.Parse(r)
	if err != nil {
		return Result{}, fmt.Errorf("parsear carga inicial: %w", err)
	}
	if err := l.warehouses.InsertMany(ctx, docs); err != nil {
		return Result{}, err
	}
	res := Result{Warehouses: len(docs)}
	res.Projection, err = l.projector.Run(ctx)
	if err != nil {
		return res, err
	}
	l.log.Info().
		Int("warehouses", res.Warehouses).
		Int64("products", res.Projection.Upserted).
		Msg("carga inicial completada")
	return res, nil
}

// LoadFile abre path y ejecuta Load.
func (l *Loader) LoadFile(ctx context.Context, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()
	return l.Load(ctx, f)
}
