// seed carga el archivo de exportación de bodegas (Extended JSON) en el almacenamiento
// configurado y ejecuta una pasada de proyección. Equivale a GET /insert sin levantar
// el servidor.
//
// Uso: go run ./cmd/seed [--file warehouse.warehouse.json] [--charset iso-8859-1] [--prune]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/jhoicas/bodega-sync-api/internal/application/projection"
	"github.com/jhoicas/bodega-sync-api/internal/application/seed"
	"github.com/jhoicas/bodega-sync-api/internal/domain"
	"github.com/jhoicas/bodega-sync-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/bodega-sync-api/internal/infrastructure/storage"
	"github.com/jhoicas/bodega-sync-api/pkg/config"
	"github.com/jhoicas/bodega-sync-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	flags := pflag.NewFlagSet("seed", pflag.ExitOnError)
	file := flags.String("file", cfg.Seed.File, "archivo de exportación (arreglo JSON o un documento por línea)")
	charset := flags.String("charset", "utf-8", "codificación del archivo (utf-8, iso-8859-1, windows-1252...)")
	prune := flags.Bool("prune", cfg.Projection.Prune, "eliminar productos planos que ya no existen en ninguna bodega")
	_ = flags.Parse(os.Args[1:])

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, *file, *charset, *prune); err != nil {
		if errors.Is(err, domain.ErrAlreadyLoaded) {
			log.Warn().Err(err).Msg("los datos ya estaban cargados")
			os.Exit(2)
		}
		log.Error().Err(err).Msg("carga inicial")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, path, charset string, prune bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()

	r, err := decodeReader(f, charset)
	if err != nil {
		return err
	}

	repos, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("cerrar almacenamiento")
		}
	}()

	engine := projection.NewEngine(repos.Warehouses, repos.Products, projection.Options{Prune: prune}, log)
	loader := seed.NewLoader(mongodb.NewExtJSONParser(), repos.Warehouses, engine, log)

	res, err := loader.Load(ctx, r)
	if err != nil {
		return err
	}
	log.Info().
		Str("file", path).
		Int("warehouses", res.Warehouses).
		Int64("products", res.Projection.Upserted).
		Int64("pruned", res.Projection.Pruned).
		Msg("carga finalizada")
	return nil
}

// decodeReader envuelve r para transcodificar a UTF-8 desde charset.
func decodeReader(r io.Reader, charset string) (io.Reader, error) {
	name := strings.ToLower(strings.TrimSpace(charset))
	if name == "" || name == "utf-8" || name == "utf8" {
		return r, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", charset, err)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
