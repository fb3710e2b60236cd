// @title        Bodega Sync API
// @version      1.0
// @description  Bodegas con productos anidados y colección plana de productos derivada por proyección.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/bodega-sync-api/docs"
	"github.com/jhoicas/bodega-sync-api/internal/application/projection"
	"github.com/jhoicas/bodega-sync-api/internal/application/seed"
	"github.com/jhoicas/bodega-sync-api/internal/application/usecase"
	"github.com/jhoicas/bodega-sync-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/bodega-sync-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/bodega-sync-api/internal/interfaces/http"
	"github.com/jhoicas/bodega-sync-api/pkg/config"
	"github.com/jhoicas/bodega-sync-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}

	engine := projection.NewEngine(repos.Warehouses, repos.Products, projection.Options{
		Prune: cfg.Projection.Prune,
	}, log)
	warehouseUC := usecase.NewWarehouseUseCase(repos.Warehouses)
	productUC := usecase.NewProductUseCase(repos.Products, repos.Warehouses, engine)
	loader := seed.NewLoader(mongodb.NewExtJSONParser(), repos.Warehouses, engine, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FilePath:    "swagger.json",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "Bodega Sync API",
	}))

	// Health godoc
	// @Summary  Estado del servicio
	// @Tags     health
	// @Produce  json
	// @Success  200  {object}  map[string]string
	// @Router   /health [get]
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		WarehouseUC: warehouseUC,
		ProductUC:   productUC,
		Seed:        loader,
		SeedFile:    cfg.Seed.File,
		StaticDir:   cfg.App.StaticDir,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := repos.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cerrar almacenamiento")
	}

	log.Info().Msg("aplicación detenida")
}
