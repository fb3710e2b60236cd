package http

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/favicon"

	"github.com/jhoicas/bodega-sync-api/internal/application/usecase"
	"github.com/jhoicas/bodega-sync-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WarehouseUC *usecase.WarehouseUseCase
	ProductUC   *usecase.ProductUseCase
	Seed        SeedLoader
	SeedFile    string
	StaticDir   string
	Log         *logger.Logger
}

// Router registra middleware y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	app.Use(RequestID())
	app.Use(RequestLogger(log))
	app.Use(favicon.New(favicon.Config{File: faviconPath(deps.StaticDir)}))

	// Warehouses
	warehouses := app.Group("/warehouse")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Products (POST /:id recibe el warehouseID)
	products := app.Group("/product")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/:id", productHandler.AddToWarehouse)
	products.Delete("/:id", productHandler.Delete)

	// Carga inicial
	seedHandler := NewSeedHandler(deps.Seed, deps.SeedFile)
	app.Get("/insert", seedHandler.Insert)
}

// faviconPath devuelve STATIC_DIR/favicon.ico si existe; vacío hace que el
// middleware responda 204.
func faviconPath(dir string) string {
	if dir == "" {
		return ""
	}
	p := filepath.Join(dir, "favicon.ico")
	if st, err := os.Stat(p); err != nil || st.IsDir() {
		return ""
	}
	return p
}
