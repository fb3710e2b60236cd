package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-sync-api/internal/application/dto"
	"github.com/jhoicas/bodega-sync-api/internal/application/seed"
)

// SeedLoader carga el archivo de datos iniciales.
type SeedLoader interface {
	LoadFile(ctx context.Context, path string) (seed.Result, error)
}

// SeedHandler expone la carga inicial de bodegas.
type SeedHandler struct {
	loader SeedLoader
	path   string
}

// NewSeedHandler construye el handler; path es el archivo configurado en SEED_FILE.
func NewSeedHandler(loader SeedLoader, path string) *SeedHandler {
	return &SeedHandler{loader: loader, path: path}
}

// Insert godoc
// @Summary      Cargar datos iniciales
// @Description  Inserta las bodegas del archivo configurado y reproyecta los productos. Si alguna ya existe responde 409.
// @Tags         seed
// @Produce      json
// @Success      200  {object}  dto.SeedResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /insert [get]
func (h *SeedHandler) Insert(c *fiber.Ctx) error {
	res, err := h.loader.LoadFile(c.UserContext(), h.path)
	if err != nil {
		return fail(c, err, nil)
	}
	return c.JSON(dto.SeedResponse{
		Message:    "Data inserted successfully",
		Warehouses: res.Warehouses,
		Projection: projectionResponse(res.Projection),
	})
}
