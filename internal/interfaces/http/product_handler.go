package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-sync-api/internal/application/dto"
	"github.com/jhoicas/bodega-sync-api/internal/application/projection"
	"github.com/jhoicas/bodega-sync-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP sobre productos. Las lecturas van a la
// colección plana; las escrituras a las entradas anidadas de las bodegas.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         product
// @Produce      json
// @Success      200  {array}   entity.Product
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /product [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, err, nil)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por productID
// @Tags         product
// @Produce      json
// @Param        id   path      string  true  "productID"
// @Success      200  {object}  entity.Product
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /product/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), pathID(c))
	if err != nil {
		return fail(c, err, nil)
	}
	return c.JSON(out)
}

// AddToWarehouse godoc
// @Summary      Agregar producto a una bodega
// @Description  El id de la ruta es el warehouseID. La entrada va al primer bloque de datos y luego se reproyecta la colección plana.
// @Tags         product
// @Accept       json
// @Produce      json
// @Param        id    path      int                      true  "warehouseID"
// @Param        body  body      dto.ProductEntryRequest  true  "Entrada de producto"
// @Success      201   {object}  dto.AddProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /product/{id} [post]
func (h *ProductHandler) AddToWarehouse(c *fiber.Ctx) error {
	var in dto.ProductEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.uc.AddToWarehouse(c.UserContext(), pathID(c), in.ToEntry())
	if err != nil {
		return fail(c, err, messages{
			CodeNotFound: "Warehouse not found",
			CodeConflict: "Product already exists",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AddProductResponse{
		Message:    "Product added successfully",
		Projection: projectionResponse(res),
	})
}

// Delete godoc
// @Summary      Eliminar producto
// @Description  Borra el registro plano y quita las entradas anidadas de todas las bodegas.
// @Tags         product
// @Produce      json
// @Param        id   path      string  true  "productID"
// @Success      200  {object}  dto.DeleteProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /product/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	res, err := h.uc.Delete(c.UserContext(), pathID(c))
	if err != nil {
		return fail(c, err, messages{CodeNotFound: "Product not found"})
	}
	return c.JSON(dto.DeleteProductResponse{
		Message:            "Product deleted successfully",
		FlatDeleted:        res.FlatDeleted,
		WarehousesModified: res.WarehousesModified,
	})
}

func projectionResponse(r projection.Result) dto.ProjectionResponse {
	return dto.ProjectionResponse{
		RunID:    r.RunID,
		Entries:  r.Entries,
		Upserted: r.Upserted,
		Pruned:   r.Pruned,
	}
}
