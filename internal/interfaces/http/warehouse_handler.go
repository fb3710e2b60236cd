package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-sync-api/internal/application/dto"
	"github.com/jhoicas/bodega-sync-api/internal/application/usecase"
	"github.com/jhoicas/bodega-sync-api/internal/domain/entity"
)

// WarehouseHandler maneja las peticiones HTTP sobre bodegas.
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// List godoc
// @Summary      Listar bodegas
// @Tags         warehouse
// @Produce      json
// @Success      200  {array}   entity.Warehouse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /warehouse [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, err, nil)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener bodega por warehouseID
// @Tags         warehouse
// @Produce      json
// @Param        id   path      int  true  "warehouseID"
// @Success      200  {object}  entity.Warehouse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /warehouse/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), pathID(c))
	if err != nil {
		return fail(c, err, nil)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear bodega
// @Description  El documento se guarda completo, incluidos los campos adicionales.
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        body  body      entity.Warehouse  true  "Documento de la bodega"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /warehouse [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in entity.Warehouse
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Create(c.UserContext(), &in); err != nil {
		return fail(c, err, messages{CodeConflict: "Warehouse already exists"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Warehouse added successfully"})
}

// Delete godoc
// @Summary      Eliminar bodega
// @Description  No reproyecta la colección de productos.
// @Tags         warehouse
// @Produce      json
// @Param        id   path      int  true  "warehouseID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /warehouse/{id} [delete]
func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), pathID(c)); err != nil {
		return fail(c, err, messages{CodeNotFound: "Warehouse not found"})
	}
	return c.JSON(dto.MessageResponse{Message: "Warehouse deleted successfully"})
}
