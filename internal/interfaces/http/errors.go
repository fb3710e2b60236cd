package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-sync-api/internal/application/dto"
	"github.com/jhoicas/bodega-sync-api/internal/domain"
)

// Códigos de error del cuerpo de respuesta.
const (
	CodeInvalidID     = "INVALID_ID"
	CodeNotFound      = "NOT_FOUND"
	CodeInvalidBody   = "INVALID_BODY"
	CodeConflict      = "CONFLICT"
	CodeInvalidData   = "INVALID_DATA"
	CodeAlreadyLoaded = "ALREADY_LOADED"
	CodeInternal      = "INTERNAL"
)

const errorLocalsKey = "handlerError"

// messages textos por código; cada ruta sobreescribe los que necesita.
type messages map[string]string

var defaultMessages = messages{
	CodeInvalidID:     "Invalid id",
	CodeNotFound:      "Not found",
	CodeInvalidBody:   "Invalid body",
	CodeConflict:      "Already exists",
	CodeInvalidData:   "Invalid data",
	CodeAlreadyLoaded: "Data already inserted",
}

// statusFor traduce un error de dominio a status HTTP y código.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return fiber.StatusBadRequest, CodeInvalidID
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, CodeNotFound
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, CodeConflict
	case errors.Is(err, domain.ErrInvalidData):
		return fiber.StatusBadRequest, CodeInvalidData
	case errors.Is(err, domain.ErrAlreadyLoaded):
		return fiber.StatusConflict, CodeAlreadyLoaded
	default:
		return fiber.StatusInternalServerError, CodeInternal
	}
}

// fail escribe la respuesta de error. Los errores internos quedan en Locals para
// que RequestLogger los registre.
func fail(c *fiber.Ctx, err error, msgs messages) error {
	status, code := statusFor(err)
	if status == fiber.StatusInternalServerError {
		c.Locals(errorLocalsKey, err)
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
	}
	msg, ok := msgs[code]
	if !ok {
		msg = defaultMessages[code]
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: defaultMessages[CodeInvalidBody]})
}
