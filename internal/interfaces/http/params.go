package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// pathID devuelve el parámetro :id decodificado (%20, %2F, ...). Se decodifica después
// del enrutamiento para que un %2F no parta el segmento. Un escape inválido se deja tal cual.
func pathID(c *fiber.Ctx) string {
	raw := c.Params("id")
	id, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return id
}
