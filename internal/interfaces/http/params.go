package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseID lee un parámetro de ruta numérico. Devuelve ok=false si no es un
// entero válido; el handler responde 400 en ese caso.
func parseID(c *fiber.Ctx, name string) (int, bool) {
	id, err := strconv.Atoi(c.Params(name))
	if err != nil {
		return 0, false
	}
	return id, true
}
