package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

// LocalRequestID key en c.Locals con el id de la petición.
const LocalRequestID = "request_id"

// RequestID propaga X-Request-Id (o genera uno) y lo deja en Locals y en la
// respuesta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Locals(LocalRequestID, reqID)
		c.Set("X-Request-Id", reqID)
		return c.Next()
	}
}

// RequestLogger registra cada petición con método, ruta, estado, tamaño y
// latencia. Debe ir después de RequestID.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		lat := time.Since(start)

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		reqID, _ := c.Locals(LocalRequestID).(string)
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Int("bytes", len(c.Response().Body())).
			Float64("latency_ms", float64(lat.Microseconds())/1000.0).
			Str("request_id", reqID).
			Msg("http_request")
		return err
	}
}
