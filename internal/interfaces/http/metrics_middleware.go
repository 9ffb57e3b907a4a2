package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hemis-api/internal/infrastructure/metrics"
)

// MetricsMiddleware cuenta cada petición por método, ruta registrada y
// código de estado. Usa la plantilla de ruta (no la URL cruda) para acotar
// la cardinalidad de las etiquetas.
func MetricsMiddleware(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		path := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		m.HTTPRequests.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		return err
	}
}
