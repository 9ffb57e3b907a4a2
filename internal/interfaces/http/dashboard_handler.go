package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hemis-api/internal/application/usecase"
)

// DashboardHandler expone los conteos agregados del tablero (protegido,
// cualquier rol autenticado).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Conteos agregados del tablero
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
