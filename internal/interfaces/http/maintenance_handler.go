package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hemis-api/internal/application/dto"
	"github.com/jhoicas/hemis-api/internal/application/usecase"
)

// MaintenanceHandler maneja las peticiones HTTP para MaintenanceRecord (protegido).
type MaintenanceHandler struct {
	uc *usecase.MaintenanceUseCase
}

// NewMaintenanceHandler construye el handler.
func NewMaintenanceHandler(uc *usecase.MaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar mantenimiento
// @Tags         maintenance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaintenanceRequest  true  "Datos del mantenimiento"
// @Success      201   {object}  dto.MaintenanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/maintenance [post]
func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaintenanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener mantenimiento por ID
// @Tags         maintenance
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del registro"
// @Success      200  {object}  dto.MaintenanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/maintenance/{id} [get]
func (h *MaintenanceHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar mantenimientos
// @Tags         maintenance
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MaintenanceResponse
// @Router       /api/maintenance [get]
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByEquipment godoc
// @Summary      Historial de mantenimiento de un equipo
// @Tags         maintenance
// @Security     Bearer
// @Produce      json
// @Param        equipmentId  path  int  true  "ID del equipo"
// @Success      200  {array}  dto.MaintenanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/maintenance/equipment/{equipmentId} [get]
func (h *MaintenanceHandler) ListByEquipment(c *fiber.Ctx) error {
	equipmentID, err := parseID(c, "equipmentId")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListByEquipment(equipmentID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar mantenimiento
// @Tags         maintenance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del registro"
// @Param        body  body  dto.UpdateMaintenanceRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MaintenanceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/maintenance/{id} [put]
func (h *MaintenanceHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateMaintenanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro de mantenimiento
// @Tags         maintenance
// @Security     Bearer
// @Param        id  path  int  true  "ID del registro"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/maintenance/{id} [delete]
func (h *MaintenanceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
