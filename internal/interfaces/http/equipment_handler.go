package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hemis-api/internal/application/dto"
	"github.com/jhoicas/hemis-api/internal/application/usecase"
	"github.com/jhoicas/hemis-api/internal/domain/alerting"
)

// EquipmentHandler maneja las peticiones HTTP para Equipment (protegido).
type EquipmentHandler struct {
	uc  *usecase.EquipmentUseCase
	cfg alerting.Config
}

// NewEquipmentHandler construye el handler.
func NewEquipmentHandler(uc *usecase.EquipmentUseCase, cfg alerting.Config) *EquipmentHandler {
	return &EquipmentHandler{uc: uc, cfg: cfg}
}

// Create godoc
// @Summary      Crear equipo
// @Tags         equipment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEquipmentRequest  true  "Datos del equipo"
// @Success      201   {object}  dto.EquipmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/equipment [post]
func (h *EquipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEquipmentRequest
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
// @Summary      Obtener equipo por ID
// @Tags         equipment
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del equipo"
// @Success      200  {object}  dto.EquipmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/equipment/{id} [get]
func (h *EquipmentHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar equipos
// @Tags         equipment
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EquipmentResponse
// @Router       /api/equipment [get]
func (h *EquipmentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MaintenanceDue godoc
// @Summary      Equipos con mantenimiento vencido o próximo
// @Tags         equipment
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Ventana en días"  default(30)
// @Success      200  {array}  dto.EquipmentResponse
// @Router       /api/equipment/maintenance-due [get]
func (h *EquipmentHandler) MaintenanceDue(c *fiber.Ctx) error {
	days := c.QueryInt("days", h.cfg.MaintenanceWindowDays)
	out, err := h.uc.MaintenanceDue(days)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar equipo
// @Tags         equipment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del equipo"
// @Param        body  body  dto.UpdateEquipmentRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.EquipmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/equipment/{id} [put]
func (h *EquipmentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateEquipmentRequest
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
// @Summary      Eliminar equipo
// @Tags         equipment
// @Security     Bearer
// @Param        id  path  int  true  "ID del equipo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/equipment/{id} [delete]
func (h *EquipmentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
