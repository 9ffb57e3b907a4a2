package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hemis-api/internal/application/dto"
	"github.com/jhoicas/hemis-api/internal/application/usecase"
	"github.com/jhoicas/hemis-api/internal/domain/alerting"
)

// MedicineHandler maneja las peticiones HTTP para Medicine (protegido).
// Los defaults de threshold y days vienen de la configuración de alertas.
type MedicineHandler struct {
	uc  *usecase.MedicineUseCase
	cfg alerting.Config
}

// NewMedicineHandler construye el handler.
func NewMedicineHandler(uc *usecase.MedicineUseCase, cfg alerting.Config) *MedicineHandler {
	return &MedicineHandler{uc: uc, cfg: cfg}
}

// Create godoc
// @Summary      Crear medicamento
// @Tags         medicines
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMedicineRequest  true  "Datos del medicamento"
// @Success      201   {object}  dto.MedicineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/medicines [post]
func (h *MedicineHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMedicineRequest
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
// @Summary      Obtener medicamento por ID
// @Tags         medicines
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del medicamento"
// @Success      200  {object}  dto.MedicineResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medicines/{id} [get]
func (h *MedicineHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar medicamentos
// @Tags         medicines
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MedicineResponse
// @Router       /api/medicines [get]
func (h *MedicineHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Medicamentos con stock bajo
// @Tags         medicines
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  int  false  "Umbral de stock"  default(50)
// @Success      200  {array}  dto.MedicineResponse
// @Router       /api/medicines/low-stock [get]
func (h *MedicineHandler) LowStock(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", h.cfg.LowStockThreshold)
	out, err := h.uc.LowStock(threshold)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Expiring godoc
// @Summary      Medicamentos vencidos o por vencer
// @Tags         medicines
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Ventana en días"  default(30)
// @Success      200  {array}  dto.MedicineResponse
// @Router       /api/medicines/expiring [get]
func (h *MedicineHandler) Expiring(c *fiber.Ctx) error {
	days := c.QueryInt("days", h.cfg.ExpiryWindowDays)
	out, err := h.uc.Expiring(days)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar medicamento
// @Tags         medicines
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del medicamento"
// @Param        body  body  dto.UpdateMedicineRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MedicineResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/medicines/{id} [put]
func (h *MedicineHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateMedicineRequest
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
// @Summary      Eliminar medicamento
// @Tags         medicines
// @Security     Bearer
// @Param        id  path  int  true  "ID del medicamento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medicines/{id} [delete]
func (h *MedicineHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
