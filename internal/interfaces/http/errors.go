package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hemis-api/internal/application/dto"
	"github.com/jhoicas/hemis-api/internal/domain"
	"github.com/jhoicas/hemis-api/internal/domain/order"
)

// writeError traduce los errores del dominio a códigos HTTP. Todo error no
// clasificado sale como 500 sin filtrar el detalle interno al cliente.
func writeError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: vErr.Message, Field: vErr.Field,
		})
	}
	var tErr *order.InvalidTransitionError
	if errors.As(err, &tErr) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "INVALID_TRANSITION", Message: tErr.Error(),
		})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "recurso no encontrado",
		})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DUPLICATE", Message: "el recurso ya existe",
		})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "CONFLICT", Message: "conflicto con el estado actual",
		})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "credenciales inválidas",
		})
	case errors.Is(err, domain.ErrSelfDeactivate):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "SELF_DEACTIVATE", Message: "un usuario no puede desactivarse a sí mismo",
		})
	case errors.Is(err, domain.ErrInactiveUser):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "INACTIVE_USER", Message: "usuario inactivo",
		})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "FORBIDDEN", Message: "no tiene permisos para esta operación",
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: "error interno",
	})
}

// parseID extrae el parámetro :id (o el nombre dado) como int64 positivo.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "debe ser un entero positivo")
	}
	return int64(id), nil
}
