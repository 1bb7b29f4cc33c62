// Package http expone la API REST del servicio de comprobantes con Fiber.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fourone/fourone-api/internal/application/dto"
	"github.com/fourone/fourone-api/internal/domain"
)

// mapDomainError traduce errores de dominio (posiblemente envueltos) a la
// respuesta HTTP correspondiente. Todos los handlers terminan aquí para que
// el mismo error produzca siempre el mismo código.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrTotalsMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TOTALS_MISMATCH", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrNCFExhausted):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NCF_EXHAUSTED", Message: err.Error()})
	case errors.Is(err, domain.ErrNCFExpired):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NCF_EXPIRED", Message: err.Error()})
	case errors.Is(err, domain.ErrPrinterUnreachable):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PRINTER_UNREACHABLE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
