package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fourone/fourone-api/internal/application/dto"
	"github.com/fourone/fourone-api/internal/application/pos"
)

// VerifyHandler resuelve las URLs de verificación del QR impreso en los
// comprobantes ({base}/v/{saleNumber}). Es el único endpoint público fuera
// de /api: lo visita el teléfono del comprador.
type VerifyHandler struct {
	uc *pos.GetSaleUseCase
}

// NewVerifyHandler construye el handler.
func NewVerifyHandler(uc *pos.GetSaleUseCase) *VerifyHandler {
	return &VerifyHandler{uc: uc}
}

// Verify devuelve los datos públicos mínimos del comprobante.
// GET /v/:saleNumber
func (h *VerifyHandler) Verify(c *fiber.Ctx) error {
	saleNumber := c.Params("saleNumber")
	if saleNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "número de venta requerido"})
	}
	result, err := h.uc.VerifySale(c.Context(), saleNumber)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(result)
}
