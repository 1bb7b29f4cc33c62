package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fourone/fourone-api/internal/application/dto"
	"github.com/fourone/fourone-api/internal/application/fiscal"
)

// FiscalHandler reportes fiscales de la DGII.
type FiscalHandler struct {
	report607 *fiscal.Report607UseCase
}

// NewFiscalHandler construye el handler.
func NewFiscalHandler(report607 *fiscal.Report607UseCase) *FiscalHandler {
	return &FiscalHandler{report607: report607}
}

// Report607 genera el reporte 607 del período. format=txt devuelve el
// archivo de envío; por defecto responde JSON.
// GET /api/fiscal/607?company_id=...&period=AAAAMM&format=json|txt
func (h *FiscalHandler) Report607(c *fiber.Ctx) error {
	companyID := c.Query("company_id")
	period := c.Query("period")
	if companyID == "" || period == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id y period requeridos"})
	}

	if c.Query("format") == "txt" {
		txt, err := h.report607.BuildTXT(c.Context(), companyID, period)
		if err != nil {
			return mapDomainError(c, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="607_`+period+`.txt"`)
		return c.SendString(txt)
	}

	report, err := h.report607.Build(c.Context(), companyID, period)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(report)
}
