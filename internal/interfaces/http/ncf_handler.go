package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fourone/fourone-api/internal/application/dto"
	"github.com/fourone/fourone-api/internal/application/pos"
)

// NCFHandler administración de los rangos de numeración fiscal.
type NCFHandler struct {
	uc *pos.NCFSequenceUseCase
}

// NewNCFHandler construye el handler.
func NewNCFHandler(uc *pos.NCFSequenceUseCase) *NCFHandler {
	return &NCFHandler{uc: uc}
}

// Create registra un rango autorizado por la DGII.
// POST /api/ncf-sequences
func (h *NCFHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNCFSequenceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	seq, err := h.uc.CreateSequence(c.Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(seq)
}

// List lista los rangos de la empresa.
// GET /api/ncf-sequences?company_id=...
func (h *NCFHandler) List(c *fiber.Ctx) error {
	companyID := c.Query("company_id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id requerido"})
	}
	seqs, err := h.uc.ListSequences(c.Context(), companyID)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(seqs)
}
