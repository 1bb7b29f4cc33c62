package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fourone/fourone-api/internal/application/dto"
	"github.com/fourone/fourone-api/internal/application/pos"
)

// SaleHandler maneja las peticiones HTTP del punto de venta.
type SaleHandler struct {
	createUC *pos.CreateSaleUseCase
	getUC    *pos.GetSaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(createUC *pos.CreateSaleUseCase, getUC *pos.GetSaleUseCase) *SaleHandler {
	return &SaleHandler{createUC: createUC, getUC: getUC}
}

// Create cierra una venta POS (asigna número y NCF).
// POST /api/sales
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.createUC.CreateSale(c.Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// GetByID devuelve la venta con sus líneas.
// GET /api/sales/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	sale, err := h.getUC.GetSale(c.Context(), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(sale)
}

// List lista las ventas de una empresa.
// GET /api/sales?company_id=...&limit=&offset=
func (h *SaleHandler) List(c *fiber.Ctx) error {
	companyID := c.Query("company_id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	sales, err := h.getUC.ListSales(c.Context(), companyID, page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(sales)
}
