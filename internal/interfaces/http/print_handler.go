package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fourone/fourone-api/internal/application/dto"
	"github.com/fourone/fourone-api/internal/application/printing"
)

// PrintHandler maneja la generación y el despacho de comprobantes.
type PrintHandler struct {
	thermalUC  *printing.ThermalUseCase
	documentUC *printing.DocumentUseCase
}

// NewPrintHandler construye el handler.
func NewPrintHandler(thermalUC *printing.ThermalUseCase, documentUC *printing.DocumentUseCase) *PrintHandler {
	return &PrintHandler{thermalUC: thermalUC, documentUC: documentUC}
}

// receiptOptionsFromQuery lee los interruptores del recibo térmico.
// Por defecto el recibo sale completo: NCF, QR y corte activados.
func receiptOptionsFromQuery(c *fiber.Ctx) dto.ReceiptOptionsRequest {
	return dto.ReceiptOptionsRequest{
		PaperWidth: c.QueryInt("paper_width", 0),
		ShowLogo:   c.QueryBool("show_logo", true),
		ShowNCF:    c.QueryBool("show_ncf", true),
		ShowQR:     c.QueryBool("show_qr", true),
		PaperCut:   c.QueryBool("paper_cut", true),
		CashDrawer: c.QueryBool("cash_drawer", false),
	}
}

// documentOptionsFromQuery lee los interruptores del documento HTML/PDF.
func documentOptionsFromQuery(c *fiber.Ctx) dto.DocumentOptionsRequest {
	return dto.DocumentOptionsRequest{
		PaperFormat: c.Query("paper_format"),
		Orientation: c.Query("orientation"),
		ShowLogo:    c.QueryBool("show_logo", true),
		ShowNCF:     c.QueryBool("show_ncf", true),
		ShowQR:      c.QueryBool("show_qr", true),
		Watermark:   c.Query("watermark"),
	}
}

// Thermal devuelve el blob ESC/POS del recibo como descarga.
// GET /api/sales/:id/receipt/thermal
func (h *PrintHandler) Thermal(c *fiber.Ctx) error {
	payload, filename, err := h.thermalUC.RenderReceipt(c.Context(), c.Params("id"), receiptOptionsFromQuery(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/octet-stream")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(payload)
}

// Print genera el recibo y lo despacha a la impresora indicada.
// POST /api/sales/:id/receipt/print
func (h *PrintHandler) Print(c *fiber.Ctx) error {
	var in dto.PrintRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.thermalUC.PrintReceipt(c.Context(), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// Preview genera el recibo y lo convierte en imagen vía el servicio remoto.
// GET /api/sales/:id/receipt/preview
func (h *PrintHandler) Preview(c *fiber.Ctx) error {
	resp, err := h.thermalUC.PreviewReceipt(c.Context(), c.Params("id"), receiptOptionsFromQuery(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// HTML devuelve el documento HTML autocontenido del comprobante.
// GET /api/sales/:id/receipt/html
func (h *PrintHandler) HTML(c *fiber.Ctx) error {
	html, err := h.documentUC.RenderHTML(c.Context(), c.Params("id"), documentOptionsFromQuery(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// PDF genera el PDF local del comprobante como descarga.
// GET /api/sales/:id/receipt/pdf
func (h *PrintHandler) PDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.documentUC.GeneratePDF(c.Context(), c.Params("id"), documentOptionsFromQuery(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// QR devuelve la URL de verificación de la venta y su QR como data-URL.
// GET /api/sales/:id/receipt/qr
func (h *PrintHandler) QR(c *fiber.Ctx) error {
	resp, err := h.documentUC.VerificationQR(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// RemotePDF genera el PDF vía servicio externo; si el remoto no responde la
// respuesta llega degradada con el HTML como data-URL.
// GET /api/sales/:id/receipt/pdf/remote
func (h *PrintHandler) RemotePDF(c *fiber.Ctx) error {
	resp, err := h.documentUC.GenerateRemotePDF(c.Context(), c.Params("id"), documentOptionsFromQuery(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}
