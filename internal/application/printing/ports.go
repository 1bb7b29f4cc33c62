package printing

import (
	"context"

	"github.com/fourone/fourone-api/internal/domain/entity"
)

// ReceiptInput snapshot completo que consume el generador térmico.
// Todos los campos opcionales se omiten del recibo si están vacíos.
type ReceiptInput struct {
	Sale      *entity.Sale
	Items     []*entity.SaleItem
	Company   *entity.Company
	Customer  *entity.Customer // nil = consumidor final
	Options   entity.ReceiptOptions
	VerifyURL string // URL de verificación para el QR; vacío = sin QR aunque ShowQR sea true
}

// DocumentInput snapshot que consume el generador HTML/PDF.
type DocumentInput struct {
	Sale      *entity.Sale
	Items     []*entity.SaleItem
	Company   *entity.Company
	Customer  *entity.Customer
	Options   entity.DocumentOptions
	VerifyURL string
}

// ThermalRenderer genera el blob ESC/POS del recibo (puro, sin red).
type ThermalRenderer interface {
	Render(ctx context.Context, in ReceiptInput) ([]byte, error)
}

// HTMLRenderer genera el documento HTML autocontenido (CSS inline).
type HTMLRenderer interface {
	Render(ctx context.Context, in DocumentInput) (string, error)
}

// PDFGenerator genera el PDF local de la factura/recibo.
type PDFGenerator interface {
	Generate(ctx context.Context, in DocumentInput) ([]byte, error)
}

// Estado del resultado de los servicios remotos de render.
type RenderStatus string

const (
	RenderOK       RenderStatus = "ok"       // el servicio remoto respondió con la URL del artefacto
	RenderDegraded RenderStatus = "degraded" // el remoto falló; se devuelve el fallback local
	RenderFailed   RenderStatus = "failed"   // sin remoto configurado ni fallback posible
)

// RemoteResult resultado tipado de una llamada remota de render.
// En degradación, Payload lleva el fallback (ej. HTML como data-URL).
type RemoteResult struct {
	Status  RenderStatus
	URL     string // URL del PDF/preview alojado (solo RenderOK)
	Payload string // fallback local (solo RenderDegraded)
}

// RemotePDFService colaborador externo opcional de render HTML→PDF.
type RemotePDFService interface {
	GeneratePDF(ctx context.Context, html string, opts entity.DocumentOptions) (RemoteResult, error)
}

// ThermalPreviewService colaborador externo opcional que convierte comandos
// ESC/POS en una imagen de vista previa.
type ThermalPreviewService interface {
	Preview(ctx context.Context, payload []byte) (RemoteResult, error)
}

// PrintDestination destino físico del despacho de impresión.
type PrintDestination struct {
	Kind    string // "network" o "file"
	Address string // host de la impresora de red, o ruta del archivo spool
	Port    int    // solo network (9100 típico)
}

// Dispatcher envía los bytes generados a la impresora. Fire-and-forget:
// sin cola, sin reintentos, sin registro de intentos anteriores.
type Dispatcher interface {
	Dispatch(ctx context.Context, dest PrintDestination, payload []byte) error
}
