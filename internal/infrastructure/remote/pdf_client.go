package remote

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/rs/zerolog"

	"github.com/fourone/fourone-api/internal/application/printing"
	"github.com/fourone/fourone-api/internal/domain/entity"
)

var _ printing.RemotePDFService = (*PDFClient)(nil)

// PDFClient adaptador del servicio externo HTML→PDF. Si el servicio no está
// configurado o falla tras los reintentos, degrada devolviendo el propio HTML
// como data-URL para que el cliente pueda al menos mostrar/imprimir el documento.
type PDFClient struct {
	url    string
	client *client
	log    zerolog.Logger
}

// NewPDFClient construye el adaptador. url vacío = servicio no configurado.
func NewPDFClient(url string, timeout time.Duration, maxAttempts int, log zerolog.Logger) *PDFClient {
	return &PDFClient{
		url:    url,
		client: newClient(timeout, maxAttempts),
		log:    log.With().Str("component", "remote_pdf").Logger(),
	}
}

type pdfRequest struct {
	HTML        string `json:"html"`
	Format      string `json:"format"`
	Orientation string `json:"orientation"`
	Watermark   string `json:"watermark,omitempty"`
}

// GeneratePDF envía el HTML al servicio remoto y devuelve la URL del PDF
// alojado. El resultado degradado no es un error del flujo de venta: el
// llamador decide si la URL de fallback le sirve.
func (s *PDFClient) GeneratePDF(ctx context.Context, html string, opts entity.DocumentOptions) (printing.RemoteResult, error) {
	opts.Normalize()
	if s.url == "" {
		return s.degraded(html), nil
	}

	resp, err := s.client.postJSON(ctx, s.url, pdfRequest{
		HTML:        html,
		Format:      opts.PaperFormat,
		Orientation: opts.Orientation,
		Watermark:   opts.Watermark,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("servicio remoto de PDF no disponible, degradando a HTML")
		return s.degraded(html), nil
	}
	return printing.RemoteResult{Status: printing.RenderOK, URL: resp.URL}, nil
}

func (s *PDFClient) degraded(html string) printing.RemoteResult {
	return printing.RemoteResult{
		Status:  printing.RenderDegraded,
		Payload: "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html)),
	}
}
