package remote

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fourone/fourone-api/internal/application/printing"
)

var _ printing.ThermalPreviewService = (*PreviewClient)(nil)

// PreviewClient adaptador del servicio externo que convierte comandos ESC/POS
// en una imagen de vista previa. A diferencia del PDF, aquí no hay fallback
// local posible: sin servicio el resultado es RenderFailed.
type PreviewClient struct {
	url    string
	client *client
	log    zerolog.Logger
}

// NewPreviewClient construye el adaptador. url vacío = servicio no configurado.
func NewPreviewClient(url string, timeout time.Duration, maxAttempts int, log zerolog.Logger) *PreviewClient {
	return &PreviewClient{
		url:    url,
		client: newClient(timeout, maxAttempts),
		log:    log.With().Str("component", "remote_preview").Logger(),
	}
}

type previewRequest struct {
	Payload string `json:"payload"` // comandos ESC/POS en base64
}

// Preview envía el blob ESC/POS y devuelve la URL de la imagen generada.
func (s *PreviewClient) Preview(ctx context.Context, payload []byte) (printing.RemoteResult, error) {
	if s.url == "" {
		return printing.RemoteResult{Status: printing.RenderFailed},
			fmt.Errorf("remote: servicio de vista previa no configurado")
	}

	resp, err := s.client.postJSON(ctx, s.url, previewRequest{
		Payload: base64.StdEncoding.EncodeToString(payload),
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("servicio de vista previa no disponible")
		return printing.RemoteResult{Status: printing.RenderFailed}, err
	}
	return printing.RemoteResult{Status: printing.RenderOK, URL: resp.URL}, nil
}
