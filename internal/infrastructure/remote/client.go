// Package remote contiene los adaptadores HTTP hacia los servicios externos
// de render: el generador de PDF alojado y la vista previa térmica. Ambos son
// colaboradores opcionales; su indisponibilidad degrada, nunca rompe la venta.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxResponseBytes límite de lectura de las respuestas remotas.
const maxResponseBytes = 256 * 1024

// client HTTP compartido por los dos servicios remotos, con reintentos
// acotados: cada intento tiene su propio timeout y entre intentos se espera
// un backoff corto. Nunca reintenta errores 4xx (son del payload, no de la red).
type client struct {
	httpClient  *http.Client
	maxAttempts int
}

func newClient(timeout time.Duration, maxAttempts int) *client {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &client{
		httpClient:  &http.Client{Timeout: timeout},
		maxAttempts: maxAttempts,
	}
}

// remoteResponse cuerpo esperado de ambos servicios: la URL del artefacto alojado.
type remoteResponse struct {
	URL   string `json:"url"`
	Error string `json:"error,omitempty"`
}

// postJSON serializa el payload, lo envía y decodifica la respuesta,
// reintentando ante fallos de red o 5xx hasta agotar los intentos.
func (c *client) postJSON(ctx context.Context, url string, payload any) (*remoteResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("remote: serializar request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("remote: cancelado antes del intento %d: %w", attempt, ctx.Err())
			case <-time.After(time.Duration(attempt-1) * 200 * time.Millisecond):
			}
		}

		resp, err := c.doOnce(ctx, url, body)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		var pe *permanentError
		if errors.As(err, &pe) {
			break
		}
	}
	return nil, fmt.Errorf("remote: agotados %d intentos: %w", c.maxAttempts, lastErr)
}

func (c *client) doOnce(ctx context.Context, url string, body []byte) (*remoteResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &permanentError{fmt.Errorf("remote: crear HTTP request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("remote: leer respuesta: %w", err)
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return nil, &permanentError{fmt.Errorf("remote: HTTP %d: %s", resp.StatusCode, string(raw))}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote: HTTP %d: %s", resp.StatusCode, string(raw))
	}

	var decoded remoteResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("remote: deserializar respuesta: %w", err)
	}
	if decoded.Error != "" {
		return nil, &permanentError{fmt.Errorf("remote: servicio respondió error: %s", decoded.Error)}
	}
	if decoded.URL == "" {
		return nil, &permanentError{fmt.Errorf("remote: respuesta sin URL de artefacto")}
	}
	return &decoded, nil
}

// permanentError marca fallos que reintentar no va a arreglar (4xx, payload inválido).
type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }
