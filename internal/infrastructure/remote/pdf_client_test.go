package remote

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourone/fourone-api/internal/application/printing"
	"github.com/fourone/fourone-api/internal/domain/entity"
)

func TestGeneratePDF_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req pdfRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.HTML, "<html")
		assert.Equal(t, "letter", req.Format)
		assert.Equal(t, "portrait", req.Orientation)
		json.NewEncoder(w).Encode(remoteResponse{URL: "https://cdn.example.com/doc.pdf"})
	}))
	defer srv.Close()

	c := NewPDFClient(srv.URL, 2*time.Second, 2, zerolog.Nop())
	res, err := c.GeneratePDF(context.Background(), "<html></html>", entity.DocumentOptions{})
	require.NoError(t, err)
	assert.Equal(t, printing.RenderOK, res.Status)
	assert.Equal(t, "https://cdn.example.com/doc.pdf", res.URL)
}

func TestGeneratePDF_ReintentaYDegrada(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewPDFClient(srv.URL, 2*time.Second, 2, zerolog.Nop())
	res, err := c.GeneratePDF(context.Background(), "<html>x</html>", entity.DocumentOptions{})
	require.NoError(t, err)
	assert.Equal(t, printing.RenderDegraded, res.Status)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	// el fallback lleva el HTML original como data-URL
	require.True(t, strings.HasPrefix(res.Payload, "data:text/html;base64,"))
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(res.Payload, "data:text/html;base64,"))
	require.NoError(t, err)
	assert.Equal(t, "<html>x</html>", string(decoded))
}

func TestGeneratePDF_NoReintentaErrores4xx(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewPDFClient(srv.URL, 2*time.Second, 3, zerolog.Nop())
	res, err := c.GeneratePDF(context.Background(), "<html></html>", entity.DocumentOptions{})
	require.NoError(t, err)
	assert.Equal(t, printing.RenderDegraded, res.Status)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGeneratePDF_SinServicioConfigurado(t *testing.T) {
	c := NewPDFClient("", 2*time.Second, 2, zerolog.Nop())
	res, err := c.GeneratePDF(context.Background(), "<html></html>", entity.DocumentOptions{})
	require.NoError(t, err)
	assert.Equal(t, printing.RenderDegraded, res.Status)
	assert.NotEmpty(t, res.Payload)
}

func TestPreview_OK(t *testing.T) {
	payload := []byte{0x1B, '@', 'H', 'o', 'l', 'a'}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req previewRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		decoded, err := base64.StdEncoding.DecodeString(req.Payload)
		require.NoError(t, err)
		assert.Equal(t, payload, decoded)
		json.NewEncoder(w).Encode(remoteResponse{URL: "https://cdn.example.com/preview.png"})
	}))
	defer srv.Close()

	c := NewPreviewClient(srv.URL, 2*time.Second, 2, zerolog.Nop())
	res, err := c.Preview(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, printing.RenderOK, res.Status)
	assert.Equal(t, "https://cdn.example.com/preview.png", res.URL)
}

func TestPreview_SinServicioConfigurado(t *testing.T) {
	c := NewPreviewClient("", 2*time.Second, 2, zerolog.Nop())
	res, err := c.Preview(context.Background(), []byte{0x1B, '@'})
	require.Error(t, err)
	assert.Equal(t, printing.RenderFailed, res.Status)
}

func TestPreview_FallaTrasReintentos(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewPreviewClient(srv.URL, 2*time.Second, 2, zerolog.Nop())
	res, err := c.Preview(context.Background(), []byte{0x1B, '@'})
	require.Error(t, err)
	assert.Equal(t, printing.RenderFailed, res.Status)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
