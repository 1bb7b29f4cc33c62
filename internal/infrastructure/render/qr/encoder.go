// Package qr genera el código QR de verificación de un comprobante.
// Un solo intento, sin reintentos: el error del encoder se devuelve al caller.
package qr

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize tamaño en píxeles del PNG generado para incrustar en documentos.
const DefaultSize = 256

// VerificationURL construye la URL pública de verificación del comprobante:
// {base}/v/{saleNumber}. El número de venta se escapa por si contiene "/".
func VerificationURL(baseURL, saleNumber string) string {
	return strings.TrimRight(baseURL, "/") + "/v/" + url.PathEscape(saleNumber)
}

// DataURL renderiza el contenido como QR PNG y lo devuelve como data-URL
// ("data:image/png;base64,..."), listo para un <img> embebido.
func DataURL(content string, size int) (string, error) {
	if size <= 0 {
		size = DefaultSize
	}
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return "", fmt.Errorf("qr: generar código: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
