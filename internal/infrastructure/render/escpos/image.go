package escpos

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Ancho máximo del bitmap en puntos según papel (203 DPI).
const (
	maxDots80mm = 384
	maxDots58mm = 288
)

// writeQR renderiza el contenido como QR y lo imprime como bitmap raster.
// Un solo intento; el error se devuelve para que el layout degrade a placeholder.
func (b *builder) writeQR(content string, size int) error {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("escpos: generar QR: %w", err)
	}
	return b.writeImage(qr.Image(size))
}

// writeLogo decodifica un logo base64 (con o sin prefijo data-URI) y lo
// imprime como bitmap.
func (b *builder) writeLogo(base64Data string) error {
	if idx := strings.Index(base64Data, ","); idx != -1 {
		base64Data = base64Data[idx+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(base64Data)
	if err != nil {
		return fmt.Errorf("escpos: decodificar logo base64: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("escpos: decodificar imagen del logo: %w", err)
	}
	return b.writeImage(img)
}

// writeImage convierte la imagen a bitmap monocromo y emite el comando
// raster GS v 0 (el más compatible con impresoras térmicas modernas).
func (b *builder) writeImage(img image.Image) error {
	maxDots := maxDots80mm
	if b.cols == cols58mm {
		maxDots = maxDots58mm
	}
	img = shrinkToWidth(img, maxDots)

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	widthBytes := (width + 7) / 8

	b.lineFeed()
	// GS v 0 m xL xH yL yH d1...dk
	b.buf.Write([]byte{gsByte, 'v', '0', 0,
		byte(widthBytes % 256), byte(widthBytes / 256),
		byte(height % 256), byte(height / 256),
	})

	for y := 0; y < height; y++ {
		for x := 0; x < width; x += 8 {
			var cell byte
			for bit := 0; bit < 8; bit++ {
				px := x + bit
				if px >= width {
					continue
				}
				if isDark(img, bounds.Min.X+px, bounds.Min.Y+y) {
					cell |= 1 << uint(7-bit)
				}
			}
			b.buf.WriteByte(cell)
		}
	}
	b.lineFeed()
	return nil
}

// isDark aplica luminancia estándar con fondo blanco para transparencias;
// bit=1 imprime negro.
func isDark(img image.Image, x, y int) bool {
	r, g, bl, a := img.At(x, y).RGBA()
	if a < 0xFFFF {
		// compone sobre blanco para que lo transparente no imprima negro
		alpha := uint64(a)
		r = uint32((uint64(r)*alpha + 0xFFFF*(0xFFFF-alpha)) / 0xFFFF)
		g = uint32((uint64(g)*alpha + 0xFFFF*(0xFFFF-alpha)) / 0xFFFF)
		bl = uint32((uint64(bl)*alpha + 0xFFFF*(0xFFFF-alpha)) / 0xFFFF)
	}
	gray := (299*uint32(r>>8) + 587*uint32(g>>8) + 114*uint32(bl>>8)) / 1000
	return gray < 128
}

// shrinkToWidth reduce la imagen por muestreo simple si excede el ancho del papel.
func shrinkToWidth(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxWidth {
		return img
	}
	ratio := float64(width) / float64(maxWidth)
	newHeight := int(float64(height) / ratio)
	out := image.NewRGBA(image.Rect(0, 0, maxWidth, newHeight))
	for y := 0; y < newHeight; y++ {
		for x := 0; x < maxWidth; x++ {
			srcX := bounds.Min.X + int(float64(x)*ratio)
			srcY := bounds.Min.Y + int(float64(y)*ratio)
			out.Set(x, y, img.At(srcX, srcY))
		}
	}
	return out
}
