// Package escpos genera el recibo térmico como un blob de comandos ESC/POS
// (inicialización, negrita, alineación, corte, apertura de gaveta) mezclados
// con texto plano, siguiendo el orden fijo del comprobante dominicano.
package escpos

import (
	"bytes"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Bytes de control ESC/POS.
const (
	escByte byte = 0x1B
	gsByte  byte = 0x1D
	nlByte  byte = 0x0A
)

// Columnas por línea según ancho de papel (fuente A estándar a 203 DPI).
const (
	cols80mm = 48
	cols58mm = 32
)

// asciiFold descompone (NFD), elimina marcas diacríticas y recompone, de modo
// que "á é ñ" imprima "a e n" en impresoras sin página de códigos latina.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldASCII convierte el texto a su equivalente ASCII imprimible; los
// caracteres sin equivalente se sustituyen por espacio.
func foldASCII(s string) string {
	folded, _, err := transform.String(asciiFold, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r < 0x20 && r != '\n':
			// control chars fuera de los comandos explícitos no viajan al printer
		case r < 0x80:
			b.WriteRune(r)
		case r == '¿':
			b.WriteByte('?')
		case r == '¡':
			b.WriteByte('!')
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// builder acumula comandos y texto del recibo. No es seguro para uso
// concurrente; cada render crea el suyo.
type builder struct {
	buf  bytes.Buffer
	cols int
}

func newBuilder(paperWidth int) *builder {
	cols := cols80mm
	if paperWidth == 58 {
		cols = cols58mm
	}
	return &builder{cols: cols}
}

// init inicializa la impresora y fija la página de códigos CP850
// (Latina multilingüe; cubre el texto ya plegado a ASCII).
func (b *builder) init() {
	b.buf.Write([]byte{escByte, '@'})
	b.buf.Write([]byte{escByte, 't', 2})
}

func (b *builder) write(text string) {
	b.buf.WriteString(foldASCII(text))
}

func (b *builder) writeln(text string) {
	b.write(text)
	b.buf.WriteByte(nlByte)
}

func (b *builder) lineFeed() {
	b.buf.WriteByte(nlByte)
}

// align: 0 izquierda, 1 centro, 2 derecha.
func (b *builder) setAlign(a byte) {
	b.buf.Write([]byte{escByte, 'a', a})
}

func (b *builder) setBold(on bool) {
	var v byte
	if on {
		v = 1
	}
	b.buf.Write([]byte{escByte, 'E', v})
}

// setSize ancho/alto en múltiplos 1..8 (GS !).
func (b *builder) setSize(width, height byte) {
	size := ((width - 1) << 4) | (height - 1)
	b.buf.Write([]byte{gsByte, '!', size})
}

func (b *builder) cut() {
	b.buf.Write([]byte{gsByte, 'V', 66, 0})
}

func (b *builder) cashDrawer() {
	b.buf.Write([]byte{escByte, 'p', 0, 25, 250})
}

func (b *builder) separator() {
	b.writeln(strings.Repeat("-", b.cols))
}

func (b *builder) doubleSeparator() {
	b.writeln(strings.Repeat("=", b.cols))
}

// twoCols alinea label a la izquierda y value a la derecha en una línea.
// Si no caben, se degradan a dos líneas.
func (b *builder) twoCols(label, value string) {
	l := foldASCII(label)
	v := foldASCII(value)
	pad := b.cols - len(l) - len(v)
	if pad < 1 {
		b.writeln(label)
		b.writeln(value)
		return
	}
	b.buf.WriteString(l)
	b.buf.WriteString(strings.Repeat(" ", pad))
	b.buf.WriteString(v)
	b.buf.WriteByte(nlByte)
}

// wrap parte el texto en líneas de ancho máximo cols (corte duro, sin guiones).
func (b *builder) wrap(text string) {
	s := foldASCII(text)
	for len(s) > b.cols {
		b.buf.WriteString(s[:b.cols])
		b.buf.WriteByte(nlByte)
		s = s[b.cols:]
	}
	if s != "" {
		b.buf.WriteString(s)
		b.buf.WriteByte(nlByte)
	}
}

func (b *builder) bytes() []byte {
	return b.buf.Bytes()
}
