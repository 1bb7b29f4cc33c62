// Package printer despacha los comandos ESC/POS generados hacia su destino
// físico: una impresora de red (puerto RAW 9100) o un archivo de spool para
// agentes locales que vigilan un directorio.
package printer

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/fourone/fourone-api/internal/application/printing"
	"github.com/fourone/fourone-api/internal/domain"
)

// defaultRawPort puerto RAW/JetDirect estándar de impresoras térmicas de red.
const defaultRawPort = 9100

var _ printing.Dispatcher = (*Dispatcher)(nil)

// Dispatcher implementa printing.Dispatcher. Envío directo sin cola: si la
// impresora no responde el error vuelve al llamador y ahí termina.
type Dispatcher struct {
	dialTimeout time.Duration
	log         zerolog.Logger
}

// NewDispatcher construye el despachador.
func NewDispatcher(dialTimeout time.Duration, log zerolog.Logger) *Dispatcher {
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}
	return &Dispatcher{
		dialTimeout: dialTimeout,
		log:         log.With().Str("component", "print_dispatcher").Logger(),
	}
}

// Dispatch envía el blob al destino indicado.
func (d *Dispatcher) Dispatch(ctx context.Context, dest printing.PrintDestination, payload []byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("printer: payload vacío: %w", domain.ErrInvalidInput)
	}
	switch dest.Kind {
	case "network":
		return d.dispatchNetwork(ctx, dest, payload)
	case "file":
		return d.dispatchFile(dest, payload)
	default:
		return fmt.Errorf("printer: destino desconocido %q: %w", dest.Kind, domain.ErrInvalidInput)
	}
}

// dispatchNetwork abre un socket TCP crudo contra el puerto RAW de la
// impresora, escribe el blob completo y cierra. Las térmicas no responden
// nada en este protocolo; escribir sin error es el único acuse posible.
func (d *Dispatcher) dispatchNetwork(ctx context.Context, dest printing.PrintDestination, payload []byte) error {
	if dest.Address == "" {
		return fmt.Errorf("printer: dirección de impresora vacía: %w", domain.ErrInvalidInput)
	}
	port := dest.Port
	if port == 0 {
		port = defaultRawPort
	}
	addr := net.JoinHostPort(dest.Address, strconv.Itoa(port))

	dialer := net.Dialer{Timeout: d.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		d.log.Warn().Err(err).Str("addr", addr).Msg("impresora de red inalcanzable")
		return fmt.Errorf("printer: conectar a %s: %w", addr, domain.ErrPrinterUnreachable)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	} else {
		_ = conn.SetWriteDeadline(time.Now().Add(d.dialTimeout))
	}
	if _, err := conn.Write(payload); err != nil {
		return fmt.Errorf("printer: escribir a %s: %w", addr, err)
	}
	d.log.Debug().Str("addr", addr).Int("bytes", len(payload)).Msg("trabajo enviado a impresora de red")
	return nil
}

// dispatchFile escribe el blob como archivo de spool con nombre único.
func (d *Dispatcher) dispatchFile(dest printing.PrintDestination, payload []byte) error {
	if dest.Address == "" {
		return fmt.Errorf("printer: ruta de spool vacía: %w", domain.ErrInvalidInput)
	}
	if err := os.MkdirAll(dest.Address, 0o755); err != nil {
		return fmt.Errorf("printer: crear directorio de spool: %w", err)
	}
	name := fmt.Sprintf("job-%d.escpos", time.Now().UnixNano())
	path := filepath.Join(dest.Address, name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("printer: escribir spool: %w", err)
	}
	d.log.Debug().Str("path", path).Int("bytes", len(payload)).Msg("trabajo escrito a spool")
	return nil
}
