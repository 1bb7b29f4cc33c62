package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrTotalsMismatch     = errors.New("el total no coincide con subtotal + ITBIS")
	ErrNCFExhausted       = errors.New("secuencia NCF agotada")
	ErrNCFExpired         = errors.New("secuencia NCF vencida")
	ErrPrinterUnreachable = errors.New("impresora no disponible")
)
