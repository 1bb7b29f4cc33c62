package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pago aceptadas en el punto de venta.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
	PaymentCredit   = "credit"
)

// Tipos de orden (módulo restaurante). Vacío = venta de mostrador normal.
const (
	OrderDineIn   = "dine_in"
	OrderTakeout  = "takeout"
	OrderDelivery = "delivery"
)

// Sale representa una venta POS / factura ya cerrada. El pipeline de
// documentos la consume como snapshot de solo lectura: los montos son
// decimales validados al crearse la venta, nunca strings re-parseados.
type Sale struct {
	ID            string
	CompanyID     string
	CustomerID    string           // vacío = consumidor final sin registrar
	SaleNumber    string           // número secuencial visible (ej. "POS-0042")
	NCF           string           // Número de Comprobante Fiscal asignado (vacío si no aplica)
	NCFType       string           // código de 2 dígitos DGII ("02" consumo, etc.)
	FiscalPeriod  string           // período fiscal "AAAAMM" al que pertenece el NCF
	Subtotal      decimal.Decimal
	ITBIS         decimal.Decimal  // 18% sobre la base gravada
	Total         decimal.Decimal
	PaymentMethod string
	CashReceived  *decimal.Decimal // solo pagos en efectivo
	CashChange    *decimal.Decimal // solo pagos en efectivo
	CashierName   string
	OrderType     string           // ver constantes Order* (módulo restaurante)
	TableNumber   string
	PrepNotes     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsCash indica si la venta se pagó en efectivo (muestra recibido/cambio).
func (s *Sale) IsCash() bool {
	return s.PaymentMethod == PaymentCash
}

// CheckTotals valida el invariante total = subtotal + ITBIS.
// Se aplica una sola vez en la frontera del modelo (creación de la venta);
// los renderizadores confían en los montos y solo los formatean.
func (s *Sale) CheckTotals() bool {
	return s.Subtotal.Add(s.ITBIS).Equal(s.Total)
}

// SaleItem línea de venta. Los montos viajan como decimal desde la frontera.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductCode string
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal // monto absoluto descontado en la línea
	Subtotal    decimal.Decimal // qty*unit - discount
}
