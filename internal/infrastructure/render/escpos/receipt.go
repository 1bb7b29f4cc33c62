package escpos

import (
	"context"

	"github.com/fourone/fourone-api/internal/application/printing"
	"github.com/fourone/fourone-api/internal/domain/entity"
	"github.com/fourone/fourone-api/internal/domain/money"
	"github.com/fourone/fourone-api/pkg/dgii"
)

// Renderer implementa printing.ThermalRenderer. Es un constructor de cadenas
// puro: sin red, sin estado compartido; cada render usa su propio buffer.
type Renderer struct{}

// NewRenderer construye el generador térmico.
func NewRenderer() *Renderer { return &Renderer{} }

// etiquetas de forma de pago para impresión.
var paymentLabels = map[string]string{
	entity.PaymentCash:     "Efectivo",
	entity.PaymentCard:     "Tarjeta",
	entity.PaymentTransfer: "Transferencia",
	entity.PaymentCredit:   "Crédito",
}

// etiquetas de tipo de orden (módulo restaurante).
var orderTypeLabels = map[string]string{
	entity.OrderDineIn:   "Para comer aquí",
	entity.OrderTakeout:  "Para llevar",
	entity.OrderDelivery: "Delivery",
}

// Render genera el recibo completo en orden fijo: encabezado → banner fiscal →
// metadatos → cliente → restaurante → partidas → totales → pago → QR → pie →
// corte/gaveta. Los campos opcionales ausentes se omiten sin alterar la
// estructura circundante; una lista de partidas vacía produce cero filas.
func (r *Renderer) Render(_ context.Context, in printing.ReceiptInput) ([]byte, error) {
	width := in.Options.PaperWidth
	if width == 0 {
		width = in.Company.PrinterWidth
	}
	b := newBuilder(width)
	b.init()

	r.header(b, in)
	r.fiscalBanner(b, in)
	r.saleMeta(b, in.Sale)
	r.customerBlock(b, in.Customer)
	r.restaurantBlock(b, in.Sale)
	r.itemList(b, in.Items)
	r.totals(b, in.Sale)
	r.payment(b, in.Sale)
	r.qrBlock(b, in)
	r.footer(b, in.Company)

	if in.Options.PaperCut {
		b.cut()
	} else {
		b.lineFeed()
		b.lineFeed()
		b.lineFeed()
	}
	if in.Options.CashDrawer {
		b.cashDrawer()
	}
	return b.bytes(), nil
}

func (r *Renderer) header(b *builder, in printing.ReceiptInput) {
	c := in.Company
	b.setAlign(1)

	if in.Options.ShowLogo && c.LogoBase64 != "" {
		if err := b.writeLogo(c.LogoBase64); err != nil {
			// el logo nunca es fatal: degrada a token de marcador
			b.writeln("[LOGO]")
		}
	}

	b.setBold(true)
	b.setSize(2, 2)
	b.writeln(c.Name)
	b.setSize(1, 1)
	b.setBold(false)
	if c.BusinessName != "" && c.BusinessName != c.Name {
		b.writeln(c.BusinessName)
	}
	if c.RNC != "" {
		b.writeln("RNC: " + c.RNC)
	}
	if c.Address != "" {
		b.writeln(c.Address)
	}
	if c.Phone != "" {
		b.writeln("Tel: " + c.Phone)
	}
	if c.Email != "" {
		b.writeln(c.Email)
	}
}

// fiscalBanner imprime NCF + tipo solo cuando ShowNCF está activo y la venta
// tiene NCF asignado; de lo contrario el bloque completo se omite.
func (r *Renderer) fiscalBanner(b *builder, in printing.ReceiptInput) {
	if !in.Options.ShowNCF || in.Sale.NCF == "" {
		return
	}
	b.setAlign(1)
	b.doubleSeparator()
	b.setBold(true)
	b.writeln("NCF: " + in.Sale.NCF)
	b.setBold(false)
	if ncf, err := dgii.ParseNCF(in.Sale.NCF); err == nil && ncf.TypeName() != "" {
		b.writeln(ncf.TypeName())
	}
	if in.Sale.FiscalPeriod != "" {
		b.writeln("Período Fiscal: " + in.Sale.FiscalPeriod)
	}
	b.doubleSeparator()
}

func (r *Renderer) saleMeta(b *builder, sale *entity.Sale) {
	b.setAlign(0)
	b.separator()
	b.setBold(true)
	b.writeln("Recibo: " + sale.SaleNumber)
	b.setBold(false)
	b.writeln("Fecha: " + money.FormatDateTime(sale.CreatedAt))
	if sale.CashierName != "" {
		b.writeln("Cajero: " + sale.CashierName)
	}
}

func (r *Renderer) customerBlock(b *builder, customer *entity.Customer) {
	if customer == nil {
		return
	}
	b.separator()
	b.writeln("Cliente: " + customer.Name)
	if customer.RNC != "" {
		b.writeln("RNC/Cédula: " + customer.RNC)
	}
	if customer.Phone != "" {
		b.writeln("Tel: " + customer.Phone)
	}
}

func (r *Renderer) restaurantBlock(b *builder, sale *entity.Sale) {
	if sale.OrderType == "" && sale.TableNumber == "" && sale.PrepNotes == "" {
		return
	}
	b.separator()
	if label, ok := orderTypeLabels[sale.OrderType]; ok {
		b.writeln("Tipo: " + label)
	}
	if sale.TableNumber != "" {
		b.writeln("Mesa: " + sale.TableNumber)
	}
	if sale.PrepNotes != "" {
		b.wrap("Nota: " + sale.PrepNotes)
	}
}

// itemList una partida por bloque: nombre, "cant x unitario = subtotal" y
// línea de descuento si aplica. Lista vacía = sección sin filas, sin error.
func (r *Renderer) itemList(b *builder, items []*entity.SaleItem) {
	b.setAlign(0)
	b.separator()
	for _, it := range items {
		name := it.ProductName
		if it.ProductCode != "" {
			name += " (" + it.ProductCode + ")"
		}
		b.wrap(name)
		b.writeln("  " + it.Quantity.String() + " x " + money.FormatCurrency(it.UnitPrice) +
			" = " + money.FormatCurrency(it.Subtotal))
		if it.Discount.IsPositive() {
			b.writeln("  Descuento: -" + money.FormatCurrency(it.Discount))
		}
	}
}

// totals imprime los montos tal cual vienen de la venta; no se recalcula nada.
func (r *Renderer) totals(b *builder, sale *entity.Sale) {
	b.separator()
	b.twoCols("Subtotal:", money.FormatCurrency(sale.Subtotal))
	b.twoCols("ITBIS (18%):", money.FormatCurrency(sale.ITBIS))
	b.setBold(true)
	b.setSize(1, 2)
	b.twoCols("TOTAL:", "RD$" + money.FormatCurrency(sale.Total))
	b.setSize(1, 1)
	b.setBold(false)
}

func (r *Renderer) payment(b *builder, sale *entity.Sale) {
	b.separator()
	label := paymentLabels[sale.PaymentMethod]
	if label == "" {
		label = sale.PaymentMethod
	}
	b.writeln("Forma de pago: " + label)
	if sale.IsCash() {
		if sale.CashReceived != nil {
			b.twoCols("Recibido:", money.FormatCurrency(*sale.CashReceived))
		}
		if sale.CashChange != nil {
			b.twoCols("Cambio:", money.FormatCurrency(*sale.CashChange))
		}
	}
}

// qrBlock imprime el QR de verificación como bitmap; si el encoder falla se
// degrada a un token de texto en vez de abortar el recibo.
func (r *Renderer) qrBlock(b *builder, in printing.ReceiptInput) {
	if !in.Options.ShowQR || in.VerifyURL == "" {
		return
	}
	b.setAlign(1)
	b.lineFeed()
	b.writeln("Verifique su comprobante en:")
	b.wrap(in.VerifyURL)
	if err := b.writeQR(in.VerifyURL, 256); err != nil {
		b.writeln("[QR]")
	}
}

func (r *Renderer) footer(b *builder, c *entity.Company) {
	b.setAlign(1)
	b.lineFeed()
	b.writeln("¡Gracias por su compra!")
	if c.Website != "" {
		b.writeln(c.Website)
	}
}
