// Package htmldoc genera el documento HTML imprimible del comprobante:
// un solo archivo autocontenido (CSS inline, imágenes como data-URL),
// apto para document.write, vista previa o envío al servicio remoto de PDF.
//
// El bloque QR emite el token literal "[QR:...]" en lugar de una imagen:
// el servicio remoto de PDF lo interpreta y lo sustituye al renderizar.
package htmldoc

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/fourone/fourone-api/internal/application/printing"
	"github.com/fourone/fourone-api/internal/domain/entity"
	"github.com/fourone/fourone-api/internal/domain/money"
	"github.com/fourone/fourone-api/pkg/dgii"
)

var _ printing.HTMLRenderer = (*Renderer)(nil)

// Renderer implementa printing.HTMLRenderer con html/template.
type Renderer struct {
	tpl *template.Template
}

// NewRenderer parsea la plantilla una sola vez.
func NewRenderer() (*Renderer, error) {
	tpl, err := template.New("document").Parse(documentTemplate)
	if err != nil {
		return nil, fmt.Errorf("htmldoc: parsear plantilla: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Render construye el documento completo. Campos opcionales ausentes se
// omiten del HTML sin alterar la estructura; lista de partidas vacía produce
// una tabla sin filas.
func (r *Renderer) Render(_ context.Context, in printing.DocumentInput) (string, error) {
	in.Options.Normalize()
	view := buildView(in)
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("htmldoc: ejecutar plantilla: %w", err)
	}
	return buf.String(), nil
}

// ── viewmodel ─────────────────────────────────────────────────────────────────

type itemView struct {
	Name     string
	Code     string
	Qty      string
	Unit     string
	Discount string
	Subtotal string
}

type docView struct {
	Title       string
	PageSize    string
	Orientation string
	Watermark   string

	LogoSrc      template.URL
	CompanyName  string
	BusinessName string
	RNC          string
	Address      string
	Phone        string
	Email        string
	Website      string

	DocLabel   string
	SaleNumber string
	Date       string

	NCF          string
	NCFTypeName  string
	FiscalPeriod string

	PaymentLabel string
	Cashier      string

	HasCustomer   bool
	CustomerName  string
	CustomerRNC   string
	CustomerPhone string

	Items    []itemView
	Subtotal string
	ITBIS    string
	Total    string

	QRToken string
}

var paymentLabels = map[string]string{
	entity.PaymentCash:     "Efectivo",
	entity.PaymentCard:     "Tarjeta",
	entity.PaymentTransfer: "Transferencia",
	entity.PaymentCredit:   "Crédito",
}

var pageSizes = map[string]string{
	entity.PaperLetter: "letter",
	entity.PaperA4:     "A4",
	entity.PaperLegal:  "legal",
}

func buildView(in printing.DocumentInput) docView {
	sale, c := in.Sale, in.Company

	v := docView{
		Title:       "Comprobante " + sale.SaleNumber,
		PageSize:    pageSizes[in.Options.PaperFormat],
		Orientation: in.Options.Orientation,
		Watermark:   in.Options.Watermark,

		CompanyName: c.Name,
		RNC:         c.RNC,
		Address:     c.Address,
		Phone:       c.Phone,
		Email:       c.Email,
		Website:     c.Website,

		DocLabel:   "RECIBO DE VENTA",
		SaleNumber: sale.SaleNumber,
		Date:       money.FormatDateTime(sale.CreatedAt),

		Cashier:  sale.CashierName,
		Subtotal: money.FormatCurrency(sale.Subtotal),
		ITBIS:    money.FormatCurrency(sale.ITBIS),
		Total:    "RD$" + money.FormatCurrency(sale.Total),
	}
	if c.BusinessName != "" && c.BusinessName != c.Name {
		v.BusinessName = c.BusinessName
	}
	if in.Options.ShowLogo && c.LogoBase64 != "" {
		v.LogoSrc = template.URL(logoDataURI(c.LogoBase64))
	}

	if in.Options.ShowNCF && sale.NCF != "" {
		v.NCF = sale.NCF
		v.FiscalPeriod = sale.FiscalPeriod
		if ncf, err := dgii.ParseNCF(sale.NCF); err == nil {
			v.NCFTypeName = ncf.TypeName()
			if ncf.TypeName() != "" {
				v.DocLabel = strings.ToUpper(ncf.TypeName())
			}
		}
	}

	if label, ok := paymentLabels[sale.PaymentMethod]; ok {
		v.PaymentLabel = label
	} else {
		v.PaymentLabel = sale.PaymentMethod
	}

	if in.Customer != nil {
		v.HasCustomer = true
		v.CustomerName = in.Customer.Name
		v.CustomerRNC = in.Customer.RNC
		v.CustomerPhone = in.Customer.Phone
	}

	v.Items = make([]itemView, 0, len(in.Items))
	for _, it := range in.Items {
		discount := ""
		if it.Discount.IsPositive() {
			discount = "-" + money.FormatCurrency(it.Discount)
		}
		v.Items = append(v.Items, itemView{
			Name:     it.ProductName,
			Code:     it.ProductCode,
			Qty:      it.Quantity.String(),
			Unit:     money.FormatCurrency(it.UnitPrice),
			Discount: discount,
			Subtotal: money.FormatCurrency(it.Subtotal),
		})
	}

	if in.Options.ShowQR && in.VerifyURL != "" {
		v.QRToken = "[QR:" + in.VerifyURL + "]"
	}
	return v
}

// logoDataURI completa el prefijo data-URI si el logo viene como base64 crudo.
func logoDataURI(b64 string) string {
	if strings.HasPrefix(b64, "data:") {
		return b64
	}
	return "data:image/png;base64," + b64
}
