// Package pdf implementa la generación local del comprobante en PDF con
// Maroto v2, como alternativa sin servicio remoto.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre comercial + RNC  │  N° Recibo + Fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BANNER NCF: número + tipo + período fiscal                 │
//	│  CLIENTE: Nombre + RNC/Cédula + contacto                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Desc. | Subtotal      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / ITBIS (18%) / TOTAL                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de verificación + leyenda                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/fourone/fourone-api/internal/application/printing"
	"github.com/fourone/fourone-api/internal/domain/entity"
	"github.com/fourone/fourone-api/internal/domain/money"
	"github.com/fourone/fourone-api/pkg/dgii"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary   = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray      = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWatermark = &props.Color{Red: 200, Green: 200, Blue: 200}
)

var pageSizes = map[string]pagesize.Type{
	entity.PaperLetter: pagesize.Letter,
	entity.PaperA4:     pagesize.A4,
	entity.PaperLegal:  pagesize.Legal,
}

var _ printing.PDFGenerator = (*MarotoGenerator)(nil)

// MarotoGenerator implementa printing.PDFGenerator usando Maroto v2.
type MarotoGenerator struct{}

// NewMarotoGenerator construye el generador.
func NewMarotoGenerator() *MarotoGenerator { return &MarotoGenerator{} }

// Generate genera el PDF del comprobante y devuelve sus bytes.
func (g *MarotoGenerator) Generate(_ context.Context, in printing.DocumentInput) ([]byte, error) {
	in.Options.Normalize()

	orient := orientation.Vertical
	if in.Options.Orientation == entity.OrientationLandscape {
		orient = orientation.Horizontal
	}
	cfg := config.NewBuilder().
		WithPageSize(pageSizes[in.Options.PaperFormat]).
		WithOrientation(orient).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante "+in.Sale.SaleNumber, true).
		WithAuthor(in.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	if in.Options.Watermark != "" {
		m.AddRows(watermarkRow(in.Options.Watermark))
	}

	m.AddRows(headerRow(in.Sale, in.Company, docLabel(in)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if in.Options.ShowNCF && in.Sale.NCF != "" {
		m.AddRows(ncfRow(in.Sale))
	}
	if in.Customer != nil {
		m.AddRows(customerRow(in.Customer))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(in.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(in.Sale))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(in) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// docLabel título del documento según el tipo de comprobante asignado.
func docLabel(in printing.DocumentInput) string {
	if in.Options.ShowNCF && in.Sale.NCF != "" {
		if ncf, err := dgii.ParseNCF(in.Sale.NCF); err == nil && ncf.TypeName() != "" {
			return strings.ToUpper(ncf.TypeName())
		}
	}
	return "RECIBO DE VENTA"
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// watermarkRow imprime la marca de agua como banda superior prominente.
func watermarkRow(mark string) core.Row {
	return row.New(14).Add(col.New(12).Add(
		text.New(mark, props.Text{
			Style: fontstyle.Bold, Size: 28, Align: align.Center,
			Color: colorWatermark, Top: 1,
		}),
	))
}

// headerRow: nombre comercial + RNC (izq) y N° recibo + fecha (der).
func headerRow(sale *entity.Sale, company *entity.Company, label string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RNC: "+nonEmpty(company.RNC, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
			text.New(nonEmpty(company.Address, ""), props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("No. "+sale.SaleNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+money.FormatDateTime(sale.CreatedAt), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// ncfRow: banner fiscal con el NCF, su tipo y el período.
func ncfRow(sale *entity.Sale) core.Row {
	typeName := ""
	if ncf, err := dgii.ParseNCF(sale.NCF); err == nil {
		typeName = ncf.TypeName()
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("NCF: "+sale.NCF, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Período Fiscal: %s",
				nonEmpty(typeName, "—"),
				nonEmpty(sale.FiscalPeriod, "—"),
			), props.Text{Size: 8, Align: align.Center, Top: 8, Color: colorGray}),
		),
	)
}

// customerRow: datos del comprador.
func customerRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("RNC/Cédula: %s   |   Email: %s   |   Tel: %s",
				nonEmpty(customer.RNC, "—"),
				nonEmpty(customer.Email, "—"),
				nonEmpty(customer.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de partidas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 5, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Desc.", 1, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableItemRows: una fila por partida. Lista vacía = tabla sin filas.
func tableItemRows(items []*entity.SaleItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		name := it.ProductName
		if it.ProductCode != "" {
			name += " (" + it.ProductCode + ")"
		}
		discount := "—"
		if it.Discount.IsPositive() {
			discount = "-" + money.FormatCurrency(it.Discount)
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				money.FormatCurrency(it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				discount,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				money.FormatCurrency(it.Subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha. Los montos se imprimen
// tal cual vienen de la venta; no se recalcula nada aquí.
func totalsRow(sale *entity.Sale) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("ITBIS (18%):"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value(money.FormatCurrency(sale.Subtotal)),
			value(money.FormatCurrency(sale.ITBIS)),
			grandValue("RD$"+money.FormatCurrency(sale.Total)),
		),
		col.New(3),
	)
}

// footerRows: QR de verificación + leyenda.
func footerRows(in printing.DocumentInput) []core.Row {
	var rows []core.Row

	if in.Options.ShowQR && in.VerifyURL != "" {
		rows = append(rows, row.New(45).Add(
			col.New(4).Add(code.NewQr(in.VerifyURL, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Escanee el código QR para verificar\neste comprobante en línea.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New(in.VerifyURL, props.Text{
					Size: 7, Top: 18, Left: 3, Color: colorGray,
				}),
			),
		))
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Comprobante emitido conforme a la normativa de la DGII "+
				"(Norma General 06-2018). Conserve este documento como soporte fiscal.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	rows = append(rows, row.New(6).Add(col.New(12).Add(
		text.New("¡Gracias por su compra!", props.Text{
			Size: 8, Align: align.Center, Color: colorPrimary, Top: 1,
		}),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
