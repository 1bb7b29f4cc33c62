package htmldoc

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourone/fourone-api/internal/application/printing"
	"github.com/fourone/fourone-api/internal/domain/entity"
)

func documentInput() printing.DocumentInput {
	sale := &entity.Sale{
		SaleNumber:    "POS-0042",
		NCF:           "B0100000123",
		NCFType:       "01",
		FiscalPeriod:  "202509",
		Subtotal:      decimal.RequireFromString("1000.00"),
		ITBIS:         decimal.RequireFromString("180.00"),
		Total:         decimal.RequireFromString("1180.00"),
		PaymentMethod: entity.PaymentCash,
		CashierName:   "María",
		CreatedAt:     time.Date(2025, 9, 15, 14, 30, 0, 0, time.UTC),
	}
	items := []*entity.SaleItem{
		{
			ProductName: "Producto X",
			ProductCode: "PX-01",
			Quantity:    decimal.NewFromInt(2),
			UnitPrice:   decimal.RequireFromString("500.00"),
			Subtotal:    decimal.RequireFromString("1000.00"),
		},
	}
	company := &entity.Company{
		Name:    "Colmado El Buen Precio",
		RNC:     "131151116",
		Address: "Av. 27 de Febrero #123, Santo Domingo",
		Phone:   "809-555-0101",
	}
	return printing.DocumentInput{
		Sale:    sale,
		Items:   items,
		Company: company,
		Options: entity.DocumentOptions{PaperFormat: entity.PaperLetter, ShowNCF: true},
	}
}

func TestRender_DocumentoCompleto(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	html, err := r.Render(context.Background(), documentInput())
	require.NoError(t, err)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "POS-0042")
	assert.Contains(t, html, "1,000.00")
	assert.Contains(t, html, "180.00")
	assert.Contains(t, html, "RD$1,180.00")
	assert.Contains(t, html, "B0100000123")
	assert.Contains(t, html, "FACTURA DE CRÉDITO FISCAL")
	assert.Contains(t, html, "Producto X")
	assert.Contains(t, html, "size: letter portrait")
}

func TestRender_NCFCondicional(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	in := documentInput()
	in.Options.ShowNCF = false
	html, err := r.Render(context.Background(), in)
	require.NoError(t, err)
	assert.NotContains(t, html, "B0100000123")
	assert.Contains(t, html, "RECIBO DE VENTA")
}

func TestRender_MarcaDeAgua(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	in := documentInput()
	html, err := r.Render(context.Background(), in)
	require.NoError(t, err)
	assert.NotContains(t, html, `class="watermark"`)

	in.Options.Watermark = "BORRADOR"
	html, err = r.Render(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, html, `<div class="watermark">BORRADOR</div>`)
}

func TestRender_TokenQR(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	in := documentInput()
	in.Options.ShowQR = true
	in.VerifyURL = "https://fourone.com.do/v/POS-0042"

	html, err := r.Render(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, html, "[QR:https://fourone.com.do/v/POS-0042]")

	in.Options.ShowQR = false
	html, err = r.Render(context.Background(), in)
	require.NoError(t, err)
	assert.NotContains(t, html, "[QR:")
}

func TestRender_PartidasVacias(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	in := documentInput()
	in.Items = nil
	html, err := r.Render(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, html, "POS-0042")
	assert.NotContains(t, html, "Producto X")
}

func TestRender_CamposAusentesOmitidos(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	in := documentInput()
	in.Company = &entity.Company{Name: "Negocio Mínimo"}
	html, err := r.Render(context.Background(), in)
	require.NoError(t, err)
	assert.NotContains(t, html, "RNC: <")
	assert.NotContains(t, html, "Tel:")
}

func TestRender_FormatoYOrientacion(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	in := documentInput()
	in.Options.PaperFormat = entity.PaperA4
	in.Options.Orientation = entity.OrientationLandscape
	html, err := r.Render(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, html, "size: A4 landscape")
}

func TestRender_EscapaHTML(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	in := documentInput()
	in.Items[0].ProductName = `<script>alert("x")</script>`
	html, err := r.Render(context.Background(), in)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
