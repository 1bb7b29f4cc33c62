package escpos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourone/fourone-api/internal/application/printing"
	"github.com/fourone/fourone-api/internal/domain/entity"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// venta de caja típica: un producto, pago en efectivo con cambio.
func cashSaleInput() printing.ReceiptInput {
	sale := &entity.Sale{
		ID:            uuid.NewString(),
		SaleNumber:    "POS-0042",
		NCF:           "B0100000123",
		NCFType:       "01",
		FiscalPeriod:  "202509",
		Subtotal:      decimal.RequireFromString("1000.00"),
		ITBIS:         decimal.RequireFromString("180.00"),
		Total:         decimal.RequireFromString("1180.00"),
		PaymentMethod: entity.PaymentCash,
		CashReceived:  decPtr("1200.00"),
		CashChange:    decPtr("20.00"),
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
		Name:         "Colmado El Buen Precio",
		RNC:          "131151116",
		Address:      "Av. 27 de Febrero #123, Santo Domingo",
		Phone:        "809-555-0101",
		PrinterWidth: 80,
	}
	return printing.ReceiptInput{
		Sale:    sale,
		Items:   items,
		Company: company,
		Options: entity.ReceiptOptions{PaperWidth: 80, ShowNCF: true, PaperCut: true},
	}
}

func TestRender_VentaEfectivoCompleta(t *testing.T) {
	r := NewRenderer()
	out, err := r.Render(context.Background(), cashSaleInput())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "POS-0042")
	assert.Contains(t, text, "1,000.00")
	assert.Contains(t, text, "180.00")
	assert.Contains(t, text, "1,180.00")
	assert.Contains(t, text, "Cambio")
	assert.Contains(t, text, "20.00")
	assert.Contains(t, text, "Efectivo")
	assert.Contains(t, text, "Colmado El Buen Precio")
	// diacríticos plegados a ASCII para el printer
	assert.Contains(t, text, "Maria")
	assert.NotContains(t, text, "María")
}

func TestRender_NCFSoloSiShowNCF(t *testing.T) {
	r := NewRenderer()

	in := cashSaleInput()
	in.Options.ShowNCF = false
	out, err := r.Render(context.Background(), in)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "B0100000123")

	in.Options.ShowNCF = true
	out, err = r.Render(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, string(out), "B0100000123")
	assert.Contains(t, string(out), "Factura de Credito Fiscal")
}

func TestRender_PartidasVacias(t *testing.T) {
	r := NewRenderer()
	in := cashSaleInput()
	in.Items = nil

	out, err := r.Render(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, string(out), "POS-0042")
	assert.NotContains(t, string(out), "Producto X")
}

func TestRender_CamposOpcionalesAusentes(t *testing.T) {
	r := NewRenderer()
	in := cashSaleInput()
	in.Company = &entity.Company{Name: "Negocio Minimo", PrinterWidth: 80}
	in.Sale.CashierName = ""

	out, err := r.Render(context.Background(), in)
	require.NoError(t, err)

	text := string(out)
	assert.NotContains(t, text, "RNC:")
	assert.NotContains(t, text, "Tel:")
	assert.NotContains(t, text, "Cajero:")
}

func TestRender_ClienteOpcional(t *testing.T) {
	r := NewRenderer()

	in := cashSaleInput()
	out, err := r.Render(context.Background(), in)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "Cliente:")

	in.Customer = &entity.Customer{Name: "Juan Pérez", RNC: "001123458"}
	out, err = r.Render(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Cliente: Juan Perez")
	assert.Contains(t, string(out), "RNC/Cedula: 001123458")
}

func TestRender_QRBitmap(t *testing.T) {
	r := NewRenderer()
	in := cashSaleInput()
	in.Options.ShowQR = true
	in.VerifyURL = "https://fourone.com.do/v/POS-0042"

	out, err := r.Render(context.Background(), in)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "Verifique su comprobante en:")
	assert.Contains(t, text, "https://fourone.com.do/v/POS-0042")
	// comando raster GS v 0 presente
	assert.Contains(t, text, string([]byte{gsByte, 'v', '0', 0}))
}

func TestRender_CorteYGaveta(t *testing.T) {
	r := NewRenderer()
	in := cashSaleInput()
	in.Options.PaperCut = true
	in.Options.CashDrawer = true

	out, err := r.Render(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, string(out), string([]byte{gsByte, 'V', 66, 0}))
	assert.Contains(t, string(out), string([]byte{escByte, 'p', 0, 25, 250}))

	in.Options.PaperCut = false
	in.Options.CashDrawer = false
	out, err = r.Render(context.Background(), in)
	require.NoError(t, err)
	assert.NotContains(t, string(out), string([]byte{gsByte, 'V', 66, 0}))
	assert.NotContains(t, string(out), string([]byte{escByte, 'p', 0, 25, 250}))
}

func TestRender_Papel58Columnas(t *testing.T) {
	r := NewRenderer()
	in := cashSaleInput()
	in.Options.PaperWidth = 58

	out, err := r.Render(context.Background(), in)
	require.NoError(t, err)

	// el separador refleja el ancho de 32 columnas
	assert.Contains(t, string(out), "--------------------------------\n")
}

func TestRender_RestauranteBloque(t *testing.T) {
	r := NewRenderer()
	in := cashSaleInput()
	in.Sale.OrderType = entity.OrderDineIn
	in.Sale.TableNumber = "7"

	out, err := r.Render(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Para comer aqui")
	assert.Contains(t, string(out), "Mesa: 7")
}
