package pdf

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

func pdfInput() printing.DocumentInput {
	return printing.DocumentInput{
		Sale: &entity.Sale{
			SaleNumber:    "POS-0042",
			NCF:           "B0200001000",
			NCFType:       "02",
			FiscalPeriod:  "202509",
			Subtotal:      decimal.RequireFromString("1000.00"),
			ITBIS:         decimal.RequireFromString("180.00"),
			Total:         decimal.RequireFromString("1180.00"),
			PaymentMethod: entity.PaymentCash,
			CreatedAt:     time.Date(2025, 9, 15, 14, 30, 0, 0, time.UTC),
		},
		Items: []*entity.SaleItem{
			{
				ProductName: "Producto X",
				Quantity:    decimal.NewFromInt(2),
				UnitPrice:   decimal.RequireFromString("500.00"),
				Subtotal:    decimal.RequireFromString("1000.00"),
			},
		},
		Company: &entity.Company{Name: "Colmado El Buen Precio", RNC: "131151116"},
		Options: entity.DocumentOptions{ShowNCF: true},
	}
}

func TestGenerate_ProducePDF(t *testing.T) {
	g := NewMarotoGenerator()
	out, err := g.Generate(context.Background(), pdfInput())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerate_PartidasVacias(t *testing.T) {
	g := NewMarotoGenerator()
	in := pdfInput()
	in.Items = nil

	out, err := g.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerate_ConQRYMarcaDeAgua(t *testing.T) {
	g := NewMarotoGenerator()
	in := pdfInput()
	in.Options.ShowQR = true
	in.Options.Watermark = "BORRADOR"
	in.VerifyURL = "https://fourone.com.do/v/POS-0042"

	out, err := g.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
