package money_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fourone/fourone-api/internal/domain/money"
)

// TestFormatCurrency_SeparadorDeMiles verifica el formato DOP con 2 decimales
// fijos y comas de miles.
func TestFormatCurrency_SeparadorDeMiles(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"5", "5.00"},
		{"180", "180.00"},
		{"1000", "1,000.00"},
		{"1180", "1,180.00"},
		{"25000.5", "25,000.50"},
		{"1000000", "1,000,000.00"},
		{"-1234.56", "-1,234.56"},
		{"999.999", "1,000.00"}, // StringFixed redondea a 2 decimales
	}
	for _, c := range cases {
		d, err := decimal.NewFromString(c.in)
		assert.NoError(t, err)
		assert.Equal(t, c.want, money.FormatCurrency(d), "entrada %s", c.in)
	}
}

// TestFormatCurrency_Idempotente el mismo decimal produce siempre la misma cadena.
func TestFormatCurrency_Idempotente(t *testing.T) {
	d := decimal.RequireFromString("1180.00")
	assert.Equal(t, money.FormatCurrency(d), money.FormatCurrency(d))
}

func TestFormatCurrencyRD_Prefijo(t *testing.T) {
	d := decimal.RequireFromString("1180")
	assert.Equal(t, "RD$1,180.00", money.FormatCurrencyRD(d))
}

// TestFormatDate_AncladaASantoDomingo una marca de tiempo UTC de madrugada
// debe renderizarse con la fecha del día anterior en Santo Domingo (UTC-4).
func TestFormatDate_AncladaASantoDomingo(t *testing.T) {
	utc := time.Date(2025, 3, 1, 2, 30, 0, 0, time.UTC) // 22:30 del 28/02 en RD
	assert.Equal(t, "28/02/2025", money.FormatDate(utc))
	assert.Equal(t, "28/02/2025 22:30", money.FormatDateTime(utc))
}

func TestFiscalPeriod(t *testing.T) {
	utc := time.Date(2025, 3, 1, 2, 30, 0, 0, time.UTC)
	assert.Equal(t, "202502", money.FiscalPeriod(utc))

	mediodia := time.Date(2025, 7, 15, 16, 0, 0, 0, time.UTC)
	assert.Equal(t, "202507", money.FiscalPeriod(mediodia))
}
