// Package money formatea montos y fechas con las convenciones dominicanas
// (peso dominicano DOP, zona horaria America/Santo_Domingo).
//
// Los montos entran como decimal ya validado en la frontera del modelo; aquí
// solo se formatea, nunca se re-parsea ni se recalcula.
package money

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// santoDomingo se carga una sola vez. Si la base tzdata no está disponible se
// usa una zona fija UTC-4: República Dominicana no aplica horario de verano.
var santoDomingo = loadSantoDomingo()

func loadSantoDomingo() *time.Location {
	loc, err := time.LoadLocation("America/Santo_Domingo")
	if err != nil {
		return time.FixedZone("AST", -4*60*60)
	}
	return loc
}

// FormatCurrency renderiza un monto con 2 decimales fijos y separador de
// miles: 1180 → "1,180.00". Determinista: el mismo decimal produce siempre
// la misma cadena.
func FormatCurrency(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart := s[:len(s)-3]
	frac := s[len(s)-3:] // incluye el punto decimal
	out := groupThousands(intPart) + frac
	if neg {
		return "-" + out
	}
	return out
}

// FormatCurrencyRD antepone el símbolo del peso dominicano: "RD$1,180.00".
func FormatCurrencyRD(d decimal.Decimal) string {
	return "RD$" + FormatCurrency(d)
}

// FormatDate renderiza la fecha en formato dominicano dd/mm/aaaa, anclada a
// America/Santo_Domingo sin importar la zona horaria del host.
func FormatDate(t time.Time) string {
	return t.In(santoDomingo).Format("02/01/2006")
}

// FormatDateTime renderiza fecha y hora (24h) ancladas a America/Santo_Domingo.
func FormatDateTime(t time.Time) string {
	return t.In(santoDomingo).Format("02/01/2006 15:04")
}

// FiscalPeriod devuelve el período fiscal "AAAAMM" de la fecha dada.
func FiscalPeriod(t time.Time) string {
	return t.In(santoDomingo).Format("200601")
}

// groupThousands inserta comas de miles en un string de dígitos.
// Ej: "25000" → "25,000", "1000000" → "1,000,000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}
