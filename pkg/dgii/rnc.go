package dgii

import (
	"fmt"
	"unicode"
)

// pesos para el dígito verificador del RNC (módulo 11, DGII).
// Se aplican a los 8 primeros dígitos del RNC, de izquierda a derecha.
var rncWeights = [8]int{7, 9, 8, 6, 5, 4, 3, 2}

// ValidateRNC valida un RNC dominicano (9 dígitos, con o sin guiones/puntos)
// comprobando su dígito verificador módulo 11. Las cédulas (11 dígitos) se
// aceptan con validación de longitud solamente; la DGII las registra aparte.
func ValidateRNC(taxID string) error {
	digits := extractDigits(taxID)
	switch len(digits) {
	case 9:
		expected, err := ComputeRNCCheckDigit(digits)
		if err != nil {
			return err
		}
		if digits[8] != expected {
			return fmt.Errorf("dgii: dígito verificador del RNC inválido: esperado %c, recibido %c", expected, digits[8])
		}
		return nil
	case 11:
		// Cédula de identidad: se acepta por longitud
		return nil
	default:
		return fmt.Errorf("dgii: RNC debe tener 9 dígitos (o 11 si es cédula), se encontraron %d", len(digits))
	}
}

// ComputeRNCCheckDigit calcula el dígito verificador para los 8 primeros dígitos del RNC.
func ComputeRNCCheckDigit(taxID string) (byte, error) {
	digits := extractDigits(taxID)
	if len(digits) < 8 {
		return 0, fmt.Errorf("dgii: se requieren al menos 8 dígitos para calcular el verificador, se encontraron %d", len(digits))
	}
	var sum int
	for i := 0; i < 8; i++ {
		sum += int(digits[i]-'0') * rncWeights[i]
	}
	r := sum % 11
	switch r {
	case 0:
		return '2', nil
	case 1:
		return '1', nil
	default:
		return byte('0' + (11 - r)), nil
	}
}

// extractDigits devuelve solo los dígitos de s (ignora guiones, puntos y espacios).
func extractDigits(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return string(out)
}
