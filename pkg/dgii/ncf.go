// Package dgii contiene catálogos y validaciones alineados a la normativa de
// Comprobantes Fiscales de la DGII (República Dominicana), Norma General 06-2018.
package dgii

import (
	"fmt"
	"strings"
)

// =============================================================================
// Tipos de Comprobante Fiscal (NCF serie B) — Norma General 06-2018, Art. 4.
// El NCF en papel/POS tiene 11 posiciones: serie "B" + tipo (2) + secuencial (8).
// =============================================================================

const (
	NCFTypeCreditoFiscal        = "01" // Factura de Crédito Fiscal
	NCFTypeConsumo              = "02" // Factura de Consumo
	NCFTypeNotaDebito           = "03" // Nota de Débito
	NCFTypeNotaCredito          = "04" // Nota de Crédito
	NCFTypeProveedorInformal    = "11" // Comprobante de Compras (proveedores informales)
	NCFTypeRegistroUnicoIngreso = "12" // Registro Único de Ingresos
	NCFTypeGastoMenor           = "13" // Comprobante para Gastos Menores
	NCFTypeRegimenEspecial      = "14" // Regímenes Especiales de Tributación
	NCFTypeGubernamental        = "15" // Comprobantes Gubernamentales
	NCFTypeExportacion          = "16" // Comprobante para Exportaciones
	NCFTypePagoExterior         = "17" // Comprobante para Pagos al Exterior
)

// NCFTypeNames nombre oficial de cada tipo, para impresión en el comprobante.
var NCFTypeNames = map[string]string{
	NCFTypeCreditoFiscal:        "Factura de Crédito Fiscal",
	NCFTypeConsumo:              "Factura de Consumo",
	NCFTypeNotaDebito:           "Nota de Débito",
	NCFTypeNotaCredito:          "Nota de Crédito",
	NCFTypeProveedorInformal:    "Comprobante de Compras",
	NCFTypeRegistroUnicoIngreso: "Registro Único de Ingresos",
	NCFTypeGastoMenor:           "Comprobante para Gastos Menores",
	NCFTypeRegimenEspecial:      "Regímenes Especiales",
	NCFTypeGubernamental:        "Comprobante Gubernamental",
	NCFTypeExportacion:          "Comprobante para Exportaciones",
	NCFTypePagoExterior:         "Comprobante para Pagos al Exterior",
}

// ValidNCFTypes tipos de comprobante válidos para emisión serie B.
var ValidNCFTypes = map[string]bool{
	NCFTypeCreditoFiscal: true, NCFTypeConsumo: true,
	NCFTypeNotaDebito: true, NCFTypeNotaCredito: true,
	NCFTypeProveedorInformal: true, NCFTypeRegistroUnicoIngreso: true,
	NCFTypeGastoMenor: true, NCFTypeRegimenEspecial: true,
	NCFTypeGubernamental: true, NCFTypeExportacion: true,
	NCFTypePagoExterior: true,
}

// NCF descompone un Número de Comprobante Fiscal serie B o E.
type NCF struct {
	Serie      string // "B" (papel/POS) o "E" (e-CF)
	Tipo       string // código de 2 dígitos, ver constantes NCFType*
	Secuencial string // 8 dígitos (B) o 10 dígitos (E), con ceros a la izquierda
}

// String reconstruye el NCF en su forma canónica (ej. "B0100000123").
func (n NCF) String() string {
	return n.Serie + n.Tipo + n.Secuencial
}

// TypeName devuelve el nombre oficial del tipo, o cadena vacía si es desconocido.
func (n NCF) TypeName() string {
	return NCFTypeNames[n.Tipo]
}

// ParseNCF valida y descompone un NCF.
// Formatos aceptados:
//   - Serie B: "B" + tipo (2 dígitos) + secuencial (8 dígitos)  → 11 posiciones
//   - Serie E: "E" + tipo (2 dígitos) + secuencial (10 dígitos) → 13 posiciones
func ParseNCF(raw string) (NCF, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return NCF{}, fmt.Errorf("dgii: NCF vacío")
	}
	serie := s[:1]
	var seqLen int
	switch serie {
	case "B":
		seqLen = 8
	case "E":
		seqLen = 10
	default:
		return NCF{}, fmt.Errorf("dgii: serie de NCF desconocida %q (se espera B o E)", serie)
	}
	if len(s) != 1+2+seqLen {
		return NCF{}, fmt.Errorf("dgii: NCF serie %s debe tener %d posiciones, tiene %d", serie, 1+2+seqLen, len(s))
	}
	tipo := s[1:3]
	if serie == "B" && !ValidNCFTypes[tipo] {
		return NCF{}, fmt.Errorf("dgii: tipo de comprobante %q no reconocido", tipo)
	}
	sec := s[3:]
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return NCF{}, fmt.Errorf("dgii: NCF contiene caracteres no numéricos después de la serie")
		}
	}
	return NCF{Serie: serie, Tipo: tipo, Secuencial: sec}, nil
}

// FormatNCF compone el NCF canónico serie B a partir del tipo y el número de secuencia.
// El secuencial se rellena con ceros a la izquierda hasta 8 posiciones.
func FormatNCF(tipo string, secuencia int64) (string, error) {
	if !ValidNCFTypes[tipo] {
		return "", fmt.Errorf("dgii: tipo de comprobante %q no reconocido", tipo)
	}
	if secuencia <= 0 || secuencia > 99999999 {
		return "", fmt.Errorf("dgii: secuencia NCF fuera de rango: %d", secuencia)
	}
	return fmt.Sprintf("B%s%08d", tipo, secuencia), nil
}
