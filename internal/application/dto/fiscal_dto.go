package dto

import "github.com/shopspring/decimal"

// Report607Row una línea del reporte 607 (ventas) de la DGII.
type Report607Row struct {
	RNC          string          `json:"rnc"`       // RNC/cédula del comprador; vacío = consumidor final
	TipoID       string          `json:"tipo_id"`   // "1" RNC, "2" cédula, "3" consumidor final
	NCF          string          `json:"ncf"`
	FechaEmision string          `json:"fecha_emision"` // AAAAMMDD
	MontoFacturado decimal.Decimal `json:"monto_facturado"`
	ITBISFacturado decimal.Decimal `json:"itbis_facturado"`
}

// Report607Response reporte 607 completo del período.
type Report607Response struct {
	CompanyRNC string          `json:"company_rnc"`
	Period     string          `json:"period"` // AAAAMM
	Rows       []Report607Row  `json:"rows"`
	TotalMonto decimal.Decimal `json:"total_monto"`
	TotalITBIS decimal.Decimal `json:"total_itbis"`
}
