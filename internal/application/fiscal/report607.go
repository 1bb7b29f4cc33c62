// Package fiscal genera los reportes de la DGII a partir de las ventas
// cerradas. Hoy solo el 607 (ventas de bienes y servicios).
package fiscal

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/fourone/fourone-api/internal/application/dto"
	"github.com/fourone/fourone-api/internal/domain"
	"github.com/fourone/fourone-api/internal/domain/repository"
)

// Tipos de identificación del comprador en el formato 607.
const (
	tipoIDRNC             = "1"
	tipoIDCedula          = "2"
	tipoIDConsumidorFinal = "3"
)

var periodRe = regexp.MustCompile(`^\d{6}$`)

// Report607UseCase arma el reporte 607 del período: una fila por venta con
// NCF asignado, con la identificación del comprador cuando se conoce.
type Report607UseCase struct {
	saleRepo     repository.SaleRepository
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
}

// NewReport607UseCase construye el caso de uso.
func NewReport607UseCase(
	saleRepo repository.SaleRepository,
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
) *Report607UseCase {
	return &Report607UseCase{saleRepo: saleRepo, companyRepo: companyRepo, customerRepo: customerRepo}
}

// Build genera el reporte del período "AAAAMM".
func (uc *Report607UseCase) Build(_ context.Context, companyID, period string) (*dto.Report607Response, error) {
	if !periodRe.MatchString(period) {
		return nil, fmt.Errorf("%w: período %q (se espera AAAAMM)", domain.ErrInvalidInput, period)
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	sales, err := uc.saleRepo.ListByFiscalPeriod(companyID, period)
	if err != nil {
		return nil, err
	}

	resp := &dto.Report607Response{
		CompanyRNC: company.RNC,
		Period:     period,
		Rows:       make([]dto.Report607Row, 0, len(sales)),
	}
	for _, sale := range sales {
		row := dto.Report607Row{
			TipoID:         tipoIDConsumidorFinal,
			NCF:            sale.NCF,
			FechaEmision:   sale.CreatedAt.Format("20060102"),
			MontoFacturado: sale.Subtotal,
			ITBISFacturado: sale.ITBIS,
		}
		// El reporte va a la DGII: si el cliente no se puede leer, el reporte
		// falla completo en vez de degradar la venta a consumidor final.
		if sale.CustomerID != "" {
			customer, err := uc.customerRepo.GetByID(sale.CustomerID)
			if err != nil {
				return nil, fmt.Errorf("fiscal: obtener cliente de %s: %w", sale.NCF, err)
			}
			if customer != nil {
				row.RNC = customer.RNC
				row.TipoID = classifyTaxID(customer.RNC)
			}
		}
		resp.Rows = append(resp.Rows, row)
		resp.TotalMonto = resp.TotalMonto.Add(sale.Subtotal)
		resp.TotalITBIS = resp.TotalITBIS.Add(sale.ITBIS)
	}
	return resp, nil
}

// BuildTXT serializa el reporte en el formato de envío: una cabecera
// "607|RNC|período|cantidad" y una fila por comprobante, campos con pipe.
func (uc *Report607UseCase) BuildTXT(ctx context.Context, companyID, period string) (string, error) {
	report, err := uc.Build(ctx, companyID, period)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "607|%s|%s|%d\r\n", report.CompanyRNC, report.Period, len(report.Rows))
	for _, row := range report.Rows {
		fmt.Fprintf(&b, "%s|%s|%s|%s|%s|%s\r\n",
			row.RNC, row.TipoID, row.NCF, row.FechaEmision,
			row.MontoFacturado.StringFixed(2), row.ITBISFacturado.StringFixed(2),
		)
	}
	return b.String(), nil
}

// classifyTaxID distingue RNC (9 dígitos) de cédula (11); sin identificación
// válida la venta se reporta como consumidor final.
func classifyTaxID(taxID string) string {
	digits := 0
	for _, r := range taxID {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	switch digits {
	case 9:
		return tipoIDRNC
	case 11:
		return tipoIDCedula
	default:
		return tipoIDConsumidorFinal
	}
}
