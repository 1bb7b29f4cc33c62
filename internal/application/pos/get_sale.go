package pos

import (
	"context"

	"github.com/fourone/fourone-api/internal/application/dto"
	"github.com/fourone/fourone-api/internal/domain"
	"github.com/fourone/fourone-api/internal/domain/money"
	"github.com/fourone/fourone-api/internal/domain/repository"
)

// GetSaleUseCase consultas de ventas cerradas, incluida la verificación pública.
type GetSaleUseCase struct {
	saleRepo    repository.SaleRepository
	companyRepo repository.CompanyRepository
}

// NewGetSaleUseCase construye el caso de uso.
func NewGetSaleUseCase(saleRepo repository.SaleRepository, companyRepo repository.CompanyRepository) *GetSaleUseCase {
	return &GetSaleUseCase{saleRepo: saleRepo, companyRepo: companyRepo}
}

// GetSale obtiene la venta con sus líneas.
func (uc *GetSaleUseCase) GetSale(_ context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItemsBySaleID(sale.ID)
	if err != nil {
		return nil, err
	}
	return ToSaleResponse(sale, items), nil
}

// ListSales lista las ventas de una empresa, más recientes primero.
func (uc *GetSaleUseCase) ListSales(_ context.Context, companyID string, page dto.PageRequest) ([]*dto.SaleResponse, error) {
	page.DefaultPage()
	sales, err := uc.saleRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		// listado sin líneas: el detalle se pide por venta
		out = append(out, ToSaleResponse(s, nil))
	}
	return out, nil
}

// VerifySale resuelve la URL del QR ({base}/v/{saleNumber}) a los datos
// públicos mínimos del comprobante: existencia, emisor, NCF, total y fecha.
func (uc *GetSaleUseCase) VerifySale(_ context.Context, saleNumber string) (*dto.SaleVerificationResponse, error) {
	sale, err := uc.saleRepo.GetBySaleNumber(saleNumber)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	resp := &dto.SaleVerificationResponse{
		SaleNumber: sale.SaleNumber,
		NCF:        sale.NCF,
		Total:      sale.Total,
		Date:       money.FormatDateTime(sale.CreatedAt),
	}
	if company, err := uc.companyRepo.GetByID(sale.CompanyID); err == nil && company != nil {
		resp.CompanyName = company.Name
		resp.CompanyRNC = company.RNC
	}
	return resp, nil
}
