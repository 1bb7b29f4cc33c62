package repository

import (
	"github.com/fourone/fourone-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas POS.
// El pipeline de documentos solo lee: una venta cerrada nunca se muta aquí.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetBySaleNumber(saleNumber string) (*entity.Sale, error)
	GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Sale, error)
	// ListByFiscalPeriod devuelve las ventas con NCF del período "AAAAMM" (reporte 607).
	ListByFiscalPeriod(companyID, period string) ([]*entity.Sale, error)
	// NextSaleNumber genera el siguiente número visible de venta (ej. "POS-0043").
	NextSaleNumber(companyID string) (string, error)
}
