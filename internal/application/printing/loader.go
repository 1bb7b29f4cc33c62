package printing

import (
	"fmt"

	"github.com/fourone/fourone-api/internal/domain"
	"github.com/fourone/fourone-api/internal/domain/entity"
	"github.com/fourone/fourone-api/internal/domain/repository"
)

// snapshotLoader carga el snapshot completo que consumen los generadores:
// venta + líneas + empresa + cliente (si aplica). Compartido por el recibo
// térmico y el documento HTML/PDF.
type snapshotLoader struct {
	saleRepo     repository.SaleRepository
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
}

func (l *snapshotLoader) load(saleID string) (*entity.Sale, []*entity.SaleItem, *entity.Company, *entity.Customer, error) {
	// ── 1. Cargar venta ───────────────────────────────────────────────────────
	sale, err := l.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("printing: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, nil, nil, nil, domain.ErrNotFound
	}

	// ── 2. Cargar líneas ──────────────────────────────────────────────────────
	items, err := l.saleRepo.GetItemsBySaleID(sale.ID)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("printing: obtener líneas: %w", err)
	}

	// ── 3. Cargar empresa ─────────────────────────────────────────────────────
	company, err := l.companyRepo.GetByID(sale.CompanyID)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("printing: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, nil, nil, nil, fmt.Errorf("printing: empresa %s: %w", sale.CompanyID, domain.ErrNotFound)
	}

	// ── 4. Cliente opcional: consumidor final si la venta no tiene ────────────
	var customer *entity.Customer
	if sale.CustomerID != "" {
		customer, err = l.customerRepo.GetByID(sale.CustomerID)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("printing: obtener cliente: %w", err)
		}
	}
	return sale, items, company, customer, nil
}
