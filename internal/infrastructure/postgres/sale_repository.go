package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fourone/fourone-api/internal/domain"
	"github.com/fourone/fourone-api/internal/domain/entity"
	"github.com/fourone/fourone-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, company_id, customer_id, sale_number, ncf, ncf_type, fiscal_period,
	subtotal, itbis, total, payment_method, cash_received, cash_change, cashier_name,
	order_type, table_number, prep_notes, created_at, updated_at`

// Create persiste la venta cerrada.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CompanyID, sale.CustomerID, sale.SaleNumber, sale.NCF, sale.NCFType,
		sale.FiscalPeriod, sale.Subtotal, sale.ITBIS, sale.Total, sale.PaymentMethod,
		sale.CashReceived, sale.CashChange, sale.CashierName, sale.OrderType,
		sale.TableNumber, sale.PrepNotes, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_code, product_name, quantity, unit_price, discount, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductCode, item.ProductName,
		item.Quantity, item.UnitPrice, item.Discount, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetBySaleNumber obtiene una venta por su número visible (verificación QR).
func (r *SaleRepo) GetBySaleNumber(saleNumber string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_number = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, saleNumber))
}

// GetItemsBySaleID devuelve las líneas de la venta en su orden de inserción.
func (r *SaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_code, product_name, quantity, unit_price, discount, subtotal
		FROM sale_items WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductCode, &it.ProductName,
			&it.Quantity, &it.UnitPrice, &it.Discount, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// ListByCompany lista ventas de la empresa, más recientes primero.
func (r *SaleRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales
		WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.scanMany(r.q.Query(context.Background(), query, companyID, limit, offset))
}

// ListByFiscalPeriod devuelve las ventas con NCF del período (reporte 607).
func (r *SaleRepo) ListByFiscalPeriod(companyID, period string) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales
		WHERE company_id = $1 AND fiscal_period = $2 AND ncf <> ''
		ORDER BY ncf`
	return r.scanMany(r.q.Query(context.Background(), query, companyID, period))
}

// NextSaleNumber genera el siguiente número visible ("POS-0043") con un
// contador por empresa. Upsert atómico: seguro ante ventas concurrentes.
func (r *SaleRepo) NextSaleNumber(companyID string) (string, error) {
	query := `
		INSERT INTO sale_counters (company_id, counter) VALUES ($1, 1)
		ON CONFLICT (company_id) DO UPDATE SET counter = sale_counters.counter + 1
		RETURNING counter`
	var counter int64
	if err := r.q.QueryRow(context.Background(), query, companyID).Scan(&counter); err != nil {
		return "", fmt.Errorf("next sale number: %w", err)
	}
	return fmt.Sprintf("POS-%04d", counter), nil
}

func (r *SaleRepo) scanOne(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var customerID *string
	err := row.Scan(
		&s.ID, &s.CompanyID, &customerID, &s.SaleNumber, &s.NCF, &s.NCFType, &s.FiscalPeriod,
		&s.Subtotal, &s.ITBIS, &s.Total, &s.PaymentMethod, &s.CashReceived, &s.CashChange,
		&s.CashierName, &s.OrderType, &s.TableNumber, &s.PrepNotes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if customerID != nil {
		s.CustomerID = *customerID
	}
	return &s, nil
}

func (r *SaleRepo) scanMany(rows pgx.Rows, err error) ([]*entity.Sale, error) {
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var customerID *string
		if err := rows.Scan(
			&s.ID, &s.CompanyID, &customerID, &s.SaleNumber, &s.NCF, &s.NCFType, &s.FiscalPeriod,
			&s.Subtotal, &s.ITBIS, &s.Total, &s.PaymentMethod, &s.CashReceived, &s.CashChange,
			&s.CashierName, &s.OrderType, &s.TableNumber, &s.PrepNotes, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if customerID != nil {
			s.CustomerID = *customerID
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
