package pos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fourone/fourone-api/internal/application/dto"
	"github.com/fourone/fourone-api/internal/domain"
	"github.com/fourone/fourone-api/internal/domain/entity"
	"github.com/fourone/fourone-api/internal/domain/money"
	"github.com/fourone/fourone-api/internal/domain/repository"
	"github.com/fourone/fourone-api/pkg/dgii"
)

// formas de pago aceptadas en la frontera.
var validPaymentMethods = map[string]bool{
	entity.PaymentCash: true, entity.PaymentCard: true,
	entity.PaymentTransfer: true, entity.PaymentCredit: true,
}

// CreateSaleUseCase cierra una venta POS: valida montos en la frontera,
// asigna número de venta y NCF en una transacción y persiste todo.
type CreateSaleUseCase struct {
	txRunner     TxRunner
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner TxRunner,
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:     txRunner,
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
	}
}

// CreateSale valida y persiste la venta. Todos los montos entran como strings
// y se convierten a decimal UNA vez aquí; del modelo hacia dentro ya no se
// re-parsea nada. Total debe igualar subtotal + ITBIS.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.CompanyID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !validPaymentMethods[in.PaymentMethod] {
		return nil, fmt.Errorf("%w: forma de pago %q", domain.ErrInvalidInput, in.PaymentMethod)
	}

	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	// Cliente opcional: consumidor final si viene vacío
	var customer *entity.Customer
	if in.CustomerID != "" {
		customer, err = uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil || customer.CompanyID != in.CompanyID {
			return nil, domain.ErrNotFound
		}
	}

	// ── Frontera decimal: una sola conversión y validación ───────────────────
	subtotal, err := parseAmount(in.Subtotal, "subtotal")
	if err != nil {
		return nil, err
	}
	itbis, err := parseAmount(in.ITBIS, "itbis")
	if err != nil {
		return nil, err
	}
	total, err := parseAmount(in.Total, "total")
	if err != nil {
		return nil, err
	}
	if !subtotal.Add(itbis).Equal(total) {
		return nil, domain.ErrTotalsMismatch
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		CompanyID:     in.CompanyID,
		CustomerID:    in.CustomerID,
		NCFType:       in.NCFType,
		Subtotal:      subtotal,
		ITBIS:         itbis,
		Total:         total,
		PaymentMethod: in.PaymentMethod,
		CashierName:   in.CashierName,
		OrderType:     in.OrderType,
		TableNumber:   in.TableNumber,
		PrepNotes:     in.PrepNotes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if sale.IsCash() && in.CashReceived != "" {
		received, err := parseAmount(in.CashReceived, "cash_received")
		if err != nil {
			return nil, err
		}
		change := received.Sub(total)
		if change.IsNegative() {
			return nil, fmt.Errorf("%w: el efectivo recibido no cubre el total", domain.ErrInvalidInput)
		}
		sale.CashReceived = &received
		sale.CashChange = &change
	}

	items, err := buildItems(sale.ID, in.Items)
	if err != nil {
		return nil, err
	}

	// ── Transacción: número de venta + NCF + persistencia ────────────────────
	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		ncfRepo repository.NCFSequenceRepository,
	) error {
		number, err := saleRepo.NextSaleNumber(in.CompanyID)
		if err != nil {
			return err
		}
		sale.SaleNumber = number

		if in.NCFType != "" {
			ncf, err := assignNCF(ncfRepo, in.CompanyID, in.NCFType, now)
			if err != nil {
				return err
			}
			sale.NCF = ncf
			sale.FiscalPeriod = money.FiscalPeriod(now)
		}

		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, item := range items {
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ToSaleResponse(sale, items), nil
}

// assignNCF toma el siguiente secuencial del rango activo con bloqueo de fila.
// Rango agotado o vencido produce error tipado; el rango agotado queda inactivo.
func assignNCF(ncfRepo repository.NCFSequenceRepository, companyID, ncfType string, now time.Time) (string, error) {
	if !dgii.ValidNCFTypes[ncfType] {
		return "", fmt.Errorf("%w: tipo de NCF %q", domain.ErrInvalidInput, ncfType)
	}
	seq, err := ncfRepo.GetActiveForUpdate(companyID, ncfType)
	if err != nil {
		return "", err
	}
	if seq == nil {
		return "", fmt.Errorf("%w: sin rango autorizado para tipo %s", domain.ErrNCFExhausted, ncfType)
	}
	if seq.Expired(now) {
		return "", domain.ErrNCFExpired
	}
	if seq.Exhausted() {
		return "", domain.ErrNCFExhausted
	}

	ncf, err := dgii.FormatNCF(ncfType, seq.Next)
	if err != nil {
		return "", err
	}
	seq.Next++
	if seq.Exhausted() {
		seq.Active = false
	}
	seq.UpdatedAt = now
	if err := ncfRepo.Advance(seq); err != nil {
		return "", err
	}
	return ncf, nil
}

// buildItems valida y convierte las líneas; el subtotal de línea se calcula
// aquí (qty*unit - descuento) en vez de confiar en el cliente.
func buildItems(saleID string, in []dto.CreateSaleItemRequest) ([]*entity.SaleItem, error) {
	items := make([]*entity.SaleItem, 0, len(in))
	for i, line := range in {
		if line.ProductName == "" {
			return nil, fmt.Errorf("%w: línea %d sin nombre de producto", domain.ErrInvalidInput, i+1)
		}
		qty, err := parseAmount(line.Quantity, fmt.Sprintf("línea %d: cantidad", i+1))
		if err != nil {
			return nil, err
		}
		if !qty.IsPositive() {
			return nil, fmt.Errorf("%w: línea %d: cantidad debe ser positiva", domain.ErrInvalidInput, i+1)
		}
		unit, err := parseAmount(line.UnitPrice, fmt.Sprintf("línea %d: precio", i+1))
		if err != nil {
			return nil, err
		}
		discount := decimal.Zero
		if line.Discount != "" {
			discount, err = parseAmount(line.Discount, fmt.Sprintf("línea %d: descuento", i+1))
			if err != nil {
				return nil, err
			}
		}
		lineSubtotal := qty.Mul(unit).Sub(discount)
		if lineSubtotal.IsNegative() {
			return nil, fmt.Errorf("%w: línea %d: descuento mayor que el importe", domain.ErrInvalidInput, i+1)
		}
		items = append(items, &entity.SaleItem{
			ID:          uuid.New().String(),
			SaleID:      saleID,
			ProductCode: line.ProductCode,
			ProductName: line.ProductName,
			Quantity:    qty,
			UnitPrice:   unit,
			Discount:    discount,
			Subtotal:    lineSubtotal,
		})
	}
	return items, nil
}

// parseAmount convierte un string decimal validando que sea un número finito
// no negativo. Es el único punto del sistema donde un monto entra como texto.
func parseAmount(s, field string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: %s vacío", domain.ErrInvalidInput, field)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s no es un monto válido: %v", domain.ErrInvalidInput, field, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidInput, field)
	}
	return d, nil
}

// ToSaleResponse arma la respuesta completa de la venta.
func ToSaleResponse(sale *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            sale.ID,
		CompanyID:     sale.CompanyID,
		CustomerID:    sale.CustomerID,
		SaleNumber:    sale.SaleNumber,
		NCF:           sale.NCF,
		NCFType:       sale.NCFType,
		FiscalPeriod:  sale.FiscalPeriod,
		Subtotal:      sale.Subtotal,
		ITBIS:         sale.ITBIS,
		Total:         sale.Total,
		PaymentMethod: sale.PaymentMethod,
		CashReceived:  sale.CashReceived,
		CashChange:    sale.CashChange,
		CashierName:   sale.CashierName,
		OrderType:     sale.OrderType,
		TableNumber:   sale.TableNumber,
		PrepNotes:     sale.PrepNotes,
		CreatedAt:     sale.CreatedAt.Format(time.RFC3339),
		Items:         make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:          it.ID,
			ProductCode: it.ProductCode,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Discount:    it.Discount,
			Subtotal:    it.Subtotal,
		})
	}
	return resp
}
