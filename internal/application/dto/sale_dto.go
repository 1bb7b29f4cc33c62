package dto

import "github.com/shopspring/decimal"

// CreateSaleItemRequest línea de venta entrante. Los montos viajan como
// strings decimales y se validan una sola vez en esta frontera.
type CreateSaleItemRequest struct {
	ProductCode string `json:"product_code"`
	ProductName string `json:"product_name"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Discount    string `json:"discount"` // opcional, monto absoluto
}

// CreateSaleRequest venta POS entrante.
type CreateSaleRequest struct {
	CompanyID     string                  `json:"company_id"`
	CustomerID    string                  `json:"customer_id"` // vacío = consumidor final
	NCFType       string                  `json:"ncf_type"`    // vacío = venta sin comprobante fiscal
	Subtotal      string                  `json:"subtotal"`
	ITBIS         string                  `json:"itbis"`
	Total         string                  `json:"total"`
	PaymentMethod string                  `json:"payment_method"`
	CashReceived  string                  `json:"cash_received"` // solo efectivo
	CashierName   string                  `json:"cashier_name"`
	OrderType     string                  `json:"order_type"` // módulo restaurante
	TableNumber   string                  `json:"table_number"`
	PrepNotes     string                  `json:"prep_notes"`
	Items         []CreateSaleItemRequest `json:"items"`
}

// SaleItemResponse línea de venta saliente.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductCode string          `json:"product_code,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta completa saliente.
type SaleResponse struct {
	ID            string             `json:"id"`
	CompanyID     string             `json:"company_id"`
	CustomerID    string             `json:"customer_id,omitempty"`
	SaleNumber    string             `json:"sale_number"`
	NCF           string             `json:"ncf,omitempty"`
	NCFType       string             `json:"ncf_type,omitempty"`
	FiscalPeriod  string             `json:"fiscal_period,omitempty"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	ITBIS         decimal.Decimal    `json:"itbis"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	CashReceived  *decimal.Decimal   `json:"cash_received,omitempty"`
	CashChange    *decimal.Decimal   `json:"cash_change,omitempty"`
	CashierName   string             `json:"cashier_name,omitempty"`
	OrderType     string             `json:"order_type,omitempty"`
	TableNumber   string             `json:"table_number,omitempty"`
	PrepNotes     string             `json:"prep_notes,omitempty"`
	CreatedAt     string             `json:"created_at"`
	Items         []SaleItemResponse `json:"items"`
}

// SaleVerificationResponse respuesta pública de la página de verificación QR.
// Expone solo lo necesario para confirmar autenticidad, sin datos del cliente.
type SaleVerificationResponse struct {
	SaleNumber  string          `json:"sale_number"`
	NCF         string          `json:"ncf,omitempty"`
	CompanyName string          `json:"company_name"`
	CompanyRNC  string          `json:"company_rnc,omitempty"`
	Total       decimal.Decimal `json:"total"`
	Date        string          `json:"date"`
}
