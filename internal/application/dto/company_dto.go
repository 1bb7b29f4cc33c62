package dto

import "time"

// CreateCompanyRequest datos para registrar una empresa.
type CreateCompanyRequest struct {
	Name         string `json:"name"`
	BusinessName string `json:"business_name"`
	RNC          string `json:"rnc"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Website      string `json:"website"`
	LogoBase64   string `json:"logo_base64"`
	PrinterWidth int    `json:"printer_width"`
}

// UpdateCompanyRequest datos modificables de la empresa.
type UpdateCompanyRequest struct {
	Name         string `json:"name"`
	BusinessName string `json:"business_name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Website      string `json:"website"`
	LogoBase64   string `json:"logo_base64"`
	PrinterWidth int    `json:"printer_width"`
}

// CompanyResponse respuesta con los datos de la empresa.
type CompanyResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BusinessName string    `json:"business_name,omitempty"`
	RNC          string    `json:"rnc"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	Website      string    `json:"website,omitempty"`
	PrinterWidth int       `json:"printer_width,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
