package entity

import "time"

// Company representa una empresa/tenant del sistema (enfoque República Dominicana).
// El pipeline de documentos la lee para el encabezado del comprobante.
type Company struct {
	ID           string
	Name         string // nombre comercial mostrado en el recibo
	BusinessName string // razón social (si difiere del nombre comercial)
	RNC          string // Registro Nacional del Contribuyente
	Address      string
	Phone        string
	Email        string
	Website      string
	LogoBase64   string // logo en base64 (con o sin prefijo data-URI); vacío = sin logo
	PrinterWidth int    // preferencia de papel térmico: 80 o 58 (mm)
	Status       string // active, suspended, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName devuelve la razón social si existe, o el nombre comercial.
func (c *Company) DisplayName() string {
	if c.BusinessName != "" {
		return c.BusinessName
	}
	return c.Name
}
