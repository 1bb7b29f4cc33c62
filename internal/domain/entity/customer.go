package entity

import "time"

// Customer representa un cliente de la empresa (ventas con NCF de crédito fiscal).
type Customer struct {
	ID        string
	CompanyID string
	Name      string
	RNC       string // RNC o Cédula (República Dominicana)
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
