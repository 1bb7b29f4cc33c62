package dto

// CreateCustomerRequest datos para registrar un cliente.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	RNC   string `json:"rnc"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CustomerResponse respuesta con los datos del cliente.
type CustomerResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	RNC       string `json:"rnc,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}
