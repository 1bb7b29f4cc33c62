package dto

// CreateNCFSequenceRequest alta de un rango de numeración autorizado por la DGII.
type CreateNCFSequenceRequest struct {
	CompanyID string `json:"company_id"`
	NCFType   string `json:"ncf_type"`   // "01", "02", ...
	Start     int64  `json:"start"`      // primer secuencial autorizado
	End       int64  `json:"end"`        // último secuencial autorizado (inclusive)
	ExpiresAt string `json:"expires_at"` // "2006-01-02", opcional
}

// NCFSequenceResponse estado de un rango de numeración.
type NCFSequenceResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	NCFType   string `json:"ncf_type"`
	TypeName  string `json:"type_name"`
	Next      int64  `json:"next"`
	End       int64  `json:"end"`
	Remaining int64  `json:"remaining"`
	ExpiresAt string `json:"expires_at,omitempty"`
	Active    bool   `json:"active"`
	Exhausted bool   `json:"exhausted"`
}
