package entity

import "time"

// NCFSequence rango de numeración autorizado por la DGII para un tipo de
// comprobante. Es un contador simple: Next avanza hasta End y la secuencia
// se agota; ExpiresAt refleja la fecha de vencimiento de la autorización.
type NCFSequence struct {
	ID        string
	CompanyID string
	NCFType   string     // código de 2 dígitos DGII ("01", "02", ...)
	Next      int64      // próximo secuencial a asignar
	End       int64      // último secuencial autorizado (inclusive)
	ExpiresAt *time.Time // nil = sin vencimiento
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Exhausted indica si no quedan secuenciales disponibles.
func (s *NCFSequence) Exhausted() bool {
	return s.Next > s.End
}

// Expired indica si la autorización venció en la fecha dada.
func (s *NCFSequence) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && now.After(*s.ExpiresAt)
}
