package repository

import "github.com/fourone/fourone-api/internal/domain/entity"

// NCFSequenceRepository define el puerto de persistencia para las secuencias NCF.
type NCFSequenceRepository interface {
	Create(seq *entity.NCFSequence) error
	// GetActiveForUpdate carga la secuencia activa del tipo con bloqueo de fila
	// (SELECT ... FOR UPDATE); debe usarse dentro de una transacción.
	GetActiveForUpdate(companyID, ncfType string) (*entity.NCFSequence, error)
	Advance(seq *entity.NCFSequence) error
	ListByCompany(companyID string) ([]*entity.NCFSequence, error)
}
