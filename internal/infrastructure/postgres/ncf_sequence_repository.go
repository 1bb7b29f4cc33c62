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

var _ repository.NCFSequenceRepository = (*NCFSequenceRepo)(nil)

// NCFSequenceRepo implementación de NCFSequenceRepository (usable con pool o tx).
type NCFSequenceRepo struct {
	q Querier
}

// NewNCFSequenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNCFSequenceRepository(q Querier) *NCFSequenceRepo {
	return &NCFSequenceRepo{q: q}
}

const ncfSeqColumns = `id, company_id, ncf_type, next, range_end, expires_at, active, created_at, updated_at`

// Create registra un rango de numeración autorizado.
func (r *NCFSequenceRepo) Create(seq *entity.NCFSequence) error {
	query := `
		INSERT INTO ncf_sequences (` + ncfSeqColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		seq.ID, seq.CompanyID, seq.NCFType, seq.Next, seq.End,
		seq.ExpiresAt, seq.Active, seq.CreatedAt, seq.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ncf sequence: %w", err)
	}
	return nil
}

// GetActiveForUpdate carga la secuencia activa del tipo con bloqueo de fila.
// Debe llamarse dentro de una transacción: el FOR UPDATE serializa las
// asignaciones concurrentes del mismo rango.
func (r *NCFSequenceRepo) GetActiveForUpdate(companyID, ncfType string) (*entity.NCFSequence, error) {
	query := `
		SELECT ` + ncfSeqColumns + ` FROM ncf_sequences
		WHERE company_id = $1 AND ncf_type = $2 AND active
		ORDER BY created_at LIMIT 1
		FOR UPDATE`
	var s entity.NCFSequence
	err := r.q.QueryRow(context.Background(), query, companyID, ncfType).Scan(
		&s.ID, &s.CompanyID, &s.NCFType, &s.Next, &s.End,
		&s.ExpiresAt, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ncf sequence: %w", err)
	}
	return &s, nil
}

// Advance persiste el avance del contador tras asignar un NCF.
func (r *NCFSequenceRepo) Advance(seq *entity.NCFSequence) error {
	query := `
		UPDATE ncf_sequences SET next = $2, active = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, seq.ID, seq.Next, seq.Active, seq.UpdatedAt)
	if err != nil {
		return fmt.Errorf("advance ncf sequence: %w", err)
	}
	return nil
}

// ListByCompany lista todos los rangos de la empresa, activos e históricos.
func (r *NCFSequenceRepo) ListByCompany(companyID string) ([]*entity.NCFSequence, error) {
	query := `SELECT ` + ncfSeqColumns + ` FROM ncf_sequences
		WHERE company_id = $1 ORDER BY ncf_type, created_at`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list ncf sequences: %w", err)
	}
	defer rows.Close()
	var list []*entity.NCFSequence
	for rows.Next() {
		var s entity.NCFSequence
		if err := rows.Scan(
			&s.ID, &s.CompanyID, &s.NCFType, &s.Next, &s.End,
			&s.ExpiresAt, &s.Active, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ncf sequence: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
