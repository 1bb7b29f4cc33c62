package pos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fourone/fourone-api/internal/application/dto"
	"github.com/fourone/fourone-api/internal/domain"
	"github.com/fourone/fourone-api/internal/domain/entity"
	"github.com/fourone/fourone-api/internal/domain/repository"
	"github.com/fourone/fourone-api/pkg/dgii"
)

// NCFSequenceUseCase administración de los rangos de numeración autorizados.
type NCFSequenceUseCase struct {
	ncfRepo     repository.NCFSequenceRepository
	companyRepo repository.CompanyRepository
}

// NewNCFSequenceUseCase construye el caso de uso.
func NewNCFSequenceUseCase(ncfRepo repository.NCFSequenceRepository, companyRepo repository.CompanyRepository) *NCFSequenceUseCase {
	return &NCFSequenceUseCase{ncfRepo: ncfRepo, companyRepo: companyRepo}
}

// CreateSequence registra un rango nuevo autorizado por la DGII.
func (uc *NCFSequenceUseCase) CreateSequence(_ context.Context, in dto.CreateNCFSequenceRequest) (*dto.NCFSequenceResponse, error) {
	if in.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !dgii.ValidNCFTypes[in.NCFType] {
		return nil, fmt.Errorf("%w: tipo de NCF %q", domain.ErrInvalidInput, in.NCFType)
	}
	if in.Start <= 0 || in.End < in.Start || in.End > 99999999 {
		return nil, fmt.Errorf("%w: rango [%d, %d] inválido", domain.ErrInvalidInput, in.Start, in.End)
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	var expiresAt *time.Time
	if in.ExpiresAt != "" {
		t, err := time.Parse("2006-01-02", in.ExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha de vencimiento: %v", domain.ErrInvalidInput, err)
		}
		expiresAt = &t
	}

	now := time.Now()
	seq := &entity.NCFSequence{
		ID:        uuid.New().String(),
		CompanyID: in.CompanyID,
		NCFType:   in.NCFType,
		Next:      in.Start,
		End:       in.End,
		ExpiresAt: expiresAt,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.ncfRepo.Create(seq); err != nil {
		return nil, err
	}
	return toSequenceResponse(seq), nil
}

// ListSequences lista los rangos de la empresa.
func (uc *NCFSequenceUseCase) ListSequences(_ context.Context, companyID string) ([]*dto.NCFSequenceResponse, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	seqs, err := uc.ncfRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NCFSequenceResponse, 0, len(seqs))
	for _, s := range seqs {
		out = append(out, toSequenceResponse(s))
	}
	return out, nil
}

func toSequenceResponse(seq *entity.NCFSequence) *dto.NCFSequenceResponse {
	remaining := seq.End - seq.Next + 1
	if remaining < 0 {
		remaining = 0
	}
	resp := &dto.NCFSequenceResponse{
		ID:        seq.ID,
		CompanyID: seq.CompanyID,
		NCFType:   seq.NCFType,
		TypeName:  dgii.NCFTypeNames[seq.NCFType],
		Next:      seq.Next,
		End:       seq.End,
		Remaining: remaining,
		Active:    seq.Active,
		Exhausted: seq.Exhausted(),
	}
	if seq.ExpiresAt != nil {
		resp.ExpiresAt = seq.ExpiresAt.Format("2006-01-02")
	}
	return resp
}
