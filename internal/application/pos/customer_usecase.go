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

// CustomerUseCase casos de uso para clientes del punto de venta.
type CustomerUseCase struct {
	repo        repository.CustomerRepository
	companyRepo repository.CompanyRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, companyRepo repository.CompanyRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, companyRepo: companyRepo}
}

// Create registra un cliente. El RNC/Cédula es opcional (venta a consumidor
// final), pero si viene debe pasar el dígito verificador de la DGII y ser
// único dentro de la empresa.
func (uc *CustomerUseCase) Create(ctx context.Context, companyID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("pos: nombre de cliente requerido: %w", domain.ErrInvalidInput)
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("pos: empresa %s: %w", companyID, domain.ErrNotFound)
	}
	if in.RNC != "" {
		if err := dgii.ValidateRNC(in.RNC); err != nil {
			return nil, fmt.Errorf("pos: rnc/cédula de cliente: %v: %w", err, domain.ErrInvalidInput)
		}
		existing, err := uc.repo.GetByCompanyAndRNC(companyID, in.RNC)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("pos: cliente con rnc %s ya existe: %w", in.RNC, domain.ErrDuplicate)
		}
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		Name:      in.Name,
		RNC:       in.RNC,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes de la empresa.
func (uc *CustomerUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) ([]*dto.CustomerResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		RNC:       c.RNC,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}
