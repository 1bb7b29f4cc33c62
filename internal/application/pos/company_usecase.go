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

// CompanyUseCase casos de uso para empresas (tenants del punto de venta).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create registra una empresa. El RNC se valida contra el dígito verificador
// de la DGII y debe ser único. Devuelve domain.ErrDuplicate si ya existe.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("pos: nombre de empresa requerido: %w", domain.ErrInvalidInput)
	}
	if err := dgii.ValidateRNC(in.RNC); err != nil {
		return nil, fmt.Errorf("pos: rnc de empresa: %v: %w", err, domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByRNC(in.RNC)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("pos: rnc %s ya registrado: %w", in.RNC, domain.ErrDuplicate)
	}
	now := time.Now()
	company := &entity.Company{
		ID:           uuid.NewString(),
		Name:         in.Name,
		BusinessName: in.BusinessName,
		RNC:          in.RNC,
		Address:      in.Address,
		Phone:        in.Phone,
		Email:        in.Email,
		Website:      in.Website,
		LogoBase64:   in.LogoBase64,
		PrinterWidth: in.PrinterWidth,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("pos: empresa %s: %w", id, domain.ErrNotFound)
	}
	return toCompanyResponse(company), nil
}

// Update modifica los datos de la empresa. El RNC no se puede cambiar.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("pos: empresa %s: %w", id, domain.ErrNotFound)
	}
	if in.Name != "" {
		company.Name = in.Name
	}
	company.BusinessName = in.BusinessName
	company.Address = in.Address
	company.Phone = in.Phone
	company.Email = in.Email
	company.Website = in.Website
	if in.LogoBase64 != "" {
		company.LogoBase64 = in.LogoBase64
	}
	if in.PrinterWidth != 0 {
		company.PrinterWidth = in.PrinterWidth
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		BusinessName: c.BusinessName,
		RNC:          c.RNC,
		Address:      c.Address,
		Phone:        c.Phone,
		Email:        c.Email,
		Website:      c.Website,
		PrinterWidth: c.PrinterWidth,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
