package pos

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourone/fourone-api/internal/application/dto"
	"github.com/fourone/fourone-api/internal/domain"
	"github.com/fourone/fourone-api/internal/domain/entity"
)

// fakeCompanyStore guarda empresas en memoria; rncErr permite simular un
// fallo de la base al consultar por RNC.
type fakeCompanyStore struct {
	byID   map[string]*entity.Company
	byRNC  map[string]*entity.Company
	rncErr error
}

func newFakeCompanyStore() *fakeCompanyStore {
	return &fakeCompanyStore{byID: map[string]*entity.Company{}, byRNC: map[string]*entity.Company{}}
}

func (f *fakeCompanyStore) Create(c *entity.Company) error {
	f.byID[c.ID] = c
	f.byRNC[c.RNC] = c
	return nil
}
func (f *fakeCompanyStore) GetByID(id string) (*entity.Company, error) { return f.byID[id], nil }
func (f *fakeCompanyStore) GetByRNC(rnc string) (*entity.Company, error) {
	if f.rncErr != nil {
		return nil, f.rncErr
	}
	return f.byRNC[rnc], nil
}
func (f *fakeCompanyStore) Update(c *entity.Company) error { f.byID[c.ID] = c; return nil }
func (f *fakeCompanyStore) List(int, int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

type fakeCustomerStore struct {
	byKey  map[string]*entity.Customer
	rncErr error
}

func newFakeCustomerStore() *fakeCustomerStore {
	return &fakeCustomerStore{byKey: map[string]*entity.Customer{}}
}

func (f *fakeCustomerStore) Create(c *entity.Customer) error {
	f.byKey[c.CompanyID+"/"+c.RNC] = c
	return nil
}
func (f *fakeCustomerStore) GetByID(string) (*entity.Customer, error) { return nil, nil }
func (f *fakeCustomerStore) GetByCompanyAndRNC(companyID, rnc string) (*entity.Customer, error) {
	if f.rncErr != nil {
		return nil, f.rncErr
	}
	return f.byKey[companyID+"/"+rnc], nil
}
func (f *fakeCustomerStore) ListByCompany(string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

func validCompanyRequest() dto.CreateCompanyRequest {
	return dto.CreateCompanyRequest{
		Name: "Colmado El Buen Precio",
		RNC:  "131151116",
	}
}

func TestCrearEmpresa_OK(t *testing.T) {
	store := newFakeCompanyStore()
	uc := NewCompanyUseCase(store)

	out, err := uc.Create(context.Background(), validCompanyRequest())
	require.NoError(t, err)
	assert.Equal(t, "131151116", out.RNC)
	assert.Equal(t, "active", out.Status)
	assert.Len(t, store.byID, 1)
}

func TestCrearEmpresa_RNCDuplicado(t *testing.T) {
	store := newFakeCompanyStore()
	uc := NewCompanyUseCase(store)

	_, err := uc.Create(context.Background(), validCompanyRequest())
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), validCompanyRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestCrearEmpresa_ErrorDeRepoNoSeTraga(t *testing.T) {
	store := newFakeCompanyStore()
	store.rncErr = errors.New("conexión perdida")
	uc := NewCompanyUseCase(store)

	out, err := uc.Create(context.Background(), validCompanyRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.rncErr))
	assert.Nil(t, out)
	// Con la base caída no se debe llegar a insertar nada.
	assert.Empty(t, store.byID)
}

func TestCrearCliente_ErrorDeRepoNoSeTraga(t *testing.T) {
	companyStore := newFakeCompanyStore()
	companyStore.byID["co-1"] = &entity.Company{ID: "co-1", Name: "Colmado El Buen Precio", RNC: "131151116"}
	customerStore := newFakeCustomerStore()
	customerStore.rncErr = errors.New("conexión perdida")
	uc := NewCustomerUseCase(customerStore, companyStore)

	out, err := uc.Create(context.Background(), "co-1", dto.CreateCustomerRequest{
		Name: "Juan Pérez",
		RNC:  "001123458",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, customerStore.rncErr))
	assert.Nil(t, out)
	assert.Empty(t, customerStore.byKey)
}
