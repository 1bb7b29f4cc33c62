package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourone/fourone-api/internal/application/dto"
	"github.com/fourone/fourone-api/internal/application/fiscal"
	"github.com/fourone/fourone-api/internal/application/pos"
	"github.com/fourone/fourone-api/internal/application/printing"
	"github.com/fourone/fourone-api/internal/domain/entity"
	"github.com/fourone/fourone-api/internal/domain/money"
	"github.com/fourone/fourone-api/internal/domain/repository"
	"github.com/fourone/fourone-api/internal/infrastructure/printer"
	"github.com/fourone/fourone-api/internal/infrastructure/remote"
	"github.com/fourone/fourone-api/internal/infrastructure/render/escpos"
	"github.com/fourone/fourone-api/internal/infrastructure/render/htmldoc"
	"github.com/fourone/fourone-api/internal/infrastructure/render/pdf"
	apphttp "github.com/fourone/fourone-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para montar la app completa sin PostgreSQL
// ──────────────────────────────────────────────────────────────────────────────

type memSaleRepo struct {
	sales   map[string]*entity.Sale
	items   map[string][]*entity.SaleItem
	counter int
}

func newMemSaleRepo() *memSaleRepo {
	return &memSaleRepo{sales: map[string]*entity.Sale{}, items: map[string][]*entity.SaleItem{}}
}

func (m *memSaleRepo) Create(sale *entity.Sale) error {
	m.sales[sale.ID] = sale
	return nil
}
func (m *memSaleRepo) CreateItem(item *entity.SaleItem) error {
	m.items[item.SaleID] = append(m.items[item.SaleID], item)
	return nil
}
func (m *memSaleRepo) GetByID(id string) (*entity.Sale, error) { return m.sales[id], nil }
func (m *memSaleRepo) GetBySaleNumber(n string) (*entity.Sale, error) {
	for _, s := range m.sales {
		if s.SaleNumber == n {
			return s, nil
		}
	}
	return nil, nil
}
func (m *memSaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	return m.items[saleID], nil
}
func (m *memSaleRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range m.sales {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (m *memSaleRepo) ListByFiscalPeriod(companyID, period string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range m.sales {
		if s.CompanyID == companyID && s.FiscalPeriod == period && s.NCF != "" {
			out = append(out, s)
		}
	}
	return out, nil
}
func (m *memSaleRepo) NextSaleNumber(string) (string, error) {
	m.counter++
	n := m.counter
	digits := ""
	for v := n; v > 0; v /= 10 {
		digits = string(rune('0'+v%10)) + digits
	}
	for len(digits) < 4 {
		digits = "0" + digits
	}
	return "POS-" + digits, nil
}

type memNCFRepo struct {
	seqs []*entity.NCFSequence
}

func (m *memNCFRepo) Create(seq *entity.NCFSequence) error {
	m.seqs = append(m.seqs, seq)
	return nil
}
func (m *memNCFRepo) GetActiveForUpdate(companyID, ncfType string) (*entity.NCFSequence, error) {
	for _, s := range m.seqs {
		if s.CompanyID == companyID && s.NCFType == ncfType && s.Active {
			return s, nil
		}
	}
	return nil, nil
}
func (m *memNCFRepo) Advance(seq *entity.NCFSequence) error { return nil }
func (m *memNCFRepo) ListByCompany(companyID string) ([]*entity.NCFSequence, error) {
	var out []*entity.NCFSequence
	for _, s := range m.seqs {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, nil
}

type memCompanyRepo struct {
	companies map[string]*entity.Company
}

func (m *memCompanyRepo) Create(c *entity.Company) error {
	m.companies[c.ID] = c
	return nil
}
func (m *memCompanyRepo) GetByID(id string) (*entity.Company, error) { return m.companies[id], nil }
func (m *memCompanyRepo) GetByRNC(rnc string) (*entity.Company, error) {
	for _, c := range m.companies {
		if c.RNC == rnc {
			return c, nil
		}
	}
	return nil, nil
}
func (m *memCompanyRepo) Update(c *entity.Company) error { m.companies[c.ID] = c; return nil }
func (m *memCompanyRepo) List(int, int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range m.companies {
		out = append(out, c)
	}
	return out, nil
}

type memCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (m *memCustomerRepo) Create(c *entity.Customer) error {
	m.customers[c.ID] = c
	return nil
}
func (m *memCustomerRepo) GetByID(id string) (*entity.Customer, error) { return m.customers[id], nil }
func (m *memCustomerRepo) GetByCompanyAndRNC(companyID, rnc string) (*entity.Customer, error) {
	for _, c := range m.customers {
		if c.CompanyID == companyID && c.RNC == rnc {
			return c, nil
		}
	}
	return nil, nil
}
func (m *memCustomerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range m.customers {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

// testTxRunner ejecuta la función directamente: los fakes no necesitan transacción.
type testTxRunner struct {
	saleRepo *memSaleRepo
	ncfRepo  *memNCFRepo
}

func (r *testTxRunner) RunSale(_ context.Context, fn func(
	repository.SaleRepository,
	repository.NCFSequenceRepository,
) error) error {
	return fn(r.saleRepo, r.ncfRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Montaje de la app
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCompanyID  = "co-1"
	testCustomerID = "cu-1"
	verifyBase     = "https://fourone.com.do"
)

func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	nop := zerolog.Nop()

	saleRepo := newMemSaleRepo()
	ncfRepo := &memNCFRepo{}
	companyRepo := &memCompanyRepo{companies: map[string]*entity.Company{}}
	customerRepo := &memCustomerRepo{customers: map[string]*entity.Customer{}}

	now := time.Now()
	companyRepo.companies[testCompanyID] = &entity.Company{
		ID: testCompanyID, Name: "Colmado El Buen Precio", RNC: "131151116",
		Address: "Av. Duarte #45, Santo Domingo", Phone: "809-555-1234",
		Status: "active", CreatedAt: now, UpdatedAt: now,
	}
	customerRepo.customers[testCustomerID] = &entity.Customer{
		ID: testCustomerID, CompanyID: testCompanyID, Name: "Juan Pérez", RNC: "001123458",
		CreatedAt: now, UpdatedAt: now,
	}
	ncfRepo.seqs = append(ncfRepo.seqs, &entity.NCFSequence{
		ID: "seq-1", CompanyID: testCompanyID, NCFType: "02",
		Next: 1000, End: 1005, Active: true, CreatedAt: now, UpdatedAt: now,
	})

	txRunner := &testTxRunner{saleRepo: saleRepo, ncfRepo: ncfRepo}

	htmlRenderer, err := htmldoc.NewRenderer()
	require.NoError(t, err, "la plantilla HTML debe compilar")

	thermalUC := printing.NewThermalUseCase(
		saleRepo, companyRepo, customerRepo,
		escpos.NewRenderer(),
		printer.NewDispatcher(time.Second, nop),
		remote.NewPreviewClient("", time.Second, 1, nop),
		verifyBase, nop,
	)
	documentUC := printing.NewDocumentUseCase(
		saleRepo, companyRepo, customerRepo,
		htmlRenderer,
		pdf.NewMarotoGenerator(),
		remote.NewPDFClient("", time.Second, 1, nop),
		verifyBase, nop,
	)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC:  pos.NewCompanyUseCase(companyRepo),
		CustomerUC: pos.NewCustomerUseCase(customerRepo, companyRepo),
		CreateSale: pos.NewCreateSaleUseCase(txRunner, companyRepo, customerRepo),
		GetSale:    pos.NewGetSaleUseCase(saleRepo, companyRepo),
		NCFUC:      pos.NewNCFSequenceUseCase(ncfRepo, companyRepo),
		ThermalUC:  thermalUC,
		DocumentUC: documentUC,
		Report607:  fiscal.NewReport607UseCase(saleRepo, companyRepo, customerRepo),
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func getPath(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func cashSaleRequest() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		CompanyID:     testCompanyID,
		CustomerID:    testCustomerID,
		NCFType:       "02",
		Subtotal:      "1000.00",
		ITBIS:         "180.00",
		Total:         "1180.00",
		PaymentMethod: entity.PaymentCash,
		CashReceived:  "1200.00",
		CashierName:   "María",
		Items: []dto.CreateSaleItemRequest{
			{ProductCode: "P-001", ProductName: "Producto X", Quantity: "2", UnitPrice: "500.00"},
		},
	}
}

func createSale(t *testing.T, app *fiber.App) dto.SaleResponse {
	t.Helper()
	resp := postJSON(t, app, "/api/sales", cashSaleRequest())
	require.Equal(t, http.StatusCreated, resp.StatusCode, "la venta debe crearse")
	return decodeJSON[dto.SaleResponse](t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearVenta_AsignaNumeroYNCF(t *testing.T) {
	app := buildTestApp(t)

	sale := createSale(t, app)
	assert.Equal(t, "POS-0001", sale.SaleNumber)
	assert.Equal(t, "B0200001000", sale.NCF)
	require.NotNil(t, sale.CashChange)
	assert.Equal(t, "20", sale.CashChange.String())
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "Producto X", sale.Items[0].ProductName)
}

func TestCrearVenta_CuerpoInvalido(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/sales", strings.NewReader("{no-json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_BODY", body.Code)
}

func TestCrearVenta_TotalesInconsistentes(t *testing.T) {
	app := buildTestApp(t)

	in := cashSaleRequest()
	in.Total = "1500.00"
	resp := postJSON(t, app, "/api/sales", in)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "TOTALS_MISMATCH", body.Code)
}

func TestVerificarVenta(t *testing.T) {
	app := buildTestApp(t)
	sale := createSale(t, app)

	resp := getPath(t, app, "/v/"+sale.SaleNumber)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeJSON[dto.SaleVerificationResponse](t, resp)
	assert.Equal(t, sale.SaleNumber, out.SaleNumber)
	assert.Equal(t, "B0200001000", out.NCF)
	assert.Equal(t, "Colmado El Buen Precio", out.CompanyName)
	assert.Equal(t, "131151116", out.CompanyRNC)
}

func TestVerificarVenta_NoExiste(t *testing.T) {
	app := buildTestApp(t)

	resp := getPath(t, app, "/v/POS-9999")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestReciboTermico(t *testing.T) {
	app := buildTestApp(t)
	sale := createSale(t, app)

	resp := getPath(t, app, "/api/sales/"+sale.ID+"/receipt/thermal")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "recibo_POS-0001.escpos")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	payload := string(raw)
	assert.Contains(t, payload, "POS-0001")
	assert.Contains(t, payload, "1,180.00")
	assert.Contains(t, payload, "Cambio")
}

func TestDocumentoHTML(t *testing.T) {
	app := buildTestApp(t)
	sale := createSale(t, app)

	resp := getPath(t, app, "/api/sales/"+sale.ID+"/receipt/html")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	html := string(raw)
	assert.Contains(t, html, "RD$1,180.00")
	assert.Contains(t, html, "Colmado El Buen Precio")
	assert.NotContains(t, html, `class="watermark"`)
}

func TestDocumentoHTML_ConMarcaDeAgua(t *testing.T) {
	app := buildTestApp(t)
	sale := createSale(t, app)

	resp := getPath(t, app, "/api/sales/"+sale.ID+"/receipt/html?watermark=BORRADOR")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `<div class="watermark">BORRADOR</div>`)
}

func TestQRDeVerificacion(t *testing.T) {
	app := buildTestApp(t)
	sale := createSale(t, app)

	resp := getPath(t, app, "/api/sales/"+sale.ID+"/receipt/qr")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeJSON[dto.QRResponse](t, resp)
	assert.Equal(t, "POS-0001", out.SaleNumber)
	assert.Equal(t, verifyBase+"/v/POS-0001", out.VerifyURL)
	assert.True(t, strings.HasPrefix(out.QRDataURL, "data:image/png;base64,"))
}

func TestPDFRemoto_DegradaSinServicio(t *testing.T) {
	app := buildTestApp(t)
	sale := createSale(t, app)

	resp := getPath(t, app, "/api/sales/"+sale.ID+"/receipt/pdf/remote")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeJSON[dto.DocumentResponse](t, resp)
	assert.Equal(t, string(printing.RenderDegraded), out.Status)
	assert.True(t, strings.HasPrefix(out.Payload, "data:text/html;base64,"))
	assert.Empty(t, out.URL)
}

func TestReporte607_TXT(t *testing.T) {
	app := buildTestApp(t)
	createSale(t, app)

	period := money.FiscalPeriod(time.Now())
	resp := getPath(t, app, "/api/fiscal/607?company_id="+testCompanyID+"&period="+period+"&format=txt")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	txt := string(raw)
	assert.Contains(t, txt, "607|131151116|"+period+"|1")
	assert.Contains(t, txt, "B0200001000")
	assert.Contains(t, txt, "001123458")
}

func TestReporte607_PeriodoInvalido(t *testing.T) {
	app := buildTestApp(t)

	resp := getPath(t, app, "/api/fiscal/607?company_id="+testCompanyID+"&period=2026")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSecuenciasNCF(t *testing.T) {
	app := buildTestApp(t)

	resp := postJSON(t, app, "/api/ncf-sequences", dto.CreateNCFSequenceRequest{
		CompanyID: testCompanyID, NCFType: "01", Start: 1, End: 500,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeJSON[dto.NCFSequenceResponse](t, resp)
	assert.Equal(t, "Factura de Crédito Fiscal", created.TypeName)
	assert.EqualValues(t, 500, created.Remaining)

	listResp := getPath(t, app, "/api/ncf-sequences?company_id="+testCompanyID)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	list := decodeJSON[[]dto.NCFSequenceResponse](t, listResp)
	assert.Len(t, list, 2)
}

func TestEmpresas_RNCInvalido(t *testing.T) {
	app := buildTestApp(t)

	resp := postJSON(t, app, "/api/companies", dto.CreateCompanyRequest{
		Name: "Ferretería Central", RNC: "131151117",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
}

func TestEmpresas_CrearYDuplicado(t *testing.T) {
	app := buildTestApp(t)

	in := dto.CreateCompanyRequest{Name: "Ferretería Central", RNC: "101023333"}
	resp := postJSON(t, app, "/api/companies", in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeJSON[dto.CompanyResponse](t, resp)
	assert.Equal(t, "active", created.Status)

	dup := postJSON(t, app, "/api/companies", in)
	assert.Equal(t, http.StatusConflict, dup.StatusCode)
}

func TestClientes_CrearYListar(t *testing.T) {
	app := buildTestApp(t)

	resp := postJSON(t, app, "/api/customers?company_id="+testCompanyID, dto.CreateCustomerRequest{
		Name: "Ana Gómez", RNC: "111111112",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	listResp := getPath(t, app, "/api/customers?company_id="+testCompanyID)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	list := decodeJSON[[]dto.CustomerResponse](t, listResp)
	assert.Len(t, list, 2)
}
