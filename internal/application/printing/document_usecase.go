package printing

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fourone/fourone-api/internal/application/dto"
	"github.com/fourone/fourone-api/internal/domain/entity"
	"github.com/fourone/fourone-api/internal/domain/repository"
	"github.com/fourone/fourone-api/internal/infrastructure/render/qr"
)

// DocumentUseCase genera el documento imprimible de una venta: HTML
// autocontenido, PDF local (Maroto) o PDF alojado vía servicio remoto.
type DocumentUseCase struct {
	loader        snapshotLoader
	htmlRenderer  HTMLRenderer
	pdfGenerator  PDFGenerator
	remotePDF     RemotePDFService
	verifyBaseURL string
	log           zerolog.Logger
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(
	saleRepo repository.SaleRepository,
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
	htmlRenderer HTMLRenderer,
	pdfGenerator PDFGenerator,
	remotePDF RemotePDFService,
	verifyBaseURL string,
	log zerolog.Logger,
) *DocumentUseCase {
	return &DocumentUseCase{
		loader:        snapshotLoader{saleRepo: saleRepo, companyRepo: companyRepo, customerRepo: customerRepo},
		htmlRenderer:  htmlRenderer,
		pdfGenerator:  pdfGenerator,
		remotePDF:     remotePDF,
		verifyBaseURL: verifyBaseURL,
		log:           log.With().Str("component", "document_usecase").Logger(),
	}
}

// RenderHTML genera el documento HTML autocontenido.
func (uc *DocumentUseCase) RenderHTML(ctx context.Context, saleID string, opts dto.DocumentOptionsRequest) (string, error) {
	input, err := uc.buildInput(saleID, opts)
	if err != nil {
		return "", err
	}
	html, err := uc.htmlRenderer.Render(ctx, input)
	if err != nil {
		return "", fmt.Errorf("printing: generar HTML: %w", err)
	}
	return html, nil
}

// GeneratePDF genera el PDF localmente con Maroto.
func (uc *DocumentUseCase) GeneratePDF(ctx context.Context, saleID string, opts dto.DocumentOptionsRequest) ([]byte, string, error) {
	input, err := uc.buildInput(saleID, opts)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.pdfGenerator.Generate(ctx, input)
	if err != nil {
		return nil, "", fmt.Errorf("printing: generar PDF: %w", err)
	}
	filename := fmt.Sprintf("comprobante_%s.pdf", input.Sale.SaleNumber)
	return pdfBytes, filename, nil
}

// GenerateRemotePDF envía el HTML al servicio remoto. Si el remoto no está
// disponible, la respuesta degrada al HTML como data-URL en lugar de fallar.
func (uc *DocumentUseCase) GenerateRemotePDF(ctx context.Context, saleID string, opts dto.DocumentOptionsRequest) (*dto.DocumentResponse, error) {
	input, err := uc.buildInput(saleID, opts)
	if err != nil {
		return nil, err
	}
	html, err := uc.htmlRenderer.Render(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("printing: generar HTML: %w", err)
	}

	result, err := uc.remotePDF.GeneratePDF(ctx, html, input.Options)
	if err != nil {
		return nil, err
	}
	if result.Status == RenderDegraded {
		uc.log.Warn().Str("sale", input.Sale.SaleNumber).Msg("PDF remoto degradado a HTML")
	}
	return &dto.DocumentResponse{
		SaleNumber: input.Sale.SaleNumber,
		Status:     string(result.Status),
		URL:        result.URL,
		Payload:    result.Payload,
	}, nil
}

// VerificationQR resuelve la URL de verificación de la venta y la renderiza
// como QR PNG embebible (data-URL).
func (uc *DocumentUseCase) VerificationQR(_ context.Context, saleID string) (*dto.QRResponse, error) {
	sale, _, _, _, err := uc.loader.load(saleID)
	if err != nil {
		return nil, err
	}
	verifyURL := qr.VerificationURL(uc.verifyBaseURL, sale.SaleNumber)
	dataURL, err := qr.DataURL(verifyURL, 0)
	if err != nil {
		return nil, fmt.Errorf("printing: generar QR: %w", err)
	}
	return &dto.QRResponse{
		SaleNumber: sale.SaleNumber,
		VerifyURL:  verifyURL,
		QRDataURL:  dataURL,
	}, nil
}

func (uc *DocumentUseCase) buildInput(saleID string, opts dto.DocumentOptionsRequest) (DocumentInput, error) {
	sale, items, company, customer, err := uc.loader.load(saleID)
	if err != nil {
		return DocumentInput{}, err
	}
	options := entity.DocumentOptions{
		PaperFormat: opts.PaperFormat,
		Orientation: opts.Orientation,
		ShowLogo:    opts.ShowLogo,
		ShowNCF:     opts.ShowNCF,
		ShowQR:      opts.ShowQR,
		Watermark:   opts.Watermark,
	}
	options.Normalize()
	input := DocumentInput{
		Sale:     sale,
		Items:    items,
		Company:  company,
		Customer: customer,
		Options:  options,
	}
	if opts.ShowQR {
		input.VerifyURL = qr.VerificationURL(uc.verifyBaseURL, sale.SaleNumber)
	}
	return input, nil
}
