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

// ThermalUseCase genera el recibo térmico de una venta y opcionalmente lo
// despacha a una impresora o lo envía al servicio de vista previa.
type ThermalUseCase struct {
	loader        snapshotLoader
	renderer      ThermalRenderer
	dispatcher    Dispatcher
	preview       ThermalPreviewService
	verifyBaseURL string
	log           zerolog.Logger
}

// NewThermalUseCase construye el caso de uso.
func NewThermalUseCase(
	saleRepo repository.SaleRepository,
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
	renderer ThermalRenderer,
	dispatcher Dispatcher,
	preview ThermalPreviewService,
	verifyBaseURL string,
	log zerolog.Logger,
) *ThermalUseCase {
	return &ThermalUseCase{
		loader:        snapshotLoader{saleRepo: saleRepo, companyRepo: companyRepo, customerRepo: customerRepo},
		renderer:      renderer,
		dispatcher:    dispatcher,
		preview:       preview,
		verifyBaseURL: verifyBaseURL,
		log:           log.With().Str("component", "thermal_usecase").Logger(),
	}
}

// RenderReceipt genera el blob ESC/POS del recibo.
func (uc *ThermalUseCase) RenderReceipt(ctx context.Context, saleID string, opts dto.ReceiptOptionsRequest) ([]byte, string, error) {
	input, err := uc.buildInput(saleID, opts)
	if err != nil {
		return nil, "", err
	}
	payload, err := uc.renderer.Render(ctx, input)
	if err != nil {
		return nil, "", fmt.Errorf("printing: generar recibo: %w", err)
	}
	filename := fmt.Sprintf("recibo_%s.escpos", input.Sale.SaleNumber)
	return payload, filename, nil
}

// PrintReceipt genera el recibo y lo despacha al destino indicado.
// El despacho es fire-and-forget: cualquier fallo vuelve tipado al llamador.
func (uc *ThermalUseCase) PrintReceipt(ctx context.Context, saleID string, in dto.PrintRequest) (*dto.PrintResponse, error) {
	input, err := uc.buildInput(saleID, in.Options)
	if err != nil {
		return nil, err
	}
	payload, err := uc.renderer.Render(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("printing: generar recibo: %w", err)
	}

	dest := PrintDestination{
		Kind:    in.Destination.Kind,
		Address: in.Destination.Address,
		Port:    in.Destination.Port,
	}
	if err := uc.dispatcher.Dispatch(ctx, dest, payload); err != nil {
		uc.log.Warn().Err(err).Str("sale", input.Sale.SaleNumber).Msg("despacho de impresión fallido")
		return nil, err
	}
	uc.log.Info().Str("sale", input.Sale.SaleNumber).Int("bytes", len(payload)).Msg("recibo despachado")
	return &dto.PrintResponse{
		SaleNumber: input.Sale.SaleNumber,
		Bytes:      len(payload),
		Dispatched: true,
	}, nil
}

// PreviewReceipt genera el recibo y lo envía al servicio remoto de vista previa.
func (uc *ThermalUseCase) PreviewReceipt(ctx context.Context, saleID string, opts dto.ReceiptOptionsRequest) (*dto.PrintResponse, error) {
	input, err := uc.buildInput(saleID, opts)
	if err != nil {
		return nil, err
	}
	payload, err := uc.renderer.Render(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("printing: generar recibo: %w", err)
	}
	result, err := uc.preview.Preview(ctx, payload)
	if err != nil {
		return nil, err
	}
	return &dto.PrintResponse{
		SaleNumber: input.Sale.SaleNumber,
		Bytes:      len(payload),
		PreviewURL: result.URL,
	}, nil
}

func (uc *ThermalUseCase) buildInput(saleID string, opts dto.ReceiptOptionsRequest) (ReceiptInput, error) {
	sale, items, company, customer, err := uc.loader.load(saleID)
	if err != nil {
		return ReceiptInput{}, err
	}
	input := ReceiptInput{
		Sale:     sale,
		Items:    items,
		Company:  company,
		Customer: customer,
		Options: entity.ReceiptOptions{
			PaperWidth: opts.PaperWidth,
			ShowLogo:   opts.ShowLogo,
			ShowNCF:    opts.ShowNCF,
			ShowQR:     opts.ShowQR,
			PaperCut:   opts.PaperCut,
			CashDrawer: opts.CashDrawer,
		},
	}
	if opts.ShowQR {
		input.VerifyURL = qr.VerificationURL(uc.verifyBaseURL, sale.SaleNumber)
	}
	return input, nil
}
