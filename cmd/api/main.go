package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/fourone/fourone-api/internal/application/fiscal"
	"github.com/fourone/fourone-api/internal/application/pos"
	"github.com/fourone/fourone-api/internal/application/printing"
	"github.com/fourone/fourone-api/internal/infrastructure/postgres"
	infraprinter "github.com/fourone/fourone-api/internal/infrastructure/printer"
	"github.com/fourone/fourone-api/internal/infrastructure/remote"
	"github.com/fourone/fourone-api/internal/infrastructure/render/escpos"
	"github.com/fourone/fourone-api/internal/infrastructure/render/htmldoc"
	infrapdf "github.com/fourone/fourone-api/internal/infrastructure/render/pdf"
	httpRouter "github.com/fourone/fourone-api/internal/interfaces/http"
	"github.com/fourone/fourone-api/pkg/config"
	"github.com/fourone/fourone-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	ncfRepo := postgres.NewNCFSequenceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := pos.NewCompanyUseCase(companyRepo)
	customerUC := pos.NewCustomerUseCase(customerRepo, companyRepo)
	createSaleUC := pos.NewCreateSaleUseCase(txRunner, companyRepo, customerRepo)
	getSaleUC := pos.NewGetSaleUseCase(saleRepo, companyRepo)
	ncfUC := pos.NewNCFSequenceUseCase(ncfRepo, companyRepo)
	report607UC := fiscal.NewReport607UseCase(saleRepo, companyRepo, customerRepo)

	// Pipeline de documentos: render térmico/HTML/PDF local + servicios remotos
	// opcionales (sin URL configurada el PDF degrada a HTML y el preview se apaga).
	remoteTimeout := time.Duration(cfg.Render.RequestTimeoutMS) * time.Millisecond
	zl := log.Zerolog()
	pdfService := remote.NewPDFClient(cfg.Render.PDFServiceURL, remoteTimeout, cfg.Render.MaxAttempts, zl)
	previewService := remote.NewPreviewClient(cfg.Render.PreviewServiceURL, remoteTimeout, cfg.Render.MaxAttempts, zl)
	dispatcher := infraprinter.NewDispatcher(5*time.Second, zl)

	htmlRenderer, err := htmldoc.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("plantilla de documentos")
	}

	thermalUC := printing.NewThermalUseCase(
		saleRepo, companyRepo, customerRepo,
		escpos.NewRenderer(), dispatcher, previewService,
		cfg.Render.VerificationBaseURL, zl,
	)
	documentUC := printing.NewDocumentUseCase(
		saleRepo, companyRepo, customerRepo,
		htmlRenderer, infrapdf.NewMarotoGenerator(), pdfService,
		cfg.Render.VerificationBaseURL, zl,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Four One API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:  companyUC,
		CustomerUC: customerUC,
		CreateSale: createSaleUC,
		GetSale:    getSaleUC,
		NCFUC:      ncfUC,
		ThermalUC:  thermalUC,
		DocumentUC: documentUC,
		Report607:  report607UC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
