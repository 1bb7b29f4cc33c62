package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fourone/fourone-api/internal/application/fiscal"
	"github.com/fourone/fourone-api/internal/application/pos"
	"github.com/fourone/fourone-api/internal/application/printing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC  *pos.CompanyUseCase
	CustomerUC *pos.CustomerUseCase
	CreateSale *pos.CreateSaleUseCase
	GetSale    *pos.GetSaleUseCase
	NCFUC      *pos.NCFSequenceUseCase
	ThermalUC  *printing.ThermalUseCase
	DocumentUC *printing.DocumentUseCase
	Report607  *fiscal.Report607UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Verificación pública de comprobantes (destino del QR impreso)
	verifyHandler := NewVerifyHandler(deps.GetSale)
	app.Get("/v/:saleNumber", verifyHandler.Verify)

	api := app.Group("/api")

	// Companies
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	// Sales (punto de venta)
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.GetSale)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)

	// Comprobantes de la venta (térmico, HTML, PDF)
	printHandler := NewPrintHandler(deps.ThermalUC, deps.DocumentUC)
	sales.Get("/:id/receipt/thermal", printHandler.Thermal)
	sales.Post("/:id/receipt/print", printHandler.Print)
	sales.Get("/:id/receipt/preview", printHandler.Preview)
	sales.Get("/:id/receipt/html", printHandler.HTML)
	sales.Get("/:id/receipt/pdf", printHandler.PDF)
	sales.Get("/:id/receipt/pdf/remote", printHandler.RemotePDF)
	sales.Get("/:id/receipt/qr", printHandler.QR)

	// Secuencias NCF
	ncfGroup := api.Group("/ncf-sequences")
	ncfHandler := NewNCFHandler(deps.NCFUC)
	ncfGroup.Post("/", ncfHandler.Create)
	ncfGroup.Get("/", ncfHandler.List)

	// Reportes fiscales DGII
	fiscalGroup := api.Group("/fiscal")
	fiscalHandler := NewFiscalHandler(deps.Report607)
	fiscalGroup.Get("/607", fiscalHandler.Report607)
}
