package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/facturas-api/internal/application/analytics"
	"github.com/invorya/facturas-api/internal/application/auth"
	"github.com/invorya/facturas-api/internal/application/billing"
	"github.com/invorya/facturas-api/internal/infrastructure/viewcache"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceMutations *billing.InvoiceUseCase
	BillingQueries   *billing.QueryUseCase
	InvoicePDF       *billing.PDFUseCase
	DashboardUC      *analytics.DashboardUseCase
	AuthUC           *auth.AuthUseCase
	ViewCache        *viewcache.Cache
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceMutations, deps.BillingQueries, deps.InvoicePDF)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	// El listado se sirve desde la caché de vistas; las mutaciones lo invalidan.
	invoices.Get("/", CacheView(deps.ViewCache, billing.InvoicesPath), invoiceHandler.List)
	invoices.Get("/latest", dashboardHandler.LatestInvoices)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Customers (protegido, solo lectura desde este dashboard)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.BillingQueries)
	customers.Get("/", customerHandler.List)
	customers.Get("/table", customerHandler.Table)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboard.Get("/cards", dashboardHandler.Cards)
	dashboard.Get("/revenue", dashboardHandler.Revenue)
}
