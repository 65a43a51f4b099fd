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

	"github.com/invorya/facturas-api/internal/application/analytics"
	"github.com/invorya/facturas-api/internal/application/auth"
	"github.com/invorya/facturas-api/internal/application/billing"
	infrapdf "github.com/invorya/facturas-api/internal/infrastructure/pdf"
	"github.com/invorya/facturas-api/internal/infrastructure/postgres"
	"github.com/invorya/facturas-api/internal/infrastructure/viewcache"
	httpRouter "github.com/invorya/facturas-api/internal/interfaces/http"
	"github.com/invorya/facturas-api/pkg/config"
	"github.com/invorya/facturas-api/pkg/logger"
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

	// El pool se abre una vez aquí y se cierra en shutdown; todos los
	// repositorios lo reciben inyectado.
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	invoiceRepo := postgres.NewInvoiceRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	revenueRepo := postgres.NewRevenueRepository(pool)

	views := viewcache.New()
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, views, log.Component("billing"))
	queryUC := billing.NewQueryUseCase(invoiceRepo, customerRepo)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	pdfUC := billing.NewPDFUseCase(invoiceRepo, customerRepo, pdfGenerator)
	dashboardUC := analytics.NewDashboardUseCase(invoiceRepo, customerRepo, revenueRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Facturas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceMutations: invoiceUC,
		BillingQueries:   queryUC,
		InvoicePDF:       pdfUC,
		DashboardUC:      dashboardUC,
		AuthUC:           authUC,
		ViewCache:        views,
		JWTSecret:        cfg.JWT.Secret,
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
