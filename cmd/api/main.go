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

	appanalytics "github.com/jhoicas/inventario-local/internal/application/analytics"
	"github.com/jhoicas/inventario-local/internal/application/auth"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/application/reports"
	"github.com/jhoicas/inventario-local/internal/application/usecase"
	"github.com/jhoicas/inventario-local/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/inventario-local/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/inventario-local/internal/interfaces/http"
	"github.com/jhoicas/inventario-local/pkg/config"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Path).
		Msg("iniciando aplicación")

	store, err := localstore.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("abrir documento de inventario")
	}

	productRepo := localstore.NewProductRepository(store)
	categoryRepo := localstore.NewCategoryRepository(store)
	movementRepo := localstore.NewMovementRepository(store)
	auditRepo := localstore.NewAuditRepository(store)
	userRepo := localstore.NewUserRepository(store)
	documentRepo := localstore.NewDocumentRepository(store)
	txRunner := localstore.NewTxRunner(store)

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, movementRepo, auditRepo)
	movementQueriesUC := inventory.NewMovementQueryUseCase(movementRepo, productRepo, auditRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, txRunner)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, txRunner)
	exportUC := usecase.NewExportUseCase(documentRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(productRepo, categoryRepo, movementRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reports.NewPDFUseCase(productRepo, categoryRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err := authUC.EnsureDefaultUsers(); err != nil {
		log.Fatal().Err(err).Msg("sembrar usuarios por defecto")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Local API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:       categoryUC,
		ProductUC:        productUC,
		RegisterMovement: registerMovementUC,
		MovementQueries:  movementQueriesUC,
		ExportUC:         exportUC,
		DashboardUC:      dashboardUC,
		ReportUC:         reportUC,
		AuthUC:           authUC,
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
