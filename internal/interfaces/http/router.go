package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/analytics"
	"github.com/jhoicas/inventario-local/internal/application/auth"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/application/reports"
	"github.com/jhoicas/inventario-local/internal/application/usecase"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC       *usecase.CategoryUseCase
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementQueries  *inventory.MovementQueryUseCase
	ExportUC         *usecase.ExportUseCase
	DashboardUC      *analytics.DashboardUseCase
	ReportUC         *reports.PDFUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Categories (protegido; borrar solo admin)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", RequireRole(entity.RoleAdmin), categoryHandler.Delete)

	// Products (protegido; borrar solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/out-of-stock", productHandler.OutOfStock)
	products.Get("/stats", productHandler.Stats)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Post("/:id/activate", productHandler.Activate)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Inventory movements (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.MovementQueries)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Post("/adjustments", inventoryHandler.RegisterAdjustment)
	invGroup.Get("/products/:id/history", inventoryHandler.History)
	invGroup.Get("/products/:id/consistency", inventoryHandler.VerifyConsistency)
	invGroup.Get("/stats", inventoryHandler.Stats)
	invGroup.Get("/audit-log", inventoryHandler.AuditLog)

	// Export / Import (protegido; restaurar solo admin)
	exportHandler := NewExportHandler(deps.ExportUC)
	protected.Get("/export", exportHandler.Export)
	protected.Post("/import", RequireRole(entity.RoleAdmin), exportHandler.Import)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetDashboard)

	// Reports (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/inventory", reportHandler.InventoryReport)
}
