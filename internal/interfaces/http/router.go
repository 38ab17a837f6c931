package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Autopartes-api/internal/application/analytics"
	"github.com/jhoicas/Autopartes-api/internal/application/inventory"
	"github.com/jhoicas/Autopartes-api/internal/application/reports"
	"github.com/jhoicas/Autopartes-api/internal/application/usecase"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	CategoryUC   *usecase.CategoryUseCase
	UpdateStock  *inventory.UpdateStockUseCase
	MovementRepo repository.MovementRepository
	ReportsUC    *reports.UseCase
	DashboardUC  *appanalytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products (catálogo)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:code", productHandler.GetByCode)
	products.Put("/:code", productHandler.Update)
	products.Delete("/:code", productHandler.Delete)

	// Inventory (stock + libro de movimientos)
	inventoryHandler := NewInventoryHandler(deps.UpdateStock, deps.MovementRepo)
	products.Put("/:code/stock", inventoryHandler.UpdateStock)
	api.Get("/movements", inventoryHandler.ListMovements)

	// Categories
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	api.Get("/categories", categoryHandler.List)

	// Reports
	rep := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	rep.Get("/below-minimum", reportHandler.BelowMinimum)
	rep.Get("/excess-stock", reportHandler.ExcessStock)
	rep.Get("/valuation", reportHandler.Valuation)
	rep.Get("/valuation/pdf", reportHandler.ValuationPDF)
	rep.Get("/turnover", reportHandler.Turnover)
	rep.Get("/losses", reportHandler.Losses)
	rep.Get("/reconciliation", reportHandler.Reconciliation)
	rep.Get("/category-value", reportHandler.CategoryValue)
	rep.Get("/historical-stock/:code", reportHandler.HistoricalStock)
	rep.Get("/abc", reportHandler.ABC)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)
}
