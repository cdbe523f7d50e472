package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/analytics"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/auth"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/export"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/inventory"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/usecase"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	DashboardUC      *analytics.DashboardUseCase
	ExportUC         *export.ExportUseCase
	JWTSecret        string
}

// Router registra las rutas de la API. Las escrituras exigen rol por
// middleware, y además cada caso de uso vuelve a validar el rol del actor.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/logout", authHandler.Logout)

	// Usuarios (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.AuthUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)

	// Productos: lectura para cualquier usuario autenticado, escritura solo admin
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:code", productHandler.GetByCode)
	products.Post("/", RequireRole(entity.RoleAdmin), productHandler.Create)
	products.Put("/:code", RequireRole(entity.RoleAdmin), productHandler.Update)

	// Movimientos: registrar exige admin o gerente; el historial es de lectura
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement)
	invGroup.Post("/movements", RequireRole(entity.RoleAdmin, entity.RoleGerente), inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)

	// Dashboard (lectura)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)

	// Exportaciones (lectura)
	exports := protected.Group("/export")
	exportHandler := NewExportHandler(deps.ExportUC)
	exports.Get("/products.xlsx", exportHandler.ProductsXLSX)
	exports.Get("/report.pdf", exportHandler.StockReportPDF)
}
