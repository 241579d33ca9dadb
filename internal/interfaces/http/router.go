package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pcb-production-api/internal/application/auth"
	"github.com/jhoicas/pcb-production-api/internal/application/catalog"
	"github.com/jhoicas/pcb-production-api/internal/application/production"
	"github.com/jhoicas/pcb-production-api/internal/application/shortage"
	"github.com/jhoicas/pcb-production-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProduceUC *production.ProduceUseCase
	HistoryUC *production.HistoryUseCase
	AnalyzeUC *shortage.AnalyzeUseCase
	CatalogUC *catalog.CatalogUseCase
	JWTSecret string
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

	// Production (protegido; registrar corridas requiere admin u operador)
	prodGroup := protected.Group("/production")
	productionHandler := NewProductionHandler(deps.ProduceUC, deps.HistoryUC)
	prodGroup.Post("/", RequireRole(entity.RoleAdmin, entity.RoleOperador), productionHandler.Produce)
	prodGroup.Get("/", productionHandler.ListProductions)
	prodGroup.Get("/consumption", productionHandler.ListConsumption)

	// Analytics (protegido, solo lectura)
	analyticsGroup := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyzeUC)
	analyticsGroup.Get("/shortage", analyticsHandler.Shortage)

	// Catalog (protegido; las escrituras requieren rol admin)
	catalogGroup := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalogGroup.Put("/components", RequireRole(entity.RoleAdmin), catalogHandler.UpsertComponent)
	catalogGroup.Put("/pcbs", RequireRole(entity.RoleAdmin), catalogHandler.UpsertPCB)
	catalogGroup.Put("/bom", RequireRole(entity.RoleAdmin), catalogHandler.UpsertBOMEntry)
	catalogGroup.Post("/components/:id/archive", RequireRole(entity.RoleAdmin), catalogHandler.ArchiveComponent)
	catalogGroup.Get("/components", catalogHandler.ListComponents)
	catalogGroup.Get("/pcbs", catalogHandler.ListPCBs)
	catalogGroup.Get("/bom", catalogHandler.ListBOM)
}
