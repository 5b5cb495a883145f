package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avelio/profitab-api/internal/application/auth"
	"github.com/avelio/profitab-api/internal/application/usecase"
	"github.com/avelio/profitab-api/internal/domain/entity"
)

// RouterDeps Abhängigkeiten des Routers.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ReportUC  *usecase.ReportUseCase
	ImportUC  *usecase.ImportUseCase
	CostsUC   *usecase.CostsUseCase
	JWTSecret string
}

// Router registriert die API-Routen. Lesen dürfen alle angemeldeten Rollen,
// schreiben (Kostentabellen, Import, Registrierung) nur Admins.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: Login öffentlich, Registrierung nur durch Admins.
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register",
		AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin),
		authHandler.Register)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Tagesauswertung (lesend).
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/overview", reportHandler.Overview)
	reports.Get("/overview/pdf", reportHandler.OverviewPDF)

	// Bestellimport (schreibend).
	importHandler := NewImportHandler(deps.ImportUC)
	protected.Post("/import", adminOnly, importHandler.Run)

	// Kostentabellen: GET für alle, PUT nur Admins.
	costs := protected.Group("/costs")
	costsHandler := NewCostsHandler(deps.CostsUC)
	costs.Get("/material", costsHandler.GetMaterial)
	costs.Put("/material", adminOnly, costsHandler.PutMaterial)
	costs.Get("/fulfillment", costsHandler.GetFulfillment)
	costs.Put("/fulfillment", adminOnly, costsHandler.PutFulfillment)
	costs.Get("/transaction", costsHandler.GetTransaction)
	costs.Put("/transaction", adminOnly, costsHandler.PutTransaction)
	costs.Get("/marketing", costsHandler.GetMarketing)
	costs.Put("/marketing", adminOnly, costsHandler.PutMarketing)
}
