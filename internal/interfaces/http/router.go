package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inmuebles-api/internal/application/auth"
	"github.com/jhoicas/inmuebles-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	PropertyUC    *usecase.PropertyUseCase
	TenantUC      *usecase.TenantUseCase
	RentUC        *usecase.RentUseCase
	MaintenanceUC *usecase.MaintenanceUseCase
	DashboardUC   *usecase.DashboardUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Las lecturas solo requieren
// autenticación; las mutaciones pasan además por RequireManage.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	manage := RequireManage()

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Properties (protegido)
	properties := protected.Group("/properties")
	propertyHandler := NewPropertyHandler(deps.PropertyUC)
	properties.Get("/", propertyHandler.List)
	properties.Get("/:id", propertyHandler.GetByID)
	properties.Get("/:id/detail", propertyHandler.Detail)
	properties.Post("/", manage, propertyHandler.Create)
	properties.Put("/:id", manage, propertyHandler.Update)
	properties.Delete("/:id", manage, propertyHandler.Delete)

	// Tenants (protegido)
	tenants := protected.Group("/tenants")
	tenantHandler := NewTenantHandler(deps.TenantUC)
	tenants.Get("/", tenantHandler.List)
	tenants.Get("/:id", tenantHandler.GetByID)
	tenants.Post("/", manage, tenantHandler.Create)
	tenants.Post("/:id/schedule", manage, tenantHandler.GenerateSchedule)
	tenants.Put("/:id", manage, tenantHandler.Update)
	tenants.Delete("/:id", manage, tenantHandler.Delete)

	// Rent payments (protegido)
	rents := protected.Group("/rent-payments")
	rentHandler := NewRentHandler(deps.RentUC)
	rents.Get("/", rentHandler.List)
	rents.Get("/:id", rentHandler.GetByID)
	rents.Post("/", manage, rentHandler.Create)
	rents.Put("/:id", manage, rentHandler.Update)
	rents.Delete("/:id", manage, rentHandler.Delete)

	// Maintenance requests (protegido)
	maintenance := protected.Group("/maintenance-requests")
	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceUC)
	maintenance.Get("/", maintenanceHandler.List)
	maintenance.Get("/:id", maintenanceHandler.GetByID)
	maintenance.Post("/", manage, maintenanceHandler.Create)
	maintenance.Put("/:id", manage, maintenanceHandler.Update)
	maintenance.Delete("/:id", manage, maintenanceHandler.Delete)
}
