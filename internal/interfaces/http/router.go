package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Mantenimiento-api/internal/application/auth"
	"github.com/jhoicas/Mantenimiento-api/internal/application/intervention"
	"github.com/jhoicas/Mantenimiento-api/internal/application/warehouse"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ItemUC         *warehouse.ItemUseCase
	SerialUC       *warehouse.SerialNumberUseCase
	MovementUC     *warehouse.MovementUseCase
	TechnicianUC   *warehouse.TechnicianStockUseCase
	InterventionUC *intervention.PartsUseCase
	JWTSecret      string
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
	catalogWriter := RequireRole(entity.RoleAdmin, entity.RoleSupervisor)

	// Catálogo de repuestos (mutación solo ADMIN/SUPERVISOR)
	items := protected.Group("/warehouse/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Post("/", catalogWriter, itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", catalogWriter, itemHandler.Update)
	items.Delete("/:id", catalogWriter, itemHandler.Delete)

	// Números de serie por ítem
	serialHandler := NewSerialNumberHandler(deps.SerialUC)
	items.Get("/:id/serial-numbers", serialHandler.List)
	items.Post("/:id/serial-numbers", catalogWriter, serialHandler.Add)

	// Movimientos de stock
	movementHandler := NewMovementHandler(deps.MovementUC)
	protected.Post("/warehouse/movements", movementHandler.Register)
	items.Get("/:id/movements", movementHandler.ListByItem)

	// Stock en poder de técnicos
	technicians := protected.Group("/warehouse/technicians")
	technicianHandler := NewTechnicianHandler(deps.TechnicianUC)
	technicians.Get("/", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), technicianHandler.List)
	technicians.Get("/:id", technicianHandler.GetDetail)

	// Consumo de repuestos en intervenciones
	interventions := protected.Group("/interventions")
	interventionHandler := NewInterventionHandler(deps.InterventionUC)
	interventions.Post("/:id/parts", interventionHandler.AddPart)
	interventions.Get("/:id/parts", interventionHandler.ListParts)
}
