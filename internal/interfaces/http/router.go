package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/hemis-api/internal/application/auth"
	"github.com/jhoicas/hemis-api/internal/application/usecase"
	"github.com/jhoicas/hemis-api/internal/domain/alerting"
	"github.com/jhoicas/hemis-api/internal/domain/policy"
	"github.com/jhoicas/hemis-api/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	SupplierUC    *usecase.SupplierUseCase
	MedicineUC    *usecase.MedicineUseCase
	EquipmentUC   *usecase.EquipmentUseCase
	OrderUC       *usecase.OrderUseCase
	MaintenanceUC *usecase.MaintenanceUseCase
	UserUC        *usecase.UserUseCase
	DashboardUC   *usecase.DashboardUseCase
	AlertConfig   alerting.Config
	Metrics       *metrics.Metrics
	JWTSecret     string
}

// Router registra las rutas de la API. La autorización por rol se toma de
// policy.RolesFor para que el borde HTTP y el dominio no se desincronicen.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Use(MetricsMiddleware(deps.Metrics))
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	require := func(action policy.Action) fiber.Handler {
		return RequireRole(policy.RolesFor(action)...)
	}

	// Suppliers (admin, pharmacist; delete solo admin)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", require(policy.SuppliersWrite), supplierHandler.Create)
	suppliers.Get("/", require(policy.SuppliersRead), supplierHandler.List)
	suppliers.Get("/:id", require(policy.SuppliersRead), supplierHandler.GetByID)
	suppliers.Put("/:id", require(policy.SuppliersWrite), supplierHandler.Update)
	suppliers.Delete("/:id", require(policy.SuppliersDelete), supplierHandler.Delete)

	// Medicines (admin, pharmacist; delete solo admin)
	medicines := protected.Group("/medicines")
	medicineHandler := NewMedicineHandler(deps.MedicineUC, deps.AlertConfig)
	medicines.Post("/", require(policy.MedicinesWrite), medicineHandler.Create)
	medicines.Get("/", require(policy.MedicinesRead), medicineHandler.List)
	// Las rutas literales van antes de /:id para que Fiber no las capture.
	medicines.Get("/low-stock", require(policy.MedicinesRead), medicineHandler.LowStock)
	medicines.Get("/expiring", require(policy.MedicinesRead), medicineHandler.Expiring)
	medicines.Get("/:id", require(policy.MedicinesRead), medicineHandler.GetByID)
	medicines.Put("/:id", require(policy.MedicinesWrite), medicineHandler.Update)
	medicines.Delete("/:id", require(policy.MedicinesDelete), medicineHandler.Delete)

	// Equipment (admin, technician; delete solo admin)
	equipment := protected.Group("/equipment")
	equipmentHandler := NewEquipmentHandler(deps.EquipmentUC, deps.AlertConfig)
	equipment.Post("/", require(policy.EquipmentWrite), equipmentHandler.Create)
	equipment.Get("/", require(policy.EquipmentRead), equipmentHandler.List)
	equipment.Get("/maintenance-due", require(policy.EquipmentRead), equipmentHandler.MaintenanceDue)
	equipment.Get("/:id", require(policy.EquipmentRead), equipmentHandler.GetByID)
	equipment.Put("/:id", require(policy.EquipmentWrite), equipmentHandler.Update)
	equipment.Delete("/:id", require(policy.EquipmentDelete), equipmentHandler.Delete)

	// Orders (admin, pharmacist; delete solo admin)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", require(policy.OrdersWrite), orderHandler.Create)
	orders.Get("/", require(policy.OrdersRead), orderHandler.List)
	orders.Get("/:id", require(policy.OrdersRead), orderHandler.GetByID)
	orders.Get("/:id/pdf", require(policy.OrdersRead), orderHandler.PDF)
	orders.Put("/:id", require(policy.OrdersWrite), orderHandler.Update)
	orders.Patch("/:id/status", require(policy.OrdersWrite), orderHandler.UpdateStatus)
	orders.Delete("/:id", require(policy.OrdersDelete), orderHandler.Delete)

	// Maintenance (admin, technician; delete solo admin)
	maintenance := protected.Group("/maintenance")
	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceUC)
	maintenance.Post("/", require(policy.MaintenanceWrite), maintenanceHandler.Create)
	maintenance.Get("/", require(policy.MaintenanceRead), maintenanceHandler.List)
	maintenance.Get("/equipment/:equipmentId", require(policy.MaintenanceRead), maintenanceHandler.ListByEquipment)
	maintenance.Get("/:id", require(policy.MaintenanceRead), maintenanceHandler.GetByID)
	maintenance.Put("/:id", require(policy.MaintenanceWrite), maintenanceHandler.Update)
	maintenance.Delete("/:id", require(policy.MaintenanceDelete), maintenanceHandler.Delete)

	// Users (solo admin)
	users := protected.Group("/users", require(policy.UsersManage))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id/toggle-active", userHandler.ToggleActive)
	users.Delete("/:id", userHandler.Delete)

	// Dashboard (cualquier rol autenticado)
	dashboard := protected.Group("/dashboard", require(policy.DashboardView))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
}
