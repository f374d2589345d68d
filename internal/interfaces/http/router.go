package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/auth"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	SupplierUC *usecase.SupplierUseCase
	OrderUC    *usecase.OrderUseCase
	AuditUC    *usecase.AuditUseCase
	JWT        auth.JWTConfig
}

// Router registra las rutas de la API. Cada petición mutante pasa por
// AuthMiddleware (verificación + reemisión deslizante) y, donde aplica,
// RequireRole; cada guard corta en el primer fallo.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/login", authHandler.Login)

	// Logs (público en la variante observada)
	auditHandler := NewAuditHandler(deps.AuditUC)
	app.Post("/logs", auditHandler.Record)
	app.Get("/logs", auditHandler.List)

	// Rutas protegidas (requieren Bearer Token; devuelven X-New-Token)
	protected := app.Group("/", AuthMiddleware(deps.JWT))

	protected.Get("/protected", authHandler.Protected)

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	protected.Get("/products", productHandler.List)
	protected.Get("/products/:id", productHandler.GetByID)
	protected.Post("/products", productHandler.Create)
	protected.Put("/products/:id", productHandler.Update)
	protected.Delete("/products/:id",
		RequireRole(entity.RoleAdmin, entity.RoleWarehouseManager),
		productHandler.Delete)

	// Suppliers
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	protected.Get("/suppliers", supplierHandler.List)
	protected.Get("/suppliers/:id", supplierHandler.GetByID)
	protected.Post("/suppliers", supplierHandler.Create)
	protected.Put("/suppliers/:id", supplierHandler.Update)
	protected.Delete("/suppliers/:id", supplierHandler.Delete)

	// Orders
	orderHandler := NewOrderHandler(deps.OrderUC)
	protected.Get("/orders", orderHandler.List)
	protected.Post("/orders", orderHandler.Create)
	protected.Delete("/orders/:id", orderHandler.Delete)
}
