package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Bodega-api/internal/application/auth"
	"github.com/jhoicas/Bodega-api/internal/application/orders"
	"github.com/jhoicas/Bodega-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	SupplierUC  *usecase.SupplierUseCase
	InventoryUC *usecase.InventoryUseCase
	OrderUC     *orders.OrderUseCase
	ReceiptUC   *orders.ReceiptUseCase
}

// Router registra las rutas de la API.
// Listados públicos; mutaciones de catálogo y órdenes requieren Bearer admin.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	productHandler := NewProductHandler(deps.ProductUC)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC)

	authn := AuthMiddleware(deps.AuthUC)
	admin := RequireAdmin()

	// Auth (público)
	app.Post("/auth/login", authHandler.Login)

	// Catálogo
	api := app.Group("/api")
	api.Get("/products", productHandler.List)
	api.Post("/products", authn, admin, productHandler.Create)
	api.Delete("/products/:id", authn, admin, productHandler.Delete)

	api.Get("/suppliers", supplierHandler.List)
	api.Post("/suppliers", authn, admin, supplierHandler.Create)
	api.Delete("/suppliers/:id", authn, admin, supplierHandler.Delete)

	api.Get("/inventory", inventoryHandler.List)
	api.Post("/inventory", authn, admin, inventoryHandler.Create)

	// Órdenes (admin)
	ordersGroup := app.Group("/orders", authn, admin)
	ordersGroup.Post("/purchase", orderHandler.CreatePurchase)
	ordersGroup.Post("/sales", orderHandler.CreateSales)
	ordersGroup.Get("/sales/:id", orderHandler.GetSales)
	ordersGroup.Get("/sales/:id/pdf", orderHandler.GetSalesPDF)
}
