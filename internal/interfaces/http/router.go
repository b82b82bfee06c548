package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/storefront-api/internal/application/auth"
	"github.com/jhoicas/storefront-api/internal/application/cart"
	catalogstore "github.com/jhoicas/storefront-api/internal/application/catalog"
	"github.com/jhoicas/storefront-api/internal/application/usecase"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	CategoryUC   *usecase.CategoryUseCase
	OrderUC      *usecase.OrderUseCase
	AuthUC       *auth.AuthUseCase
	CatalogStore *catalogstore.Store
	Carts        *cart.Manager
	Upstream     ProductSource
	OrderPlacer  OrderPlacer
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	adminOnly := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin)}

	// Products: el listado raíz y /external proxean el API externo; el
	// resto opera contra la base local. Las escrituras exigen rol admin.
	productHandler := NewProductHandler(deps.ProductUC, deps.Upstream)
	products := api.Group("/products")
	products.Get("/", productHandler.ListExternal)
	products.Get("/external", productHandler.ListExternal)
	products.Get("/db", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", append(adminOnly, productHandler.Create)...)
	products.Put("/:id", append(adminOnly, productHandler.Update)...)
	products.Delete("/:id", append(adminOnly, productHandler.Delete)...)

	// Categories (lectura pública, escritura admin)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", append(adminOnly, categoryHandler.Create)...)

	// Storefront: estado del catálogo + pedido externo (público)
	storefrontHandler := NewStorefrontHandler(deps.CatalogStore, deps.OrderPlacer)
	storefront := api.Group("/storefront")
	storefront.Get("/products", storefrontHandler.Products)
	storefront.Get("/products/:id", storefrontHandler.ProductByID)
	storefront.Delete("/selected", storefrontHandler.ClearSelected)
	api.Post("/orders/external", storefrontHandler.PlaceExternalOrder)

	// Cart (público, por cookie de sesión)
	cartHandler := NewCartHandler(deps.Carts)
	cartGroup := api.Group("/cart")
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Delete("/", cartHandler.Clear)
	cartGroup.Post("/toggle", cartHandler.Toggle)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Put("/items/:index", cartHandler.UpdateItem)
	cartGroup.Delete("/items/:index", cartHandler.RemoveItem)

	// Orders locales (protegido; cambiar estado exige admin)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := api.Group("/orders", AuthMiddleware(deps.JWTSecret))
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/receipt", orderHandler.Receipt)
	orders.Patch("/:id/status", RequireRole(entity.RoleAdmin), orderHandler.UpdateStatus)
}
