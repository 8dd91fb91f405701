package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/suryatek/quotation-api/pkg/logger"
)

// RouterDeps everything the route table needs.
type RouterDeps struct {
	Auth       *AuthHandler
	Products   *ProductHandler
	Quotations *QuotationHandler
	JWTSecret  string
	Log        *logger.Logger
}

// SetupRoutes mounts the API under /api/v1. Auth endpoints are public;
// everything else sits behind the bearer-token middleware. Catalog mutations
// additionally require the admin role.
func SetupRoutes(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", deps.Auth.Register)
	authGroup.Post("/login", deps.Auth.Login)

	protected := api.Group("", AuthMiddleware(deps.JWTSecret, deps.Log))

	products := protected.Group("/products")
	products.Get("/", deps.Products.List)
	products.Get("/:id", deps.Products.Get)
	products.Post("/", RequireAdmin(), deps.Products.Create)
	products.Put("/:id", RequireAdmin(), deps.Products.Update)
	products.Delete("/:id", RequireAdmin(), deps.Products.Delete)

	quotations := protected.Group("/quotations")
	quotations.Get("/", deps.Quotations.List)
	quotations.Post("/", deps.Quotations.Create)
	quotations.Get("/:id", deps.Quotations.Get)
	quotations.Put("/:id", deps.Quotations.Update)
	quotations.Get("/:id/pdf", deps.Quotations.DownloadPDF)
}
