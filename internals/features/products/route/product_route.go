package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	productController "barakahku_backend/internals/features/products/controller"
)

func ProductRoutes(api fiber.Router, db *gorm.DB) {
	productCtrl := productController.NewProductController(db)

	products := api.Group("/products")
	products.Get("/", productCtrl.ListProducts)
	products.Get("/:slug", productCtrl.GetProductBySlug)
}

func ProductAdminRoutes(admin fiber.Router, db *gorm.DB) {
	productCtrl := productController.NewProductController(db)

	products := admin.Group("/products")
	products.Post("/", productCtrl.CreateProduct)
	products.Put("/:id", productCtrl.UpdateProduct)
	products.Delete("/:id", productCtrl.DeleteProduct)
}
