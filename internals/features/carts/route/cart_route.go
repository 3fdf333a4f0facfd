package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cartController "barakahku_backend/internals/features/carts/controller"
)

// CartRoutes: semuanya butuh login.
func CartRoutes(user fiber.Router, db *gorm.DB) {
	cartCtrl := cartController.NewCartController(db)

	cart := user.Group("/cart")
	cart.Get("/", cartCtrl.GetCart)
	cart.Post("/items", cartCtrl.AddItem)
	cart.Put("/items/:id", cartCtrl.UpdateItem)
	cart.Delete("/items/:id", cartCtrl.RemoveItem)
}
