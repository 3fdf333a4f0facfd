package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	shippingController "barakahku_backend/internals/features/shippings/controller"
)

// ShippingRoutes: buku alamat, butuh login.
func ShippingRoutes(user fiber.Router, db *gorm.DB) {
	shippingCtrl := shippingController.NewShippingController(db)

	addresses := user.Group("/shipping-addresses")
	addresses.Get("/", shippingCtrl.ListAddresses)
	addresses.Post("/", shippingCtrl.CreateAddress)
	addresses.Put("/:id", shippingCtrl.UpdateAddress)
	addresses.Delete("/:id", shippingCtrl.DeleteAddress)
}
