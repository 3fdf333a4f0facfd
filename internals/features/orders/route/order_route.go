package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orderController "barakahku_backend/internals/features/orders/controller"
)

// OrderRoutes: checkout + riwayat, butuh login.
func OrderRoutes(user fiber.Router, db *gorm.DB) {
	orderCtrl := orderController.NewOrderController(db)

	orders := user.Group("/orders")
	orders.Post("/", orderCtrl.CreateOrder)
	orders.Get("/", orderCtrl.GetMyOrders)
	orders.Get("/:number", orderCtrl.GetOrderByNumber)
}

// OrderAdminRoutes: operasional pengiriman.
func OrderAdminRoutes(admin fiber.Router, db *gorm.DB) {
	orderCtrl := orderController.NewOrderController(db)

	orders := admin.Group("/orders")
	orders.Get("/", orderCtrl.GetAllOrders)
	orders.Put("/:number/status", orderCtrl.UpdateOrderStatus)
}
