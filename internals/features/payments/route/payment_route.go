package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "barakahku_backend/internals/features/payments/controller"
	"barakahku_backend/internals/middlewares"
)

// PaymentRoutes: token issuance + webhook + status poll (publik).
// Webhook Midtrans tidak boleh di belakang auth maupun rate limiter.
func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	paymentCtrl := paymentController.NewPaymentController(db)

	payments := api.Group("/payments")

	payments.Post("/donations/token", middlewares.PaymentRateLimiter(), paymentCtrl.GenerateDonationToken)
	payments.Post("/orders/token", middlewares.PaymentRateLimiter(), paymentCtrl.GenerateOrderToken)

	payments.Post("/donations/notification", paymentCtrl.HandleDonationNotification) // Midtrans webhook
	payments.Post("/orders/notification", paymentCtrl.HandleOrderNotification)       // Midtrans webhook

	payments.Get("/donations/status", paymentCtrl.CheckDonationStatus)
	payments.Get("/orders/status", paymentCtrl.CheckOrderStatus)
}

// PaymentAdminRoutes: audit trail webhook.
func PaymentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	eventCtrl := paymentController.NewGatewayEventController(db)

	events := admin.Group("/payment-gateway-events")
	events.Get("/", eventCtrl.ListEvents)
	events.Get("/:id", eventCtrl.GetByID)
}
