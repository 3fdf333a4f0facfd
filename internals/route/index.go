// 📁 internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campaignRoute "barakahku_backend/internals/features/campaigns/route"
	cartRoute "barakahku_backend/internals/features/carts/route"
	couponRoute "barakahku_backend/internals/features/coupons/route"
	courseRoute "barakahku_backend/internals/features/courses/route"
	donationRoute "barakahku_backend/internals/features/donations/route"
	orderRoute "barakahku_backend/internals/features/orders/route"
	paymentRoute "barakahku_backend/internals/features/payments/route"
	productRoute "barakahku_backend/internals/features/products/route"
	profileRoute "barakahku_backend/internals/features/profiles/route"
	reviewRoute "barakahku_backend/internals/features/reviews/route"
	shippingRoute "barakahku_backend/internals/features/shippings/route"
	wishlistRoute "barakahku_backend/internals/features/wishlists/route"
	"barakahku_backend/internals/middlewares"
	"barakahku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang semua route dalam tiga lapis akses:
//   - /api   → publik (token opsional, donasi guest tetap jalan)
//   - /api/u → wajib login
//   - /api/a → wajib login + role admin
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// DB tersedia di Locals untuk handler yang butuh akses langsung
	app.Use(middlewares.DBMiddleware(db))

	/* ============== 🌍 PUBLIK ============== */
	api := app.Group("/api", auth.OptionalAuthMiddleware())

	campaignRoute.CampaignRoutes(api, db)
	donationRoute.DonationRoutes(api, db)
	paymentRoute.PaymentRoutes(api, db)
	productRoute.ProductRoutes(api, db)
	reviewRoute.ReviewRoutes(api, db)
	couponRoute.CouponRoutes(api, db)
	courseRoute.CourseRoutes(api, db)

	/* ============== 🔐 USER ============== */
	user := app.Group("/api/u", auth.AuthMiddleware())

	donationRoute.DonationUserRoutes(user, db)
	cartRoute.CartRoutes(user, db)
	wishlistRoute.WishlistRoutes(user, db)
	orderRoute.OrderRoutes(user, db)
	shippingRoute.ShippingRoutes(user, db)
	reviewRoute.ReviewUserRoutes(user, db)
	profileRoute.ProfileRoutes(user, db)

	/* ============== 🛡️ ADMIN ============== */
	admin := app.Group("/api/a", auth.AuthMiddleware(), auth.AdminOnly())

	campaignRoute.CampaignAdminRoutes(admin, db)
	donationRoute.DonationAdminRoutes(admin, db)
	paymentRoute.PaymentAdminRoutes(admin, db)
	productRoute.ProductAdminRoutes(admin, db)
	couponRoute.CouponAdminRoutes(admin, db)
	courseRoute.CourseAdminRoutes(admin, db)
	orderRoute.OrderAdminRoutes(admin, db)
}
