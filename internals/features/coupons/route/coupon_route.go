package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	couponController "barakahku_backend/internals/features/coupons/controller"
)

// CouponRoutes: lookup publik (checkout butuh cek kupon sebelum login selesai).
func CouponRoutes(api fiber.Router, db *gorm.DB) {
	couponCtrl := couponController.NewCouponController(db)

	api.Get("/coupons/:code", couponCtrl.LookupCoupon)
}

func CouponAdminRoutes(admin fiber.Router, db *gorm.DB) {
	couponCtrl := couponController.NewCouponController(db)

	coupons := admin.Group("/coupons")
	coupons.Get("/", couponCtrl.ListCoupons)
	coupons.Post("/", couponCtrl.CreateCoupon)
	coupons.Put("/:id", couponCtrl.UpdateCoupon)
	coupons.Delete("/:id", couponCtrl.DeleteCoupon)
}
