package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reviewController "barakahku_backend/internals/features/reviews/controller"
)

// ReviewRoutes: list per produk (publik).
func ReviewRoutes(api fiber.Router, db *gorm.DB) {
	reviewCtrl := reviewController.NewReviewController(db)

	api.Get("/products/:slug/reviews", reviewCtrl.ListByProduct)
}

// ReviewUserRoutes: tulis/hapus ulasan, butuh login.
func ReviewUserRoutes(user fiber.Router, db *gorm.DB) {
	reviewCtrl := reviewController.NewReviewController(db)

	user.Post("/products/:slug/reviews", reviewCtrl.CreateReview)
	user.Delete("/reviews/:id", reviewCtrl.DeleteReview)
}
