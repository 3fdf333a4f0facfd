package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileController "barakahku_backend/internals/features/profiles/controller"
)

// ProfileRoutes: butuh login.
func ProfileRoutes(user fiber.Router, db *gorm.DB) {
	profileCtrl := profileController.NewProfileController(db)

	user.Get("/profile", profileCtrl.GetMyProfile)
	user.Put("/profile", profileCtrl.UpdateMyProfile)
}
