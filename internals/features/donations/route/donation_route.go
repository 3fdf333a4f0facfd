package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationController "barakahku_backend/internals/features/donations/controller"
)

// DonationRoutes: endpoint publik / guest (auth opsional di level group).
func DonationRoutes(api fiber.Router, db *gorm.DB) {
	donationCtrl := donationController.NewDonationController(db)

	donations := api.Group("/donations")
	donations.Post("/", donationCtrl.CreateDonation)
	donations.Post("/:id/proof", donationCtrl.SubmitProof)

	api.Get("/campaigns/:slug/donations", donationCtrl.GetDonationsByCampaign)
}

// DonationUserRoutes: butuh login.
func DonationUserRoutes(user fiber.Router, db *gorm.DB) {
	donationCtrl := donationController.NewDonationController(db)

	user.Get("/donations", donationCtrl.GetMyDonations)
}

// DonationAdminRoutes: verifikasi manual + koreksi.
func DonationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	donationCtrl := donationController.NewDonationController(db)

	donations := admin.Group("/donations")
	donations.Get("/", donationCtrl.GetAllDonations)
	donations.Post("/:id/verify", donationCtrl.VerifyDonation)
	donations.Post("/:id/reject", donationCtrl.RejectDonation)
	donations.Delete("/:id", donationCtrl.DeleteDonation)
}
