package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campaignController "barakahku_backend/internals/features/campaigns/controller"
)

// CampaignRoutes: endpoint publik (list + detail).
func CampaignRoutes(api fiber.Router, db *gorm.DB) {
	campaignCtrl := campaignController.NewCampaignController(db)

	campaigns := api.Group("/campaigns")
	campaigns.Get("/", campaignCtrl.ListCampaigns)
	campaigns.Get("/:slug", campaignCtrl.GetCampaignBySlug)
}

// CampaignAdminRoutes: CRUD kampanye + kabar perkembangan + recompute.
func CampaignAdminRoutes(admin fiber.Router, db *gorm.DB) {
	campaignCtrl := campaignController.NewCampaignController(db)

	campaigns := admin.Group("/campaigns")
	campaigns.Post("/", campaignCtrl.CreateCampaign)
	campaigns.Put("/:id", campaignCtrl.UpdateCampaign)
	campaigns.Delete("/:id", campaignCtrl.DeleteCampaign)
	campaigns.Post("/:id/recompute", campaignCtrl.RecomputeCampaign)
	campaigns.Post("/:id/updates", campaignCtrl.CreateCampaignUpdate)
}
