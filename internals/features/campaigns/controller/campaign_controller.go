// 📁 controller/campaign_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"barakahku_backend/internals/features/campaigns/dto"
	"barakahku_backend/internals/features/campaigns/model"
	"barakahku_backend/internals/features/campaigns/service"
	helper "barakahku_backend/internals/helpers"
)

type CampaignController struct {
	DB *gorm.DB
}

func NewCampaignController(db *gorm.DB) *CampaignController {
	return &CampaignController{DB: db}
}

/* =========================================================
   Admin
========================================================= */

// 🟢 CREATE CAMPAIGN: buat kampanye baru, slug unik diturunkan dari judul.
func (ctrl *CampaignController) CreateCampaign(c *fiber.Ctx) error {
	var body dto.CreateCampaignRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	base := helper.GenerateSlug(body.Title)
	if base == "" {
		base = "campaign"
	}
	slug, err := helper.EnsureUniqueSlug(ctrl.DB, base, "campaigns", "campaign_slug")
	if err != nil {
		log.Println("[ERROR] Gagal membuat slug:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}

	campaign := model.Campaign{
		CampaignTitle:        body.Title,
		CampaignSlug:         slug,
		CampaignDescription:  body.Description,
		CampaignCategory:     body.Category,
		CampaignThumbnailURL: body.ThumbnailURL,
		CampaignTargetAmount: body.TargetAmount,
		CampaignIsFeatured:   body.IsFeatured,
		CampaignIsActive:     true,
		CampaignDeadline:     body.Deadline,
	}

	if err := ctrl.DB.Create(&campaign).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan kampanye:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kampanye")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kampanye berhasil dibuat", dto.FromCampaignModel(&campaign))
}

// 🟢 UPDATE CAMPAIGN: partial update. current_amount TIDAK bisa diubah
// dari sini, hanya ledger yang boleh menulisnya.
func (ctrl *CampaignController) UpdateCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kampanye tidak valid")
	}

	var body dto.UpdateCampaignRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var campaign model.Campaign
	if err := ctrl.DB.First(&campaign, "campaign_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Campaign not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kampanye")
	}

	if body.Title != nil && *body.Title != campaign.CampaignTitle {
		campaign.CampaignTitle = *body.Title
		base := helper.GenerateSlug(*body.Title)
		if base == "" {
			base = "campaign"
		}
		slug, err := helper.EnsureUniqueSlug(ctrl.DB, base, "campaigns", "campaign_slug")
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
		campaign.CampaignSlug = slug
	}
	if body.Description != nil {
		campaign.CampaignDescription = *body.Description
	}
	if body.Category != nil {
		campaign.CampaignCategory = *body.Category
	}
	if body.ThumbnailURL != nil {
		campaign.CampaignThumbnailURL = body.ThumbnailURL
	}
	if body.TargetAmount != nil {
		campaign.CampaignTargetAmount = *body.TargetAmount
	}
	if body.IsFeatured != nil {
		campaign.CampaignIsFeatured = *body.IsFeatured
	}
	if body.IsActive != nil {
		campaign.CampaignIsActive = *body.IsActive
	}
	if body.Deadline != nil {
		campaign.CampaignDeadline = body.Deadline
	}

	if err := ctrl.DB.Save(&campaign).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kampanye")
	}

	return helper.Success(c, "Kampanye berhasil diperbarui", dto.FromCampaignModel(&campaign))
}

// 🟢 DELETE CAMPAIGN: soft delete kampanye BESERTA donasinya (lossy,
// terdokumentasi, bukan penghapusan diam-diam).
func (ctrl *CampaignController) DeleteCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kampanye tidak valid")
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var campaign model.Campaign
		if err := tx.First(&campaign, "campaign_id = ?", id).Error; err != nil {
			return err
		}
		// cascade: donasi ikut terhapus
		if err := tx.Table("donations").
			Where("donation_campaign_id = ? AND deleted_at IS NULL", id).
			Update("deleted_at", tx.NowFunc()).Error; err != nil {
			return err
		}
		return tx.Delete(&campaign).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Campaign not found")
		}
		log.Println("[ERROR] Gagal menghapus kampanye:", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus kampanye")
	}

	return helper.Success(c, "Kampanye dan donasinya berhasil dihapus", nil)
}

// 🟢 RECOMPUTE CAMPAIGN: paksa hitung ulang total dari set donasi
// confirmed (alat koreksi admin, hasilnya idempotent).
func (ctrl *CampaignController) RecomputeCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kampanye tidak valid")
	}

	var total int64
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		ledger := service.NewLedger(service.NewGormLedgerStore(tx))
		var err error
		total, err = ledger.Recompute(c.UserContext(), id)
		return err
	})
	if txErr != nil {
		if errors.Is(txErr, service.ErrCampaignNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Campaign not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung ulang")
	}

	return helper.Success(c, "Total kampanye dihitung ulang", fiber.Map{
		"campaign_id":    id,
		"current_amount": total,
	})
}

/* =========================================================
   Public
========================================================= */

// 🟢 LIST CAMPAIGNS: filter kategori/featured + pagination.
func (ctrl *CampaignController) ListCampaigns(c *fiber.Ctx) error {
	db := ctrl.DB.Model(&model.Campaign{}).Where("campaign_is_active = true")

	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		db = db.Where("campaign_category = ?", cat)
	}
	if c.Query("featured") == "true" {
		db = db.Where("campaign_is_featured = true")
	}

	paging := helper.ResolvePaging(c, 12, 100)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kampanye")
	}

	var campaigns []model.Campaign
	if err := db.Order("created_at desc").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&campaigns).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kampanye")
	}

	out := make([]*dto.CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		out = append(out, dto.FromCampaignModel(&campaigns[i]))
	}

	return c.JSON(fiber.Map{
		"data":       out,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// 🟢 GET CAMPAIGN BY SLUG: detail + progress + kabar terbaru.
func (ctrl *CampaignController) GetCampaignBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var campaign model.Campaign
	if err := ctrl.DB.First(&campaign, "campaign_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Campaign not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kampanye")
	}

	var updates []model.CampaignUpdate
	if err := ctrl.DB.
		Where("campaign_update_campaign_id = ?", campaign.CampaignID).
		Order("created_at desc").
		Find(&updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kabar kampanye")
	}

	return c.JSON(fiber.Map{
		"campaign": dto.FromCampaignModel(&campaign),
		"updates":  updates,
	})
}

// 🟢 CREATE CAMPAIGN UPDATE: tambah kabar perkembangan (admin).
func (ctrl *CampaignController) CreateCampaignUpdate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kampanye tidak valid")
	}

	var body dto.CreateCampaignUpdateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Model(&model.Campaign{}).
		Where("campaign_id = ?", id).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kampanye")
	}
	if count == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Campaign not found")
	}

	update := model.CampaignUpdate{
		CampaignUpdateCampaignID:  id,
		CampaignUpdateTitle:       body.Title,
		CampaignUpdateDescription: body.Description,
	}
	if err := ctrl.DB.Create(&update).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kabar")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kabar kampanye ditambahkan", update)
}
