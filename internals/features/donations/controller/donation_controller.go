// 📁 controller/donation_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	campaignModel "barakahku_backend/internals/features/campaigns/model"
	"barakahku_backend/internals/features/donations/dto"
	"barakahku_backend/internals/features/donations/model"
	"barakahku_backend/internals/features/donations/service"
	helper "barakahku_backend/internals/helpers"
)

type DonationController struct {
	DB *gorm.DB
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{DB: db}
}

/* =========================================================
   Publik / user
========================================================= */

// 🟢 CREATE DONATION: donasi transfer manual (bsi/bjb), lahir pending.
// Donasi Midtrans dibuat lewat /payments/donations/token, bukan di sini.
func (ctrl *DonationController) CreateDonation(c *fiber.Ctx) error {
	var body dto.CreateDonationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var campaign campaignModel.Campaign
	if err := ctrl.DB.
		First(&campaign, "campaign_slug = ? AND campaign_is_active = true", body.CampaignSlug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Campaign not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kampanye")
	}

	donation := model.Donation{
		DonationCampaignID:    campaign.CampaignID,
		DonationAmount:        body.Amount,
		DonationDonorName:     body.DonorName,
		DonationDonorPhone:    body.DonorPhone,
		DonationIsAnonymous:   body.IsAnonymous,
		DonationMessage:       body.Message,
		DonationPaymentMethod: body.PaymentMethod,
		DonationPaymentStatus: model.DonationStatusPending,
	}
	if body.DonorEmail != "" {
		donation.DonationDonorEmail = &body.DonorEmail
	}

	// Guest tetap boleh berdonasi; kalau login, ikat ke user
	if raw, ok := c.Locals("user_id").(string); ok && raw != "" {
		if uid, err := uuid.Parse(raw); err == nil {
			donation.DonationUserID = &uid
		}
	}

	if err := ctrl.DB.Create(&donation).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan donasi:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan donasi")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Donasi dicatat, menunggu transfer", dto.FromDonationModel(&donation))
}

// 🟢 SUBMIT PROOF: unggah bukti transfer untuk donasi manual yang masih pending.
func (ctrl *DonationController) SubmitProof(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID donasi tidak valid")
	}

	var body dto.SubmitProofRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var donation model.Donation
	if err := ctrl.DB.First(&donation, "donation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Donation not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil donasi")
	}

	if !donation.IsManual() {
		return helper.Error(c, fiber.StatusBadRequest, "Donasi gateway tidak memakai bukti transfer")
	}
	if donation.DonationPaymentStatus != model.DonationStatusPending {
		return helper.Error(c, fiber.StatusBadRequest, "Donasi sudah diproses")
	}

	donation.DonationSourceBank = &body.SourceBank
	donation.DonationSourceAccount = &body.SourceAccount
	donation.DonationAccountName = &body.AccountName
	donation.DonationTransferDate = body.TransferDate
	donation.DonationProofFileURL = &body.ProofFileURL

	if err := ctrl.DB.Save(&donation).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan bukti transfer")
	}

	return helper.Success(c, "Bukti transfer diterima, menunggu verifikasi", dto.FromDonationModel(&donation))
}

// 🟢 GET DONATIONS BY CAMPAIGN: daftar donatur publik (confirmed saja,
// nama anonim disembunyikan).
func (ctrl *DonationController) GetDonationsByCampaign(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var campaign campaignModel.Campaign
	if err := ctrl.DB.First(&campaign, "campaign_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Campaign not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kampanye")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.Donation{}).
		Where("donation_campaign_id = ?", campaign.CampaignID).
		Where("donation_payment_status IN ?", []string{
			model.DonationStatusConfirmed, model.DonationStatusLegacyVerified,
		})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil donasi")
	}

	var donations []model.Donation
	if err := base.Order("created_at desc").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil donasi")
	}

	out := make([]*dto.PublicDonationResponse, 0, len(donations))
	for i := range donations {
		out = append(out, dto.ToPublicDonation(&donations[i]))
	}

	return c.JSON(fiber.Map{
		"data":       out,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// 🟢 GET MY DONATIONS: riwayat donasi user login.
func (ctrl *DonationController) GetMyDonations(c *fiber.Ctx) error {
	raw, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.Donation{}).Where("donation_user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil donasi")
	}

	var donations []model.Donation
	if err := base.Order("created_at desc").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil donasi")
	}

	out := make([]*dto.DonationResponse, 0, len(donations))
	for i := range donations {
		out = append(out, dto.FromDonationModel(&donations[i]))
	}

	return c.JSON(fiber.Map{
		"data":       out,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

/* =========================================================
   Admin
========================================================= */

// 🟢 GET ALL DONATIONS: daftar lengkap untuk operator, filter status/method.
func (ctrl *DonationController) GetAllDonations(c *fiber.Ctx) error {
	db := ctrl.DB.Model(&model.Donation{})

	if s := strings.TrimSpace(c.Query("status")); s != "" {
		db = db.Where("donation_payment_status = ?", strings.ToLower(s))
	}
	if m := strings.TrimSpace(c.Query("method")); m != "" {
		db = db.Where("donation_payment_method = ?", strings.ToLower(m))
	}
	if cid := strings.TrimSpace(c.Query("campaign_id")); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "campaign_id tidak valid")
		}
		db = db.Where("donation_campaign_id = ?", id)
	}

	paging := helper.ResolvePaging(c, 20, 200)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil donasi")
	}

	var donations []model.Donation
	if err := db.Order("created_at desc").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil donasi")
	}

	return c.JSON(fiber.Map{
		"data":       donations,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// 🟢 VERIFY DONATION: operator menyetujui bukti transfer (pending → confirmed).
// Status + recompute ledger berjalan dalam satu transaksi.
func (ctrl *DonationController) VerifyDonation(c *fiber.Ctx) error {
	return ctrl.applyAdminTransition(c, "verify")
}

// 🟢 REJECT DONATION: operator menolak bukti transfer (→ failed).
func (ctrl *DonationController) RejectDonation(c *fiber.Ctx) error {
	return ctrl.applyAdminTransition(c, "reject")
}

// 🟢 DELETE DONATION: hapus donasi (soft delete) lalu hitung ulang
// total kampanyenya.
func (ctrl *DonationController) DeleteDonation(c *fiber.Ctx) error {
	return ctrl.applyAdminTransition(c, "delete")
}

func (ctrl *DonationController) applyAdminTransition(c *fiber.Ctx, action string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID donasi tidak valid")
	}

	var res *service.TransitionResult
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		tr := service.NewTransitioner(tx)
		var err error
		switch action {
		case "verify":
			res, err = tr.Verify(c.UserContext(), id)
		case "reject":
			res, err = tr.Reject(c.UserContext(), id)
		case "delete":
			res, err = tr.Delete(c.UserContext(), id)
		}
		return err
	})
	if txErr != nil {
		if errors.Is(txErr, service.ErrDonationNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Donation not found")
		}
		log.Printf("[ERROR] Transisi donasi gagal (%s %s): %v", action, id, txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses donasi")
	}

	msg := "Donasi diproses"
	switch {
	case action == "delete":
		msg = "Donasi dihapus, total kampanye dihitung ulang"
	case res.Duplicate:
		msg = "Donasi sudah dalam status tersebut"
	case action == "verify" && res.Correction:
		msg = "Donasi dikonfirmasi (koreksi dari failed)"
	case action == "verify":
		msg = "Donasi dikonfirmasi"
	case action == "reject" && res.Correction:
		msg = "Donasi ditolak (koreksi, total kampanye turun)"
	case action == "reject":
		msg = "Donasi ditolak"
	}

	return helper.Success(c, msg, fiber.Map{
		"donation":   dto.FromDonationModel(res.Donation),
		"changed":    res.Changed,
		"duplicate":  res.Duplicate,
		"correction": res.Correction,
		"new_total":  res.NewTotal,
	})
}
