// 📁 controller/payment_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	campaignModel "barakahku_backend/internals/features/campaigns/model"
	donationModel "barakahku_backend/internals/features/donations/model"
	donationService "barakahku_backend/internals/features/donations/service"
	orderModel "barakahku_backend/internals/features/orders/model"
	orderService "barakahku_backend/internals/features/orders/service"
	"barakahku_backend/internals/features/payments/dto"
	"barakahku_backend/internals/features/payments/model"
	paymentService "barakahku_backend/internals/features/payments/service"
	helper "barakahku_backend/internals/helpers"
)

type PaymentController struct {
	DB   *gorm.DB
	Snap paymentService.SnapTokenizer
	Core paymentService.TransactionChecker
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:   db,
		Snap: paymentService.Snap(),
		Core: paymentService.Core(),
	}
}

/* =========================================================
   Token issuance: donasi
========================================================= */

// 🟢 GENERATE DONATION TOKEN: buat donasi pending + Snap token Midtrans.
// Gagal ke gateway → donasi tetap pending (bukan confirmed diam-diam).
func (ctrl *PaymentController) GenerateDonationToken(c *fiber.Ctx) error {
	var body dto.DonationTokenRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var campaign campaignModel.Campaign
	if err := ctrl.DB.
		Where("campaign_slug = ? AND campaign_is_active = true", body.CampaignSlug).
		First(&campaign).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Campaign not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kampanye")
	}

	// Jika login, kaitkan donasi ke user
	var userUUID *uuid.UUID
	if raw, ok := c.Locals("user_id").(string); ok && raw != "" {
		if parsed, err := uuid.Parse(raw); err == nil {
			userUUID = &parsed
		}
	}

	// ID di-generate di sini (bukan DB default) karena order ref
	// harus memuat donation_id sebelum insert.
	donation := donationModel.Donation{
		DonationID:            uuid.New(),
		DonationCampaignID:    campaign.CampaignID,
		DonationUserID:        userUUID,
		DonationAmount:        body.Amount,
		DonationDonorName:     body.DonorName,
		DonationDonorPhone:    body.DonorPhone,
		DonationIsAnonymous:   body.IsAnonymous,
		DonationMessage:       body.Message,
		DonationPaymentMethod: donationModel.DonationMethodMidtrans,
		DonationPaymentStatus: donationModel.DonationStatusPending,
	}
	if body.DonorEmail != "" {
		donation.DonationDonorEmail = &body.DonorEmail
	}

	orderRef := paymentService.BuildDonationOrderRef(donation.DonationID, campaign.CampaignID)
	donation.DonationOrderRef = &orderRef

	if err := ctrl.DB.Create(&donation).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan donasi:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan donasi")
	}

	token, redirectURL, err := paymentService.GenerateSnapToken(ctrl.Snap, orderRef, donation.DonationAmount, paymentService.CustomerInput{
		Name:  body.DonorName,
		Phone: body.DonorPhone,
		Email: body.DonorEmail,
	})
	if err != nil {
		// Donasi sudah tersimpan pending + order ref, aman di-retry.
		log.Println("[ERROR] Midtrans token (donation):", err)
		return helper.Error(c, fiber.StatusBadGateway, "Payment gateway error")
	}

	donation.DonationPaymentToken = &token
	if err := ctrl.DB.Save(&donation).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan token donasi:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan token")
	}

	return helper.Success(c, "Donasi berhasil dibuat. Silakan lanjutkan pembayaran.", dto.TokenResponse{
		Token:       token,
		RedirectURL: redirectURL,
		OrderID:     orderRef,
	})
}

/* =========================================================
   Token issuance: order toko
========================================================= */

// 🟢 GENERATE ORDER TOKEN: Snap token untuk order yang sudah dibuat
// dari cart. order_number dipakai langsung sebagai order_id gateway.
func (ctrl *PaymentController) GenerateOrderToken(c *fiber.Ctx) error {
	var body dto.OrderTokenRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var order orderModel.Order
	if err := ctrl.DB.
		Where("order_number = ?", body.OrderNumber).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Order not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil order")
	}
	if orderService.IsTerminal(order.OrderPaymentStatus) {
		return helper.Error(c, fiber.StatusBadRequest, "Order sudah tidak pending")
	}

	token, redirectURL, err := paymentService.GenerateSnapToken(ctrl.Snap, order.OrderNumber, order.OrderTotalAmount, paymentService.CustomerInput{
		Name:  body.CustomerName,
		Phone: body.CustomerPhone,
		Email: body.CustomerEmail,
	})
	if err != nil {
		log.Println("[ERROR] Midtrans token (order):", err)
		return helper.Error(c, fiber.StatusBadGateway, "Payment gateway error")
	}

	order.OrderPaymentMethod = orderModel.OrderMethodMidtrans
	if err := ctrl.DB.Save(&order).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan order")
	}

	return helper.Success(c, "Token pembayaran order berhasil dibuat.", dto.TokenResponse{
		Token:       token,
		RedirectURL: redirectURL,
		OrderID:     order.OrderNumber,
	})
}

/* =========================================================
   Webhook: donasi
========================================================= */

// 🟢 HANDLE DONATION NOTIFICATION: webhook Midtrans untuk donasi.
// Duplikat & status tak dikenal di-ack 200 supaya gateway berhenti
// retry; order_id cacat ditolak tanpa mutasi apa pun.
func (ctrl *PaymentController) HandleDonationNotification(c *fiber.Ctx) error {
	var notif dto.GatewayNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid webhook payload")
	}
	if notif.OrderID == "" || notif.TransactionStatus == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Payload webhook tidak lengkap")
	}

	donationID, _, err := paymentService.ParseDonationOrderRef(notif.OrderID)
	if err != nil {
		log.Println("[WARN] Order ref cacat di webhook:", notif.OrderID)
		ctrl.recordEvent(c, model.GatewayEventTargetDonation, notif, model.GatewayEventOutcomeRejected)
		return helper.Error(c, fiber.StatusBadRequest, "Invalid order reference")
	}

	var res *donationService.TransitionResult
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		svc := donationService.NewTransitioner(tx)
		var err error
		res, err = svc.ApplyGatewayStatus(c.UserContext(), donationID, notif.TransactionStatus, notif.FraudStatus)
		return err
	})
	if txErr != nil {
		if errors.Is(txErr, donationService.ErrDonationNotFound) {
			ctrl.recordEvent(c, model.GatewayEventTargetDonation, notif, model.GatewayEventOutcomeRejected)
			return helper.Error(c, fiber.StatusNotFound, "Donation not found")
		}
		log.Println("[ERROR] Webhook donasi gagal:", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses notifikasi")
	}

	ctrl.recordEvent(c, model.GatewayEventTargetDonation, notif, outcomeOf(res))

	switch {
	case res.Duplicate:
		return helper.Success(c, "ok (duplicate)", nil)
	case res.Ignored:
		return helper.Success(c, "ok (ignored)", nil)
	default:
		return helper.Success(c, "ok", nil)
	}
}

/* =========================================================
   Webhook: order toko
========================================================= */

// 🟢 HANDLE ORDER NOTIFICATION: webhook Midtrans untuk order toko.
func (ctrl *PaymentController) HandleOrderNotification(c *fiber.Ctx) error {
	var notif dto.GatewayNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid webhook payload")
	}
	if notif.OrderID == "" || notif.TransactionStatus == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Payload webhook tidak lengkap")
	}

	var duplicate, ignored bool
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var order orderModel.Order
		if err := tx.Where("order_number = ?", notif.OrderID).First(&order).Error; err != nil {
			return err
		}
		changed, dup, ign := orderService.ApplyGatewayStatus(&order, notif.TransactionStatus, notif.FraudStatus)
		duplicate, ignored = dup, ign
		if !changed {
			return nil
		}
		return tx.Save(&order).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			ctrl.recordEvent(c, model.GatewayEventTargetOrder, notif, model.GatewayEventOutcomeRejected)
			return helper.Error(c, fiber.StatusNotFound, "Order not found")
		}
		log.Println("[ERROR] Webhook order gagal:", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses notifikasi")
	}

	outcome := model.GatewayEventOutcomeApplied
	if duplicate {
		outcome = model.GatewayEventOutcomeDuplicate
	} else if ignored {
		outcome = model.GatewayEventOutcomeIgnored
	}
	ctrl.recordEvent(c, model.GatewayEventTargetOrder, notif, outcome)

	switch {
	case duplicate:
		return helper.Success(c, "ok (duplicate)", nil)
	case ignored:
		return helper.Success(c, "ok (ignored)", nil)
	default:
		return helper.Success(c, "ok", nil)
	}
}

/* =========================================================
   Status poll (reconciliation kalau notifikasi terlewat)
========================================================= */

// 🟢 CHECK DONATION STATUS: tanya Core API, terapkan mapping yang sama,
// balas status record lokal terkini.
func (ctrl *PaymentController) CheckDonationStatus(c *fiber.Ctx) error {
	orderRef := c.Query("order_id")
	if orderRef == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Order ID is required")
	}

	donationID, _, err := paymentService.ParseDonationOrderRef(orderRef)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid order reference")
	}

	transactionStatus, fraudStatus, err := paymentService.CheckTransactionStatus(ctrl.Core, orderRef)
	if err != nil {
		log.Println("[ERROR] Midtrans status check (donation):", err)
		return helper.Error(c, fiber.StatusBadGateway, "Payment gateway error")
	}

	var res *donationService.TransitionResult
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		svc := donationService.NewTransitioner(tx)
		var err error
		res, err = svc.ApplyGatewayStatus(c.UserContext(), donationID, transactionStatus, fraudStatus)
		return err
	})
	if txErr != nil {
		if errors.Is(txErr, donationService.ErrDonationNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Donation not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses status")
	}

	return helper.Success(c, "Status pembayaran donasi", dto.StatusResponse{
		Status:        res.Donation.DonationPaymentStatus,
		OrderID:       orderRef,
		Amount:        res.Donation.DonationAmount,
		PaymentMethod: res.Donation.DonationPaymentMethod,
	})
}

// 🟢 CHECK ORDER STATUS: versi order toko.
func (ctrl *PaymentController) CheckOrderStatus(c *fiber.Ctx) error {
	orderNumber := c.Query("order_id")
	if orderNumber == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Order ID is required")
	}

	transactionStatus, fraudStatus, err := paymentService.CheckTransactionStatus(ctrl.Core, orderNumber)
	if err != nil {
		log.Println("[ERROR] Midtrans status check (order):", err)
		return helper.Error(c, fiber.StatusBadGateway, "Payment gateway error")
	}

	var order orderModel.Order
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
			return err
		}
		changed, _, _ := orderService.ApplyGatewayStatus(&order, transactionStatus, fraudStatus)
		if !changed {
			return nil
		}
		return tx.Save(&order).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Order not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses status")
	}

	return helper.Success(c, "Status pembayaran order", dto.StatusResponse{
		Status:        order.OrderPaymentStatus,
		OrderID:       order.OrderNumber,
		Amount:        order.OrderTotalAmount,
		PaymentMethod: order.OrderPaymentMethod,
	})
}

/* =========================================================
   Helpers
========================================================= */

func outcomeOf(res *donationService.TransitionResult) string {
	switch {
	case res.Duplicate:
		return model.GatewayEventOutcomeDuplicate
	case res.Ignored:
		return model.GatewayEventOutcomeIgnored
	default:
		return model.GatewayEventOutcomeApplied
	}
}

// recordEvent menyimpan jejak webhook untuk audit. Best effort: kegagalan
// audit tidak boleh menggagalkan ack ke gateway.
func (ctrl *PaymentController) recordEvent(c *fiber.Ctx, target string, notif dto.GatewayNotification, outcome string) {
	var raw map[string]interface{}
	_ = c.BodyParser(&raw)

	event := model.PaymentGatewayEvent{
		GatewayEventProvider:          "midtrans",
		GatewayEventTarget:            target,
		GatewayEventOrderRef:          notif.OrderID,
		GatewayEventTransactionStatus: notif.TransactionStatus,
		GatewayEventOutcome:           outcome,
		GatewayEventPayload:           datatypes.JSONMap(raw),
	}
	if notif.FraudStatus != "" {
		fs := notif.FraudStatus
		event.GatewayEventFraudStatus = &fs
	}

	if err := ctrl.DB.Create(&event).Error; err != nil {
		log.Println("[WARN] Gagal menyimpan gateway event:", err)
	}
}
