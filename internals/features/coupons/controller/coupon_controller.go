// 📁 controller/coupon_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"barakahku_backend/internals/features/coupons/dto"
	"barakahku_backend/internals/features/coupons/model"
	helper "barakahku_backend/internals/helpers"
)

type CouponController struct {
	DB *gorm.DB
}

func NewCouponController(db *gorm.DB) *CouponController {
	return &CouponController{DB: db}
}

// 🟢 LOOKUP COUPON: cek kupon berdasarkan kode (dipakai halaman checkout).
// Kupon kadaluarsa/nonaktif dijawab 404 supaya kode valid tidak bisa di-enumerate.
func (ctrl *CouponController) LookupCoupon(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	if code == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Kode kupon wajib diisi")
	}

	var coupon model.Coupon
	if err := ctrl.DB.First(&coupon, "coupon_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Coupon not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kupon")
	}

	if !coupon.IsValidAt(time.Now()) {
		return helper.Error(c, fiber.StatusNotFound, "Coupon not found")
	}

	return c.JSON(fiber.Map{
		"code":            coupon.CouponCode,
		"discount_amount": coupon.CouponDiscountAmount,
	})
}

/* ================= Admin ================= */

// 🟢 LIST COUPONS
func (ctrl *CouponController) ListCoupons(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.Coupon{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kupon")
	}

	var coupons []model.Coupon
	if err := base.Order("created_at desc").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&coupons).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kupon")
	}

	return c.JSON(fiber.Map{
		"data":       coupons,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// 🟢 CREATE COUPON: kode disimpan uppercase.
func (ctrl *CouponController) CreateCoupon(c *fiber.Ctx) error {
	var body dto.CreateCouponRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	coupon := model.Coupon{
		CouponCode:           strings.ToUpper(strings.TrimSpace(body.Code)),
		CouponDiscountAmount: body.DiscountAmount,
		CouponValidFrom:      body.ValidFrom,
		CouponValidUntil:     body.ValidUntil,
		CouponIsActive:       true,
	}
	if err := ctrl.DB.Create(&coupon).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kupon")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kupon berhasil dibuat", coupon)
}

// 🟢 UPDATE COUPON
func (ctrl *CouponController) UpdateCoupon(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kupon tidak valid")
	}

	var body dto.UpdateCouponRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var coupon model.Coupon
	if err := ctrl.DB.First(&coupon, "coupon_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Coupon not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kupon")
	}

	if body.DiscountAmount != nil {
		coupon.CouponDiscountAmount = *body.DiscountAmount
	}
	if body.ValidFrom != nil {
		coupon.CouponValidFrom = body.ValidFrom
	}
	if body.ValidUntil != nil {
		coupon.CouponValidUntil = body.ValidUntil
	}
	if body.IsActive != nil {
		coupon.CouponIsActive = *body.IsActive
	}

	if err := ctrl.DB.Save(&coupon).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kupon")
	}

	return helper.Success(c, "Kupon berhasil diperbarui", coupon)
}

// 🟢 DELETE COUPON
func (ctrl *CouponController) DeleteCoupon(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kupon tidak valid")
	}

	res := ctrl.DB.Delete(&model.Coupon{}, "coupon_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus kupon")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Coupon not found")
	}

	return helper.Success(c, "Kupon berhasil dihapus", nil)
}
