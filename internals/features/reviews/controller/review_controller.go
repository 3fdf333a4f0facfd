// 📁 controller/review_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	productModel "barakahku_backend/internals/features/products/model"
	"barakahku_backend/internals/features/reviews/dto"
	"barakahku_backend/internals/features/reviews/model"
	helper "barakahku_backend/internals/helpers"
)

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

// 🟢 LIST REVIEWS: ulasan per produk (publik) + rata-rata rating.
func (ctrl *ReviewController) ListByProduct(c *fiber.Ctx) error {
	var product productModel.Product
	if err := ctrl.DB.First(&product, "product_slug = ?", c.Params("slug")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}

	paging := helper.ResolvePaging(c, 10, 100)

	base := ctrl.DB.Model(&model.Review{}).Where("review_product_id = ?", product.ProductID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil ulasan")
	}

	var avgRating float64
	if err := base.Select("COALESCE(AVG(review_rating), 0)").Scan(&avgRating).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil ulasan")
	}

	var reviews []model.Review
	if err := ctrl.DB.
		Where("review_product_id = ?", product.ProductID).
		Order("created_at desc").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&reviews).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil ulasan")
	}

	return c.JSON(fiber.Map{
		"data":       reviews,
		"avg_rating": avgRating,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// 🟢 CREATE REVIEW: satu ulasan per user per produk; ulasan ulang menimpa.
func (ctrl *ReviewController) CreateReview(c *fiber.Ctx) error {
	raw, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateReviewRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var product productModel.Product
	if err := ctrl.DB.First(&product, "product_slug = ?", c.Params("slug")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}

	var review model.Review
	err = ctrl.DB.
		Where("review_product_id = ? AND review_user_id = ?", product.ProductID, userID).
		First(&review).Error
	switch {
	case err == nil:
		review.ReviewRating = body.Rating
		review.ReviewComment = body.Comment
		if err := ctrl.DB.Save(&review).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan ulasan")
		}
		return helper.Success(c, "Ulasan diperbarui", review)
	case errors.Is(err, gorm.ErrRecordNotFound):
		review = model.Review{
			ReviewProductID: product.ProductID,
			ReviewUserID:    userID,
			ReviewRating:    body.Rating,
			ReviewComment:   body.Comment,
		}
		if err := ctrl.DB.Create(&review).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan ulasan")
		}
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Ulasan disimpan", review)
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil ulasan")
	}
}

// 🟢 DELETE REVIEW: user hapus ulasannya sendiri.
func (ctrl *ReviewController) DeleteReview(c *fiber.Ctx) error {
	raw, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID ulasan tidak valid")
	}

	res := ctrl.DB.Delete(&model.Review{}, "review_id = ? AND review_user_id = ?", id, userID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus ulasan")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Review not found")
	}

	return helper.Success(c, "Ulasan dihapus", nil)
}
