// 📁 controller/wishlist_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	productModel "barakahku_backend/internals/features/products/model"
	"barakahku_backend/internals/features/wishlists/dto"
	"barakahku_backend/internals/features/wishlists/model"
	helper "barakahku_backend/internals/helpers"
)

type WishlistController struct {
	DB *gorm.DB
}

func NewWishlistController(db *gorm.DB) *WishlistController {
	return &WishlistController{DB: db}
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	return uuid.Parse(raw)
}

// 🟢 GET WISHLIST: daftar produk incaran user.
func (ctrl *WishlistController) GetWishlist(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var items []model.WishlistItem
	if err := ctrl.DB.Preload("Product").
		Where("wishlist_item_user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil incaran")
	}

	return c.JSON(fiber.Map{"items": items})
}

// 🟢 ADD WISHLIST ITEM: satu produk hanya bisa diincar sekali.
func (ctrl *WishlistController) AddItem(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.AddWishlistItemRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var product productModel.Product
	if err := ctrl.DB.
		First(&product, "product_id = ?", body.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}

	var existing model.WishlistItem
	err = ctrl.DB.
		Where("wishlist_item_user_id = ? AND wishlist_item_product_id = ?", userID, body.ProductID).
		First(&existing).Error
	switch {
	case err == nil:
		return helper.Error(c, fiber.StatusBadRequest, "Produk sudah ada di incaran")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil incaran")
	}

	item := model.WishlistItem{
		WishlistItemUserID:    userID,
		WishlistItemProductID: body.ProductID,
	}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan incaran")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Produk ditambahkan ke incaran", item)
}

// 🟢 REMOVE WISHLIST ITEM: hapus berdasarkan produk, scoped ke user.
func (ctrl *WishlistController) RemoveItem(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	productID, err := uuid.Parse(c.Params("product_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID produk tidak valid")
	}

	res := ctrl.DB.Delete(&model.WishlistItem{},
		"wishlist_item_user_id = ? AND wishlist_item_product_id = ?", userID, productID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus incaran")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Item not found")
	}

	return helper.Success(c, "Produk dihapus dari incaran", nil)
}
