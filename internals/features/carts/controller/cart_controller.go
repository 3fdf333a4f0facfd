// 📁 controller/cart_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"barakahku_backend/internals/features/carts/dto"
	"barakahku_backend/internals/features/carts/model"
	productModel "barakahku_backend/internals/features/products/model"
	helper "barakahku_backend/internals/helpers"
)

type CartController struct {
	DB *gorm.DB
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{DB: db}
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	return uuid.Parse(raw)
}

// 🟢 GET CART: isi keranjang + total harga.
func (ctrl *CartController) GetCart(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var items []model.CartItem
	if err := ctrl.DB.Preload("Product").
		Where("cart_item_user_id = ?", userID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil keranjang")
	}

	var total int64
	for i := range items {
		if items[i].Product != nil {
			total += items[i].Product.ProductPrice * int64(items[i].CartItemQuantity)
		}
	}

	return c.JSON(fiber.Map{
		"items": items,
		"total": total,
	})
}

// 🟢 ADD CART ITEM: tambah atau akumulasi qty kalau produk sudah di keranjang.
func (ctrl *CartController) AddItem(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.AddCartItemRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var product productModel.Product
	if err := ctrl.DB.
		First(&product, "product_id = ? AND product_is_active = true", body.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}

	var item model.CartItem
	err = ctrl.DB.
		Where("cart_item_user_id = ? AND cart_item_product_id = ?", userID, body.ProductID).
		First(&item).Error
	switch {
	case err == nil:
		item.CartItemQuantity += body.Quantity
		if err := ctrl.DB.Save(&item).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan keranjang")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = model.CartItem{
			CartItemUserID:    userID,
			CartItemProductID: body.ProductID,
			CartItemQuantity:  body.Quantity,
		}
		if err := ctrl.DB.Create(&item).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan keranjang")
		}
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil keranjang")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Produk ditambahkan ke keranjang", item)
}

// 🟢 UPDATE CART ITEM: ganti qty.
func (ctrl *CartController) UpdateItem(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID item tidak valid")
	}

	var body dto.UpdateCartItemRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var item model.CartItem
	if err := ctrl.DB.
		First(&item, "cart_item_id = ? AND cart_item_user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Item not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil keranjang")
	}

	item.CartItemQuantity = body.Quantity
	if err := ctrl.DB.Save(&item).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan keranjang")
	}

	return helper.Success(c, "Keranjang diperbarui", item)
}

// 🟢 REMOVE CART ITEM
func (ctrl *CartController) RemoveItem(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID item tidak valid")
	}

	res := ctrl.DB.Delete(&model.CartItem{}, "cart_item_id = ? AND cart_item_user_id = ?", id, userID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus item")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Item not found")
	}

	return helper.Success(c, "Item dihapus dari keranjang", nil)
}
