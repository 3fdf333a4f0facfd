// 📁 controller/shipping_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"barakahku_backend/internals/features/shippings/dto"
	"barakahku_backend/internals/features/shippings/model"
	helper "barakahku_backend/internals/helpers"
)

type ShippingController struct {
	DB *gorm.DB
}

func NewShippingController(db *gorm.DB) *ShippingController {
	return &ShippingController{DB: db}
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	return uuid.Parse(raw)
}

// 🟢 LIST ADDRESSES: buku alamat user login, default di atas.
func (ctrl *ShippingController) ListAddresses(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var addresses []model.ShippingAddress
	if err := ctrl.DB.
		Where("shipping_address_user_id = ?", userID).
		Order("shipping_address_is_default desc, created_at desc").
		Find(&addresses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil alamat")
	}

	return c.JSON(fiber.Map{"data": addresses})
}

// 🟢 CREATE ADDRESS: alamat default baru mencopot default lama.
func (ctrl *ShippingController) CreateAddress(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateShippingAddressRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	address := model.ShippingAddress{
		ShippingAddressUserID:     userID,
		ShippingAddressRecipient:  body.Recipient,
		ShippingAddressPhone:      body.Phone,
		ShippingAddressLine:       body.Line,
		ShippingAddressCity:       body.City,
		ShippingAddressProvince:   body.Province,
		ShippingAddressPostalCode: body.PostalCode,
		ShippingAddressIsDefault:  body.IsDefault,
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if body.IsDefault {
			if err := tx.Model(&model.ShippingAddress{}).
				Where("shipping_address_user_id = ? AND shipping_address_is_default = true", userID).
				Update("shipping_address_is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&address).Error
	})
	if txErr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan alamat")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Alamat berhasil disimpan", address)
}

// 🟢 UPDATE ADDRESS
func (ctrl *ShippingController) UpdateAddress(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID alamat tidak valid")
	}

	var body dto.UpdateShippingAddressRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var address model.ShippingAddress
	if err := ctrl.DB.
		First(&address, "shipping_address_id = ? AND shipping_address_user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Address not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil alamat")
	}

	if body.Recipient != nil {
		address.ShippingAddressRecipient = *body.Recipient
	}
	if body.Phone != nil {
		address.ShippingAddressPhone = *body.Phone
	}
	if body.Line != nil {
		address.ShippingAddressLine = *body.Line
	}
	if body.City != nil {
		address.ShippingAddressCity = *body.City
	}
	if body.Province != nil {
		address.ShippingAddressProvince = *body.Province
	}
	if body.PostalCode != nil {
		address.ShippingAddressPostalCode = *body.PostalCode
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if body.IsDefault != nil && *body.IsDefault && !address.ShippingAddressIsDefault {
			if err := tx.Model(&model.ShippingAddress{}).
				Where("shipping_address_user_id = ? AND shipping_address_is_default = true", userID).
				Update("shipping_address_is_default", false).Error; err != nil {
				return err
			}
			address.ShippingAddressIsDefault = true
		}
		if body.IsDefault != nil && !*body.IsDefault {
			address.ShippingAddressIsDefault = false
		}
		return tx.Save(&address).Error
	})
	if txErr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan alamat")
	}

	return helper.Success(c, "Alamat berhasil diperbarui", address)
}

// 🟢 DELETE ADDRESS
func (ctrl *ShippingController) DeleteAddress(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID alamat tidak valid")
	}

	res := ctrl.DB.Delete(&model.ShippingAddress{},
		"shipping_address_id = ? AND shipping_address_user_id = ?", id, userID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus alamat")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Address not found")
	}

	return helper.Success(c, "Alamat berhasil dihapus", nil)
}
