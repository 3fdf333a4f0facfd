// 📁 controller/profile_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"barakahku_backend/internals/features/profiles/dto"
	"barakahku_backend/internals/features/profiles/model"
	helper "barakahku_backend/internals/helpers"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// 🟢 GET MY PROFILE
func (ctrl *ProfileController) GetMyProfile(c *fiber.Ctx) error {
	raw, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var profile model.Profile
	if err := ctrl.DB.First(&profile, "profile_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Profile not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	return c.JSON(profile)
}

// 🟢 UPDATE MY PROFILE: upsert, profil dibuat saat pertama kali diisi.
func (ctrl *ProfileController) UpdateMyProfile(c *fiber.Ctx) error {
	raw, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var profile model.Profile
	err = ctrl.DB.First(&profile, "profile_user_id = ?", userID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	isNew := errors.Is(err, gorm.ErrRecordNotFound)
	if isNew {
		profile = model.Profile{ProfileUserID: userID}
	}

	if body.Name != nil {
		profile.ProfileName = *body.Name
	}
	if body.Phone != nil {
		profile.ProfilePhone = *body.Phone
	}
	if body.Address != nil {
		profile.ProfileAddress = *body.Address
	}
	if body.AvatarURL != nil {
		profile.ProfileAvatarURL = body.AvatarURL
	}

	if isNew {
		if profile.ProfileName == "" {
			return helper.Error(c, fiber.StatusBadRequest, "Nama wajib diisi")
		}
		if err := ctrl.DB.Create(&profile).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan profil")
		}
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Profil dibuat", profile)
	}

	if err := ctrl.DB.Save(&profile).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan profil")
	}

	return helper.Success(c, "Profil diperbarui", profile)
}
