// 📁 controller/course_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"barakahku_backend/internals/features/courses/dto"
	"barakahku_backend/internals/features/courses/model"
	helper "barakahku_backend/internals/helpers"
)

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// 🟢 LIST COURSES: katalog kajian/kursus aktif.
func (ctrl *CourseController) ListCourses(c *fiber.Ctx) error {
	db := ctrl.DB.Model(&model.Course{}).Where("course_is_active = true")

	if c.Query("free") == "true" {
		db = db.Where("course_price = 0")
	}

	paging := helper.ResolvePaging(c, 12, 100)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kursus")
	}

	var courses []model.Course
	if err := db.Order("created_at desc").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&courses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kursus")
	}

	return c.JSON(fiber.Map{
		"data":       courses,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// 🟢 GET COURSE BY SLUG
func (ctrl *CourseController) GetCourseBySlug(c *fiber.Ctx) error {
	var course model.Course
	if err := ctrl.DB.First(&course, "course_slug = ?", c.Params("slug")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kursus")
	}
	return c.JSON(course)
}

/* ================= Admin ================= */

// 🟢 CREATE COURSE
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	base := helper.GenerateSlug(body.Title)
	if base == "" {
		base = "course"
	}
	slug, err := helper.EnsureUniqueSlug(ctrl.DB, base, "courses", "course_slug")
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}

	course := model.Course{
		CourseTitle:        body.Title,
		CourseSlug:         slug,
		CourseDescription:  body.Description,
		CourseMentor:       body.Mentor,
		CoursePrice:        body.Price,
		CourseThumbnailURL: body.ThumbnailURL,
		CourseIsActive:     true,
	}
	if err := ctrl.DB.Create(&course).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kursus")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kursus berhasil dibuat", course)
}

// 🟢 UPDATE COURSE
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}

	var body dto.UpdateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var course model.Course
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kursus")
	}

	if body.Title != nil && *body.Title != course.CourseTitle {
		course.CourseTitle = *body.Title
		base := helper.GenerateSlug(*body.Title)
		if base == "" {
			base = "course"
		}
		slug, err := helper.EnsureUniqueSlug(ctrl.DB, base, "courses", "course_slug")
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
		course.CourseSlug = slug
	}
	if body.Description != nil {
		course.CourseDescription = *body.Description
	}
	if body.Mentor != nil {
		course.CourseMentor = *body.Mentor
	}
	if body.Price != nil {
		course.CoursePrice = *body.Price
	}
	if body.ThumbnailURL != nil {
		course.CourseThumbnailURL = body.ThumbnailURL
	}
	if body.IsActive != nil {
		course.CourseIsActive = *body.IsActive
	}

	if err := ctrl.DB.Save(&course).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kursus")
	}

	return helper.Success(c, "Kursus berhasil diperbarui", course)
}

// 🟢 DELETE COURSE
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}

	res := ctrl.DB.Delete(&model.Course{}, "course_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus kursus")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Course not found")
	}

	return helper.Success(c, "Kursus berhasil dihapus", nil)
}
