// 📁 controller/product_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"barakahku_backend/internals/features/products/dto"
	"barakahku_backend/internals/features/products/model"
	helper "barakahku_backend/internals/helpers"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

/* ================= Publik ================= */

// 🟢 LIST PRODUCTS: katalog aktif + pencarian judul.
func (ctrl *ProductController) ListProducts(c *fiber.Ctx) error {
	db := ctrl.DB.Model(&model.Product{}).Where("product_is_active = true")

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		db = db.Where("product_title ILIKE ?", "%"+q+"%")
	}

	paging := helper.ResolvePaging(c, 12, 100)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}

	var products []model.Product
	if err := db.Order("created_at desc").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&products).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}

	return c.JSON(fiber.Map{
		"data":       products,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// 🟢 GET PRODUCT BY SLUG
func (ctrl *ProductController) GetProductBySlug(c *fiber.Ctx) error {
	var product model.Product
	if err := ctrl.DB.First(&product, "product_slug = ?", c.Params("slug")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}
	return c.JSON(product)
}

/* ================= Admin ================= */

// 🟢 CREATE PRODUCT
func (ctrl *ProductController) CreateProduct(c *fiber.Ctx) error {
	var body dto.CreateProductRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	base := helper.GenerateSlug(body.Title)
	if base == "" {
		base = "product"
	}
	slug, err := helper.EnsureUniqueSlug(ctrl.DB, base, "products", "product_slug")
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}

	product := model.Product{
		ProductTitle:       body.Title,
		ProductSlug:        slug,
		ProductDescription: body.Description,
		ProductPrice:       body.Price,
		ProductStock:       body.Stock,
		ProductImages:      pq.StringArray(body.Images),
		ProductIsActive:    true,
	}
	if err := ctrl.DB.Create(&product).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan produk:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan produk")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Produk berhasil dibuat", product)
}

// 🟢 UPDATE PRODUCT: partial update.
func (ctrl *ProductController) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID produk tidak valid")
	}

	var body dto.UpdateProductRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var product model.Product
	if err := ctrl.DB.First(&product, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}

	if body.Title != nil && *body.Title != product.ProductTitle {
		product.ProductTitle = *body.Title
		base := helper.GenerateSlug(*body.Title)
		if base == "" {
			base = "product"
		}
		slug, err := helper.EnsureUniqueSlug(ctrl.DB, base, "products", "product_slug")
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
		product.ProductSlug = slug
	}
	if body.Description != nil {
		product.ProductDescription = *body.Description
	}
	if body.Price != nil {
		product.ProductPrice = *body.Price
	}
	if body.Stock != nil {
		product.ProductStock = *body.Stock
	}
	if body.Images != nil {
		product.ProductImages = pq.StringArray(*body.Images)
	}
	if body.IsActive != nil {
		product.ProductIsActive = *body.IsActive
	}

	if err := ctrl.DB.Save(&product).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan produk")
	}

	return helper.Success(c, "Produk berhasil diperbarui", product)
}

// 🟢 DELETE PRODUCT (soft delete)
func (ctrl *ProductController) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID produk tidak valid")
	}

	res := ctrl.DB.Delete(&model.Product{}, "product_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus produk")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Product not found")
	}

	return helper.Success(c, "Produk berhasil dihapus", nil)
}
