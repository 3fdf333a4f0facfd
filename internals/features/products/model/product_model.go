package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Product struct {
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;default:gen_random_uuid();primaryKey" json:"product_id"`

	ProductTitle       string `gorm:"column:product_title;type:varchar(100);not null" json:"product_title"`
	ProductSlug        string `gorm:"column:product_slug;type:varchar(100);not null;unique" json:"product_slug"`
	ProductDescription string `gorm:"column:product_description;type:text" json:"product_description"`

	// Harga dalam IDR (tanpa sen)
	ProductPrice int64 `gorm:"column:product_price;not null;check:product_price >= 0" json:"product_price"`
	ProductStock int   `gorm:"column:product_stock;not null;default:0;check:product_stock >= 0" json:"product_stock"`

	ProductImages pq.StringArray `gorm:"column:product_images;type:text[]" json:"product_images"`

	ProductIsActive bool `gorm:"column:product_is_active;not null;default:true" json:"product_is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Product) TableName() string { return "products" }
