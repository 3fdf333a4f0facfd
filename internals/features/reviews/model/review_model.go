package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review: ulasan produk. Satu ulasan per (user, product).
type Review struct {
	ReviewID uuid.UUID `gorm:"column:review_id;type:uuid;default:gen_random_uuid();primaryKey" json:"review_id"`

	ReviewProductID uuid.UUID `gorm:"column:review_product_id;type:uuid;not null;index:idx_review_product_user,unique" json:"review_product_id"`
	ReviewUserID    uuid.UUID `gorm:"column:review_user_id;type:uuid;not null;index:idx_review_product_user,unique" json:"review_user_id"`

	ReviewRating  int    `gorm:"column:review_rating;not null;check:review_rating BETWEEN 1 AND 5" json:"review_rating"`
	ReviewComment string `gorm:"column:review_comment;type:text" json:"review_comment"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Review) TableName() string { return "reviews" }
