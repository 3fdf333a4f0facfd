package model

import (
	"time"

	"github.com/google/uuid"

	productModel "barakahku_backend/internals/features/products/model"
)

// WishlistItem: produk incaran. Satu baris per (user, product).
type WishlistItem struct {
	WishlistItemID uuid.UUID `gorm:"column:wishlist_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"wishlist_item_id"`

	WishlistItemUserID    uuid.UUID `gorm:"column:wishlist_item_user_id;type:uuid;not null;index:idx_wishlist_user_product,unique" json:"wishlist_item_user_id"`
	WishlistItemProductID uuid.UUID `gorm:"column:wishlist_item_product_id;type:uuid;not null;index:idx_wishlist_user_product,unique" json:"wishlist_item_product_id"`

	Product *productModel.Product `gorm:"foreignKey:WishlistItemProductID;references:ProductID" json:"product,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (WishlistItem) TableName() string { return "wishlist_items" }
