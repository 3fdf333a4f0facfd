package model

import (
	"time"

	"github.com/google/uuid"

	productModel "barakahku_backend/internals/features/products/model"
)

// CartItem: satu baris keranjang per (user, product).
type CartItem struct {
	CartItemID uuid.UUID `gorm:"column:cart_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"cart_item_id"`

	CartItemUserID    uuid.UUID `gorm:"column:cart_item_user_id;type:uuid;not null;index:idx_cart_user_product,unique" json:"cart_item_user_id"`
	CartItemProductID uuid.UUID `gorm:"column:cart_item_product_id;type:uuid;not null;index:idx_cart_user_product,unique" json:"cart_item_product_id"`

	CartItemQuantity int `gorm:"column:cart_item_quantity;not null;check:cart_item_quantity > 0" json:"cart_item_quantity"`

	Product *productModel.Product `gorm:"foreignKey:CartItemProductID;references:ProductID" json:"product,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CartItem) TableName() string { return "cart_items" }
