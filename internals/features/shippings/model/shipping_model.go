package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShippingAddress: buku alamat pengiriman per user.
type ShippingAddress struct {
	ShippingAddressID uuid.UUID `gorm:"column:shipping_address_id;type:uuid;default:gen_random_uuid();primaryKey" json:"shipping_address_id"`

	ShippingAddressUserID uuid.UUID `gorm:"column:shipping_address_user_id;type:uuid;not null;index" json:"shipping_address_user_id"`

	ShippingAddressRecipient  string `gorm:"column:shipping_address_recipient;type:varchar(100);not null" json:"shipping_address_recipient"`
	ShippingAddressPhone      string `gorm:"column:shipping_address_phone;type:varchar(15);not null" json:"shipping_address_phone"`
	ShippingAddressLine       string `gorm:"column:shipping_address_line;type:text;not null" json:"shipping_address_line"`
	ShippingAddressCity       string `gorm:"column:shipping_address_city;type:varchar(100);not null" json:"shipping_address_city"`
	ShippingAddressProvince   string `gorm:"column:shipping_address_province;type:varchar(100);not null" json:"shipping_address_province"`
	ShippingAddressPostalCode string `gorm:"column:shipping_address_postal_code;type:varchar(10);not null" json:"shipping_address_postal_code"`

	ShippingAddressIsDefault bool `gorm:"column:shipping_address_is_default;not null;default:false" json:"shipping_address_is_default"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (ShippingAddress) TableName() string { return "shipping_addresses" }
