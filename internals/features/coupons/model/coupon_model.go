package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Coupon struct {
	CouponID uuid.UUID `gorm:"column:coupon_id;type:uuid;default:gen_random_uuid();primaryKey" json:"coupon_id"`

	CouponCode string `gorm:"column:coupon_code;type:varchar(50);not null;unique" json:"coupon_code"`

	// Potongan nominal dalam IDR
	CouponDiscountAmount int64 `gorm:"column:coupon_discount_amount;not null;check:coupon_discount_amount > 0" json:"coupon_discount_amount"`

	CouponValidFrom  *time.Time `gorm:"column:coupon_valid_from" json:"coupon_valid_from,omitempty"`
	CouponValidUntil *time.Time `gorm:"column:coupon_valid_until" json:"coupon_valid_until,omitempty"`

	CouponIsActive bool `gorm:"column:coupon_is_active;not null;default:true" json:"coupon_is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Coupon) TableName() string { return "coupons" }

// IsValidAt: aktif dan berada di dalam jendela berlakunya.
// Batas nil berarti tidak dibatasi di sisi itu.
func (cp *Coupon) IsValidAt(now time.Time) bool {
	if !cp.CouponIsActive {
		return false
	}
	if cp.CouponValidFrom != nil && now.Before(*cp.CouponValidFrom) {
		return false
	}
	if cp.CouponValidUntil != nil && now.After(*cp.CouponValidUntil) {
		return false
	}
	return true
}
