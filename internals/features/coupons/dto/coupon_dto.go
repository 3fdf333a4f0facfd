package dto

import "time"

type CreateCouponRequest struct {
	Code           string     `json:"code" validate:"required,max=50"`
	DiscountAmount int64      `json:"discount_amount" validate:"required,gt=0"`
	ValidFrom      *time.Time `json:"valid_from,omitempty"`
	ValidUntil     *time.Time `json:"valid_until,omitempty"`
}

type UpdateCouponRequest struct {
	DiscountAmount *int64     `json:"discount_amount,omitempty" validate:"omitempty,gt=0"`
	ValidFrom      *time.Time `json:"valid_from,omitempty"`
	ValidUntil     *time.Time `json:"valid_until,omitempty"`
	IsActive       *bool      `json:"is_active,omitempty"`
}
