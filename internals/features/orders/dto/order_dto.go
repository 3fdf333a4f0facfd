package dto

import "github.com/google/uuid"

// CreateOrderRequest: checkout isi keranjang user login.
type CreateOrderRequest struct {
	ShippingAddressID uuid.UUID `json:"shipping_address_id" validate:"required"`
	CouponCode        string    `json:"coupon_code,omitempty"`
	PaymentMethod     string    `json:"payment_method" validate:"required,oneof=bsi bjb midtrans"`
}
