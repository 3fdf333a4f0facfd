package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"barakahku_backend/internals/features/orders/model"
)

func TestMapGatewayStatus_Orders(t *testing.T) {
	tests := []struct {
		transactionStatus string
		fraudStatus       string
		want              string
		wantOK            bool
	}{
		{"capture", "accept", model.OrderPayStatusConfirmed, true},
		{"capture", "challenge", "", false},
		{"settlement", "", model.OrderPayStatusConfirmed, true},
		{"cancel", "", model.OrderPayStatusFailed, true},
		{"deny", "", model.OrderPayStatusFailed, true},
		{"expire", "", model.OrderPayStatusFailed, true},
		{"pending", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		got, ok := MapGatewayStatus(tt.transactionStatus, tt.fraudStatus)
		assert.Equal(t, tt.wantOK, ok, "status=%q fraud=%q", tt.transactionStatus, tt.fraudStatus)
		assert.Equal(t, tt.want, got)
	}
}

func TestApplyGatewayStatus_Order(t *testing.T) {
	o := &model.Order{OrderPaymentStatus: model.OrderPayStatusPending}

	changed, duplicate, ignored := ApplyGatewayStatus(o, "settlement", "")
	assert.True(t, changed)
	assert.False(t, duplicate)
	assert.False(t, ignored)
	assert.Equal(t, model.OrderPayStatusConfirmed, o.OrderPaymentStatus)
	assert.NotNil(t, o.OrderPaidAt)

	// notifikasi ulang setelah terminal = duplikat, tanpa mutasi
	paidAt := o.OrderPaidAt
	changed, duplicate, ignored = ApplyGatewayStatus(o, "settlement", "")
	assert.False(t, changed)
	assert.True(t, duplicate)
	assert.False(t, ignored)
	assert.Equal(t, paidAt, o.OrderPaidAt)
}

func TestApplyGatewayStatus_Order_Unknown(t *testing.T) {
	o := &model.Order{OrderPaymentStatus: model.OrderPayStatusPending}

	changed, duplicate, ignored := ApplyGatewayStatus(o, "refund", "")
	assert.False(t, changed)
	assert.False(t, duplicate)
	assert.True(t, ignored)
	assert.Equal(t, model.OrderPayStatusPending, o.OrderPaymentStatus)
}

func TestCanFulfill_UnpaidOrderBlocked(t *testing.T) {
	unpaid := &model.Order{
		OrderStatus:        model.OrderStatusPending,
		OrderPaymentStatus: model.OrderPayStatusPending,
	}

	// alur pengiriman butuh pembayaran confirmed
	assert.False(t, CanFulfill(unpaid, model.OrderStatusPacked))
	assert.False(t, CanFulfill(unpaid, model.OrderStatusShipped))
	assert.False(t, CanFulfill(unpaid, model.OrderStatusDelivered))

	// batal / kembali ke pending tetap boleh
	assert.True(t, CanFulfill(unpaid, model.OrderStatusCancelled))
	assert.True(t, CanFulfill(unpaid, model.OrderStatusPending))

	failed := &model.Order{OrderPaymentStatus: model.OrderPayStatusFailed}
	assert.False(t, CanFulfill(failed, model.OrderStatusShipped))
	assert.True(t, CanFulfill(failed, model.OrderStatusCancelled))
}

func TestCanFulfill_PaidOrder(t *testing.T) {
	paid := &model.Order{OrderPaymentStatus: model.OrderPayStatusConfirmed}

	assert.True(t, CanFulfill(paid, model.OrderStatusPacked))
	assert.True(t, CanFulfill(paid, model.OrderStatusShipped))
	assert.True(t, CanFulfill(paid, model.OrderStatusDelivered))
	assert.True(t, CanFulfill(paid, model.OrderStatusCancelled))
}

func TestApplyGatewayStatus_Order_Expire(t *testing.T) {
	o := &model.Order{OrderPaymentStatus: model.OrderPayStatusPending}

	changed, _, _ := ApplyGatewayStatus(o, "expire", "")
	assert.True(t, changed)
	assert.Equal(t, model.OrderPayStatusFailed, o.OrderPaymentStatus)
	assert.Nil(t, o.OrderPaidAt)
}
