package service

import (
	"time"

	"barakahku_backend/internals/features/orders/model"
)

/* =========================================================
   Status pembayaran order: pending → confirmed | failed,
   vocabulary gateway sama dengan donasi.
========================================================= */

// MapGatewayStatus memetakan transaction_status Midtrans ke status
// pembayaran order. ok=false = status tak dikenal, jangan proses.
func MapGatewayStatus(transactionStatus, fraudStatus string) (string, bool) {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			return model.OrderPayStatusConfirmed, true
		}
		return "", false
	case "settlement":
		return model.OrderPayStatusConfirmed, true
	case "cancel", "deny", "expire":
		return model.OrderPayStatusFailed, true
	default:
		return "", false
	}
}

func IsTerminal(status string) bool {
	return status == model.OrderPayStatusConfirmed || status == model.OrderPayStatusFailed
}

// CanFulfill menjawab apakah order boleh dipindah ke status pengiriman
// target. Packed/shipped/delivered butuh pembayaran confirmed;
// pending dan cancelled boleh kapan saja.
func CanFulfill(o *model.Order, target string) bool {
	switch target {
	case model.OrderStatusPacked, model.OrderStatusShipped, model.OrderStatusDelivered:
		return o.IsPaid()
	default:
		return true
	}
}

// ApplyGatewayStatus menerapkan status gateway ke order (in-memory).
// Caller yang menyimpan ke DB di dalam transaksi.
func ApplyGatewayStatus(o *model.Order, transactionStatus, fraudStatus string) (changed, duplicate, ignored bool) {
	target, ok := MapGatewayStatus(transactionStatus, fraudStatus)
	if !ok {
		return false, false, true
	}
	if IsTerminal(o.OrderPaymentStatus) {
		return false, true, false
	}

	o.OrderPaymentStatus = target
	if target == model.OrderPayStatusConfirmed {
		now := time.Now()
		o.OrderPaidAt = &now
	}
	return true, false, false
}
