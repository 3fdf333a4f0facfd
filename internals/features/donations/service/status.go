package service

import (
	"barakahku_backend/internals/features/donations/model"
)

/* =========================================================
   State machine status donasi

   pending → confirmed | failed. Dua-duanya terminal (absorbing):
   notifikasi susulan/duplikat untuk donasi yang sudah terminal
   diabaikan sebagai no-op, jadi tidak perlu sequence number.
========================================================= */

// MapGatewayStatus memetakan vocabulary transaction_status Midtrans ke
// status donasi. ok=false artinya status tidak dikenal dan TIDAK boleh
// memicu transisi apa pun, kode tak dikenal tidak pernah dianggap sukses.
func MapGatewayStatus(transactionStatus, fraudStatus string) (string, bool) {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			return model.DonationStatusConfirmed, true
		}
		// capture + challenge/deny dari FDS: tunggu keputusan berikutnya
		return "", false
	case "settlement":
		return model.DonationStatusConfirmed, true
	case "cancel", "deny", "expire":
		return model.DonationStatusFailed, true
	default:
		// "pending", "challenge", "refund", dan status lain: tidak diproses
		return "", false
	}
}

// IsTerminal: confirmed/failed tidak boleh bertransisi otomatis lagi.
func IsTerminal(status string) bool {
	switch status {
	case model.DonationStatusConfirmed, model.DonationStatusFailed,
		model.DonationStatusLegacyVerified:
		return true
	default:
		return false
	}
}

// IsConfirmed menerima alias lama "verified" sebagai confirmed.
func IsConfirmed(status string) bool {
	return status == model.DonationStatusConfirmed ||
		status == model.DonationStatusLegacyVerified
}
