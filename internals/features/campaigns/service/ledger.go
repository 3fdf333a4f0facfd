package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   Funding Ledger

   campaign_current_amount adalah cache turunan: nilainya harus
   selalu sama dengan SUM(donation_amount) untuk donasi confirmed.
   Recompute membaca ulang seluruh set confirmed (bukan increment),
   jadi aman terhadap insert/delete paralel selama dipanggil di
   dalam transaksi yang sama dengan perubahan status donasi.
========================================================= */

// LedgerStore memisahkan ledger dari GORM supaya bisa diuji tanpa DB.
type LedgerStore interface {
	// SumConfirmed menjumlahkan donasi confirmed (termasuk alias lama
	// "verified") untuk satu kampanye. Tanpa baris = 0, bukan error.
	SumConfirmed(ctx context.Context, campaignID uuid.UUID) (int64, error)

	// UpdateCurrentAmount menulis hasil agregasi ke kolom cache kampanye.
	UpdateCurrentAmount(ctx context.Context, campaignID uuid.UUID, amount int64) error
}

type Ledger struct {
	store LedgerStore
}

func NewLedger(store LedgerStore) *Ledger {
	return &Ledger{store: store}
}

// Recompute menghitung ulang total donasi confirmed sebuah kampanye dan
// menuliskannya ke campaign_current_amount. Dipanggil tepat satu kali per
// transisi status donasi, di dalam transaksi yang sama dengan transisinya.
func (l *Ledger) Recompute(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	total, err := l.store.SumConfirmed(ctx, campaignID)
	if err != nil {
		return 0, err
	}
	if total < 0 {
		total = 0
	}
	if err := l.store.UpdateCurrentAmount(ctx, campaignID, total); err != nil {
		return 0, err
	}
	return total, nil
}

/* =========================================================
   Derived reads (dipakai DTO response kampanye)
========================================================= */

// ProgressPercentage menghitung persentase progres dana, dibatasi 100.
// Target 0 → 0 (hindari pembagian nol).
func ProgressPercentage(current, target int64) float64 {
	if target == 0 {
		return 0
	}
	pct := float64(current) / float64(target) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// IsExpired: kampanye tanpa deadline tidak pernah kedaluwarsa.
func IsExpired(deadline *time.Time, now time.Time) bool {
	if deadline == nil {
		return false
	}
	return now.After(*deadline)
}

func HasUnlimitedDeadline(deadline *time.Time) bool {
	return deadline == nil
}
