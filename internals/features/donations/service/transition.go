package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	campaignService "barakahku_backend/internals/features/campaigns/service"
	"barakahku_backend/internals/features/donations/model"
)

/* =========================================================
   Transitioner

   Satu-satunya jalur perubahan status donasi + recompute ledger.
   Tidak ada hook save/signal terpisah: setiap transisi memanggil
   Recompute secara eksplisit, sekali, di transaksi yang sama.
   Kalau recompute gagal, seluruh transisi ikut rollback, donasi
   tidak pernah confirmed tanpa ledger ikut terupdate.
========================================================= */

type TransitionResult struct {
	Donation *model.Donation

	// Changed: status benar-benar berubah pada panggilan ini.
	Changed bool
	// Duplicate: donasi sudah terminal, notifikasi/aksi diperlakukan
	// sebagai no-op sukses (idempotent, tanpa recompute kedua).
	Duplicate bool
	// Ignored: status gateway tidak dikenal, tidak ada mutasi.
	Ignored bool
	// Correction: transisi keluar dari status terminal oleh operator
	// (verify donasi failed, reject donasi confirmed). Ditandai supaya
	// respons admin bisa membedakannya dari alur normal.
	Correction bool

	// NewTotal: campaign_current_amount setelah recompute.
	// Hanya terisi bila Changed.
	NewTotal int64
}

type Transitioner struct {
	donations DonationStore
	ledger    *campaignService.Ledger
}

// NewTransitioner membangun Transitioner di atas sebuah *gorm.DB.
// Pass tx dari db.Transaction supaya transisi + recompute atomic.
func NewTransitioner(db *gorm.DB) *Transitioner {
	return &Transitioner{
		donations: NewGormDonationStore(db),
		ledger:    campaignService.NewLedger(campaignService.NewGormLedgerStore(db)),
	}
}

// NewTransitionerWithStores dipakai test (fake store, tanpa DB).
func NewTransitionerWithStores(d DonationStore, ls campaignService.LedgerStore) *Transitioner {
	return &Transitioner{
		donations: d,
		ledger:    campaignService.NewLedger(ls),
	}
}

// ApplyGatewayStatus menerapkan notifikasi/polling status gateway ke donasi.
func (t *Transitioner) ApplyGatewayStatus(ctx context.Context, donationID uuid.UUID, transactionStatus, fraudStatus string) (*TransitionResult, error) {
	d, err := t.donations.FindByID(ctx, donationID)
	if err != nil {
		return nil, err
	}

	target, ok := MapGatewayStatus(transactionStatus, fraudStatus)
	if !ok {
		log.Printf("[INFO] Status gateway tidak diproses: %q (fraud=%q) donation=%s", transactionStatus, fraudStatus, donationID)
		return &TransitionResult{Donation: d, Ignored: true}, nil
	}

	// Terminal bersifat absorbing: replay notifikasi = no-op sukses.
	if IsTerminal(d.DonationPaymentStatus) {
		log.Printf("[INFO] Notifikasi duplikat untuk donasi terminal %s (status=%s)", donationID, d.DonationPaymentStatus)
		return &TransitionResult{Donation: d, Duplicate: true}, nil
	}

	return t.applyStatus(ctx, d, target)
}

// Verify = operator menyetujui bukti transfer manual (pending → confirmed).
// Memanggil Verify pada donasi yang sudah confirmed adalah no-op sukses.
func (t *Transitioner) Verify(ctx context.Context, donationID uuid.UUID) (*TransitionResult, error) {
	d, err := t.donations.FindByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if IsConfirmed(d.DonationPaymentStatus) {
		return &TransitionResult{Donation: d, Duplicate: true}, nil
	}
	// Verify donasi failed = koreksi administratif, diizinkan secara eksplisit.
	correction := d.DonationPaymentStatus == model.DonationStatusFailed
	res, err := t.applyStatus(ctx, d, model.DonationStatusConfirmed)
	if err != nil {
		return nil, err
	}
	res.Correction = correction
	return res, nil
}

// Reject = operator menolak bukti transfer (→ failed). Reject donasi yang
// sudah confirmed adalah koreksi: total kampanye ikut turun via recompute.
func (t *Transitioner) Reject(ctx context.Context, donationID uuid.UUID) (*TransitionResult, error) {
	d, err := t.donations.FindByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if d.DonationPaymentStatus == model.DonationStatusFailed {
		return &TransitionResult{Donation: d, Duplicate: true}, nil
	}
	correction := IsConfirmed(d.DonationPaymentStatus)
	res, err := t.applyStatus(ctx, d, model.DonationStatusFailed)
	if err != nil {
		return nil, err
	}
	res.Correction = correction
	return res, nil
}

// Delete menghapus (soft delete) donasi lalu recompute kampanyenya.
func (t *Transitioner) Delete(ctx context.Context, donationID uuid.UUID) (*TransitionResult, error) {
	d, err := t.donations.FindByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if err := t.donations.Delete(ctx, d); err != nil {
		return nil, err
	}
	total, err := t.ledger.Recompute(ctx, d.DonationCampaignID)
	if err != nil {
		return nil, err
	}
	return &TransitionResult{Donation: d, Changed: true, NewTotal: total}, nil
}

func (t *Transitioner) applyStatus(ctx context.Context, d *model.Donation, target string) (*TransitionResult, error) {
	d.DonationPaymentStatus = target
	if target == model.DonationStatusConfirmed {
		now := time.Now()
		d.DonationPaidAt = &now
	}
	if err := t.donations.Save(ctx, d); err != nil {
		return nil, err
	}

	total, err := t.ledger.Recompute(ctx, d.DonationCampaignID)
	if err != nil {
		return nil, err
	}
	return &TransitionResult{Donation: d, Changed: true, NewTotal: total}, nil
}
