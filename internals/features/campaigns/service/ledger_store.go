package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	donationModel "barakahku_backend/internals/features/donations/model"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// GormLedgerStore adalah implementasi LedgerStore di atas GORM.
// Bangun dari *gorm.DB transaksi (tx) supaya recompute ikut atomic
// dengan transisi status donasi.
type GormLedgerStore struct {
	DB *gorm.DB
}

func NewGormLedgerStore(db *gorm.DB) *GormLedgerStore {
	return &GormLedgerStore{DB: db}
}

func (s *GormLedgerStore) SumConfirmed(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	var total int64
	err := s.DB.WithContext(ctx).
		Table("donations").
		Select("COALESCE(SUM(donation_amount), 0)").
		Where("donation_campaign_id = ?", campaignID).
		Where("donation_payment_status IN ?", []string{
			donationModel.DonationStatusConfirmed,
			donationModel.DonationStatusLegacyVerified,
		}).
		Where("deleted_at IS NULL").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *GormLedgerStore) UpdateCurrentAmount(ctx context.Context, campaignID uuid.UUID, amount int64) error {
	res := s.DB.WithContext(ctx).
		Table("campaigns").
		Where("campaign_id = ?", campaignID).
		Where("deleted_at IS NULL").
		Update("campaign_current_amount", amount)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCampaignNotFound
	}
	return nil
}
