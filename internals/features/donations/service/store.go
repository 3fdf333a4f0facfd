package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"barakahku_backend/internals/features/donations/model"
)

var ErrDonationNotFound = errors.New("donation not found")

// DonationStore memisahkan transisi status dari GORM supaya bisa diuji
// tanpa DB hidup.
type DonationStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Donation, error)
	Save(ctx context.Context, d *model.Donation) error
	Delete(ctx context.Context, d *model.Donation) error
}

type GormDonationStore struct {
	DB *gorm.DB
}

func NewGormDonationStore(db *gorm.DB) *GormDonationStore {
	return &GormDonationStore{DB: db}
}

func (s *GormDonationStore) FindByID(ctx context.Context, id uuid.UUID) (*model.Donation, error) {
	var d model.Donation
	if err := s.DB.WithContext(ctx).
		First(&d, "donation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (s *GormDonationStore) Save(ctx context.Context, d *model.Donation) error {
	return s.DB.WithContext(ctx).Save(d).Error
}

func (s *GormDonationStore) Delete(ctx context.Context, d *model.Donation) error {
	return s.DB.WithContext(ctx).Delete(d).Error
}
