package dto

import (
	"time"

	"github.com/google/uuid"

	"barakahku_backend/internals/features/campaigns/model"
	"barakahku_backend/internals/features/campaigns/service"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreateCampaignRequest struct {
	Title        string     `json:"title" validate:"required,max=100"`
	Description  string     `json:"description"`
	Category     string     `json:"category" validate:"required,oneof=dhuafa yatim quran qurban palestine education iftar jumat"`
	ThumbnailURL *string    `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
	TargetAmount int64      `json:"target_amount" validate:"gte=0"`
	IsFeatured   bool       `json:"is_featured"`
	Deadline     *time.Time `json:"deadline,omitempty"` // null = tanpa batas waktu
}

type UpdateCampaignRequest struct {
	Title        *string    `json:"title,omitempty" validate:"omitempty,max=100"`
	Description  *string    `json:"description,omitempty"`
	Category     *string    `json:"category,omitempty" validate:"omitempty,oneof=dhuafa yatim quran qurban palestine education iftar jumat"`
	ThumbnailURL *string    `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
	TargetAmount *int64     `json:"target_amount,omitempty" validate:"omitempty,gte=0"`
	IsFeatured   *bool      `json:"is_featured,omitempty"`
	IsActive     *bool      `json:"is_active,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}

type CreateCampaignUpdateRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type CampaignResponse struct {
	CampaignID    uuid.UUID  `json:"campaign_id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	ThumbnailURL  *string    `json:"thumbnail_url,omitempty"`
	TargetAmount  int64      `json:"target_amount"`
	CurrentAmount int64      `json:"current_amount"`
	IsFeatured    bool       `json:"is_featured"`
	IsActive      bool       `json:"is_active"`
	Deadline      *time.Time `json:"deadline,omitempty"`

	// Field turunan ledger
	ProgressPercentage   float64 `json:"progress_percentage"`
	IsExpired            bool    `json:"is_expired"`
	HasUnlimitedDeadline bool    `json:"has_unlimited_deadline"`

	CreatedAt time.Time `json:"created_at"`
}

func FromCampaignModel(m *model.Campaign) *CampaignResponse {
	now := time.Now()
	return &CampaignResponse{
		CampaignID:           m.CampaignID,
		Title:                m.CampaignTitle,
		Slug:                 m.CampaignSlug,
		Description:          m.CampaignDescription,
		Category:             m.CampaignCategory,
		ThumbnailURL:         m.CampaignThumbnailURL,
		TargetAmount:         m.CampaignTargetAmount,
		CurrentAmount:        m.CampaignCurrentAmount,
		IsFeatured:           m.CampaignIsFeatured,
		IsActive:             m.CampaignIsActive,
		Deadline:             m.CampaignDeadline,
		ProgressPercentage:   service.ProgressPercentage(m.CampaignCurrentAmount, m.CampaignTargetAmount),
		IsExpired:            service.IsExpired(m.CampaignDeadline, now),
		HasUnlimitedDeadline: service.HasUnlimitedDeadline(m.CampaignDeadline),
		CreatedAt:            m.CreatedAt,
	}
}
