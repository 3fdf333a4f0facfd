package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	CampaignCategoryDhuafa    = "dhuafa"
	CampaignCategoryYatim     = "yatim"
	CampaignCategoryQuran     = "quran"
	CampaignCategoryQurban    = "qurban"
	CampaignCategoryPalestine = "palestine"
	CampaignCategoryEducation = "education"
	CampaignCategoryIftar     = "iftar"
	CampaignCategoryJumat     = "jumat"
)

/* ===================== Model ===================== */

type Campaign struct {
	CampaignID uuid.UUID `gorm:"column:campaign_id;type:uuid;default:gen_random_uuid();primaryKey" json:"campaign_id"`

	CampaignTitle       string `gorm:"column:campaign_title;type:varchar(100);not null" json:"campaign_title"`
	CampaignSlug        string `gorm:"column:campaign_slug;type:varchar(100);not null;unique" json:"campaign_slug"`
	CampaignDescription string `gorm:"column:campaign_description;type:text" json:"campaign_description"`
	CampaignCategory    string `gorm:"column:campaign_category;type:varchar(20);not null" json:"campaign_category"`

	CampaignThumbnailURL *string `gorm:"column:campaign_thumbnail_url" json:"campaign_thumbnail_url,omitempty"`

	// Nominal dalam IDR (tanpa sen)
	CampaignTargetAmount int64 `gorm:"column:campaign_target_amount;not null;check:campaign_target_amount >= 0" json:"campaign_target_amount"`

	// Cache hasil agregasi donasi confirmed. Hanya boleh ditulis oleh ledger,
	// jangan pernah di-increment manual.
	CampaignCurrentAmount int64 `gorm:"column:campaign_current_amount;not null;default:0" json:"campaign_current_amount"`

	CampaignIsFeatured bool `gorm:"column:campaign_is_featured;not null;default:false" json:"campaign_is_featured"`
	CampaignIsActive   bool `gorm:"column:campaign_is_active;not null;default:true" json:"campaign_is_active"`

	// NULL = kampanye tanpa batas waktu
	CampaignDeadline *time.Time `gorm:"column:campaign_deadline" json:"campaign_deadline,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Campaign) TableName() string { return "campaigns" }

// CampaignUpdate = kabar perkembangan kampanye (berita penyaluran, dsb.)
type CampaignUpdate struct {
	CampaignUpdateID uuid.UUID `gorm:"column:campaign_update_id;type:uuid;default:gen_random_uuid();primaryKey" json:"campaign_update_id"`

	CampaignUpdateCampaignID uuid.UUID `gorm:"column:campaign_update_campaign_id;type:uuid;not null;index" json:"campaign_update_campaign_id"`

	CampaignUpdateTitle       string `gorm:"column:campaign_update_title;type:varchar(100);not null" json:"campaign_update_title"`
	CampaignUpdateDescription string `gorm:"column:campaign_update_description;type:text" json:"campaign_update_description"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (CampaignUpdate) TableName() string { return "campaign_updates" }
