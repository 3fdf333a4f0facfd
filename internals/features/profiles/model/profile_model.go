package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile: data tambahan user. user_id datang dari klaim JWT,
// registrasi/login ditangani layanan auth terpisah.
type Profile struct {
	ProfileID uuid.UUID `gorm:"column:profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"profile_id"`

	ProfileUserID uuid.UUID `gorm:"column:profile_user_id;type:uuid;not null;unique" json:"profile_user_id"`

	ProfileName      string  `gorm:"column:profile_name;type:varchar(100);not null" json:"profile_name"`
	ProfilePhone     string  `gorm:"column:profile_phone;type:varchar(15)" json:"profile_phone"`
	ProfileAddress   string  `gorm:"column:profile_address;type:text" json:"profile_address"`
	ProfileAvatarURL *string `gorm:"column:profile_avatar_url" json:"profile_avatar_url,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Profile) TableName() string { return "profiles" }
