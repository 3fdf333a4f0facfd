package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`

	CourseTitle       string `gorm:"column:course_title;type:varchar(100);not null" json:"course_title"`
	CourseSlug        string `gorm:"column:course_slug;type:varchar(100);not null;unique" json:"course_slug"`
	CourseDescription string `gorm:"column:course_description;type:text" json:"course_description"`

	CourseMentor string `gorm:"column:course_mentor;type:varchar(100);not null" json:"course_mentor"`

	// 0 = gratis
	CoursePrice int64 `gorm:"column:course_price;not null;default:0;check:course_price >= 0" json:"course_price"`

	CourseThumbnailURL *string `gorm:"column:course_thumbnail_url" json:"course_thumbnail_url,omitempty"`

	CourseIsActive bool `gorm:"column:course_is_active;not null;default:true" json:"course_is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Course) TableName() string { return "courses" }
