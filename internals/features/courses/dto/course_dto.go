package dto

type CreateCourseRequest struct {
	Title        string  `json:"title" validate:"required,max=100"`
	Description  string  `json:"description"`
	Mentor       string  `json:"mentor" validate:"required,max=100"`
	Price        int64   `json:"price" validate:"gte=0"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
}

type UpdateCourseRequest struct {
	Title        *string `json:"title,omitempty" validate:"omitempty,max=100"`
	Description  *string `json:"description,omitempty"`
	Mentor       *string `json:"mentor,omitempty" validate:"omitempty,max=100"`
	Price        *int64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
	IsActive     *bool   `json:"is_active,omitempty"`
}
