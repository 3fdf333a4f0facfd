package dto

type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required,max=100"`
	Description string   `json:"description"`
	Price       int64    `json:"price" validate:"gte=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
}

type UpdateProductRequest struct {
	Title       *string   `json:"title,omitempty" validate:"omitempty,max=100"`
	Description *string   `json:"description,omitempty"`
	Price       *int64    `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock       *int      `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Images      *[]string `json:"images,omitempty" validate:"omitempty,dive,url"`
	IsActive    *bool     `json:"is_active,omitempty"`
}
