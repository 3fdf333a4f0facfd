package dto

import "github.com/google/uuid"

type AddWishlistItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}
