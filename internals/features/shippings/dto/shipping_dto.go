package dto

type CreateShippingAddressRequest struct {
	Recipient  string `json:"recipient" validate:"required,max=100"`
	Phone      string `json:"phone" validate:"required,max=15"`
	Line       string `json:"line" validate:"required"`
	City       string `json:"city" validate:"required,max=100"`
	Province   string `json:"province" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=10"`
	IsDefault  bool   `json:"is_default"`
}

type UpdateShippingAddressRequest struct {
	Recipient  *string `json:"recipient,omitempty" validate:"omitempty,max=100"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=15"`
	Line       *string `json:"line,omitempty"`
	City       *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Province   *string `json:"province,omitempty" validate:"omitempty,max=100"`
	PostalCode *string `json:"postal_code,omitempty" validate:"omitempty,max=10"`
	IsDefault  *bool   `json:"is_default,omitempty"`
}
