package dto

/* =========================================================
   REQUEST DTOs
========================================================= */

// DonationTokenRequest: buat donasi gateway + minta Snap token.
type DonationTokenRequest struct {
	CampaignSlug string `json:"campaign_slug" validate:"required"`
	Amount       int64  `json:"amount" validate:"required,gt=0"`
	DonorName    string `json:"donor_name" validate:"required,max=100"`
	DonorPhone   string `json:"donor_phone" validate:"required,max=15"`
	DonorEmail   string `json:"donor_email" validate:"omitempty,email"`
	IsAnonymous  bool   `json:"is_anonymous"`
	Message      string `json:"message" validate:"omitempty,max=500"`
}

// OrderTokenRequest: minta Snap token untuk order yang sudah ada.
type OrderTokenRequest struct {
	OrderNumber   string `json:"order_number" validate:"required"`
	CustomerName  string `json:"customer_name" validate:"required,max=100"`
	CustomerPhone string `json:"customer_phone" validate:"required,max=15"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
}

// GatewayNotification: payload webhook Midtrans (untrusted).
type GatewayNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type TokenResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
	OrderID     string `json:"order_id"`
}

type StatusResponse struct {
	Status        string `json:"status"`
	OrderID       string `json:"order_id"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"payment_method"`
}
