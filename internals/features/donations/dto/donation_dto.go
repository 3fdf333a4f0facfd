package dto

import (
	"time"

	"github.com/google/uuid"

	"barakahku_backend/internals/features/donations/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

// CreateDonationRequest: donasi transfer manual (bsi/bjb).
// Donasi gateway dibuat lewat /payments/donations/token.
type CreateDonationRequest struct {
	CampaignSlug  string `json:"campaign_slug" validate:"required"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	DonorName     string `json:"donor_name" validate:"required,max=100"`
	DonorPhone    string `json:"donor_phone" validate:"required,max=15"`
	DonorEmail    string `json:"donor_email,omitempty" validate:"omitempty,email"`
	IsAnonymous   bool   `json:"is_anonymous"`
	Message       string `json:"message"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=bsi bjb"`
}

// SubmitProofRequest: unggah detail bukti transfer untuk donasi manual.
type SubmitProofRequest struct {
	SourceBank    string     `json:"source_bank" validate:"required,max=100"`
	SourceAccount string     `json:"source_account" validate:"required,max=100"`
	AccountName   string     `json:"account_name" validate:"required,max=100"`
	TransferDate  *time.Time `json:"transfer_date,omitempty"`
	ProofFileURL  string     `json:"proof_file_url" validate:"required,url"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type DonationResponse struct {
	DonationID    uuid.UUID `json:"donation_id"`
	CampaignID    uuid.UUID `json:"campaign_id"`
	Amount        int64     `json:"amount"`
	DonorName     string    `json:"donor_name"`
	IsAnonymous   bool      `json:"is_anonymous"`
	Message       string    `json:"message"`
	PaymentMethod string    `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`

	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// PublicDonationResponse: untuk daftar donatur per kampanye. Nama donatur
// anonim disembunyikan di sini, bukan di frontend.
type PublicDonationResponse struct {
	DonationID uuid.UUID `json:"donation_id"`
	DonorName  string    `json:"donor_name"`
	Amount     int64     `json:"amount"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromDonationModel(d *model.Donation) *DonationResponse {
	return &DonationResponse{
		DonationID:    d.DonationID,
		CampaignID:    d.DonationCampaignID,
		Amount:        d.DonationAmount,
		DonorName:     d.DonationDonorName,
		IsAnonymous:   d.DonationIsAnonymous,
		Message:       d.DonationMessage,
		PaymentMethod: d.DonationPaymentMethod,
		PaymentStatus: d.DonationPaymentStatus,
		PaidAt:        d.DonationPaidAt,
		CreatedAt:     d.CreatedAt,
	}
}

func ToPublicDonation(d *model.Donation) *PublicDonationResponse {
	name := d.DonationDonorName
	if d.DonationIsAnonymous {
		name = "Hamba Allah"
	}
	return &PublicDonationResponse{
		DonationID: d.DonationID,
		DonorName:  name,
		Amount:     d.DonationAmount,
		Message:    d.DonationMessage,
		CreatedAt:  d.CreatedAt,
	}
}
