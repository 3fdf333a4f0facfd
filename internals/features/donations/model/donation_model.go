package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

// Status pembayaran donasi. "pending" awal, "confirmed"/"failed" terminal.
// "verified" = alias lama untuk confirmed; masih diterima saat membaca data
// hasil migrasi, tapi tidak pernah ditulis lagi.
const (
	DonationStatusPending   = "pending"
	DonationStatusConfirmed = "confirmed"
	DonationStatusFailed    = "failed"

	DonationStatusLegacyVerified = "verified"
)

const (
	DonationMethodBSI      = "bsi" // Bank Syariah Indonesia (transfer manual)
	DonationMethodBJB      = "bjb" // Bank Jabar Banten Syariah (transfer manual)
	DonationMethodMidtrans = "midtrans"
)

/* ===================== Model ===================== */

type Donation struct {
	DonationID uuid.UUID `gorm:"column:donation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donation_id"`

	DonationCampaignID uuid.UUID  `gorm:"column:donation_campaign_id;type:uuid;not null;index" json:"donation_campaign_id"`
	DonationUserID     *uuid.UUID `gorm:"column:donation_user_id;type:uuid" json:"donation_user_id,omitempty"`

	DonationAmount int64 `gorm:"column:donation_amount;not null;check:donation_amount > 0" json:"donation_amount"`

	// Identitas donatur: user login atau isian bebas (guest), boleh dua-duanya
	DonationDonorName   string  `gorm:"column:donation_donor_name;type:varchar(100);not null" json:"donation_donor_name"`
	DonationDonorPhone  string  `gorm:"column:donation_donor_phone;type:varchar(15);not null" json:"donation_donor_phone"`
	DonationDonorEmail  *string `gorm:"column:donation_donor_email;type:varchar(100)" json:"donation_donor_email,omitempty"`
	DonationIsAnonymous bool    `gorm:"column:donation_is_anonymous;not null;default:false" json:"donation_is_anonymous"`
	DonationMessage     string  `gorm:"column:donation_message;type:text" json:"donation_message"`

	DonationPaymentMethod string `gorm:"column:donation_payment_method;type:varchar(20);not null" json:"donation_payment_method"`
	DonationPaymentStatus string `gorm:"column:donation_payment_status;type:varchar(20);not null;default:'pending'" json:"donation_payment_status"`

	// Bukti transfer manual (bsi/bjb)
	DonationSourceBank    *string    `gorm:"column:donation_source_bank;type:varchar(100)" json:"donation_source_bank,omitempty"`
	DonationSourceAccount *string    `gorm:"column:donation_source_account;type:varchar(100)" json:"donation_source_account,omitempty"`
	DonationAccountName   *string    `gorm:"column:donation_account_name;type:varchar(100)" json:"donation_account_name,omitempty"`
	DonationTransferDate  *time.Time `gorm:"column:donation_transfer_date" json:"donation_transfer_date,omitempty"`
	DonationProofFileURL  *string    `gorm:"column:donation_proof_file_url" json:"donation_proof_file_url,omitempty"`

	// Referensi order di gateway (format DNT-{donation_id}-CPG-{campaign_id})
	DonationOrderRef     *string `gorm:"column:donation_order_ref;type:varchar(100);unique" json:"donation_order_ref,omitempty"`
	DonationPaymentToken *string `gorm:"column:donation_payment_token;type:text" json:"donation_payment_token,omitempty"`

	DonationPaidAt *time.Time `gorm:"column:donation_paid_at" json:"donation_paid_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Donation) TableName() string { return "donations" }

/* ===================== Helpers ===================== */

func (d *Donation) IsGateway() bool {
	return d.DonationPaymentMethod == DonationMethodMidtrans
}

func (d *Donation) IsManual() bool {
	return d.DonationPaymentMethod == DonationMethodBSI || d.DonationPaymentMethod == DonationMethodBJB
}
