package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ===================== Enums (string) ===================== */

// Hasil pemrosesan satu notifikasi gateway (audit trail webhook).
const (
	GatewayEventOutcomeApplied   = "applied"   // transisi diterapkan + recompute
	GatewayEventOutcomeDuplicate = "duplicate" // replay untuk donasi/order terminal
	GatewayEventOutcomeIgnored   = "ignored"   // status tak dikenal, tidak diproses
	GatewayEventOutcomeRejected  = "rejected"  // order_id cacat / record tak ditemukan
)

const (
	GatewayEventTargetDonation = "donation"
	GatewayEventTargetOrder    = "order"
)

/* ===================== Model ===================== */

type PaymentGatewayEvent struct {
	GatewayEventID uuid.UUID `gorm:"column:gateway_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"gateway_event_id"`

	GatewayEventProvider string `gorm:"column:gateway_event_provider;type:varchar(20);not null;default:'midtrans'" json:"gateway_event_provider"`
	GatewayEventTarget   string `gorm:"column:gateway_event_target;type:varchar(20);not null" json:"gateway_event_target"`

	GatewayEventOrderRef          string  `gorm:"column:gateway_event_order_ref;type:varchar(100);not null;index" json:"gateway_event_order_ref"`
	GatewayEventTransactionStatus string  `gorm:"column:gateway_event_transaction_status;type:varchar(30);not null" json:"gateway_event_transaction_status"`
	GatewayEventFraudStatus       *string `gorm:"column:gateway_event_fraud_status;type:varchar(30)" json:"gateway_event_fraud_status,omitempty"`

	GatewayEventOutcome string `gorm:"column:gateway_event_outcome;type:varchar(20);not null" json:"gateway_event_outcome"`

	GatewayEventPayload datatypes.JSONMap `gorm:"column:gateway_event_payload;type:jsonb" json:"gateway_event_payload,omitempty"`

	GatewayEventReceivedAt time.Time `gorm:"column:gateway_event_received_at;autoCreateTime" json:"gateway_event_received_at"`
}

func (PaymentGatewayEvent) TableName() string { return "payment_gateway_events" }
