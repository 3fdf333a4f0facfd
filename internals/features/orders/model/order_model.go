package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	OrderStatusPending   = "pending"
	OrderStatusPacked    = "packed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Status pembayaran order mengikuti bentuk dua-terminal yang sama
// dengan donasi: pending → confirmed | failed.
const (
	OrderPayStatusPending   = "pending"
	OrderPayStatusConfirmed = "confirmed"
	OrderPayStatusFailed    = "failed"
)

const (
	OrderMethodBSI      = "bsi"
	OrderMethodBJB      = "bjb"
	OrderMethodMidtrans = "midtrans"
)

/* ===================== Model ===================== */

type Order struct {
	OrderID uuid.UUID `gorm:"column:order_id;type:uuid;default:gen_random_uuid();primaryKey" json:"order_id"`

	OrderUserID uuid.UUID `gorm:"column:order_user_id;type:uuid;not null;index" json:"order_user_id"`

	// Nomor order ORD-xxxx; dipakai langsung sebagai order_id di gateway
	OrderNumber string `gorm:"column:order_number;type:varchar(30);not null;unique" json:"order_number"`

	OrderTotalAmount int64 `gorm:"column:order_total_amount;not null;check:order_total_amount >= 0" json:"order_total_amount"`

	OrderStatus        string `gorm:"column:order_status;type:varchar(20);not null;default:'pending'" json:"order_status"`
	OrderPaymentStatus string `gorm:"column:order_payment_status;type:varchar(20);not null;default:'pending'" json:"order_payment_status"`
	OrderPaymentMethod string `gorm:"column:order_payment_method;type:varchar(20)" json:"order_payment_method"`

	OrderCouponCode *string `gorm:"column:order_coupon_code;type:varchar(50)" json:"order_coupon_code,omitempty"`

	OrderPaidAt *time.Time `gorm:"column:order_paid_at" json:"order_paid_at,omitempty"`

	OrderItems []OrderItem `gorm:"foreignKey:OrderItemOrderID;references:OrderID" json:"order_items,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	OrderItemID uuid.UUID `gorm:"column:order_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"order_item_id"`

	OrderItemOrderID   uuid.UUID `gorm:"column:order_item_order_id;type:uuid;not null;index" json:"order_item_order_id"`
	OrderItemProductID uuid.UUID `gorm:"column:order_item_product_id;type:uuid;not null" json:"order_item_product_id"`

	OrderItemQuantity int   `gorm:"column:order_item_quantity;not null;check:order_item_quantity > 0" json:"order_item_quantity"`
	OrderItemPrice    int64 `gorm:"column:order_item_price;not null" json:"order_item_price"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (OrderItem) TableName() string { return "order_items" }

/* ===================== Helpers ===================== */

func (o *Order) IsPaid() bool {
	return o.OrderPaymentStatus == OrderPayStatusConfirmed
}
