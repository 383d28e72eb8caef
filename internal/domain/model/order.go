package model

import "time"

// 配送ステータス（支払いとは独立した軸）
type OrderStatus string

const (
	OrderStatusOrdered         OrderStatus = "ORDERED"
	OrderStatusConfirmed       OrderStatus = "CONFIRMED"
	OrderStatusShipped         OrderStatus = "SHIPPED"
	OrderStatusDelivered       OrderStatus = "DELIVERED"
	OrderStatusCancelRequested OrderStatus = "CANCEL_REQUESTED"
	OrderStatusCancelled       OrderStatus = "CANCELLED"
	OrderStatusReturnRequested OrderStatus = "RETURN_REQUESTED"
	OrderStatusReturned        OrderStatus = "RETURNED"
	OrderStatusRefunded        OrderStatus = "REFUNDED"
)

// 支払いステータス（決済コールバックだけが動かす）
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

type Order struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber string `gorm:"type:varchar(40);not null;uniqueIndex" json:"order_number"`
	UserID      int64  `gorm:"not null;index" json:"user_id"`
	AddressID   int64  `gorm:"not null" json:"address_id"`

	Status        OrderStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;index" json:"payment_status"`

	// 金額はすべてルピー単位のint64
	TotalAmount    int64 `gorm:"not null" json:"total_amount"`
	DeliveryCharge int64 `gorm:"not null" json:"delivery_charge"`

	// 配送先pincodeから解決したゾーン
	DeliveryZoneID  *int64 `gorm:"index" json:"delivery_zone_id,omitempty"`
	DeliveryPincode string `gorm:"type:varchar(6);not null" json:"delivery_pincode"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
