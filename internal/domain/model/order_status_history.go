package model

import "time"

// ステータス遷移の追記専用ログ。1遷移につき1行、更新・削除はしない。
// 注文の現在ステータスはこのログの最新行の射影。
type OrderStatusHistory struct {
	ID      int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID int64       `gorm:"not null;index" json:"order_id"`
	Status  OrderStatus `gorm:"type:varchar(20);not null" json:"status"`

	Notes           string `gorm:"type:text" json:"notes,omitempty"`
	DeliveryPartner string `gorm:"type:varchar(100)" json:"delivery_partner,omitempty"`
	ShipmentID      string `gorm:"type:varchar(100)" json:"shipment_id,omitempty"`

	ChangedAt time.Time `gorm:"not null" json:"changed_at"`
}
