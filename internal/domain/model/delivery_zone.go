package model

import "time"

// 配送ゾーン。設定データでありチェックアウト側からは読み取り専用。
// DeliveryDaysMin <= DeliveryDaysMax を満たすこと。
type DeliveryZone struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ZoneNumber      int       `gorm:"not null;uniqueIndex" json:"zone_number"`
	ZoneName        string    `gorm:"type:varchar(100);not null" json:"zone_name"`
	DeliveryDaysMin int       `gorm:"not null" json:"delivery_days_min"`
	DeliveryDaysMax int       `gorm:"not null" json:"delivery_days_max"`
	DeliveryCharge  int64     `gorm:"not null" json:"delivery_charge"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
