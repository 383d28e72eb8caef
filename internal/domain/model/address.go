package model

import "time"

// 配送先住所。注文ごとに新規作成するスナップショット（使い回ししない）。
type Address struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index" json:"user_id"`

	//宛名
	Name string `gorm:"type:varchar(255);not null" json:"name"`

	//電話番号
	Phone string `gorm:"type:varchar(30);not null" json:"phone"`

	//連絡用メール（決済プロバイダへ渡す）
	Email string `gorm:"type:varchar(255)" json:"email"`

	//番地など
	Line1 string `gorm:"type:varchar(255);not null" json:"line1"`

	//建物名など
	Line2 string `gorm:"type:varchar(255)" json:"line2"`

	City    string `gorm:"type:varchar(255);not null" json:"city"`
	State   string `gorm:"type:varchar(100);not null" json:"state"`
	Pincode string `gorm:"type:varchar(6);not null" json:"pincode"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
