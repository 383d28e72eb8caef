package model

import "time"

// 商品カラー
type Color struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64     `gorm:"not null;index" json:"product_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	HexCode   string    `gorm:"type:varchar(20)" json:"hex_code"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// サイズ。購入可能な単位は商品×カラー×サイズ。
type Size struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64     `gorm:"not null;index" json:"product_id"`
	ColorID   int64     `gorm:"not null;index" json:"color_id"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
