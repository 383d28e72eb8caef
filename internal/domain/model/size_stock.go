package model

import "time"

// バリエーション（サイズ）単位の在庫行。
// StockQuantityは常に0以上、InStockは StockQuantity > 0 と一致させる。
// 更新は在庫予約エンジン経由のみ。
type SizeStock struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	SizeID    int64 `gorm:"not null;uniqueIndex" json:"size_id"`
	ProductID int64 `gorm:"not null;index" json:"product_id"`
	ColorID   int64 `gorm:"not null;index" json:"color_id"`

	StockQuantity int64 `gorm:"not null;default:0" json:"stock_quantity"`
	InStock       bool  `gorm:"not null;default:false" json:"in_stock"`

	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
