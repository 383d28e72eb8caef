package model

import "time"

// 注文明細。価格・商品名・バリエーション名は注文時点のスナップショット。
// カタログが後から変わっても履歴は変わらない。
type OrderItem struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64 `gorm:"not null;index" json:"order_id"`
	ProductID int64 `gorm:"not null;index" json:"product_id"`
	ColorID   int64 `gorm:"not null" json:"color_id"`
	SizeID    int64 `gorm:"not null" json:"size_id"`

	ProductTitleSnapshot string `gorm:"type:varchar(255);not null" json:"product_title_snapshot"`
	SizeNameSnapshot     string `gorm:"type:varchar(50);not null" json:"size_name_snapshot"`
	ColorNameSnapshot    string `gorm:"type:varchar(100);not null" json:"color_name_snapshot"`
	ColorCodeSnapshot    string `gorm:"type:varchar(20)" json:"color_code_snapshot"`

	UnitPrice  int64 `gorm:"not null" json:"unit_price"`
	Quantity   int64 `gorm:"not null" json:"quantity"`
	TotalPrice int64 `gorm:"not null" json:"total_price"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
