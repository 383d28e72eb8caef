package model

import "time"

// カート明細。商品×カラー×サイズで1行。
type CartItem struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    int64 `gorm:"not null;index:idx_cart_variant,unique" json:"cart_id"`
	ProductID int64 `gorm:"not null;index:idx_cart_variant,unique" json:"product_id"`
	ColorID   int64 `gorm:"not null;index:idx_cart_variant,unique" json:"color_id"`
	SizeID    int64 `gorm:"not null;index:idx_cart_variant,unique" json:"size_id"`

	Quantity int64 `gorm:"not null" json:"quantity"`

	//追加時点の価格
	UnitPriceSnapshot int64 `gorm:"not null" json:"unit_price_snapshot"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 在庫予約エンジンへ渡す1行分。カート明細から作る読み取り専用の値。
type CartLine struct {
	ProductID int64
	ColorID   int64
	SizeID    int64
	Quantity  int64
}

func (ci CartItem) Line() CartLine {
	return CartLine{
		ProductID: ci.ProductID,
		ColorID:   ci.ColorID,
		SizeID:    ci.SizeID,
		Quantity:  ci.Quantity,
	}
}
