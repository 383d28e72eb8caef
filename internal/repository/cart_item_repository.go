package repository

import (
	"context"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
)

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)

	// 同一バリエーションは数量を置き換える
	Upsert(ctx context.Context, item model.CartItem) error

	UpdateQuantity(ctx context.Context, cartID int64, itemID int64, quantity int64) error
	Delete(ctx context.Context, cartID int64, itemID int64) error
}
