package repository

import (
	"context"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
)

type CartRepository interface {
	GetOrCreateActiveByUserID(ctx context.Context, userID int64) (model.Cart, error)
	FindActiveByUserID(ctx context.Context, userID int64) (model.Cart, error)
	UpdateStatus(ctx context.Context, cartID int64, status model.CartStatus) error

	// 明細を全削除
	Clear(ctx context.Context, cartID int64) error
}
