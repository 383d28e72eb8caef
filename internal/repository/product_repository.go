package repository

import (
	"context"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
)

type ProductRepository interface {
	FindByID(ctx context.Context, productID int64) (model.Product, error)
}

// 注文明細スナップショット用のサイズ・カラー名引き
type VariantRepository interface {
	FindSize(ctx context.Context, sizeID int64) (model.Size, error)
	FindColor(ctx context.Context, colorID int64) (model.Color, error)
}
