package repository

import (
	"context"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
)

type SizeStockRepository interface {
	FindBySizeID(ctx context.Context, sizeID int64) (model.SizeStock, error)

	// 在庫が足りるときだけ減算する。1文のconditional UPDATEで行い、
	// アプリ側でread-modify-writeしないこと（同時チェックアウトの売り越し防止）。
	DecreaseStockIfEnough(ctx context.Context, sizeID int64, qty int64) (bool, error)

	// 在庫戻し（補償処理）。売り越しは起こし得ない。
	IncreaseStock(ctx context.Context, sizeID int64, qty int64) error
}
