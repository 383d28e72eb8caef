package repository

import (
	"context"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error)

	Create(ctx context.Context, order model.Order) (int64, error)

	// 配送ステータスの射影カラムを更新（履歴追記と同一Txで呼ぶ）
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	UpdatePaymentStatus(ctx context.Context, orderID int64, status model.PaymentStatus) error
}
