package repository

import (
	"context"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
)

// 追記専用。UpdateやDeleteは定義しない。
type OrderStatusHistoryRepository interface {
	Append(ctx context.Context, rec model.OrderStatusHistory) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderStatusHistory, error)
	Latest(ctx context.Context, orderID int64) (model.OrderStatusHistory, error)
}
