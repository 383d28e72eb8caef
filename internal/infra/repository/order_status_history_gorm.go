package repository

import (
	"context"
	"errors"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
	repo "github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/repository"

	"gorm.io/gorm"
)

type OrderStatusHistoryGormRepository struct {
	db *gorm.DB
}

func NewOrderStatusHistoryGormRepository(db *gorm.DB) *OrderStatusHistoryGormRepository {
	return &OrderStatusHistoryGormRepository{db: db}
}

func (r *OrderStatusHistoryGormRepository) Append(ctx context.Context, rec model.OrderStatusHistory) error {
	return r.db.WithContext(ctx).Create(&rec).Error
}

func (r *OrderStatusHistoryGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderStatusHistory, error) {
	var recs []model.OrderStatusHistory
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *OrderStatusHistoryGormRepository) Latest(ctx context.Context, orderID int64) (model.OrderStatusHistory, error) {
	var rec model.OrderStatusHistory
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id desc").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.OrderStatusHistory{}, repo.ErrNotFound
	}
	if err != nil {
		return model.OrderStatusHistory{}, err
	}
	return rec, nil
}
