package repository

import (
	"context"
	"errors"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
	repo "github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/repository"

	"gorm.io/gorm"
)

type SizeStockGormRepository struct {
	db *gorm.DB
}

func NewSizeStockGormRepository(db *gorm.DB) *SizeStockGormRepository {
	return &SizeStockGormRepository{db: db}
}

func (r *SizeStockGormRepository) FindBySizeID(ctx context.Context, sizeID int64) (model.SizeStock, error) {
	var s model.SizeStock
	err := r.db.WithContext(ctx).Where("size_id = ?", sizeID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.SizeStock{}, repo.ErrNotFound
	}
	if err != nil {
		return model.SizeStock{}, err
	}
	return s, nil
}

// 在庫が足りるときだけ減らす。WHEREで床を張った1文のUPDATE。
// in_stock も同じ文の中で再計算する。
func (r *SizeStockGormRepository) DecreaseStockIfEnough(ctx context.Context, sizeID int64, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.SizeStock{}).
		Where("size_id = ? AND stock_quantity >= ?", sizeID, qty).
		Updates(map[string]interface{}{
			"stock_quantity": gorm.Expr("stock_quantity - ?", qty),
			"in_stock":       gorm.Expr("stock_quantity - ? > 0", qty),
		})

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

// 在庫戻し（決済失敗の補償）
func (r *SizeStockGormRepository) IncreaseStock(ctx context.Context, sizeID int64, qty int64) error {
	res := r.db.WithContext(ctx).Model(&model.SizeStock{}).
		Where("size_id = ?", sizeID).
		Updates(map[string]interface{}{
			"stock_quantity": gorm.Expr("stock_quantity + ?", qty),
			"in_stock":       gorm.Expr("stock_quantity + ? > 0", qty),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
