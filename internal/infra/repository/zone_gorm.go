package repository

import (
	"context"
	"errors"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
	repo "github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/repository"

	"gorm.io/gorm"
)

type ZoneGormRepository struct {
	db *gorm.DB
}

func NewZoneGormRepository(db *gorm.DB) *ZoneGormRepository {
	return &ZoneGormRepository{db: db}
}

// district行を先頭に寄せて返す（マッチ優先順）
func (r *ZoneGormRepository) ListRegions(ctx context.Context) ([]model.ZoneRegion, error) {
	var regions []model.ZoneRegion
	err := r.db.WithContext(ctx).
		Order("case when region_type = 'district' then 0 else 1 end, id asc").
		Find(&regions).Error
	if err != nil {
		return nil, err
	}
	return regions, nil
}

func (r *ZoneGormRepository) FindZoneByID(ctx context.Context, zoneID int64) (model.DeliveryZone, error) {
	var z model.DeliveryZone
	err := r.db.WithContext(ctx).Where("id = ?", zoneID).First(&z).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DeliveryZone{}, repo.ErrNotFound
	}
	if err != nil {
		return model.DeliveryZone{}, err
	}
	return z, nil
}

func (r *ZoneGormRepository) ListZones(ctx context.Context) ([]model.DeliveryZone, error) {
	var zones []model.DeliveryZone
	err := r.db.WithContext(ctx).
		Order("zone_number asc").
		Find(&zones).Error
	if err != nil {
		return nil, err
	}
	return zones, nil
}
