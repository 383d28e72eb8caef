package repository

import (
	"context"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
)

// ゾーン設定。チェックアウト側からは読み取り専用。
type ZoneRepository interface {
	// district行が先に来る順序で返す
	ListRegions(ctx context.Context) ([]model.ZoneRegion, error)

	FindZoneByID(ctx context.Context, zoneID int64) (model.DeliveryZone, error)
	ListZones(ctx context.Context) ([]model.DeliveryZone, error)
}
