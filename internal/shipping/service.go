package shipping

import (
	"context"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/pincode"
	repo "github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/repository"
)

// Service はゾーン設定テーブルを引いてロケーションをゾーンへ解決する。
type Service struct {
	zones repo.ZoneRepository
}

func NewService(zones repo.ZoneRepository) *Service {
	return &Service{zones: zones}
}

func (s *Service) ResolveZone(ctx context.Context, loc pincode.Location) (model.DeliveryZone, error) {
	regions, err := s.zones.ListRegions(ctx)
	if err != nil {
		return model.DeliveryZone{}, err
	}

	region, err := MatchRegion(regions, loc)
	if err != nil {
		return model.DeliveryZone{}, err
	}

	return s.zones.FindZoneByID(ctx, region.DeliveryZoneID)
}
