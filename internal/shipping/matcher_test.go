package shipping

import (
	"testing"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/pincode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regions() []model.ZoneRegion {
	// district行が先頭（repositoryの並びと同じ）
	return []model.ZoneRegion{
		{ID: 1, DeliveryZoneID: 1, StateName: "Tamil Nadu", DistrictName: "Vellore", RegionType: model.RegionTypeDistrict},
		{ID: 2, DeliveryZoneID: 2, StateName: "Tamil Nadu", DistrictName: "Chennai", RegionType: model.RegionTypeDistrict},
		{ID: 3, DeliveryZoneID: 3, StateName: "Tamil Nadu", RegionType: model.RegionTypeState},
		{ID: 4, DeliveryZoneID: 4, StateName: "Karnataka", RegionType: model.RegionTypeState},
	}
}

// district行はstate行より常に優先される
func TestMatchRegionDistrictBeatsState(t *testing.T) {
	r, err := MatchRegion(regions(), pincode.Location{State: "Tamil Nadu", District: "Vellore"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), r.DeliveryZoneID)
}

func TestMatchRegionStateExact(t *testing.T) {
	// district不一致 → state行へ落ちる
	r, err := MatchRegion(regions(), pincode.Location{State: "Tamil Nadu", District: "Madurai"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), r.DeliveryZoneID)

	r, err = MatchRegion(regions(), pincode.Location{State: "karnataka"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), r.DeliveryZoneID)
}

// districtが空のロケーション（2桁プレフィックス推定）はdistrict行にマッチしない
func TestMatchRegionEmptyDistrictSkipsDistrictRows(t *testing.T) {
	r, err := MatchRegion(regions(), pincode.Location{State: "Tamil Nadu"})

	require.NoError(t, err)
	assert.Equal(t, model.RegionTypeState, r.RegionType)
	assert.Equal(t, int64(3), r.DeliveryZoneID)
}

// 完全一致しないstate表記は相互部分一致で救済する
func TestMatchRegionSubstringRescue(t *testing.T) {
	rows := []model.ZoneRegion{
		{ID: 1, DeliveryZoneID: 9, StateName: "Jammu and Kashmir", RegionType: model.RegionTypeState},
	}

	// 地域設定側が長い表記のケース
	r, err := MatchRegion(rows, pincode.Location{State: "Jammu"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), r.DeliveryZoneID)

	// ロケーション側が長い表記のケース
	rows[0].StateName = "Kashmir"
	r, err = MatchRegion(rows, pincode.Location{State: "Jammu and Kashmir"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), r.DeliveryZoneID)
}

func TestMatchRegionNoZone(t *testing.T) {
	_, err := MatchRegion(regions(), pincode.Location{State: "Sikkim"})
	assert.ErrorIs(t, err, ErrNoZoneConfigured)

	_, err = MatchRegion(regions(), pincode.Location{})
	assert.ErrorIs(t, err, ErrNoZoneConfigured)

	_, err = MatchRegion(nil, pincode.Location{State: "Tamil Nadu"})
	assert.ErrorIs(t, err, ErrNoZoneConfigured)
}
