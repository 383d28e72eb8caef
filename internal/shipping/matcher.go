package shipping

import (
	"errors"
	"strings"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/pincode"
)

// 配送ゾーン未設定。送料不明のままチェックアウトさせないためのエラー。
var ErrNoZoneConfigured = errors.New("no delivery zone configured for location")

// MatchRegion は解決済みロケーションをゾーン地域に割り当てる。
// 優先順（最初にヒットしたもの勝ち・大文字小文字無視の部分一致）:
//  1. district行: stateが載っていて、かつdistrictも載っている
//  2. state行: stateの完全一致
//  3. 任意の行: stateの相互部分一致（最後の救済のみ）
func MatchRegion(regions []model.ZoneRegion, loc pincode.Location) (model.ZoneRegion, error) {
	state := strings.TrimSpace(loc.State)
	district := strings.TrimSpace(loc.District)

	if state == "" {
		return model.ZoneRegion{}, ErrNoZoneConfigured
	}

	// 1. district行優先。districtが空のロケーションはここでは絶対にマッチさせない。
	if district != "" {
		for _, r := range regions {
			if r.RegionType != model.RegionTypeDistrict {
				continue
			}
			if !containsFold(r.StateName, state) {
				continue
			}
			if containsFold(r.DistrictName, district) || containsFold(r.StateName, district) {
				return r, nil
			}
		}
	}

	// 2. state行の完全一致
	for _, r := range regions {
		if r.RegionType != model.RegionTypeState {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(r.StateName), state) {
			return r, nil
		}
	}

	// 3. 相互部分一致の救済
	for _, r := range regions {
		if containsFold(r.StateName, state) || containsFold(state, r.StateName) {
			return r, nil
		}
	}

	return model.ZoneRegion{}, ErrNoZoneConfigured
}

// 空文字のneedleはマッチ扱いにしない
func containsFold(haystack, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
