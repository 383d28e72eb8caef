package pincode

import (
	"context"
	"errors"
	"log/slog"
)

// 解決結果。永続化はしない一時値。
type Location struct {
	State    string `json:"state"`
	District string `json:"district"`
}

// 全段で解決できなかった
var ErrNotResolvable = errors.New("pincode not resolvable")

// 1段分の解決手段。失敗したら次の段へ進む。
type Strategy interface {
	Name() string
	Resolve(ctx context.Context, pin string) (Location, error)
}

// Resolver は strategy を登録順に試す。最初に成功した結果を返す。
type Resolver struct {
	strategies []Strategy
	log        *slog.Logger
}

func NewResolver(log *slog.Logger, strategies ...Strategy) *Resolver {
	return &Resolver{strategies: strategies, log: log}
}

func (r *Resolver) Resolve(ctx context.Context, pin string) (Location, error) {
	if !ValidPincode(pin) {
		return Location{}, ErrNotResolvable
	}

	for _, s := range r.strategies {
		loc, err := s.Resolve(ctx, pin)
		if err == nil {
			return loc, nil
		}
		//途中の失敗は呼び出し元へ伝播させず次の段へ
		r.log.Info("pincode tier miss", "tier", s.Name(), "pincode", pin, "err", err.Error())
	}

	return Location{}, ErrNotResolvable
}

// 6桁数字のみ有効
func ValidPincode(pin string) bool {
	if len(pin) != 6 {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ===== キャッシュ段 =====

type cacheStrategy struct {
	entries map[string]Location
}

// NewCacheStrategy は既知pincodeの即答テーブル。I/Oなし。
// 渡されたmapはコピーして保持する（後から書き換えられない）。
func NewCacheStrategy(entries map[string]Location) Strategy {
	copied := make(map[string]Location, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return &cacheStrategy{entries: copied}
}

func (s *cacheStrategy) Name() string { return "cache" }

func (s *cacheStrategy) Resolve(_ context.Context, pin string) (Location, error) {
	loc, ok := s.entries[pin]
	if !ok {
		return Location{}, errors.New("not cached")
	}
	return loc, nil
}

// ===== プレフィックス段 =====

type prefixStrategy struct {
	byDistrict map[string]Location // 先頭3桁 → state/district
	byState    map[string]string   // 先頭2桁 → state
}

// NewPrefixStrategy は郵便番号の先頭桁から推定する最終フォールバック。
// 3桁が先、だめなら2桁（districtは不明のまま）。
func NewPrefixStrategy(byDistrict map[string]Location, byState map[string]string) Strategy {
	d := make(map[string]Location, len(byDistrict))
	for k, v := range byDistrict {
		d[k] = v
	}
	st := make(map[string]string, len(byState))
	for k, v := range byState {
		st[k] = v
	}
	return &prefixStrategy{byDistrict: d, byState: st}
}

func (s *prefixStrategy) Name() string { return "prefix" }

func (s *prefixStrategy) Resolve(_ context.Context, pin string) (Location, error) {
	if loc, ok := s.byDistrict[pin[:3]]; ok {
		return loc, nil
	}
	if state, ok := s.byState[pin[:2]]; ok {
		return Location{State: state}, nil
	}
	return Location{}, errors.New("no prefix match")
}
