package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/pincode"
	repo "github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/repository"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/shipping"
)

// CartUsecase は /cart の業務ロジック。
// 配送見積もりはチェックアウトと同じ送料計算を通す。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
	variantRepo  repo.VariantRepository
	stockRepo    repo.SizeStockRepository

	resolver *pincode.Resolver
	zones    *shipping.Service

	freeShippingThreshold int64
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
	variantRepo repo.VariantRepository,
	stockRepo repo.SizeStockRepository,
	resolver *pincode.Resolver,
	zones *shipping.Service,
	freeShippingThreshold int64,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:              cartRepo,
		cartItemRepo:          cartItemRepo,
		productRepo:           productRepo,
		variantRepo:           variantRepo,
		stockRepo:             stockRepo,
		resolver:              resolver,
		zones:                 zones,
		freeShippingThreshold: freeShippingThreshold,
	}
}

type CartItemResponse struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	ColorID   int64  `json:"color_id"`
	SizeID    int64  `json:"size_id"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type CartResponse struct {
	Items    []CartItemResponse `json:"items"`
	Subtotal int64              `json:"subtotal"`
}

type AddCartInput struct {
	ProductID int64 `json:"product_id"`
	ColorID   int64 `json:"color_id"`
	SizeID    int64 `json:"size_id"`
	Quantity  int64 `json:"quantity"`
}

// GetCart はカート取得（無ければACTIVEを作って空を返す）。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.GetOrCreateActiveByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// AddToCart はカートに追加（同一バリエーションは数量加算）。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, in AddCartInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 || in.ColorID <= 0 || in.SizeID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid variant")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	cart, err := u.cartRepo.GetOrCreateActiveByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 商品チェック（公開のみ）
	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}

	// サイズが商品×カラーに属しているか
	size, err := u.variantRepo.FindSize(ctx, in.SizeID)
	if err != nil || size.ProductID != in.ProductID || size.ColorID != in.ColorID {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid variant")
	}

	// 既存数量を調べて加算
	items, err := u.cartItemRepo.ListByCartID(ctx, cart.ID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var existingQty int64 = 0
	for _, it := range items {
		if it.ProductID == in.ProductID && it.ColorID == in.ColorID && it.SizeID == in.SizeID {
			existingQty = it.Quantity
			break
		}
	}
	newQty := existingQty + in.Quantity

	// カート時点でも在庫でキャップ（確定時に再チェックされる）
	stock, err := u.stockRepo.FindBySizeID(ctx, in.SizeID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "out of stock")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if newQty > stock.StockQuantity {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "stock exceeded")
	}

	now := time.Now()
	err = u.cartItemRepo.Upsert(ctx, model.CartItem{
		CartID:            cart.ID,
		ProductID:         in.ProductID,
		ColorID:           in.ColorID,
		SizeID:            in.SizeID,
		Quantity:          newQty,
		UnitPriceSnapshot: p.Price,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

func (u *CartUsecase) UpdateItem(ctx context.Context, userID int64, itemID int64, quantity int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if itemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	cart, err := u.cartRepo.FindActiveByUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, cart.ID, itemID, quantity); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

func (u *CartUsecase) RemoveItem(ctx context.Context, userID int64, itemID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if itemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	cart, err := u.cartRepo.FindActiveByUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartItemRepo.Delete(ctx, cart.ID, itemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

type DeliveryEstimateResponse struct {
	Pincode         string `json:"pincode"`
	State           string `json:"state"`
	District        string `json:"district,omitempty"`
	ZoneName        string `json:"zone_name"`
	DeliveryDaysMin int    `json:"delivery_days_min"`
	DeliveryDaysMax int    `json:"delivery_days_max"`
	Subtotal        int64  `json:"subtotal"`
	DeliveryCharge  int64  `json:"delivery_charge"`
	FreeShipping    bool   `json:"free_shipping"`
}

// EstimateDelivery はカート表示用の送料見積もり。
// placeOrderに埋まる金額と必ず一致する（同じ計算を呼ぶ）。
func (u *CartUsecase) EstimateDelivery(ctx context.Context, userID int64, pin string) (DeliveryEstimateResponse, error) {
	if userID <= 0 {
		return DeliveryEstimateResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	loc, err := u.resolver.Resolve(ctx, pin)
	if err != nil {
		return DeliveryEstimateResponse{}, NewHTTPError(http.StatusBadRequest, "delivery not available for this pincode")
	}

	zone, err := u.zones.ResolveZone(ctx, loc)
	if err != nil {
		if errors.Is(err, shipping.ErrNoZoneConfigured) || errors.Is(err, repo.ErrNotFound) {
			return DeliveryEstimateResponse{}, NewHTTPError(http.StatusBadRequest, "delivery not available for this pincode")
		}
		return DeliveryEstimateResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cartRes, err := u.GetCart(ctx, userID)
	if err != nil {
		return DeliveryEstimateResponse{}, err
	}

	charge := shipping.DeliveryCharge(cartRes.Subtotal, zone.DeliveryCharge, u.freeShippingThreshold)

	return DeliveryEstimateResponse{
		Pincode:         pin,
		State:           loc.State,
		District:        loc.District,
		ZoneName:        zone.ZoneName,
		DeliveryDaysMin: zone.DeliveryDaysMin,
		DeliveryDaysMax: zone.DeliveryDaysMax,
		Subtotal:        cartRes.Subtotal,
		DeliveryCharge:  charge,
		FreeShipping:    charge == 0 && zone.DeliveryCharge > 0,
	}, nil
}

func (u *CartUsecase) buildCartResponse(ctx context.Context, cartID int64) (CartResponse, error) {
	items, err := u.cartItemRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := CartResponse{Items: make([]CartItemResponse, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, CartItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			ColorID:   it.ColorID,
			SizeID:    it.SizeID,
			Price:     it.UnitPriceSnapshot,
			Quantity:  it.Quantity,
		})
		out.Subtotal += it.UnitPriceSnapshot * it.Quantity
	}

	return out, nil
}
