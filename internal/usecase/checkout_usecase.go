package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/events"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/payment"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/pincode"
	repo "github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/repository"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/shipping"

	"github.com/google/uuid"
)

// CheckoutUsecase は placeOrder を司る。
// 住所→ゾーン解決→在庫検証→注文作成→在庫予約を1トランザクションで行い、
// 決済はその外。決済失敗時は在庫を明示的に戻す。
type CheckoutUsecase struct {
	tx       repo.TransactionManager
	resolver *pincode.Resolver
	zones    *shipping.Service
	engine   *StockReservation
	gateway  payment.Gateway
	events   events.Publisher

	// コールバック側（Txの外）で使うrepo
	orders repo.OrderRepository
	carts  repo.CartRepository
	stock  repo.SizeStockRepository

	freeShippingThreshold int64
	log                   *slog.Logger
}

func NewCheckoutUsecase(
	tx repo.TransactionManager,
	resolver *pincode.Resolver,
	zones *shipping.Service,
	engine *StockReservation,
	gateway payment.Gateway,
	publisher events.Publisher,
	orders repo.OrderRepository,
	carts repo.CartRepository,
	stock repo.SizeStockRepository,
	freeShippingThreshold int64,
	log *slog.Logger,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		tx:                    tx,
		resolver:              resolver,
		zones:                 zones,
		engine:                engine,
		gateway:               gateway,
		events:                publisher,
		orders:                orders,
		carts:                 carts,
		stock:                 stock,
		freeShippingThreshold: freeShippingThreshold,
		log:                   log,
	}
}

type CheckoutAddressInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type PlaceOrderInput struct {
	Address CheckoutAddressInput
}

type PlaceOrderItemOutput struct {
	ProductID int64  `json:"product_id"`
	Title     string `json:"title"`
	SizeName  string `json:"size_name"`
	ColorName string `json:"color_name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int64  `json:"quantity"`
}

type PlaceOrderOutput struct {
	OrderID        int64                  `json:"order_id"`
	OrderNumber    string                 `json:"order_number"`
	Subtotal       int64                  `json:"subtotal"`
	DeliveryCharge int64                  `json:"delivery_charge"`
	TotalAmount    int64                  `json:"total_amount"`
	PaymentStatus  string                 `json:"payment_status"`
	Items          []PlaceOrderItemOutput `json:"items"`
}

func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if userID <= 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	// 1. 住所の必須項目チェック
	if msg, ok := validateAddress(in.Address); !ok {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, msg)
	}

	// 2. pincode→ゾーン解決。解決できなければ送料不明のまま進めない。
	loc, err := u.resolver.Resolve(ctx, in.Address.Pincode)
	if err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "delivery not available for this pincode")
	}
	zone, err := u.zones.ResolveZone(ctx, loc)
	if err != nil {
		if errors.Is(err, shipping.ErrNoZoneConfigured) || errors.Is(err, repo.ErrNotFound) {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "delivery not available for this pincode")
		}
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var (
		out    PlaceOrderOutput
		cartID int64
		lines  []model.CartLine
	)

	// 3〜5. 在庫検証・住所・注文・明細・在庫予約は1トランザクション
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().FindActiveByUserID(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusBadRequest, "cart empty")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		cartID = cart.ID

		cartItems, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(cartItems) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart empty")
		}

		lines = make([]model.CartLine, 0, len(cartItems))
		var subtotal int64
		for _, ci := range cartItems {
			lines = append(lines, ci.Line())
			subtotal += ci.UnitPriceSnapshot * ci.Quantity
		}

		// 在庫検証（最初の不足で止める）
		if err := u.engine.Validate(ctx, r.Stock(), r.Products(), lines); err != nil {
			return asCheckoutError(err)
		}

		// 送料。カート表示と同じ計算を通す。
		charge := shipping.DeliveryCharge(subtotal, zone.DeliveryCharge, u.freeShippingThreshold)
		total := subtotal + charge

		// 住所は注文ごとのスナップショット
		addrID, err := r.Addresses().Create(ctx, model.Address{
			UserID:  userID,
			Name:    strings.TrimSpace(in.Address.Name),
			Phone:   strings.TrimSpace(in.Address.Phone),
			Email:   strings.TrimSpace(in.Address.Email),
			Line1:   strings.TrimSpace(in.Address.Line1),
			Line2:   strings.TrimSpace(in.Address.Line2),
			City:    strings.TrimSpace(in.Address.City),
			State:   strings.TrimSpace(in.Address.State),
			Pincode: in.Address.Pincode,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		now := time.Now()
		zoneID := zone.ID
		orderNumber := newOrderNumber()
		orderID, err := r.Orders().Create(ctx, model.Order{
			OrderNumber:     orderNumber,
			UserID:          userID,
			AddressID:       addrID,
			Status:          model.OrderStatusOrdered,
			PaymentStatus:   model.PaymentStatusPending,
			TotalAmount:     total,
			DeliveryCharge:  charge,
			DeliveryZoneID:  &zoneID,
			DeliveryPincode: in.Address.Pincode,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// ステータスログの先頭行
		if err := r.StatusHistory().Append(ctx, model.OrderStatusHistory{
			OrderID:   orderID,
			Status:    model.OrderStatusOrdered,
			ChangedAt: now,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 明細スナップショット
		orderItems := make([]model.OrderItem, 0, len(cartItems))
		outItems := make([]PlaceOrderItemOutput, 0, len(cartItems))
		for _, ci := range cartItems {
			p, err := r.Products().FindByID(ctx, ci.ProductID)
			if errors.Is(err, repo.ErrNotFound) || (err == nil && !p.IsActive) {
				return NewHTTPError(http.StatusBadRequest, "invalid")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			size, err := r.Variants().FindSize(ctx, ci.SizeID)
			if err != nil {
				return NewHTTPError(http.StatusBadRequest, "invalid")
			}
			color, err := r.Variants().FindColor(ctx, ci.ColorID)
			if err != nil {
				return NewHTTPError(http.StatusBadRequest, "invalid")
			}

			orderItems = append(orderItems, model.OrderItem{
				ProductID:            ci.ProductID,
				ColorID:              ci.ColorID,
				SizeID:               ci.SizeID,
				ProductTitleSnapshot: p.Title,
				SizeNameSnapshot:     size.Name,
				ColorNameSnapshot:    color.Name,
				ColorCodeSnapshot:    color.HexCode,
				UnitPrice:            ci.UnitPriceSnapshot,
				Quantity:             ci.Quantity,
				TotalPrice:           ci.UnitPriceSnapshot * ci.Quantity,
				CreatedAt:            now,
			})
			outItems = append(outItems, PlaceOrderItemOutput{
				ProductID: ci.ProductID,
				Title:     p.Title,
				SizeName:  size.Name,
				ColorName: color.Name,
				UnitPrice: ci.UnitPriceSnapshot,
				Quantity:  ci.Quantity,
			})
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 在庫予約。足りなければTxごと巻き戻る。
		if _, err := u.engine.Reserve(ctx, r.Stock(), r.Products(), lines); err != nil {
			return asCheckoutError(err)
		}

		out = PlaceOrderOutput{
			OrderID:        orderID,
			OrderNumber:    orderNumber,
			Subtotal:       subtotal,
			DeliveryCharge: charge,
			TotalAmount:    total,
			PaymentStatus:  string(model.PaymentStatusPending),
			Items:          outItems,
		}
		return nil
	})
	if err != nil {
		return PlaceOrderOutput{}, err
	}

	// 6. 決済へハンドオフ。コールバックはちょうど1回、どちらか一方だけ。
	var payErr error
	err = u.gateway.Collect(ctx, payment.Request{
		OrderID:     out.OrderID,
		OrderNumber: out.OrderNumber,
		Amount:      out.TotalAmount,
		Customer: payment.Customer{
			Name:  in.Address.Name,
			Email: in.Address.Email,
			Phone: in.Address.Phone,
		},
	}, payment.Callbacks{
		OnSuccess: func(conf payment.Confirmation) {
			if err := u.finalizePaid(ctx, out.OrderID, cartID); err != nil {
				u.log.Error("finalize paid order failed", "order_id", out.OrderID, "err", err.Error())
				// 確定が書けていない。応答は保存済みの状態に合わせる。
				if o, ferr := u.orders.FindByID(ctx, out.OrderID); ferr == nil {
					out.PaymentStatus = string(o.PaymentStatus)
				}
				return
			}
			out.PaymentStatus = string(model.PaymentStatusPaid)
			u.publish(ctx, events.OrderEvent{
				Event:         events.EventOrderPlaced,
				OrderID:       out.OrderID,
				OrderNumber:   out.OrderNumber,
				Status:        string(model.OrderStatusOrdered),
				PaymentStatus: string(model.PaymentStatusPaid),
				OccurredAt:    conf.PaidAt,
			})
		},
		OnFailure: func(perr error) {
			// 補償: 予約した全行を戻す。失敗してもログのみ（課金は起きていない）。
			if rerr := u.engine.Restore(ctx, u.stock, lines); rerr != nil {
				u.log.Error("compensation failed", "order_id", out.OrderID, "err", rerr.Error())
			}
			if uerr := u.orders.UpdatePaymentStatus(ctx, out.OrderID, model.PaymentStatusFailed); uerr != nil {
				u.log.Error("mark payment failed errored", "order_id", out.OrderID, "err", uerr.Error())
			}
			out.PaymentStatus = string(model.PaymentStatusFailed)
			u.publish(ctx, events.OrderEvent{
				Event:         events.EventOrderPaymentFailed,
				OrderID:       out.OrderID,
				OrderNumber:   out.OrderNumber,
				Status:        string(model.OrderStatusOrdered),
				PaymentStatus: string(model.PaymentStatusFailed),
				OccurredAt:    time.Now(),
			})
			payErr = NewHTTPError(http.StatusPaymentRequired, "payment failed: "+perr.Error())
		},
	})
	if err != nil {
		return out, NewHTTPError(http.StatusBadGateway, "payment provider error")
	}
	if payErr != nil {
		return out, payErr
	}

	return out, nil
}

// 支払い確定とカート消し込み
func (u *CheckoutUsecase) finalizePaid(ctx context.Context, orderID int64, cartID int64) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Orders().UpdatePaymentStatus(ctx, orderID, model.PaymentStatusPaid); err != nil {
			return err
		}
		if err := r.Carts().UpdateStatus(ctx, cartID, model.CartStatusCheckedOut); err != nil {
			return err
		}
		return r.Carts().Clear(ctx, cartID)
	})
}

func (u *CheckoutUsecase) publish(ctx context.Context, ev events.OrderEvent) {
	if err := u.events.Publish(ctx, ev); err != nil {
		u.log.Error("publish order event failed", "event", ev.Event, "order_id", ev.OrderID, "err", err.Error())
	}
}

// emailは必須にしない。決済側へ連絡先として渡すだけで、
// 注文確定の成立条件ではない。
func validateAddress(a CheckoutAddressInput) (string, bool) {
	required := []struct {
		name  string
		value string
	}{
		{"name", a.Name},
		{"phone", a.Phone},
		{"line1", a.Line1},
		{"city", a.City},
		{"state", a.State},
		{"pincode", a.Pincode},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return "invalid address: " + f.name + " required", false
		}
	}
	if !pincode.ValidPincode(strings.TrimSpace(a.Pincode)) {
		return "invalid address: pincode must be 6 digits", false
	}
	return "", true
}

func asCheckoutError(err error) error {
	var ise *InsufficientStockError
	if errors.As(err, &ise) {
		return NewHTTPError(http.StatusConflict, ise.Error())
	}
	if _, ok := AsHTTPError(err); ok {
		return err
	}
	return NewHTTPError(http.StatusInternalServerError, "db error")
}

func newOrderNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + id[:12]
}
