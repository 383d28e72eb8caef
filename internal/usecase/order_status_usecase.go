package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/events"
	repo "github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/repository"
)

// 配送軸の遷移表。決済軸はここでは動かさない。
var fulfillmentTransitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusOrdered:         {model.OrderStatusConfirmed, model.OrderStatusCancelRequested},
	model.OrderStatusConfirmed:       {model.OrderStatusShipped, model.OrderStatusCancelRequested},
	model.OrderStatusShipped:         {model.OrderStatusDelivered},
	model.OrderStatusDelivered:       {model.OrderStatusReturnRequested},
	model.OrderStatusCancelRequested: {model.OrderStatusCancelled, model.OrderStatusConfirmed},
	model.OrderStatusReturnRequested: {model.OrderStatusReturned},
	model.OrderStatusReturned:        {model.OrderStatusRefunded},
}

func CanTransition(from, to model.OrderStatus) bool {
	for _, next := range fulfillmentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderStatusUsecase は管理側からの配送ステータス更新を受ける。
// 1遷移＝履歴1行の追記。注文行のstatusカラムは最新行の射影として同Txで更新する。
// キャンセルしても在庫は自動では戻さない（戻しは決済失敗の補償経路のみ）。
type OrderStatusUsecase struct {
	tx     repo.TransactionManager
	events events.Publisher
	log    *slog.Logger
}

func NewOrderStatusUsecase(tx repo.TransactionManager, publisher events.Publisher, log *slog.Logger) *OrderStatusUsecase {
	return &OrderStatusUsecase{tx: tx, events: publisher, log: log}
}

type UpdateStatusInput struct {
	Status          string `json:"status"`
	Notes           string `json:"notes"`
	DeliveryPartner string `json:"delivery_partner"`
	ShipmentID      string `json:"shipment_id"`
}

type StatusHistoryOutput struct {
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	DeliveryPartner string    `json:"delivery_partner,omitempty"`
	ShipmentID      string    `json:"shipment_id,omitempty"`
	ChangedAt       time.Time `json:"changed_at"`
}

func (u *OrderStatusUsecase) UpdateStatus(ctx context.Context, orderID int64, in UpdateStatusInput) (StatusHistoryOutput, error) {
	if orderID <= 0 {
		return StatusHistoryOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	next := model.OrderStatus(in.Status)
	if !validStatus(next) {
		return StatusHistoryOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	var out StatusHistoryOutput
	var orderNumber string

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		orderNumber = o.OrderNumber

		if !CanTransition(o.Status, next) {
			return NewHTTPError(http.StatusConflict, "invalid status transition")
		}

		now := time.Now()
		rec := model.OrderStatusHistory{
			OrderID:         orderID,
			Status:          next,
			Notes:           in.Notes,
			DeliveryPartner: in.DeliveryPartner,
			ShipmentID:      in.ShipmentID,
			ChangedAt:       now,
		}
		if err := r.StatusHistory().Append(ctx, rec); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//射影カラムの更新（読みの高速化用。正は履歴）
		if err := r.Orders().UpdateStatus(ctx, orderID, next); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = StatusHistoryOutput{
			Status:          string(next),
			Notes:           in.Notes,
			DeliveryPartner: in.DeliveryPartner,
			ShipmentID:      in.ShipmentID,
			ChangedAt:       now,
		}
		return nil
	})
	if err != nil {
		return StatusHistoryOutput{}, err
	}

	if perr := u.events.Publish(ctx, events.OrderEvent{
		Event:       events.EventOrderStatusChanged,
		OrderID:     orderID,
		OrderNumber: orderNumber,
		Status:      string(next),
		OccurredAt:  out.ChangedAt,
	}); perr != nil {
		u.log.Error("publish status event failed", "order_id", orderID, "err", perr.Error())
	}

	return out, nil
}

func (u *OrderStatusUsecase) History(ctx context.Context, orderID int64) ([]StatusHistoryOutput, error) {
	if orderID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var outs []StatusHistoryOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Orders().FindByID(ctx, orderID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		recs, err := r.StatusHistory().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]StatusHistoryOutput, 0, len(recs))
		for _, rec := range recs {
			outs = append(outs, StatusHistoryOutput{
				Status:          string(rec.Status),
				Notes:           rec.Notes,
				DeliveryPartner: rec.DeliveryPartner,
				ShipmentID:      rec.ShipmentID,
				ChangedAt:       rec.ChangedAt,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outs, nil
}

// CurrentStatus は履歴の最新行から現在地を読む。
func (u *OrderStatusUsecase) CurrentStatus(ctx context.Context, orderID int64) (model.OrderStatus, error) {
	var status model.OrderStatus
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		rec, err := r.StatusHistory().Latest(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		status = rec.Status
		return nil
	})
	if err != nil {
		return "", err
	}
	return status, nil
}

func validStatus(s model.OrderStatus) bool {
	switch s {
	case model.OrderStatusOrdered,
		model.OrderStatusConfirmed,
		model.OrderStatusShipped,
		model.OrderStatusDelivered,
		model.OrderStatusCancelRequested,
		model.OrderStatusCancelled,
		model.OrderStatusReturnRequested,
		model.OrderStatusReturned,
		model.OrderStatusRefunded:
		return true
	}
	return false
}
