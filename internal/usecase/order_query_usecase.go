package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
	repo "github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/repository"
)

// 自分の注文の閲覧
type OrderQueryUsecase struct {
	tx repo.TransactionManager
}

func NewOrderQueryUsecase(tx repo.TransactionManager) *OrderQueryUsecase {
	return &OrderQueryUsecase{tx: tx}
}

type OrderItemOutput struct {
	ProductID int64  `json:"product_id"`
	Title     string `json:"title"`
	SizeName  string `json:"size_name"`
	ColorName string `json:"color_name"`
	ColorCode string `json:"color_code,omitempty"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int64  `json:"quantity"`
	Total     int64  `json:"total"`
}

type OrderOutput struct {
	ID              int64                 `json:"id"`
	OrderNumber     string                `json:"order_number"`
	Status          string                `json:"status"`
	PaymentStatus   string                `json:"payment_status"`
	TotalAmount     int64                 `json:"total_amount"`
	DeliveryCharge  int64                 `json:"delivery_charge"`
	DeliveryPincode string                `json:"delivery_pincode"`
	CreatedAt       time.Time             `json:"created_at"`
	Items           []OrderItemOutput     `json:"items"`
	History         []StatusHistoryOutput `json:"history,omitempty"`
}

func (u *OrderQueryUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//ページングはまず固定で取る
	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, _, err := r.Orders().ListByUserID(ctx, userID, 1, 50)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items, nil))
		}
		return nil
	})
	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func (u *OrderQueryUsecase) GetMyOrderDetail(ctx context.Context, userID int64, orderID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if o.UserID != userID {
			//他人の注文は「存在しない扱い」にする
			return NewHTTPError(http.StatusNotFound, "not found")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		history, err := r.StatusHistory().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items, history)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem, history []model.OrderStatusHistory) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Title:     it.ProductTitleSnapshot,
			SizeName:  it.SizeNameSnapshot,
			ColorName: it.ColorNameSnapshot,
			ColorCode: it.ColorCodeSnapshot,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Total:     it.TotalPrice,
		})
	}

	var outHistory []StatusHistoryOutput
	for _, rec := range history {
		outHistory = append(outHistory, StatusHistoryOutput{
			Status:          string(rec.Status),
			Notes:           rec.Notes,
			DeliveryPartner: rec.DeliveryPartner,
			ShipmentID:      rec.ShipmentID,
			ChangedAt:       rec.ChangedAt,
		})
	}

	return OrderOutput{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		Status:          string(o.Status),
		PaymentStatus:   string(o.PaymentStatus),
		TotalAmount:     o.TotalAmount,
		DeliveryCharge:  o.DeliveryCharge,
		DeliveryPincode: o.DeliveryPincode,
		CreatedAt:       o.CreatedAt,
		Items:           outItems,
		History:         outHistory,
	}
}
