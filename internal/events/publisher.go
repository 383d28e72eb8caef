package events

import (
	"context"
	"time"
)

const (
	EventOrderPlaced        = "order.placed"
	EventOrderPaymentFailed = "order.payment_failed"
	EventOrderStatusChanged = "order.status_changed"
)

// 注文イベント。ステータス遷移ログと同じ内容を外へ流す。
type OrderEvent struct {
	Event         string    `json:"event"`
	OrderID       int64     `json:"order_id"`
	OrderNumber   string    `json:"order_number"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, ev OrderEvent) error
}

// ブローカー無しの環境用
type NoopPublisher struct{}

func (NoopPublisher) Publish(_ context.Context, _ OrderEvent) error { return nil }
