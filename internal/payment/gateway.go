package payment

import (
	"context"
	"time"
)

// 決済依頼。金額・注文・連絡先をプロバイダへ渡す。
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Request struct {
	OrderID     int64    `json:"order_id"`
	OrderNumber string   `json:"order_number"`
	Amount      int64    `json:"amount"`
	Customer    Customer `json:"customer"`
}

type Confirmation struct {
	TransactionID string    `json:"transaction_id"`
	PaidAt        time.Time `json:"paid_at"`
}

// OnSuccess / OnFailure のどちらか一方だけが、ちょうど1回呼ばれる。
type Callbacks struct {
	OnSuccess func(Confirmation)
	OnFailure func(error)
}

// Gateway は外部決済プロバイダ。チェックアウトウィジェットの中身は不透明で、
// 結果はコールバック経由でしか受け取らない。
type Gateway interface {
	Collect(ctx context.Context, req Request, cb Callbacks) error
}
