package payment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// MockGateway はテスト・ローカル用のプロバイダ。FailureRateで失敗を注入できる。
type MockGateway struct {
	FailureRate float64 // 0.0〜1.0
	Delay       time.Duration
}

func NewMockGateway(failureRate float64) *MockGateway {
	return &MockGateway{FailureRate: failureRate}
}

func (m *MockGateway) Collect(ctx context.Context, req Request, cb Callbacks) error {
	if cb.OnSuccess == nil || cb.OnFailure == nil {
		return errors.New("payment callbacks not registered")
	}
	if req.Amount <= 0 {
		cb.OnFailure(fmt.Errorf("invalid amount %d", req.Amount))
		return nil
	}

	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			cb.OnFailure(ctx.Err())
			return nil
		}
	}

	if rand.Float64() < m.FailureRate {
		cb.OnFailure(errors.New("payment declined by provider"))
		return nil
	}

	cb.OnSuccess(Confirmation{
		TransactionID: "txn_" + uuid.NewString(),
		PaidAt:        time.Now(),
	})
	return nil
}
