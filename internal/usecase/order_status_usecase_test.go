package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusEnv struct {
	orders    *memOrderRepo
	history   *memHistoryRepo
	publisher *recordingPublisher
	uc        *OrderStatusUsecase
}

func newStatusEnv() *statusEnv {
	orders := newMemOrderRepo()
	history := &memHistoryRepo{}
	publisher := &recordingPublisher{}

	tx := &fakeTxManager{Repos: &fakeTxRepos{
		orders:        orders,
		statusHistory: history,
	}}

	return &statusEnv{
		orders:    orders,
		history:   history,
		publisher: publisher,
		uc:        NewOrderStatusUsecase(tx, publisher, testLogger()),
	}
}

func (e *statusEnv) seedOrder(status model.OrderStatus) int64 {
	id, _ := e.orders.Create(context.Background(), model.Order{
		OrderNumber:   "ORD-TEST00000001",
		UserID:        7,
		Status:        status,
		PaymentStatus: model.PaymentStatusPaid,
	})
	_ = e.history.Append(context.Background(), model.OrderStatusHistory{
		OrderID:   id,
		Status:    status,
		ChangedAt: time.Now(),
	})
	return id
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from model.OrderStatus
		to   model.OrderStatus
		ok   bool
	}{
		{model.OrderStatusOrdered, model.OrderStatusConfirmed, true},
		{model.OrderStatusOrdered, model.OrderStatusCancelRequested, true},
		{model.OrderStatusConfirmed, model.OrderStatusShipped, true},
		{model.OrderStatusShipped, model.OrderStatusDelivered, true},
		{model.OrderStatusDelivered, model.OrderStatusReturnRequested, true},
		{model.OrderStatusCancelRequested, model.OrderStatusCancelled, true},
		{model.OrderStatusCancelRequested, model.OrderStatusConfirmed, true}, // キャンセル却下
		{model.OrderStatusReturnRequested, model.OrderStatusReturned, true},
		{model.OrderStatusReturned, model.OrderStatusRefunded, true},

		{model.OrderStatusOrdered, model.OrderStatusDelivered, false}, // 飛び級不可
		{model.OrderStatusShipped, model.OrderStatusCancelRequested, false},
		{model.OrderStatusDelivered, model.OrderStatusShipped, false}, // 逆行不可
		{model.OrderStatusCancelled, model.OrderStatusConfirmed, false},
		{model.OrderStatusRefunded, model.OrderStatusOrdered, false}, // 終端
	}

	for _, c := range cases {
		assert.Equal(t, c.ok, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestUpdateStatusAppendsHistoryAndProjection(t *testing.T) {
	env := newStatusEnv()
	ctx := context.Background()
	id := env.seedOrder(model.OrderStatusOrdered)

	out, err := env.uc.UpdateStatus(ctx, id, UpdateStatusInput{
		Status: string(model.OrderStatusConfirmed),
		Notes:  "stock checked",
	})

	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", out.Status)
	assert.Equal(t, "stock checked", out.Notes)

	// 履歴は追記のみ: ORDERED行は残ったまま2行になる
	recs, _ := env.history.ListByOrderID(ctx, id)
	require.Len(t, recs, 2)
	assert.Equal(t, model.OrderStatusOrdered, recs[0].Status)
	assert.Equal(t, model.OrderStatusConfirmed, recs[1].Status)

	// 射影カラムも更新
	o, _ := env.orders.FindByID(ctx, id)
	assert.Equal(t, model.OrderStatusConfirmed, o.Status)

	// 決済軸は触らない
	assert.Equal(t, model.PaymentStatusPaid, o.PaymentStatus)

	assert.Equal(t, []string{events.EventOrderStatusChanged}, env.publisher.names())
}

func TestUpdateStatusShipmentFields(t *testing.T) {
	env := newStatusEnv()
	ctx := context.Background()
	id := env.seedOrder(model.OrderStatusConfirmed)

	out, err := env.uc.UpdateStatus(ctx, id, UpdateStatusInput{
		Status:          string(model.OrderStatusShipped),
		DeliveryPartner: "Delhivery",
		ShipmentID:      "DLV-88421",
	})

	require.NoError(t, err)
	assert.Equal(t, "Delhivery", out.DeliveryPartner)
	assert.Equal(t, "DLV-88421", out.ShipmentID)
}

func TestUpdateStatusInvalidTransition(t *testing.T) {
	env := newStatusEnv()
	id := env.seedOrder(model.OrderStatusOrdered)

	_, err := env.uc.UpdateStatus(context.Background(), id, UpdateStatusInput{
		Status: string(model.OrderStatusDelivered),
	})

	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
	assert.Equal(t, "invalid status transition", he.Message)

	// 履歴は増えていない
	recs, _ := env.history.ListByOrderID(context.Background(), id)
	assert.Len(t, recs, 1)
	assert.Empty(t, env.publisher.names())
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	env := newStatusEnv()
	id := env.seedOrder(model.OrderStatusOrdered)

	_, err := env.uc.UpdateStatus(context.Background(), id, UpdateStatusInput{Status: "TELEPORTED"})

	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestUpdateStatusOrderNotFound(t *testing.T) {
	env := newStatusEnv()

	_, err := env.uc.UpdateStatus(context.Background(), 42, UpdateStatusInput{
		Status: string(model.OrderStatusConfirmed),
	})

	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestCurrentStatusReadsLatestHistoryRow(t *testing.T) {
	env := newStatusEnv()
	ctx := context.Background()
	id := env.seedOrder(model.OrderStatusOrdered)

	_, err := env.uc.UpdateStatus(ctx, id, UpdateStatusInput{Status: string(model.OrderStatusConfirmed)})
	require.NoError(t, err)
	_, err = env.uc.UpdateStatus(ctx, id, UpdateStatusInput{Status: string(model.OrderStatusShipped)})
	require.NoError(t, err)

	status, err := env.uc.CurrentStatus(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, status)
}

func TestHistoryListsAllTransitions(t *testing.T) {
	env := newStatusEnv()
	ctx := context.Background()
	id := env.seedOrder(model.OrderStatusOrdered)

	_, err := env.uc.UpdateStatus(ctx, id, UpdateStatusInput{Status: string(model.OrderStatusCancelRequested), Notes: "customer call"})
	require.NoError(t, err)
	_, err = env.uc.UpdateStatus(ctx, id, UpdateStatusInput{Status: string(model.OrderStatusCancelled)})
	require.NoError(t, err)

	recs, err := env.uc.History(ctx, id)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "ORDERED", recs[0].Status)
	assert.Equal(t, "CANCEL_REQUESTED", recs[1].Status)
	assert.Equal(t, "customer call", recs[1].Notes)
	assert.Equal(t, "CANCELLED", recs[2].Status)
}

func TestHistoryOrderNotFound(t *testing.T) {
	env := newStatusEnv()

	_, err := env.uc.History(context.Background(), 42)

	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}
