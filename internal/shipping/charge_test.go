package shipping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryCharge(t *testing.T) {
	// 閾値未満は満額: 小計2500 + 送料99 = 2599
	assert.Equal(t, int64(99), DeliveryCharge(2500, 99, 3000))

	// 閾値超えで無料
	assert.Equal(t, int64(0), DeliveryCharge(3500, 99, 3000))

	// 境界ちょうどは無料
	assert.Equal(t, int64(0), DeliveryCharge(3000, 99, 3000))

	// 閾値0は「無料ライン無し」
	assert.Equal(t, int64(99), DeliveryCharge(1_000_000, 99, 0))

	assert.Equal(t, int64(0), DeliveryCharge(100, 0, 3000))
}
