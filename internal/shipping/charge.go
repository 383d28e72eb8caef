package shipping

// DeliveryCharge は送料を計算する。小計が閾値以上なら送料無料。
// カート表示時と注文作成時の両方がこの1箇所を通ること。
func DeliveryCharge(subtotal int64, zoneCharge int64, freeThreshold int64) int64 {
	if freeThreshold > 0 && subtotal >= freeThreshold {
		return 0
	}
	return zoneCharge
}
