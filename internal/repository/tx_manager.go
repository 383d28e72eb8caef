package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Addresses() AddressRepository
	Carts() CartRepository
	CartItems() CartItemRepository
	Products() ProductRepository
	Variants() VariantRepository
	Stock() SizeStockRepository
	StatusHistory() OrderStatusHistoryRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
