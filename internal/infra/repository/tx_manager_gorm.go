package repository

import (
	"context"

	repo "github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders        repo.OrderRepository
	orderItems    repo.OrderItemRepository
	addresses     repo.AddressRepository
	carts         repo.CartRepository
	cartItems     repo.CartItemRepository
	products      repo.ProductRepository
	variants      repo.VariantRepository
	stock         repo.SizeStockRepository
	statusHistory repo.OrderStatusHistoryRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository                      { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository              { return r.orderItems }
func (r *txReposGorm) Addresses() repo.AddressRepository                 { return r.addresses }
func (r *txReposGorm) Carts() repo.CartRepository                        { return r.carts }
func (r *txReposGorm) CartItems() repo.CartItemRepository                { return r.cartItems }
func (r *txReposGorm) Products() repo.ProductRepository                  { return r.products }
func (r *txReposGorm) Variants() repo.VariantRepository                  { return r.variants }
func (r *txReposGorm) Stock() repo.SizeStockRepository                   { return r.stock }
func (r *txReposGorm) StatusHistory() repo.OrderStatusHistoryRepository  { return r.statusHistory }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders:        NewOrderGormRepository(tx),
			orderItems:    NewOrderItemGormRepository(tx),
			addresses:     NewAddressGormRepository(tx),
			carts:         NewCartGormRepository(tx),
			cartItems:     NewCartItemGormRepository(tx),
			products:      NewProductGormRepository(tx),
			variants:      NewVariantGormRepository(tx),
			stock:         NewSizeStockGormRepository(tx),
			statusHistory: NewOrderStatusHistoryGormRepository(tx),
		}
		return fn(r)
	})
}
