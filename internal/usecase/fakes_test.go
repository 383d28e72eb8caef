package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/events"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/payment"
	repo "github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/repository"
)

// =====================
// TxManager / TxRepos fakes
// =====================

// fakeTxManager は渡されたreposをそのままfnに渡すだけ。
// rollbackは再現しないので、巻き戻り自体の検証はしない。
type fakeTxManager struct {
	Repos repo.TxRepos
}

func (m *fakeTxManager) WithinTx(_ context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.Repos)
}

type fakeTxRepos struct {
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

func (r *fakeTxRepos) Orders() repo.OrderRepository                     { return r.orders }
func (r *fakeTxRepos) OrderItems() repo.OrderItemRepository             { return r.orderItems }
func (r *fakeTxRepos) Addresses() repo.AddressRepository                { return r.addresses }
func (r *fakeTxRepos) Carts() repo.CartRepository                       { return r.carts }
func (r *fakeTxRepos) CartItems() repo.CartItemRepository               { return r.cartItems }
func (r *fakeTxRepos) Products() repo.ProductRepository                 { return r.products }
func (r *fakeTxRepos) Variants() repo.VariantRepository                 { return r.variants }
func (r *fakeTxRepos) Stock() repo.SizeStockRepository                  { return r.stock }
func (r *fakeTxRepos) StatusHistory() repo.OrderStatusHistoryRepository { return r.statusHistory }

// =====================
// In-memory repositories
// =====================

type memOrderRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]model.Order

	// 設定するとUpdatePaymentStatusがこのエラーを返す
	paymentUpdateErr error
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{nextID: 1, rows: map[int64]model.Order{}}
}

func (r *memOrderRepo) FindByID(_ context.Context, orderID int64) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.rows[orderID]
	if !ok {
		return model.Order{}, repo.ErrNotFound
	}
	return o, nil
}

func (r *memOrderRepo) ListByUserID(_ context.Context, userID int64, _ int, _ int) ([]model.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Order
	for _, o := range r.rows {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memOrderRepo) Create(_ context.Context, order model.Order) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = r.nextID
	r.nextID++
	r.rows[order.ID] = order
	return order.ID, nil
}

func (r *memOrderRepo) UpdateStatus(_ context.Context, orderID int64, status model.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.rows[orderID]
	if !ok {
		return repo.ErrNotFound
	}
	o.Status = status
	r.rows[orderID] = o
	return nil
}

func (r *memOrderRepo) UpdatePaymentStatus(_ context.Context, orderID int64, status model.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.paymentUpdateErr != nil {
		return r.paymentUpdateErr
	}
	o, ok := r.rows[orderID]
	if !ok {
		return repo.ErrNotFound
	}
	o.PaymentStatus = status
	r.rows[orderID] = o
	return nil
}

type memOrderItemRepo struct {
	mu   sync.Mutex
	rows []model.OrderItem
}

func (r *memOrderItemRepo) CreateBulk(_ context.Context, orderID int64, items []model.OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range items {
		it.OrderID = orderID
		it.ID = int64(len(r.rows) + 1)
		r.rows = append(r.rows, it)
	}
	return nil
}

func (r *memOrderItemRepo) ListByOrderID(_ context.Context, orderID int64) ([]model.OrderItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.OrderItem
	for _, it := range r.rows {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}

type memAddressRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]model.Address
}

func newMemAddressRepo() *memAddressRepo {
	return &memAddressRepo{nextID: 1, rows: map[int64]model.Address{}}
}

func (r *memAddressRepo) Create(_ context.Context, addr model.Address) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	addr.ID = r.nextID
	r.nextID++
	r.rows[addr.ID] = addr
	return addr.ID, nil
}

func (r *memAddressRepo) FindByID(_ context.Context, addressID int64) (model.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.rows[addressID]
	if !ok {
		return model.Address{}, repo.ErrNotFound
	}
	return a, nil
}

type memCartRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]model.Cart
	items  *memCartItemRepo
}

func newMemCartRepo(items *memCartItemRepo) *memCartRepo {
	return &memCartRepo{nextID: 1, rows: map[int64]model.Cart{}, items: items}
}

func (r *memCartRepo) seedActive(userID int64) model.Cart {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart := model.Cart{ID: r.nextID, UserID: userID, Status: model.CartStatusActive}
	r.nextID++
	r.rows[cart.ID] = cart
	return cart
}

func (r *memCartRepo) GetOrCreateActiveByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	cart, err := r.FindActiveByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	return r.seedActive(userID), nil
}

func (r *memCartRepo) FindActiveByUserID(_ context.Context, userID int64) (model.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.rows {
		if c.UserID == userID && c.Status == model.CartStatusActive {
			return c, nil
		}
	}
	return model.Cart{}, repo.ErrNotFound
}

func (r *memCartRepo) UpdateStatus(_ context.Context, cartID int64, status model.CartStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.rows[cartID]
	if !ok {
		return repo.ErrNotFound
	}
	c.Status = status
	r.rows[cartID] = c
	return nil
}

func (r *memCartRepo) Clear(_ context.Context, cartID int64) error {
	return r.items.clearCart(cartID)
}

type memCartItemRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]model.CartItem
}

func newMemCartItemRepo() *memCartItemRepo {
	return &memCartItemRepo{nextID: 1, rows: map[int64]model.CartItem{}}
}

func (r *memCartItemRepo) seed(item model.CartItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = r.nextID
	r.nextID++
	r.rows[item.ID] = item
}

func (r *memCartItemRepo) clearCart(cartID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, it := range r.rows {
		if it.CartID == cartID {
			delete(r.rows, id)
		}
	}
	return nil
}

func (r *memCartItemRepo) ListByCartID(_ context.Context, cartID int64) ([]model.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.CartItem
	for _, it := range r.rows {
		if it.CartID == cartID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memCartItemRepo) Upsert(_ context.Context, item model.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, it := range r.rows {
		if it.CartID == item.CartID && it.ProductID == item.ProductID &&
			it.ColorID == item.ColorID && it.SizeID == item.SizeID {
			it.Quantity = item.Quantity
			it.UnitPriceSnapshot = item.UnitPriceSnapshot
			r.rows[id] = it
			return nil
		}
	}
	item.ID = r.nextID
	r.nextID++
	r.rows[item.ID] = item
	return nil
}

func (r *memCartItemRepo) UpdateQuantity(_ context.Context, cartID int64, itemID int64, quantity int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.rows[itemID]
	if !ok || it.CartID != cartID {
		return repo.ErrNotFound
	}
	it.Quantity = quantity
	r.rows[itemID] = it
	return nil
}

func (r *memCartItemRepo) Delete(_ context.Context, cartID int64, itemID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.rows[itemID]
	if !ok || it.CartID != cartID {
		return repo.ErrNotFound
	}
	delete(r.rows, itemID)
	return nil
}

type memProductRepo struct {
	rows map[int64]model.Product
}

func (r *memProductRepo) FindByID(_ context.Context, productID int64) (model.Product, error) {
	p, ok := r.rows[productID]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

type memVariantRepo struct {
	sizes  map[int64]model.Size
	colors map[int64]model.Color
}

func (r *memVariantRepo) FindSize(_ context.Context, sizeID int64) (model.Size, error) {
	s, ok := r.sizes[sizeID]
	if !ok {
		return model.Size{}, repo.ErrNotFound
	}
	return s, nil
}

func (r *memVariantRepo) FindColor(_ context.Context, colorID int64) (model.Color, error) {
	c, ok := r.colors[colorID]
	if !ok {
		return model.Color{}, repo.ErrNotFound
	}
	return c, nil
}

// fakeStockRepo はDBのconditional UPDATEと同じ原子性をmutexで再現する。
type fakeStockRepo struct {
	mu   sync.Mutex
	rows map[int64]*model.SizeStock // size_id -> row
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{rows: map[int64]*model.SizeStock{}}
}

func (r *fakeStockRepo) seed(sizeID, productID, colorID, qty int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[sizeID] = &model.SizeStock{
		SizeID:        sizeID,
		ProductID:     productID,
		ColorID:       colorID,
		StockQuantity: qty,
		InStock:       qty > 0,
	}
}

func (r *fakeStockRepo) quantity(sizeID int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if row, ok := r.rows[sizeID]; ok {
		return row.StockQuantity
	}
	return -1
}

func (r *fakeStockRepo) FindBySizeID(_ context.Context, sizeID int64) (model.SizeStock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[sizeID]
	if !ok {
		return model.SizeStock{}, repo.ErrNotFound
	}
	return *row, nil
}

func (r *fakeStockRepo) DecreaseStockIfEnough(_ context.Context, sizeID int64, qty int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[sizeID]
	if !ok || row.StockQuantity < qty {
		return false, nil
	}
	row.StockQuantity -= qty
	row.InStock = row.StockQuantity > 0
	return true, nil
}

func (r *fakeStockRepo) IncreaseStock(_ context.Context, sizeID int64, qty int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[sizeID]
	if !ok {
		return repo.ErrNotFound
	}
	row.StockQuantity += qty
	row.InStock = row.StockQuantity > 0
	return nil
}

type memHistoryRepo struct {
	mu   sync.Mutex
	rows []model.OrderStatusHistory
}

func (r *memHistoryRepo) Append(_ context.Context, rec model.OrderStatusHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.ID = int64(len(r.rows) + 1)
	r.rows = append(r.rows, rec)
	return nil
}

func (r *memHistoryRepo) ListByOrderID(_ context.Context, orderID int64) ([]model.OrderStatusHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.OrderStatusHistory
	for _, rec := range r.rows {
		if rec.OrderID == orderID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memHistoryRepo) Latest(_ context.Context, orderID int64) (model.OrderStatusHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].OrderID == orderID {
			return r.rows[i], nil
		}
	}
	return model.OrderStatusHistory{}, repo.ErrNotFound
}

type memZoneRepo struct {
	regions []model.ZoneRegion
	zones   map[int64]model.DeliveryZone
}

func (r *memZoneRepo) ListRegions(_ context.Context) ([]model.ZoneRegion, error) {
	//district行を先頭へ（GORM実装と同じ並び）
	var out []model.ZoneRegion
	for _, reg := range r.regions {
		if reg.RegionType == model.RegionTypeDistrict {
			out = append(out, reg)
		}
	}
	for _, reg := range r.regions {
		if reg.RegionType != model.RegionTypeDistrict {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (r *memZoneRepo) FindZoneByID(_ context.Context, zoneID int64) (model.DeliveryZone, error) {
	z, ok := r.zones[zoneID]
	if !ok {
		return model.DeliveryZone{}, repo.ErrNotFound
	}
	return z, nil
}

func (r *memZoneRepo) ListZones(_ context.Context) ([]model.DeliveryZone, error) {
	var out []model.DeliveryZone
	for _, z := range r.zones {
		out = append(out, z)
	}
	return out, nil
}

// =====================
// Payment / events fakes
// =====================

// scriptedGateway は指示どおりに成功か失敗のコールバックを1回だけ呼ぶ。
type scriptedGateway struct {
	fail         bool
	collectErr   error
	collectCalls int
	lastRequest  payment.Request
}

func (g *scriptedGateway) Collect(_ context.Context, req payment.Request, cb payment.Callbacks) error {
	g.collectCalls++
	g.lastRequest = req
	if g.collectErr != nil {
		return g.collectErr
	}
	if g.fail {
		cb.OnFailure(errors.New("card declined"))
		return nil
	}
	cb.OnSuccess(payment.Confirmation{TransactionID: "txn-test", PaidAt: time.Now()})
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.OrderEvent
}

func (p *recordingPublisher) Publish(_ context.Context, ev events.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, ev := range p.events {
		out = append(out, ev.Event)
	}
	return out
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
