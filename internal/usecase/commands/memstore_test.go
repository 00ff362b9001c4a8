//go:build unit

package commands_test

import (
	"context"
	"maps"
	"sync"
	"time"

	"gin-voucher-shop/internal/domain/order"
	"gin-voucher-shop/internal/domain/shop"
	"gin-voucher-shop/internal/domain/voucher"
	"gin-voucher-shop/internal/infra"
	"gin-voucher-shop/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgconn"
)

type voucherRow struct {
	stock int
	begin time.Time
	end   time.Time
}

type orderKey struct {
	userID    int64
	voucherID int64
}

// memStore is a relational store stand-in. Transactions are serialized and
// roll back by restoring a snapshot, which is enough to observe atomicity.
type memStore struct {
	mu       sync.Mutex
	vouchers map[int64]voucherRow
	orders   map[orderKey]int64
	shops    map[int64]*shop.Shop

	// hideOrders makes the count step blind so the unique constraint is hit.
	hideOrders bool
	commits    int
	rollbacks  int
}

func newMemStore() *memStore {
	return &memStore{
		vouchers: make(map[int64]voucherRow),
		orders:   make(map[orderKey]int64),
		shops:    make(map[int64]*shop.Shop),
	}
}

func (s *memStore) putVoucher(id int64, stock int, begin, end time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vouchers[id] = voucherRow{stock: stock, begin: begin, end: end}
}

func (s *memStore) putOrder(orderID, userID, voucherID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[orderKey{userID, voucherID}] = orderID
}

func (s *memStore) putShop(sh *shop.Shop) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shops[sh.ID()] = sh
}

func (s *memStore) stock(id int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vouchers[id].stock
}

func (s *memStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func (s *memStore) orderIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.orders))
	for _, id := range s.orders {
		ids = append(ids, id)
	}
	return ids
}

func (s *memStore) shop(id int64) *shop.Shop {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shops[id]
}

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vouchers := maps.Clone(s.vouchers)
	orders := maps.Clone(s.orders)
	shops := maps.Clone(s.shops)

	if err := fn(ctx, memTx{s}); err != nil {
		s.vouchers, s.orders, s.shops = vouchers, orders, shops
		s.rollbacks++
		return err
	}
	s.commits++
	return nil
}

func (s *memStore) CommandReads() shared.CommandReads {
	return lockedReads{s}
}

type memTx struct{ s *memStore }

func (t memTx) Vouchers() shared.VoucherRepository { return memVouchers(t) }
func (t memTx) Orders() shared.OrderRepository     { return memOrders(t) }
func (t memTx) Shops() shared.ShopRepository       { return memShops(t) }
func (t memTx) Reads() shared.CommandReads         { return memReads(t) }

// memReads runs inside Within and must not take the lock again.
type memReads struct{ s *memStore }

func (r memReads) VoucherByID(_ context.Context, id int64) (*voucher.SeckillVoucher, error) {
	row, ok := r.s.vouchers[id]
	if !ok {
		return nil, infra.WrapRepoErr("seckill voucher not found", nil, infra.KindNotFound)
	}
	return voucher.Rehydrate(id, row.stock, row.begin, row.end, row.begin, row.begin), nil
}

func (r memReads) ShopByID(_ context.Context, id int64) (*shop.Shop, error) {
	sh, ok := r.s.shops[id]
	if !ok {
		return nil, infra.WrapRepoErr("shop not found", nil, infra.KindNotFound)
	}
	return sh, nil
}

type lockedReads struct{ s *memStore }

func (r lockedReads) VoucherByID(ctx context.Context, id int64) (*voucher.SeckillVoucher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return memReads(r).VoucherByID(ctx, id)
}

func (r lockedReads) ShopByID(ctx context.Context, id int64) (*shop.Shop, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return memReads(r).ShopByID(ctx, id)
}

type memVouchers struct{ s *memStore }

func (v memVouchers) DecrementStock(_ context.Context, voucherID int64) (bool, error) {
	row, ok := v.s.vouchers[voucherID]
	if !ok || row.stock < 1 {
		return false, nil
	}
	row.stock--
	v.s.vouchers[voucherID] = row
	return true, nil
}

type memOrders struct{ s *memStore }

func (o memOrders) CountByUserAndVoucher(_ context.Context, userID, voucherID int64) (int64, error) {
	if o.s.hideOrders {
		return 0, nil
	}
	if _, ok := o.s.orders[orderKey{userID, voucherID}]; ok {
		return 1, nil
	}
	return 0, nil
}

func (o memOrders) Create(_ context.Context, vo *order.VoucherOrder) error {
	key := orderKey{vo.UserID(), vo.VoucherID()}
	if _, ok := o.s.orders[key]; ok {
		dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
		return infra.WrapRepoErr("failed to create voucher order", dup)
	}
	o.s.orders[key] = vo.ID()
	return nil
}

type memShops struct{ s *memStore }

func (m memShops) Update(_ context.Context, sh *shop.Shop) error {
	if _, ok := m.s.shops[sh.ID()]; !ok {
		return infra.WrapRepoErr("shop not found", nil, infra.KindNotFound)
	}
	m.s.shops[sh.ID()] = sh
	return nil
}
