//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Reference shops seeded after every reset.
const (
	SeedShopID      int64 = 1
	SeedShopName          = "Default Shop"
	SeedOtherShopID int64 = 2
)

func CreateTestShop(t *testing.T, db DBLike, name, address string, score int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO shops (name, type_id, address, score) VALUES ($1, 1, $2, $3) RETURNING id",
		name, address, score).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestVoucher inserts a flash-sale voucher whose window is [begin, end].
func CreateTestVoucher(t *testing.T, db DBLike, voucherID int64, stock int, begin, end time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO seckill_vouchers (voucher_id, stock, begin_time, end_time) VALUES ($1, $2, $3, $4)",
		voucherID, stock, begin, end)
	require.NoError(t, err)
}

// CreateOpenVoucher inserts a voucher whose sale window is open right now.
func CreateOpenVoucher(t *testing.T, db DBLike, voucherID int64, stock int) {
	t.Helper()
	now := time.Now()
	CreateTestVoucher(t, db, voucherID, stock, now.Add(-time.Hour), now.Add(time.Hour))
}

func VoucherStock(t *testing.T, db DBLike, voucherID int64) int {
	t.Helper()

	var stock int
	err := db.QueryRow(context.Background(),
		"SELECT stock FROM seckill_vouchers WHERE voucher_id = $1", voucherID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

func CountOrders(t *testing.T, db DBLike, voucherID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM voucher_orders WHERE voucher_id = $1", voucherID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountUserOrders(t *testing.T, db DBLike, userID, voucherID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM voucher_orders WHERE user_id = $1 AND voucher_id = $2", userID, voucherID).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO shops (id, name, type_id, area, address, avg_price, score) VALUES
		    ($1, $2, 1, 'Downtown', '1 Main St', 80, 47),
		    ($3, 'Other Shop', 2, NULL, '2 Side St', NULL, 30)
		ON CONFLICT (id) DO NOTHING;
	`, SeedShopID, SeedShopName, SeedOtherShopID)
	if err != nil {
		return err
	}

	// keep BIGSERIAL ahead of the explicit ids above
	_, err = pool.Exec(ctx, `SELECT setval(pg_get_serial_sequence('shops', 'id'), (SELECT MAX(id) FROM shops))`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
