//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gin-voucher-shop/internal/infra"
	"gin-voucher-shop/internal/infra/repository"
	sqlc "gin-voucher-shop/internal/infra/sqlc/generated"
	"gin-voucher-shop/tests/common/builder"
	repositorymock "gin-voucher-shop/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// FindByID Tests
// =============================================================================

func TestVoucherRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	begin := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := begin.Add(2 * time.Hour)

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockVoucherQueries, *mockDBTX)
		wantStock  int
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: row is rehydrated",
			setupMock: func(m *repositorymock.MockVoucherQueries, db *mockDBTX) {
				row := builder.NewVoucherBuilder(begin).With(func(b *builder.VoucherBuilder) {
					b.ID = 5
					b.BeginTime = begin
					b.EndTime = end
				}).BuildInfra()
				m.EXPECT().GetSeckillVoucherByID(ctx, db, int64(5)).Return(row, nil)
			},
			wantStock: 100,
		},
		{
			name: "error: missing row is KindNotFound",
			setupMock: func(m *repositorymock.MockVoucherQueries, db *mockDBTX) {
				m.EXPECT().GetSeckillVoucherByID(ctx, db, int64(5)).Return(sqlc.SeckillVouchers{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: driver failure is KindDBFailure",
			setupMock: func(m *repositorymock.MockVoucherQueries, db *mockDBTX) {
				m.EXPECT().GetSeckillVoucherByID(ctx, db, int64(5)).Return(sqlc.SeckillVouchers{}, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockVoucherQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewVoucherRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			v, err := repo.FindByID(ctx, 5)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), v.ID())
			assert.Equal(t, tc.wantStock, v.Stock())
			assert.True(t, v.BeginTime().Equal(begin))
			assert.True(t, v.EndTime().Equal(end))
		})
	}
}

// =============================================================================
// DecrementStock Tests
// =============================================================================

func TestVoucherRepository_DecrementStock(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		rows        int64
		queryErr    error
		wantTaken   bool
		expectError bool
	}{
		{name: "success: one unit taken", rows: 1, wantTaken: true},
		{name: "sold out: predicate matched nothing", rows: 0, wantTaken: false},
		{name: "error: database failure", queryErr: errors.New("deadlock"), expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockVoucherQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewVoucherRepository(mockQueries, mockDB)

			mockQueries.EXPECT().DecrementVoucherStock(ctx, mockDB, int64(9)).Return(tc.rows, tc.queryErr)

			taken, err := repo.DecrementStock(ctx, 9)

			if tc.expectError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTaken, taken)
		})
	}
}
